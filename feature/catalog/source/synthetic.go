package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"catalog-engine/feature/catalog/models"
	"catalog-engine/feature/catalog/palette"
)

// SyntheticConfig holds configuration for the fallback generator.
type SyntheticConfig struct {
	// TTLMinutes is the freshness window for generated records. Kept
	// short so a recovered upstream replaces them quickly.
	TTLMinutes int `mapstructure:"ttl_minutes" default:"10"`
	// PerCategory caps the number of generated items per category.
	PerCategory int `mapstructure:"per_category" default:"30"`
	// Enabled disables the adapter entirely when false. With it off,
	// a total upstream outage becomes a request failure.
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// knownFigureIDs are figure ids verified to render against the imaging
// service, per category. The generator never invents ids outside these
// tables, so a degraded catalog still points at real assets.
var knownFigureIDs = map[models.Category][]int{
	models.CategoryHead:           {180, 181, 182, 183, 185, 186, 188, 189, 190, 195, 200, 205, 206, 225, 230, 235, 240, 245, 250, 255, 260, 265, 270, 275, 280, 285, 290, 295, 300, 305},
	models.CategoryHair:           {1, 3, 4, 5, 6, 9, 10, 16, 19, 20, 23, 25, 26, 27, 30, 31, 32, 33, 34, 35, 36, 38, 39, 40, 41, 42, 43, 44, 45, 46},
	models.CategoryHat:            {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30},
	models.CategoryEyewear:        {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	models.CategoryFaceAccessory:  {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	models.CategoryShirt:          {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30},
	models.CategoryCoat:           {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	models.CategoryPrint:          {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	models.CategoryChestAccessory: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	models.CategoryTrousers:       {100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 115, 120, 125, 130, 135, 140, 145, 150, 155, 160, 161, 162, 163, 164, 165},
	models.CategoryShoes:          {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25},
	models.CategoryWaist:          {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	models.CategoryEffect:         {1, 2, 3, 4, 5, 6, 7, 8},
	models.CategoryPet:            {1, 2, 3, 4, 5, 6},
	models.CategoryDance:          {1, 2, 3, 4},
	models.CategoryMisc:           {1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
}

// SyntheticSource deterministically generates plausible items per
// category so the system degrades to a usable catalog instead of an
// empty one. It has no external dependency and always reports ok.
type SyntheticSource struct {
	cfg SyntheticConfig
}

// NewSyntheticSource wires the generator with defaults applied.
func NewSyntheticSource(cfg SyntheticConfig) *SyntheticSource {
	if cfg.TTLMinutes <= 0 {
		cfg.TTLMinutes = 10
	}
	if cfg.PerCategory <= 0 {
		cfg.PerCategory = 30
	}
	return &SyntheticSource{cfg: cfg}
}

func (s *SyntheticSource) Name() string { return "synthetic" }

func (s *SyntheticSource) Family() models.SourceFamily { return models.SourceFallback }

func (s *SyntheticSource) TTL() time.Duration {
	return time.Duration(s.cfg.TTLMinutes) * time.Minute
}

// Fetch generates the same item set for the same filters every time.
// Gender rotates through M/F/U per index and club toggles on a fixed
// stride, matching the distribution of the real catalog closely enough
// for the presentation layer to exercise its filters.
func (s *SyntheticSource) Fetch(ctx context.Context, category models.Category, gender models.Gender) ([]models.RawItem, models.SourceStatus) {
	categories := models.AllCategories
	if category != "" {
		categories = []models.Category{category}
	}

	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderUnisex}

	var items []models.RawItem
	for _, cat := range categories {
		ids := knownFigureIDs[cat]
		if len(ids) == 0 {
			continue
		}
		count := min(len(ids), s.cfg.PerCategory)
		for i := 0; i < count; i++ {
			g := genders[i%3]
			if gender != "" && gender != models.GenderUnisex && g != gender && g != models.GenderUnisex {
				continue
			}
			figureID := strconv.Itoa(ids[i])
			items = append(items, models.RawItem{
				Identifier:     syntheticIdentifier(cat, figureID),
				DeclaredGender: string(g),
				DeclaredColors: palette.Colors(cat),
				DeclaredClub:   i%15 == 0,
				DeclaredName:   fmt.Sprintf("%s %s", cat, figureID),
				Source:         models.SourceFallback,
			})
		}
	}

	return items, models.StatusOK
}

// syntheticIdentifier builds an identifier the pattern rules decode
// back to the generating category. Pet, dance and misc have no
// two-letter wire code the rules recognise, so they spell the token
// out.
func syntheticIdentifier(cat models.Category, figureID string) string {
	switch cat {
	case models.CategoryPet:
		return "pet_" + figureID
	case models.CategoryDance:
		return "dance_" + figureID
	case models.CategoryMisc:
		return "misc_" + figureID
	default:
		return cat.Code() + "_" + figureID
	}
}
