package merge

import (
	"math/rand"
	"testing"

	"catalog-engine/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func item(src models.SourceFamily, cat models.Category, figureID string, conf models.Confidence) models.CatalogItem {
	return models.CatalogItem{
		ID:         string(src) + ":" + string(cat) + ":" + figureID,
		Category:   cat,
		FigureID:   figureID,
		Gender:     models.GenderUnisex,
		Colors:     []string{"1"},
		Rarity:     models.RarityCommon,
		Name:       models.DefaultName(cat, figureID),
		Source:     src,
		Confidence: conf,
	}
}

func TestMerge_PriorityWins(t *testing.T) {
	auth := item(models.SourceAuthoritative, models.CategoryShirt, "3", models.ConfidenceAuthoritative)
	auth.Name = "Classic Shirt"
	scraped := item(models.SourceScraped, models.CategoryShirt, "3", models.ConfidencePattern)
	fallback := item(models.SourceFallback, models.CategoryShirt, "3", models.ConfidenceFallback)

	out := Merge([]models.CatalogItem{fallback, scraped, auth}, Options{})

	assert.Len(t, out, 1)
	assert.Equal(t, "shirt:3", out[0].ID)
	assert.Equal(t, models.SourceAuthoritative, out[0].Source)
	assert.Equal(t, "Classic Shirt", out[0].Name)
}

func TestMerge_CanonicalIDAndUniqueness(t *testing.T) {
	items := []models.CatalogItem{
		item(models.SourceAuthoritative, models.CategoryHair, "890", models.ConfidenceAuthoritative),
		item(models.SourceScraped, models.CategoryHair, "890", models.ConfidencePattern),
		item(models.SourceScraped, models.CategoryHair, "891", models.ConfidencePattern),
		item(models.SourceFallback, models.CategoryShirt, "890", models.ConfidenceFallback),
	}

	out := Merge(items, Options{})

	// Same figure id under different categories stays distinct.
	assert.Len(t, out, 3)
	seen := make(map[string]bool)
	for _, it := range out {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	assert.True(t, seen["hair:890"])
	assert.True(t, seen["hair:891"])
	assert.True(t, seen["shirt:890"])
}

func TestMerge_RichnessTieBreak(t *testing.T) {
	poor := item(models.SourceScraped, models.CategoryHat, "5", models.ConfidencePattern)
	rich := item(models.SourceScraped, models.CategoryHat, "5", models.ConfidencePattern)
	rich.Colors = []string{"1", "2", "61"}
	rich.Name = "Top Hat"

	out := Merge([]models.CatalogItem{poor, rich}, Options{})

	assert.Len(t, out, 1)
	assert.Equal(t, "Top Hat", out[0].Name)
	assert.Equal(t, []string{"1", "2", "61"}, out[0].Colors)
}

func TestMerge_FirstSeenOnFullTie(t *testing.T) {
	first := item(models.SourceScraped, models.CategoryHat, "5", models.ConfidencePattern)
	first.Gender = models.GenderMale
	second := item(models.SourceScraped, models.CategoryHat, "5", models.ConfidencePattern)
	second.Gender = models.GenderFemale

	out := Merge([]models.CatalogItem{first, second}, Options{})

	assert.Len(t, out, 1)
	assert.Equal(t, models.GenderMale, out[0].Gender)
}

func TestMerge_Strict(t *testing.T) {
	lonely := item(models.SourceScraped, models.CategoryShirt, "7", models.ConfidenceFallback)
	contestedLoser := item(models.SourceFallback, models.CategoryHat, "9", models.ConfidenceFallback)
	contestedWinner := item(models.SourceScraped, models.CategoryHat, "9", models.ConfidencePattern)

	t.Run("Disabled keeps everything", func(t *testing.T) {
		out := Merge([]models.CatalogItem{lonely, contestedLoser, contestedWinner}, Options{})
		assert.Len(t, out, 2)
	})

	t.Run("Enabled drops uncontested fallback classifications", func(t *testing.T) {
		out := Merge([]models.CatalogItem{lonely, contestedLoser, contestedWinner}, Options{Strict: true})
		assert.Len(t, out, 1)
		assert.Equal(t, "hat:9", out[0].ID)
	})
}

func TestMerge_SortOrder(t *testing.T) {
	items := []models.CatalogItem{
		item(models.SourceScraped, models.CategoryShirt, "10", models.ConfidencePattern),
		item(models.SourceScraped, models.CategoryHat, "3", models.ConfidencePattern),
		item(models.SourceScraped, models.CategoryShirt, "2", models.ConfidencePattern),
	}

	out := Merge(items, Options{})

	assert.Equal(t, "hat:3", out[0].ID)
	// Numeric ordering: 2 before 10.
	assert.Equal(t, "shirt:2", out[1].ID)
	assert.Equal(t, "shirt:10", out[2].ID)
}

func TestMerge_Deterministic(t *testing.T) {
	base := []models.CatalogItem{
		item(models.SourceAuthoritative, models.CategoryShirt, "3", models.ConfidenceAuthoritative),
		item(models.SourceScraped, models.CategoryShirt, "3", models.ConfidencePattern),
		item(models.SourceFallback, models.CategoryShirt, "3", models.ConfidenceFallback),
		item(models.SourceScraped, models.CategoryHair, "890", models.ConfidencePattern),
		item(models.SourceFallback, models.CategoryHair, "1", models.ConfidenceFallback),
		item(models.SourceAuthoritative, models.CategoryHat, "25", models.ConfidenceAuthoritative),
	}

	want := Merge(base, Options{})

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.CatalogItem, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Merge(shuffled, Options{})
		assert.Equal(t, want, got, "shuffle %d changed the output", i)
	}
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil, Options{}))
	assert.Empty(t, Merge([]models.CatalogItem{}, Options{Strict: true}))
}
