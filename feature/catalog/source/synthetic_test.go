package source

import (
	"context"
	"strconv"
	"testing"

	"catalog-engine/feature/catalog/models"
	"catalog-engine/feature/catalog/palette"

	"github.com/stretchr/testify/assert"
)

func TestSyntheticSource_Deterministic(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{})

	a, statusA := src.Fetch(context.Background(), "", "")
	b, statusB := src.Fetch(context.Background(), "", "")

	assert.Equal(t, models.StatusOK, statusA)
	assert.Equal(t, models.StatusOK, statusB)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestSyntheticSource_CategoryFilter(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{})

	items, status := src.Fetch(context.Background(), models.CategoryHair, "")
	assert.Equal(t, models.StatusOK, status)
	assert.Len(t, items, 30)
	for _, it := range items {
		assert.True(t, len(it.Identifier) > 3 && it.Identifier[:3] == "hr_", it.Identifier)
	}
}

func TestSyntheticSource_PerCategoryCap(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{PerCategory: 5})

	items, _ := src.Fetch(context.Background(), models.CategoryShirt, "")
	assert.Len(t, items, 5)
}

func TestSyntheticSource_GenderFilter(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{})

	items, _ := src.Fetch(context.Background(), models.CategoryShirt, models.GenderFemale)
	assert.NotEmpty(t, items)
	for _, it := range items {
		assert.NotEqual(t, "M", it.DeclaredGender)
	}
}

func TestSyntheticSource_ColorsAreValid(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{PerCategory: 3})

	items, _ := src.Fetch(context.Background(), "", "")
	for _, it := range items {
		assert.NotEmpty(t, it.DeclaredColors, it.Identifier)
	}
}

func TestSyntheticSource_FigureIDsAreKnown(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{})

	items, _ := src.Fetch(context.Background(), models.CategoryHead, "")
	known := make(map[string]bool)
	for _, id := range knownFigureIDs[models.CategoryHead] {
		known[strconv.Itoa(id)] = true
	}
	for _, it := range items {
		// hd_<id>
		assert.True(t, known[it.Identifier[3:]], it.Identifier)
	}
}

func TestSyntheticSource_SpelledOutCategories(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{PerCategory: 2})

	items, _ := src.Fetch(context.Background(), models.CategoryPet, "")
	assert.NotEmpty(t, items)
	for _, it := range items {
		assert.Contains(t, it.Identifier, "pet_")
	}
}

func TestSyntheticSource_CoversEveryCategory(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{})

	for _, cat := range models.AllCategories {
		items, status := src.Fetch(context.Background(), cat, "")
		assert.Equal(t, models.StatusOK, status)
		assert.NotEmpty(t, items, string(cat))
	}
}

func TestSyntheticSource_MiscIdentifiers(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{PerCategory: 3})

	items, _ := src.Fetch(context.Background(), models.CategoryMisc, "")
	assert.NotEmpty(t, items)
	for _, it := range items {
		assert.Contains(t, it.Identifier, "misc_")
	}
}

func TestSyntheticSource_PalettesMatchGenerator(t *testing.T) {
	src := NewSyntheticSource(SyntheticConfig{PerCategory: 1})

	items, _ := src.Fetch(context.Background(), models.CategoryHair, "")
	assert.Len(t, items, 1)
	assert.Equal(t, palette.Colors(models.CategoryHair), items[0].DeclaredColors)
}
