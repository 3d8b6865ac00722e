package palette

import (
	"testing"

	"catalog-engine/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestGroupFor(t *testing.T) {
	assert.Equal(t, GroupSkin, GroupFor(models.CategoryHead))
	assert.Equal(t, GroupHair, GroupFor(models.CategoryHair))
	assert.Equal(t, GroupGarment, GroupFor(models.CategoryShirt))
	assert.Equal(t, GroupGarment, GroupFor(models.CategoryShoes))
	assert.Equal(t, GroupGarment, GroupFor(models.CategoryHat))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		colorID  string
		category models.Category
		want     bool
	}{
		{"Skin tone valid", "4", models.CategoryHead, true},
		{"Skin palette is small", "21", models.CategoryHead, false},
		{"Hair extended id", "45", models.CategoryHair, true},
		{"Garment id not in hair palette", "143", models.CategoryHair, false},
		{"Garment extended id", "143", models.CategoryCoat, true},
		{"Unknown id", "999", models.CategoryShirt, false},
		{"Empty id", "", models.CategoryShirt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.colorID, tt.category))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Keeps valid subset in order", func(t *testing.T) {
		got := Normalize([]string{"92", "999", "1", "bad"}, models.CategoryShirt)
		assert.Equal(t, []string{"92", "1"}, got)
	})

	t.Run("Empty input gets default", func(t *testing.T) {
		got := Normalize(nil, models.CategoryHair)
		assert.Equal(t, []string{"1"}, got)
	})

	t.Run("All invalid gets default", func(t *testing.T) {
		got := Normalize([]string{"888", "999"}, models.CategoryHead)
		assert.Equal(t, []string{"1"}, got)
	})
}

func TestColors_ReturnsCopy(t *testing.T) {
	a := Colors(models.CategoryShirt)
	a[0] = "mutated"
	b := Colors(models.CategoryShirt)
	assert.Equal(t, "1", b[0])
}

func TestDefaultColor_AlwaysValid(t *testing.T) {
	for _, cat := range models.AllCategories {
		assert.True(t, Validate(DefaultColor(cat), cat), "default for %s", cat)
	}
}
