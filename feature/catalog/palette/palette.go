package palette

import "catalog-engine/feature/catalog/models"

// Group selects one of the three fixed palettes.
type Group string

const (
	// GroupSkin is used only by the head/body-color category.
	GroupSkin Group = "skin"
	// GroupHair is used only by hair.
	GroupHair Group = "hair"
	// GroupGarment is used by every other category.
	GroupGarment Group = "garment"
)

// Fixed palettes. Ids follow the official figure palettes: palette 1
// (skin), palette 2 (hair), palette 3 (garments).
var palettes = map[Group][]string{
	GroupSkin: {"1", "2", "3", "4", "5", "6", "7"},
	GroupHair: {
		"1", "2", "3", "4", "5",
		"21", "26", "31", "41", "42", "43", "44", "45",
		"61", "92", "100", "101", "102", "104",
	},
	GroupGarment: {
		"1", "2", "3", "4", "5",
		"61", "80", "82", "92", "100", "101", "102", "104", "105", "106", "143",
	},
}

var defaults = map[Group]string{
	GroupSkin:    "1",
	GroupHair:    "1",
	GroupGarment: "1",
}

// membership index, built once.
var valid = func() map[Group]map[string]struct{} {
	m := make(map[Group]map[string]struct{}, len(palettes))
	for g, ids := range palettes {
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		m[g] = set
	}
	return m
}()

// GroupFor maps a category to its palette group.
func GroupFor(category models.Category) Group {
	switch category {
	case models.CategoryHead:
		return GroupSkin
	case models.CategoryHair:
		return GroupHair
	default:
		return GroupGarment
	}
}

// Colors returns the full ordered palette for a category.
func Colors(category models.Category) []string {
	src := palettes[GroupFor(category)]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Validate reports whether colorID is valid for the category's palette.
func Validate(colorID string, category models.Category) bool {
	_, ok := valid[GroupFor(category)][colorID]
	return ok
}

// DefaultColor returns the default color id for a category.
func DefaultColor(category models.Category) string {
	return defaults[GroupFor(category)]
}

// Normalize keeps the valid subset of colors in their original order.
// When the input is empty or entirely invalid, it returns the
// single-element default list for the category.
func Normalize(colors []string, category models.Category) []string {
	set := valid[GroupFor(category)]
	out := make([]string, 0, len(colors))
	for _, id := range colors {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return []string{DefaultColor(category)}
	}
	return out
}
