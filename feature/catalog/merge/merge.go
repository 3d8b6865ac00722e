package merge

import (
	"sort"
	"strconv"

	"catalog-engine/feature/catalog/models"
)

// Options controls merge behavior.
type Options struct {
	// Strict drops fallback-confidence items whose (category, figureId)
	// group has no competing higher-confidence record.
	Strict bool
}

// Merge collapses classified items from all adapters into the canonical
// catalog. It is a pure function of its inputs: identical input sets
// produce byte-identical output regardless of adapter completion order,
// which the cache layer relies on.
//
// Winner selection within a (category, figureId) group:
//  1. highest source priority (authoritative > scraped > fallback),
//  2. richer record (more valid colors, non-default name, known rarity),
//  3. first-seen order.
func Merge(items []models.CatalogItem, opts Options) []models.CatalogItem {
	type candidate struct {
		item models.CatalogItem
		// contested is true once any group member classified above
		// fallback confidence, whoever ends up winning.
		contested bool
	}

	groups := make(map[string]candidate)
	order := make([]string, 0, len(items))

	for _, item := range items {
		key := string(item.Category) + ":" + item.FigureID
		cur, ok := groups[key]
		if !ok {
			groups[key] = candidate{
				item:      item,
				contested: item.Confidence != models.ConfidenceFallback,
			}
			order = append(order, key)
			continue
		}
		cur.contested = cur.contested || item.Confidence != models.ConfidenceFallback
		if wins(item, cur.item) {
			cur.item = item
		}
		groups[key] = cur
	}

	out := make([]models.CatalogItem, 0, len(groups))
	for _, key := range order {
		c := groups[key]
		if opts.Strict && c.item.Confidence == models.ConfidenceFallback && !c.contested {
			continue
		}
		item := c.item
		item.ID = key
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return lessNumeric(out[i].FigureID, out[j].FigureID)
	})

	return out
}

// wins reports whether a should replace b as its group's winner.
func wins(a, b models.CatalogItem) bool {
	ap, bp := a.Source.Priority(), b.Source.Priority()
	if ap != bp {
		return ap > bp
	}
	ar, br := richness(a), richness(b)
	if ar != br {
		return ar > br
	}
	// Equal priority and richness: first seen stays.
	return false
}

// richness scores record completeness for the merge tie-break.
func richness(item models.CatalogItem) int {
	score := len(item.Colors)
	if item.Name != "" && item.Name != models.DefaultName(item.Category, item.FigureID) {
		score += 2
	}
	if item.Rarity != models.RarityCommon {
		score++
	}
	if item.Confidence == models.ConfidenceAuthoritative {
		score++
	}
	return score
}

// lessNumeric orders numeric figure-id strings ascending by value.
func lessNumeric(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
