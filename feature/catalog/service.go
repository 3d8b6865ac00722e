package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"catalog-engine/core/cache"
	"catalog-engine/feature/catalog/classify"
	"catalog-engine/feature/catalog/imaging"
	"catalog-engine/feature/catalog/merge"
	"catalog-engine/feature/catalog/models"
	"catalog-engine/feature/catalog/palette"
	"catalog-engine/feature/catalog/source"

	"go.uber.org/zap"
)

// ErrAllSourcesFailed is returned when no adapter produced a single
// record. With the synthetic adapter enabled this is unreachable: it
// always answers.
var ErrAllSourcesFailed = errors.New("all catalog sources failed")

// fallbackOnlyTTL bounds entries assembled purely from generated
// records, so a recovered upstream is picked up quickly.
const fallbackOnlyTTL = 10 * time.Minute

// Service runs the catalog unification pipeline: parallel source
// fetches, classification, palette validation, merge and caching.
type Service struct {
	sources []source.Source
	cache   *cache.Cache
	clock   cache.Clock
	logger  *zap.Logger
}

// NewService wires the pipeline. Sources are consulted in the given
// order for diagnostics; merge priority is decided by source family,
// not position. A nil clock defaults to time.Now.
func NewService(sources []source.Source, c *cache.Cache, clock cache.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{sources: sources, cache: c, clock: clock, logger: logger}
}

// Catalog answers one catalog request. Live cache entries are returned
// without touching the adapters; on miss or forceRefresh the full
// pipeline runs and its result replaces the entry atomically.
func (s *Service) Catalog(ctx context.Context, req models.Request) (*models.Response, error) {
	category, err := resolveCategory(req.Category)
	if err != nil {
		return nil, err
	}
	gender := req.Gender
	if gender == "" {
		gender = models.GenderUnisex
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender %q", req.Gender)
	}

	key := cache.Signature(
		string(category),
		string(gender),
		strings.ToLower(strings.TrimSpace(req.Search)),
		strconv.FormatBool(req.Strict),
	)

	value, cached, err := s.cache.GetOrCompute(ctx, key, req.ForceRefresh, func(ctx context.Context) ([]byte, time.Duration, error) {
		resp, ttl, err := s.assemble(ctx, category, gender, req)
		if err != nil {
			return nil, 0, err
		}
		data, err := json.Marshal(resp)
		if err != nil {
			return nil, 0, err
		}
		return data, ttl, nil
	})
	if err != nil {
		return nil, err
	}

	var resp models.Response
	if err := json.Unmarshal(value, &resp); err != nil {
		return nil, fmt.Errorf("decode cached catalog: %w", err)
	}
	resp.Metadata.Cached = cached

	// Thumbnails are resolved on the way out, never persisted.
	imaging.Annotate(resp.Items)

	return &resp, nil
}

// Categories summarises the catalog per category for the grid chrome.
func (s *Service) Categories(ctx context.Context, gender models.Gender) ([]models.CategoryCount, error) {
	resp, err := s.Catalog(ctx, models.Request{Category: "all", Gender: gender})
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Category]int)
	for _, item := range resp.Items {
		counts[item.Category]++
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for _, cat := range models.AllCategories {
		if n, ok := counts[cat]; ok {
			out = append(out, models.CategoryCount{ID: cat, Code: cat.Code(), Count: n})
		}
	}
	return out, nil
}

// assemble runs the full pipeline once: fan-out, classify, validate,
// merge, filter. It returns the response and the TTL the cache entry
// should carry.
func (s *Service) assemble(ctx context.Context, category models.Category, gender models.Gender, req models.Request) (*models.Response, time.Duration, error) {
	results := source.FetchAll(ctx, s.sources, category, gender)
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	breakdown := make(map[string]models.SourceStatus, len(results))
	classified := make([]models.CatalogItem, 0, 256)

	for _, res := range results {
		breakdown[string(res.Family)] = res.Status
		for _, raw := range res.Items {
			item, ok := buildItem(raw)
			if !ok {
				continue
			}
			if category != "" && item.Category != category {
				continue
			}
			if gender != models.GenderUnisex && item.Gender != gender && item.Gender != models.GenderUnisex {
				continue
			}
			classified = append(classified, item)
		}
	}

	if len(classified) == 0 {
		return nil, 0, ErrAllSourcesFailed
	}

	items := merge.Merge(classified, merge.Options{Strict: req.Strict})
	items = filterSearch(items, req.Search)

	resp := &models.Response{
		Items: items,
		Metadata: models.Metadata{
			TotalItems:        len(items),
			CategoriesPresent: categoriesPresent(items),
			SourceBreakdown:   breakdown,
			GeneratedAt:       s.clock().UTC(),
		},
	}

	return resp, s.entryTTL(results), nil
}

// buildItem classifies and validates one raw record. Items whose
// figure id cannot address a renderable asset are rejected.
func buildItem(raw models.RawItem) (models.CatalogItem, bool) {
	res, ok := classify.Classify(raw)
	if !ok {
		return models.CatalogItem{}, false
	}

	colors := palette.Normalize(raw.DeclaredColors, res.Category)

	name := strings.TrimSpace(raw.DeclaredName)
	if name == "" {
		name = models.DefaultName(res.Category, res.FigureID)
	}

	return models.CatalogItem{
		ID:         string(raw.Source) + ":" + string(res.Category) + ":" + res.FigureID,
		Category:   res.Category,
		FigureID:   res.FigureID,
		Gender:     res.Gender,
		Colors:     colors,
		Rarity:     res.Rarity,
		Club:       raw.DeclaredClub || res.Rarity == models.RarityClubOnly,
		Name:       name,
		Source:     raw.Source,
		Confidence: res.Confidence,
	}, true
}

// entryTTL is the shortest TTL among the sources that contributed a
// non-fallback record, so the entry expires as soon as its least
// stable ingredient would. Fallback-only entries get a short fixed TTL.
func (s *Service) entryTTL(results []source.Result) time.Duration {
	ttl := time.Duration(0)
	for _, res := range results {
		if res.Family == models.SourceFallback || len(res.Items) == 0 {
			continue
		}
		if ttl == 0 || res.TTL < ttl {
			ttl = res.TTL
		}
	}
	if ttl == 0 {
		return fallbackOnlyTTL
	}
	return ttl
}

func filterSearch(items []models.CatalogItem, search string) []models.CatalogItem {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items
	}
	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), search) ||
			strings.Contains(item.FigureID, search) {
			out = append(out, item)
		}
	}
	return out
}

func categoriesPresent(items []models.CatalogItem) []models.Category {
	seen := make(map[models.Category]struct{})
	for _, item := range items {
		seen[item.Category] = struct{}{}
	}
	out := make([]models.Category, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// resolveCategory accepts a category token, a two-letter wire code, or
// "all"/"" for the whole catalog.
func resolveCategory(raw string) (models.Category, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "all" {
		return "", nil
	}
	if cat := models.Category(raw); cat.IsValid() {
		return cat, nil
	}
	if cat, ok := models.CategoryFromCode(raw); ok {
		return cat, nil
	}
	return "", fmt.Errorf("unknown category %q", raw)
}
