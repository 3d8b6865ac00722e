package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-engine/core/cache"
	"catalog-engine/feature/catalog/models"
	"catalog-engine/feature/catalog/source"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubSource is a scriptable adapter for service tests.
type stubSource struct {
	name    string
	family  models.SourceFamily
	ttl     time.Duration
	items   []models.RawItem
	status  models.SourceStatus
	fetches int32
}

func (s *stubSource) Name() string                { return s.name }
func (s *stubSource) Family() models.SourceFamily { return s.family }
func (s *stubSource) TTL() time.Duration          { return s.ttl }

func (s *stubSource) Fetch(ctx context.Context, category models.Category, gender models.Gender) ([]models.RawItem, models.SourceStatus) {
	atomic.AddInt32(&s.fetches, 1)
	return s.items, s.status
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func authoritativeStub() *stubSource {
	return &stubSource{
		name: "figuredata", family: models.SourceAuthoritative, ttl: 24 * time.Hour,
		status: models.StatusOK,
		items: []models.RawItem{
			{Identifier: "ch_3", DeclaredCategory: "ch", DeclaredGender: "U", DeclaredColors: []string{"1", "92"}, Source: models.SourceAuthoritative},
			{Identifier: "hr_890", DeclaredCategory: "hr", DeclaredGender: "F", DeclaredColors: []string{"45"}, DeclaredClub: true, Source: models.SourceAuthoritative},
		},
	}
}

func scrapedStub() *stubSource {
	return &stubSource{
		name: "widgets", family: models.SourceScraped, ttl: time.Hour,
		status: models.StatusOK,
		items: []models.RawItem{
			// Same logical item as the manifest's ch_3, plus one extra.
			{Identifier: "ch_3_basic", Source: models.SourceScraped},
			{Identifier: "classic_hat_25", Source: models.SourceScraped},
		},
	}
}

func fallbackStub() *stubSource {
	return &stubSource{
		name: "synthetic", family: models.SourceFallback, ttl: 10 * time.Minute,
		status: models.StatusOK,
		items: []models.RawItem{
			{Identifier: "ch_1", DeclaredGender: "U", DeclaredColors: []string{"1"}, Source: models.SourceFallback},
			{Identifier: "ch_3", DeclaredGender: "U", DeclaredColors: []string{"1"}, Source: models.SourceFallback},
		},
	}
}

func newTestService(clock *testClock, sources ...source.Source) *Service {
	c := cache.New(cache.NewMemoryStore(), clock.Now, zap.NewNop())
	return NewService(sources, c, clock.Now, zap.NewNop())
}

func TestService_Catalog_MergesAcrossSources(t *testing.T) {
	clock := newTestClock()
	svc := newTestService(clock, authoritativeStub(), scrapedStub(), fallbackStub())

	resp, err := svc.Catalog(context.Background(), models.Request{})
	assert.NoError(t, err)

	byID := make(map[string]models.CatalogItem)
	for _, it := range resp.Items {
		byID[it.ID] = it
	}

	// ch_3 exists in all three sources and survives exactly once,
	// with the authoritative record winning.
	shirt, ok := byID["shirt:3"]
	assert.True(t, ok)
	assert.Equal(t, models.SourceAuthoritative, shirt.Source)
	assert.Equal(t, models.ConfidenceAuthoritative, shirt.Confidence)
	assert.Equal(t, []string{"1", "92"}, shirt.Colors)

	// The scraper-only and fallback-only items are retained.
	assert.Contains(t, byID, "hat:25")
	assert.Contains(t, byID, "shirt:1")
	assert.Contains(t, byID, "hair:890")
	assert.Len(t, resp.Items, 4)

	assert.Equal(t, 4, resp.Metadata.TotalItems)
	assert.Equal(t, models.StatusOK, resp.Metadata.SourceBreakdown["authoritative"])
	assert.False(t, resp.Metadata.Cached)
	assert.Equal(t, clock.Now(), resp.Metadata.GeneratedAt)

	// Thumbnails are attached on the way out.
	for _, it := range resp.Items {
		assert.NotEmpty(t, it.ThumbnailURL)
	}
}

func TestService_Catalog_ServesFromCache(t *testing.T) {
	clock := newTestClock()
	auth := authoritativeStub()
	svc := newTestService(clock, auth)

	_, err := svc.Catalog(context.Background(), models.Request{})
	assert.NoError(t, err)

	resp, err := svc.Catalog(context.Background(), models.Request{})
	assert.NoError(t, err)
	assert.True(t, resp.Metadata.Cached)
	assert.EqualValues(t, 1, auth.fetches)

	// A different filter combination is a different cache entry.
	_, err = svc.Catalog(context.Background(), models.Request{Gender: models.GenderFemale})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, auth.fetches)
}

func TestService_Catalog_ForceRefresh(t *testing.T) {
	clock := newTestClock()
	auth := authoritativeStub()
	svc := newTestService(clock, auth)

	_, _ = svc.Catalog(context.Background(), models.Request{})
	resp, err := svc.Catalog(context.Background(), models.Request{ForceRefresh: true})
	assert.NoError(t, err)
	assert.False(t, resp.Metadata.Cached)
	assert.EqualValues(t, 2, auth.fetches)
}

func TestService_Catalog_EntryTTLFollowsLeastStableSource(t *testing.T) {
	clock := newTestClock()
	auth := authoritativeStub()
	scraped := scrapedStub()
	svc := newTestService(clock, auth, scraped)

	_, err := svc.Catalog(context.Background(), models.Request{})
	assert.NoError(t, err)

	// The scraped TTL (1h) bounds the entry even though the manifest
	// would stay fresh for a day.
	clock.Advance(59 * time.Minute)
	_, _ = svc.Catalog(context.Background(), models.Request{})
	assert.EqualValues(t, 1, auth.fetches)

	clock.Advance(2 * time.Minute)
	_, _ = svc.Catalog(context.Background(), models.Request{})
	assert.EqualValues(t, 2, auth.fetches)
}

func TestService_Catalog_FallbackOnlyTTL(t *testing.T) {
	clock := newTestClock()
	down := &stubSource{name: "figuredata", family: models.SourceAuthoritative, ttl: 24 * time.Hour, status: models.StatusUnavailable}
	fallback := fallbackStub()
	svc := newTestService(clock, down, fallback)

	_, err := svc.Catalog(context.Background(), models.Request{})
	assert.NoError(t, err)

	// Fallback-only entries expire quickly so a recovered upstream is
	// picked up without waiting out a long TTL.
	clock.Advance(11 * time.Minute)
	_, _ = svc.Catalog(context.Background(), models.Request{})
	assert.EqualValues(t, 2, down.fetches)
}

func TestService_Catalog_TotalOutageDegradesHonestly(t *testing.T) {
	clock := newTestClock()
	svc := newTestService(clock,
		&stubSource{name: "figuredata", family: models.SourceAuthoritative, status: models.StatusUnavailable},
		&stubSource{name: "widgets", family: models.SourceScraped, status: models.StatusUnavailable},
		fallbackStub(),
	)

	resp, err := svc.Catalog(context.Background(), models.Request{})
	assert.NoError(t, err)

	assert.Greater(t, resp.Metadata.TotalItems, 0)
	assert.Equal(t, models.StatusUnavailable, resp.Metadata.SourceBreakdown["authoritative"])
	assert.Equal(t, models.StatusUnavailable, resp.Metadata.SourceBreakdown["scraped"])
	assert.Equal(t, models.StatusOK, resp.Metadata.SourceBreakdown["fallback"])

	for _, it := range resp.Items {
		assert.Equal(t, models.SourceFallback, it.Source)
	}
}

func TestService_Catalog_EveryCategoryServedByFallback(t *testing.T) {
	clock := newTestClock()
	svc := newTestService(clock,
		&stubSource{name: "figuredata", family: models.SourceAuthoritative, status: models.StatusUnavailable},
		&stubSource{name: "widgets", family: models.SourceScraped, status: models.StatusUnavailable},
		source.NewSyntheticSource(source.SyntheticConfig{}),
	)

	for _, cat := range models.AllCategories {
		resp, err := svc.Catalog(context.Background(), models.Request{Category: string(cat)})
		assert.NoError(t, err, string(cat))
		assert.NotEmpty(t, resp.Items, string(cat))
		for _, it := range resp.Items {
			assert.Equal(t, cat, it.Category)
		}
	}
}

func TestService_Catalog_AllSourcesFailed(t *testing.T) {
	clock := newTestClock()
	svc := newTestService(clock,
		&stubSource{name: "figuredata", family: models.SourceAuthoritative, status: models.StatusUnavailable},
	)

	_, err := svc.Catalog(context.Background(), models.Request{})
	assert.ErrorIs(t, err, ErrAllSourcesFailed)
}

func TestService_Catalog_Filters(t *testing.T) {
	clock := newTestClock()

	t.Run("Category", func(t *testing.T) {
		svc := newTestService(clock, authoritativeStub())
		resp, err := svc.Catalog(context.Background(), models.Request{Category: "hair"})
		assert.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, models.CategoryHair, resp.Items[0].Category)
	})

	t.Run("Category by wire code", func(t *testing.T) {
		svc := newTestService(clock, authoritativeStub())
		resp, err := svc.Catalog(context.Background(), models.Request{Category: "hr"})
		assert.NoError(t, err)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("Unknown category rejected", func(t *testing.T) {
		svc := newTestService(clock, authoritativeStub())
		_, err := svc.Catalog(context.Background(), models.Request{Category: "pants"})
		assert.Error(t, err)
	})

	t.Run("Invalid gender rejected", func(t *testing.T) {
		svc := newTestService(clock, authoritativeStub())
		_, err := svc.Catalog(context.Background(), models.Request{Gender: "X"})
		assert.Error(t, err)
	})

	t.Run("Gender keeps unisex", func(t *testing.T) {
		svc := newTestService(clock, authoritativeStub())
		resp, err := svc.Catalog(context.Background(), models.Request{Gender: models.GenderFemale})
		assert.NoError(t, err)
		// ch_3 is unisex, hr_890 is female.
		assert.Len(t, resp.Items, 2)
	})

	t.Run("Search on default name", func(t *testing.T) {
		svc := newTestService(clock, authoritativeStub())
		resp, err := svc.Catalog(context.Background(), models.Request{Search: "hair"})
		assert.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, models.CategoryHair, resp.Items[0].Category)
	})
}

func TestService_Categories(t *testing.T) {
	clock := newTestClock()
	svc := newTestService(clock, authoritativeStub(), scrapedStub())

	counts, err := svc.Categories(context.Background(), models.GenderUnisex)
	assert.NoError(t, err)

	got := make(map[models.Category]int)
	for _, c := range counts {
		got[c.ID] = c.Count
		assert.NotEmpty(t, c.Code)
	}
	assert.Equal(t, 1, got[models.CategoryHair])
	assert.Equal(t, 1, got[models.CategoryShirt])
	assert.Equal(t, 1, got[models.CategoryHat])
}
