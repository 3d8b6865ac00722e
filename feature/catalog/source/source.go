package source

import (
	"context"
	"sync"
	"time"

	"catalog-engine/feature/catalog/models"
)

// Source is one upstream family of item descriptions. Adapters own
// exactly one upstream contract and translate every native failure mode
// (HTTP status, malformed payload, timeout) into a SourceStatus; no
// upstream-specific error shape crosses this boundary.
type Source interface {
	// Name identifies the adapter in logs and source breakdowns.
	Name() string

	// Family tags the records this adapter produces.
	Family() models.SourceFamily

	// TTL is the freshness window of this source's data. The cache
	// layer takes the minimum across contributing sources.
	TTL() time.Duration

	// Fetch returns raw items for the given filters. A zero Category
	// means all categories. Fetch never returns an error: failures
	// degrade to a status plus a possibly empty item list.
	Fetch(ctx context.Context, category models.Category, gender models.Gender) ([]models.RawItem, models.SourceStatus)
}

// Result pairs one adapter's output with its terminal status.
type Result struct {
	Name   string
	Family models.SourceFamily
	TTL    time.Duration
	Items  []models.RawItem
	Status models.SourceStatus
}

// FetchAll fans out one goroutine per source and waits for every fetch
// to reach a terminal state. Results keep the source registration
// order, so downstream processing is independent of completion order.
// Each adapter bounds its own timeout; ctx cancellation propagates to
// all in-flight fetches.
func FetchAll(ctx context.Context, sources []Source, category models.Category, gender models.Gender) []Result {
	results := make([]Result, len(sources))

	var wg sync.WaitGroup
	wg.Add(len(sources))
	for i, src := range sources {
		go func(i int, src Source) {
			defer wg.Done()
			items, status := src.Fetch(ctx, category, gender)
			results[i] = Result{
				Name:   src.Name(),
				Family: src.Family(),
				TTL:    src.TTL(),
				Items:  items,
				Status: status,
			}
		}(i, src)
	}
	wg.Wait()

	return results
}
