// Package catalog implements the catalog unification engine.
//
// It aggregates clothing and accessory item descriptions from several
// mutually inconsistent upstream sources and produces one canonical,
// validated catalog for the avatar editors, grids and renderers.
//
// # Pipeline
//
// A catalog request fans out one concurrent fetch per source adapter
// (authoritative figure manifest, scraped community catalog, synthetic
// fallback). Raw records pass through the attribute classifier and the
// color palette validator, then the merge engine collapses duplicates
// under the source priority policy. The merged snapshot is cached under
// a deterministic request signature with a TTL derived from its least
// stable contributing source.
//
// # Degradation
//
// Adapter failures never fail a request: each fetch resolves to a
// status (ok, partial, unavailable, malformed) reported honestly in the
// response metadata, and the synthetic adapter guarantees a usable
// catalog even during a total upstream outage.
//
// # Components
//
//   - source:   adapters with uniform Fetch semantics
//   - classify: ordered rule-table classifier for ambiguous identifiers
//   - palette:  fixed per-category-group color palettes
//   - merge:    deterministic multi-source deduplication
//   - imaging:  thumbnail URL resolution with ordered fallbacks
//   - Service:  orchestration and caching
//   - Handler:  HTTP endpoints (GET /catalog, GET /catalog/categories)
package catalog
