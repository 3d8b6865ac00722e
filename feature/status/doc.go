// Package status implements operational health checks for the catalog
// engine.
//
// It exposes endpoints reporting whether the pieces the engine degrades
// around are actually there: upstream source endpoints, the manifest
// snapshot in object storage, and the persistent cache table schema.
//
// The checks never mutate anything. They exist so an operator can tell
// a healthy degraded catalog (fallback items, upstream down) apart from
// a broken deployment (missing snapshot, wrong cache schema).
package status
