// Package cache provides the TTL snapshot cache for merged catalog
// results.
//
// # Design
//
// The cache stores opaque byte values under deterministic request
// signatures. Entries are immutable snapshots: a refresh replaces the
// whole entry atomically, readers never observe partial updates.
//
// # Stampede Protection
//
// Concurrent misses for the same key collapse into one computation via
// singleflight. The first writer wins; later writers discard their
// result and read the fresh entry, avoiding redundant upstream load.
//
// # Clock Injection
//
// Expiry is evaluated against an injected Clock, so tests can advance
// time without sleeping.
//
// # Backends
//
// Two Store implementations exist: MemoryStore (default) and GormStore
// (a relational api_cache table used when a database is configured).
package cache
