package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Clock supplies the current time. Injected so tests can assert TTL
// expiry without sleeping.
type Clock func() time.Time

// Entry is one opaque cached value with its expiry.
type Entry struct {
	Key       string
	Value     []byte
	ExpiresAt time.Time
}

// Store persists entries. Implementations must provide atomic
// single-key upsert; no further transactional semantics are required.
type Store interface {
	// Get returns the entry for key, or nil when absent.
	Get(ctx context.Context, key string) (*Entry, error)
	// Put inserts or replaces the entry atomically.
	Put(ctx context.Context, entry Entry) error
	// Delete removes the entry for key if present.
	Delete(ctx context.Context, key string) error
}

// ComputeFunc produces a fresh value and the TTL it should live for.
type ComputeFunc func(ctx context.Context) ([]byte, time.Duration, error)

// Cache is a TTL snapshot cache with single-flight miss handling.
// Concurrent misses for the same key collapse into one computation;
// the first writer wins and later callers read the fresh entry.
// Values are immutable snapshots: a refresh replaces the entry
// atomically, so readers never observe a half-written value.
type Cache struct {
	store  Store
	clock  Clock
	logger *zap.Logger
	sf     singleflight.Group
}

// New creates a cache over the given store. A nil clock defaults to
// time.Now.
func New(store Store, clock Clock, logger *zap.Logger) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{store: store, clock: clock, logger: logger}
}

// GetOrCompute returns the live cached value for key, or computes,
// stores and returns a fresh one. The second return reports whether the
// value came from the cache. With force set, the lookup is skipped but
// the computed result still replaces the entry.
//
// A cancelled context never writes: callers either cache a complete
// result or nothing.
func (c *Cache) GetOrCompute(ctx context.Context, key string, force bool, compute ComputeFunc) ([]byte, bool, error) {
	if !force {
		if value := c.lookup(ctx, key); value != nil {
			return value, true, nil
		}
	}

	type computed struct {
		value  []byte
		cached bool
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight: a concurrent caller
		// may have refreshed the entry already.
		if !force {
			if value := c.lookup(ctx, key); value != nil {
				return computed{value: value, cached: true}, nil
			}
		}

		value, ttl, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		entry := Entry{Key: key, Value: value, ExpiresAt: c.clock().Add(ttl)}
		if err := c.store.Put(ctx, entry); err != nil {
			// A failed write only costs the next caller a recompute.
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
		return computed{value: value}, nil
	})
	if err != nil {
		return nil, false, err
	}

	res := result.(computed)
	return res.value, res.cached, nil
}

// Invalidate removes the entry for key.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}

// lookup returns the live value for key, evicting a stale entry.
func (c *Cache) lookup(ctx context.Context, key string) []byte {
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if entry == nil {
		return nil
	}
	if !c.clock().Before(entry.ExpiresAt) {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("stale entry eviction failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return entry.Value
}

// Signature builds a deterministic cache key from request parameters.
func Signature(parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
