// Package memocache is an in-process memoizing cache. Given a key and a
// value-producing function it returns a cached result when present and
// fresh, or runs the producer exactly once, stores the result, and hands
// it to every concurrent caller for that key.
//
// The cache bounds its size (one LRU eviction per populate once over the
// limit), expires entries by per-key TTL timers, and invalidates by
// exact key or regular expression. Values are opaque in-memory objects;
// the cache never serializes, persists, or shares them across processes.
package memocache

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/memocache/memocache/eviction"
	"github.com/memocache/memocache/logging"
	"github.com/memocache/memocache/types"
)

// DefaultMaxEntries is the size bound applied when Config.MaxEntries is
// left zero.
const DefaultMaxEntries = 1000

// ErrNoLoader is returned by Get when no read-through Loader was
// configured at construction.
var ErrNoLoader = errors.New("memocache: no loader configured")

// Cache is the public contract. MemoCache is the real implementation;
// NullCache is a drop-in that never stores anything, for tests that want
// memoization switched off.
type Cache interface {
	// Lookup is a read-only probe: the stored value and true when key is
	// present and fresh, zero and false otherwise. It never runs a
	// producer, never errors, and does not refresh recency.
	Lookup(key string) (any, bool)

	// Get is the read-through path: on a miss it populates via the Loader
	// configured at construction. Returns ErrNoLoader when none is set.
	Get(ctx context.Context, key string) (any, error)

	// GetOrLoad returns the cached value for key or runs load to produce
	// it, applying the cache's default TTL. Concurrent callers for the
	// same key coalesce onto a single producer invocation and share its
	// result. Producer errors propagate unwrapped and cache nothing.
	GetOrLoad(ctx context.Context, key string, load types.LoadFunc) (any, error)

	// GetOrLoadTTL is GetOrLoad with an explicit TTL for this key.
	// ttl <= 0 means the entry never expires by timer.
	GetOrLoadTTL(ctx context.Context, key string, load types.LoadFunc, ttl time.Duration) (any, error)

	// Remove deletes an exact key and cancels its expiry timer.
	// Removing an absent key is a no-op.
	Remove(key string)

	// RemoveMatching deletes every key matching re and reports how many
	// were removed.
	RemoveMatching(re *regexp.Regexp) int

	// Clear removes all entries and cancels every armed expiry timer.
	Clear()

	// Len returns the current number of live entries.
	Len() int

	// Stats returns counter metrics when the cache was built with a
	// CounterMetrics, and the zero Stats otherwise.
	Stats() types.Stats

	// Close releases all entries and timers. The cache remains usable;
	// Close exists as an explicit teardown point.
	Close()
}

// Config controls a MemoCache. The zero value is usable: 1000 entries,
// no TTL, LRU eviction, no loader, no metrics, no logging.
type Config struct {
	// MaxEntries bounds the cache size. Zero means DefaultMaxEntries;
	// negative is a construction error. The bound is enforced lazily,
	// one eviction per populate, so the size may transiently overshoot.
	MaxEntries int

	// TTL is the default time-to-live applied by GetOrLoad. Zero means
	// entries never expire by timer; negative is a construction error.
	TTL time.Duration

	// Eviction selects the grooming victim strategy. Empty means LRU.
	Eviction eviction.PolicyType

	// Loader, when set, backs the read-through Get path.
	Loader types.Loader

	// Metrics receives lifecycle events. Nil means NoopMetrics.
	Metrics types.Metrics

	// Logger receives leveled diagnostics. Nil means NopLogger.
	Logger logging.Logger

	// OnEvict, when set, is called after grooming removes an entry.
	// It runs outside the cache's locks and must not call back into
	// blocking cache operations on the hot path.
	OnEvict func(key string, value any)
}
