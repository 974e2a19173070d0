package memocache

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/memocache/memocache/eviction"
	"github.com/memocache/memocache/logging"
	"github.com/memocache/memocache/store"
	"github.com/memocache/memocache/types"
	"golang.org/x/sync/singleflight"
)

// MemoCache is the Cache implementation. Reads go lock-free through a
// copy-on-write entry store; mutations and eviction bookkeeping are
// serialized behind a single write mutex. Per-key populate coalescing is
// delegated to singleflight, which releases waiters on success and
// failure alike.
type MemoCache struct {
	st     *store.Store
	sf     singleflight.Group
	policy eviction.Policy

	mu     sync.Mutex // guards store mutation, policy, timers
	timers map[string]*time.Timer

	// grooming is a best-effort skip guard: a populate that finds a pass
	// already running returns instead of queueing a second one.
	grooming atomic.Bool

	maxEntries int
	defaultTTL time.Duration
	policyType eviction.PolicyType
	loader     types.Loader
	metrics    types.Metrics
	log        logging.Logger
	onEvict    func(key string, value any)
}

var _ Cache = (*MemoCache)(nil)

// New builds a MemoCache, applying defaults for zero-valued fields and
// failing fast on invalid configuration.
func New(cfg Config) (*MemoCache, error) {
	if cfg.MaxEntries < 0 {
		return nil, fmt.Errorf("memocache: MaxEntries must be >= 0, got %d", cfg.MaxEntries)
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("memocache: TTL must be >= 0, got %s", cfg.TTL)
	}
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Eviction == "" {
		cfg.Eviction = eviction.LRU
	}
	switch cfg.Eviction {
	case eviction.LRU, eviction.LFU, eviction.FIFO:
	default:
		return nil, fmt.Errorf("memocache: unknown eviction policy %q", cfg.Eviction)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = types.NoopMetrics{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger{}
	}

	return &MemoCache{
		st:         store.New(),
		policy:     eviction.New(cfg.Eviction),
		timers:     make(map[string]*time.Timer),
		maxEntries: cfg.MaxEntries,
		defaultTTL: cfg.TTL,
		policyType: cfg.Eviction,
		loader:     cfg.Loader,
		metrics:    cfg.Metrics,
		log:        cfg.Logger,
		onEvict:    cfg.OnEvict,
	}, nil
}

// Lookup is the read-only probe. It does not refresh recency and never
// runs a producer. An entry whose deadline passed before its timer fired
// is reaped here rather than returned stale.
func (c *MemoCache) Lookup(key string) (any, bool) {
	ent, ok := c.st.Get(key)
	if !ok {
		c.log.Debugf("lookup miss key=%s", key)
		return nil, false
	}
	if ent.Expired(time.Now()) {
		c.reapExpired(key, ent)
		c.log.Debugf("lookup miss key=%s (expired)", key)
		return nil, false
	}
	c.log.Debugf("lookup hit key=%s", key)
	return ent.Value, true
}

// Get populates misses through the Loader configured at construction.
func (c *MemoCache) Get(ctx context.Context, key string) (any, error) {
	if c.loader == nil {
		return nil, ErrNoLoader
	}
	return c.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return c.loader.Load(ctx, key)
	})
}

// GetOrLoad returns the cached value for key or produces it with load,
// applying the cache's default TTL.
func (c *MemoCache) GetOrLoad(ctx context.Context, key string, load types.LoadFunc) (any, error) {
	return c.GetOrLoadTTL(ctx, key, load, c.defaultTTL)
}

// GetOrLoadTTL is GetOrLoad with an explicit TTL for this key.
//
// The producer runs at most once concurrently per key: all callers that
// miss while a flight is active block on that flight and share its
// result. A producer error reaches every coalesced caller unwrapped,
// caches nothing, and ends the flight, so the next call retries.
func (c *MemoCache) GetOrLoadTTL(ctx context.Context, key string, load types.LoadFunc, ttl time.Duration) (any, error) {
	if v, ok := c.touch(key); ok {
		c.metrics.Hit()
		c.log.Debugf("hit key=%s", key)
		return v, nil
	}
	c.metrics.Miss()
	c.log.Debugf("miss key=%s", key)

	v, err, _ := c.sf.Do(key, func() (any, error) {
		// A flight that finished between our miss and joining the group
		// has already populated the key.
		if v, ok := c.touch(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.put(key, v, ttl)
		c.groom()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Remove deletes an exact key, cancelling its timer. No-op when absent.
func (c *MemoCache) Remove(key string) {
	c.mu.Lock()
	_, ok := c.st.Get(key)
	if ok {
		c.deleteLocked(key)
	}
	c.mu.Unlock()
	if ok {
		c.log.Debugf("removed key=%s", key)
	}
}

// RemoveMatching deletes every key matching re against the current key
// set and returns the number removed.
func (c *MemoCache) RemoveMatching(re *regexp.Regexp) int {
	c.log.Noticef("clearing keys matching %s", re)
	removed := 0
	for key := range c.st.Snapshot() {
		if !re.MatchString(key) {
			continue
		}
		c.mu.Lock()
		if _, ok := c.st.Get(key); ok {
			c.deleteLocked(key)
			removed++
			c.log.Debugf("removed key=%s", key)
		}
		c.mu.Unlock()
	}
	return removed
}

// Clear removes every entry and cancels every armed timer.
func (c *MemoCache) Clear() {
	c.mu.Lock()
	n := c.st.Len()
	c.st.Clear()
	c.policy = eviction.New(c.policyType)
	for key, t := range c.timers {
		t.Stop()
		delete(c.timers, key)
	}
	c.mu.Unlock()
	c.log.Noticef("cleared %d entries", n)
}

// Len returns the current number of live entries.
func (c *MemoCache) Len() int {
	return c.st.Len()
}

// Stats returns the counter snapshot when the cache was built with a
// CounterMetrics, and the zero Stats otherwise.
func (c *MemoCache) Stats() types.Stats {
	if m, ok := c.metrics.(*types.CounterMetrics); ok {
		return m.Snapshot()
	}
	return types.Stats{}
}

// Close drops all entries and timers. Safe to call more than once.
func (c *MemoCache) Close() {
	c.Clear()
}

// touch returns a fresh entry's value, refreshing its recency. Expired
// entries are reaped and reported absent.
func (c *MemoCache) touch(key string) (any, bool) {
	ent, ok := c.st.Get(key)
	if !ok {
		return nil, false
	}
	now := time.Now()
	if ent.Expired(now) {
		c.reapExpired(key, ent)
		return nil, false
	}
	c.mu.Lock()
	ent.StoredAt = now
	c.policy.OnGet(key)
	c.mu.Unlock()
	return ent.Value, true
}

// put stores a freshly produced value, arming an expiry timer when ttl
// is positive. A timer left over from a previous entry under the same
// key is stopped so it cannot fire against the new value.
func (c *MemoCache) put(key string, value any, ttl time.Duration) {
	now := time.Now()
	ent := &types.Entry{Key: key, Value: value, StoredAt: now}
	if ttl > 0 {
		ent.ExpireAt = now.Add(ttl)
	}

	c.mu.Lock()
	if t, ok := c.timers[key]; ok {
		t.Stop()
		delete(c.timers, key)
	}
	c.st.Put(key, ent)
	c.policy.OnPut(key)
	if ttl > 0 {
		c.timers[key] = time.AfterFunc(ttl, func() {
			c.reapExpired(key, ent)
		})
	}
	c.mu.Unlock()
	c.log.Debugf("stored key=%s ttl=%s", key, ttl)
}

// groom enforces the size bound after a populate. At most one entry is
// evicted per pass; sustained over-pressure drains across subsequent
// populates. A pass already in progress is skipped, not queued.
func (c *MemoCache) groom() {
	if !c.grooming.CompareAndSwap(false, true) {
		return
	}
	defer c.grooming.Store(false)

	if c.st.Len() <= c.maxEntries {
		return
	}

	c.mu.Lock()
	victim := c.policy.Evict()
	var value any
	if victim != "" {
		if ent, ok := c.st.Get(victim); ok {
			value = ent.Value
		}
		c.st.Delete(victim)
		if t, ok := c.timers[victim]; ok {
			t.Stop()
			delete(c.timers, victim)
		}
	}
	c.mu.Unlock()

	if victim == "" {
		return
	}
	c.metrics.Eviction()
	c.log.Infof("evicted key=%s", victim)
	if c.onEvict != nil {
		c.onEvict(victim, value)
	}
}

// reapExpired removes an entry whose TTL has passed. It runs both as the
// timer callback and inline when a read observes a passed deadline, so
// it re-checks that the live entry is still the one it was armed for: a
// newer value under the same key owns its own timer and must survive.
func (c *MemoCache) reapExpired(key string, ent *types.Entry) {
	c.mu.Lock()
	cur, ok := c.st.Get(key)
	if !ok || cur != ent {
		c.mu.Unlock()
		return
	}
	c.deleteLocked(key)
	c.mu.Unlock()
	c.metrics.Expire()
	c.log.Debugf("expired key=%s", key)
}

// deleteLocked removes a key from the store, the eviction policy, and
// the timer table. Caller holds mu.
func (c *MemoCache) deleteLocked(key string) {
	c.st.Delete(key)
	c.policy.Remove(key)
	if t, ok := c.timers[key]; ok {
		t.Stop()
		delete(c.timers, key)
	}
}
