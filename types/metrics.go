package types

import "sync/atomic"

// Metrics receives cache lifecycle events. The cache calls these on hot
// paths, so implementations must be cheap and must not block.
type Metrics interface {
	// Hit is called when a populate-path read finds a fresh entry.
	Hit()

	// Miss is called when a key is absent or stale and a producer runs.
	Miss()

	// Eviction is called when grooming removes an entry to stay within
	// the size bound.
	Eviction()

	// Expire is called when an entry is removed because its TTL passed.
	Expire()
}

// NoopMetrics ignores all events. It is the default so call sites never
// nil-check.
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}

// Stats is a point-in-time snapshot of counter metrics.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64
	HitRate     float64 // hits / (hits + misses), 0 when no reads yet
}

// CounterMetrics counts events with atomics. Safe for concurrent use.
type CounterMetrics struct {
	hits        atomic.Int64
	misses      atomic.Int64
	evictions   atomic.Int64
	expirations atomic.Int64
}

func (m *CounterMetrics) Hit()      { m.hits.Add(1) }
func (m *CounterMetrics) Miss()     { m.misses.Add(1) }
func (m *CounterMetrics) Eviction() { m.evictions.Add(1) }
func (m *CounterMetrics) Expire()   { m.expirations.Add(1) }

// Snapshot returns the current counter values. The snapshot is not
// atomic across counters; individual counters are exact.
func (m *CounterMetrics) Snapshot() Stats {
	s := Stats{
		Hits:        m.hits.Load(),
		Misses:      m.misses.Load(),
		Evictions:   m.evictions.Load(),
		Expirations: m.expirations.Load(),
	}
	if reads := s.Hits + s.Misses; reads > 0 {
		s.HitRate = float64(s.Hits) / float64(reads)
	}
	return s
}
