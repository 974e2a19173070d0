// Package eviction provides victim selection for the cache's grooming
// pass. A Policy only decides which key goes next; the cache owns the
// actual removal and runs at most one eviction per grooming pass.
package eviction

// Policy is the contract all eviction strategies satisfy. Implementations
// are not safe for concurrent use; the cache serializes calls behind its
// write mutex.
type Policy interface {
	// OnGet records a read of key. Recency- and frequency-based
	// strategies care; FIFO ignores it.
	OnGet(key string)

	// OnPut records the insertion of key. Already-tracked keys are a
	// no-op; overwrites do not reset a key's position.
	OnPut(key string)

	// Remove drops bookkeeping for a key deleted outside eviction
	// (explicit removal, TTL expiry, clear).
	Remove(key string)

	// Evict returns the next victim and drops its bookkeeping, or ""
	// when nothing is tracked.
	Evict() string
}

// PolicyType names a built-in eviction strategy.
type PolicyType string

const (
	// LRU evicts the key untouched for the longest time. The default.
	LRU PolicyType = "LRU"

	// LFU evicts the key with the fewest recorded reads.
	LFU PolicyType = "LFU"

	// FIFO evicts the oldest inserted key regardless of reads.
	FIFO PolicyType = "FIFO"
)

// New builds a fresh policy of the given type. It panics on an unknown
// type; callers validate PolicyType at configuration time.
func New(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("eviction: unknown policy type " + string(t))
	}
}
