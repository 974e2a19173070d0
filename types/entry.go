package types

import "time"

// Entry is a single cached value with its bookkeeping timestamps.
//
// Entries are mutable: StoredAt is refreshed on every successful
// populate-path read, under the cache's write mutex. ExpireAt is fixed
// at creation.
type Entry struct {
	Key      string
	Value    any
	StoredAt time.Time
	ExpireAt time.Time // zero => no TTL
}

// Expired reports whether the entry's deadline has passed at now.
// Entries with no TTL never expire.
func (e *Entry) Expired(now time.Time) bool {
	return !e.ExpireAt.IsZero() && now.After(e.ExpireAt)
}
