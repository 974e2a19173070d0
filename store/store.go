// Package store holds the cache's entry table. Reads are lock-free over
// an immutable map snapshot; every mutation copies the map and swaps it
// in atomically.
//
// Copy-on-write fits a memoizing cache: reads vastly outnumber writes,
// and writes already pay for a producer invocation, so the copy is
// noise by comparison.
package store

import (
	"sync/atomic"

	"github.com/memocache/memocache/types"
)

// Store maps keys to live entries. Reads may run concurrently with one
// writer; mutations must be serialized by the caller (the cache's write
// mutex does this).
type Store struct {
	snap atomic.Value // map[string]*types.Entry
	size atomic.Int64
}

func New() *Store {
	s := &Store{}
	s.snap.Store(make(map[string]*types.Entry))
	return s
}

// Get returns the entry for key from the current snapshot.
func (s *Store) Get(key string) (*types.Entry, bool) {
	m := s.snap.Load().(map[string]*types.Entry)
	ent, ok := m[key]
	return ent, ok
}

// Put inserts or replaces an entry.
func (s *Store) Put(key string, ent *types.Entry) {
	old := s.snap.Load().(map[string]*types.Entry)
	next := make(map[string]*types.Entry, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[key] = ent
	s.snap.Store(next)
	s.size.Store(int64(len(next)))
}

// Delete removes an entry. Deleting an absent key still swaps in a copy;
// callers check presence first when that matters.
func (s *Store) Delete(key string) {
	old := s.snap.Load().(map[string]*types.Entry)
	next := make(map[string]*types.Entry, len(old))
	for k, v := range old {
		if k != key {
			next[k] = v
		}
	}
	s.snap.Store(next)
	s.size.Store(int64(len(next)))
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.snap.Store(make(map[string]*types.Entry))
	s.size.Store(0)
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	return int(s.size.Load())
}

// Snapshot returns the current map. The map is immutable; callers may
// iterate it freely but must not modify it.
func (s *Store) Snapshot() map[string]*types.Entry {
	return s.snap.Load().(map[string]*types.Entry)
}
