package store

import (
	"sync"
	"testing"
	"time"

	"github.com/memocache/memocache/types"
)

func entry(key string) *types.Entry {
	return &types.Entry{Key: key, Value: key, StoredAt: time.Now()}
}

func TestPutGetDelete(t *testing.T) {
	s := New()

	if _, ok := s.Get("k"); ok {
		t.Fatal("empty store reported a hit")
	}

	s.Put("k", entry("k"))
	ent, ok := s.Get("k")
	if !ok || ent.Value != "k" {
		t.Fatalf("Get = %v, %v", ent, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	s.Delete("k")
	if _, ok := s.Get("k"); ok {
		t.Fatal("deleted key still present")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestPutReplaces(t *testing.T) {
	s := New()

	s.Put("k", entry("k"))
	repl := entry("k")
	repl.Value = "v2"
	s.Put("k", repl)

	ent, _ := s.Get("k")
	if ent.Value != "v2" {
		t.Fatalf("Value = %v, want v2", ent.Value)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestSnapshotIsStable(t *testing.T) {
	s := New()
	s.Put("a", entry("a"))

	snap := s.Snapshot()
	s.Put("b", entry("b"))

	// A snapshot taken before a write must not observe it.
	if _, ok := snap["b"]; ok {
		t.Fatal("snapshot mutated by later write")
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot len = %d, want 1", len(snap))
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Put("a", entry("a"))
	s.Put("b", entry("b"))

	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("Len = %d after Clear, want 0", s.Len())
	}
	if _, ok := s.Get("a"); ok {
		t.Fatal("entry survived Clear")
	}
}

// Readers run lock-free against snapshots while one writer mutates.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	s := New()
	s.Put("k", entry("k"))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					if ent, ok := s.Get("k"); ok && ent.Value != "k" {
						t.Errorf("Get returned %v", ent.Value)
						return
					}
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		s.Put("other", entry("other"))
		s.Delete("other")
	}
	close(done)
	wg.Wait()
}
