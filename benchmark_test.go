package memocache_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/memocache/memocache"
)

func newBenchmarkCache(b *testing.B) *memocache.MemoCache {
	b.Helper()
	c, err := memocache.New(memocache.Config{MaxEntries: 100000})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.Cleanup(c.Close)
	return c
}

func identity(key string) func(context.Context) (any, error) {
	return func(context.Context) (any, error) { return key, nil }
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkLookupHit(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(b)
	c.GetOrLoad(ctx, "key", identity("key"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Lookup("key")
	}
}

func BenchmarkGetOrLoadHit(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(b)
	c.GetOrLoad(ctx, "key", identity("key"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrLoad(ctx, "key", identity("key"))
	}
}

func BenchmarkGetOrLoadMiss(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("miss-%d", i)
		c.GetOrLoad(ctx, key, identity(key))
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkParallelGetOrLoad(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(b)

	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("key-%d", i)
		c.GetOrLoad(ctx, key, identity(key))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.GetOrLoad(ctx, "key-42", identity("key-42"))
		}
	})
}

func BenchmarkParallelLookup(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(b)
	c.GetOrLoad(ctx, "key", identity("key"))

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Lookup("key")
		}
	})
}
