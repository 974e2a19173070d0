// Command main walks through the cache's behavior: miss, hit, TTL
// expiry, single-flight coalescing, eviction, and pattern invalidation.
package main

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/memocache/memocache"
	"github.com/memocache/memocache/eviction"
	"github.com/memocache/memocache/logging"
	"github.com/memocache/memocache/types"
)

func main() {
	ctx := context.Background()

	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()

	metrics := &types.CounterMetrics{}

	cache, err := memocache.New(memocache.Config{
		MaxEntries: 20,
		Eviction:   eviction.LRU,
		Metrics:    metrics,
		Logger:     logging.NewZapLogger(zl),
	})
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	fmt.Println("\n==================== 1) CACHE MISS ====================")
	v, _ := cache.GetOrLoad(ctx, "greeting", func(ctx context.Context) (any, error) {
		fmt.Println("PRODUCER → computing greeting")
		return "hello", nil
	})
	fmt.Println("CACHE  → GET greeting =", v)

	fmt.Println("\n==================== 2) CACHE HIT ====================")
	v, _ = cache.GetOrLoad(ctx, "greeting", func(ctx context.Context) (any, error) {
		fmt.Println("PRODUCER → should not run")
		return nil, nil
	})
	fmt.Println("CACHE  → GET greeting =", v)

	fmt.Println("\n==================== 3) TTL EXPIRY ====================")
	cache.GetOrLoadTTL(ctx, "session", func(ctx context.Context) (any, error) {
		return "token-abc", nil
	}, 1*time.Second)
	fmt.Println("CACHE  → stored session (TTL = 1s)")

	time.Sleep(1500 * time.Millisecond)

	if _, ok := cache.Lookup("session"); !ok {
		fmt.Println("CACHE  → session expired")
	}

	fmt.Println("\n==================== 4) SINGLE-FLIGHT ====================")
	var produced atomic.Int64
	slow := func(ctx context.Context) (any, error) {
		produced.Add(1)
		time.Sleep(100 * time.Millisecond)
		return "expensive", nil
	}

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := cache.GetOrLoad(ctx, "expensive", slow)
			fmt.Printf("GOROUTINE-%d → GET expensive = %v\n", id, val)
		}(i)
	}
	wg.Wait()
	fmt.Println("PRODUCER → ran", produced.Load(), "time(s) for 5 callers")

	fmt.Println("\n==================== 5) EVICTION ====================")
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("k%d", i)
		cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
			return i, nil
		})
	}
	fmt.Println("CACHE  → size after 50 inserts (bound 20) =", cache.Len())

	fmt.Println("\n==================== 6) PATTERN CLEAR ====================")
	cache.GetOrLoad(ctx, "user:1", func(ctx context.Context) (any, error) { return "alice", nil })
	cache.GetOrLoad(ctx, "user:2", func(ctx context.Context) (any, error) { return "bob", nil })
	cache.GetOrLoad(ctx, "order:1", func(ctx context.Context) (any, error) { return "widget", nil })

	n := cache.RemoveMatching(regexp.MustCompile(`^user:`))
	fmt.Println("CACHE  → cleared", n, "user keys")
	_, ok := cache.Lookup("order:1")
	fmt.Println("CACHE  → order:1 still cached =", ok)

	fmt.Println("\n==================== METRICS ====================")
	s := metrics.Snapshot()
	fmt.Printf("HITS        : %d\n", s.Hits)
	fmt.Printf("MISSES      : %d\n", s.Misses)
	fmt.Printf("EVICTIONS   : %d\n", s.Evictions)
	fmt.Printf("EXPIRATIONS : %d\n", s.Expirations)
	fmt.Printf("HIT RATE    : %.2f\n", s.HitRate)
}
