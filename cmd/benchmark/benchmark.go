// Command benchmark drives the cache with concurrent populate traffic
// and reports throughput.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/memocache/memocache"
	"github.com/memocache/memocache/logging"
	"github.com/memocache/memocache/types"
)

func main() {
	ctx := context.Background()

	const (
		capacity    = 200000
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
	)

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	metrics := &types.CounterMetrics{}
	cache, err := memocache.New(memocache.Config{
		MaxEntries: capacity,
		Metrics:    metrics,
		Logger:     logging.NewCharmLogger(charmlog.New(os.Stderr)),
	})
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	produce := func(key string, i int) types.LoadFunc {
		return func(context.Context) (any, error) { return i, nil }
	}

	fmt.Println("Preloading cache...")
	for i := 0; i < preloadKeys; i++ {
		key := fmt.Sprintf("key-%d", i)
		cache.GetOrLoad(ctx, key, produce(key, i))
	}
	fmt.Println("Preload complete.")

	fmt.Println("Running concurrency benchmark...")
	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				key := fmt.Sprintf("key-%d", j%preloadKeys)
				cache.GetOrLoad(ctx, key, produce(key, j))
			}
		}()
	}
	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG
	s := metrics.Snapshot()

	fmt.Println("\nRESULTS")
	fmt.Println("---------------------------------")
	fmt.Println("Total Ops    :", totalOps)
	fmt.Println("Duration     :", duration)
	fmt.Printf("Throughput   : %.0f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Hit Rate     : %.4f\n", s.HitRate)
	fmt.Println("Evictions    :", s.Evictions)
}
