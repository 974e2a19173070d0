package memocache

import (
	"context"
	"regexp"
	"time"

	"github.com/memocache/memocache/types"
)

// NullCache satisfies Cache but never stores anything: every lookup
// misses and every populate runs its producer. Use it in tests to rule
// memoization out of the behavior under test.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Lookup(string) (any, bool) { return nil, false }

func (*NullCache) Get(context.Context, string) (any, error) {
	return nil, ErrNoLoader
}

func (*NullCache) GetOrLoad(ctx context.Context, _ string, load types.LoadFunc) (any, error) {
	return load(ctx)
}

func (*NullCache) GetOrLoadTTL(ctx context.Context, _ string, load types.LoadFunc, _ time.Duration) (any, error) {
	return load(ctx)
}

func (*NullCache) Remove(string)                     {}
func (*NullCache) RemoveMatching(*regexp.Regexp) int { return 0 }
func (*NullCache) Clear()                            {}
func (*NullCache) Len() int                          { return 0 }
func (*NullCache) Stats() types.Stats                { return types.Stats{} }
func (*NullCache) Close()                            {}
