package types

import "context"

// LoadFunc produces the value for a single key. The cache guarantees it
// runs at most once concurrently per key; all coalesced callers share
// its result. A returned error is propagated unwrapped and nothing is
// cached.
type LoadFunc func(ctx context.Context) (any, error)

// Loader is the read-through contract between the cache and a backing
// source (database, remote API, expensive computation). It is optional:
// callers may instead pass a LoadFunc per call.
type Loader interface {
	Load(ctx context.Context, key string) (any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, key string) (any, error)

func (f LoaderFunc) Load(ctx context.Context, key string) (any, error) {
	return f(ctx, key)
}
