package cachemanager

import (
	"context"
	"sync/atomic"
	"time"
)

// ReadThroughOptions configures a ReadThroughCache.
type ReadThroughOptions struct {
	// TTL is the lifetime given to stored entries. Every hit restarts it.
	TTL time.Duration
	// Bypass sends every lookup to the loader and stores nothing.
	Bypass bool
}

// ReadThroughCache serves entries from a CacheManager and loads the missing
// ones with a loader. Load errors are returned and never stored.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache CacheManager[K, V]
	load  func(ctx context.Context, input I) (V, error)
	opts  ReadThroughOptions

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewReadThroughCache fronts cache with load.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	load func(ctx context.Context, input I) (V, error),
	opts ReadThroughOptions,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache: cache,
		load:  load,
		opts:  opts,
	}
}

// Get returns the entry for key, restarting its expiration, or loads it
// from input and stores it.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I) (V, error) {
	if !r.opts.Bypass {
		if value, ok := r.cache.GetWithRefresh(ctx, key, r.opts.TTL); ok {
			r.hits.Add(1)
			return value, nil
		}
	}
	r.misses.Add(1)

	value, err := r.load(ctx, input)
	if err != nil || r.opts.Bypass {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.opts.TTL)
	return value, nil
}

// Stats returns how many lookups were served from the cache and how many
// went to the loader.
func (r *ReadThroughCache[K, V, I]) Stats() (hits, misses uint64) {
	return r.hits.Load(), r.misses.Load()
}
