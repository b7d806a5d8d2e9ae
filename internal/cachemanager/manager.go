// Package cachemanager provides typed caches over go-cache.
package cachemanager

import (
	"context"
	"time"
)

// DefaultTTL tells Set to use the cache's default expiration.
const DefaultTTL time.Duration = 0

// CacheManager is a typed key/value cache with per-entry expiration.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Flush(ctx context.Context) error
	Count() int
}
