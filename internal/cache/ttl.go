// Package cache provides an explicitly constructed, size-bounded cache with a
// caller-chosen time-to-live and explicit invalidation.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// TTL caches values for a fixed lifetime. It is safe for concurrent use.
// A zero ttl disables caching: every GetOrLoad calls the loader.
type TTL[K comparable, V any] struct {
	lru   *expirable.LRU[K, V]
	ttl   time.Duration
	group singleflight.Group
}

// NewTTL creates a cache holding at most size entries for ttl each.
func NewTTL[K comparable, V any](size int, ttl time.Duration) *TTL[K, V] {
	if size <= 0 {
		size = 1
	}
	c := &TTL[K, V]{ttl: ttl}
	if ttl > 0 {
		c.lru = expirable.NewLRU[K, V](size, nil, ttl)
	}
	return c
}

// Get returns the cached value for key if present and not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	if c.lru == nil {
		var zero V
		return zero, false
	}
	return c.lru.Get(key)
}

// Set stores value under key.
func (c *TTL[K, V]) Set(key K, value V) {
	if c.lru == nil {
		return
	}
	c.lru.Add(key, value)
}

// Invalidate drops key so the next read reloads it.
func (c *TTL[K, V]) Invalidate(key K) {
	if c.lru == nil {
		return
	}
	c.lru.Remove(key)
}

// Purge drops every entry.
func (c *TTL[K, V]) Purge() {
	if c.lru == nil {
		return
	}
	c.lru.Purge()
}

// GetOrLoad returns the cached value for key or calls load and caches its
// result. Concurrent misses for the same key share one load. Load errors are
// not cached.
func (c *TTL[K, V]) GetOrLoad(ctx context.Context, key K, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(fmt.Sprint(key), func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}
