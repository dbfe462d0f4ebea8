// Package fetchcache keeps the last successful answer of a remote fetch per key.
package fetchcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// FetchFunc loads a fresh value.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// Cache is a size- and TTL-bounded store of fetched values.
// It is safe for concurrent use.
type Cache[V any] struct {
	entries *expirable.LRU[string, V]
}

// New creates a cache holding at most size entries for ttl each.
// A zero ttl keeps entries until evicted by size.
func New[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		size = 128
	}
	return &Cache[V]{entries: expirable.NewLRU[string, V](size, nil, ttl)}
}

// Fetch always calls fetch and stores the result on success.
// On failure the previously cached value (if any) is left untouched.
func (c *Cache[V]) Fetch(ctx context.Context, key string, fetch FetchFunc[V]) (V, error) {
	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}
	c.entries.Add(key, v)
	return v, nil
}

// GetOrFetch returns the cached value when present, otherwise fetches it.
// The bool reports whether the value came from the cache.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, fetch FetchFunc[V]) (V, bool, error) {
	if v, ok := c.entries.Get(key); ok {
		return v, true, nil
	}
	v, err := c.Fetch(ctx, key, fetch)
	return v, false, err
}

func (c *Cache[V]) Get(key string) (V, bool) {
	return c.entries.Get(key)
}

func (c *Cache[V]) Set(key string, v V) {
	c.entries.Add(key, v)
}

// Forget drops the entry for key.
func (c *Cache[V]) Forget(key string) {
	c.entries.Remove(key)
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.entries.Purge()
}

func (c *Cache[V]) Len() int {
	return c.entries.Len()
}
