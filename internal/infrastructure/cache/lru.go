// Package cache provides bounded caches behind port.Cache.
package cache

import (
	"github.com/bnema/dumbterm/internal/application/port"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a fixed-capacity, thread-safe least recently used cache.
// Get and Set both mark an entry as recently used.
type LRU[K comparable, V any] struct {
	inner *lru.Cache[K, V]
}

var _ port.Cache[string, int] = (*LRU[string, int])(nil)

// NewLRU creates a cache holding at most capacity entries.
// A non-positive capacity is treated as 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	// lru.New only fails for a non-positive size.
	inner, _ := lru.New[K, V](capacity)
	return &LRU[K, V]{inner: inner}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

func (c *LRU[K, V]) Set(key K, value V) {
	c.inner.Add(key, value)
}

func (c *LRU[K, V]) Remove(key K) {
	c.inner.Remove(key)
}

func (c *LRU[K, V]) Len() int {
	return c.inner.Len()
}

// Keys returns the cached keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	return c.inner.Keys()
}

func (c *LRU[K, V]) Clear() {
	c.inner.Purge()
}
