// Package cache is a small TTL cache for search results. Values pass
// through a clone hook on both store and load so cached data never
// aliases caller-held slices.
package cache

import (
	"sync"
	"time"
)

type item[T any] struct {
	value     T
	expiresAt time.Time
}

type Cache[T any] struct {
	mu    sync.RWMutex
	items map[string]item[T]
	clone func(T) T
	now   func() time.Time
}

func New[T any](clone func(T) T) *Cache[T] {
	return &Cache[T]{
		items: make(map[string]item[T]),
		clone: clone,
		now:   time.Now,
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if c.now().After(it.expiresAt) {
		c.Delete(key)
		return zero, false
	}
	return c.copyOf(it.value), true
}

func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.items[key] = item[T]{value: c.copyOf(value), expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache[T]) copyOf(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
