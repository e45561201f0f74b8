// Package cache implements the key-existence store backing order
// deduplication. It is not a general cache: there is no TTL and no eviction;
// the owner controls the lifetime through Clear.
package cache

import (
	"errors"
	"sync"
)

// ErrEmptyKey is returned by Put and PutIfAbsent for an empty key. Lookups
// treat an empty key as a miss instead.
var ErrEmptyKey = errors.New("cache key cannot be empty")

// Cache is a mutex-guarded map. Only key existence matters for dedup; the
// value is an opaque marker.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func New() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Put stores the value under key, overwriting any previous value.
func (c *Cache) Put(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value

	return nil
}

// PutIfAbsent stores the value only when the key is not present and reports
// whether it did. The check and the insert are atomic, which is what makes
// concurrent sync passes safe.
func (c *Cache) PutIfAbsent(key string, value any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return false, nil
	}

	c.entries[key] = value

	return true, nil
}

func (c *Cache) Contains(key string) bool {
	if key == "" {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[key]

	return ok
}

func (c *Cache) Get(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]

	return value, ok
}

// Remove deletes the key. Removing an absent or empty key is a no-op.
func (c *Cache) Remove(key string) {
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]any)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) IsEmpty() bool {
	return c.Len() == 0
}
