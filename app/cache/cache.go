// Package cache provides a small in-memory key-value store with per-entry
// expiry. Entries are evicted lazily when a read finds them expired; there is
// no background sweep and no capacity bound, so the store grows with the set
// of distinct keys used over the process lifetime.
package cache

import (
	"sync"
	"time"
)

const DefaultTTL = time.Hour

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is safe for concurrent use. Interaction handlers run on separate
// goroutines, so every access goes through the mutex.
type Cache[V any] struct {
	mu         sync.Mutex
	entries    map[string]entry[V]
	defaultTTL time.Duration
	now        func() time.Time
}

func New[V any]() *Cache[V] {
	return NewWithTTL[V](DefaultTTL)
}

func NewWithTTL[V any](defaultTTL time.Duration) *Cache[V] {
	return &Cache[V]{
		entries:    make(map[string]entry[V]),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the value stored for key if it has not expired. An expired
// entry is deleted and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's default TTL, replacing any
// previous entry and its expiry.
func (c *Cache[V]) Set(key string, value V) {
	c.SetTTL(key, value, c.defaultTTL)
}

func (c *Cache[V]) SetTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
}

// Len counts entries still present, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
