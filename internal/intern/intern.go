// Package intern caches Unicode normalization results for go-combiflag.
// Argument names and prefixes are normalized on every comparison, and the
// same handful of strings comes back constantly during a parse.
package intern

import "sync"

// Cache is a thread-safe map from input string to its normalized form.
// It holds at most capacity entries; further stores pass the value through
// uncached, so arbitrary runtime input cannot grow it without bound.
type Cache struct {
	entries  map[string]string
	capacity int
	mutex    sync.RWMutex
}

// NewCache creates a cache bounded to capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 64
	}
	return &Cache{
		entries:  make(map[string]string, capacity),
		capacity: capacity,
	}
}

// Lookup returns the cached normalization of s, if present.
// Thread-safe and optimized for the read-heavy common case.
func (c *Cache) Lookup(s string) (string, bool) {
	c.mutex.RLock()
	cached, ok := c.entries[s]
	c.mutex.RUnlock()
	return cached, ok
}

// Store records normalized as the canonical form of s and returns the
// stored value. When another goroutine got there first, the earlier entry
// wins so callers share one backing string. A full cache leaves the entry
// set unchanged and hands normalized back uncached.
func (c *Cache) Store(s, normalized string) string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if cached, ok := c.entries[s]; ok {
		return cached
	}
	if len(c.entries) >= c.capacity {
		return normalized
	}
	c.entries[s] = normalized
	return normalized
}

// Stats returns the number of cached entries for monitoring.
func (c *Cache) Stats() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Clear removes all entries (useful for testing)
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for k := range c.entries {
		delete(c.entries, k)
	}
}

// Normalized is the process-wide cache used by the matching engine.
var Normalized = NewCache(128)
