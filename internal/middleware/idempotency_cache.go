package middleware

import (
	"sync"
	"time"

	"github.com/snowyaya/box-picker-api/internal/metrics"
)

// idempotencyCacheMaxEntries bounds the number of cached responses.
const idempotencyCacheMaxEntries = 10000

// idempotencyCache stores cached HTTP responses for idempotency.
type idempotencyCache struct {
	mu    sync.RWMutex
	items map[int]*cachedResponse
	ttl   time.Duration
}

// newIdempotencyCache creates a new idempotency cache.
func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[int]*cachedResponse),
		ttl:   ttl,
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key int) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	if time.Since(resp.Timestamp) > c.ttl {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return resp, true
}

// Set stores a cached response, evicting the oldest entry when full.
func (c *idempotencyCache) Set(key int, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= idempotencyCacheMaxEntries {
		c.evictOldest()
	}

	resp.Timestamp = time.Now()
	c.items[key] = resp

	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheMetrics(len(c.items), idempotencyCacheMaxEntries)
}

// evictOldest removes the entry with the oldest timestamp.
// Caller must hold the write lock.
func (c *idempotencyCache) evictOldest() {
	var oldestKey int
	var oldestTime time.Time
	first := true

	for key, resp := range c.items {
		if first || resp.Timestamp.Before(oldestTime) {
			oldestKey = key
			oldestTime = resp.Timestamp
			first = false
		}
	}

	if !first {
		delete(c.items, oldestKey)
		metrics.RecordCacheOperation("evict", "success")
	}
}

// startCleanup periodically removes expired entries.
func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes expired entries.
func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
	metrics.UpdateCacheMetrics(len(c.items), idempotencyCacheMaxEntries)
}

// size returns the current number of cached entries.
func (c *idempotencyCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
