package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nutrilens/backend/internal/domain"
)

// cacheItem is a single cached value with expiration
type cacheItem struct {
	value      any
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL and single-flight
// get-or-load. Used for expensive external datasets (the curated whole-food
// JSON) so the core depends on an injected collaborator rather than a
// module-level global.
type MemoryCache struct {
	ttl   time.Duration
	data  map[string]cacheItem
	mutex sync.RWMutex

	loadMu sync.Mutex
}

// NewMemoryCache creates a cache whose entries expire after ttl. A zero ttl
// means entries never expire.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cache := &MemoryCache{
		ttl:  ttl,
		data: make(map[string]cacheItem),
	}

	if ttl > 0 {
		go cache.cleanupExpired(ttl)
	}

	return cache
}

// Get retrieves a value, or domain.ErrCacheMiss.
func (c *MemoryCache) Get(ctx context.Context, key string) (any, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || c.expired(item) {
		return nil, domain.ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value.
func (c *MemoryCache) Set(ctx context.Context, key string, value any) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data[key] = cacheItem{value: value, expiration: c.expiry()}
	return nil
}

// GetOrLoad returns the cached value or runs load and caches its result.
// Concurrent loads of different keys serialize; the datasets cached here are
// loaded once per process so contention is not a concern.
func (c *MemoryCache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	if value, err := c.Get(ctx, key); err == nil {
		return value, nil
	}

	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	// Another caller may have loaded while we waited.
	if value, err := c.Get(ctx, key); err == nil {
		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, value); err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate removes a key so the next GetOrLoad reloads it.
func (c *MemoryCache) Invalidate(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
	return nil
}

func (c *MemoryCache) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}

func (c *MemoryCache) expired(item cacheItem) bool {
	return !item.expiration.IsZero() && time.Now().After(item.expiration)
}

// cleanupExpired removes expired entries periodically
func (c *MemoryCache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if !item.expiration.IsZero() && now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
