package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/recipegenie/backend/internal/domain"
)

const defaultCleanupInterval = 10 * time.Minute

type memoryItem struct {
	value     interface{}
	expiresAt time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support. Values are
// round-tripped through JSON on Set so cached data has the same shape
// regardless of which backend served it.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryItem
	stop chan struct{}
	once sync.Once
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup
// goroutine. Call Close to stop it.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]memoryItem),
		stop: make(chan struct{}),
	}
	go c.janitor(defaultCleanupInterval)
	return c
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.data[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, domain.ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	// Serialize to JSON and back so reads see generic maps, like Redis
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var stored interface{}
	if err := json.Unmarshal(jsonData, &stored); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = memoryItem{
		value:     stored,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.data[key]
	if !exists || time.Now().After(item.expiresAt) {
		return false, nil
	}
	return true, nil
}

// Size returns the current number of items in the cache
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Close stops the cleanup goroutine. The cache remains usable afterwards;
// expired entries are still rejected on read.
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

// janitor removes expired entries periodically until Close is called.
func (c *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, item := range c.data {
				if now.After(item.expiresAt) {
					delete(c.data, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
