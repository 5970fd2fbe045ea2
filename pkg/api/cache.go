package api

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// CacheConfig controls the load cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	MaxSize int
}

// DefaultCacheConfig is the cache configuration used when none is given.
var DefaultCacheConfig = CacheConfig{
	Enabled: true,
	TTL:     5 * time.Minute,
	MaxSize: 64,
}

// LoadCache memoizes Load results keyed by exact input identity
// (source bytes hash, percentage, builtin flag). Purely an
// optimization: Load is deterministic, so a hit and a recompute are
// indistinguishable.
type LoadCache struct {
	mu      sync.RWMutex
	store   map[string]*cacheEntry
	ttl     time.Duration
	maxSize int
}

type cacheEntry struct {
	table     *dataset.Table
	createdAt time.Time
	expiresAt time.Time
	hits      int64
}

// NewLoadCache creates a cache, or nil when disabled. All methods are
// nil-receiver safe.
func NewLoadCache(config CacheConfig) *LoadCache {
	if !config.Enabled {
		return nil
	}
	return &LoadCache{
		store:   make(map[string]*cacheEntry),
		ttl:     config.TTL,
		maxSize: config.MaxSize,
	}
}

// CacheKey derives the cache key for a load request.
func CacheKey(source *Source, percent int) string {
	if source == nil {
		return fmt.Sprintf("builtin:%d", percent)
	}
	sum := sha256.Sum256(source.Data)
	return fmt.Sprintf("upload:%x:%d", sum, percent)
}

// Get returns the cached table for a key, if present and fresh.
func (c *LoadCache) Get(key string) (*dataset.Table, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	entry, exists := c.store[key]
	c.mu.RUnlock()
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.store, key)
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	entry.hits++
	c.mu.Unlock()
	return entry.table, true
}

// Set stores a table under a key, evicting the oldest entry when full.
func (c *LoadCache) Set(key string, table *dataset.Table) {
	if c == nil || table == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.maxSize {
		c.evictOldest()
	}

	now := time.Now()
	c.store[key] = &cacheEntry{
		table:     table,
		createdAt: now,
		expiresAt: now.Add(c.ttl),
	}
}

// Len returns the number of cached entries.
func (c *LoadCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear drops all entries.
func (c *LoadCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}

func (c *LoadCache) evictOldest() {
	oldestKey := ""
	var oldestTime time.Time
	for key, entry := range c.store {
		if oldestTime.IsZero() || entry.createdAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.createdAt
		}
	}
	if oldestKey != "" {
		delete(c.store, oldestKey)
	}
}
