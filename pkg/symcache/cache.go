package symcache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is an in-memory LRU of resolved symbol strings
type Cache struct {
	config  *Config
	cache   *lru.LRU[string, string]
	metrics *metrics
}

// New creates a new symbol cache
func New(config *Config) *Cache {
	if config == nil {
		config = DefaultConfig()
	}

	maxEntries := config.MaxEntries
	if maxEntries < 1 {
		maxEntries = DefaultConfig().MaxEntries
	}

	return &Cache{
		config:  config,
		cache:   lru.NewLRU[string, string](maxEntries, nil, config.TTL),
		metrics: newMetrics(),
	}
}

// Get retrieves a cached resolution result
func (c *Cache) Get(key Key) (string, error) {
	if !key.Valid() {
		return "", ErrInvalidCacheKey
	}

	value, ok := c.cache.Get(key.String())
	if !ok {
		c.metrics.recordMiss()
		return "", ErrCacheMiss
	}

	c.metrics.recordHit()
	return value, nil
}

// Set stores a resolution result
func (c *Cache) Set(key Key, value string) error {
	if !key.Valid() {
		return ErrInvalidCacheKey
	}

	c.cache.Add(key.String(), value)
	return nil
}

// Resolve returns the cached value for key, computing and storing it on a
// miss. A compute error is returned as-is and nothing is cached, so failed
// resolutions are retried rather than pinned.
func (c *Cache) Resolve(key Key, compute func() (string, error)) (string, error) {
	if value, err := c.Get(key); err == nil {
		return value, nil
	} else if err == ErrInvalidCacheKey {
		return "", err
	}

	value, err := compute()
	if err != nil {
		return "", err
	}

	c.cache.Add(key.String(), value)
	return value, nil
}

// Purge removes all cached results
func (c *Cache) Purge() {
	c.cache.Purge()
}

// Stats returns cache statistics
func (c *Cache) Stats() *Stats {
	stats := &Stats{
		Hits:      c.metrics.getHits(),
		Misses:    c.metrics.getMisses(),
		ItemCount: int64(c.cache.Len()),
	}

	total := stats.Hits + stats.Misses
	if total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}

	return stats
}

// metrics tracks cache metrics
type metrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func newMetrics() *metrics {
	return &metrics{}
}

func (m *metrics) recordHit() {
	m.hits.Add(1)
}

func (m *metrics) recordMiss() {
	m.misses.Add(1)
}

func (m *metrics) getHits() int64 {
	return m.hits.Load()
}

func (m *metrics) getMisses() int64 {
	return m.misses.Load()
}
