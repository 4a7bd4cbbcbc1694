// Package utils holds small supporting infrastructure shared by the query
// components.
package utils

import (
	"container/list"
)

// RouteCache caches computed shortest-path trees by source vertex with LRU
// eviction. The transit router builds one tree per distinct query origin;
// repeated queries from the same origin reuse it.
type RouteCache struct {
	cache   map[int]*cachedEntry
	lruList *list.List
	maxSize int

	// Statistics
	hits      int64
	misses    int64
	evictions int64
}

// cachedEntry is a cached tree with its LRU bookkeeping.
type cachedEntry struct {
	key     int
	value   interface{}
	element *list.Element
}

// CacheStats provides cache performance statistics.
type CacheStats struct {
	Size      int     `json:"size"`
	MaxSize   int     `json:"maxSize"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hitRate"`
}

// DefaultRouteCacheSize bounds the number of cached trees. One tree per
// distinct query origin is enough for the corpus sizes expected.
const DefaultRouteCacheSize = 1024

// NewRouteCache creates a route cache holding at most maxEntries trees.
// A non-positive maxEntries falls back to DefaultRouteCacheSize.
func NewRouteCache(maxEntries int) *RouteCache {
	if maxEntries <= 0 {
		maxEntries = DefaultRouteCacheSize
	}
	return &RouteCache{
		cache:   make(map[int]*cachedEntry),
		lruList: list.New(),
		maxSize: maxEntries,
	}
}

// Get retrieves a cached tree by source vertex.
func (c *RouteCache) Get(key int) (interface{}, bool) {
	entry, exists := c.cache[key]
	if !exists {
		c.misses++
		return nil, false
	}

	// Mark as recently used.
	c.lruList.MoveToFront(entry.element)
	c.hits++
	return entry.value, true
}

// Set stores a tree in the cache, evicting the least recently used entry
// when the capacity is exceeded.
func (c *RouteCache) Set(key int, value interface{}) {
	if existing, exists := c.cache[key]; exists {
		existing.value = value
		c.lruList.MoveToFront(existing.element)
		return
	}

	entry := &cachedEntry{key: key, value: value}
	entry.element = c.lruList.PushFront(entry)
	c.cache[key] = entry

	for len(c.cache) > c.maxSize {
		oldest := c.lruList.Back()
		if oldest == nil {
			break
		}
		evicted := oldest.Value.(*cachedEntry)
		c.lruList.Remove(oldest)
		delete(c.cache, evicted.key)
		c.evictions++
	}
}

// Clear drops all cached trees and resets statistics.
func (c *RouteCache) Clear() {
	c.cache = make(map[int]*cachedEntry)
	c.lruList = list.New()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Stats returns cache performance statistics.
func (c *RouteCache) Stats() CacheStats {
	stats := CacheStats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}
