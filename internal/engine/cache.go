package engine

import "sync"

// Cache is the shared score memoization table, keyed by the canonical
// position encoding. One Cache instance is shared by reference across
// every position scored by an engine Service; it is never copied per
// clone, which is what lets subtrees reached through different move
// orders reuse each other's scores.
//
// Entries are purely additive: a key always maps to the true minimax
// score of the grid it encodes, so values are never updated or evicted.
// The mutex serializes writes so that concurrent HTTP handlers keep the
// at-most-one-value-per-key property.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]int
	hits    int
	misses  int
}

// CacheStats reports cache usage counters
type CacheStats struct {
	Entries int
	Hits    int
	Misses  int
}

// NewCache creates an empty score cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]int),
	}
}

// Get looks up the score for an encoded position
func (c *Cache) Get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	score, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return score, ok
}

// Put stores the score for an encoded position. An existing entry is
// left alone; the first computed value for a key is definitive.
func (c *Cache) Put(key string, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.entries[key] = score
	}
}

// Stats returns a snapshot of the cache counters
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
