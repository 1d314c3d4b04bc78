package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
// When an insertion exceeds the limit, the least recently used entry
// is evicted.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    uint64 // monotonic access counter

	hits, misses, evictions uint64
}

type entry[V any] struct {
	value V
	atime uint64
}

// New creates a cache with the given limit. A limit below 1 means
// unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get returns the value stored under key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores value under key, evicting the oldest entry if needed.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create is called under the lock.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		e.atime = c.tick
		return e.value
	}
	c.misses++
	v := create()
	c.store(key, v)
	return v
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Clear drops every entry and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
	c.tick = 0
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Limit:     c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// store inserts or replaces key. Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.atime = c.tick
		return
	}
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entry. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	var (
		oldest K
		atime  uint64
		found  bool
	)
	for k, e := range c.entries {
		if !found || e.atime < atime {
			oldest, atime, found = k, e.atime, true
		}
	}
	if found {
		delete(c.entries, oldest)
		c.evictions++
	}
}

// Stats contains cache counters.
type Stats struct {
	Len       int
	Limit     int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
}
