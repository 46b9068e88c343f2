// Package solvecache memoizes solve results by their exact coefficient
// triple. Entries expire after a TTL; within it, a stored result is always
// returned for the same key, so repeated solves of the same equation are
// observably identical and cheap.
package solvecache

import (
	"sync"
	"sync/atomic"
	"time"

	"quadratic-api/internal/quadratic"
)

// DefaultTTL is how long a memoized result stays valid.
const DefaultTTL = time.Hour

// Key identifies a cached solve by its exact coefficients. Distinct bit
// patterns are distinct keys; no rounding is applied.
type Key struct {
	A, B, C float64
}

// KeyFor builds the cache key for a coefficient triple.
func KeyFor(a, b, c float64) Key {
	return Key{A: a, B: b, C: c}
}

type entry struct {
	analysis quadratic.Analysis
	expires  time.Time
}

// Cache is a TTL memoization map for solve results, safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	ttl     time.Duration

	hits   atomic.Uint64
	misses atomic.Uint64

	// now is swapped out by tests to control expiry.
	now func() time.Time
}

// New builds a cache with the given TTL; zero or negative selects DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[Key]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the memoized analysis for key when present and unexpired.
func (c *Cache) Get(key Key) (quadratic.Analysis, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expires) {
		c.misses.Add(1)
		return quadratic.Analysis{}, false
	}

	c.hits.Add(1)
	return e.analysis, true
}

// Put stores an analysis under key, resetting its TTL.
func (c *Cache) Put(key Key, an quadratic.Analysis) {
	c.mu.Lock()
	c.entries[key] = entry{analysis: an, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Purge drops expired entries and reports how many were removed.
func (c *Cache) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Entries int     `json:"entries"`
	HitRate float64 `json:"hit_rate"`
}

// Stats reports lookup counters and the current entry count. HitRate is 0
// before any lookup has happened.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	entries := len(c.entries)
	c.mu.RUnlock()

	s := Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: entries,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}
