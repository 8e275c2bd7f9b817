package server

import (
	"sync"

	"hydroplot/hydropathy"
)

type cacheKey struct {
	Sequence   string
	WindowSize int
	EdgeWeight float64
	Model      hydropathy.Model
}

// Cache memoizes rendered plot pages per (sequence, configuration) key so
// resubmitting the same form does not recompute the profile or the SVG.
// It lives entirely in the hosting layer; the hydropathy package knows
// nothing about it.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]string
	max     int
}

func NewCache(max int) *Cache {
	if max < 1 {
		max = 1
	}
	return &Cache{
		entries: make(map[cacheKey]string, max),
		max:     max,
	}
}

func (c *Cache) Get(key cacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.entries[key]
	return page, ok
}

func (c *Cache) Put(key cacheKey, page string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		// Evict an arbitrary entry; map iteration order picks the victim,
		// which is enough for a bounded memo.
		for victim := range c.entries {
			delete(c.entries, victim)
			break
		}
	}
	c.entries[key] = page
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
