package ring

import "sync"

// cacheKey identifies one Engine configuration.
type cacheKey struct {
	n uint64
	q uint64
}

// Cache memoizes Engine construction keyed by (N, Q): searching for a
// minimal primitive root and building the root-power tables is the
// expensive part of standing up an Engine, and callers routinely reuse the
// same (N, Q) pair across many transforms (e.g. every limb of an RNS basis
// sharing one degree). Grounded on the read-lock/recheck-under-write-lock
// pattern cloudflare/cloudflared uses for its process-wide keyed caches
// (tunnelhostnamemapper, tunnelstate/conntracker.go).
type Cache struct {
	mu      sync.RWMutex
	engines map[cacheKey]*Engine
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{engines: make(map[cacheKey]*Engine)}
}

// Get returns the cached Engine for (n, q), constructing and storing one on
// a miss.
func (c *Cache) Get(n, q uint64) (*Engine, error) {
	key := cacheKey{n: n, q: q}

	c.mu.RLock()
	e, ok := c.engines[key]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.engines[key]; ok {
		return e, nil
	}
	e, err := NewEngine(n, q)
	if err != nil {
		return nil, err
	}
	c.engines[key] = e
	return e, nil
}

// Len reports the number of cached engines.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.engines)
}

var defaultCache = NewCache()

// GetEngine returns a cached Engine for (n, q) from the process-wide
// default Cache, constructing one on first use.
func GetEngine(n, q uint64) (*Engine, error) {
	return defaultCache.Get(n, q)
}
