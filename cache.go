package cardfolio

import "sync"

// Cache is an explicit fetch-through cache: a map guarded by a mutex plus
// a fetch-in-flight set, so that concurrent requests for the same key
// trigger a single fetch. It replaces the ad hoc per-component caches of
// the original callers with one primitive they all share.
//
// The zero value is not usable; create it with NewCache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	values   map[K]V
	inflight map[K]chan struct{}
}

// NewCache returns an empty cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		values:   make(map[K]V),
		inflight: make(map[K]chan struct{}),
	}
}

// Get returns the cached value for key, if any.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return v, ok
}

// Put stores a value for key.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// GetOrFetch returns the cached value for key, fetching it with fetcher on
// a miss. If another goroutine is already fetching the same key, the call
// waits for that fetch instead of duplicating it. A failed fetch caches
// nothing, so a later call retries.
func (c *Cache[K, V]) GetOrFetch(key K, fetcher func() (V, error)) (V, error) {
	for {
		c.mu.Lock()
		if v, ok := c.values[key]; ok {
			c.mu.Unlock()
			return v, nil
		}
		ch, fetching := c.inflight[key]
		if !fetching {
			ch = make(chan struct{})
			c.inflight[key] = ch
			c.mu.Unlock()
			break
		}
		c.mu.Unlock()
		<-ch
		// The fetch completed; loop to read the value, or take over the
		// fetch if it failed.
	}

	v, err := fetcher()

	c.mu.Lock()
	if err == nil {
		c.values[key] = v
	}
	close(c.inflight[key])
	delete(c.inflight, key)
	c.mu.Unlock()
	return v, err
}
