package service

import (
	"encoding/json"
	"hash/fnv"
	"sync"
	"time"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/metrics"
)

// quoteCacheKey derives a cache key from the itinerary and pricing context.
// The key covers everything the calculation depends on, so two identical
// requests share an entry and any edit produces a new key. Returns false if
// the inputs cannot be serialized (never expected for well-typed inputs).
func quoteCacheKey(itinerary []model.DayItinerary, pricing model.PricingContext) (uint64, bool) {
	h := fnv.New64a()
	enc := json.NewEncoder(h)
	if err := enc.Encode(pricing); err != nil {
		return 0, false
	}
	if err := enc.Encode(itinerary); err != nil {
		return 0, false
	}
	return h.Sum64(), true
}

// quoteCache is a thread-safe LRU cache with TTL expiration for trip totals.
// Entries are evicted least-recently-used first once capacity is reached; a
// background goroutine sweeps expired entries.
type quoteCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[uint64]*quoteCacheEntry
	head     *quoteCacheEntry
	tail     *quoteCacheEntry
	stopCh   chan struct{}
}

type quoteCacheEntry struct {
	key       uint64
	value     model.TripTotals
	expiresAt time.Time
	prev      *quoteCacheEntry
	next      *quoteCacheEntry
}

// newQuoteCache creates a TTL-based LRU cache for trip totals.
func newQuoteCache(capacity int, ttl time.Duration) *quoteCache {
	c := &quoteCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[uint64]*quoteCacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves totals from the cache if present and not expired.
func (c *quoteCache) Get(key uint64) (model.TripTotals, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return model.TripTotals{}, false
	}
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("get", "expired")
		return model.TripTotals{}, false
	}

	c.moveToFront(entry)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores totals with the configured TTL, evicting the least recently
// used entry when at capacity.
func (c *quoteCache) Set(key uint64, value model.TripTotals) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	if len(c.items) >= c.capacity && c.tail != nil {
		c.removeEntry(c.tail)
		metrics.RecordCacheOperation("evict", "lru")
	}

	entry := &quoteCacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.pushFront(entry)
	metrics.RecordCacheOperation("set", "ok")
}

// Clear removes all entries.
func (c *quoteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[uint64]*quoteCacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
}

// Len returns the number of cached entries.
func (c *quoteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop terminates the background cleanup goroutine.
func (c *quoteCache) Stop() {
	close(c.stopCh)
}

func (c *quoteCache) cleanupLoop() {
	interval := c.ttl
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *quoteCache) removeExpired() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

// removeEntry unlinks an entry; caller must hold the lock.
func (c *quoteCache) removeEntry(entry *quoteCacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	delete(c.items, entry.key)
}

// moveToFront marks an entry most recently used; caller must hold the lock.
func (c *quoteCache) moveToFront(entry *quoteCacheEntry) {
	if c.head == entry {
		return
	}
	if entry.prev != nil {
		entry.prev.next = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	}
	if c.tail == entry {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *quoteCache) pushFront(entry *quoteCacheEntry) {
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}
