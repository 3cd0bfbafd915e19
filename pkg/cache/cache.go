package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

type Option func(*LRUCache)

// WithJanitorInterval sets how often expired entries are swept.
func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) {
		if d > 0 {
			c.janitorInterval = d
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
	Entries   int
}

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache is a bounded in-process byte cache with a per-entry TTL.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List
	items    map[string]*list.Element
	stats    Stats

	janitorInterval time.Duration
	now             func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		capacity:        max(capacity, 1),
		ttl:             ttl,
		order:           list.New(),
		items:           make(map[string]*list.Element, capacity),
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	it := el.Value.(*item)
	if c.expired(it) {
		c.drop(el)
		c.stats.Expired++
		c.stats.Misses++
		return nil, false
	}
	c.order.MoveToFront(el)
	c.stats.Hits++
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.value, it.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&item{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.drop(c.order.Back())
		c.stats.Evictions++
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.drop(el)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.order.Len()
	return s
}

// Start runs the janitor in the background until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// sweep walks from the least recently used end and drops expired entries.
func (c *LRUCache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*item)) {
			c.drop(el)
			removed++
		}
		el = prev
	}
	c.stats.Expired += uint64(removed)
	return removed
}

func (c *LRUCache) expired(it *item) bool {
	return c.now().After(it.expiresAt)
}

func (c *LRUCache) drop(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*item).key)
}
