package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("order-1", []byte("1"))
				clock.advance(59 * time.Second)
				v, ok := c.Get("order-1")
				assert.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("order-1", []byte("1"))
				clock.advance(61 * time.Second)
				_, ok := c.Get("order-1")
				assert.False(t, ok, "expected key to be expired")
				assert.Equal(t, uint64(1), c.Stats().Expired)
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				// touching a makes b the oldest
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "expected b to be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 2, c.Size())
				assert.Equal(t, uint64(1), c.Stats().Evictions)
			},
		},
		{
			name:     "overwrite resets TTL",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clock.advance(40 * time.Second)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "delete invalidates entry",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("order-1", []byte("PENDING"))
				c.Delete("order-1")
				c.Delete("missing")
				_, ok := c.Get("order-1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "sweep removes only expired",
			capacity: 3,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("old", []byte("1"))
				clock.advance(30 * time.Second)
				c.Set("fresh", []byte("2"))
				clock.advance(31 * time.Second)

				assert.Equal(t, 1, c.sweep())
				_, ok := c.Get("fresh")
				assert.True(t, ok)
			},
		},
		{
			name:     "zero capacity holds one entry",
			capacity: 0,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				assert.Equal(t, 1, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, time.Minute, WithClock(clock.now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Stats(t *testing.T) {
	c := NewLRUCache(4, time.Minute)
	c.Set("a", []byte("1"))
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, 1, s.Entries)
}

func TestLRUCache_JanitorSweeps(t *testing.T) {
	c := NewLRUCache(2, time.Millisecond, WithJanitorInterval(5*time.Millisecond))
	c.Set("a", []byte("1"))
	assert.NoError(t, c.Start(t.Context()))

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
}
