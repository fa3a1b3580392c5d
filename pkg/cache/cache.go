// Package cache holds merge results keyed by their input.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/groupcache/lru"
)

// DefaultSize is the number of entries kept when no size is configured.
const DefaultSize = 500

const maxShards = 16

type shard struct {
	mu  sync.Mutex
	lru *lru.Cache
}

// Cache is a sharded LRU of input to output strings. A nil *Cache is valid
// and never hits.
type Cache struct {
	shards []*shard
}

// New returns a cache holding about size entries, or nil when size is zero
// or negative.
func New(size int) *Cache {
	if size <= 0 {
		return nil
	}

	n := maxShards
	for n > 1 && size/n < 32 {
		n /= 2
	}
	per := (size + n - 1) / n

	c := &Cache{shards: make([]*shard, n)}
	for i := range c.shards {
		c.shards[i] = &shard{lru: lru.New(per)}
	}
	return c
}

func (c *Cache) shard(key string) *shard {
	if len(c.shards) == 1 {
		return c.shards[0]
	}
	return c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Get returns the value cached for key.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.lru.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Add stores value under key, evicting the least recently used entry of the
// shard when it is full.
func (c *Cache) Add(key, value string) {
	if c == nil {
		return
	}
	s := c.shard(key)
	s.mu.Lock()
	s.lru.Add(key, value)
	s.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += s.lru.Len()
		s.mu.Unlock()
	}
	return n
}

// Capacity returns the total number of entries the cache can hold.
func (c *Cache) Capacity() int {
	if c == nil {
		return 0
	}
	return len(c.shards) * c.shards[0].lru.MaxEntries
}

// Purge empties the cache.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	for _, s := range c.shards {
		s.mu.Lock()
		s.lru.Clear()
		s.mu.Unlock()
	}
}
