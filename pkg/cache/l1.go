// Package cache implements the tiered result cache: a sharded in-process
// LRU (L1), the shared KV store (L2), and an optional durable record
// store (L3), with dependency-graph invalidation across all tiers.
package cache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"

	"github.com/orchid-run/orchid/pkg/clock"
)

// l1Entry is one resident L1 item. size covers key and value bytes.
type l1Entry struct {
	key         string
	value       []byte
	createdAt   time.Time
	expiresAt   time.Time
	accessCount int64
}

func (e *l1Entry) size() int64 {
	return int64(len(e.key) + len(e.value))
}

type l1Shard struct {
	mu    sync.Mutex
	items map[string]*list.Element
	lru   *list.List // front = most recently used
	bytes int64
}

// L1 is the in-process tier: strict LRU by access time with both an item
// and a byte budget, enforced per shard. Expired entries are cleaned up
// lazily on Get, the way the runbook cache does it.
type L1 struct {
	shards   []*l1Shard
	clk      clock.Clock
	maxItems int // per shard
	maxBytes int64
}

// NewL1 creates an L1 cache. Budgets are totals; they are divided across
// shards. shardCount should be at least the worker count.
func NewL1(clk clock.Clock, maxItems int, maxBytes int64, shardCount int) *L1 {
	if shardCount < 1 {
		shardCount = 16
	}
	perShardItems := maxItems / shardCount
	if perShardItems < 1 {
		perShardItems = 1
	}
	perShardBytes := maxBytes / int64(shardCount)
	if perShardBytes < 1 {
		perShardBytes = 1
	}

	shards := make([]*l1Shard, shardCount)
	for i := range shards {
		shards[i] = &l1Shard{
			items: make(map[string]*list.Element),
			lru:   list.New(),
		}
	}
	return &L1{shards: shards, clk: clk, maxItems: perShardItems, maxBytes: perShardBytes}
}

func (c *L1) shardFor(key string) *l1Shard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[h.Sum32()%uint32(len(c.shards))]
}

// Get returns the cached value and bumps it to most recently used.
func (c *L1) Get(key string) ([]byte, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*l1Entry)
	if !c.clk.Now().Before(entry.expiresAt) {
		s.removeLocked(el)
		return nil, false
	}
	entry.accessCount++
	s.lru.MoveToFront(el)
	return entry.value, true
}

// Set inserts or replaces a value, then evicts from the LRU tail until
// the shard is back under both budgets.
func (c *L1) Set(key string, value []byte, ttl time.Duration) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := c.clk.Now()
	if el, ok := s.items[key]; ok {
		s.removeLocked(el)
	}
	entry := &l1Entry{
		key:       key,
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	s.items[key] = s.lru.PushFront(entry)
	s.bytes += entry.size()

	for (len(s.items) > c.maxItems || s.bytes > c.maxBytes) && s.lru.Len() > 1 {
		s.removeLocked(s.lru.Back())
	}
}

// Delete removes a key if present.
func (c *L1) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.items[key]; ok {
		s.removeLocked(el)
	}
}

func (s *l1Shard) removeLocked(el *list.Element) {
	entry := el.Value.(*l1Entry)
	s.lru.Remove(el)
	delete(s.items, entry.key)
	s.bytes -= entry.size()
}

// Len reports the resident item count across all shards.
func (c *L1) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.items)
		s.mu.Unlock()
	}
	return total
}

// Bytes reports the resident byte total across all shards.
func (c *L1) Bytes() int64 {
	var total int64
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.bytes
		s.mu.Unlock()
	}
	return total
}
