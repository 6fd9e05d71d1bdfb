package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/kv"
)

// Tier identifies one cache layer.
type Tier string

const (
	TierL1 Tier = "l1"
	TierL2 Tier = "l2"
	TierL3 Tier = "l3"
)

// DurableStore is the L3 contract. The database-backed implementation
// lives in the services layer; tests use an in-memory fake.
type DurableStore interface {
	// Get returns the stored value, kv.ErrNotFound on miss or expiry.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the value with a TTL and resets the access counter.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Touch increments the access counter. Best-effort.
	Touch(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) error
	// DeleteExpired removes entries past their expiry, returning the count.
	DeleteExpired(ctx context.Context) (int, error)
}

// Strategy picks the tier subset and the TTL multiplier applied on Put.
type Strategy struct {
	Name          string
	Tiers         []Tier
	TTLMultiplier float64
}

// The three presets. Local keeps everything in-process, Standard adds
// the shared KV, Durable adds the database record with doubled TTLs.
func StrategyLocal() Strategy {
	return Strategy{Name: "local", Tiers: []Tier{TierL1}, TTLMultiplier: 1.0}
}

func StrategyStandard() Strategy {
	return Strategy{Name: "standard", Tiers: []Tier{TierL1, TierL2}, TTLMultiplier: 1.0}
}

func StrategyDurable() Strategy {
	return Strategy{Name: "durable", Tiers: []Tier{TierL1, TierL2, TierL3}, TTLMultiplier: 2.0}
}

// StrategyByName resolves a configured preset name.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "local":
		return StrategyLocal(), nil
	case "standard":
		return StrategyStandard(), nil
	case "durable":
		return StrategyDurable(), nil
	default:
		return Strategy{}, fmt.Errorf("unknown cache strategy %q", name)
	}
}

// Config carries the tier budgets and per-tier base TTLs.
type Config struct {
	L1MaxItems int
	L1MaxBytes int64
	L1TTL      time.Duration
	L2TTL      time.Duration
	L3TTL      time.Duration
	ShardCount int
}

// DefaultConfig mirrors the documented environment defaults.
func DefaultConfig() Config {
	return Config{
		L1MaxItems: 1000,
		L1MaxBytes: 128 << 20,
		L1TTL:      5 * time.Minute,
		L2TTL:      30 * time.Minute,
		L3TTL:      24 * time.Hour,
		ShardCount: 16,
	}
}

// Stats are process-lifetime hit/miss counters per tier.
type Stats struct {
	L1Hits int64 `json:"l1_hits"`
	L2Hits int64 `json:"l2_hits"`
	L3Hits int64 `json:"l3_hits"`
	Misses int64 `json:"misses"`
}

// Cache is the tiered cache. L2 and L3 are optional; a nil tier is
// skipped even when the strategy names it.
type Cache struct {
	cfg      Config
	strategy Strategy
	l1       *L1
	l2       kv.Store
	l3       DurableStore
	clk      clock.Clock
	logger   *slog.Logger

	l1Hits int64
	l2Hits int64
	l3Hits int64
	misses int64

	// Dependency adjacency with explicit reverse edges: deps[k] is the
	// set k depends on, dependents[k] the set depending on k.
	depMu      sync.Mutex
	deps       map[string]map[string]struct{}
	dependents map[string]map[string]struct{}
}

// New creates a tiered cache. l2 and l3 may be nil.
func New(cfg Config, strategy Strategy, l2 kv.Store, l3 DurableStore, clk clock.Clock) *Cache {
	return &Cache{
		cfg:        cfg,
		strategy:   strategy,
		l1:         NewL1(clk, cfg.L1MaxItems, cfg.L1MaxBytes, cfg.ShardCount),
		l2:         l2,
		l3:         l3,
		clk:        clk,
		logger:     slog.Default().With("component", "cache"),
		deps:       make(map[string]map[string]struct{}),
		dependents: make(map[string]map[string]struct{}),
	}
}

func (c *Cache) tierTTL(tier Tier) time.Duration {
	var base time.Duration
	switch tier {
	case TierL1:
		base = c.cfg.L1TTL
	case TierL2:
		base = c.cfg.L2TTL
	default:
		base = c.cfg.L3TTL
	}
	return time.Duration(float64(base) * c.strategy.TTLMultiplier)
}

// Get probes the strategy's tiers in order. A hit in a lower tier is
// promoted to every tier above it with that tier's default TTL.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, tier := range c.strategy.Tiers {
		value, ok := c.probe(ctx, tier, key)
		if !ok {
			continue
		}
		switch tier {
		case TierL1:
			atomic.AddInt64(&c.l1Hits, 1)
		case TierL2:
			atomic.AddInt64(&c.l2Hits, 1)
		case TierL3:
			atomic.AddInt64(&c.l3Hits, 1)
		}
		c.promote(ctx, key, value, c.strategy.Tiers[:i])
		return value, true
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

func (c *Cache) probe(ctx context.Context, tier Tier, key string) ([]byte, bool) {
	switch tier {
	case TierL1:
		return c.l1.Get(key)
	case TierL2:
		if c.l2 == nil {
			return nil, false
		}
		raw, err := c.l2.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false
		}
		if err != nil {
			c.logger.Warn("L2 probe failed", "key", key, "error", err)
			return nil, false
		}
		return []byte(raw), true
	case TierL3:
		if c.l3 == nil {
			return nil, false
		}
		value, err := c.l3.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false
		}
		if err != nil {
			c.logger.Warn("L3 probe failed", "key", key, "error", err)
			return nil, false
		}
		if err := c.l3.Touch(ctx, key); err != nil {
			c.logger.Debug("L3 touch failed", "key", key, "error", err)
		}
		return value, true
	}
	return nil, false
}

func (c *Cache) promote(ctx context.Context, key string, value []byte, higher []Tier) {
	for _, tier := range higher {
		c.writeTier(ctx, tier, key, value)
	}
}

func (c *Cache) writeTier(ctx context.Context, tier Tier, key string, value []byte) {
	ttl := c.tierTTL(tier)
	switch tier {
	case TierL1:
		c.l1.Set(key, value, ttl)
	case TierL2:
		if c.l2 == nil {
			return
		}
		if err := c.l2.Set(ctx, key, string(value), ttl); err != nil {
			c.logger.Warn("L2 write failed", "key", key, "error", err)
		}
	case TierL3:
		if c.l3 == nil {
			return
		}
		if err := c.l3.Put(ctx, key, value, ttl); err != nil {
			c.logger.Warn("L3 write failed", "key", key, "error", err)
		}
	}
}

// Put writes the value to every tier the strategy names and records the
// keys this entry depends on.
func (c *Cache) Put(ctx context.Context, key string, value []byte, dependencies ...string) {
	for _, tier := range c.strategy.Tiers {
		c.writeTier(ctx, tier, key, value)
	}
	if len(dependencies) > 0 {
		c.registerDependencies(key, dependencies)
	}
}

func (c *Cache) registerDependencies(key string, dependencies []string) {
	c.depMu.Lock()
	defer c.depMu.Unlock()
	fwd, ok := c.deps[key]
	if !ok {
		fwd = make(map[string]struct{})
		c.deps[key] = fwd
	}
	for _, dep := range dependencies {
		if dep == key {
			continue
		}
		fwd[dep] = struct{}{}
		rev, ok := c.dependents[dep]
		if !ok {
			rev = make(map[string]struct{})
			c.dependents[dep] = rev
		}
		rev[key] = struct{}{}
	}
}

// Invalidate removes the key from every tier this process controls. With
// cascade, every entry depending on the key is invalidated too, one
// level deep so dependency cycles cannot loop.
func (c *Cache) Invalidate(ctx context.Context, key string, cascade bool) {
	c.deleteEverywhere(ctx, key)

	c.depMu.Lock()
	var children []string
	for dependent := range c.dependents[key] {
		children = append(children, dependent)
	}
	c.unlinkLocked(key)
	c.depMu.Unlock()

	if !cascade {
		return
	}
	for _, child := range children {
		c.Invalidate(ctx, child, false)
	}
}

// unlinkLocked removes the key from both directions of the graph.
func (c *Cache) unlinkLocked(key string) {
	for dep := range c.deps[key] {
		delete(c.dependents[dep], key)
		if len(c.dependents[dep]) == 0 {
			delete(c.dependents, dep)
		}
	}
	delete(c.deps, key)
	for dependent := range c.dependents[key] {
		delete(c.deps[dependent], key)
	}
	delete(c.dependents, key)
}

func (c *Cache) deleteEverywhere(ctx context.Context, key string) {
	c.l1.Delete(key)
	if c.l2 != nil {
		if err := c.l2.Del(ctx, key); err != nil {
			c.logger.Warn("L2 delete failed", "key", key, "error", err)
		}
	}
	if c.l3 != nil {
		if err := c.l3.Delete(ctx, key); err != nil {
			c.logger.Warn("L3 delete failed", "key", key, "error", err)
		}
	}
}

// Sweep deletes expired durable entries. Intended for a periodic
// background task; L1 expires lazily and L2 expires via store TTLs.
func (c *Cache) Sweep(ctx context.Context) (int, error) {
	if c.l3 == nil {
		return 0, nil
	}
	return c.l3.DeleteExpired(ctx)
}

// Stats returns the hit/miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		L1Hits: atomic.LoadInt64(&c.l1Hits),
		L2Hits: atomic.LoadInt64(&c.l2Hits),
		L3Hits: atomic.LoadInt64(&c.l3Hits),
		Misses: atomic.LoadInt64(&c.misses),
	}
}
