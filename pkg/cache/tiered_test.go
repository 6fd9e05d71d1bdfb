package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/kv"
)

// fakeDurable is an in-memory L3 used until the database is in play.
type fakeDurable struct {
	mu      sync.Mutex
	clk     clock.Clock
	values  map[string][]byte
	expiry  map[string]time.Time
	touches map[string]int
}

func newFakeDurable(clk clock.Clock) *fakeDurable {
	return &fakeDurable{
		clk:     clk,
		values:  make(map[string][]byte),
		expiry:  make(map[string]time.Time),
		touches: make(map[string]int),
	}
}

func (f *fakeDurable) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok || !f.clk.Now().Before(f.expiry[key]) {
		return nil, kv.ErrNotFound
	}
	return v, nil
}

func (f *fakeDurable) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.expiry[key] = f.clk.Now().Add(ttl)
	return nil
}

func (f *fakeDurable) Touch(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touches[key]++
	return nil
}

func (f *fakeDurable) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	delete(f.expiry, key)
	return nil
}

func (f *fakeDurable) DeleteExpired(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for key, exp := range f.expiry {
		if !f.clk.Now().Before(exp) {
			delete(f.values, key)
			delete(f.expiry, key)
			n++
		}
	}
	return n, nil
}

func testCache(strategy Strategy) (*Cache, *clock.Fake, *fakeDurable) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	cfg := Config{
		L1MaxItems: 100,
		L1MaxBytes: 1 << 20,
		L1TTL:      5 * time.Minute,
		L2TTL:      30 * time.Minute,
		L3TTL:      24 * time.Hour,
		ShardCount: 4,
	}
	l3 := newFakeDurable(clk)
	return New(cfg, strategy, kv.NewMemory(clk), l3, clk), clk, l3
}

func TestL1_LRUEvictionByCount(t *testing.T) {
	clk := clock.NewFake(time.Now())
	l1 := NewL1(clk, 2, 1<<20, 1)

	l1.Set("a", []byte("1"), time.Minute)
	l1.Set("b", []byte("2"), time.Minute)

	// Touch a so b becomes the LRU victim.
	_, ok := l1.Get("a")
	require.True(t, ok)

	l1.Set("c", []byte("3"), time.Minute)
	_, ok = l1.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = l1.Get("a")
	assert.True(t, ok)
	_, ok = l1.Get("c")
	assert.True(t, ok)
}

func TestL1_EvictionByBytes(t *testing.T) {
	clk := clock.NewFake(time.Now())
	l1 := NewL1(clk, 100, 20, 1)

	l1.Set("k1", []byte("aaaaaaaa"), time.Minute) // 10 bytes
	l1.Set("k2", []byte("bbbbbbbb"), time.Minute) // 10 bytes
	l1.Set("k3", []byte("cccccccc"), time.Minute) // pushes over budget

	assert.LessOrEqual(t, l1.Bytes(), int64(20))
	_, ok := l1.Get("k1")
	assert.False(t, ok)
}

func TestL1_TTLExpiry(t *testing.T) {
	clk := clock.NewFake(time.Now())
	l1 := NewL1(clk, 10, 1<<20, 2)

	l1.Set("k", []byte("v"), time.Minute)
	_, ok := l1.Get("k")
	require.True(t, ok)

	clk.Advance(61 * time.Second)
	_, ok = l1.Get("k")
	assert.False(t, ok)
	assert.Zero(t, l1.Len(), "expired entry is removed lazily")
}

func TestCache_RoundTripAllTiers(t *testing.T) {
	c, _, l3 := testCache(StrategyDurable())
	ctx := context.Background()

	c.Put(ctx, "plan:sig1", []byte(`{"plan":true}`))
	got, ok := c.Get(ctx, "plan:sig1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"plan":true}`), got)

	// Durable tier received the write too.
	v, err := l3.Get(ctx, "plan:sig1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"plan":true}`), v)
}

func TestCache_PromotionOnLowerTierHit(t *testing.T) {
	c, _, _ := testCache(StrategyStandard())
	ctx := context.Background()

	// Seed L2 directly so L1 starts cold.
	require.NoError(t, c.l2.Set(ctx, "step:abc", "result", 30*time.Minute))

	got, ok := c.Get(ctx, "step:abc")
	require.True(t, ok)
	assert.Equal(t, []byte("result"), got)

	// The hit promoted the value into L1.
	v, ok := c.l1.Get("step:abc")
	require.True(t, ok)
	assert.Equal(t, []byte("result"), v)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.L2Hits)
}

func TestCache_MissAfterTTL(t *testing.T) {
	c, clk, _ := testCache(StrategyLocal())
	ctx := context.Background()

	c.Put(ctx, "k", []byte("v"))
	_, ok := c.Get(ctx, "k")
	require.True(t, ok)

	clk.Advance(6 * time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, int64(1), c.Stats().Misses)
}

func TestCache_DurableStrategyDoublesTTL(t *testing.T) {
	c, clk, _ := testCache(StrategyDurable())
	ctx := context.Background()

	c.Put(ctx, "k", []byte("v"))

	// Past the base L1 TTL but inside the doubled one: still resident.
	clk.Advance(8 * time.Minute)
	v, ok := c.l1.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestCache_InvalidateRemovesEveryTier(t *testing.T) {
	c, _, l3 := testCache(StrategyDurable())
	ctx := context.Background()

	c.Put(ctx, "k", []byte("v"))
	c.Invalidate(ctx, "k", true)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	_, err := l3.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestCache_CascadeIsOneLevel(t *testing.T) {
	c, _, _ := testCache(StrategyStandard())
	ctx := context.Background()

	// step2 depends on step1; step3 depends on step2.
	c.Put(ctx, "step1", []byte("a"))
	c.Put(ctx, "step2", []byte("b"), "step1")
	c.Put(ctx, "step3", []byte("c"), "step2")

	c.Invalidate(ctx, "step1", true)

	_, ok := c.Get(ctx, "step1")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "step2")
	assert.False(t, ok, "direct dependent is cascaded")
	_, ok = c.Get(ctx, "step3")
	assert.True(t, ok, "cascade stops after one level")
}

func TestCache_InvalidateWithoutCascadeKeepsDependents(t *testing.T) {
	c, _, _ := testCache(StrategyLocal())
	ctx := context.Background()

	c.Put(ctx, "base", []byte("a"))
	c.Put(ctx, "derived", []byte("b"), "base")

	c.Invalidate(ctx, "base", false)

	_, ok := c.Get(ctx, "derived")
	assert.True(t, ok)
}

func TestCache_SweepRemovesExpiredDurables(t *testing.T) {
	c, clk, _ := testCache(StrategyDurable())
	ctx := context.Background()

	c.Put(ctx, "k", []byte("v"))
	clk.Advance(49 * time.Hour)

	n, err := c.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName("durable")
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.TTLMultiplier)

	_, err = StrategyByName("bogus")
	assert.Error(t, err)
}
