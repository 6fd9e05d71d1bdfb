package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/clock"
)

func newMemoryStore() (*Memory, *clock.Fake) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewMemory(clk), clk
}

func TestMemory_SetGet(t *testing.T) {
	store, _ := newMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", 0))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestMemory_GetMissing(t *testing.T) {
	store, _ := newMemoryStore()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_TTLExpiry(t *testing.T) {
	store, clk := newMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	clk.Advance(61 * time.Second)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetNX(t *testing.T) {
	store, _ := newMemoryStore()
	ctx := context.Background()

	ok, err := store.SetNX(ctx, "k", "first", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetNX(ctx, "k", "second", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestMemory_SetNXAfterExpiry(t *testing.T) {
	store, clk := newMemoryStore()
	ctx := context.Background()

	ok, err := store.SetNX(ctx, "k", "first", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	clk.Advance(2 * time.Second)

	ok, err = store.SetNX(ctx, "k", "second", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_Incr(t *testing.T) {
	store, _ := newMemoryStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		n, err := store.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestMemory_IncrWithTTL_ExpiryOnlyOnCreate(t *testing.T) {
	store, clk := newMemoryStore()
	ctx := context.Background()

	n, err := store.IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// A later increment must not extend the window.
	clk.Advance(30 * time.Second)
	n, err = store.IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	clk.Advance(31 * time.Second)
	n, err = store.IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "window should have rolled over")
}

func TestMemory_ExpireAndDel(t *testing.T) {
	store, clk := newMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1", 0))
	require.NoError(t, store.Expire(ctx, "a", time.Second))
	clk.Advance(2 * time.Second)
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "b", "2", 0))
	require.NoError(t, store.Del(ctx, "b", "missing"))
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}
