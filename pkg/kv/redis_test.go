package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFromClient(client), mr
}

func TestRedis_SetGet(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestRedis_GetMissing(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_TTLExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	mr.FastForward(61 * time.Second)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_SetNX(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	ok, err := store.SetNX(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_IncrWithTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	n, err := store.IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mr.FastForward(61 * time.Second)

	n, err = store.IncrWithTTL(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedis_Del(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, store.Del(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
