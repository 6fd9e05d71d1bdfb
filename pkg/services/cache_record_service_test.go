package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/ent/cacherecord"
	"github.com/orchid-run/orchid/pkg/kv"
	testdb "github.com/orchid-run/orchid/test/database"
)

func TestCacheRecordService_RoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheRecordService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.Put(ctx, "step:sig", []byte("cached result"), time.Hour))

	got, err := service.Get(ctx, "step:sig")
	require.NoError(t, err)
	assert.Equal(t, []byte("cached result"), got)

	// Upsert replaces the value under the same key.
	require.NoError(t, service.Put(ctx, "step:sig", []byte("newer"), time.Hour))
	got, err = service.Get(ctx, "step:sig")
	require.NoError(t, err)
	assert.Equal(t, []byte("newer"), got)

	count, err := client.CacheRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCacheRecordService_MissAndExpiry(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheRecordService(client.Client)
	ctx := context.Background()

	_, err := service.Get(ctx, "absent")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// An already-expired record reads as a miss and is swept.
	require.NoError(t, service.Put(ctx, "stale", []byte("v"), -time.Minute))
	_, err = service.Get(ctx, "stale")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	n, err := service.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCacheRecordService_Touch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheRecordService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.Put(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, service.Touch(ctx, "k"))
	require.NoError(t, service.Touch(ctx, "k"))

	record, err := client.CacheRecord.Query().
		Where(cacherecord.KeyEQ("k")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), record.AccessCount)
}

func TestCacheRecordService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheRecordService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.Put(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, service.Delete(ctx, "k"))
	_, err := service.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, service.Delete(ctx, "k"))
}
