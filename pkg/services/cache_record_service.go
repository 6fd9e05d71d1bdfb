package services

import (
	"context"
	"fmt"
	"time"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/cacherecord"
	"github.com/orchid-run/orchid/pkg/kv"
)

// CacheRecordService is the durable (L3) cache tier over the database.
// It implements cache.DurableStore.
type CacheRecordService struct {
	client *ent.Client
}

// NewCacheRecordService creates a new CacheRecordService
func NewCacheRecordService(client *ent.Client) *CacheRecordService {
	if client == nil {
		panic("NewCacheRecordService: client must not be nil")
	}
	return &CacheRecordService{client: client}
}

// Get returns the stored value, kv.ErrNotFound on miss or expiry.
func (s *CacheRecordService) Get(ctx context.Context, key string) ([]byte, error) {
	record, err := s.client.CacheRecord.Query().
		Where(
			cacherecord.KeyEQ(key),
			cacherecord.ExpiresAtGT(time.Now()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cache record: %w", err)
	}
	return record.Value, nil
}

// Put upserts the value with a TTL and resets the access counter.
func (s *CacheRecordService) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := time.Now()
	err := s.client.CacheRecord.Create().
		SetKey(key).
		SetValue(value).
		SetSize(int64(len(key) + len(value))).
		SetAccessedAt(now).
		SetExpiresAt(now.Add(ttl)).
		OnConflictColumns(cacherecord.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to put cache record: %w", err)
	}
	return nil
}

// Touch bumps the access counter and timestamp.
func (s *CacheRecordService) Touch(ctx context.Context, key string) error {
	err := s.client.CacheRecord.Update().
		Where(cacherecord.KeyEQ(key)).
		AddAccessCount(1).
		SetAccessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch cache record: %w", err)
	}
	return nil
}

// Delete removes a record if present.
func (s *CacheRecordService) Delete(ctx context.Context, key string) error {
	_, err := s.client.CacheRecord.Delete().
		Where(cacherecord.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete cache record: %w", err)
	}
	return nil
}

// DeleteExpired removes records past expiry, returning the count. Run by
// the periodic sweep.
func (s *CacheRecordService) DeleteExpired(ctx context.Context) (int, error) {
	count, err := s.client.CacheRecord.Delete().
		Where(cacherecord.ExpiresAtLTE(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired cache records: %w", err)
	}
	return count, nil
}
