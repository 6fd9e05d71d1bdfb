// Package kv abstracts the shared key-value store used for rate-limit
// state, cache tier L2, and router load snapshots. Two implementations
// exist: Redis for deployments and an in-process map for local mode and
// tests.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("kv: key not found")

// Store is the key-value contract. All methods honor the context deadline.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes key with a TTL; ttl <= 0 means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX writes key only if absent; reports whether the write happened.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// Incr atomically increments the integer at key and returns the result.
	Incr(ctx context.Context, key string) (int64, error)
	// IncrWithTTL atomically increments key and, when the increment created
	// the key, applies the TTL. This is the admission-counter primitive: the
	// increment and the expiry must not be separable by a crash.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// Expire resets the TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// Del removes keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error
}
