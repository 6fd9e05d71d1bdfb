package kv

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/orchid-run/orchid/pkg/clock"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process Store for local mode and tests. Expired entries
// are dropped lazily on access, same as the teacher-style TTL caches.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	clk     clock.Clock
}

// NewMemory creates an in-process store using the given clock.
func NewMemory(clk clock.Clock) *Memory {
	return &Memory{
		entries: make(map[string]*memoryEntry),
		clk:     clk,
	}
}

func (m *Memory) get(key string) (*memoryEntry, bool) {
	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if entry.expired(m.clk.Now()) {
		delete(m.entries, key)
		return nil, false
	}
	return entry, true
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.get(key)
	if !ok {
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = &memoryEntry{value: value, expiresAt: m.deadline(ttl)}
	return nil
}

func (m *Memory) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.get(key); ok {
		return false, nil
	}
	m.entries[key] = &memoryEntry{value: value, expiresAt: m.deadline(ttl)}
	return true, nil
}

func (m *Memory) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incrLocked(key, 0)
}

func (m *Memory) IncrWithTTL(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incrLocked(key, ttl)
}

// incrLocked increments the counter at key; a TTL > 0 is applied only when
// the increment creates the key, matching Redis INCR+EXPIRE NX semantics.
func (m *Memory) incrLocked(key string, ttl time.Duration) (int64, error) {
	entry, ok := m.get(key)
	if !ok {
		m.entries[key] = &memoryEntry{value: "1", expiresAt: m.deadline(ttl)}
		return 1, nil
	}
	n, err := strconv.ParseInt(entry.value, 10, 64)
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	n++
	entry.value = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *Memory) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.get(key); ok {
		entry.expiresAt = m.deadline(ttl)
	}
	return nil
}

func (m *Memory) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *Memory) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return m.clk.Now().Add(ttl)
}
