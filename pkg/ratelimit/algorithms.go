package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/orchid-run/orchid/pkg/kv"
)

// ── Fixed window ────────────────────────────────────────────────

// admitFixedWindow keys a counter by ⌊now/W⌋ and relies on the store's
// atomic increment-with-TTL, so concurrent admitters cannot overshoot.
func (l *Limiter) admitFixedWindow(ctx context.Context, clientID string, limits Limits) (Outcome, error) {
	window := limits.window()
	now := l.clk.Now()
	index := now.Unix() / int64(window.Seconds())
	key := fmt.Sprintf("ratelimit:fixed:%s:%d", clientID, index)

	count, err := l.store.IncrWithTTL(ctx, key, window)
	if err != nil {
		return Outcome{}, fmt.Errorf("fixed window incr: %w", err)
	}

	reset := (index + 1) * int64(window.Seconds())
	remaining := limits.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Outcome{
		Allowed:   count <= int64(limits.Limit),
		Remaining: remaining,
		Limit:     limits.Limit,
		ResetUnix: reset,
	}, nil
}

// ── Sliding window ──────────────────────────────────────────────

// admitSlidingWindow keeps the timestamps inside the window. The
// read-filter-append sequence runs under the limiter lock; the store copy
// is authoritative across restarts, advisory across processes.
func (l *Limiter) admitSlidingWindow(ctx context.Context, clientID string, limits Limits) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := limits.window()
	now := l.clk.Now()
	key := fmt.Sprintf("ratelimit:sliding:%s", clientID)

	var stamps []int64
	raw, err := l.store.Get(ctx, key)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return Outcome{}, fmt.Errorf("sliding window read: %w", err)
	}
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &stamps); jsonErr != nil {
			stamps = nil
		}
	}

	cutoff := now.Add(-window).UnixMilli()
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts > cutoff {
			kept = append(kept, ts)
		}
	}

	allowed := len(kept) < limits.Limit
	if allowed {
		kept = append(kept, now.UnixMilli())
	}

	encoded, err := json.Marshal(kept)
	if err != nil {
		return Outcome{}, fmt.Errorf("sliding window encode: %w", err)
	}
	if err := l.store.Set(ctx, key, string(encoded), window); err != nil {
		return Outcome{}, fmt.Errorf("sliding window write: %w", err)
	}

	reset := now.Add(window).Unix()
	if len(kept) > 0 {
		reset = time.UnixMilli(kept[0]).Add(window).Unix()
	}
	remaining := limits.Limit - len(kept)
	if remaining < 0 {
		remaining = 0
	}
	return Outcome{
		Allowed:   allowed,
		Remaining: remaining,
		Limit:     limits.Limit,
		ResetUnix: reset,
	}, nil
}

// ── Token bucket ────────────────────────────────────────────────

type tokenBucketState struct {
	Tokens     float64 `json:"tokens"`
	LastRefill int64   `json:"last_refill"` // unix millis
}

// admitTokenBucket refills (elapsed/60)·R tokens capped at capacity, then
// consumes one if available.
func (l *Limiter) admitTokenBucket(ctx context.Context, clientID string, limits Limits) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	capacity := float64(limits.Burst)
	if capacity <= 0 {
		capacity = float64(limits.Limit)
	}
	now := l.clk.Now()
	key := fmt.Sprintf("ratelimit:bucket:%s", clientID)

	state := tokenBucketState{Tokens: capacity, LastRefill: now.UnixMilli()}
	if raw, err := l.store.Get(ctx, key); err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &state); jsonErr != nil {
			state = tokenBucketState{Tokens: capacity, LastRefill: now.UnixMilli()}
		}
	} else if !errors.Is(err, kv.ErrNotFound) {
		return Outcome{}, fmt.Errorf("token bucket read: %w", err)
	}

	elapsed := float64(now.UnixMilli()-state.LastRefill) / 1000
	if elapsed > 0 {
		state.Tokens += elapsed / 60 * float64(limits.Limit)
		if state.Tokens > capacity {
			state.Tokens = capacity
		}
	}
	state.LastRefill = now.UnixMilli()

	allowed := state.Tokens >= 1
	if allowed {
		state.Tokens--
	}

	if err := l.writeJSON(ctx, key, state, 2*limits.window()); err != nil {
		return Outcome{}, err
	}

	// Reset is when the next full token materializes.
	secondsPerToken := 60.0 / float64(limits.Limit)
	reset := now.Add(time.Duration(secondsPerToken * float64(time.Second))).Unix()
	return Outcome{
		Allowed:   allowed,
		Remaining: int(state.Tokens),
		Limit:     limits.Limit,
		ResetUnix: reset,
	}, nil
}

// ── Leaky bucket ────────────────────────────────────────────────

type leakyBucketState struct {
	Volume   float64 `json:"volume"`
	LastLeak int64   `json:"last_leak"` // unix millis
}

// admitLeakyBucket leaks (elapsed/60)·R volume, then admits if the bucket
// is below burst size.
func (l *Limiter) admitLeakyBucket(ctx context.Context, clientID string, limits Limits) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	burst := float64(limits.Burst)
	if burst <= 0 {
		burst = float64(limits.Limit)
	}
	now := l.clk.Now()
	key := fmt.Sprintf("ratelimit:leaky:%s", clientID)

	state := leakyBucketState{LastLeak: now.UnixMilli()}
	if raw, err := l.store.Get(ctx, key); err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &state); jsonErr != nil {
			state = leakyBucketState{LastLeak: now.UnixMilli()}
		}
	} else if !errors.Is(err, kv.ErrNotFound) {
		return Outcome{}, fmt.Errorf("leaky bucket read: %w", err)
	}

	elapsed := float64(now.UnixMilli()-state.LastLeak) / 1000
	if elapsed > 0 {
		state.Volume -= elapsed / 60 * float64(limits.Limit)
		if state.Volume < 0 {
			state.Volume = 0
		}
	}
	state.LastLeak = now.UnixMilli()

	allowed := state.Volume < burst
	if allowed {
		state.Volume++
	}

	if err := l.writeJSON(ctx, key, state, 2*limits.window()); err != nil {
		return Outcome{}, err
	}

	secondsPerLeak := 60.0 / float64(limits.Limit)
	reset := now.Add(time.Duration(secondsPerLeak * float64(time.Second))).Unix()
	remaining := int(burst - state.Volume)
	if remaining < 0 {
		remaining = 0
	}
	return Outcome{
		Allowed:   allowed,
		Remaining: remaining,
		Limit:     limits.Limit,
		ResetUnix: reset,
	}, nil
}

func (l *Limiter) writeJSON(ctx context.Context, key string, state any, ttl time.Duration) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Set(ctx, key, string(encoded), ttl); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
