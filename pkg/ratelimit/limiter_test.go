package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/kv"
)

func newLimiter() (*Limiter, *clock.Fake) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	return NewLimiter(kv.NewMemory(clk), clk), clk
}

func TestClientID_Derivation(t *testing.T) {
	assert.Equal(t, "key:abc", ClientID("abc", "u", "1.2.3.4"))
	assert.Equal(t, "user:u", ClientID("", "u", "1.2.3.4"))
	assert.Equal(t, "ip:1.2.3.4", ClientID("", "", "1.2.3.4"))
}

func TestFixedWindow_ScenarioSixInTenSeconds(t *testing.T) {
	limiter, clk := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: FixedWindow, Limit: 5, Window: time.Minute}

	for i := 0; i < 6; i++ {
		out, err := limiter.Admit(ctx, "ip:10.0.0.1", limits)
		require.NoError(t, err)
		if i < 5 {
			assert.True(t, out.Allowed, "admission %d", i+1)
			assert.Equal(t, 5-(i+1), out.Remaining)
		} else {
			assert.False(t, out.Allowed)
			assert.GreaterOrEqual(t, out.RetryAfter, time.Second)
			assert.Equal(t, "rate_limited", out.Reason)
		}
		clk.Advance(2 * time.Second)
	}

	// After the window rolls over, admission resumes with a fresh count.
	clk.Advance(60 * time.Second)
	out, err := limiter.Admit(ctx, "ip:10.0.0.1", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
	assert.Equal(t, 4, out.Remaining)
}

func TestFixedWindow_NeverExceedsLimitPerWindow(t *testing.T) {
	limiter, _ := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: FixedWindow, Limit: 10, Window: time.Minute}

	admitted := 0
	for i := 0; i < 50; i++ {
		out, err := limiter.Admit(ctx, "ip:10.0.0.2", limits)
		require.NoError(t, err)
		if out.Allowed {
			admitted++
		}
	}
	assert.Equal(t, 10, admitted)
}

func TestTokenBucket_BurstThenRefill(t *testing.T) {
	limiter, clk := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: TokenBucket, Limit: 60, Burst: 3}

	// Burst drains the bucket.
	for i := 0; i < 3; i++ {
		out, err := limiter.Admit(ctx, "user:alice", limits)
		require.NoError(t, err)
		assert.True(t, out.Allowed, "burst admission %d", i+1)
	}
	out, err := limiter.Admit(ctx, "user:alice", limits)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.GreaterOrEqual(t, out.RetryAfter, time.Second)

	// 60/min refills one token per second.
	clk.Advance(time.Second)
	out, err = limiter.Admit(ctx, "user:alice", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestTokenBucket_RefillCapsAtCapacity(t *testing.T) {
	limiter, clk := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: TokenBucket, Limit: 60, Burst: 3}

	out, err := limiter.Admit(ctx, "user:bob", limits)
	require.NoError(t, err)
	require.True(t, out.Allowed)

	// A long idle period must not accumulate beyond the capacity.
	clk.Advance(time.Hour)
	admitted := 0
	for i := 0; i < 10; i++ {
		out, err := limiter.Admit(ctx, "user:bob", limits)
		require.NoError(t, err)
		if out.Allowed {
			admitted++
		}
	}
	assert.Equal(t, 3, admitted)
}

func TestSlidingWindow_OldTimestampsExpire(t *testing.T) {
	limiter, clk := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: SlidingWindow, Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		out, err := limiter.Admit(ctx, "ip:10.0.0.3", limits)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
		clk.Advance(10 * time.Second)
	}

	out, err := limiter.Admit(ctx, "ip:10.0.0.3", limits)
	require.NoError(t, err)
	assert.False(t, out.Allowed)

	// 40s later the first timestamp (70s old) has left the window.
	clk.Advance(40 * time.Second)
	out, err = limiter.Admit(ctx, "ip:10.0.0.3", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestLeakyBucket_LeaksOverTime(t *testing.T) {
	limiter, clk := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: LeakyBucket, Limit: 60, Burst: 2}

	out, err := limiter.Admit(ctx, "user:carol", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
	out, err = limiter.Admit(ctx, "user:carol", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)

	out, err = limiter.Admit(ctx, "user:carol", limits)
	require.NoError(t, err)
	assert.False(t, out.Allowed)

	clk.Advance(2 * time.Second)
	out, err = limiter.Admit(ctx, "user:carol", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestDynamicAdjustment_ScalesLimits(t *testing.T) {
	limiter, _ := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: FixedWindow, Limit: 4, Window: time.Minute}

	limiter.SetSystemLoad(0.9)
	admitted := 0
	for i := 0; i < 10; i++ {
		out, err := limiter.Admit(ctx, "ip:10.0.0.4", limits)
		require.NoError(t, err)
		if out.Allowed {
			admitted++
		}
	}
	assert.Equal(t, 2, admitted, "load > 0.8 halves the limit")

	limiter.SetSystemLoad(0.1)
	admitted = 0
	for i := 0; i < 10; i++ {
		out, err := limiter.Admit(ctx, "ip:10.0.0.5", limits)
		require.NoError(t, err)
		if out.Allowed {
			admitted++
		}
	}
	assert.Equal(t, 6, admitted, "load < 0.2 raises the limit by half")
}

func TestViolations_BlockAfterThreshold(t *testing.T) {
	limiter, _ := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: FixedWindow, Limit: 1, Window: time.Minute}

	out, err := limiter.Admit(ctx, "ip:10.0.0.6", limits)
	require.NoError(t, err)
	require.True(t, out.Allowed)

	// Ten denials install the block flag.
	for i := 0; i < 10; i++ {
		out, err = limiter.Admit(ctx, "ip:10.0.0.6", limits)
		require.NoError(t, err)
		require.False(t, out.Allowed)
	}

	out, err = limiter.Admit(ctx, "ip:10.0.0.6", limits)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, "blocked", out.Reason)
	assert.GreaterOrEqual(t, out.RetryAfter, time.Second)
}

func TestViolations_BlockExpires(t *testing.T) {
	limiter, clk := newLimiter()
	ctx := context.Background()
	limits := Limits{Algorithm: FixedWindow, Limit: 1, Window: time.Second}

	require.NotPanics(t, func() {
		for i := 0; i < 11; i++ {
			_, err := limiter.Admit(ctx, "ip:10.0.0.7", limits)
			require.NoError(t, err)
		}
	})

	out, err := limiter.Admit(ctx, "ip:10.0.0.7", limits)
	require.NoError(t, err)
	require.Equal(t, "blocked", out.Reason)

	clk.Advance(301 * time.Second)
	out, err = limiter.Admit(ctx, "ip:10.0.0.7", limits)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestAdmit_UnknownAlgorithm(t *testing.T) {
	limiter, _ := newLimiter()
	_, err := limiter.Admit(context.Background(), "ip:1.1.1.1", Limits{Algorithm: "bogus", Limit: 1})
	assert.Error(t, err)
}
