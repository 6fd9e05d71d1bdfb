package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream boom")

func testConfig() Config {
	return Config{
		FailureThreshold: 0.5,
		MinimumRequests:  4,
		RecoveryTimeout:  50 * time.Millisecond,
		SuccessThreshold: 2,
		WindowInterval:   time.Minute,
	}
}

func TestBreaker_StaysClosedUnderMinimumRequests(t *testing.T) {
	r := NewRegistry(testConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
		assert.ErrorIs(t, err, errUpstream)
	}
	assert.Equal(t, "closed", r.State("roles"))
}

func TestBreaker_OpensAtFailureThreshold(t *testing.T) {
	r := NewRegistry(testConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	}
	assert.Equal(t, "open", r.State("roles"))
}

func TestBreaker_OpenFailsFastWithoutCalling(t *testing.T) {
	r := NewRegistry(testConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	}
	require.Equal(t, "open", r.State("roles"))

	calls := 0
	for i := 0; i < 10; i++ {
		err := r.Do(ctx, "roles", func(context.Context) error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, ErrCircuitOpen)
	}
	assert.Zero(t, calls, "no external call may occur while open")
}

func TestBreaker_RecoversThroughHalfOpen(t *testing.T) {
	r := NewRegistry(testConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	}
	require.Equal(t, "open", r.State("roles"))

	time.Sleep(60 * time.Millisecond)

	// Two consecutive successes close the breaker.
	require.NoError(t, r.Do(ctx, "roles", func(context.Context) error { return nil }))
	require.NoError(t, r.Do(ctx, "roles", func(context.Context) error { return nil }))
	assert.Equal(t, "closed", r.State("roles"))
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	r := NewRegistry(testConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	}
	time.Sleep(60 * time.Millisecond)

	err := r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, "open", r.State("roles"))
}

func TestBreaker_TargetsAreIndependent(t *testing.T) {
	r := NewRegistry(testConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	}
	require.Equal(t, "open", r.State("roles"))

	assert.NoError(t, r.Do(ctx, "kv", func(context.Context) error { return nil }))
	assert.Equal(t, "closed", r.State("kv"))
}

func TestBreaker_StateListener(t *testing.T) {
	var transitions []string
	r := NewRegistry(testConfig(), func(target, from, to string) {
		transitions = append(transitions, from+"->"+to)
	})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_ = r.Do(ctx, "roles", func(context.Context) error { return errUpstream })
	}
	require.Contains(t, transitions, "closed->open")
}
