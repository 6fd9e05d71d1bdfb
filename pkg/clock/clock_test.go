package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFake(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, int64(0), c.Monotonic())

	c.Advance(90 * time.Second)

	assert.Equal(t, start.Add(90*time.Second), c.Now())
	assert.Equal(t, int64(90*time.Second), c.Monotonic())
	assert.Equal(t, 90*time.Second, c.Since(start))
}

func TestRealClock_MonotonicAdvances(t *testing.T) {
	c := NewReal()
	a := c.Monotonic()
	time.Sleep(time.Millisecond)
	b := c.Monotonic()
	assert.Greater(t, b, a)
}

func TestPRNG_DeterministicUnderSameSeed(t *testing.T) {
	a := NewPRNG(42)
	b := NewPRNG(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.Equal(t, a.UUID(), b.UUID())
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestPRNG_SeedsDiverge(t *testing.T) {
	a := NewPRNG(42)
	b := NewPRNG(43)
	assert.NotEqual(t, a.UUID(), b.UUID())
}

func TestPRNG_UUIDShape(t *testing.T) {
	p := NewPRNG(42)
	u := p.UUID()
	assert.Len(t, u, 36)
	// Version nibble must be 4, variant must be RFC 4122.
	assert.Equal(t, byte('4'), u[14])
	assert.Contains(t, "89ab", string(u[19]))
}

func TestPRNG_JitterBounds(t *testing.T) {
	p := NewPRNG(42)
	for i := 0; i < 1000; i++ {
		j := p.Jitter(250)
		assert.GreaterOrEqual(t, j, int64(0))
		assert.Less(t, j, int64(250))
	}
	assert.Equal(t, int64(0), p.Jitter(0))
}
