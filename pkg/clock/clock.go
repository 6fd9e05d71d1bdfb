// Package clock provides the process-wide time and randomness sources.
// All timestamps, jitter, and generated identifiers flow through these
// abstractions so that runs are reproducible under a fixed seed and tests
// can advance time without sleeping.
package clock

import (
	"sync"
	"time"
)

// Clock is the single source of time for the orchestrator. Now is
// wall-clock; Since and Monotonic are backed by the monotonic reading so
// trace ordering is immune to wall-clock adjustments.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	// Monotonic returns nanoseconds elapsed since the clock was created.
	Monotonic() int64
}

// Real is the production clock.
type Real struct {
	start time.Time
}

// NewReal creates a production clock anchored at construction time.
func NewReal() *Real {
	return &Real{start: time.Now()}
}

func (r *Real) Now() time.Time              { return time.Now() }
func (r *Real) Since(t time.Time) time.Duration { return time.Since(t) }
func (r *Real) Monotonic() int64            { return int64(time.Since(r.start)) }

// Fake is a manually advanced clock for tests.
type Fake struct {
	mu   sync.Mutex
	now  time.Time
	tick int64
}

// NewFake creates a fake clock anchored at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Since(t time.Time) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now.Sub(t)
}

func (f *Fake) Monotonic() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tick
}

// Advance moves the fake clock forward.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
	f.tick += int64(d)
}
