// Package breaker guards calls to external dependencies with per-target
// circuit breakers. State is process-local; cross-process convergence is
// not required.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned while a target's breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit open")

// Config holds the breaker parameters shared by all targets.
type Config struct {
	// FailureThreshold is the failure fraction that trips the breaker once
	// MinimumRequests have been observed in the rolling window.
	FailureThreshold float64       `yaml:"failure_threshold"`
	MinimumRequests  uint32        `yaml:"minimum_requests"`
	RecoveryTimeout  time.Duration `yaml:"recovery_timeout"`
	// SuccessThreshold is the number of consecutive half-open successes
	// required to close. It also bounds the half-open probe budget: the
	// underlying breaker admits at most this many concurrent probes.
	SuccessThreshold uint32        `yaml:"success_threshold"`
	// WindowInterval is the rolling window over which counts accumulate
	// while closed.
	WindowInterval   time.Duration `yaml:"window_interval"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 0.5,
		MinimumRequests:  20,
		RecoveryTimeout:  300 * time.Second,
		SuccessThreshold: 2,
		WindowInterval:   60 * time.Second,
	}
}

// StateListener observes breaker state transitions (e.g. for metrics).
type StateListener func(target string, from, to string)

// Registry keeps one breaker per target.
type Registry struct {
	cfg      Config
	logger   *slog.Logger
	listener StateListener

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

// NewRegistry creates a breaker registry. listener may be nil.
func NewRegistry(cfg Config, listener StateListener) *Registry {
	return &Registry{
		cfg:      cfg,
		logger:   slog.Default().With("component", "breaker"),
		listener: listener,
		breakers: make(map[string]*gobreaker.CircuitBreaker[any]),
	}
}

func (r *Registry) breakerFor(target string) *gobreaker.CircuitBreaker[any] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cb, ok := r.breakers[target]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        target,
		MaxRequests: r.cfg.SuccessThreshold,
		Interval:    r.cfg.WindowInterval,
		Timeout:     r.cfg.RecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < r.cfg.MinimumRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= r.cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.logger.Info("Circuit breaker state change",
				"target", name, "from", from.String(), "to", to.String())
			if r.listener != nil {
				r.listener(name, from.String(), to.String())
			}
		},
	})
	r.breakers[target] = cb
	return cb
}

// Do runs fn under the target's breaker. While the breaker is open no
// call reaches fn; the caller receives ErrCircuitOpen immediately.
func (r *Registry) Do(ctx context.Context, target string, fn func(context.Context) error) error {
	cb := r.breakerFor(target)
	_, err := cb.Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s", ErrCircuitOpen, target)
	}
	return err
}

// State reports the target's current state: closed, open, or half-open.
func (r *Registry) State(target string) string {
	return r.breakerFor(target).State().String()
}
