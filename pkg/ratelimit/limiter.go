// Package ratelimit implements admission control over the shared KV store:
// four interchangeable algorithms, dynamic limit adjustment from system
// load, and violation tracking with temporary client blocks.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/kv"
)

// Algorithm selects the admission strategy.
type Algorithm string

const (
	TokenBucket   Algorithm = "token_bucket"
	SlidingWindow Algorithm = "sliding_window"
	FixedWindow   Algorithm = "fixed_window"
	LeakyBucket   Algorithm = "leaky_bucket"
)

// Limits parameterizes one admission check.
type Limits struct {
	Algorithm Algorithm
	// Limit is requests per window (window algorithms) or the refill /
	// leak rate per minute (bucket algorithms).
	Limit int
	// Burst is the bucket capacity; ignored by the window algorithms.
	Burst int
	// Window is the measurement window; defaults to one minute.
	Window time.Duration
}

func (l Limits) window() time.Duration {
	if l.Window <= 0 {
		return time.Minute
	}
	return l.Window
}

// Outcome is the explicit result variant of Admit.
type Outcome struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	Limit     int       `json:"limit"`
	ResetUnix int64     `json:"reset_unix"`
	Algorithm Algorithm `json:"algorithm"`
	// RetryAfter is set on denials only and is always >= 1s.
	RetryAfter time.Duration `json:"retry_after,omitempty"`
	// Reason distinguishes a limit denial from a violation block.
	Reason string `json:"reason,omitempty"`
}

// Violation tracking parameters.
const (
	violationTTL     = time.Hour
	maxViolations    = 10
	blockDuration    = 300 * time.Second
	violationKeyFmt  = "ratelimit:violations:%s"
	blockKeyFmt      = "ratelimit:block:%s"
)

// ClientID derives the admission key: first available of api key, user, ip.
func ClientID(apiKey, user, ip string) string {
	switch {
	case apiKey != "":
		return "key:" + apiKey
	case user != "":
		return "user:" + user
	default:
		return "ip:" + ip
	}
}

// Limiter performs admission checks. Safe for concurrent use; per-client
// bucket state transitions are serialized by an internal lock while the
// authoritative counters live in the KV store.
type Limiter struct {
	store  kv.Store
	clk    clock.Clock
	logger *slog.Logger

	mu         sync.Mutex
	systemLoad float64
	loadKnown  bool
}

// NewLimiter creates a limiter over the given store and clock.
func NewLimiter(store kv.Store, clk clock.Clock) *Limiter {
	return &Limiter{
		store:  store,
		clk:    clk,
		logger: slog.Default().With("component", "ratelimit"),
	}
}

// SetSystemLoad feeds the dynamic adjustment input in [0,1]. The worker
// queue reports its depth pressure here.
func (l *Limiter) SetSystemLoad(load float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if load < 0 {
		load = 0
	}
	if load > 1 {
		load = 1
	}
	l.systemLoad = load
	l.loadKnown = true
}

// adjustedLimit scales a limit by the current system load. Adjustment is
// inert until the first load report arrives.
func (l *Limiter) adjustedLimit(limit int) int {
	l.mu.Lock()
	load, known := l.systemLoad, l.loadKnown
	l.mu.Unlock()
	if !known {
		return limit
	}

	scaled := float64(limit)
	switch {
	case load > 0.8:
		scaled *= 0.5
	case load > 0.6:
		scaled *= 0.75
	case load < 0.2:
		scaled *= 1.5
	}
	adjusted := int(scaled)
	if adjusted < 1 {
		adjusted = 1
	}
	return adjusted
}

// Admit decides whether clientID may proceed under limits. A blocked
// client is denied before any counter is touched; a denial increments the
// client's violation counter and may install a block flag.
func (l *Limiter) Admit(ctx context.Context, clientID string, limits Limits) (Outcome, error) {
	if blocked, retryAfter := l.isBlocked(ctx, clientID); blocked {
		return Outcome{
			Allowed:    false,
			Limit:      limits.Limit,
			Algorithm:  limits.Algorithm,
			ResetUnix:  l.clk.Now().Add(retryAfter).Unix(),
			RetryAfter: retryAfter,
			Reason:     "blocked",
		}, nil
	}

	limits.Limit = l.adjustedLimit(limits.Limit)

	var (
		outcome Outcome
		err     error
	)
	switch limits.Algorithm {
	case TokenBucket:
		outcome, err = l.admitTokenBucket(ctx, clientID, limits)
	case SlidingWindow:
		outcome, err = l.admitSlidingWindow(ctx, clientID, limits)
	case FixedWindow:
		outcome, err = l.admitFixedWindow(ctx, clientID, limits)
	case LeakyBucket:
		outcome, err = l.admitLeakyBucket(ctx, clientID, limits)
	default:
		return Outcome{}, fmt.Errorf("unknown rate-limit algorithm %q", limits.Algorithm)
	}
	if err != nil {
		return Outcome{}, err
	}

	outcome.Algorithm = limits.Algorithm
	if !outcome.Allowed {
		outcome.Reason = "rate_limited"
		outcome.RetryAfter = l.retryAfter(outcome.ResetUnix)
		l.recordViolation(ctx, clientID)
	}
	return outcome, nil
}

// retryAfter is max(1s, reset − now); denials always carry at least 1s.
func (l *Limiter) retryAfter(resetUnix int64) time.Duration {
	delta := time.Duration(resetUnix-l.clk.Now().Unix()) * time.Second
	if delta < time.Second {
		return time.Second
	}
	return delta
}

// RecordViolation counts an externally observed abuse signal, such as a
// failed webhook signature, against the client. It shares the block
// threshold with rate-limit denials.
func (l *Limiter) RecordViolation(ctx context.Context, clientID string) {
	l.recordViolation(ctx, clientID)
}

func (l *Limiter) isBlocked(ctx context.Context, clientID string) (bool, time.Duration) {
	_, err := l.store.Get(ctx, fmt.Sprintf(blockKeyFmt, clientID))
	if errors.Is(err, kv.ErrNotFound) {
		return false, 0
	}
	if err != nil {
		// Fail open on store trouble: admission control must not take the
		// service down with it.
		l.logger.Warn("Block flag lookup failed", "client_id", clientID, "error", err)
		return false, 0
	}
	return true, blockDuration
}

// recordViolation counts a denial and installs a block flag once the
// client crosses the threshold. Best-effort: errors are logged only.
func (l *Limiter) recordViolation(ctx context.Context, clientID string) {
	count, err := l.store.IncrWithTTL(ctx, fmt.Sprintf(violationKeyFmt, clientID), violationTTL)
	if err != nil {
		l.logger.Warn("Violation tracking failed", "client_id", clientID, "error", err)
		return
	}
	if count >= maxViolations {
		key := fmt.Sprintf(blockKeyFmt, clientID)
		if err := l.store.Set(ctx, key, strconv.FormatInt(count, 10), blockDuration); err != nil {
			l.logger.Warn("Failed to install block flag", "client_id", clientID, "error", err)
			return
		}
		l.logger.Info("Client blocked for repeated violations",
			"client_id", clientID, "violations", count, "duration", blockDuration)
	}
}
