package config

import (
	"errors"
	"fmt"

	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/ratelimit"
)

// maxTemperature is the highest adapter temperature that still yields
// reproducible runs.
const maxTemperature = 0.2

// Validate checks the merged configuration. All field errors are
// collected so a broken deployment surfaces every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Temperature < 0 || c.Temperature > maxTemperature {
		errs = append(errs, fieldErrorf("temperature", "must be in [0, %g], got %g", maxTemperature, c.Temperature))
	}
	if c.Planner.MaxDepth < 1 {
		errs = append(errs, fieldErrorf("planner.max_depth", "must be at least 1, got %d", c.Planner.MaxDepth))
	}
	if c.Planner.MaxSubQuestions < 1 {
		errs = append(errs, fieldErrorf("planner.max_sub_questions", "must be at least 1, got %d", c.Planner.MaxSubQuestions))
	}
	if c.Planner.ConfidenceThreshold <= 0 || c.Planner.ConfidenceThreshold > 1 {
		errs = append(errs, fieldErrorf("planner.confidence_threshold", "must be in (0, 1], got %g", c.Planner.ConfidenceThreshold))
	}

	if _, err := cache.StrategyByName(c.Cache.Strategy); err != nil {
		errs = append(errs, fieldErrorf("cache.strategy", "%v", err))
	}
	if c.Cache.L1MaxItems < 1 {
		errs = append(errs, fieldErrorf("cache.l1_max_items", "must be at least 1, got %d", c.Cache.L1MaxItems))
	}
	if c.Cache.L1MaxMB < 1 {
		errs = append(errs, fieldErrorf("cache.l1_max_mb", "must be at least 1, got %d", c.Cache.L1MaxMB))
	}

	switch ratelimit.Algorithm(c.RateLimit.Algorithm) {
	case ratelimit.TokenBucket, ratelimit.SlidingWindow, ratelimit.FixedWindow, ratelimit.LeakyBucket:
	default:
		errs = append(errs, fieldErrorf("rate_limit.algorithm", "unknown algorithm %q", c.RateLimit.Algorithm))
	}
	if c.RateLimit.RPM < 1 {
		errs = append(errs, fieldErrorf("rate_limit.rpm", "must be at least 1, got %d", c.RateLimit.RPM))
	}
	if c.RateLimit.Burst < 1 {
		errs = append(errs, fieldErrorf("rate_limit.burst", "must be at least 1, got %d", c.RateLimit.Burst))
	}

	if c.Breaker.FailureThreshold <= 0 || c.Breaker.FailureThreshold > 1 {
		errs = append(errs, fieldErrorf("breaker.failure_threshold", "must be in (0, 1], got %g", c.Breaker.FailureThreshold))
	}
	if c.Breaker.MinimumRequests < 1 {
		errs = append(errs, fieldErrorf("breaker.minimum_requests", "must be at least 1"))
	}

	if c.Webhook.MaxAttempts < 1 {
		errs = append(errs, fieldErrorf("webhook.max_attempts", "must be at least 1, got %d", c.Webhook.MaxAttempts))
	}
	if c.Webhook.TimeoutS < 1 {
		errs = append(errs, fieldErrorf("webhook.timeout_s", "must be at least 1, got %d", c.Webhook.TimeoutS))
	}
	if c.Webhook.QueueSize < 1 {
		errs = append(errs, fieldErrorf("webhook.queue_size", "must be at least 1, got %d", c.Webhook.QueueSize))
	}
	if c.Webhook.HMACMaxSkewS < 1 {
		errs = append(errs, fieldErrorf("webhook.hmac_max_skew_s", "must be at least 1, got %d", c.Webhook.HMACMaxSkewS))
	}

	if c.Workers.Count < 1 {
		errs = append(errs, fieldErrorf("workers.count", "must be at least 1, got %d", c.Workers.Count))
	}
	if c.Workers.QueueDepthThreshold < 1 {
		errs = append(errs, fieldErrorf("workers.queue_depth_threshold", "must be at least 1, got %d", c.Workers.QueueDepthThreshold))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

// Limits returns the default admission limits derived from the rate
// limit section.
func (r RateLimitConfig) Limits() ratelimit.Limits {
	return ratelimit.Limits{
		Algorithm: ratelimit.Algorithm(r.Algorithm),
		Limit:     r.RPM,
		Burst:     r.Burst,
	}
}

// CacheSettings returns the tiered cache sizing and strategy preset.
// Validate guarantees the strategy name resolves.
func (c *Config) CacheSettings() (cache.Config, cache.Strategy) {
	cc := cache.DefaultConfig()
	cc.L1MaxItems = c.Cache.L1MaxItems
	cc.L1MaxBytes = int64(c.Cache.L1MaxMB) << 20
	strategy, _ := cache.StrategyByName(c.Cache.Strategy)
	return cc, strategy
}
