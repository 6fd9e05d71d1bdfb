// Package config loads and validates the orchestrator configuration.
//
// Configuration comes from three layers, lowest precedence first:
// built-in defaults, an optional orchid.yaml file (with {{.VAR}}
// environment templating), and flat environment variables for the
// documented keys. Load merges the layers and validates the result.
package config

import (
	"time"

	"github.com/orchid-run/orchid/pkg/breaker"
	"github.com/orchid-run/orchid/pkg/lag"
)

// Config is the fully resolved orchestrator configuration.
type Config struct {
	// HTTPPort is the API listen port.
	HTTPPort string `yaml:"http_port"`
	// RedisAddr enables the Redis-backed KV store when non-empty. Empty
	// falls back to the in-process store (single-replica deployments).
	RedisAddr string `yaml:"redis_addr"`
	// RoleAdapterAddr is the gRPC address of the role adapter service.
	RoleAdapterAddr string `yaml:"role_adapter_addr"`
	// ArtifactDir is the root directory for per-run artifact folders.
	ArtifactDir string `yaml:"artifact_dir"`

	// Temperature is passed to role adapters. Values above 0.2 break
	// reproducibility and fail validation.
	Temperature float64 `yaml:"temperature"`

	Planner   lag.Config      `yaml:"planner"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Breaker   breaker.Config  `yaml:"breaker"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Workers   WorkerConfig    `yaml:"workers"`
}

// Seed is the deterministic seed shared by the planner, the PRNG, and
// step signatures.
func (c *Config) Seed() int64 {
	return c.Planner.Seed
}

// CacheConfig sizes the L1 tier and selects the tier strategy preset.
type CacheConfig struct {
	// Strategy is one of the presets: local, standard, durable.
	Strategy   string `yaml:"strategy"`
	L1MaxItems int    `yaml:"l1_max_items"`
	L1MaxMB    int    `yaml:"l1_max_mb"`
}

// RateLimitConfig sets the default admission limits applied to run
// submission. Per-tenant overrides are resolved at request time.
type RateLimitConfig struct {
	// Algorithm names the admission algorithm: token_bucket,
	// sliding_window, fixed_window, or leaky_bucket.
	Algorithm string `yaml:"algorithm"`
	RPM       int    `yaml:"rpm"`
	Burst     int    `yaml:"burst"`
}

// WebhookConfig tunes outbound delivery and inbound validation.
type WebhookConfig struct {
	// MaxAttempts is the default attempt budget for new endpoints.
	MaxAttempts int `yaml:"max_attempts"`
	// TimeoutS is the default per-attempt timeout for new endpoints.
	TimeoutS int `yaml:"timeout_s"`
	// QueueSize bounds the dispatch queue; overflow dead-letters.
	QueueSize int `yaml:"queue_size"`
	// HMACMaxSkewS is the inbound replay window in seconds.
	HMACMaxSkewS int `yaml:"hmac_max_skew_s"`
	// RatePerSec paces outbound POSTs across all endpoints.
	RatePerSec float64 `yaml:"rate_per_sec"`
	RateBurst  int     `yaml:"rate_burst"`
}

// MaxSkew returns the inbound replay window as a duration.
func (w WebhookConfig) MaxSkew() time.Duration {
	return time.Duration(w.HMACMaxSkewS) * time.Second
}

// PipelineConfig tunes step execution.
type PipelineConfig struct {
	// MaxRetries is the retry budget per step beyond the first attempt.
	MaxRetries int `yaml:"max_retries"`
	// RetryBaseMs seeds the full-jitter retry backoff.
	RetryBaseMs int `yaml:"retry_base_ms"`
	// StepTimeoutS bounds a single adapter invocation.
	StepTimeoutS int `yaml:"step_timeout_s"`
	// MaxTokens is the per-step token budget passed to adapters.
	MaxTokens int `yaml:"max_tokens"`
}

// StepTimeout returns the per-attempt timeout as a duration.
func (p PipelineConfig) StepTimeout() time.Duration {
	return time.Duration(p.StepTimeoutS) * time.Second
}

// RetryBase returns the backoff seed as a duration.
func (p PipelineConfig) RetryBase() time.Duration {
	return time.Duration(p.RetryBaseMs) * time.Millisecond
}

// WorkerConfig sizes the run worker pool.
type WorkerConfig struct {
	Count int `yaml:"count"`
	// QueueDepthThreshold is the active-run count treated as full load
	// for the rate limiter's dynamic adjustment.
	QueueDepthThreshold int `yaml:"queue_depth_threshold"`
	// HeartbeatS refreshes claimed runs against the orphan sweep.
	HeartbeatS int `yaml:"heartbeat_s"`
	// OrphanTimeoutS ages out runs abandoned by a dead process.
	OrphanTimeoutS int `yaml:"orphan_timeout_s"`
}

// Defaults returns the built-in configuration. Every documented key has
// a value here; file and environment layers override it.
func Defaults() *Config {
	return &Config{
		HTTPPort:        "8080",
		RoleAdapterAddr: "localhost:50051",
		ArtifactDir:     "./runs",
		Temperature:     0.0,
		Planner:         lag.DefaultConfig(),
		Cache: CacheConfig{
			Strategy:   "standard",
			L1MaxItems: 1000,
			L1MaxMB:    128,
		},
		RateLimit: RateLimitConfig{
			Algorithm: "token_bucket",
			RPM:       100,
			Burst:     20,
		},
		Breaker: breaker.DefaultConfig(),
		Webhook: WebhookConfig{
			MaxAttempts:  5,
			TimeoutS:     30,
			QueueSize:    256,
			HMACMaxSkewS: 300,
			RatePerSec:   50,
			RateBurst:    10,
		},
		Pipeline: PipelineConfig{
			MaxRetries:   2,
			RetryBaseMs:  250,
			StepTimeoutS: 30,
			MaxTokens:    2048,
		},
		Workers: WorkerConfig{
			Count:               4,
			QueueDepthThreshold: 64,
			HeartbeatS:          30,
			OrphanTimeoutS:      600,
		},
	}
}
