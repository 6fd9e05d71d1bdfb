package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional YAML file looked up in the config dir.
const ConfigFileName = "orchid.yaml"

// Load resolves the configuration: built-in defaults, then the optional
// orchid.yaml in configDir, then flat environment overrides, validated
// as a whole. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	logger := slog.Default().With("component", "config")
	cfg := Defaults()

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Info("No configuration file, using defaults", "path", path)
	case err != nil:
		return nil, NewLoadError(path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, NewLoadError(path, err)
		}
		logger.Info("Loaded configuration file", "path", path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides maps the documented flat environment keys onto the
// configuration. Environment wins over file and defaults.
func applyEnvOverrides(c *Config) {
	envString("HTTP_PORT", &c.HTTPPort)
	envString("REDIS_ADDR", &c.RedisAddr)
	envString("ROLE_ADAPTER_ADDR", &c.RoleAdapterAddr)
	envString("ARTIFACT_DIR", &c.ArtifactDir)
	envFloat("TEMPERATURE", &c.Temperature)

	envInt64("SEED", &c.Planner.Seed)
	envInt("MAX_DEPTH", &c.Planner.MaxDepth)
	envInt("MAX_SUB_QUESTIONS", &c.Planner.MaxSubQuestions)

	envString("CACHE_STRATEGY", &c.Cache.Strategy)
	envInt("CACHE_L1_MAX_ITEMS", &c.Cache.L1MaxItems)
	envInt("CACHE_L1_MAX_MB", &c.Cache.L1MaxMB)

	envString("RATE_LIMIT_ALGORITHM", &c.RateLimit.Algorithm)
	envInt("RATE_LIMIT_RPM", &c.RateLimit.RPM)
	envInt("RATE_LIMIT_BURST", &c.RateLimit.Burst)

	envFloat("CIRCUIT_FAILURE_THRESHOLD", &c.Breaker.FailureThreshold)
	envUint32("CIRCUIT_MIN_REQUESTS", &c.Breaker.MinimumRequests)
	envSeconds("CIRCUIT_RECOVERY_S", &c.Breaker.RecoveryTimeout)

	envInt("WEBHOOK_MAX_ATTEMPTS", &c.Webhook.MaxAttempts)
	envInt("WEBHOOK_TIMEOUT_S", &c.Webhook.TimeoutS)
	envInt("WEBHOOK_QUEUE_SIZE", &c.Webhook.QueueSize)
	envInt("HMAC_MAX_SKEW_S", &c.Webhook.HMACMaxSkewS)

	envInt("STEP_MAX_RETRIES", &c.Pipeline.MaxRetries)
	envInt("STEP_TIMEOUT_S", &c.Pipeline.StepTimeoutS)
	envInt("STEP_MAX_TOKENS", &c.Pipeline.MaxTokens)

	envInt("WORKER_COUNT", &c.Workers.Count)
	envInt("QUEUE_DEPTH_THRESHOLD", &c.Workers.QueueDepthThreshold)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		} else {
			slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		}
	}
}

func envInt64(key string, dst *int64) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		} else {
			slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		}
	}
}

func envUint32(key string, dst *uint32) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			*dst = uint32(n)
		} else {
			slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		} else {
			slog.Warn("Ignoring non-numeric environment value", "key", key, "value", v)
		}
	}
}

func envSeconds(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Second
		} else {
			slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		}
	}
}
