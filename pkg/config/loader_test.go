package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, int64(42), cfg.Seed())
	assert.Equal(t, 0.0, cfg.Temperature)
	assert.Equal(t, 5, cfg.Planner.MaxDepth)
	assert.Equal(t, 9, cfg.Planner.MaxSubQuestions)
	assert.Equal(t, "standard", cfg.Cache.Strategy)
	assert.Equal(t, 100, cfg.RateLimit.RPM)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, 0.5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, uint32(20), cfg.Breaker.MinimumRequests)
	assert.Equal(t, 300*time.Second, cfg.Breaker.RecoveryTimeout)
	assert.Equal(t, 5, cfg.Webhook.MaxAttempts)
	assert.Equal(t, 300*time.Second, cfg.Webhook.MaxSkew())
	assert.Equal(t, 4, cfg.Workers.Count)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
http_port: "9090"
planner:
  max_depth: 3
cache:
  strategy: durable
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 3, cfg.Planner.MaxDepth)
	assert.Equal(t, "durable", cfg.Cache.Strategy)
	// Untouched fields keep their defaults.
	assert.Equal(t, 9, cfg.Planner.MaxSubQuestions)
	assert.Equal(t, 100, cfg.RateLimit.RPM)
}

func TestLoad_FileTemplatesEnvironment(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis.internal:6379")
	dir := writeConfigFile(t, `
redis_addr: "{{.TEST_REDIS_ADDR}}"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddr)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("SEED", "7")
	t.Setenv("MAX_DEPTH", "2")
	t.Setenv("RATE_LIMIT_RPM", "10")
	t.Setenv("CIRCUIT_RECOVERY_S", "60")
	dir := writeConfigFile(t, `
planner:
  max_depth: 4
rate_limit:
  rpm: 50
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed())
	assert.Equal(t, 2, cfg.Planner.MaxDepth)
	assert.Equal(t, 10, cfg.RateLimit.RPM)
	assert.Equal(t, 60*time.Second, cfg.Breaker.RecoveryTimeout)
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	dir := writeConfigFile(t, "planner: [not: a: mapping")

	_, err := Load(dir)
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoad_ValidationCollectsAllFailures(t *testing.T) {
	t.Setenv("TEMPERATURE", "0.9")
	t.Setenv("CACHE_STRATEGY", "turbo")
	t.Setenv("WORKER_COUNT", "0")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "temperature")
	assert.Contains(t, err.Error(), "cache.strategy")
	assert.Contains(t, err.Error(), "workers.count")
}

func TestLoad_IgnoresMalformedEnvNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "lots")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.RateLimit.RPM)
}

func TestRateLimitConfig_Limits(t *testing.T) {
	cfg := Defaults()
	limits := cfg.RateLimit.Limits()
	assert.Equal(t, "token_bucket", string(limits.Algorithm))
	assert.Equal(t, 100, limits.Limit)
	assert.Equal(t, 20, limits.Burst)
}

func TestCacheSettings(t *testing.T) {
	cfg := Defaults()
	cfg.Cache.L1MaxItems = 10
	cfg.Cache.L1MaxMB = 1

	cc, strategy := cfg.CacheSettings()
	assert.Equal(t, 10, cc.L1MaxItems)
	assert.Equal(t, int64(1<<20), cc.L1MaxBytes)
	assert.Equal(t, "standard", strategy.Name)
}
