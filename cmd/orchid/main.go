// Orchid orchestrator server — provides the HTTP API, runs the worker
// pool, and delivers webhooks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orchid-run/orchid/pkg/api"
	"github.com/orchid-run/orchid/pkg/artifact"
	"github.com/orchid-run/orchid/pkg/breaker"
	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/cleanup"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/config"
	"github.com/orchid-run/orchid/pkg/database"
	"github.com/orchid-run/orchid/pkg/kv"
	"github.com/orchid-run/orchid/pkg/lag"
	"github.com/orchid-run/orchid/pkg/metrics"
	"github.com/orchid-run/orchid/pkg/pipeline"
	"github.com/orchid-run/orchid/pkg/ratelimit"
	"github.com/orchid-run/orchid/pkg/rcr"
	"github.com/orchid-run/orchid/pkg/roleadapter"
	"github.com/orchid-run/orchid/pkg/services"
	"github.com/orchid-run/orchid/pkg/tenant"
	"github.com/orchid-run/orchid/pkg/webhook"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica run
// claiming. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting orchid",
		"http_port", cfg.HTTPPort,
		"pod_id", podID,
		"seed", cfg.Seed(),
		"config_dir", *configDir)

	// 2. Determinism primitives
	clk := clock.NewReal()
	prng := clock.NewPRNG(cfg.Seed())

	// 3. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. KV store: Redis when configured, in-process otherwise
	var kvStore kv.Store
	if cfg.RedisAddr != "" {
		kvStore = kv.NewRedis(cfg.RedisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		slog.Info("Using Redis KV store", "addr", cfg.RedisAddr)
	} else {
		kvStore = kv.NewMemory(clk)
		slog.Info("Using in-process KV store")
	}

	// 5. Domain services
	runService := services.NewRunService(dbClient.Client)
	stepService := services.NewStepService(dbClient.Client)
	routingService := services.NewRoutingService(dbClient.Client)
	webhookService := services.NewWebhookService(dbClient.Client)
	cacheRecords := services.NewCacheRecordService(dbClient.Client)

	// 6. Tiered cache, rate limiter, circuit breakers, router
	cacheCfg, strategy := cfg.CacheSettings()
	tieredCache := cache.New(cacheCfg, strategy, kvStore, cacheRecords, clk)
	limiter := ratelimit.NewLimiter(kvStore, clk)
	breakers := breaker.NewRegistry(cfg.Breaker, metrics.BreakerListener())
	router := rcr.NewRouter(rcr.DefaultRoles(), kvStore)

	// 7. Role adapter client (lazy dialing; connects on first RPC)
	adapter, err := roleadapter.NewGRPCAdapter(cfg.RoleAdapterAddr)
	if err != nil {
		slog.Error("Failed to initialize role adapter client", "addr", cfg.RoleAdapterAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			slog.Error("Error closing role adapter client", "error", err)
		}
	}()

	// 8. Artifacts
	artifacts := artifact.NewManager(cfg.ArtifactDir, clk)

	// 9. Webhook delivery: deliverer, dispatcher, health sweeper
	notifier := webhook.NewLogNotifier()
	deliverer := webhook.NewDeliverer(webhookService, clk, prng, notifier, webhook.DelivererConfig{
		BaseBackoff: time.Second,
		MaxBackoff:  60 * time.Second,
		RatePerSec:  cfg.Webhook.RatePerSec,
		RateBurst:   cfg.Webhook.RateBurst,
	})
	dispatcher := webhook.NewDispatcher(webhookService, deliverer, notifier, cfg.Webhook.QueueSize, 2)
	dispatcher.Start(ctx)

	sweepCtx, stopSweeps := context.WithCancel(ctx)
	defer stopSweeps()
	sweeper := webhook.NewHealthSweeper(webhookService, clk)
	go sweeper.Run(sweepCtx, time.Hour)

	// 10. Pipeline and worker pool
	engine := lag.NewEngine(cfg.Planner)
	pipe := pipeline.NewPipeline(
		runService, stepService, routingService,
		engine, router, adapter, tieredCache, breakers, artifacts,
		dispatcher, clk, prng,
		pipeline.Config{
			MaxRetries:          cfg.Pipeline.MaxRetries,
			RetryBase:           cfg.Pipeline.RetryBase(),
			ConfidenceThreshold: cfg.Planner.ConfidenceThreshold,
			StepTimeout:         cfg.Pipeline.StepTimeout(),
			MaxTokens:           cfg.Pipeline.MaxTokens,
		},
	)
	pool := pipeline.NewPool(pipe, runService, limiter, pipeline.PoolConfig{
		PodID:             podID,
		Workers:           cfg.Workers.Count,
		ClaimInterval:     time.Second,
		HeartbeatInterval: time.Duration(cfg.Workers.HeartbeatS) * time.Second,
		OrphanTimeout:     time.Duration(cfg.Workers.OrphanTimeoutS) * time.Second,
		DepthThreshold:    cfg.Workers.QueueDepthThreshold,
	})

	if recovered, err := pool.RecoverOrphans(ctx); err != nil {
		slog.Error("Orphan recovery failed", "error", err)
	} else if recovered > 0 {
		slog.Info("Recovered orphaned runs", "count", recovered)
	}
	pool.Start(ctx)

	// 11. Retention: L3 cache sweep, artifact pruning, stats publishing
	retention := cleanup.NewService(cleanup.DefaultConfig(cfg.ArtifactDir), tieredCache, clk)
	retention.Start(ctx)
	defer retention.Stop()

	// 12. HTTP server
	validator := webhook.NewValidator(webhook.EnvSecrets{}, clk, limiter, cfg.Webhook.MaxSkew())
	quota := &tenant.LimiterQuota{Limiter: limiter, Limits: cfg.RateLimit.Limits()}
	server := api.NewServer(cfg, api.Deps{
		DB:         dbClient,
		Runs:       runService,
		Steps:      stepService,
		Webhooks:   webhookService,
		Pool:       pool,
		Limiter:    limiter,
		Quota:      quota,
		Validator:  validator,
		Dispatcher: dispatcher,
		Artifacts:  artifacts,
		Cache:      tieredCache,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Orchid started", "pod_id", podID, "workers", cfg.Workers.Count)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop intake, drain runs, flush webhooks.
	// Undelivered webhook jobs stay in the database and resume at next
	// boot; unfinished runs are caught by orphan recovery.
	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	drained := make(chan struct{})
	go func() {
		pool.Stop()
		close(drained)
	}()
	select {
	case <-drained:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(2 * time.Minute):
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	stopSweeps()
	dispatcher.Close()

	slog.Info("Shutdown complete")
}
