// Package api is the HTTP ingress: run submission and inspection,
// webhook endpoint management, signature-validated inbound webhooks,
// and health surfaces.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orchid-run/orchid/pkg/artifact"
	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/config"
	"github.com/orchid-run/orchid/pkg/database"
	"github.com/orchid-run/orchid/pkg/pipeline"
	"github.com/orchid-run/orchid/pkg/ratelimit"
	"github.com/orchid-run/orchid/pkg/services"
	"github.com/orchid-run/orchid/pkg/tenant"
	"github.com/orchid-run/orchid/pkg/webhook"
)

// Server is the HTTP API server.
type Server struct {
	cfg        *config.Config
	db         *database.Client
	runs       *services.RunService
	webhooks   *services.WebhookService
	steps      *services.StepService
	pool       *pipeline.Pool
	limiter    *ratelimit.Limiter
	quota      tenant.QuotaChecker
	validator  *webhook.Validator
	dispatcher *webhook.Dispatcher
	artifacts  *artifact.Manager
	tieredCache *cache.Cache

	engine  *gin.Engine
	httpSrv *http.Server
	logger  *slog.Logger
}

// Deps bundles the server's collaborators. Optional fields may be nil;
// the corresponding routes degrade (e.g. no dispatcher means inbound
// events are validated but not re-emitted).
type Deps struct {
	DB         *database.Client
	Runs       *services.RunService
	Steps      *services.StepService
	Webhooks   *services.WebhookService
	Pool       *pipeline.Pool
	Limiter    *ratelimit.Limiter
	Quota      tenant.QuotaChecker
	Validator  *webhook.Validator
	Dispatcher *webhook.Dispatcher
	Artifacts  *artifact.Manager
	Cache      *cache.Cache
}

// NewServer builds the server and registers all routes.
func NewServer(cfg *config.Config, deps Deps) *Server {
	quota := deps.Quota
	if quota == nil {
		quota = tenant.NoopQuota{}
	}
	s := &Server{
		cfg:         cfg,
		db:          deps.DB,
		runs:        deps.Runs,
		steps:       deps.Steps,
		webhooks:    deps.Webhooks,
		pool:        deps.Pool,
		limiter:     deps.Limiter,
		quota:       quota,
		validator:   deps.Validator,
		dispatcher:  deps.Dispatcher,
		artifacts:   deps.Artifacts,
		tieredCache: deps.Cache,
		logger:      slog.Default().With("component", "api"),
	}
	s.engine = s.buildEngine()
	return s
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), tenantContext())

	v1 := engine.Group("/v1")
	{
		runs := v1.Group("/runs")
		runs.POST("", s.rateLimit(), s.createRun)
		runs.GET("/:id", s.getRun)
		runs.GET("/:id/steps", s.listSteps)
		runs.GET("/:id/artifacts/:name", s.getArtifact)
		runs.POST("/:id/cancel", s.cancelRun)

		hooks := v1.Group("/webhooks")
		hooks.POST("", s.createEndpoint)
		hooks.GET("/:id", s.getEndpoint)
		hooks.PATCH("/:id", s.updateEndpoint)
		hooks.DELETE("/:id", s.deleteEndpoint)
		hooks.POST("/inbound/:source", s.inboundWebhook)
	}

	health := engine.Group("/health")
	health.GET("/live", s.live)
	health.GET("/ready", s.ready)
	health.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr. It blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if s.db != nil {
		if _, err := database.Health(ctx, s.db.DB()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}

	resp := gin.H{"status": "ready"}
	if s.tieredCache != nil {
		resp["cache"] = s.tieredCache.Stats()
	}
	if s.pool != nil {
		resp["active_runs"] = s.pool.ActiveRuns()
	}
	if s.dispatcher != nil {
		resp["webhook_queue_depth"] = s.dispatcher.QueueDepth()
	}
	c.JSON(http.StatusOK, resp)
}
