package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/pkg/metrics"
	"github.com/orchid-run/orchid/pkg/ratelimit"
	"github.com/orchid-run/orchid/pkg/services"
)

// PoolConfig tunes the run worker pool.
type PoolConfig struct {
	// PodID identifies this process in run claims.
	PodID string
	// Workers is the number of concurrent run processors.
	Workers int
	// ClaimInterval is the idle poll interval for pending runs.
	ClaimInterval time.Duration
	// HeartbeatInterval refreshes last_interaction_at on active runs.
	HeartbeatInterval time.Duration
	// OrphanTimeout ages out runs abandoned by a dead process.
	OrphanTimeout time.Duration
	// DepthThreshold is the active-run count treated as full load for the
	// rate limiter's dynamic adjustment.
	DepthThreshold int
}

// DefaultPoolConfig returns the production pool settings.
func DefaultPoolConfig(podID string) PoolConfig {
	return PoolConfig{
		PodID:             podID,
		Workers:           4,
		ClaimInterval:     time.Second,
		HeartbeatInterval: 30 * time.Second,
		OrphanTimeout:     10 * time.Minute,
		DepthThreshold:    16,
	}
}

// Pool claims pending runs from the database and processes them. Claims
// use a conditional update, so multiple replicas never process the same
// run twice.
type Pool struct {
	pipeline *Pipeline
	runs     *services.RunService
	limiter  *ratelimit.Limiter // nil disables backpressure reporting
	cfg      PoolConfig
	logger   *slog.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	active  int

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewPool creates a pool. limiter may be nil.
func NewPool(pipeline *Pipeline, runs *services.RunService, limiter *ratelimit.Limiter, cfg PoolConfig) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.ClaimInterval <= 0 {
		cfg.ClaimInterval = time.Second
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 30 * time.Second
	}
	if cfg.OrphanTimeout <= 0 {
		cfg.OrphanTimeout = 10 * time.Minute
	}
	if cfg.DepthThreshold <= 0 {
		cfg.DepthThreshold = 16
	}
	return &Pool{
		pipeline: pipeline,
		runs:     runs,
		limiter:  limiter,
		cfg:      cfg,
		logger:   slog.Default().With("component", "pipeline-pool"),
		cancels:  make(map[string]context.CancelFunc),
		stop:     make(chan struct{}),
	}
}

// Start launches the workers. It returns immediately.
func (p *Pool) Start(ctx context.Context) {
	p.logger.Info("Starting run workers", "workers", p.cfg.Workers, "pod_id", p.cfg.PodID)
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// Stop ends intake and waits for in-flight runs to drain.
func (p *Pool) Stop() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
	p.wg.Wait()
	p.logger.Info("Run workers stopped")
}

// Cancel terminates an in-flight run on this pod. It reports whether the
// run was active here.
func (p *Pool) Cancel(runID string) bool {
	p.mu.Lock()
	cancel, ok := p.cancels[runID]
	p.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// ActiveRuns reports the number of runs currently executing.
func (p *Pool) ActiveRuns() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		claimed, err := p.runs.ClaimNextPendingRun(ctx, p.cfg.PodID)
		if err != nil {
			p.logger.Error("Failed to claim run", "error", err)
			p.sleep(ctx, p.cfg.ClaimInterval)
			continue
		}
		if claimed == nil {
			p.sleep(ctx, p.cfg.ClaimInterval)
			continue
		}
		p.process(ctx, claimed)
	}
}

func (p *Pool) process(ctx context.Context, claimed *ent.Run) {
	runCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancels[claimed.ID] = cancel
	p.active++
	p.mu.Unlock()
	p.reportLoad()

	stopHeartbeat := p.heartbeat(runCtx, claimed.ID)
	defer func() {
		stopHeartbeat()
		cancel()
		p.mu.Lock()
		delete(p.cancels, claimed.ID)
		p.active--
		p.mu.Unlock()
		p.reportLoad()
	}()

	start := time.Now()
	result := p.pipeline.Process(runCtx, claimed)
	metrics.RecordRunComplete(result.Status, time.Since(start), result.StepCount, result.TokenTotal)
	p.logger.Info("Run finished",
		"run_id", claimed.ID,
		"status", result.Status,
		"steps", result.StepCount,
		"tokens", result.TokenTotal)
}

// heartbeat refreshes the run's last_interaction_at so the orphan sweep
// leaves it alone while this pod is alive.
func (p *Pool) heartbeat(ctx context.Context, runID string) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(p.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.runs.Heartbeat(context.Background(), runID); err != nil {
					p.logger.Warn("Heartbeat failed", "run_id", runID, "error", err)
				}
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// reportLoad feeds the active-run fraction into the rate limiter's
// dynamic adjustment.
func (p *Pool) reportLoad() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()
	metrics.SetActiveRuns(active)
	if p.limiter == nil {
		return
	}
	p.limiter.SetSystemLoad(float64(active) / float64(p.cfg.DepthThreshold))
}

func (p *Pool) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-p.stop:
	case <-time.After(d):
	}
}

// RecoverOrphans fails runs abandoned mid-flight by a dead process. Called
// once at startup, before workers begin claiming.
func (p *Pool) RecoverOrphans(ctx context.Context) (int, error) {
	orphans, err := p.runs.FindOrphanedRuns(ctx, p.cfg.OrphanTimeout)
	if err != nil {
		return 0, err
	}
	recovered := 0
	for _, orphan := range orphans {
		if err := p.runs.FinalizeRun(ctx, orphan.ID, run.StatusFailed, orphan.StepCount, orphan.TokenTotal, orphan.ArtifactsPath, "", "orphaned"); err != nil {
			p.logger.Warn("Failed to finalize orphaned run", "run_id", orphan.ID, "error", err)
			continue
		}
		p.logger.Info("Recovered orphaned run", "run_id", orphan.ID)
		recovered++
	}
	return recovered, nil
}
