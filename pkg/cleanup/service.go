// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/metrics"
)

// Config tunes the retention loop.
type Config struct {
	// Interval between sweeps.
	Interval time.Duration
	// ArtifactRetention ages out run artifact directories.
	ArtifactRetention time.Duration
	// ArtifactDir is the artifact manager's base directory.
	ArtifactDir string
}

// DefaultConfig returns the production retention settings.
func DefaultConfig(artifactDir string) Config {
	return Config{
		Interval:          10 * time.Minute,
		ArtifactRetention: 7 * 24 * time.Hour,
		ArtifactDir:       artifactDir,
	}
}

// Sweeper removes expired durable cache records. *cache.Cache satisfies it.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
	Stats() cache.Stats
}

// Service periodically enforces retention policies:
//   - Sweeps expired L3 cache records
//   - Removes artifact directories of runs past the retention window
//   - Publishes cache hit counters to the metrics registry
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg    Config
	cache  Sweeper
	clk    clock.Clock
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. cache may be nil when no durable
// tier is configured.
func NewService(cfg Config, sweeper Sweeper, clk clock.Clock) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.ArtifactRetention <= 0 {
		cfg.ArtifactRetention = 7 * 24 * time.Hour
	}
	return &Service{
		cfg:    cfg,
		cache:  sweeper,
		clk:    clk,
		logger: slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"interval", s.cfg.Interval,
		"artifact_retention", s.cfg.ArtifactRetention)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one sweep of every retention task.
func (s *Service) RunAll(ctx context.Context) {
	s.sweepCache(ctx)
	s.pruneArtifacts()
}

func (s *Service) sweepCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	count, err := s.cache.Sweep(ctx)
	if err != nil {
		s.logger.Error("Retention: cache sweep failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: swept expired cache records", "count", count)
	}
	stats := s.cache.Stats()
	metrics.SyncCacheStats(stats.L1Hits, stats.L2Hits, stats.L3Hits, stats.Misses)
}

// pruneArtifacts deletes run directories whose last modification is past
// the retention window. Runs still executing touch their trace file on
// every event, so active directories stay fresh.
func (s *Service) pruneArtifacts() {
	if s.cfg.ArtifactDir == "" {
		return
	}
	runsDir := filepath.Join(s.cfg.ArtifactDir, "runs")
	entries, err := os.ReadDir(runsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("Retention: artifact listing failed", "error", err)
		}
		return
	}

	cutoff := s.clk.Now().Add(-s.cfg.ArtifactRetention)
	pruned := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(runsDir, entry.Name())); err != nil {
			s.logger.Warn("Retention: failed to remove artifact directory",
				"run_id", entry.Name(), "error", err)
			continue
		}
		pruned++
	}
	if pruned > 0 {
		s.logger.Info("Retention: pruned artifact directories", "count", pruned)
	}
}
