package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/clock"
)

type fakeSweeper struct {
	swept int
	calls atomic.Int32
}

func (f *fakeSweeper) Sweep(context.Context) (int, error) {
	f.calls.Add(1)
	return f.swept, nil
}

func (f *fakeSweeper) Stats() cache.Stats { return cache.Stats{} }

func TestRunAll_SweepsCache(t *testing.T) {
	sweeper := &fakeSweeper{swept: 3}
	svc := NewService(DefaultConfig(""), sweeper, clock.NewReal())

	svc.RunAll(context.Background())
	assert.Equal(t, int32(1), sweeper.calls.Load())
}

func TestPruneArtifacts_RemovesOnlyExpiredDirs(t *testing.T) {
	baseDir := t.TempDir()
	runsDir := filepath.Join(baseDir, "runs")

	oldDir := filepath.Join(runsDir, "run-old")
	freshDir := filepath.Join(runsDir, "run-fresh")
	require.NoError(t, os.MkdirAll(oldDir, 0o755))
	require.NoError(t, os.MkdirAll(freshDir, 0o755))

	stale := time.Now().Add(-8 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(oldDir, stale, stale))

	svc := NewService(DefaultConfig(baseDir), nil, clock.NewReal())
	svc.RunAll(context.Background())

	_, err := os.Stat(oldDir)
	assert.True(t, os.IsNotExist(err), "expired directory should be removed")
	_, err = os.Stat(freshDir)
	assert.NoError(t, err, "fresh directory should survive")
}

func TestStartStop(t *testing.T) {
	sweeper := &fakeSweeper{}
	cfg := DefaultConfig("")
	cfg.Interval = 10 * time.Millisecond
	svc := NewService(cfg, sweeper, clock.NewReal())

	svc.Start(context.Background())
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	svc.Stop()
}
