package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/pkg/models"
	testdb "github.com/orchid-run/orchid/test/database"
)

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates pending run", func(t *testing.T) {
		req := models.CreateRunRequest{
			RunID:       uuid.New().String(),
			TenantID:    "acme",
			Query:       "What is 2+2?",
			Seed:        42,
			Temperature: 0.1,
		}

		created, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.RunID, created.ID)
		assert.Equal(t, "acme", created.TenantID)
		assert.Equal(t, run.StatusPending, created.Status)
		assert.Equal(t, int64(42), created.Seed)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{Query: "q"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "run_id")

		_, err = service.CreateRun(ctx, models.CreateRunRequest{RunID: "r1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("rejects temperature above cap", func(t *testing.T) {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{
			RunID: uuid.New().String(), Query: "q", Temperature: 0.5,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	})

	t.Run("duplicate run id", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateRun(ctx, models.CreateRunRequest{RunID: id, Query: "q", Seed: 42})
		require.NoError(t, err)
		_, err = service.CreateRun(ctx, models.CreateRunRequest{RunID: id, Query: "q", Seed: 42})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestRunService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, models.CreateRunRequest{
		RunID: uuid.New().String(), Query: "q", Seed: 42,
	})
	require.NoError(t, err)

	require.NoError(t, service.UpdateRunStatus(ctx, created.ID, run.StatusPlanning))
	require.NoError(t, service.UpdateRunStatus(ctx, created.ID, run.StatusExecuting))
	require.NoError(t, service.UpdateRunStatus(ctx, created.ID, run.StatusCompleted))

	// Terminal states are sticky.
	err = service.UpdateRunStatus(ctx, created.ID, run.StatusExecuting)
	assert.ErrorIs(t, err, ErrTerminalState)

	got, err := service.GetRun(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	err = service.UpdateRunStatus(ctx, "does-not-exist", run.StatusPlanning)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunService_FinalizeRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, models.CreateRunRequest{
		RunID: uuid.New().String(), Query: "q", Seed: 42,
	})
	require.NoError(t, err)

	err = service.FinalizeRun(ctx, created.ID, run.StatusTerminated, 0, 0, "/data/runs/x", "CONTRADICTION", "")
	require.NoError(t, err)

	got, err := service.GetRun(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTerminated, got.Status)
	require.NotNil(t, got.TerminationReason)
	assert.Equal(t, "CONTRADICTION", *got.TerminationReason)

	// Finalizing twice is refused.
	err = service.FinalizeRun(ctx, created.ID, run.StatusCompleted, 2, 100, "", "", "")
	assert.ErrorIs(t, err, ErrTerminalState)

	// Non-terminal target is invalid.
	err = service.FinalizeRun(ctx, created.ID, run.StatusExecuting, 0, 0, "", "", "")
	assert.True(t, IsValidationError(err))
}

func TestRunService_ClaimNextPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	// Empty queue claims nothing.
	claimed, err := service.ClaimNextPendingRun(ctx, "pod-1")
	require.NoError(t, err)
	assert.Nil(t, claimed)

	first, err := service.CreateRun(ctx, models.CreateRunRequest{
		RunID: uuid.New().String(), Query: "first", Seed: 42,
	})
	require.NoError(t, err)
	_, err = service.CreateRun(ctx, models.CreateRunRequest{
		RunID: uuid.New().String(), Query: "second", Seed: 42,
	})
	require.NoError(t, err)

	claimed, err = service.ClaimNextPendingRun(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID, "oldest pending run claimed first")
	assert.Equal(t, run.StatusPlanning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)

	// Second claim gets the second run, not the already-claimed one.
	claimed2, err := service.ClaimNextPendingRun(ctx, "pod-2")
	require.NoError(t, err)
	require.NotNil(t, claimed2)
	assert.NotEqual(t, claimed.ID, claimed2.ID)
}

func TestRunService_FindOrphanedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, models.CreateRunRequest{
		RunID: uuid.New().String(), Query: "q", Seed: 42,
	})
	require.NoError(t, err)
	require.NoError(t, service.UpdateRunStatus(ctx, created.ID, run.StatusExecuting))

	// Fresh interaction: not orphaned.
	orphans, err := service.FindOrphanedRuns(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Backdate the interaction timestamp past the threshold.
	err = client.Run.UpdateOneID(created.ID).
		SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err = service.FindOrphanedRuns(ctx, time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, created.ID, orphans[0].ID)
}

func TestRunService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{
			RunID: uuid.New().String(), TenantID: "acme", Query: "q", Seed: 42,
		})
		require.NoError(t, err)
	}
	_, err := service.CreateRun(ctx, models.CreateRunRequest{
		RunID: uuid.New().String(), TenantID: "globex", Query: "q", Seed: 42,
	})
	require.NoError(t, err)

	resp, err := service.ListRuns(ctx, models.RunFilters{TenantID: "acme"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Runs, 3)

	resp, err = service.ListRuns(ctx, models.RunFilters{Status: "pending", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	assert.Len(t, resp.Runs, 2)
}
