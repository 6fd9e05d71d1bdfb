package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/stepexecution"
	"github.com/orchid-run/orchid/pkg/models"
	testdb "github.com/orchid-run/orchid/test/database"
)

func createTestRun(t *testing.T, client *ent.Client) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := NewRunService(client).CreateRun(context.Background(), models.CreateRunRequest{
		RunID: runID, Query: "Compare A and B, and explain when to use each", Seed: 42,
	})
	require.NoError(t, err)
	return runID
}

func TestStepService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStepService(client.Client)
	ctx := context.Background()
	runID := createTestRun(t, client.Client)

	created, err := service.CreateSteps(ctx, runID, []PlannedStep{
		{StepID: 1, Question: "Compare A and B"},
		{StepID: 2, Question: "Explain when to use each"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	require.NoError(t, service.StartStep(ctx, runID, 1, "analyst", 1))
	require.NoError(t, service.CompleteStep(ctx, runID, 1, "A is faster; B is simpler", 0.9, 120, false, "sig-1"))

	steps, err := service.ListSteps(ctx, runID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, stepexecution.StatusCompleted, steps[0].Status)
	assert.Equal(t, "analyst", steps[0].Role)
	assert.Equal(t, 120, steps[0].TokensUsed)
	require.NotNil(t, steps[0].Output)
	assert.Equal(t, stepexecution.StatusPending, steps[1].Status)

	// Remaining pending steps are skipped on early termination.
	skipped, err := service.SkipSteps(ctx, runID, "predecessor failed")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)

	steps, err = service.ListSteps(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, stepexecution.StatusSkipped, steps[1].Status)
}

func TestStepService_FailStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStepService(client.Client)
	ctx := context.Background()
	runID := createTestRun(t, client.Client)

	_, err := service.CreateSteps(ctx, runID, []PlannedStep{{StepID: 1, Question: "q"}})
	require.NoError(t, err)

	require.NoError(t, service.StartStep(ctx, runID, 1, "specialist", 3))
	require.NoError(t, service.FailStep(ctx, runID, 1, "adapter timeout"))

	steps, err := service.ListSteps(ctx, runID)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, stepexecution.StatusFailed, steps[0].Status)
	assert.Equal(t, 3, steps[0].Attempt)
	require.NotNil(t, steps[0].ErrorMessage)
	assert.Equal(t, "adapter timeout", *steps[0].ErrorMessage)
}

func TestStepService_RejectsEmptyPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStepService(client.Client)

	_, err := service.CreateSteps(context.Background(), "run-x", nil)
	assert.True(t, IsValidationError(err))
}
