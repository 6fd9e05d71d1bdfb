package services

import (
	"context"
	"fmt"
	"time"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
)

// StepService manages step execution records within a run
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	if client == nil {
		panic("NewStepService: client must not be nil")
	}
	return &StepService{client: client}
}

// PlannedStep is one sub-question scheduled for execution.
type PlannedStep struct {
	StepID   int
	Question string
}

// CreateSteps bulk-creates the run's step records from its plan, all
// pending. Called once after planning.
func (s *StepService) CreateSteps(ctx context.Context, runID string, steps []PlannedStep) ([]*ent.StepExecution, error) {
	if len(steps) == 0 {
		return nil, NewValidationError("steps", "plan has no steps")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builders := make([]*ent.StepExecutionCreate, 0, len(steps))
	for _, step := range steps {
		builders = append(builders, s.client.StepExecution.Create().
			SetStepID(step.StepID).
			SetQuestion(step.Question).
			SetStatus(stepexecution.StatusPending).
			SetRunID(runID))
	}

	created, err := s.client.StepExecution.CreateBulk(builders...).Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create steps: %w", err)
	}
	return created, nil
}

// StartStep marks a step running and records the routed role and attempt.
func (s *StepService) StartStep(ctx context.Context, runID string, stepID int, role string, attempt int) error {
	err := s.client.StepExecution.Update().
		Where(
			stepexecution.HasRunWith(run.IDEQ(runID)),
			stepexecution.StepIDEQ(stepID),
		).
		SetStatus(stepexecution.StatusRunning).
		SetRole(role).
		SetAttempt(attempt).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to start step: %w", err)
	}
	return nil
}

// CompleteStep records a successful step outcome.
func (s *StepService) CompleteStep(ctx context.Context, runID string, stepID int, output string, confidence float64, tokensUsed int, fromCache bool, signature string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StepExecution.Update().
		Where(
			stepexecution.HasRunWith(run.IDEQ(runID)),
			stepexecution.StepIDEQ(stepID),
		).
		SetStatus(stepexecution.StatusCompleted).
		SetOutput(output).
		SetConfidence(confidence).
		SetTokensUsed(tokensUsed).
		SetFromCache(fromCache).
		SetStepSignature(signature).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to complete step: %w", err)
	}
	return nil
}

// FailStep records a failed step outcome after retries are exhausted.
func (s *StepService) FailStep(ctx context.Context, runID string, stepID int, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StepExecution.Update().
		Where(
			stepexecution.HasRunWith(run.IDEQ(runID)),
			stepexecution.StepIDEQ(stepID),
		).
		SetStatus(stepexecution.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail step: %w", err)
	}
	return nil
}

// SkipSteps marks every still-pending step of a run skipped; used when a
// predecessor failed or a terminator fired.
func (s *StepService) SkipSteps(ctx context.Context, runID string, reason string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.StepExecution.Update().
		Where(
			stepexecution.HasRunWith(run.IDEQ(runID)),
			stepexecution.StatusEQ(stepexecution.StatusPending),
		).
		SetStatus(stepexecution.StatusSkipped).
		SetErrorMessage(reason).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to skip steps: %w", err)
	}
	return count, nil
}

// ListSteps returns a run's steps in plan order.
func (s *StepService) ListSteps(ctx context.Context, runID string) ([]*ent.StepExecution, error) {
	steps, err := s.client.StepExecution.Query().
		Where(stepexecution.HasRunWith(run.IDEQ(runID))).
		Order(ent.Asc(stepexecution.FieldStepID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}
