package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/pkg/models"
)

// terminalStatuses are the run states nothing may transition out of.
var terminalStatuses = []run.Status{
	run.StatusCompleted,
	run.StatusFailed,
	run.StatusTerminated,
}

// IsTerminalStatus reports whether a run status is terminal.
func IsTerminalStatus(status run.Status) bool {
	for _, s := range terminalStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// RunService manages run lifecycle
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client}
}

// CreateRun persists a newly submitted run in pending status.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.Query == "" {
		return nil, NewValidationError("query", "required")
	}
	if req.Temperature > 0.2 {
		return nil, NewValidationError("temperature", "must not exceed 0.2")
	}

	// Use background context with timeout for the critical write: the
	// caller's request context may be gone before the row commits.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Run.Create().
		SetID(req.RunID).
		SetQuery(req.Query).
		SetSeed(req.Seed).
		SetTemperature(req.Temperature).
		SetStatus(run.StatusPending)

	if req.TenantID != "" {
		builder.SetTenantID(req.TenantID)
	}
	if req.CorrelationID != "" {
		builder.SetCorrelationID(req.CorrelationID)
	}
	if req.Context != nil {
		builder.SetConfigSnapshot(map[string]interface{}{"context": req.Context})
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return created, nil
}

// GetRun retrieves a run by ID with optional edge loading
func (s *RunService) GetRun(ctx context.Context, runID string, withEdges bool) (*ent.Run, error) {
	query := s.client.Run.Query().Where(run.IDEQ(runID))
	if withEdges {
		query = query.
			WithSteps().
			WithRoutingDecisions()
	}

	r, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns returns runs matching the filters, newest first.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.Run.Query()
	if filters.TenantID != "" {
		query = query.Where(run.TenantIDEQ(filters.TenantID))
	}
	if filters.Status != "" {
		query = query.Where(run.StatusEQ(run.Status(filters.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	runs, err := query.
		Order(ent.Desc(run.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{Runs: runs, Total: total}, nil
}

// UpdateRunStatus transitions a run's status. Terminal states are sticky:
// the conditional update refuses to move a completed, failed, or
// terminated run anywhere else.
func (s *RunService) UpdateRunStatus(ctx context.Context, runID string, status run.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusNotIn(terminalStatuses...),
		).
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if IsTerminalStatus(status) {
		update = update.SetCompletedAt(time.Now())
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	if count == 0 {
		// Either the run does not exist or it already reached a terminal
		// state; distinguish for the caller.
		exists, err := s.client.Run.Query().Where(run.IDEQ(runID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check run existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrTerminalState
	}
	return nil
}

// FinalizeRun records the terminal outcome together with the run totals.
func (s *RunService) FinalizeRun(ctx context.Context, runID string, status run.Status, stepCount, tokenTotal int, artifactsPath string, terminationReason, errorMessage string) error {
	if !IsTerminalStatus(status) {
		return NewValidationError("status", "finalize requires a terminal status")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusNotIn(terminalStatuses...),
		).
		SetStatus(status).
		SetStepCount(stepCount).
		SetTokenTotal(tokenTotal).
		SetArtifactsPath(artifactsPath).
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now())

	if terminationReason != "" {
		update = update.SetTerminationReason(terminationReason)
	}
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to finalize run: %w", err)
	}
	if count == 0 {
		return ErrTerminalState
	}
	return nil
}

// ClaimNextPendingRun atomically claims a pending run for a worker.
// Note: with high concurrency, consider UPDATE ... RETURNING with
// FOR UPDATE SKIP LOCKED via raw SQL.
func (s *RunService) ClaimNextPendingRun(ctx context.Context, podID string) (*ent.Run, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	candidate, err := tx.Run.Query().
		Where(run.StatusEQ(run.StatusPending)).
		Order(ent.Asc(run.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending runs
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	// Conditional update: only claim if still pending
	count, err := tx.Run.Update().
		Where(
			run.IDEQ(candidate.ID),
			run.StatusEQ(run.StatusPending),
		).
		SetStatus(run.StatusPlanning).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if count == 0 {
		// Another worker won the race
		return nil, nil
	}

	claimed, err := tx.Run.Get(claimCtx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Heartbeat refreshes last_interaction_at so the orphan sweep leaves the
// run alone while a worker is making progress.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	err := s.client.Run.UpdateOneID(runID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// FindOrphanedRuns finds runs stuck in planning or executing past timeout
func (s *RunService) FindOrphanedRuns(ctx context.Context, timeoutDuration time.Duration) ([]*ent.Run, error) {
	threshold := time.Now().Add(-timeoutDuration)

	runs, err := s.client.Run.Query().
		Where(
			run.StatusIn(run.StatusPlanning, run.StatusExecuting),
			run.LastInteractionAtNotNil(),
			run.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}
	return runs, nil
}

// SearchRuns performs full-text search over run queries via the GIN index.
func (s *RunService) SearchRuns(ctx context.Context, query string, limit int) ([]*ent.Run, error) {
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	runs, err := s.client.Run.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("to_tsvector('english', query) @@ plainto_tsquery($1)", query))
		}).
		Limit(limit).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search runs: %w", err)
	}
	return runs, nil
}
