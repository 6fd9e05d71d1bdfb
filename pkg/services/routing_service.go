package services

import (
	"context"
	"fmt"
	"time"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/pkg/rcr"
)

// RoutingService persists router decisions for the per-run audit record
type RoutingService struct {
	client *ent.Client
}

// NewRoutingService creates a new RoutingService
func NewRoutingService(client *ent.Client) *RoutingService {
	if client == nil {
		panic("NewRoutingService: client must not be nil")
	}
	return &RoutingService{client: client}
}

// RecordDecision stores one routing decision. Best-effort from the
// pipeline's point of view; persistence failures never fail the step.
func (s *RoutingService) RecordDecision(ctx context.Context, runID string, d rcr.Decision, routingTime time.Duration) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dims := map[string]float64{
		"complexity":    d.PerDimensionScores.Complexity,
		"capability":    d.PerDimensionScores.Capability,
		"response_time": d.PerDimensionScores.ResponseTime,
		"resource":      d.PerDimensionScores.Resource,
		"quality":       d.PerDimensionScores.Quality,
		"context":       d.PerDimensionScores.Context,
	}
	normalized := map[string]float64{d.SelectedRole: d.NormalizedScore}
	for _, alt := range d.Alternatives {
		normalized[alt.Role] = alt.NormalizedScore
	}

	err := s.client.RoutingDecision.Create().
		SetStepID(d.StepID).
		SetSelectedRole(d.SelectedRole).
		SetQueryType(string(d.QueryType)).
		SetScores(dims).
		SetNormalizedScores(normalized).
		SetFallback(d.FallbackMode).
		SetConfidence(d.Confidence).
		SetRoutingTimeUs(routingTime.Microseconds()).
		SetRunID(runID).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record routing decision: %w", err)
	}
	return nil
}

// ListDecisions returns a run's routing decisions in step order.
func (s *RoutingService) ListDecisions(ctx context.Context, runID string) ([]*ent.RoutingDecision, error) {
	decisions, err := s.client.RoutingDecision.Query().
		Where(routingdecision.HasRunWith(run.IDEQ(runID))).
		Order(ent.Asc(routingdecision.FieldStepID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routing decisions: %w", err)
	}
	return decisions, nil
}
