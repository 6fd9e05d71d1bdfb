// Package pipeline drives a run through its stages: preflight, planning,
// grouped parallel execution, verification, and finalization. Workers in a
// Pool claim pending runs from the database and feed them through here.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/pkg/artifact"
	"github.com/orchid-run/orchid/pkg/breaker"
	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/lag"
	"github.com/orchid-run/orchid/pkg/metrics"
	"github.com/orchid-run/orchid/pkg/rcr"
	"github.com/orchid-run/orchid/pkg/roleadapter"
	"github.com/orchid-run/orchid/pkg/services"
)

// BreakerTarget names the breaker guarding role adapter calls.
const BreakerTarget = "role-adapter"

// Webhook event types emitted at run boundaries.
const (
	EventRunCompleted  = "run.completed"
	EventRunFailed     = "run.failed"
	EventRunTerminated = "run.terminated"
)

// EventEmitter publishes run lifecycle events. *webhook.Dispatcher
// satisfies it.
type EventEmitter interface {
	Emit(ctx context.Context, eventType, payload string)
}

// NoopEmitter drops events; used when webhooks are not configured.
type NoopEmitter struct{}

func (NoopEmitter) Emit(context.Context, string, string) {}

// Config tunes per-run execution.
type Config struct {
	// MaxRetries bounds retries per step beyond the first attempt.
	MaxRetries int
	// RetryBase seeds the exponential backoff schedule.
	RetryBase time.Duration
	// ConfidenceThreshold gates the verification pass.
	ConfidenceThreshold float64
	// StepTimeout caps one adapter attempt.
	StepTimeout time.Duration
	// MaxTokens is the per-step token budget handed to the adapter.
	MaxTokens int
}

// DefaultConfig returns the documented execution defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:          2,
		RetryBase:           250 * time.Millisecond,
		ConfidenceThreshold: 0.75,
		StepTimeout:         30 * time.Second,
		MaxTokens:           2048,
	}
}

// Result summarizes a finished run.
type Result struct {
	RunID      string  `json:"run_id"`
	Status     string  `json:"status"`
	Answer     string  `json:"answer,omitempty"`
	Confidence float64 `json:"confidence"`
	StepCount  int     `json:"step_count"`
	TokenTotal int     `json:"token_total"`
	Reason     string  `json:"reason,omitempty"`
}

// Pipeline executes claimed runs. Safe for concurrent use; per-run state
// lives on the stack of Process.
type Pipeline struct {
	runs      *services.RunService
	steps     *services.StepService
	routing   *services.RoutingService
	engine    *lag.Engine
	router    *rcr.Router
	adapter   roleadapter.Adapter
	cache     *cache.Cache
	breakers  *breaker.Registry
	artifacts *artifact.Manager
	events    EventEmitter
	clk       clock.Clock
	prng      *clock.PRNG
	logger    *slog.Logger
	cfg       Config
}

// NewPipeline wires a pipeline. events may be nil.
func NewPipeline(
	runs *services.RunService,
	steps *services.StepService,
	routing *services.RoutingService,
	engine *lag.Engine,
	router *rcr.Router,
	adapter roleadapter.Adapter,
	tiered *cache.Cache,
	breakers *breaker.Registry,
	artifacts *artifact.Manager,
	events EventEmitter,
	clk clock.Clock,
	prng *clock.PRNG,
	cfg Config,
) *Pipeline {
	if events == nil {
		events = NoopEmitter{}
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 250 * time.Millisecond
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = 0.75
	}
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 30 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2048
	}
	return &Pipeline{
		runs:      runs,
		steps:     steps,
		routing:   routing,
		engine:    engine,
		router:    router,
		adapter:   adapter,
		cache:     tiered,
		breakers:  breakers,
		artifacts: artifacts,
		events:    events,
		clk:       clk,
		prng:      prng,
		logger:    slog.Default().With("component", "pipeline"),
		cfg:       cfg,
	}
}

// cachedResult is the step cache value.
type cachedResult struct {
	Output     string  `json:"output"`
	Confidence float64 `json:"confidence"`
	Tokens     int     `json:"tokens"`
}

// terminationError carries a terminator hit out of step execution.
type terminationError struct {
	stepID int
	term   *lag.Termination
}

func (e *terminationError) Error() string { return e.term.Error() }

// stepFailure carries a non-terminator step failure.
type stepFailure struct {
	stepID int
	err    error
}

func (e *stepFailure) Error() string {
	return fmt.Sprintf("step %d failed: %v", e.stepID, e.err)
}

func (e *stepFailure) Unwrap() error { return e.err }

// Process runs one claimed run to a terminal state and returns its
// summary. The run must already be in planning (the claim transition).
func (p *Pipeline) Process(ctx context.Context, r *ent.Run) Result {
	logger := p.logger.With("run_id", r.ID)
	writer, err := p.artifacts.ForRun(r.ID)
	if err != nil {
		logger.Error("Failed to open artifact directory", "error", err)
		return p.fail(ctx, r, nil, "artifact directory unavailable")
	}
	defer writer.Close()

	if err := writer.Append(artifact.Event{Event: artifact.EventRunStarted}); err != nil {
		logger.Warn("Failed to trace run start", "error", err)
	}

	plan, term, err := p.plan(ctx, r)
	if err != nil {
		return p.fail(ctx, r, writer, err.Error())
	}
	if term != nil {
		// Terminator hit before any step ran.
		_ = writer.Append(artifact.Event{
			Event:  artifact.EventTerminatorTriggered,
			Reason: string(term.Reason),
			Detail: term.Detail,
		})
		return p.terminate(ctx, r, writer, nil, term)
	}

	if ctx.Err() != nil {
		return p.terminate(ctx, r, writer, nil, &lag.Termination{
			Reason: "CANCELLED", Detail: "run cancelled",
		})
	}

	if err := writer.WritePlan(plan); err != nil {
		logger.Warn("Failed to write plan artifact", "error", err)
	}
	_ = writer.Append(artifact.Event{
		Event:  artifact.EventPlanEmitted,
		Detail: plan.Signature,
	})

	planned := make([]services.PlannedStep, 0, len(plan.SubQuestions))
	for _, sub := range plan.SubQuestions {
		planned = append(planned, services.PlannedStep{StepID: sub.ID, Question: sub.Text})
	}
	if _, err := p.steps.CreateSteps(ctx, r.ID, planned); err != nil {
		return p.fail(ctx, r, writer, fmt.Sprintf("failed to record steps: %v", err))
	}
	if err := p.runs.UpdateRunStatus(ctx, r.ID, run.StatusExecuting); err != nil {
		return p.fail(ctx, r, writer, fmt.Sprintf("failed to enter executing: %v", err))
	}

	state := newRunState(plan)
	if err := p.execute(ctx, r, plan, state, writer); err != nil {
		var termErr *terminationError
		if errors.As(err, &termErr) {
			_ = writer.Append(artifact.Event{
				Event:  artifact.EventTerminatorTriggered,
				StepID: termErr.stepID,
				Reason: string(termErr.term.Reason),
				Detail: termErr.term.Detail,
			})
			return p.terminate(ctx, r, writer, state, termErr.term)
		}
		if errors.Is(err, context.Canceled) {
			return p.terminate(ctx, r, writer, state, &lag.Termination{
				Reason: "CANCELLED", Detail: "run cancelled",
			})
		}
		return p.failWithState(ctx, r, writer, state, err.Error())
	}

	if reason, ok := p.verify(state); !ok {
		return p.failWithState(ctx, r, writer, state, reason)
	}
	return p.finalize(ctx, r, writer, state)
}

// plan produces the run's plan, consulting the plan cache keyed by the
// query signature. A nil plan with a non-nil termination means a
// terminator fired during decomposition.
func (p *Pipeline) plan(ctx context.Context, r *ent.Run) (*lag.Plan, *lag.Termination, error) {
	bundle := contextBundle(r)
	cacheKey := "plan:" + QuerySignature(r.Query, bundle, r.Seed)

	if data, ok := p.cache.Get(ctx, cacheKey); ok {
		var plan lag.Plan
		if err := json.Unmarshal(data, &plan); err == nil {
			return &plan, nil, nil
		}
		p.cache.Invalidate(ctx, cacheKey, false)
	}

	outcome, err := p.engine.Decompose(r.Query, bundle)
	if err != nil {
		return nil, nil, fmt.Errorf("decomposition failed: %w", err)
	}
	if outcome.Kind == lag.OutcomeTerminated {
		return nil, outcome.Termination, nil
	}

	if data, err := json.Marshal(outcome.Plan); err == nil {
		p.cache.Put(ctx, cacheKey, data)
	}
	return outcome.Plan, nil, nil
}

// contextBundle recovers the request context map from the run's config
// snapshot.
func contextBundle(r *ent.Run) map[string]any {
	if raw, ok := r.ConfigSnapshot["context"].(map[string]any); ok {
		return raw
	}
	return nil
}

// execute walks the parallel groups in plan order. Within a group, steps
// run concurrently with fan-out bounded by the smallest role capacity.
func (p *Pipeline) execute(ctx context.Context, r *ent.Run, plan *lag.Plan, state *runState, writer *artifact.Writer) error {
	roleNames := make([]string, 0, len(p.router.Roles()))
	for _, role := range p.router.Roles() {
		roleNames = append(roleNames, role.Name)
	}
	limit := p.router.SmallestCapacity(roleNames)

	for _, group := range plan.ParallelGroups {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)
		for _, id := range group {
			sub, ok := state.subs[id]
			if !ok {
				return fmt.Errorf("plan references unknown step %d", id)
			}
			g.Go(func() error {
				return p.executeStep(gctx, r, plan, sub, state, writer)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// executeStep runs one sub-question: pre-terminator scan, routing, cache
// consult, adapter call with retries, post-output terminator check.
func (p *Pipeline) executeStep(ctx context.Context, r *ent.Run, plan *lag.Plan, sub lag.SubQuestion, state *runState, writer *artifact.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if term := lag.ScanQuery(sub.Text); term != nil {
		_ = p.steps.FailStep(ctx, r.ID, sub.ID, term.Error())
		return &terminationError{stepID: sub.ID, term: term}
	}

	contextOutputs := state.orderedOutputs(plan.DepGraph[sub.ID])

	routeStart := time.Now()
	decision := p.router.Route(ctx, rcr.Step{
		RunID:               r.ID,
		StepID:              sub.ID,
		Text:                sub.Text,
		EstimatedComplexity: sub.EstimatedComplexity,
	}, contextBundle(r), rcr.Requirements{})
	defer p.router.Release(ctx, decision.SelectedRole)

	if err := p.routing.RecordDecision(ctx, r.ID, decision, time.Since(routeStart)); err != nil {
		p.logger.Warn("Failed to persist routing decision",
			"run_id", r.ID, "step_id", sub.ID, "error", err)
	}
	state.recordDecision(decision)
	metrics.RecordRouteDecision(decision.SelectedRole)
	_ = writer.Append(artifact.Event{
		Event:      artifact.EventRouteDecision,
		StepID:     sub.ID,
		Role:       decision.SelectedRole,
		Confidence: decision.Confidence,
	})

	signature := StepSignature(decision.SelectedRole, sub.Text, contextOutputs, r.Seed)
	if err := p.steps.StartStep(ctx, r.ID, sub.ID, decision.SelectedRole, 1); err != nil {
		return &stepFailure{stepID: sub.ID, err: err}
	}
	_ = writer.Append(artifact.Event{
		Event:  artifact.EventStepStarted,
		StepID: sub.ID,
		Role:   decision.SelectedRole,
	})

	if data, ok := p.cache.Get(ctx, signature); ok {
		var cached cachedResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return p.completeStep(ctx, r, sub, decision.SelectedRole, cached, true, signature, state, writer)
		}
		p.cache.Invalidate(ctx, signature, false)
	}

	result, err := p.invokeWithRetries(ctx, r, sub, decision.SelectedRole, contextOutputs, writer)
	if err != nil {
		_ = p.steps.FailStep(ctx, r.ID, sub.ID, err.Error())
		_ = writer.Append(artifact.Event{
			Event:  artifact.EventStepFailed,
			StepID: sub.ID,
			Role:   decision.SelectedRole,
			Error:  err.Error(),
		})
		return &stepFailure{stepID: sub.ID, err: err}
	}

	if term := lag.CheckOutput(result.Text, result.Confidence, sub.TerminationChecks, p.engine.Config()); term != nil {
		_ = p.steps.FailStep(ctx, r.ID, sub.ID, term.Error())
		return &terminationError{stepID: sub.ID, term: term}
	}

	cached := cachedResult{Output: result.Text, Confidence: result.Confidence, Tokens: result.TokensUsed}
	if data, mErr := json.Marshal(cached); mErr == nil {
		depSignatures := state.dependencySignatures(plan.DepGraph[sub.ID])
		p.cache.Put(ctx, signature, data, depSignatures...)
	}
	return p.completeStep(ctx, r, sub, decision.SelectedRole, cached, false, signature, state, writer)
}

// invokeWithRetries calls the role adapter through the circuit breaker.
// Retries use exponential backoff from RetryBase with full jitter drawn
// from the seeded PRNG. Timeouts and open-breaker failures propagate
// without retry.
func (p *Pipeline) invokeWithRetries(ctx context.Context, r *ent.Run, sub lag.SubQuestion, role string, contextOutputs []string, writer *artifact.Writer) (*roleadapter.Result, error) {
	var lastErr error
	maxAttempts := 1 + p.cfg.MaxRetries

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := p.steps.StartStep(ctx, r.ID, sub.ID, role, attempt); err != nil {
				return nil, err
			}
		}

		var result *roleadapter.Result
		err := p.breakers.Do(ctx, BreakerTarget, func(callCtx context.Context) error {
			attemptCtx, cancel := context.WithTimeout(callCtx, p.cfg.StepTimeout)
			defer cancel()
			var execErr error
			result, execErr = p.adapter.Execute(attemptCtx, roleadapter.Request{
				RunID:       r.ID,
				StepID:      sub.ID,
				Role:        role,
				Question:    sub.Text,
				Context:     contextOutputs,
				Seed:        r.Seed,
				Temperature: r.Temperature,
				MaxTokens:   p.cfg.MaxTokens,
			})
			return execErr
		})
		if err == nil {
			return result, nil
		}
		lastErr = err

		if errors.Is(err, breaker.ErrCircuitOpen) ||
			errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, context.Canceled) {
			return nil, err
		}
		if attempt == maxAttempts {
			break
		}

		backoff := p.cfg.RetryBase << (attempt - 1)
		jittered := time.Duration(p.prng.Jitter(int64(backoff)))
		_ = writer.Append(artifact.Event{
			Event:   artifact.EventRetryScheduled,
			StepID:  sub.ID,
			Role:    role,
			Attempt: attempt + 1,
			Error:   err.Error(),
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(jittered):
		}
	}
	return nil, fmt.Errorf("step exhausted %d attempts: %w", maxAttempts, lastErr)
}

func (p *Pipeline) completeStep(ctx context.Context, r *ent.Run, sub lag.SubQuestion, role string, result cachedResult, fromCache bool, signature string, state *runState, writer *artifact.Writer) error {
	if err := p.steps.CompleteStep(ctx, r.ID, sub.ID, result.Output, result.Confidence, result.Tokens, fromCache, signature); err != nil {
		return &stepFailure{stepID: sub.ID, err: err}
	}
	state.recordResult(sub.ID, result.Output, result.Confidence, result.Tokens, signature)
	_ = writer.Append(artifact.Event{
		Event:      artifact.EventStepCompleted,
		StepID:     sub.ID,
		Role:       role,
		FromCache:  fromCache,
		Tokens:     result.Tokens,
		Confidence: result.Confidence,
	})
	return nil
}

// verify gates finalization: every step's confidence must average at or
// above the threshold.
func (p *Pipeline) verify(state *runState) (string, bool) {
	mean := state.meanConfidence()
	if mean < p.cfg.ConfidenceThreshold {
		return fmt.Sprintf("verification failed: confidence %.3f below threshold %.2f",
			mean, p.cfg.ConfidenceThreshold), false
	}
	return "", true
}

func (p *Pipeline) finalize(ctx context.Context, r *ent.Run, writer *artifact.Writer, state *runState) Result {
	stepCount, tokenTotal := state.totals()
	answer := state.finalAnswer()
	confidence := state.meanConfidence()

	if err := writer.WriteRouterMetrics(state.decisions); err != nil {
		p.logger.Warn("Failed to write router metrics", "run_id", r.ID, "error", err)
	}
	if err := writer.WriteMetaReport(p.metaReport(r, state, "completed", ""), r.ID, r.CorrelationID); err != nil {
		p.logger.Warn("Failed to write meta report", "run_id", r.ID, "error", err)
	}
	_ = writer.Append(artifact.Event{
		Event:      artifact.EventRunCompleted,
		Tokens:     tokenTotal,
		Confidence: confidence,
	})

	if err := p.runs.FinalizeRun(ctx, r.ID, run.StatusCompleted, stepCount, tokenTotal, p.artifacts.RunDir(r.ID), "", ""); err != nil {
		p.logger.Error("Failed to finalize run", "run_id", r.ID, "error", err)
	}

	result := Result{
		RunID:      r.ID,
		Status:     string(run.StatusCompleted),
		Answer:     answer,
		Confidence: confidence,
		StepCount:  stepCount,
		TokenTotal: tokenTotal,
	}
	p.emit(ctx, EventRunCompleted, r, result)
	return result
}

func (p *Pipeline) fail(ctx context.Context, r *ent.Run, writer *artifact.Writer, reason string) Result {
	return p.failWithState(ctx, r, writer, nil, reason)
}

func (p *Pipeline) failWithState(ctx context.Context, r *ent.Run, writer *artifact.Writer, state *runState, reason string) Result {
	p.logger.Warn("Run failed", "run_id", r.ID, "reason", reason)
	var stepCount, tokenTotal int
	if state != nil {
		stepCount, tokenTotal = state.totals()
	}
	if writer != nil {
		_ = writer.Append(artifact.Event{Event: artifact.EventRunFailed, Error: reason})
		if err := writer.WriteMetaReport(p.metaReport(r, state, "failed", reason), r.ID, r.CorrelationID); err != nil {
			p.logger.Warn("Failed to write meta report", "run_id", r.ID, "error", err)
		}
	}

	if _, err := p.steps.SkipSteps(ctx, r.ID, reason); err != nil {
		p.logger.Warn("Failed to skip remaining steps", "run_id", r.ID, "error", err)
	}
	if err := p.runs.FinalizeRun(ctx, r.ID, run.StatusFailed, stepCount, tokenTotal, p.artifacts.RunDir(r.ID), "", reason); err != nil && !errors.Is(err, services.ErrTerminalState) {
		p.logger.Error("Failed to finalize run", "run_id", r.ID, "error", err)
	}

	result := Result{
		RunID:      r.ID,
		Status:     string(run.StatusFailed),
		StepCount:  stepCount,
		TokenTotal: tokenTotal,
		Reason:     reason,
	}
	p.emit(ctx, EventRunFailed, r, result)
	return result
}

func (p *Pipeline) terminate(ctx context.Context, r *ent.Run, writer *artifact.Writer, state *runState, term *lag.Termination) Result {
	p.logger.Info("Run terminated", "run_id", r.ID, "reason", term.Reason, "detail", term.Detail)
	var stepCount, tokenTotal int
	if state != nil {
		stepCount, tokenTotal = state.totals()
	}

	// Write against a background context: termination must be recorded
	// even when the run's own context was cancelled.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if skipped, err := p.steps.SkipSteps(writeCtx, r.ID, string(term.Reason)); err != nil {
		p.logger.Warn("Failed to skip remaining steps", "run_id", r.ID, "error", err)
	} else if skipped > 0 {
		p.logger.Debug("Skipped remaining steps", "run_id", r.ID, "count", skipped)
	}

	if writer != nil {
		if err := writer.WriteMetaReport(p.metaReport(r, state, "terminated", string(term.Reason)), r.ID, r.CorrelationID); err != nil {
			p.logger.Warn("Failed to write meta report", "run_id", r.ID, "error", err)
		}
		_ = writer.Append(artifact.Event{
			Event:  artifact.EventRunTerminated,
			Reason: string(term.Reason),
			Detail: term.Detail,
		})
	}

	if err := p.runs.FinalizeRun(writeCtx, r.ID, run.StatusTerminated, stepCount, tokenTotal, p.artifacts.RunDir(r.ID), string(term.Reason), term.Detail); err != nil && !errors.Is(err, services.ErrTerminalState) {
		p.logger.Error("Failed to finalize run", "run_id", r.ID, "error", err)
	}

	result := Result{
		RunID:      r.ID,
		Status:     string(run.StatusTerminated),
		StepCount:  stepCount,
		TokenTotal: tokenTotal,
		Reason:     string(term.Reason),
	}
	p.emit(writeCtx, EventRunTerminated, r, result)
	return result
}

func (p *Pipeline) emit(ctx context.Context, eventType string, r *ent.Run, result Result) {
	payload, err := json.Marshal(struct {
		Event      string  `json:"event"`
		RunID      string  `json:"run_id"`
		TenantID   string  `json:"tenant_id"`
		Status     string  `json:"status"`
		StepCount  int     `json:"step_count"`
		TokenTotal int     `json:"token_total"`
		Confidence float64 `json:"confidence,omitempty"`
		Reason     string  `json:"reason,omitempty"`
	}{
		Event:      eventType,
		RunID:      r.ID,
		TenantID:   r.TenantID,
		Status:     result.Status,
		StepCount:  result.StepCount,
		TokenTotal: result.TokenTotal,
		Confidence: result.Confidence,
		Reason:     result.Reason,
	})
	if err != nil {
		return
	}
	p.events.Emit(ctx, eventType, string(payload))
}

func (p *Pipeline) metaReport(r *ent.Run, state *runState, status, reason string) string {
	var b strings.Builder
	b.WriteString("# Run Report\n\n")
	fmt.Fprintf(&b, "- Query: %s\n", r.Query)
	fmt.Fprintf(&b, "- Tenant: %s\n", r.TenantID)
	fmt.Fprintf(&b, "- Seed: %d\n", r.Seed)
	fmt.Fprintf(&b, "- Temperature: %.2f\n", r.Temperature)
	fmt.Fprintf(&b, "- Status: %s\n", status)
	if reason != "" {
		fmt.Fprintf(&b, "- Reason: %s\n", reason)
	}
	if state != nil {
		stepCount, tokenTotal := state.totals()
		fmt.Fprintf(&b, "- Steps: %d\n", stepCount)
		fmt.Fprintf(&b, "- Tokens: %d\n", tokenTotal)
		fmt.Fprintf(&b, "- Confidence: %.3f\n", state.meanConfidence())
	}
	return b.String()
}

// runState accumulates per-run execution results across goroutines.
type runState struct {
	subs  map[int]lag.SubQuestion
	order []int

	mu          sync.Mutex
	outputs     map[int]string
	confidences map[int]float64
	tokens      map[int]int
	signatures  map[int]string
	decisions   []rcr.Decision
}

func newRunState(plan *lag.Plan) *runState {
	subs := make(map[int]lag.SubQuestion, len(plan.SubQuestions))
	for _, sub := range plan.SubQuestions {
		subs[sub.ID] = sub
	}
	return &runState{
		subs:        subs,
		order:       plan.Order,
		outputs:     make(map[int]string),
		confidences: make(map[int]float64),
		tokens:      make(map[int]int),
		signatures:  make(map[int]string),
	}
}

func (s *runState) recordResult(stepID int, output string, confidence float64, tokens int, signature string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[stepID] = output
	s.confidences[stepID] = confidence
	s.tokens[stepID] = tokens
	s.signatures[stepID] = signature
}

func (s *runState) recordDecision(d rcr.Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions = append(s.decisions, d)
}

// orderedOutputs returns the completed outputs of the given predecessor
// ids in ascending id order.
func (s *runState) orderedOutputs(deps []int) []string {
	sorted := make([]int, len(deps))
	copy(sorted, deps)
	sort.Ints(sorted)

	s.mu.Lock()
	defer s.mu.Unlock()
	outputs := make([]string, 0, len(sorted))
	for _, id := range sorted {
		if out, ok := s.outputs[id]; ok {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// dependencySignatures maps predecessor ids to their cache keys, so a step
// result is invalidated when an input it consumed is.
func (s *runState) dependencySignatures(deps []int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	signatures := make([]string, 0, len(deps))
	for _, id := range deps {
		if sig, ok := s.signatures[id]; ok {
			signatures = append(signatures, sig)
		}
	}
	return signatures
}

func (s *runState) totals() (stepCount, tokenTotal int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tokens {
		tokenTotal += t
	}
	return len(s.outputs), tokenTotal
}

func (s *runState) meanConfidence() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.confidences) == 0 {
		return 0
	}
	var sum float64
	for _, c := range s.confidences {
		sum += c
	}
	return sum / float64(len(s.confidences))
}

// finalAnswer is the output of the last step in plan order.
func (s *runState) finalAnswer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.order) - 1; i >= 0; i-- {
		if out, ok := s.outputs[s.order[i]]; ok {
			return out
		}
	}
	return ""
}
