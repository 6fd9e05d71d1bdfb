package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
	"github.com/orchid-run/orchid/pkg/artifact"
	"github.com/orchid-run/orchid/pkg/breaker"
	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/lag"
	"github.com/orchid-run/orchid/pkg/models"
	"github.com/orchid-run/orchid/pkg/rcr"
	"github.com/orchid-run/orchid/pkg/roleadapter"
	"github.com/orchid-run/orchid/pkg/services"
	testdb "github.com/orchid-run/orchid/test/database"
)

const compareQuery = "Compare the tradeoffs between sliding-window and token-bucket rate limiting, and explain when to use each"

type emittedEvent struct {
	eventType string
	payload   string
}

type captureEmitter struct {
	mu     sync.Mutex
	events []emittedEvent
}

func (c *captureEmitter) Emit(_ context.Context, eventType, payload string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, emittedEvent{eventType, payload})
}

func (c *captureEmitter) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, e := range c.events {
		out[i] = e.eventType
	}
	return out
}

type testEnv struct {
	runs      *services.RunService
	steps     *services.StepService
	stub      *roleadapter.StubAdapter
	pipe      *Pipeline
	artifacts *artifact.Manager
	emitter   *captureEmitter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	clk := clock.NewReal()
	prng := clock.NewPRNG(42)

	runs := services.NewRunService(client.Client)
	steps := services.NewStepService(client.Client)
	routing := services.NewRoutingService(client.Client)

	engine := lag.NewEngine(lag.DefaultConfig())
	router := rcr.NewRouter(rcr.DefaultRoles(), nil)
	stub := roleadapter.NewStubAdapter()
	tiered := cache.New(cache.DefaultConfig(), cache.StrategyLocal(), nil, nil, clk)
	breakers := breaker.NewRegistry(breaker.Config{
		FailureThreshold: 0.5,
		MinimumRequests:  100,
		RecoveryTimeout:  time.Second,
		SuccessThreshold: 2,
		WindowInterval:   time.Minute,
	}, nil)
	artifacts := artifact.NewManager(t.TempDir(), clk)
	emitter := &captureEmitter{}

	cfg := DefaultConfig()
	cfg.RetryBase = time.Millisecond

	pipe := NewPipeline(runs, steps, routing, engine, router, stub, tiered, breakers, artifacts, emitter, clk, prng, cfg)
	return &testEnv{
		runs:      runs,
		steps:     steps,
		stub:      stub,
		pipe:      pipe,
		artifacts: artifacts,
		emitter:   emitter,
	}
}

// claimRun creates a pending run and claims it the way a pool worker
// would.
func (env *testEnv) claimRun(t *testing.T, runID, query string) *ent.Run {
	t.Helper()
	ctx := context.Background()
	_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		RunID: runID,
		Query: query,
		Seed:  42,
	})
	require.NoError(t, err)

	claimed, err := env.runs.ClaimNextPendingRun(ctx, "test-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, runID, claimed.ID)
	return claimed
}

func (env *testEnv) traceEvents(t *testing.T, runID string) []artifact.Event {
	t.Helper()
	reader, err := env.artifacts.Open(runID, artifact.FileTrace)
	require.NoError(t, err)
	defer reader.Close()

	var events []artifact.Event
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		var event artifact.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.NoError(t, scanner.Err())
	return events
}

func eventNames(events []artifact.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Event
	}
	return names
}

func TestPipeline_SimpleRunCompletes(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-simple", "What is a goroutine?")

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "completed", result.Status)
	assert.NotEmpty(t, result.Answer)
	assert.Equal(t, 1, result.StepCount)
	assert.GreaterOrEqual(t, result.Confidence, 0.75)

	stored, err := env.runs.GetRun(context.Background(), "run-simple", true)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, stored.Status)
	assert.Equal(t, 1, stored.StepCount)
	assert.NotZero(t, stored.TokenTotal)
	assert.NotEmpty(t, stored.ArtifactsPath)
	require.Len(t, stored.Edges.Steps, 1)
	assert.Equal(t, stepexecution.StatusCompleted, stored.Edges.Steps[0].Status)
	require.Len(t, stored.Edges.RoutingDecisions, 1)

	names := eventNames(env.traceEvents(t, "run-simple"))
	assert.Equal(t, "run_started", names[0])
	assert.Equal(t, "run_completed", names[len(names)-1])
	assert.Contains(t, names, "plan_emitted")
	assert.Contains(t, names, "route_decision")
	assert.Contains(t, names, "step_completed")

	assert.Equal(t, []string{EventRunCompleted}, env.emitter.types())
}

func TestPipeline_DecomposedRunExecutesAllSteps(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-compare", compareQuery)

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "completed", result.Status)
	assert.Greater(t, result.StepCount, 1, "compare query decomposes")

	stored, err := env.runs.GetRun(context.Background(), "run-compare", true)
	require.NoError(t, err)
	assert.Len(t, stored.Edges.RoutingDecisions, result.StepCount,
		"one routing decision per step")
	for _, step := range stored.Edges.Steps {
		assert.Equal(t, stepexecution.StatusCompleted, step.Status)
	}

	// Plan and router metrics artifacts exist alongside the trace.
	for _, name := range []string{artifact.FilePlan, artifact.FileRouterMetrics, artifact.FileMetaReport} {
		reader, err := env.artifacts.Open("run-compare", name)
		require.NoError(t, err, name)
		reader.Close()
	}
}

func TestPipeline_StepCacheHitOnSecondRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.claimRun(t, "run-a", "What is a goroutine?")
	result := env.pipe.Process(ctx, first)
	require.Equal(t, "completed", result.Status)

	second := env.claimRun(t, "run-b", "What is a goroutine?")
	result = env.pipe.Process(ctx, second)
	require.Equal(t, "completed", result.Status)

	stored, err := env.runs.GetRun(ctx, "run-b", true)
	require.NoError(t, err)
	require.Len(t, stored.Edges.Steps, 1)
	assert.True(t, stored.Edges.Steps[0].FromCache, "identical step served from cache")

	names := eventNames(env.traceEvents(t, "run-b"))
	assert.Contains(t, names, "step_completed")
}

func TestPipeline_PlanArtifactIsByteIdenticalAcrossRuns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2"} {
		claimed := env.claimRun(t, id, compareQuery)
		result := env.pipe.Process(ctx, claimed)
		require.Equal(t, "completed", result.Status)
	}

	read := func(id string) []byte {
		data, err := os.ReadFile(filepath.Join(env.artifacts.RunDir(id), artifact.FilePlan))
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, read("run-1"), read("run-2"),
		"same query and seed produce byte-identical plans")
}

func TestPipeline_RetryThenSuccess(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-retry", "What is a goroutine?")

	// First attempt fails, retry succeeds.
	env.stub.Fail["What is a goroutine"] = 1

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "completed", result.Status)

	names := eventNames(env.traceEvents(t, "run-retry"))
	assert.Contains(t, names, "retry_scheduled")
	assert.Contains(t, names, "step_completed")
}

func TestPipeline_ExhaustedRetriesFailRun(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-fail", "What is a goroutine?")

	env.stub.Fail["What is a goroutine"] = 10

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "failed", result.Status)

	stored, err := env.runs.GetRun(context.Background(), "run-fail", true)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)

	names := eventNames(env.traceEvents(t, "run-fail"))
	assert.Contains(t, names, "step_failed")
	assert.Equal(t, "run_failed", names[len(names)-1])
	assert.Equal(t, []string{EventRunFailed}, env.emitter.types())
}

func TestPipeline_TerminatorHaltsBeforeExecution(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-term", "What are the winning lottery numbers for tomorrow?")

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "terminated", result.Status)
	assert.Equal(t, "UNANSWERABLE", result.Reason)
	assert.Empty(t, env.stub.Calls(), "no adapter call after a pre-execution terminator")

	stored, err := env.runs.GetRun(context.Background(), "run-term", false)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTerminated, stored.Status)
	require.NotNil(t, stored.TerminationReason)
	assert.Equal(t, "UNANSWERABLE", *stored.TerminationReason)

	names := eventNames(env.traceEvents(t, "run-term"))
	assert.Contains(t, names, "terminator_triggered")
	assert.Equal(t, "run_terminated", names[len(names)-1])
	assert.Equal(t, []string{EventRunTerminated}, env.emitter.types())
}

func TestPipeline_LowConfidenceOutputTerminates(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-lowconf", "What is a goroutine?")

	env.stub.Responses["What is a goroutine"] = roleadapter.Result{
		Text:       "a lightweight thread",
		TokensUsed: 5,
		Confidence: 0.4,
	}

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "terminated", result.Status)
	assert.Equal(t, "CONFIDENCE_THRESHOLD", result.Reason)
}

func TestPipeline_LowSupportOutputTerminates(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-lowsup", "What is a goroutine?")

	env.stub.Responses["What is a goroutine"] = roleadapter.Result{
		Text:       "There is no information available on this topic.",
		TokensUsed: 5,
		Confidence: 0.9,
	}

	result := env.pipe.Process(context.Background(), claimed)
	assert.Equal(t, "terminated", result.Status)
	assert.Equal(t, "LOW_SUPPORT", result.Reason)
}

func TestPipeline_CancellationTerminatesRun(t *testing.T) {
	env := newTestEnv(t)
	claimed := env.claimRun(t, "run-cancel", "What is a goroutine?")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := env.pipe.Process(ctx, claimed)
	assert.Equal(t, "terminated", result.Status)
	assert.Equal(t, "CANCELLED", result.Reason)

	stored, err := env.runs.GetRun(context.Background(), "run-cancel", false)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTerminated, stored.Status)

	names := eventNames(env.traceEvents(t, "run-cancel"))
	assert.Equal(t, "run_terminated", names[len(names)-1],
		"cancellation writes a final terminated record before the trace closes")
}

func TestPipeline_MetaReportCarriesProvenance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		RunID:         "run-prov",
		Query:         "What is a goroutine?",
		Seed:          42,
		CorrelationID: "corr-7",
	})
	require.NoError(t, err)
	claimed, err := env.runs.ClaimNextPendingRun(ctx, "test-pod")
	require.NoError(t, err)

	result := env.pipe.Process(ctx, claimed)
	require.Equal(t, "completed", result.Status)

	reader, err := env.artifacts.Open("run-prov", artifact.FileMetaReport)
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)

	assert.Contains(t, string(body), "Run-ID: run-prov")
	assert.Contains(t, string(body), "Correlation-ID: corr-7")
	assert.Contains(t, string(body), "Provenance: orchestrated")
}

func TestPool_ProcessesAndDrains(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
			RunID: fmt.Sprintf("pool-run-%d", i),
			Query: "What is a goroutine?",
			Seed:  42,
		})
		require.NoError(t, err)
	}

	cfg := DefaultPoolConfig("pool-pod")
	cfg.Workers = 2
	cfg.ClaimInterval = 10 * time.Millisecond
	pool := NewPool(env.pipe, env.runs, nil, cfg)
	pool.Start(ctx)

	require.Eventually(t, func() bool {
		list, err := env.runs.ListRuns(ctx, models.RunFilters{Status: string(run.StatusCompleted)})
		return err == nil && len(list.Runs) == 3
	}, 20*time.Second, 50*time.Millisecond)

	pool.Stop()
	assert.Zero(t, pool.ActiveRuns())
}

func TestPool_RecoverOrphans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	claimed := env.claimRun(t, "orphan-run", "What is a goroutine?")
	require.NoError(t, env.runs.UpdateRunStatus(ctx, claimed.ID, run.StatusExecuting))

	// Age the heartbeat past the orphan timeout.
	cfg := DefaultPoolConfig("pod-b")
	cfg.OrphanTimeout = time.Millisecond
	time.Sleep(5 * time.Millisecond)

	pool := NewPool(env.pipe, env.runs, nil, cfg)
	recovered, err := pool.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	stored, err := env.runs.GetRun(ctx, "orphan-run", false)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "orphaned", *stored.ErrorMessage)
}

func TestStepSignature_Properties(t *testing.T) {
	outputs := []string{"out-1", "out-2"}

	base := StepSignature("analyst", "compare a and b", outputs, 42)
	assert.Equal(t, base, StepSignature("analyst", "compare a and b", outputs, 42),
		"deterministic for equal inputs")
	assert.NotEqual(t, base, StepSignature("validator", "compare a and b", outputs, 42))
	assert.NotEqual(t, base, StepSignature("analyst", "compare a and b", outputs, 43))
	assert.NotEqual(t, base, StepSignature("analyst", "compare a and b", []string{"out-1"}, 42))
	assert.NotEqual(t, base, StepSignature("analyst", "compare a and b", []string{"out-1out-2"}, 42),
		"output boundaries are part of the digest")
}
