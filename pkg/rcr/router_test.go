package rcr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/lag"
)

func newRouter() *Router {
	return NewRouter(DefaultRoles(), nil)
}

func TestRoute_SimpleQueryGoesToCoordinator(t *testing.T) {
	r := newRouter()

	d := r.Route(context.Background(), Step{
		RunID:               "run-1",
		StepID:              1,
		Text:                "What is 2+2?",
		EstimatedComplexity: 0.05,
	}, nil, Requirements{MinQuality: 0.05})

	assert.Equal(t, RoleCoordinator, d.SelectedRole)
	assert.False(t, d.FallbackMode)
	assert.Equal(t, QueryInterrogative, d.QueryType)
	assert.InDelta(t, 1.0, d.NormalizedScore, 1e-9)
	assert.Len(t, d.Alternatives, 4)
}

func TestRoute_DecomposedCompareQuery(t *testing.T) {
	engine := lag.NewEngine(lag.DefaultConfig())
	outcome, err := engine.Decompose(
		"Compare the tradeoffs between sliding-window and token-bucket rate limiting, and explain when to use each", nil)
	require.NoError(t, err)
	require.Equal(t, lag.OutcomeDecomposed, outcome.Kind)
	require.Len(t, outcome.Plan.Order, 2)

	r := newRouter()
	var selected []string
	for _, id := range outcome.Plan.Order {
		var sub lag.SubQuestion
		for _, s := range outcome.Plan.SubQuestions {
			if s.ID == id {
				sub = s
			}
		}
		d := r.Route(context.Background(), Step{
			RunID:               "run-2",
			StepID:              sub.ID,
			Text:                sub.Text,
			EstimatedComplexity: sub.EstimatedComplexity,
		}, nil, Requirements{MinQuality: sub.EstimatedComplexity})
		selected = append(selected, d.SelectedRole)
	}

	assert.Contains(t, []string{RoleAnalyst, RoleSynthesizer}, selected[0])
	assert.Equal(t, RoleSynthesizer, selected[1])
}

func TestRoute_IsDeterministic(t *testing.T) {
	step := Step{RunID: "run-3", StepID: 1, Text: "Analyze cache eviction behavior under load", EstimatedComplexity: 0.4}

	var first Decision
	for i := 0; i < 5; i++ {
		r := newRouter()
		d := r.Route(context.Background(), step, nil, Requirements{})
		if i == 0 {
			first = d
			continue
		}
		assert.Equal(t, first.SelectedRole, d.SelectedRole)
		assert.Equal(t, first.NormalizedScore, d.NormalizedScore)
		assert.Equal(t, first.PerDimensionScores, d.PerDimensionScores)
	}
}

func TestRoute_LoadGateSkipsSaturatedRole(t *testing.T) {
	r := newRouter()
	step := Step{RunID: "run-4", StepID: 1, Text: "Analyze the regression in step latency", EstimatedComplexity: 0.4}

	first := r.Route(context.Background(), step, nil, Requirements{})
	require.Equal(t, RoleAnalyst, first.SelectedRole)
	r.Release(context.Background(), RoleAnalyst)

	// Saturate the analyst's advisory counter.
	capacity := 0
	for _, role := range r.Roles() {
		if role.Name == RoleAnalyst {
			capacity = role.LoadCapacity
		}
	}
	r.mu.Lock()
	r.loads[RoleAnalyst] = capacity
	r.mu.Unlock()

	d := r.Route(context.Background(), step, nil, Requirements{})
	assert.NotEqual(t, RoleAnalyst, d.SelectedRole)
	assert.False(t, d.FallbackMode)
}

func TestRoute_FallbackWhenNothingQualifies(t *testing.T) {
	r := newRouter()
	step := Step{RunID: "run-5", StepID: 1, Text: "general request", EstimatedComplexity: 0.5}

	// Saturate every role so the load gate rejects all of them.
	for _, role := range r.Roles() {
		r.mu.Lock()
		r.loads[role.Name] = role.LoadCapacity
		r.mu.Unlock()
	}

	d := r.Route(context.Background(), step, nil, Requirements{})
	assert.Equal(t, RoleCoordinator, d.SelectedRole)
	assert.True(t, d.FallbackMode)
}

func TestRelease_DecrementsLoad(t *testing.T) {
	r := newRouter()
	step := Step{RunID: "run-6", StepID: 1, Text: "Analyze throughput", EstimatedComplexity: 0.4}

	d := r.Route(context.Background(), step, nil, Requirements{})
	require.Equal(t, 1, r.Load(d.SelectedRole))

	r.Release(context.Background(), d.SelectedRole)
	assert.Equal(t, 0, r.Load(d.SelectedRole))

	// Releasing an idle role never goes negative.
	r.Release(context.Background(), d.SelectedRole)
	assert.Equal(t, 0, r.Load(d.SelectedRole))
}

func TestSmallestCapacity(t *testing.T) {
	r := newRouter()
	assert.Equal(t, 4, r.SmallestCapacity([]string{RoleAnalyst, RoleSpecialist}))
	assert.Equal(t, 12, r.SmallestCapacity([]string{RoleCoordinator}))
	assert.Equal(t, 1, r.SmallestCapacity(nil))
}

func TestMetrics_HealthGrading(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 100; i++ {
		m.RecordRoute(RoleAnalyst, false, time.Millisecond)
	}
	m.RecordUtilization(0.5)
	snap := m.Snapshot()
	assert.Equal(t, HealthOptimal, snap.Health)
	assert.Equal(t, int64(100), snap.TotalRequests)
	assert.Equal(t, int64(100), snap.RoleDistribution[RoleAnalyst])

	// Push accuracy below the optimal bar.
	for i := 0; i < 5; i++ {
		m.RecordRoute(RoleCoordinator, true, time.Millisecond)
	}
	snap = m.Snapshot()
	assert.Equal(t, HealthGood, snap.Health)

	m.RecordUtilization(0.99)
	snap = m.Snapshot()
	assert.Equal(t, HealthNeedsOptimization, snap.Health)
}

func TestAnalyzeQuery_Types(t *testing.T) {
	cases := map[string]QueryType{
		"Compare the two algorithms":          QueryAnalytical,
		"Explain when to use each":            QueryExplanatory,
		"Generate a rollout plan":             QueryGenerative,
		"Optimize the hot path":               QueryOptimization,
		"What is the capital of France?":      QueryInterrogative,
		"the quarterly report":                QueryGeneral,
	}
	for text, want := range cases {
		assert.Equal(t, want, AnalyzeQuery(text, 0).QueryType, text)
	}
}

func TestAnalyzeContext(t *testing.T) {
	ca := AnalyzeContext(map[string]any{
		"domain": "networking",
		"history": map[string]any{
			"q1": "previous answer",
			"q2": "another answer",
		},
		"deadline": "soon",
	})

	assert.Equal(t, 2, ca.NestedLevels)
	assert.True(t, ca.TemporalRequirements)
	assert.Contains(t, ca.RequiredCapabilities, "domain_expertise")
	assert.Contains(t, ca.RequiredCapabilities, "aggregation")
	assert.Greater(t, ca.Richness, 0.0)

	empty := AnalyzeContext(nil)
	assert.Zero(t, empty.Richness)
	assert.Zero(t, empty.NestedLevels)
	assert.Empty(t, empty.RequiredCapabilities)
}
