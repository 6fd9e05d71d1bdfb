package lag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compareQuery = "Compare the tradeoffs between sliding-window and token-bucket rate limiting, and explain when to use each"

func newEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func TestDecompose_SimpleQuery(t *testing.T) {
	outcome, err := newEngine().Decompose("What is 2+2?", nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeSimple, outcome.Kind)
	require.NotNil(t, outcome.Plan)
	assert.Less(t, outcome.Plan.CognitiveLoad.Total, 0.8)
	assert.Len(t, outcome.Plan.SubQuestions, 1)
	assert.Equal(t, []int{1}, outcome.Plan.Order)
	assert.Equal(t, [][]int{{1}}, outcome.Plan.ParallelGroups)
}

func TestDecompose_CartesianDecomposition(t *testing.T) {
	outcome, err := newEngine().Decompose(compareQuery, nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeDecomposed, outcome.Kind)
	plan := outcome.Plan
	require.NotNil(t, plan)

	require.GreaterOrEqual(t, len(plan.SubQuestions), 2)
	require.LessOrEqual(t, len(plan.SubQuestions), 4)

	var compareID, explainID int
	for _, s := range plan.SubQuestions {
		lower := strings.ToLower(s.Text)
		if strings.HasPrefix(lower, "compare") {
			compareID = s.ID
		}
		if strings.HasPrefix(lower, "explain") {
			explainID = s.ID
		}
	}
	require.NotZero(t, compareID)
	require.NotZero(t, explainID)

	// "explain when" depends on "compare tradeoffs".
	assert.Contains(t, plan.DepGraph[explainID], compareID)
	assert.Equal(t, []int{compareID, explainID}, plan.Order)
}

func TestDecompose_TerminatorContradiction(t *testing.T) {
	outcome, err := newEngine().Decompose("Prove that 1 equals 2 using standard arithmetic", nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeTerminated, outcome.Kind)
	require.NotNil(t, outcome.Termination)
	assert.Contains(t,
		[]TerminationReason{ReasonContradiction, ReasonUnanswerable},
		outcome.Termination.Reason)
	assert.Nil(t, outcome.Plan)
}

func TestDecompose_EmptyQuery(t *testing.T) {
	_, err := newEngine().Decompose("   ", nil)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "query", invalid.Field)
}

func TestDecompose_OverlongQuery(t *testing.T) {
	_, err := newEngine().Decompose(strings.Repeat("why ", 5000), nil)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestDecompose_SignatureStableAcrossRepetitions(t *testing.T) {
	var signatures []string
	for i := 0; i < 5; i++ {
		outcome, err := newEngine().Decompose(compareQuery, nil)
		require.NoError(t, err)
		require.NotNil(t, outcome.Plan)
		signatures = append(signatures, outcome.Plan.Signature)
	}
	for _, sig := range signatures[1:] {
		assert.Equal(t, signatures[0], sig)
	}
}

func TestDecompose_OrderIsTopological(t *testing.T) {
	queries := []string{
		compareQuery,
		"Analyze the failure modes of distributed consensus, and evaluate how each affects availability, and explain why quorum systems mitigate them",
		"Describe the architecture of a tiered cache; explain how invalidation cascades through it",
	}
	for _, q := range queries {
		outcome, err := newEngine().Decompose(q, nil)
		require.NoError(t, err)
		if outcome.Kind != OutcomeDecomposed {
			continue
		}
		plan := outcome.Plan

		seen := make(map[int]bool)
		for _, id := range plan.Order {
			for _, dep := range plan.DepGraph[id] {
				assert.True(t, seen[dep], "query %q: id %d ordered before its dependency %d", q, id, dep)
			}
			seen[id] = true
		}
	}
}

func TestDecompose_ParallelGroupsRespectPredecessors(t *testing.T) {
	outcome, err := newEngine().Decompose(compareQuery, nil)
	require.NoError(t, err)
	plan := outcome.Plan
	require.NotNil(t, plan)

	groupOf := make(map[int]int)
	for k, group := range plan.ParallelGroups {
		for _, id := range group {
			groupOf[id] = k
		}
	}
	for id, deps := range plan.DepGraph {
		for _, dep := range deps {
			assert.Less(t, groupOf[dep], groupOf[id])
		}
	}
}

func TestDecompose_MaxSubQuestionsBound(t *testing.T) {
	var parts []string
	for i := 0; i < 15; i++ {
		parts = append(parts, fmt.Sprintf("explain concept number %d in depth", i))
	}
	query := strings.Join(parts, "; ")

	outcome, err := newEngine().Decompose(query, nil)
	require.NoError(t, err)
	require.Equal(t, OutcomeDecomposed, outcome.Kind)

	cfg := DefaultConfig()
	assert.LessOrEqual(t, len(outcome.Plan.SubQuestions), cfg.MaxSubQuestions)
	for _, s := range outcome.Plan.SubQuestions {
		assert.LessOrEqual(t, s.Depth, cfg.MaxDepth)
	}
}

func TestDecompose_IDsAscendWithTextualOrder(t *testing.T) {
	outcome, err := newEngine().Decompose(compareQuery, nil)
	require.NoError(t, err)
	require.NotNil(t, outcome.Plan)

	for i, s := range outcome.Plan.SubQuestions {
		if i > 0 {
			assert.Greater(t, s.ID, outcome.Plan.SubQuestions[i-1].ID)
		}
	}
}

func TestScanQuery_CleanQueryPasses(t *testing.T) {
	assert.Nil(t, ScanQuery("What is the capital of France?"))
	assert.Nil(t, ScanQuery("Prove that 2 equals 2"))
}

func TestCheckOutput_ConfidenceThreshold(t *testing.T) {
	cfg := DefaultConfig()
	checks := []TerminationReason{ReasonConfidenceThreshold}

	term := CheckOutput("a perfectly fine answer", 0.5, checks, cfg)
	require.NotNil(t, term)
	assert.Equal(t, ReasonConfidenceThreshold, term.Reason)

	assert.Nil(t, CheckOutput("a perfectly fine answer", 0.9, checks, cfg))
}

func TestCheckOutput_LowSupport(t *testing.T) {
	cfg := DefaultConfig()
	checks := []TerminationReason{ReasonLowSupport}

	term := CheckOutput("There is no information available on this topic.", 0.9, checks, cfg)
	require.NotNil(t, term)
	assert.Equal(t, ReasonLowSupport, term.Reason)
}

func TestScore_Components(t *testing.T) {
	e := newEngine()

	trivial := e.Score("What is 2+2?", nil)
	assert.Less(t, trivial.Total, 0.2)

	loaded := e.Score(compareQuery, nil)
	assert.Greater(t, loaded.Total, trivial.Total)
	assert.Greater(t, loaded.ReasoningDepth, 0.0)

	ambiguous := e.Score("Explain why it behaves like that when they change those settings", nil)
	assert.Greater(t, ambiguous.Ambiguity, 0.2)
}

func TestScore_ContextPronouns(t *testing.T) {
	e := newEngine()
	without := e.Score("Summarize the findings", nil)
	with := e.Score("Summarize the findings", map[string]any{
		"notes": "they said it was fine but that was before",
	})
	assert.Greater(t, with.Ambiguity, without.Ambiguity)
}
