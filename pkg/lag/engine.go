package lag

import (
	"fmt"
	"strings"
)

// Engine decomposes queries into plans. It holds only configuration, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates a LAG engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Decompose analyzes the query and returns a simple plan, a decomposed
// plan, or a termination. It is a pure function of (query, cfg, seed): no
// clock or global randomness is consulted.
func (e *Engine) Decompose(query string, context map[string]any) (*Outcome, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, &InvalidInputError{Field: "query", Message: "must not be empty"}
	}
	if len(trimmed) > e.cfg.MaxQueryLength {
		return nil, &InvalidInputError{
			Field:   "query",
			Message: fmt.Sprintf("length %d exceeds max %d", len(trimmed), e.cfg.MaxQueryLength),
		}
	}

	if term := ScanQuery(trimmed); term != nil {
		return &Outcome{Kind: OutcomeTerminated, Termination: term}, nil
	}

	load := e.Score(trimmed, context)
	uncertainties := identifyUncertainties(trimmed)

	// The load formula saturates near 0.75 for unambiguous queries, so the
	// threshold alone cannot trigger decomposition for clearly-phrased
	// multi-part asks. A query with more than one independently askable
	// fragment is decomposed regardless of load.
	if load.Total <= e.cfg.CognitiveThreshold && len(uncertainties) <= 1 {
		return &Outcome{Kind: OutcomeSimple, Plan: e.simplePlan(trimmed, load)}, nil
	}

	subs := e.generateSubQuestions(uncertainties)
	if len(subs) == 0 {
		return &Outcome{Kind: OutcomeSimple, Plan: e.simplePlan(trimmed, load)}, nil
	}

	graph := buildDepGraph(subs)
	ids := make([]int, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.ID)
	}

	order, err := topoSort(ids, graph)
	if err != nil {
		// Edges only point backwards, so a cycle is an internal invariant
		// violation, never a property of the input.
		return nil, fmt.Errorf("internal: %w", err)
	}

	plan := &Plan{
		CognitiveLoad:  load,
		SubQuestions:   subs,
		DepGraph:       graph,
		Order:          order,
		ParallelGroups: parallelGroups(ids, graph),
	}
	plan.Signature = signature(plan)

	return &Outcome{Kind: OutcomeDecomposed, Plan: plan}, nil
}

// simplePlan wraps a below-threshold query in a single full-budget step.
func (e *Engine) simplePlan(query string, load LoadScore) *Plan {
	sub := SubQuestion{
		ID:                  1,
		Text:                normalizeFragment(query),
		Depth:               0,
		EstimatedComplexity: load.Total,
		TerminationChecks: []TerminationReason{
			ReasonLowSupport,
			ReasonConfidenceThreshold,
		},
	}
	plan := &Plan{
		CognitiveLoad:  load,
		SubQuestions:   []SubQuestion{sub},
		DepGraph:       map[int][]int{1: nil},
		Order:          []int{1},
		ParallelGroups: [][]int{{1}},
	}
	plan.Signature = signature(plan)
	return plan
}
