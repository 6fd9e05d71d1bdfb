// Package lag implements the Logical Answer Generation engine: cognitive
// load scoring, Cartesian decomposition of a query into dependent
// sub-questions, logical ordering, and termination detection.
//
// Decompose is a pure function of (query, config, seed) and is reproducible
// byte-for-byte: no wall-clock time or global randomness may influence the
// plan structure.
package lag

import "fmt"

// TerminationReason names a condition that halts a run.
type TerminationReason string

// Termination reasons, in check order. The first triggered condition wins.
const (
	ReasonUnanswerable        TerminationReason = "UNANSWERABLE"
	ReasonContradiction       TerminationReason = "CONTRADICTION"
	ReasonLowSupport          TerminationReason = "LOW_SUPPORT"
	ReasonDependencyFailure   TerminationReason = "DEPENDENCY_FAILURE"
	ReasonRedundancyDetected  TerminationReason = "REDUNDANCY_DETECTED"
	ReasonRecursionLimit      TerminationReason = "RECURSION_LIMIT"
	ReasonConfidenceThreshold TerminationReason = "CONFIDENCE_THRESHOLD"
)

// Termination describes why a run halted.
type Termination struct {
	Reason TerminationReason `json:"reason"`
	Detail string            `json:"detail,omitempty"`
}

func (t *Termination) Error() string {
	return fmt.Sprintf("terminated: %s (%s)", t.Reason, t.Detail)
}

// SubQuestion is one node of a decomposed plan. IDs are monotonically
// assigned within a run and deterministic under a fixed seed.
type SubQuestion struct {
	ID                  int                 `json:"id"`
	Text                string              `json:"text"`
	ParentID            int                 `json:"parent_id,omitempty"`
	Depth               int                 `json:"depth"`
	EstimatedComplexity float64             `json:"estimated_complexity"`
	TerminationChecks   []TerminationReason `json:"termination_checks"`
}

// Plan is the ordered decomposition of a query.
type Plan struct {
	CognitiveLoad  LoadScore     `json:"cognitive_load"`
	SubQuestions   []SubQuestion `json:"sub_questions"`
	// DepGraph maps a sub-question id to the ids it depends on. Every edge
	// points to an earlier id in Order (DAG invariant).
	DepGraph       map[int][]int `json:"depgraph"`
	Order          []int         `json:"order"`
	ParallelGroups [][]int       `json:"parallel_groups"`
	Signature      string        `json:"signature"`
}

// LoadScore breaks cognitive load into its weighted components.
type LoadScore struct {
	SemanticScope  float64 `json:"semantic_scope"`
	ReasoningDepth float64 `json:"reasoning_depth"`
	Ambiguity      float64 `json:"ambiguity"`
	Total          float64 `json:"total"`
}

// OutcomeKind discriminates the result variants of Decompose.
type OutcomeKind string

const (
	OutcomeSimple     OutcomeKind = "simple"
	OutcomeDecomposed OutcomeKind = "decomposed"
	OutcomeTerminated OutcomeKind = "terminated"
)

// Outcome is the explicit result variant of Decompose: a simple
// single-step plan, a decomposed plan, or a termination.
type Outcome struct {
	Kind        OutcomeKind  `json:"kind"`
	Plan        *Plan        `json:"plan,omitempty"`
	Termination *Termination `json:"termination,omitempty"`
}

// ComplexityWeights are the cognitive-load component weights.
type ComplexityWeights struct {
	SemanticScope  float64 `yaml:"semantic_scope"`
	ReasoningDepth float64 `yaml:"reasoning_depth"`
	Ambiguity      float64 `yaml:"ambiguity"`
}

// Config enumerates the LAG engine tunables.
type Config struct {
	MaxDepth            int               `yaml:"max_depth"`
	MaxSubQuestions     int               `yaml:"max_sub_questions"`
	MaxQueryLength      int               `yaml:"max_query_length"`
	CognitiveThreshold  float64           `yaml:"cognitive_threshold"`
	Weights             ComplexityWeights `yaml:"complexity_weights"`
	ConfidenceThreshold float64           `yaml:"confidence_threshold"`
	MaxRetries          int               `yaml:"max_retries"`
	TimeoutMs           int               `yaml:"timeout_ms"`
	Seed                int64             `yaml:"deterministic_seed"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:            5,
		MaxSubQuestions:     9,
		MaxQueryLength:      10000,
		CognitiveThreshold:  0.8,
		Weights:             ComplexityWeights{SemanticScope: 0.3, ReasoningDepth: 0.4, Ambiguity: 0.3},
		ConfidenceThreshold: 0.75,
		MaxRetries:          2,
		TimeoutMs:           30000,
		Seed:                42,
	}
}

// InvalidInputError reports malformed input to Decompose. Decomposition has
// no side effects when it fails this way.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input on %s: %s", e.Field, e.Message)
}
