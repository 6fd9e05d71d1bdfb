package rcr

import (
	"sort"
	"strings"
	"unicode"
)

// QueryType classifies the shape of a sub-question.
type QueryType string

const (
	QueryInterrogative QueryType = "interrogative"
	QueryAnalytical    QueryType = "analytical"
	QueryGenerative    QueryType = "generative"
	QueryExplanatory   QueryType = "explanatory"
	QueryOptimization  QueryType = "optimization"
	QueryGeneral       QueryType = "general"
)

// QueryAnalysis is the router's view of one sub-question.
type QueryAnalysis struct {
	Complexity         float64   `json:"complexity"`
	DomainSpecificity  float64   `json:"domain_specificity"`
	InformationDensity float64   `json:"information_density"`
	QueryType          QueryType `json:"query_type"`
	Concepts           []string  `json:"concepts"`
}

// ContextAnalysis is the router's view of the context bundle.
type ContextAnalysis struct {
	Richness             float64  `json:"richness"`
	RequiredCapabilities []string `json:"required_capabilities"`
	Complexity           float64  `json:"complexity"`
	TemporalRequirements bool     `json:"temporal_requirements"`
	NestedLevels         int      `json:"nested_levels"`
}

var (
	analyticalHeads   = []string{"compare", "analyze", "evaluate", "assess", "contrast"}
	generativeHeads   = []string{"create", "generate", "write", "design", "compose", "draft"}
	explanatoryHeads  = []string{"explain", "describe", "why", "how", "summarize"}
	optimizationHeads = []string{"optimize", "improve", "minimize", "maximize", "tune"}
	interrogatives    = []string{"what", "which", "who", "whom", "where", "when", "is", "are", "does", "do"}

	// Fixed domain vocabularies for specificity scoring. The source keeps
	// these hard-coded; extensibility is an open question we resolve by
	// keeping them fixed (see DESIGN.md).
	domainVocabularies = map[string][]string{
		"systems":  {"cache", "latency", "throughput", "consensus", "replication", "queue", "shard"},
		"networks": {"rate", "limiting", "window", "bucket", "protocol", "packet", "backoff"},
		"data":     {"schema", "index", "query", "transaction", "durability", "consistency"},
		"math":     {"prove", "theorem", "equation", "derivative", "integral", "matrix"},
	}

	// Context bundle keys that imply a capability the role must carry.
	contextCapabilityHints = map[string]string{
		"documents":  "research",
		"history":    "aggregation",
		"metrics":    "analysis",
		"domain":     "domain_expertise",
		"validation": "verification",
		"plan":       "planning",
	}

	temporalKeys = []string{"deadline", "time", "schedule", "until", "window"}
)

func tokenizeQuery(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;:?!()\"'", r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.Trim(f, "."); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func matchesAny(token string, heads []string) bool {
	for _, h := range heads {
		if token == h {
			return true
		}
	}
	return false
}

// classify picks the query type by head precedence: an analytical head
// anywhere beats an explanatory one, which beats the rest.
func classify(tokens []string) QueryType {
	var hasAnalytical, hasExplanatory, hasGenerative, hasOptimization bool
	for _, t := range tokens {
		switch {
		case matchesAny(t, analyticalHeads):
			hasAnalytical = true
		case matchesAny(t, explanatoryHeads):
			hasExplanatory = true
		case matchesAny(t, generativeHeads):
			hasGenerative = true
		case matchesAny(t, optimizationHeads):
			hasOptimization = true
		}
	}
	switch {
	case hasAnalytical:
		return QueryAnalytical
	case hasExplanatory:
		return QueryExplanatory
	case hasOptimization:
		return QueryOptimization
	case hasGenerative:
		return QueryGenerative
	case len(tokens) > 0 && matchesAny(tokens[0], interrogatives):
		return QueryInterrogative
	default:
		return QueryGeneral
	}
}

// capabilityForType maps a query type to the capability it demands.
var capabilityForType = map[QueryType]string{
	QueryAnalytical:   "analysis",
	QueryExplanatory:  "explanation",
	QueryGenerative:   "generation",
	QueryOptimization: "optimization",
}

// AnalyzeQuery extracts routing features from a sub-question. complexity
// is taken from the plan when the caller provides it (> 0); otherwise a
// local density estimate stands in.
func AnalyzeQuery(text string, plannedComplexity float64) QueryAnalysis {
	tokens := tokenizeQuery(text)

	conceptSet := make(map[string]bool)
	for _, t := range tokens {
		for _, part := range strings.Split(t, "-") {
			if len(part) > 3 {
				conceptSet[part] = true
			}
		}
	}
	concepts := make([]string, 0, len(conceptSet))
	for c := range conceptSet {
		concepts = append(concepts, c)
	}
	sort.Strings(concepts)

	domainHits := 0
	for _, vocab := range domainVocabularies {
		for _, term := range vocab {
			if conceptSet[term] {
				domainHits++
			}
		}
	}

	complexity := plannedComplexity
	if complexity <= 0 {
		complexity = clip01(float64(len(conceptSet)) / 20)
	}

	density := 0.0
	if len(tokens) > 0 {
		density = clip01(float64(len(conceptSet)) / float64(len(tokens)))
	}

	return QueryAnalysis{
		Complexity:         complexity,
		DomainSpecificity:  clip01(float64(domainHits) / 5),
		InformationDensity: density,
		QueryType:          classify(tokens),
		Concepts:           concepts,
	}
}

// AnalyzeContext extracts routing features from the context bundle.
func AnalyzeContext(context map[string]any) ContextAnalysis {
	leaves, depth := walkContext(context, 1)

	capSet := make(map[string]bool)
	temporal := false
	collectKeys(context, func(key string) {
		if c, ok := contextCapabilityHints[key]; ok {
			capSet[c] = true
		}
		for _, tk := range temporalKeys {
			if key == tk {
				temporal = true
			}
		}
	})
	required := make([]string, 0, len(capSet))
	for c := range capSet {
		required = append(required, c)
	}
	sort.Strings(required)

	if len(context) == 0 {
		depth = 0
	}

	return ContextAnalysis{
		Richness:             clip01(float64(leaves) / 10),
		RequiredCapabilities: required,
		Complexity:           clip01(float64(depth) / 5),
		TemporalRequirements: temporal,
		NestedLevels:         depth,
	}
}

func walkContext(m map[string]any, level int) (leaves, maxDepth int) {
	maxDepth = level
	for _, v := range m {
		if nested, ok := v.(map[string]any); ok {
			l, d := walkContext(nested, level+1)
			leaves += l
			if d > maxDepth {
				maxDepth = d
			}
			continue
		}
		leaves++
	}
	return leaves, maxDepth
}

func collectKeys(m map[string]any, fn func(string)) {
	for k, v := range m {
		fn(strings.ToLower(k))
		if nested, ok := v.(map[string]any); ok {
			collectKeys(nested, fn)
		}
	}
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
