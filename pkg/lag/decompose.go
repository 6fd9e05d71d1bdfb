package lag

import (
	"sort"
	"strings"
)

// Clause separators, checked in order. Splitting happens before heads are
// examined, so "compare X, and explain Y" yields two fragments.
var clauseSeparators = []string{
	"; ",
	", and then ",
	" and then ",
	", and ",
	", then ",
	". ",
}

// Directive or interrogative heads that make a fragment independently
// askable. A fragment without a head is folded into its predecessor.
var questionHeads = []string{
	"what", "how", "why", "when", "where", "which", "who",
	"compare", "explain", "analyze", "evaluate", "describe", "assess",
	"contrast", "list", "identify", "summarize", "define", "derive",
	"prove", "estimate", "recommend",
}

// uncertainty is a topic fragment not fully specified by its siblings.
type uncertainty struct {
	text     string
	position int // index in extraction order
}

func hasQuestionHead(fragment string) bool {
	tokens := tokenize(fragment)
	if len(tokens) == 0 {
		return false
	}
	for _, head := range questionHeads {
		if tokens[0] == head {
			return true
		}
	}
	return false
}

// identifyUncertainties splits the query into independently askable
// fragments in textual order. The heuristics are deliberately lexical:
// determinism matters more than linguistic finesse here.
func identifyUncertainties(query string) []uncertainty {
	fragments := []string{strings.TrimSpace(query)}
	for _, sep := range clauseSeparators {
		next := make([]string, 0, len(fragments))
		for _, f := range fragments {
			for _, part := range strings.Split(f, sep) {
				part = strings.TrimSpace(part)
				if part != "" {
					next = append(next, part)
				}
			}
		}
		fragments = next
	}

	// Fold headless fragments into their predecessor: they qualify an
	// earlier ask rather than posing a new one.
	merged := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if len(merged) > 0 && !hasQuestionHead(f) {
			merged[len(merged)-1] = merged[len(merged)-1] + ", " + f
			continue
		}
		merged = append(merged, f)
	}

	out := make([]uncertainty, 0, len(merged))
	for i, text := range merged {
		out = append(out, uncertainty{text: normalizeFragment(text), position: i})
	}
	return out
}

// normalizeFragment trims trailing sentence punctuation and collapses
// internal whitespace so the same ask always yields the same text.
func normalizeFragment(text string) string {
	text = strings.TrimRight(strings.TrimSpace(text), ".?! ")
	return strings.Join(strings.Fields(text), " ")
}

// generateSubQuestions turns uncertainties into sub-questions, pruned to
// cfg.MaxSubQuestions by (complexity desc, position asc, id asc). IDs are
// assigned in textual order before pruning so that the same query always
// produces the same ids.
func (e *Engine) generateSubQuestions(uncertainties []uncertainty) []SubQuestion {
	subs := make([]SubQuestion, 0, len(uncertainties))
	for i, u := range uncertainties {
		load := e.Score(u.text, nil)
		subs = append(subs, SubQuestion{
			ID:                  i + 1,
			Text:                u.text,
			Depth:               1,
			EstimatedComplexity: load.Total,
			TerminationChecks: []TerminationReason{
				ReasonContradiction,
				ReasonLowSupport,
				ReasonConfidenceThreshold,
			},
		})
	}

	if len(subs) <= e.cfg.MaxSubQuestions {
		return subs
	}

	pruned := make([]SubQuestion, len(subs))
	copy(pruned, subs)
	sort.SliceStable(pruned, func(i, j int) bool {
		if pruned[i].EstimatedComplexity != pruned[j].EstimatedComplexity {
			return pruned[i].EstimatedComplexity > pruned[j].EstimatedComplexity
		}
		return pruned[i].ID < pruned[j].ID // position and id coincide here
	})
	pruned = pruned[:e.cfg.MaxSubQuestions]

	// Restore textual order for downstream ordering.
	sort.Slice(pruned, func(i, j int) bool { return pruned[i].ID < pruned[j].ID })
	return pruned
}
