package lag

import (
	"strings"
	"unicode"
)

// Word classes for cognitive-load scoring. Terms are stored in singular,
// lowercase form; matching trims a trailing "s" so plural forms count.
var (
	logicalOps = []string{
		"if", "then", "because", "therefore", "however", "although",
		"unless", "when", "while",
	}

	complexityIndicators = []string{
		"how", "why", "compare", "analyze", "evaluate", "explain",
		"assess", "contrast", "tradeoff", "justify", "derive", "prove",
	}

	// Multi-word indicators checked against the whole normalized text.
	phraseIndicators = []string{"what if", "pros and cons"}

	pronouns = []string{
		"it", "they", "them", "this", "that", "these", "those",
		"he", "she", "its", "their",
	}

	vagueTerms = []string{
		"some", "several", "various", "many", "few", "thing", "stuff",
		"each", "relevant", "appropriate", "better", "etc",
	}

	relationshipMarkers = []string{
		"and", "or", "between", "versus", "vs", "than", "whereas",
		"against", "when", "while",
	}

	stopwords = map[string]bool{
		"a": true, "an": true, "the": true, "is": true, "are": true,
		"was": true, "were": true, "be": true, "been": true, "of": true,
		"in": true, "on": true, "at": true, "to": true, "for": true,
		"and": true, "or": true, "but": true, "with": true, "by": true,
		"from": true, "as": true, "do": true, "does": true, "did": true,
		"what": true, "which": true, "who": true, "whom": true,
		"how": true, "why": true, "when": true, "where": true,
		"can": true, "could": true, "should": true, "would": true,
		"will": true, "shall": true, "may": true, "might": true,
		"use": true, "between": true, "each": true, "please": true,
	}
)

// tokenize lowercases, strips surrounding punctuation, and singularizes.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == ':' ||
			r == '?' || r == '!' || r == '(' || r == ')' || r == '"' || r == '\''
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// singular trims a plural "s" from tokens longer than three runes, so
// "tradeoffs" matches "tradeoff" without a stemmer.
func singular(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}

func countTerms(tokens []string, terms []string) int {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	n := 0
	for _, tok := range tokens {
		if set[tok] || set[singular(tok)] {
			n++
		}
	}
	return n
}

// contentTokens returns unique non-stopword tokens, hyphen compounds split.
func contentTokens(tokens []string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range tokens {
		for _, part := range strings.Split(tok, "-") {
			part = singular(part)
			if part == "" || stopwords[part] {
				continue
			}
			out[part] = true
		}
	}
	return out
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

// countContextPronouns counts pronoun tokens inside string values of the
// context bundle (one level deep; nested maps are descended).
func countContextPronouns(context map[string]any) int {
	n := 0
	for _, v := range context {
		switch val := v.(type) {
		case string:
			n += countTerms(tokenize(val), pronouns)
		case map[string]any:
			n += countContextPronouns(val)
		}
	}
	return n
}

// Score computes the cognitive load of a query against an optional context
// bundle. Each component is clipped to [0,1] before weighting.
func (e *Engine) Score(query string, context map[string]any) LoadScore {
	tokens := tokenize(query)
	lower := strings.ToLower(query)

	// semantic_scope: mean of word count, unique concepts, relationships.
	wordScore := clip01(float64(len(tokens)) / 50)
	conceptScore := clip01(float64(len(contentTokens(tokens))) / 10)
	relScore := clip01(float64(countTerms(tokens, relationshipMarkers)) / 5)
	semantic := (wordScore + conceptScore + relScore) / 3

	// reasoning_depth: logical operators and complexity indicators.
	ops := countTerms(tokens, logicalOps)
	indicators := countTerms(tokens, complexityIndicators)
	for _, phrase := range phraseIndicators {
		indicators += strings.Count(lower, phrase)
	}
	reasoning := clip01(0.1*float64(ops) + 0.2*float64(indicators))

	// ambiguity: pronouns needing context resolution plus vague terms. A
	// pronoun counts whether or not the bundle could resolve it; resolution
	// quality is the router's concern, not the scorer's.
	pronounCount := countTerms(tokens, pronouns)
	pronounCount += countContextPronouns(context)
	vague := countTerms(tokens, vagueTerms)
	ambiguity := clip01(0.1*float64(pronounCount) + 0.15*float64(vague))

	w := e.cfg.Weights
	total := clip01(w.SemanticScope*semantic + w.ReasoningDepth*reasoning + w.Ambiguity*ambiguity)

	return LoadScore{
		SemanticScope:  semantic,
		ReasoningDepth: reasoning,
		Ambiguity:      ambiguity,
		Total:          total,
	}
}
