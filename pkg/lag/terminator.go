package lag

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// equalityClaim matches "prove/show/demonstrate ... N = M" style requests.
var equalityClaim = regexp.MustCompile(
	`(?i)\b(?:prove|show|demonstrate|verify)\b.*?(\d+(?:\.\d+)?)\s*(?:=|==|equals?)\s*(\d+(?:\.\d+)?)`)

// Phrases that denote logically impossible objects.
var contradictionPhrases = []string{
	"square circle",
	"married bachelor",
	"largest prime number",
	"true and false at the same time",
}

// Phrases for questions no amount of decomposition can answer.
var unanswerablePhrases = []string{
	"winning lottery numbers",
	"what am i thinking",
	"exact date of your death",
	"exact day you will die",
}

// ScanQuery checks a query for pre-execution terminator conditions. The
// first triggered condition wins; nil means the query may proceed.
func ScanQuery(query string) *Termination {
	lower := strings.ToLower(query)

	for _, phrase := range unanswerablePhrases {
		if strings.Contains(lower, phrase) {
			return &Termination{
				Reason: ReasonUnanswerable,
				Detail: fmt.Sprintf("query asks for %q", phrase),
			}
		}
	}

	if m := equalityClaim.FindStringSubmatch(query); m != nil {
		a, errA := strconv.ParseFloat(m[1], 64)
		b, errB := strconv.ParseFloat(m[2], 64)
		if errA == nil && errB == nil && a != b {
			return &Termination{
				Reason: ReasonContradiction,
				Detail: fmt.Sprintf("query asserts %s equals %s", m[1], m[2]),
			}
		}
	}

	for _, phrase := range contradictionPhrases {
		if strings.Contains(lower, phrase) {
			return &Termination{
				Reason: ReasonContradiction,
				Detail: fmt.Sprintf("query presupposes %q", phrase),
			}
		}
	}

	return nil
}

// Markers in step output that indicate the role could not support an answer.
var lowSupportMarkers = []string{
	"no information available",
	"cannot find",
	"insufficient evidence",
	"unable to determine",
}

// CheckOutput evaluates post-execution terminator conditions for one step.
// confidence is the role adapter's self-reported confidence in [0,1].
func CheckOutput(output string, confidence float64, checks []TerminationReason, cfg Config) *Termination {
	for _, check := range checks {
		switch check {
		case ReasonLowSupport:
			lower := strings.ToLower(output)
			for _, marker := range lowSupportMarkers {
				if strings.Contains(lower, marker) {
					return &Termination{
						Reason: ReasonLowSupport,
						Detail: fmt.Sprintf("output reports %q", marker),
					}
				}
			}
		case ReasonConfidenceThreshold:
			if confidence < cfg.ConfidenceThreshold {
				return &Termination{
					Reason: ReasonConfidenceThreshold,
					Detail: fmt.Sprintf("confidence %.3f below threshold %.3f", confidence, cfg.ConfidenceThreshold),
				}
			}
		case ReasonContradiction:
			if t := ScanQuery(output); t != nil && t.Reason == ReasonContradiction {
				return t
			}
		}
	}
	return nil
}
