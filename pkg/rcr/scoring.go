package rcr

// Dimension weights. They sum to 1; the capability dimension carries the
// "domain" weight.
const (
	weightComplexity   = 0.25
	weightCapability   = 0.20
	weightResponseTime = 0.20
	weightResource     = 0.15
	weightQuality      = 0.10
	weightContext      = 0.10
)

// DimensionScores holds the six per-role scores in [0,1].
type DimensionScores struct {
	Complexity   float64 `json:"complexity"`
	Capability   float64 `json:"capability"`
	ResponseTime float64 `json:"response_time"`
	Resource     float64 `json:"resource"`
	Quality      float64 `json:"quality"`
	Context      float64 `json:"context"`
}

// Weighted combines the dimensions into the raw role score.
func (d DimensionScores) Weighted() float64 {
	return weightComplexity*d.Complexity +
		weightCapability*d.Capability +
		weightResponseTime*d.ResponseTime +
		weightResource*d.Resource +
		weightQuality*d.Quality +
		weightContext*d.Context
}

// Requirements are optional caller constraints on routing.
type Requirements struct {
	MaxResponseTimeMs    int      `json:"max_response_time_ms,omitempty"`
	MinQuality           float64  `json:"min_quality,omitempty"`
	RequiredCapabilities []string `json:"required_capabilities,omitempty"`
}

// complexityScore peaks where the step load matches the role's band.
func complexityScore(load, complexityMax float64) float64 {
	if complexityMax <= 0 {
		return 0
	}
	if load <= complexityMax {
		return clip01(1 - (complexityMax-load)/complexityMax)
	}
	return clip01(1 - (load - complexityMax))
}

// capabilityScore is the fraction of required capabilities the role has;
// a step requiring nothing scores 1 everywhere.
func capabilityScore(role *Role, required []string) float64 {
	if len(required) == 0 {
		return 1
	}
	have := 0
	for _, c := range required {
		if role.Has(c) {
			have++
		}
	}
	return float64(have) / float64(len(required))
}

func responseTimeScore(avgMs, requiredMs int) float64 {
	if requiredMs <= 0 {
		return 1
	}
	avg, req := float64(avgMs), float64(requiredMs)
	if avg <= req {
		return clip01(1 - 0.5*(avg/req))
	}
	return clip01(1 - (avg-req)/req)
}

// resourceScore is piecewise linear in utilization.
func resourceScore(load, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	u := float64(load) / float64(capacity)
	switch {
	case u < 0.5:
		return 1
	case u < 0.75:
		return 1 - 0.3*(u-0.5)/0.25
	default:
		return clip01(1 - u)
	}
}

func qualityScore(complexityMax, minQuality float64) float64 {
	if minQuality <= 0 || complexityMax >= minQuality {
		return 1
	}
	return complexityMax / minQuality
}

func contextScore(richness, complexityMax float64) float64 {
	if richness <= complexityMax {
		return 1
	}
	return clip01(1 - (richness - complexityMax))
}

// scoreRole computes all six dimensions for one role.
func scoreRole(role *Role, load int, qa QueryAnalysis, ca ContextAnalysis, req Requirements) DimensionScores {
	required := make([]string, 0, len(req.RequiredCapabilities)+len(ca.RequiredCapabilities)+1)
	required = append(required, req.RequiredCapabilities...)
	required = append(required, ca.RequiredCapabilities...)
	if c, ok := capabilityForType[qa.QueryType]; ok {
		required = append(required, c)
	}

	return DimensionScores{
		Complexity:   complexityScore(qa.Complexity, role.ComplexityMax),
		Capability:   capabilityScore(role, required),
		ResponseTime: responseTimeScore(role.ResponseTimeAvgMs, req.MaxResponseTimeMs),
		Resource:     resourceScore(load, role.LoadCapacity),
		Quality:      qualityScore(role.ComplexityMax, req.MinQuality),
		Context:      contextScore(ca.Richness, role.ComplexityMax),
	}
}
