// Package rcr implements Role-aware Context Routing: multi-dimensional
// scoring of a small set of specialized processing roles for each plan
// step, load-aware selection, and routing metrics.
package rcr

// Role describes one processing role. The set is static per process.
type Role struct {
	Name              string          `json:"name"`
	Capabilities      map[string]bool `json:"capabilities"`
	ComplexityMax     float64         `json:"complexity_max"`
	LoadCapacity      int             `json:"load_capacity"`
	ResponseTimeAvgMs int             `json:"response_time_avg_ms"`
}

// Has reports whether the role advertises a capability.
func (r *Role) Has(capability string) bool { return r.Capabilities[capability] }

// Role names.
const (
	RoleAnalyst     = "analyst"
	RoleSynthesizer = "synthesizer"
	RoleSpecialist  = "specialist"
	RoleCoordinator = "coordinator"
	RoleValidator   = "validator"
)

// canonicalOrder is the stable tie-break order for selection.
var canonicalOrder = []string{
	RoleCoordinator, RoleValidator, RoleAnalyst, RoleSynthesizer, RoleSpecialist,
}

func caps(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// DefaultRoles returns the five canonical roles. ComplexityMax is the load
// band the role handles best; the complexity dimension peaks where step
// load matches it, so the coordinator's low ceiling makes it the natural
// home for trivial steps and the selection fallback.
func DefaultRoles() []Role {
	return []Role{
		{
			Name:              RoleCoordinator,
			Capabilities:      caps("coordination", "planning", "delegation", "general"),
			ComplexityMax:     0.2,
			LoadCapacity:      12,
			ResponseTimeAvgMs: 1200,
		},
		{
			Name:              RoleValidator,
			Capabilities:      caps("validation", "verification", "fact_check"),
			ComplexityMax:     0.5,
			LoadCapacity:      10,
			ResponseTimeAvgMs: 1800,
		},
		{
			Name:              RoleAnalyst,
			Capabilities:      caps("analysis", "research", "decomposition", "comparison"),
			ComplexityMax:     0.7,
			LoadCapacity:      8,
			ResponseTimeAvgMs: 2500,
		},
		{
			Name:              RoleSynthesizer,
			Capabilities:      caps("synthesis", "aggregation", "explanation", "generation"),
			ComplexityMax:     0.85,
			LoadCapacity:      6,
			ResponseTimeAvgMs: 3500,
		},
		{
			Name:              RoleSpecialist,
			Capabilities:      caps("domain_expertise", "optimization", "deep_dive"),
			ComplexityMax:     0.95,
			LoadCapacity:      4,
			ResponseTimeAvgMs: 5000,
		},
	}
}
