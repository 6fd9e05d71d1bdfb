package rcr

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/orchid-run/orchid/pkg/kv"
)

// loadSnapshotTTL bounds how long a stale cross-process load snapshot can
// influence other pods. Counters are advisory; drift is tolerated.
const loadSnapshotTTL = 5 * time.Minute

// selectionThreshold is the minimum normalized score a role must reach.
const selectionThreshold = 0.3

// Step is the unit of routing: one sub-question of a plan.
type Step struct {
	RunID               string
	StepID              int
	Text                string
	EstimatedComplexity float64
}

// Alternative records a role that was scored but not selected.
type Alternative struct {
	Role            string  `json:"role"`
	NormalizedScore float64 `json:"normalized_score"`
}

// Decision is the outcome of routing one step.
type Decision struct {
	RunID              string          `json:"run_id"`
	StepID             int             `json:"step_id"`
	SelectedRole       string          `json:"selected_role"`
	NormalizedScore    float64         `json:"normalized_score"`
	PerDimensionScores DimensionScores `json:"per_dimension_scores"`
	Alternatives       []Alternative   `json:"alternatives"`
	LoadBefore         int             `json:"load_before"`
	Confidence         float64         `json:"confidence"`
	FallbackMode       bool            `json:"fallback_mode"`
	QueryType          QueryType       `json:"query_type"`
}

// Router scores and selects roles. Safe for concurrent use.
type Router struct {
	roles  []Role
	byName map[string]*Role
	store  kv.Store // nil disables cross-process snapshots
	logger *slog.Logger

	mu    sync.Mutex
	loads map[string]int

	metrics *Metrics
}

// NewRouter creates a router over the given roles. store may be nil; load
// snapshots are then process-local only.
func NewRouter(roles []Role, store kv.Store) *Router {
	r := &Router{
		roles:   roles,
		byName:  make(map[string]*Role, len(roles)),
		store:   store,
		logger:  slog.Default().With("component", "rcr-router"),
		loads:   make(map[string]int, len(roles)),
		metrics: NewMetrics(),
	}
	for i := range r.roles {
		r.byName[r.roles[i].Name] = &r.roles[i]
	}
	return r
}

// Roles returns the static role set.
func (r *Router) Roles() []Role { return r.roles }

// Metrics returns the router's rolling counters.
func (r *Router) Metrics() *Metrics { return r.metrics }

// Load returns the current advisory load for a role.
func (r *Router) Load(role string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loads[role]
}

// SmallestCapacity returns the minimum load capacity across the named
// roles; the pipeline bounds a group's fan-out with it.
func (r *Router) SmallestCapacity(names []string) int {
	min := 0
	for _, n := range names {
		if role, ok := r.byName[n]; ok {
			if min == 0 || role.LoadCapacity < min {
				min = role.LoadCapacity
			}
		}
	}
	if min == 0 {
		min = 1
	}
	return min
}

// Route scores every role for the step and selects per the policy: among
// roles with normalized score >= 0.3 and load below capacity, the highest
// score wins; ties resolve by canonical role order. If nothing qualifies
// the coordinator is selected in fallback mode. On selection the role's
// advisory load counter is incremented and snapshotted to the KV store.
func (r *Router) Route(ctx context.Context, step Step, bundle map[string]any, req Requirements) Decision {
	started := time.Now()

	qa := AnalyzeQuery(step.Text, step.EstimatedComplexity)
	ca := AnalyzeContext(bundle)

	r.mu.Lock()
	type scored struct {
		role       *Role
		dims       DimensionScores
		raw        float64
		normalized float64
		load       int
	}
	results := make([]scored, 0, len(r.roles))
	maxRaw := 0.0
	for i := range r.roles {
		role := &r.roles[i]
		load := r.loads[role.Name]
		dims := scoreRole(role, load, qa, ca, req)
		raw := dims.Weighted()
		if raw > maxRaw {
			maxRaw = raw
		}
		results = append(results, scored{role: role, dims: dims, raw: raw, load: load})
	}
	for i := range results {
		if maxRaw > 0 {
			results[i].normalized = results[i].raw / maxRaw
		}
	}

	// Highest normalized score wins; canonical order breaks ties.
	rank := make(map[string]int, len(canonicalOrder))
	for i, name := range canonicalOrder {
		rank[name] = i
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].normalized != results[j].normalized {
			return results[i].normalized > results[j].normalized
		}
		return rank[results[i].role.Name] < rank[results[j].role.Name]
	})

	var winner *scored
	for i := range results {
		c := &results[i]
		if c.normalized >= selectionThreshold && c.load < c.role.LoadCapacity {
			winner = c
			break
		}
	}

	fallback := false
	if winner == nil {
		fallback = true
		for i := range results {
			if results[i].role.Name == RoleCoordinator {
				winner = &results[i]
				break
			}
		}
	}

	alternatives := make([]Alternative, 0, len(results)-1)
	for i := range results {
		if results[i].role.Name == winner.role.Name {
			continue
		}
		alternatives = append(alternatives, Alternative{
			Role:            results[i].role.Name,
			NormalizedScore: results[i].normalized,
		})
	}

	loadBefore := winner.load
	r.loads[winner.role.Name]++
	r.mu.Unlock()

	r.snapshotLoad(ctx, winner.role.Name)

	decision := Decision{
		RunID:              step.RunID,
		StepID:             step.StepID,
		SelectedRole:       winner.role.Name,
		NormalizedScore:    winner.normalized,
		PerDimensionScores: winner.dims,
		Alternatives:       alternatives,
		LoadBefore:         loadBefore,
		Confidence:         winner.normalized * winner.dims.Capability,
		FallbackMode:       fallback,
		QueryType:          qa.QueryType,
	}

	r.metrics.RecordRoute(decision.SelectedRole, fallback, time.Since(started))
	r.metrics.RecordUtilization(r.utilization())

	return decision
}

// Release decrements the advisory load counter after a step finishes.
func (r *Router) Release(ctx context.Context, role string) {
	r.mu.Lock()
	if r.loads[role] > 0 {
		r.loads[role]--
	}
	r.mu.Unlock()
	r.snapshotLoad(ctx, role)
}

// utilization is the mean load fraction across roles.
func (r *Router) utilization() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0.0
	for _, role := range r.roles {
		total += float64(r.loads[role.Name]) / float64(role.LoadCapacity)
	}
	return total / float64(len(r.roles))
}

// snapshotLoad writes the advisory counter to the KV store so sibling
// processes converge. Best-effort: failures are logged, never surfaced.
func (r *Router) snapshotLoad(ctx context.Context, role string) {
	if r.store == nil {
		return
	}
	r.mu.Lock()
	load := r.loads[role]
	r.mu.Unlock()
	key := fmt.Sprintf("rcr:load:%s", role)
	if err := r.store.Set(ctx, key, fmt.Sprintf("%d", load), loadSnapshotTTL); err != nil {
		r.logger.Warn("Failed to snapshot role load", "role", role, "error", err)
	}
}
