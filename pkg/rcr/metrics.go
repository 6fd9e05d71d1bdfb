package rcr

import (
	"sync"
	"time"
)

// Health grades for the routing layer.
type Health string

const (
	HealthOptimal           Health = "optimal"
	HealthGood              Health = "good"
	HealthAcceptable        Health = "acceptable"
	HealthNeedsOptimization Health = "needs_optimization"
)

// Metrics keeps rolling routing counters. All methods are safe for
// concurrent use.
type Metrics struct {
	mu                  sync.Mutex
	totalRequests       int64
	successfulRoutes    int64
	failedRoutes        int64
	roleDistribution    map[string]int64
	latencySumMs        float64
	resourceUtilization float64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	TotalRequests       int64            `json:"total_requests"`
	SuccessfulRoutes    int64            `json:"successful_routes"`
	FailedRoutes        int64            `json:"failed_routes"`
	RoleDistribution    map[string]int64 `json:"role_distribution"`
	AverageLatencyMs    float64          `json:"average_latency_ms"`
	ResourceUtilization float64          `json:"resource_utilization"`
	Health              Health           `json:"health"`
}

// NewMetrics creates empty routing metrics.
func NewMetrics() *Metrics {
	return &Metrics{roleDistribution: make(map[string]int64)}
}

// RecordRoute counts one routing decision. A fallback selection counts as
// a failed route: the scorer could not produce a qualified role.
func (m *Metrics) RecordRoute(role string, fallback bool, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRequests++
	if fallback {
		m.failedRoutes++
	} else {
		m.successfulRoutes++
	}
	m.roleDistribution[role]++
	m.latencySumMs += float64(latency.Microseconds()) / 1000
}

// RecordUtilization stores the latest mean role utilization.
func (m *Metrics) RecordUtilization(u float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resourceUtilization = u
}

// Snapshot copies the counters and grades health.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	dist := make(map[string]int64, len(m.roleDistribution))
	for k, v := range m.roleDistribution {
		dist[k] = v
	}

	avgLatency := 0.0
	accuracy := 1.0
	if m.totalRequests > 0 {
		avgLatency = m.latencySumMs / float64(m.totalRequests)
		accuracy = float64(m.successfulRoutes) / float64(m.totalRequests)
	}

	return Snapshot{
		TotalRequests:       m.totalRequests,
		SuccessfulRoutes:    m.successfulRoutes,
		FailedRoutes:        m.failedRoutes,
		RoleDistribution:    dist,
		AverageLatencyMs:    avgLatency,
		ResourceUtilization: m.resourceUtilization,
		Health:              grade(accuracy, avgLatency, m.resourceUtilization),
	}
}

// grade applies the stepwise health thresholds.
func grade(accuracy, latencyMs, utilization float64) Health {
	switch {
	case accuracy >= 0.986 && latencyMs <= 200 && utilization <= 0.75:
		return HealthOptimal
	case accuracy >= 0.95 && latencyMs <= 500 && utilization <= 0.85:
		return HealthGood
	case accuracy >= 0.90 && latencyMs <= 1000 && utilization <= 0.95:
		return HealthAcceptable
	default:
		return HealthNeedsOptimization
	}
}
