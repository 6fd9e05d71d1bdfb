// Package metrics defines the Prometheus metrics for the orchestrator.
//
// Metric naming follows Prometheus conventions: orchid_ prefix, _total
// suffix for counters, _seconds suffix for duration histograms. All
// metrics register with the default registry and are served on
// GET /health/metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RunsTotal counts runs by terminal status.
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orchid_runs_total",
			Help: "Total runs by terminal status.",
		},
		[]string{"status"},
	)

	// RunDurationSeconds is a histogram of wall-clock run duration.
	RunDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orchid_run_duration_seconds",
			Help:    "Duration of runs in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		},
	)

	// StepsTotal counts executed steps per run terminal status.
	StepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orchid_steps_total",
			Help: "Total step executions by run terminal status.",
		},
		[]string{"status"},
	)

	// TokensUsedTotal counts tokens consumed across all runs.
	TokensUsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orchid_tokens_used_total",
			Help: "Total tokens consumed by role adapter calls.",
		},
	)

	// RouteDecisionsTotal counts routing decisions by chosen role.
	RouteDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orchid_route_decisions_total",
			Help: "Total routing decisions by chosen role.",
		},
		[]string{"role"},
	)

	// RateLimitDenialsTotal counts admission denials by algorithm and reason.
	RateLimitDenialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orchid_ratelimit_denials_total",
			Help: "Total rate limit denials by algorithm and reason.",
		},
		[]string{"algorithm", "reason"},
	)

	// BreakerState is the current circuit state per target
	// (0 closed, 1 half-open, 2 open).
	BreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orchid_breaker_state",
			Help: "Circuit breaker state per target (0 closed, 1 half-open, 2 open).",
		},
		[]string{"target"},
	)

	// WebhookDeliveriesTotal counts delivery outcomes.
	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orchid_webhook_deliveries_total",
			Help: "Total webhook delivery outcomes (delivered, failed, dead_letter).",
		},
		[]string{"outcome"},
	)

	// CacheHits is the cumulative hit count per cache tier.
	CacheHits = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orchid_cache_hits",
			Help: "Cumulative cache hits per tier.",
		},
		[]string{"tier"},
	)

	// CacheMisses is the cumulative full-miss count.
	CacheMisses = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orchid_cache_misses",
			Help: "Cumulative cache misses across all tiers.",
		},
	)

	// ActiveRuns is the number of runs currently executing on this pod.
	ActiveRuns = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orchid_active_runs",
			Help: "Number of runs currently executing.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RunsTotal,
		RunDurationSeconds,
		StepsTotal,
		TokensUsedTotal,
		RouteDecisionsTotal,
		RateLimitDenialsTotal,
		BreakerState,
		WebhookDeliveriesTotal,
		CacheHits,
		CacheMisses,
		ActiveRuns,
	)
}

// RecordRunComplete records metrics for a run that reached a terminal
// status.
func RecordRunComplete(status string, duration time.Duration, steps, tokens int) {
	RunsTotal.WithLabelValues(status).Inc()
	RunDurationSeconds.Observe(duration.Seconds())
	StepsTotal.WithLabelValues(status).Add(float64(steps))
	TokensUsedTotal.Add(float64(tokens))
}

// RecordRouteDecision records a single routing decision.
func RecordRouteDecision(role string) {
	RouteDecisionsTotal.WithLabelValues(role).Inc()
}

// RecordRateLimitDenial records a denied admission.
func RecordRateLimitDenial(algorithm, reason string) {
	RateLimitDenialsTotal.WithLabelValues(algorithm, reason).Inc()
}

// BreakerListener returns a state listener that keeps the breaker state
// gauge current.
func BreakerListener() func(target, from, to string) {
	return func(target, _, to string) {
		var v float64
		switch to {
		case "half-open":
			v = 1
		case "open":
			v = 2
		}
		BreakerState.WithLabelValues(target).Set(v)
	}
}

// RecordDelivery records a webhook delivery outcome.
func RecordDelivery(outcome string) {
	WebhookDeliveriesTotal.WithLabelValues(outcome).Inc()
}

// SyncCacheStats publishes the cache's cumulative counters.
func SyncCacheStats(l1, l2, l3, misses int64) {
	CacheHits.WithLabelValues("l1").Set(float64(l1))
	CacheHits.WithLabelValues("l2").Set(float64(l2))
	CacheHits.WithLabelValues("l3").Set(float64(l3))
	CacheMisses.Set(float64(misses))
}

// SetActiveRuns publishes the current in-flight run count.
func SetActiveRuns(n int) {
	ActiveRuns.Set(float64(n))
}
