// Package tenant carries the per-request tenant identity and the quota
// hook consulted during run preflight.
package tenant

import (
	"context"
	"fmt"

	"github.com/orchid-run/orchid/pkg/ratelimit"
)

// HeaderName is the inbound header the API layer reads.
const HeaderName = "X-Tenant-ID"

// DefaultTenant is used when a request carries no tenant header.
const DefaultTenant = "default"

type contextKey struct{}

// WithTenant attaches the tenant id to the context.
func WithTenant(ctx context.Context, id string) context.Context {
	if id == "" {
		id = DefaultTenant
	}
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the tenant id, falling back to DefaultTenant.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok && id != "" {
		return id
	}
	return DefaultTenant
}

// QuotaChecker decides at preflight whether a tenant may start a run.
type QuotaChecker interface {
	AllowRun(ctx context.Context, tenantID string) error
}

// QuotaExceededError reports a denied quota check.
type QuotaExceededError struct {
	TenantID string
	Reason   string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("tenant %s over quota: %s", e.TenantID, e.Reason)
}

// NoopQuota admits everything. Used when tenancy quotas are not
// configured.
type NoopQuota struct{}

func (NoopQuota) AllowRun(context.Context, string) error { return nil }

// LimiterQuota enforces a per-tenant run budget through the shared rate
// limiter, so tenant quotas and client rate limits live in one store.
type LimiterQuota struct {
	Limiter *ratelimit.Limiter
	Limits  ratelimit.Limits
}

func (q *LimiterQuota) AllowRun(ctx context.Context, tenantID string) error {
	out, err := q.Limiter.Admit(ctx, "tenant:"+tenantID, q.Limits)
	if err != nil {
		return fmt.Errorf("tenant quota check: %w", err)
	}
	if !out.Allowed {
		return &QuotaExceededError{TenantID: tenantID, Reason: out.Reason}
	}
	return nil
}
