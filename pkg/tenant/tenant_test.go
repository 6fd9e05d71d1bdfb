package tenant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/kv"
	"github.com/orchid-run/orchid/pkg/ratelimit"
)

func TestContextCarriage(t *testing.T) {
	ctx := WithTenant(context.Background(), "acme")
	assert.Equal(t, "acme", FromContext(ctx))
}

func TestContextDefaults(t *testing.T) {
	assert.Equal(t, DefaultTenant, FromContext(context.Background()))
	assert.Equal(t, DefaultTenant, FromContext(WithTenant(context.Background(), "")))
}

func TestLimiterQuota(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	q := &LimiterQuota{
		Limiter: ratelimit.NewLimiter(kv.NewMemory(clk), clk),
		Limits:  ratelimit.Limits{Algorithm: ratelimit.FixedWindow, Limit: 2, Window: time.Minute},
	}
	ctx := context.Background()

	require.NoError(t, q.AllowRun(ctx, "acme"))
	require.NoError(t, q.AllowRun(ctx, "acme"))

	err := q.AllowRun(ctx, "acme")
	var quotaErr *QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, "acme", quotaErr.TenantID)

	// Other tenants keep their own budget.
	assert.NoError(t, q.AllowRun(ctx, "globex"))
}
