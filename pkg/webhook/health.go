package webhook

import (
	"context"
	"log/slog"
	"time"

	"github.com/orchid-run/orchid/pkg/clock"
)

// Auto-disable rule over the rolling window: an endpoint is disabled when
// it has accumulated at least minDeadLetters and dead letters make up more
// than disableRatio of its attempts.
const (
	healthWindow   = 24 * time.Hour
	minDeadLetters = 10
	disableRatio   = 0.8
)

// DisabledReason is written to endpoints the sweep turns off.
const DisabledReason = "High failure rate"

// HealthSweeper periodically evaluates endpoint failure rates and disables
// endpoints that are effectively dead. The conditional disable in the
// store guarantees the flip happens exactly once.
type HealthSweeper struct {
	store  Store
	clk    clock.Clock
	logger *slog.Logger
}

// NewHealthSweeper creates a sweeper over the given store.
func NewHealthSweeper(store Store, clk clock.Clock) *HealthSweeper {
	return &HealthSweeper{
		store:  store,
		clk:    clk,
		logger: slog.Default().With("component", "webhook"),
	}
}

// Sweep evaluates every active endpoint once and returns the ids it
// disabled.
func (h *HealthSweeper) Sweep(ctx context.Context) ([]string, error) {
	ids, err := h.store.ActiveEndpointIDs(ctx)
	if err != nil {
		return nil, err
	}

	since := h.clk.Now().Add(-healthWindow)
	var disabled []string
	for _, id := range ids {
		stats, err := h.store.DeliveryStats(ctx, id, since)
		if err != nil {
			h.logger.Warn("Failed to read delivery stats", "webhook_id", id, "error", err)
			continue
		}
		if stats.DeadLetters < minDeadLetters || stats.Attempts == 0 {
			continue
		}
		if float64(stats.DeadLetters)/float64(stats.Attempts) <= disableRatio {
			continue
		}

		flipped, err := h.store.DisableEndpoint(ctx, id, DisabledReason)
		if err != nil {
			h.logger.Error("Failed to disable endpoint", "webhook_id", id, "error", err)
			continue
		}
		if flipped {
			h.logger.Info("Disabled endpoint for high failure rate",
				"webhook_id", id,
				"dead_letters", stats.DeadLetters,
				"attempts", stats.Attempts)
			disabled = append(disabled, id)
		}
	}
	return disabled, nil
}

// Run sweeps on the given interval until the context is cancelled.
func (h *HealthSweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := h.Sweep(ctx); err != nil {
				h.logger.Error("Health sweep failed", "error", err)
			}
		}
	}
}
