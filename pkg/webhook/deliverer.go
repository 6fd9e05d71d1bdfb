// Package webhook implements outbound event delivery (signed POSTs with
// retries, dead-lettering, and endpoint health management) and inbound
// signature validation.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/metrics"
	"github.com/orchid-run/orchid/pkg/models"
)

// Signing and tracking headers attached to every outbound delivery.
const (
	HeaderSignature  = "X-Signature-256"
	HeaderTimestamp  = "X-Timestamp"
	HeaderDeliveryID = "X-Delivery-Id"
)

// Store is the persistence surface the delivery pipeline needs.
// *services.WebhookService satisfies it.
type Store interface {
	ListActiveForEvent(ctx context.Context, eventType string) ([]*ent.WebhookEndpoint, error)
	CreateDelivery(ctx context.Context, endpointID, deliveryID, eventType, payload string) (*ent.WebhookDelivery, error)
	MarkDeliveryAttempt(ctx context.Context, deliveryID string, statusCode int, lastError string, nextAttemptAt time.Time) error
	MarkDelivered(ctx context.Context, deliveryID string, statusCode int) error
	MarkDeliveryFailed(ctx context.Context, deliveryID string, statusCode int, finalError string) error
	RecordDeadLetter(ctx context.Context, webhookID, deliveryID, deliveryURL, payload, finalError string) error
	PendingDeliveries(ctx context.Context, limit int) ([]*ent.WebhookDelivery, error)
	DeliveryStats(ctx context.Context, webhookID string, since time.Time) (models.DeliveryStats, error)
	ActiveEndpointIDs(ctx context.Context) ([]string, error)
	DisableEndpoint(ctx context.Context, id, reason string) (bool, error)
}

// Notifier receives operator notifications for dead-lettered deliveries.
type Notifier interface {
	NotifyDeadLetter(ctx context.Context, webhookID, deliveryID, finalError string)
}

// LogNotifier is the default Notifier; it logs at warn level.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: slog.Default().With("component", "webhook")}
}

func (n *LogNotifier) NotifyDeadLetter(_ context.Context, webhookID, deliveryID, finalError string) {
	n.logger.Warn("Webhook delivery dead-lettered",
		"webhook_id", webhookID, "delivery_id", deliveryID, "error", finalError)
}

// DelivererConfig tunes retry timing and outbound pacing.
type DelivererConfig struct {
	// BaseBackoff seeds the capped exponential schedule.
	BaseBackoff time.Duration
	// MaxBackoff caps a single wait between attempts.
	MaxBackoff time.Duration
	// RatePerSec paces outbound POSTs across all endpoints.
	RatePerSec float64
	RateBurst  int
}

// DefaultDelivererConfig returns the production timing.
func DefaultDelivererConfig() DelivererConfig {
	return DelivererConfig{
		BaseBackoff: time.Second,
		MaxBackoff:  60 * time.Second,
		RatePerSec:  50,
		RateBurst:   10,
	}
}

func (c *DelivererConfig) applyDefaults() {
	d := DefaultDelivererConfig()
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = d.BaseBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = d.MaxBackoff
	}
	if c.RatePerSec <= 0 {
		c.RatePerSec = d.RatePerSec
	}
	if c.RateBurst <= 0 {
		c.RateBurst = d.RateBurst
	}
}

// Deliverer transmits one delivery job end to end: sign, POST, retry with
// capped exponential backoff, dead-letter on exhaustion.
type Deliverer struct {
	store    Store
	clk      clock.Clock
	prng     *clock.PRNG
	notifier Notifier
	logger   *slog.Logger
	cfg      DelivererConfig
	pace     *rate.Limiter

	client         *http.Client
	insecureClient *http.Client
}

// NewDeliverer creates a deliverer. A nil notifier falls back to logging.
func NewDeliverer(store Store, clk clock.Clock, prng *clock.PRNG, notifier Notifier, cfg DelivererConfig) *Deliverer {
	cfg.applyDefaults()
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	return &Deliverer{
		store:    store,
		clk:      clk,
		prng:     prng,
		notifier: notifier,
		logger:   slog.Default().With("component", "webhook"),
		cfg:      cfg,
		pace:     rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RateBurst),
		client:   &http.Client{},
		insecureClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Job is one delivery to transmit. DeliveryID stays stable across every
// attempt; Attempt carries the attempts already burned (nonzero when a
// delivery is resumed after a restart).
type Job struct {
	Endpoint   *ent.WebhookEndpoint
	DeliveryID string
	EventType  string
	Payload    string
	Attempt    int
}

// Deliver runs the full retry schedule for one job. It returns nil once the
// endpoint acknowledges, and the final error after exhaustion or a terminal
// status code.
func (d *Deliverer) Deliver(ctx context.Context, job Job) error {
	maxAttempts := job.Endpoint.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	var lastErr error
	for attempt := job.Attempt + 1; attempt <= maxAttempts; attempt++ {
		if err := d.pace.Wait(ctx); err != nil {
			return err
		}

		statusCode, err := d.post(ctx, job)
		if err == nil {
			if mErr := d.store.MarkDelivered(ctx, job.DeliveryID, statusCode); mErr != nil {
				d.logger.Warn("Failed to persist delivered state",
					"delivery_id", job.DeliveryID, "error", mErr)
			}
			metrics.RecordDelivery("delivered")
			return nil
		}
		lastErr = err

		if isTerminalStatus(statusCode) {
			d.logger.Info("Delivery hit terminal status, not retrying",
				"delivery_id", job.DeliveryID, "status", statusCode)
			return d.deadLetter(ctx, job, statusCode, lastErr.Error())
		}
		if attempt == maxAttempts {
			break
		}

		backoff := d.backoff(attempt)
		if mErr := d.store.MarkDeliveryAttempt(ctx, job.DeliveryID, statusCode, lastErr.Error(), d.clk.Now().Add(backoff)); mErr != nil {
			d.logger.Warn("Failed to persist delivery attempt",
				"delivery_id", job.DeliveryID, "error", mErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return d.deadLetter(ctx, job, 0, lastErr.Error())
}

// post transmits one attempt. A non-2xx status is returned as both the
// status code and an error.
func (d *Deliverer) post(ctx context.Context, job Job) (int, error) {
	timeout := time.Duration(job.Endpoint.TimeoutS) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body := []byte(job.Payload)
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, job.Endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, Sign(job.Endpoint.Secret, body))
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(d.clk.Now().Unix(), 10))
	req.Header.Set(HeaderDeliveryID, job.DeliveryID)
	for k, v := range job.Endpoint.Headers {
		req.Header.Set(k, v)
	}

	client := d.client
	if !job.Endpoint.VerifySsl {
		client = d.insecureClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// backoff is min(cap, base * 2^(attempt-1)) with jitter in [0.5x, 1.5x).
func (d *Deliverer) backoff(attempt int) time.Duration {
	backoff := d.cfg.BaseBackoff << (attempt - 1)
	if backoff > d.cfg.MaxBackoff || backoff <= 0 {
		backoff = d.cfg.MaxBackoff
	}
	return backoff/2 + time.Duration(d.prng.Jitter(int64(backoff)))
}

func (d *Deliverer) deadLetter(ctx context.Context, job Job, statusCode int, finalError string) error {
	if err := d.store.MarkDeliveryFailed(ctx, job.DeliveryID, statusCode, finalError); err != nil {
		d.logger.Warn("Failed to persist failed delivery",
			"delivery_id", job.DeliveryID, "error", err)
	}
	if err := d.store.RecordDeadLetter(ctx, job.Endpoint.ID, job.DeliveryID, job.Endpoint.URL, job.Payload, finalError); err != nil {
		d.logger.Error("Failed to record dead letter",
			"delivery_id", job.DeliveryID, "error", err)
	}
	d.notifier.NotifyDeadLetter(ctx, job.Endpoint.ID, job.DeliveryID, finalError)
	metrics.RecordDelivery("dead_letter")
	return fmt.Errorf("delivery %s dead-lettered: %s", job.DeliveryID, finalError)
}

// isTerminalStatus reports codes that must not be retried. 410 means the
// receiver is permanently gone.
func isTerminalStatus(code int) bool {
	return code == http.StatusGone
}

// Sign computes the hex HMAC-SHA256 of body under secret, the value carried
// in X-Signature-256.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
