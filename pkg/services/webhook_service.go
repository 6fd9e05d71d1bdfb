package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
	"github.com/orchid-run/orchid/pkg/models"
)

// DisabledReasonHighFailureRate is set when the health sweep disables an
// endpoint.
const DisabledReasonHighFailureRate = "High failure rate"

// WebhookService manages webhook endpoints, delivery records, and dead
// letters.
type WebhookService struct {
	client *ent.Client
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(client *ent.Client) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	return &WebhookService{client: client}
}

// CreateEndpoint registers a webhook endpoint.
func (s *WebhookService) CreateEndpoint(ctx context.Context, req models.CreateEndpointRequest) (*ent.WebhookEndpoint, error) {
	if req.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if req.Secret == "" {
		return nil, NewValidationError("secret", "required")
	}
	if len(req.Events) == 0 {
		return nil, NewValidationError("events", "at least one event type required")
	}
	parsed, err := url.Parse(req.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, NewValidationError("url", "must be an absolute URL")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.WebhookEndpoint.Create().
		SetID(req.ID).
		SetURL(req.URL).
		SetEvents(req.Events).
		SetSecret(req.Secret)

	if req.TenantID != "" {
		builder.SetTenantID(req.TenantID)
	}
	if req.TimeoutS > 0 {
		builder.SetTimeoutS(req.TimeoutS)
	}
	if req.VerifySSL != nil {
		builder.SetVerifySsl(*req.VerifySSL)
	}
	if req.MaxAttempts > 0 {
		builder.SetMaxAttempts(req.MaxAttempts)
	}
	if req.Headers != nil {
		builder.SetHeaders(req.Headers)
	}

	endpoint, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create endpoint: %w", err)
	}
	return endpoint, nil
}

// GetEndpoint retrieves an endpoint by ID.
func (s *WebhookService) GetEndpoint(ctx context.Context, id string) (*ent.WebhookEndpoint, error) {
	endpoint, err := s.client.WebhookEndpoint.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get endpoint: %w", err)
	}
	return endpoint, nil
}

// UpdateEndpoint applies the mutable endpoint fields.
func (s *WebhookService) UpdateEndpoint(ctx context.Context, id string, req models.UpdateEndpointRequest) (*ent.WebhookEndpoint, error) {
	update := s.client.WebhookEndpoint.UpdateOneID(id)
	if req.URL != nil {
		update.SetURL(*req.URL)
	}
	if req.Events != nil {
		update.SetEvents(req.Events)
	}
	if req.Secret != nil {
		update.SetSecret(*req.Secret)
	}
	if req.Active != nil {
		update.SetActive(*req.Active)
		if *req.Active {
			// Re-enabling clears the disable record
			update.ClearDisabledReason().ClearDisabledAt()
		}
	}
	if req.TimeoutS != nil {
		update.SetTimeoutS(*req.TimeoutS)
	}
	if req.VerifySSL != nil {
		update.SetVerifySsl(*req.VerifySSL)
	}
	if req.MaxAttempts != nil {
		update.SetMaxAttempts(*req.MaxAttempts)
	}
	if req.Headers != nil {
		update.SetHeaders(req.Headers)
	}

	endpoint, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update endpoint: %w", err)
	}
	return endpoint, nil
}

// DeleteEndpoint removes an endpoint and, via cascade, its deliveries.
func (s *WebhookService) DeleteEndpoint(ctx context.Context, id string) error {
	err := s.client.WebhookEndpoint.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete endpoint: %w", err)
	}
	return nil
}

// ListActiveForEvent returns the active endpoints subscribed to an event
// type. Disabled endpoints are skipped by construction.
func (s *WebhookService) ListActiveForEvent(ctx context.Context, eventType string) ([]*ent.WebhookEndpoint, error) {
	endpoints, err := s.client.WebhookEndpoint.Query().
		Where(webhookendpoint.ActiveEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}

	// Event subscription lives in a JSON column, so the set membership
	// check happens here rather than in SQL.
	matched := endpoints[:0]
	for _, ep := range endpoints {
		for _, ev := range ep.Events {
			if ev == eventType || ev == "*" {
				matched = append(matched, ep)
				break
			}
		}
	}
	return matched, nil
}

// DisableEndpoint sets active=false exactly once: the conditional update
// is a no-op when the endpoint is already disabled.
func (s *WebhookService) DisableEndpoint(ctx context.Context, id, reason string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.WebhookEndpoint.Update().
		Where(
			webhookendpoint.IDEQ(id),
			webhookendpoint.ActiveEQ(true),
		).
		SetActive(false).
		SetDisabledReason(reason).
		SetDisabledAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to disable endpoint: %w", err)
	}
	return count > 0, nil
}

// CreateDelivery records a queued delivery job.
func (s *WebhookService) CreateDelivery(ctx context.Context, endpointID, deliveryID, eventType, payload string) (*ent.WebhookDelivery, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	delivery, err := s.client.WebhookDelivery.Create().
		SetID(deliveryID).
		SetEventType(eventType).
		SetPayload(payload).
		SetEndpointID(endpointID).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}
	return delivery, nil
}

// MarkDeliveryAttempt records one transmission attempt's outcome while
// retries remain.
func (s *WebhookService) MarkDeliveryAttempt(ctx context.Context, deliveryID string, statusCode int, lastError string, nextAttemptAt time.Time) error {
	update := s.client.WebhookDelivery.UpdateOneID(deliveryID).
		SetStatus(webhookdelivery.StatusDelivering).
		AddAttempts(1).
		SetNextAttemptAt(nextAttemptAt)
	if statusCode > 0 {
		update.SetLastStatusCode(statusCode)
	}
	if lastError != "" {
		update.SetLastError(lastError)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record delivery attempt: %w", err)
	}
	return nil
}

// MarkDelivered finalizes a successful delivery.
func (s *WebhookService) MarkDelivered(ctx context.Context, deliveryID string, statusCode int) error {
	err := s.client.WebhookDelivery.UpdateOneID(deliveryID).
		SetStatus(webhookdelivery.StatusDelivered).
		AddAttempts(1).
		SetLastStatusCode(statusCode).
		SetDeliveredAt(time.Now()).
		ClearNextAttemptAt().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark delivered: %w", err)
	}
	return nil
}

// MarkDeliveryFailed finalizes a delivery after its last attempt.
func (s *WebhookService) MarkDeliveryFailed(ctx context.Context, deliveryID string, statusCode int, finalError string) error {
	update := s.client.WebhookDelivery.UpdateOneID(deliveryID).
		SetStatus(webhookdelivery.StatusFailed).
		AddAttempts(1).
		SetLastError(finalError).
		ClearNextAttemptAt()
	if statusCode > 0 {
		update.SetLastStatusCode(statusCode)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark delivery failed: %w", err)
	}
	return nil
}

// PendingDeliveries returns deliveries that were queued or mid-retry,
// with their endpoint loaded. Used to resume after a restart.
func (s *WebhookService) PendingDeliveries(ctx context.Context, limit int) ([]*ent.WebhookDelivery, error) {
	if limit <= 0 {
		limit = 100
	}
	deliveries, err := s.client.WebhookDelivery.Query().
		Where(webhookdelivery.StatusIn(
			webhookdelivery.StatusPending,
			webhookdelivery.StatusDelivering,
		)).
		WithEndpoint().
		Order(ent.Asc(webhookdelivery.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending deliveries: %w", err)
	}
	return deliveries, nil
}

// RecordDeadLetter stores a terminally failed delivery.
func (s *WebhookService) RecordDeadLetter(ctx context.Context, webhookID, deliveryID, deliveryURL, payload, finalError string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.DeadLetter.Create().
		SetWebhookID(webhookID).
		SetDeliveryID(deliveryID).
		SetURL(deliveryURL).
		SetPayload(payload).
		SetFinalError(finalError)
	if webhookID != "" {
		builder.SetEndpointID(webhookID)
	}

	if err := builder.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to record dead letter: %w", err)
	}
	return nil
}

// DeliveryStats summarizes an endpoint's attempts and dead letters since
// the given time. The health sweep feeds this into the auto-disable rule.
func (s *WebhookService) DeliveryStats(ctx context.Context, webhookID string, since time.Time) (models.DeliveryStats, error) {
	deliveries, err := s.client.WebhookDelivery.Query().
		Where(
			webhookdelivery.HasEndpointWith(webhookendpoint.IDEQ(webhookID)),
			webhookdelivery.CreatedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return models.DeliveryStats{}, fmt.Errorf("failed to query deliveries: %w", err)
	}

	attempts := 0
	for _, d := range deliveries {
		attempts += d.Attempts
	}

	deadLetters, err := s.client.DeadLetter.Query().
		Where(
			deadletter.WebhookIDEQ(webhookID),
			deadletter.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return models.DeliveryStats{}, fmt.Errorf("failed to count dead letters: %w", err)
	}

	return models.DeliveryStats{Attempts: attempts, DeadLetters: deadLetters}, nil
}

// ActiveEndpointIDs lists every active endpoint id; the health sweep
// iterates over this.
func (s *WebhookService) ActiveEndpointIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.WebhookEndpoint.Query().
		Where(webhookendpoint.ActiveEQ(true)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active endpoints: %w", err)
	}
	return ids, nil
}
