package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/pkg/models"
	testdb "github.com/orchid-run/orchid/test/database"
)

func createTestEndpoint(t *testing.T, service *WebhookService, events ...string) *ent.WebhookEndpoint {
	t.Helper()
	if len(events) == 0 {
		events = []string{"run.completed"}
	}
	endpoint, err := service.CreateEndpoint(context.Background(), models.CreateEndpointRequest{
		ID:     uuid.New().String(),
		URL:    "https://hooks.example.com/orchid",
		Events: events,
		Secret: "s3cret",
	})
	require.NoError(t, err)
	return endpoint
}

func TestWebhookService_CreateEndpoint(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	endpoint := createTestEndpoint(t, service)
	assert.True(t, endpoint.Active)
	assert.Equal(t, 30, endpoint.TimeoutS)
	assert.Equal(t, 5, endpoint.MaxAttempts)

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CreateEndpoint(ctx, models.CreateEndpointRequest{
			ID: "e1", URL: "not-a-url", Events: []string{"x"}, Secret: "s",
		})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateEndpoint(ctx, models.CreateEndpointRequest{
			ID: "e2", URL: "https://ok.example.com", Secret: "s",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "events")
	})
}

func TestWebhookService_ListActiveForEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	matching := createTestEndpoint(t, service, "run.completed")
	wildcard := createTestEndpoint(t, service, "*")
	createTestEndpoint(t, service, "run.failed")
	disabled := createTestEndpoint(t, service, "run.completed")

	ok, err := service.DisableEndpoint(ctx, disabled.ID, DisabledReasonHighFailureRate)
	require.NoError(t, err)
	require.True(t, ok)

	endpoints, err := service.ListActiveForEvent(ctx, "run.completed")
	require.NoError(t, err)
	require.Len(t, endpoints, 2)
	ids := []string{endpoints[0].ID, endpoints[1].ID}
	assert.Contains(t, ids, matching.ID)
	assert.Contains(t, ids, wildcard.ID)
}

func TestWebhookService_DisableOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	endpoint := createTestEndpoint(t, service)

	ok, err := service.DisableEndpoint(ctx, endpoint.ID, DisabledReasonHighFailureRate)
	require.NoError(t, err)
	assert.True(t, ok, "first disable flips the flag")

	ok, err = service.DisableEndpoint(ctx, endpoint.ID, DisabledReasonHighFailureRate)
	require.NoError(t, err)
	assert.False(t, ok, "second disable is a no-op")

	got, err := service.GetEndpoint(ctx, endpoint.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	require.NotNil(t, got.DisabledReason)
	assert.Equal(t, DisabledReasonHighFailureRate, *got.DisabledReason)
	assert.NotNil(t, got.DisabledAt)
}

func TestWebhookService_ReEnableClearsDisableRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	endpoint := createTestEndpoint(t, service)
	_, err := service.DisableEndpoint(ctx, endpoint.ID, DisabledReasonHighFailureRate)
	require.NoError(t, err)

	active := true
	updated, err := service.UpdateEndpoint(ctx, endpoint.ID, models.UpdateEndpointRequest{Active: &active})
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Nil(t, updated.DisabledReason)
	assert.Nil(t, updated.DisabledAt)
}

func TestWebhookService_DeliveryLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	endpoint := createTestEndpoint(t, service)
	deliveryID := uuid.New().String()

	_, err := service.CreateDelivery(ctx, endpoint.ID, deliveryID, "run.completed", `{"run_id":"r1"}`)
	require.NoError(t, err)

	require.NoError(t, service.MarkDeliveryAttempt(ctx, deliveryID, 503, "service unavailable", time.Now().Add(time.Second)))
	require.NoError(t, service.MarkDeliveryAttempt(ctx, deliveryID, 503, "service unavailable", time.Now().Add(2*time.Second)))

	pending, err := service.PendingDeliveries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].Attempts)
	require.NotNil(t, pending[0].Edges.Endpoint)
	assert.Equal(t, endpoint.ID, pending[0].Edges.Endpoint.ID)

	require.NoError(t, service.MarkDelivered(ctx, deliveryID, 200))

	delivery, err := client.WebhookDelivery.Get(ctx, deliveryID)
	require.NoError(t, err)
	assert.Equal(t, webhookdelivery.StatusDelivered, delivery.Status)
	assert.Equal(t, 3, delivery.Attempts)
	assert.NotNil(t, delivery.DeliveredAt)
	assert.Nil(t, delivery.NextAttemptAt)

	pending, err = service.PendingDeliveries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestWebhookService_DeadLettersAndStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client)
	ctx := context.Background()

	endpoint := createTestEndpoint(t, service)
	since := time.Now().Add(-24 * time.Hour)

	for i := 0; i < 3; i++ {
		deliveryID := uuid.New().String()
		_, err := service.CreateDelivery(ctx, endpoint.ID, deliveryID, "run.completed", "{}")
		require.NoError(t, err)
		require.NoError(t, service.MarkDeliveryFailed(ctx, deliveryID, 500, "boom"))
		require.NoError(t, service.RecordDeadLetter(ctx, endpoint.ID, deliveryID, endpoint.URL, "{}", "boom"))
	}

	stats, err := service.DeliveryStats(ctx, endpoint.ID, since)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Attempts)
	assert.Equal(t, 3, stats.DeadLetters)

	ids, err := service.ActiveEndpointIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, endpoint.ID)
}
