package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/ent"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/models"
)

// fakeStore is an in-memory Store so delivery tests run against httptest
// servers without a database.
type fakeStore struct {
	mu          sync.Mutex
	endpoints   []*ent.WebhookEndpoint
	deliveries  map[string]*deliveryRecord
	deadLetters []deadLetterRecord
	pending     []*ent.WebhookDelivery
}

type deliveryRecord struct {
	endpointID string
	eventType  string
	payload    string
	attempts   int
	status     string
	lastStatus int
	lastError  string
}

type deadLetterRecord struct {
	webhookID  string
	deliveryID string
	finalError string
}

func newFakeStore(endpoints ...*ent.WebhookEndpoint) *fakeStore {
	return &fakeStore{
		endpoints:  endpoints,
		deliveries: make(map[string]*deliveryRecord),
	}
}

func (f *fakeStore) ListActiveForEvent(_ context.Context, eventType string) ([]*ent.WebhookEndpoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.WebhookEndpoint
	for _, ep := range f.endpoints {
		if !ep.Active {
			continue
		}
		for _, ev := range ep.Events {
			if ev == eventType || ev == "*" {
				out = append(out, ep)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) CreateDelivery(_ context.Context, endpointID, deliveryID, eventType, payload string) (*ent.WebhookDelivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries[deliveryID] = &deliveryRecord{
		endpointID: endpointID,
		eventType:  eventType,
		payload:    payload,
		status:     "pending",
	}
	return &ent.WebhookDelivery{ID: deliveryID, EventType: eventType, Payload: payload}, nil
}

func (f *fakeStore) MarkDeliveryAttempt(_ context.Context, deliveryID string, statusCode int, lastError string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.deliveries[deliveryID]
	d.attempts++
	d.status = "delivering"
	d.lastStatus = statusCode
	d.lastError = lastError
	return nil
}

func (f *fakeStore) MarkDelivered(_ context.Context, deliveryID string, statusCode int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.deliveries[deliveryID]
	d.attempts++
	d.status = "delivered"
	d.lastStatus = statusCode
	return nil
}

func (f *fakeStore) MarkDeliveryFailed(_ context.Context, deliveryID string, statusCode int, finalError string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deliveries[deliveryID]
	if !ok {
		d = &deliveryRecord{}
		f.deliveries[deliveryID] = d
	}
	d.attempts++
	d.status = "failed"
	d.lastStatus = statusCode
	d.lastError = finalError
	return nil
}

func (f *fakeStore) RecordDeadLetter(_ context.Context, webhookID, deliveryID, _, _, finalError string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deadLetters = append(f.deadLetters, deadLetterRecord{webhookID, deliveryID, finalError})
	return nil
}

func (f *fakeStore) PendingDeliveries(_ context.Context, _ int) ([]*ent.WebhookDelivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending, nil
}

func (f *fakeStore) DeliveryStats(_ context.Context, webhookID string, _ time.Time) (models.DeliveryStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats models.DeliveryStats
	for _, d := range f.deliveries {
		if d.endpointID == webhookID {
			stats.Attempts += d.attempts
		}
	}
	for _, dl := range f.deadLetters {
		if dl.webhookID == webhookID {
			stats.DeadLetters++
		}
	}
	return stats, nil
}

func (f *fakeStore) ActiveEndpointIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, ep := range f.endpoints {
		if ep.Active {
			ids = append(ids, ep.ID)
		}
	}
	return ids, nil
}

func (f *fakeStore) DisableEndpoint(_ context.Context, id, reason string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ep := range f.endpoints {
		if ep.ID == id && ep.Active {
			ep.Active = false
			r := reason
			ep.DisabledReason = &r
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) delivery(id string) deliveryRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.deliveries[id]
}

func (f *fakeStore) deadLetterCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deadLetters)
}

// receivedPost is one POST observed by a test server.
type receivedPost struct {
	body       string
	signature  string
	deliveryID string
	timestamp  string
	headers    http.Header
}

// recordingServer captures posts and answers from a scripted status list;
// the last status repeats once the script runs out.
func recordingServer(t *testing.T, statuses ...int) (*httptest.Server, func() []receivedPost) {
	t.Helper()
	var mu sync.Mutex
	var posts []receivedPost
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		mu.Lock()
		posts = append(posts, receivedPost{
			body:       string(body),
			signature:  r.Header.Get(HeaderSignature),
			deliveryID: r.Header.Get(HeaderDeliveryID),
			timestamp:  r.Header.Get(HeaderTimestamp),
			headers:    r.Header.Clone(),
		})
		idx := len(posts) - 1
		mu.Unlock()
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}
		w.WriteHeader(statuses[idx])
	}))
	t.Cleanup(server.Close)
	return server, func() []receivedPost {
		mu.Lock()
		defer mu.Unlock()
		out := make([]receivedPost, len(posts))
		copy(out, posts)
		return out
	}
}

func testEndpoint(id, url string, maxAttempts int, events ...string) *ent.WebhookEndpoint {
	if len(events) == 0 {
		events = []string{"run.completed"}
	}
	return &ent.WebhookEndpoint{
		ID:          id,
		URL:         url,
		Events:      events,
		Secret:      "s3cret",
		Active:      true,
		TimeoutS:    5,
		VerifySsl:   true,
		MaxAttempts: maxAttempts,
	}
}

func testDeliverer(store Store) *Deliverer {
	return NewDeliverer(store, clock.NewReal(), clock.NewPRNG(42), nil, DelivererConfig{
		BaseBackoff: time.Millisecond,
		MaxBackoff:  5 * time.Millisecond,
		RatePerSec:  10000,
		RateBurst:   100,
	})
}

func TestDeliverer_SucceedsOnThirdAttempt(t *testing.T) {
	server, posts := recordingServer(t, 500, 500, 200)
	endpoint := testEndpoint("wh-1", server.URL, 3)
	store := newFakeStore(endpoint)
	deliverer := testDeliverer(store)

	_, err := store.CreateDelivery(context.Background(), endpoint.ID, "d-1", "run.completed", `{"run_id":"r1"}`)
	require.NoError(t, err)

	err = deliverer.Deliver(context.Background(), Job{
		Endpoint:   endpoint,
		DeliveryID: "d-1",
		EventType:  "run.completed",
		Payload:    `{"run_id":"r1"}`,
	})
	require.NoError(t, err)

	got := posts()
	require.Len(t, got, 3, "exactly three POSTs")
	for _, p := range got {
		assert.Equal(t, "d-1", p.deliveryID, "delivery id is stable across attempts")
		assert.Equal(t, `{"run_id":"r1"}`, p.body)
		assert.Equal(t, Sign("s3cret", []byte(p.body)), p.signature)
		assert.NotEmpty(t, p.timestamp)
	}

	record := store.delivery("d-1")
	assert.Equal(t, "delivered", record.status)
	assert.Equal(t, 3, record.attempts)
	assert.Zero(t, store.deadLetterCount(), "no dead letter on eventual success")
}

func TestDeliverer_ExhaustionDeadLetters(t *testing.T) {
	server, posts := recordingServer(t, 500)
	endpoint := testEndpoint("wh-1", server.URL, 2)
	store := newFakeStore(endpoint)
	deliverer := testDeliverer(store)

	_, err := store.CreateDelivery(context.Background(), endpoint.ID, "d-1", "run.completed", "{}")
	require.NoError(t, err)

	err = deliverer.Deliver(context.Background(), Job{
		Endpoint: endpoint, DeliveryID: "d-1", EventType: "run.completed", Payload: "{}",
	})
	require.Error(t, err)

	assert.Len(t, posts(), 2)
	record := store.delivery("d-1")
	assert.Equal(t, "failed", record.status)
	assert.Equal(t, 1, store.deadLetterCount(), "exactly one dead letter after exhaustion")
}

func TestDeliverer_TerminalStatusNotRetried(t *testing.T) {
	server, posts := recordingServer(t, http.StatusGone)
	endpoint := testEndpoint("wh-1", server.URL, 5)
	store := newFakeStore(endpoint)
	deliverer := testDeliverer(store)

	_, err := store.CreateDelivery(context.Background(), endpoint.ID, "d-1", "run.completed", "{}")
	require.NoError(t, err)

	err = deliverer.Deliver(context.Background(), Job{
		Endpoint: endpoint, DeliveryID: "d-1", EventType: "run.completed", Payload: "{}",
	})
	require.Error(t, err)

	assert.Len(t, posts(), 1, "410 is terminal, no retry")
	assert.Equal(t, 1, store.deadLetterCount())
}

func TestDeliverer_CustomHeaders(t *testing.T) {
	server, posts := recordingServer(t, 200)
	endpoint := testEndpoint("wh-1", server.URL, 1)
	endpoint.Headers = map[string]string{"X-Custom": "orchid"}
	store := newFakeStore(endpoint)
	deliverer := testDeliverer(store)

	_, err := store.CreateDelivery(context.Background(), endpoint.ID, "d-1", "run.completed", "{}")
	require.NoError(t, err)
	require.NoError(t, deliverer.Deliver(context.Background(), Job{
		Endpoint: endpoint, DeliveryID: "d-1", EventType: "run.completed", Payload: "{}",
	}))

	got := posts()
	require.Len(t, got, 1)
	assert.Equal(t, "orchid", got[0].headers.Get("X-Custom"))
	assert.Equal(t, "application/json", got[0].headers.Get("Content-Type"))
}

func TestDispatcher_EmitFansOutToSubscribers(t *testing.T) {
	serverA, postsA := recordingServer(t, 200)
	serverB, postsB := recordingServer(t, 200)
	serverC, postsC := recordingServer(t, 200)

	store := newFakeStore(
		testEndpoint("wh-a", serverA.URL, 5, "run.completed"),
		testEndpoint("wh-b", serverB.URL, 5, "*"),
		testEndpoint("wh-c", serverC.URL, 5, "run.failed"),
	)
	dispatcher := NewDispatcher(store, testDeliverer(store), nil, 16, 2)
	dispatcher.Start(context.Background())

	dispatcher.Emit(context.Background(), "run.completed", `{"run_id":"r1"}`)
	dispatcher.Close()

	assert.Len(t, postsA(), 1, "subscribed endpoint receives the event")
	assert.Len(t, postsB(), 1, "wildcard endpoint receives the event")
	assert.Empty(t, postsC(), "unsubscribed endpoint is skipped")
	assert.NotEqual(t, postsA()[0].deliveryID, postsB()[0].deliveryID,
		"each endpoint gets its own delivery id")
}

func TestDispatcher_OverflowDeadLetters(t *testing.T) {
	server, _ := recordingServer(t, 200)
	store := newFakeStore(
		testEndpoint("wh-a", server.URL, 5),
		testEndpoint("wh-b", server.URL, 5),
	)

	// No workers started: the queue of one fills on the first endpoint and
	// the second delivery overflows straight to the dead-letter table.
	dispatcher := NewDispatcher(store, testDeliverer(store), nil, 1, 1)
	dispatcher.Emit(context.Background(), "run.completed", "{}")

	require.Equal(t, 1, store.deadLetterCount())
	store.mu.Lock()
	dl := store.deadLetters[0]
	store.mu.Unlock()
	assert.Equal(t, dispatchOverflowError, dl.finalError)
	assert.Equal(t, "failed", store.delivery(dl.deliveryID).status)
}

func TestDispatcher_ResumesPendingDeliveries(t *testing.T) {
	server, posts := recordingServer(t, 200)
	endpoint := testEndpoint("wh-a", server.URL, 5)
	store := newFakeStore(endpoint)

	_, err := store.CreateDelivery(context.Background(), endpoint.ID, "d-resume", "run.completed", "{}")
	require.NoError(t, err)
	store.pending = []*ent.WebhookDelivery{{
		ID:        "d-resume",
		EventType: "run.completed",
		Payload:   "{}",
		Attempts:  1,
		Edges:     ent.WebhookDeliveryEdges{Endpoint: endpoint},
	}}

	dispatcher := NewDispatcher(store, testDeliverer(store), nil, 16, 1)
	dispatcher.Start(context.Background())
	dispatcher.Close()

	got := posts()
	require.Len(t, got, 1)
	assert.Equal(t, "d-resume", got[0].deliveryID)
	assert.Equal(t, "delivered", store.delivery("d-resume").status)
}

func TestHealthSweeper_DisablesFailingEndpointOnce(t *testing.T) {
	endpoint := testEndpoint("wh-sick", "https://dead.example.com", 1)
	healthy := testEndpoint("wh-ok", "https://ok.example.com", 5)
	store := newFakeStore(endpoint, healthy)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		_, err := store.CreateDelivery(ctx, endpoint.ID, id, "run.completed", "{}")
		require.NoError(t, err)
		require.NoError(t, store.MarkDeliveryFailed(ctx, id, 500, "boom"))
		require.NoError(t, store.RecordDeadLetter(ctx, endpoint.ID, id, endpoint.URL, "{}", "boom"))
	}
	_, err := store.CreateDelivery(ctx, healthy.ID, "ok-1", "run.completed", "{}")
	require.NoError(t, err)
	require.NoError(t, store.MarkDelivered(ctx, "ok-1", 200))

	sweeper := NewHealthSweeper(store, clock.NewReal())
	disabled, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"wh-sick"}, disabled)
	assert.False(t, endpoint.Active)
	require.NotNil(t, endpoint.DisabledReason)
	assert.Equal(t, DisabledReason, *endpoint.DisabledReason)
	assert.True(t, healthy.Active)

	// The endpoint is no longer active, so a second sweep is a no-op.
	disabled, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, disabled)
}

func TestHealthSweeper_BelowThresholdStaysActive(t *testing.T) {
	endpoint := testEndpoint("wh-flaky", "https://flaky.example.com", 5)
	store := newFakeStore(endpoint)
	ctx := context.Background()

	// Nine dead letters: below the minimum, ratio alone must not disable.
	for i := 0; i < 9; i++ {
		id := string(rune('a' + i))
		_, err := store.CreateDelivery(ctx, endpoint.ID, id, "run.completed", "{}")
		require.NoError(t, err)
		require.NoError(t, store.MarkDeliveryFailed(ctx, id, 500, "boom"))
		require.NoError(t, store.RecordDeadLetter(ctx, endpoint.ID, id, endpoint.URL, "{}", "boom"))
	}

	sweeper := NewHealthSweeper(store, clock.NewReal())
	disabled, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, disabled)
	assert.True(t, endpoint.Active)
}
