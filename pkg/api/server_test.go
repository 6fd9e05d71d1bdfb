package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/artifact"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/config"
	"github.com/orchid-run/orchid/pkg/kv"
	"github.com/orchid-run/orchid/pkg/ratelimit"
	"github.com/orchid-run/orchid/pkg/services"
	"github.com/orchid-run/orchid/pkg/webhook"
	testdb "github.com/orchid-run/orchid/test/database"
)

type testServer struct {
	server    *Server
	runs      *services.RunService
	webhooks  *services.WebhookService
	artifacts *artifact.Manager
	cfg       *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)

	clk := clock.NewReal()
	cfg := config.Defaults()
	limiter := ratelimit.NewLimiter(kv.NewMemory(clk), clk)
	artifacts := artifact.NewManager(t.TempDir(), clk)
	runs := services.NewRunService(client.Client)
	steps := services.NewStepService(client.Client)
	webhooks := services.NewWebhookService(client.Client)
	validator := webhook.NewValidator(webhook.StaticSecrets{"github": "gh-secret"}, clk, limiter, 300*time.Second)

	server := NewServer(cfg, Deps{
		DB:        client,
		Runs:      runs,
		Steps:     steps,
		Webhooks:  webhooks,
		Limiter:   limiter,
		Validator: validator,
		Artifacts: artifacts,
	})
	return &testServer{server: server, runs: runs, webhooks: webhooks, artifacts: artifacts, cfg: cfg}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateRun_Accepted(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/runs", h{"query": "What is a goroutine?"}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp struct {
		RunID  string `json:"run_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	get := ts.do(t, http.MethodGet, "/v1/runs/"+resp.RunID, nil, nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Contains(t, get.Body.String(), resp.RunID)
}

func TestCreateRun_RequiresQuery(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/runs", h{"context": map[string]any{"k": "v"}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRun_RejectsHighTemperature(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/runs", h{
		"query":  "hello",
		"config": h{"temperature": 0.9},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "temperature")
}

func TestCreateRun_RateLimited(t *testing.T) {
	ts := newTestServer(t)
	ts.cfg.RateLimit = config.RateLimitConfig{Algorithm: "fixed_window", RPM: 1, Burst: 1}

	first := ts.do(t, http.MethodPost, "/v1/runs", h{"query": "one"}, nil)
	require.Equal(t, http.StatusAccepted, first.Code)

	second := ts.do(t, http.MethodPost, "/v1/runs", h{"query": "two"}, nil)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "fixed_window", second.Header().Get("X-RateLimit-Algorithm"))
	assert.NotEmpty(t, second.Header().Get("X-RateLimit-Reset"))
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestGetRun_NotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/v1/runs/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRun_PendingRunTerminates(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/v1/runs", h{"query": "cancel me"}, nil)
	require.Equal(t, http.StatusAccepted, created.Code)
	var resp struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	cancel := ts.do(t, http.MethodPost, fmt.Sprintf("/v1/runs/%s/cancel", resp.RunID), nil, nil)
	require.Equal(t, http.StatusAccepted, cancel.Code)
	assert.Contains(t, cancel.Body.String(), "terminated")

	// A second cancel hits the terminal-state guard.
	again := ts.do(t, http.MethodPost, fmt.Sprintf("/v1/runs/%s/cancel", resp.RunID), nil, nil)
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestGetArtifact_StreamsKnownNames(t *testing.T) {
	ts := newTestServer(t)

	writer, err := ts.artifacts.ForRun("run-a")
	require.NoError(t, err)
	require.NoError(t, writer.WriteMetaReport("# Meta Report\n\nhello\n", "run-a", "corr-1"))
	require.NoError(t, writer.Close())

	rec := ts.do(t, http.MethodGet, "/v1/runs/run-a/artifacts/meta_report.md", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "# Meta Report")

	unknown := ts.do(t, http.MethodGet, "/v1/runs/run-a/artifacts/secrets.txt", nil, nil)
	assert.Equal(t, http.StatusNotFound, unknown.Code)
}

func TestEndpointCRUD(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/v1/webhooks", h{
		"url":    "https://example.com/hook",
		"events": []string{"run.completed"},
		"secret": "s3cret",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var endpoint struct {
		ID          string `json:"id"`
		TimeoutS    int    `json:"timeout_s"`
		MaxAttempts int    `json:"max_attempts"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &endpoint))
	assert.NotEmpty(t, endpoint.ID)
	assert.Equal(t, ts.cfg.Webhook.TimeoutS, endpoint.TimeoutS)
	assert.Equal(t, ts.cfg.Webhook.MaxAttempts, endpoint.MaxAttempts)

	got := ts.do(t, http.MethodGet, "/v1/webhooks/"+endpoint.ID, nil, nil)
	require.Equal(t, http.StatusOK, got.Code)

	updated := ts.do(t, http.MethodPatch, "/v1/webhooks/"+endpoint.ID, h{"active": false}, nil)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Contains(t, updated.Body.String(), `"active":false`)

	deleted := ts.do(t, http.MethodDelete, "/v1/webhooks/"+endpoint.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, deleted.Code)

	gone := ts.do(t, http.MethodGet, "/v1/webhooks/"+endpoint.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestInboundWebhook_ValidSignature(t *testing.T) {
	ts := newTestServer(t)

	body := `{"action":"push"}`
	rec := ts.do(t, http.MethodPost, "/v1/webhooks/inbound/github", json.RawMessage(body), map[string]string{
		"X-Hub-Signature-256": "sha256=" + webhook.Sign("gh-secret", []byte(body)),
	})
	assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
}

func TestInboundWebhook_InvalidSignature(t *testing.T) {
	ts := newTestServer(t)

	body := `{"action":"push"}`
	rec := ts.do(t, http.MethodPost, "/v1/webhooks/inbound/github", json.RawMessage(body), map[string]string{
		"X-Hub-Signature-256": "sha256=" + webhook.Sign("wrong", []byte(body)),
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthorized", resp.Error)
	assert.Equal(t, "Invalid webhook signature", resp.Message)
}

func TestInboundWebhook_RepeatedFailuresBlocked(t *testing.T) {
	ts := newTestServer(t)

	body := `{}`
	headers := map[string]string{
		"X-Signature-256": webhook.Sign("wrong", []byte(body)),
	}
	for i := 0; i < 10; i++ {
		rec := ts.do(t, http.MethodPost, "/v1/webhooks/inbound/github", json.RawMessage(body), headers)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	// The source IP is now blocked; even a valid signature gets 429.
	valid := map[string]string{
		"X-Signature-256": webhook.Sign("gh-secret", []byte(body)),
	}
	rec := ts.do(t, http.MethodPost, "/v1/webhooks/inbound/github", json.RawMessage(body), valid)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	cfg := config.Defaults()
	server := NewServer(cfg, Deps{})

	live := httptest.NewRecorder()
	server.Handler().ServeHTTP(live, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, live.Code)

	ready := httptest.NewRecorder()
	server.Handler().ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, ready.Code)

	metricsRec := httptest.NewRecorder()
	server.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/health/metrics", nil))
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "orchid_")
}

// h is shorthand for JSON request bodies.
type h = map[string]any
