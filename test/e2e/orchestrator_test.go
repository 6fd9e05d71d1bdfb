// Package e2e exercises the whole orchestrator through its HTTP surface:
// run submission, worker processing, artifact retrieval, and signed
// webhook delivery. Docker-gated like the other database-backed tests.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/api"
	"github.com/orchid-run/orchid/pkg/artifact"
	"github.com/orchid-run/orchid/pkg/breaker"
	"github.com/orchid-run/orchid/pkg/cache"
	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/config"
	"github.com/orchid-run/orchid/pkg/kv"
	"github.com/orchid-run/orchid/pkg/lag"
	"github.com/orchid-run/orchid/pkg/pipeline"
	"github.com/orchid-run/orchid/pkg/ratelimit"
	"github.com/orchid-run/orchid/pkg/rcr"
	"github.com/orchid-run/orchid/pkg/roleadapter"
	"github.com/orchid-run/orchid/pkg/services"
	"github.com/orchid-run/orchid/pkg/webhook"
	testdb "github.com/orchid-run/orchid/test/database"
)

// harness wires every component the way cmd/orchid does, with a stub
// role adapter and an in-process KV store.
type harness struct {
	server     *api.Server
	pool       *pipeline.Pool
	dispatcher *webhook.Dispatcher
}

type receivedEvent struct {
	body      []byte
	signature string
	eventType string
}

// hookReceiver captures signed webhook POSTs.
type hookReceiver struct {
	mu     sync.Mutex
	events []receivedEvent
}

func (r *hookReceiver) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(req.Body)
		r.mu.Lock()
		r.events = append(r.events, receivedEvent{
			body:      buf.Bytes(),
			signature: req.Header.Get("X-Signature-256"),
		})
		r.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}
}

func (r *hookReceiver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)

	clk := clock.NewReal()
	prng := clock.NewPRNG(42)
	cfg := config.Defaults()

	runs := services.NewRunService(client.Client)
	steps := services.NewStepService(client.Client)
	routing := services.NewRoutingService(client.Client)
	webhooks := services.NewWebhookService(client.Client)

	kvStore := kv.NewMemory(clk)
	limiter := ratelimit.NewLimiter(kvStore, clk)
	tiered := cache.New(cache.DefaultConfig(), cache.StrategyStandard(), kvStore, nil, clk)
	breakers := breaker.NewRegistry(breaker.DefaultConfig(), nil)
	router := rcr.NewRouter(rcr.DefaultRoles(), kvStore)
	artifacts := artifact.NewManager(t.TempDir(), clk)

	deliverer := webhook.NewDeliverer(webhooks, clk, prng, webhook.NewLogNotifier(), webhook.DelivererConfig{
		BaseBackoff: time.Millisecond,
		MaxBackoff:  10 * time.Millisecond,
		RatePerSec:  1000,
		RateBurst:   100,
	})
	dispatcher := webhook.NewDispatcher(webhooks, deliverer, webhook.NewLogNotifier(), 64, 2)
	dispatcher.Start(context.Background())
	t.Cleanup(dispatcher.Close)

	pipeCfg := pipeline.DefaultConfig()
	pipeCfg.RetryBase = time.Millisecond
	pipe := pipeline.NewPipeline(runs, steps, routing,
		lag.NewEngine(cfg.Planner), router, roleadapter.NewStubAdapter(),
		tiered, breakers, artifacts, dispatcher, clk, prng, pipeCfg)

	pool := pipeline.NewPool(pipe, runs, limiter, pipeline.PoolConfig{
		PodID:          "e2e-pod",
		Workers:        2,
		ClaimInterval:  10 * time.Millisecond,
		DepthThreshold: 16,
	})
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	server := api.NewServer(cfg, api.Deps{
		DB:         client,
		Runs:       runs,
		Steps:      steps,
		Webhooks:   webhooks,
		Pool:       pool,
		Limiter:    limiter,
		Validator:  webhook.NewValidator(webhook.StaticSecrets{}, clk, limiter, 300*time.Second),
		Dispatcher: dispatcher,
		Artifacts:  artifacts,
		Cache:      tiered,
	})
	return &harness{server: server, pool: pool, dispatcher: dispatcher}
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = *bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestOrchestrator_RunLifecycleOverHTTP(t *testing.T) {
	h := newHarness(t)

	receiver := &hookReceiver{}
	hookSrv := httptest.NewServer(receiver.handler())
	defer hookSrv.Close()

	// Subscribe an endpoint to completion events before submitting.
	created := h.do(t, http.MethodPost, "/v1/webhooks", map[string]any{
		"url":    hookSrv.URL,
		"events": []string{"run.completed"},
		"secret": "e2e-secret",
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	submitted := h.do(t, http.MethodPost, "/v1/runs", map[string]any{
		"query": "Compare the memory model of Go and Rust, and explain how each prevents data races",
	})
	require.Equal(t, http.StatusAccepted, submitted.Code, submitted.Body.String())

	var resp struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(submitted.Body.Bytes(), &resp))

	// The pool claims and processes the run in the background.
	require.Eventually(t, func() bool {
		rec := h.do(t, http.MethodGet, "/v1/runs/"+resp.RunID, nil)
		return rec.Code == http.StatusOK && bytes.Contains(rec.Body.Bytes(), []byte(`"status":"completed"`))
	}, 30*time.Second, 100*time.Millisecond, "run should complete")

	// Artifacts are served over HTTP.
	for _, name := range []string{"preflight_plan.json", "execution_trace.ndjson", "router_metrics.json", "meta_report.md"} {
		rec := h.do(t, http.MethodGet, "/v1/runs/"+resp.RunID+"/artifacts/"+name, nil)
		assert.Equal(t, http.StatusOK, rec.Code, name)
		assert.NotEmpty(t, rec.Body.Bytes(), name)
	}

	// The completion event arrives signed with the endpoint secret.
	require.Eventually(t, receiver.hasEvent, 10*time.Second, 50*time.Millisecond, "webhook should deliver")
	receiver.mu.Lock()
	event := receiver.events[0]
	receiver.mu.Unlock()
	assert.Equal(t, webhook.Sign("e2e-secret", event.body), event.signature)
	assert.Contains(t, string(event.body), resp.RunID)
}

func (r *hookReceiver) hasEvent() bool { return r.count() > 0 }

func TestOrchestrator_CancelPendingRun(t *testing.T) {
	h := newHarness(t)

	// Stop the pool so the run stays pending long enough to cancel.
	h.pool.Stop()

	submitted := h.do(t, http.MethodPost, "/v1/runs", map[string]any{"query": "slow question"})
	require.Equal(t, http.StatusAccepted, submitted.Code)
	var resp struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(submitted.Body.Bytes(), &resp))

	cancel := h.do(t, http.MethodPost, "/v1/runs/"+resp.RunID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, cancel.Code)

	rec := h.do(t, http.MethodGet, "/v1/runs/"+resp.RunID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"terminated"`)
}
