package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/kv"
	"github.com/orchid-run/orchid/pkg/ratelimit"
)

func newTestValidator(t *testing.T) (*Validator, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	secrets := StaticSecrets{"github": "gh-secret", "stripe": "st-secret"}
	return NewValidator(secrets, clk, nil, 300*time.Second), clk
}

func TestValidator_AcceptsSha256WithPrefix(t *testing.T) {
	v, _ := newTestValidator(t)
	body := []byte(`{"action":"push"}`)

	headers := http.Header{}
	headers.Set("X-Hub-Signature-256", "sha256="+Sign("gh-secret", body))

	err := v.Validate(context.Background(), "github", headers, body, "10.0.0.1")
	assert.NoError(t, err)
}

func TestValidator_HeaderPrecedence(t *testing.T) {
	v, _ := newTestValidator(t)
	body := []byte(`{}`)

	// X-Signature-256 wins over a bogus lower-precedence header.
	headers := http.Header{}
	headers.Set("X-Signature-256", Sign("gh-secret", body))
	headers.Set("X-Hub-Signature", "sha1=deadbeef")

	err := v.Validate(context.Background(), "github", headers, body, "10.0.0.1")
	assert.NoError(t, err)
}

func TestValidator_InfersAlgorithmFromLength(t *testing.T) {
	v, _ := newTestValidator(t)
	body := []byte(`{"id":"evt_1"}`)

	sha1Mac := hmac.New(sha1.New, []byte("st-secret"))
	sha1Mac.Write(body)
	sha512Mac := hmac.New(sha512.New, []byte("st-secret"))
	sha512Mac.Write(body)

	t.Run("40 hex chars is sha1", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Signature", hex.EncodeToString(sha1Mac.Sum(nil)))
		assert.NoError(t, v.Validate(context.Background(), "stripe", headers, body, ""))
	})

	t.Run("128 hex chars is sha512", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Signature", hex.EncodeToString(sha512Mac.Sum(nil)))
		assert.NoError(t, v.Validate(context.Background(), "stripe", headers, body, ""))
	})
}

func TestValidator_RejectsBadSignature(t *testing.T) {
	v, _ := newTestValidator(t)
	body := []byte(`{}`)

	headers := http.Header{}
	headers.Set("X-Signature-256", Sign("wrong-secret", body))

	err := v.Validate(context.Background(), "github", headers, body, "10.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidator_RejectsMissingHeaderAndUnknownSource(t *testing.T) {
	v, _ := newTestValidator(t)
	body := []byte(`{}`)

	err := v.Validate(context.Background(), "github", http.Header{}, body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	headers := http.Header{}
	headers.Set("X-Signature-256", Sign("gh-secret", body))
	err = v.Validate(context.Background(), "unknown", headers, body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidator_ReplayWindow(t *testing.T) {
	v, clk := newTestValidator(t)
	body := []byte(`{}`)

	fresh := http.Header{}
	fresh.Set("X-Signature-256", Sign("gh-secret", body))
	fresh.Set(HeaderTimestamp, strconv.FormatInt(clk.Now().Unix(), 10))
	assert.NoError(t, v.Validate(context.Background(), "github", fresh, body, ""))

	stale := http.Header{}
	stale.Set("X-Signature-256", Sign("gh-secret", body))
	stale.Set(HeaderTimestamp, strconv.FormatInt(clk.Now().Add(-301*time.Second).Unix(), 10))
	err := v.Validate(context.Background(), "github", stale, body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Contains(t, err.Error(), "replay")
}

func TestValidator_FailuresFeedViolationTracking(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := kv.NewMemory(clk)
	limiter := ratelimit.NewLimiter(store, clk)
	v := NewValidator(StaticSecrets{"github": "gh-secret"}, clk, limiter, 300*time.Second)

	body := []byte(`{}`)
	headers := http.Header{}
	headers.Set("X-Signature-256", Sign("wrong-secret", body))

	// Enough failures to cross the block threshold.
	for i := 0; i < 10; i++ {
		err := v.Validate(context.Background(), "github", headers, body, "203.0.113.7")
		require.ErrorIs(t, err, ErrInvalidSignature)
	}

	outcome, err := limiter.Admit(context.Background(), "ip:203.0.113.7", ratelimit.Limits{
		Algorithm: ratelimit.FixedWindow,
		Limit:     100,
	})
	require.NoError(t, err)
	assert.False(t, outcome.Allowed)
	assert.Equal(t, "blocked", outcome.Reason)
}

func TestValidator_MemoizesSecretLookups(t *testing.T) {
	calls := 0
	source := countingSecrets{secrets: StaticSecrets{"github": "gh-secret"}, calls: &calls}
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	v := NewValidator(source, clk, nil, 300*time.Second)

	body := []byte(`{}`)
	headers := http.Header{}
	headers.Set("X-Signature-256", Sign("gh-secret", body))

	for i := 0; i < 5; i++ {
		require.NoError(t, v.Validate(context.Background(), "github", headers, body, ""))
	}
	assert.Equal(t, 1, calls, "secret source hit once, then memoized")
}

type countingSecrets struct {
	secrets StaticSecrets
	calls   *int
}

func (c countingSecrets) Secret(ctx context.Context, source string) (string, error) {
	*c.calls++
	return c.secrets.Secret(ctx, source)
}
