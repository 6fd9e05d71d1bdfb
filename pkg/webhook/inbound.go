package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/orchid-run/orchid/pkg/clock"
	"github.com/orchid-run/orchid/pkg/ratelimit"
)

// ErrInvalidSignature covers every inbound validation failure: missing or
// wrong signature, unknown source, or a replayed timestamp. Callers map it
// to a generic 401 without leaking which check failed.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// signatureHeaders is the extraction precedence order.
var signatureHeaders = []string{
	"X-Signature-256",
	"X-Hub-Signature-256",
	"X-Signature",
	"X-Hub-Signature",
	"Signature",
}

// SecretSource resolves the shared secret for an inbound webhook source.
type SecretSource interface {
	Secret(ctx context.Context, source string) (string, error)
}

// StaticSecrets is a map-backed SecretSource for configuration-defined
// sources.
type StaticSecrets map[string]string

func (s StaticSecrets) Secret(_ context.Context, source string) (string, error) {
	secret, ok := s[source]
	if !ok {
		return "", fmt.Errorf("no secret configured for source %q", source)
	}
	return secret, nil
}

// EnvSecrets resolves secrets from WEBHOOK_SECRET_<SOURCE> environment
// variables. Dashes in the source name become underscores.
type EnvSecrets struct{}

func (EnvSecrets) Secret(_ context.Context, source string) (string, error) {
	key := "WEBHOOK_SECRET_" + strings.ToUpper(strings.ReplaceAll(source, "-", "_"))
	if secret := os.Getenv(key); secret != "" {
		return secret, nil
	}
	return "", fmt.Errorf("no secret configured for source %q", source)
}

// Validator checks inbound webhook signatures: header extraction in
// precedence order, algorithm inference, constant-time comparison over the
// raw body, and a replay window on X-Timestamp. Repeated failures from the
// same source IP feed the rate limiter's violation tracking.
type Validator struct {
	secrets SecretSource
	memo    *gocache.Cache
	clk     clock.Clock
	limiter *ratelimit.Limiter
	maxSkew time.Duration
}

// NewValidator creates a validator. limiter may be nil, in which case
// failures are not tracked. maxSkew <= 0 defaults to 300s.
func NewValidator(secrets SecretSource, clk clock.Clock, limiter *ratelimit.Limiter, maxSkew time.Duration) *Validator {
	if maxSkew <= 0 {
		maxSkew = 300 * time.Second
	}
	return &Validator{
		secrets: secrets,
		memo:    gocache.New(5*time.Minute, 10*time.Minute),
		clk:     clk,
		limiter: limiter,
		maxSkew: maxSkew,
	}
}

// Validate checks the signature over body for the given source. sourceIP
// identifies the sender for violation tracking.
func (v *Validator) Validate(ctx context.Context, source string, headers http.Header, body []byte, sourceIP string) error {
	if err := v.validate(ctx, source, headers, body); err != nil {
		if v.limiter != nil && sourceIP != "" {
			v.limiter.RecordViolation(ctx, "ip:"+sourceIP)
		}
		return err
	}
	return nil
}

func (v *Validator) validate(ctx context.Context, source string, headers http.Header, body []byte) error {
	raw, headerName := extractSignature(headers)
	if raw == "" {
		return fmt.Errorf("%w: no signature header", ErrInvalidSignature)
	}
	signature, algo := stripPrefix(raw)
	if algo == "" {
		algo = inferAlgorithm(headerName, signature)
	}

	secret, err := v.secret(ctx, source)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	expected, err := compute(algo, secret, body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	if !hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected)) {
		return fmt.Errorf("%w: signature mismatch", ErrInvalidSignature)
	}

	if ts := headers.Get(HeaderTimestamp); ts != "" {
		sent, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: malformed timestamp", ErrInvalidSignature)
		}
		skew := v.clk.Now().Unix() - sent
		if skew < 0 {
			skew = -skew
		}
		if time.Duration(skew)*time.Second > v.maxSkew {
			return fmt.Errorf("%w: timestamp outside replay window", ErrInvalidSignature)
		}
	}
	return nil
}

// secret memoizes lookups so hot sources do not hit the secret source on
// every request.
func (v *Validator) secret(ctx context.Context, source string) (string, error) {
	if cached, ok := v.memo.Get(source); ok {
		return cached.(string), nil
	}
	secret, err := v.secrets.Secret(ctx, source)
	if err != nil {
		return "", err
	}
	v.memo.Set(source, secret, gocache.DefaultExpiration)
	return secret, nil
}

func extractSignature(headers http.Header) (value, headerName string) {
	for _, name := range signatureHeaders {
		if v := headers.Get(name); v != "" {
			return v, name
		}
	}
	return "", ""
}

// stripPrefix removes a sha256=/sha1=/sha512= prefix and reports the
// algorithm it named.
func stripPrefix(raw string) (signature, algo string) {
	for _, prefix := range []string{"sha256=", "sha1=", "sha512="} {
		if strings.HasPrefix(raw, prefix) {
			return raw[len(prefix):], strings.TrimSuffix(prefix, "=")
		}
	}
	return raw, ""
}

// inferAlgorithm picks the algorithm from the header name, then from the
// hex digest length: 40 is sha1, 64 is sha256, 128 is sha512.
func inferAlgorithm(headerName, signature string) string {
	if strings.Contains(headerName, "256") {
		return "sha256"
	}
	switch len(signature) {
	case 40:
		return "sha1"
	case 64:
		return "sha256"
	case 128:
		return "sha512"
	default:
		return "sha256"
	}
}

func compute(algo, secret string, body []byte) (string, error) {
	var newHash func() hash.Hash
	switch algo {
	case "sha1":
		newHash = sha1.New
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return "", fmt.Errorf("unsupported algorithm %q", algo)
	}
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
