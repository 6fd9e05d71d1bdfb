package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orchid-run/orchid/pkg/metrics"
	"github.com/orchid-run/orchid/pkg/ratelimit"
	"github.com/orchid-run/orchid/pkg/tenant"
)

// HeaderRequestID carries the request correlation id. Inbound values are
// honored so callers can trace across systems.
const HeaderRequestID = "X-Request-Id"

// requestID assigns a correlation id to every request and echoes it back.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// tenantContext resolves X-Tenant-ID and attaches it to the request
// context for the service layer.
func tenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(tenant.HeaderName)
		c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), id))
		c.Next()
	}
}

// rateLimit admits run submissions through the shared limiter. Denials
// carry the standard X-RateLimit headers plus Retry-After.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		clientID := ratelimit.ClientID(c.GetHeader("X-API-Key"), tenant.FromContext(c.Request.Context()), c.ClientIP())
		outcome, err := s.limiter.Admit(c.Request.Context(), clientID, s.cfg.RateLimit.Limits())
		if err != nil {
			s.logger.Error("Rate limit check failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(outcome.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(outcome.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(outcome.ResetUnix, 10))
		c.Header("X-RateLimit-Algorithm", string(outcome.Algorithm))

		if !outcome.Allowed {
			metrics.RecordRateLimitDenial(string(outcome.Algorithm), outcome.Reason)
			c.Header("Retry-After", strconv.Itoa(int(outcome.RetryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":  "rate limit exceeded",
				"reason": outcome.Reason,
			})
			return
		}
		c.Next()
	}
}
