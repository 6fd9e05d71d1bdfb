package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orchid-run/orchid/pkg/models"
	"github.com/orchid-run/orchid/pkg/tenant"
)

func (s *Server) createEndpoint(c *gin.Context) {
	var req models.CreateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.TenantID == "" {
		req.TenantID = tenant.FromContext(c.Request.Context())
	}
	if req.TimeoutS == 0 {
		req.TimeoutS = s.cfg.Webhook.TimeoutS
	}
	if req.MaxAttempts == 0 {
		req.MaxAttempts = s.cfg.Webhook.MaxAttempts
	}

	endpoint, err := s.webhooks.CreateEndpoint(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, endpoint)
}

func (s *Server) getEndpoint(c *gin.Context) {
	endpoint, err := s.webhooks.GetEndpoint(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

func (s *Server) updateEndpoint(c *gin.Context) {
	var req models.UpdateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	endpoint, err := s.webhooks.UpdateEndpoint(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

func (s *Server) deleteEndpoint(c *gin.Context) {
	if err := s.webhooks.DeleteEndpoint(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// inboundWebhook validates a third-party webhook's signature. Validated
// events re-enter the system through the dispatcher under the
// inbound.<source> event type. Sources blocked for repeated signature
// failures get 429 before any crypto work.
func (s *Server) inboundWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	source := c.Param("source")
	sourceIP := c.ClientIP()

	if s.limiter != nil {
		outcome, err := s.limiter.Admit(ctx, "ip:"+sourceIP, s.cfg.RateLimit.Limits())
		if err == nil && !outcome.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(outcome.RetryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded", "reason": outcome.Reason})
			return
		}
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	if err := s.validator.Validate(ctx, source, c.Request.Header, body, sourceIP); err != nil {
		s.logger.Warn("Inbound webhook rejected", "source", source, "ip", sourceIP, "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthorized",
			"message": "Invalid webhook signature",
		})
		return
	}

	if s.dispatcher != nil {
		s.dispatcher.Emit(ctx, "inbound."+source, string(body))
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
