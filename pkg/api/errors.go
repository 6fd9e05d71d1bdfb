package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchid-run/orchid/pkg/services"
	"github.com/orchid-run/orchid/pkg/tenant"
)

// writeServiceError maps service-layer errors to HTTP responses in one
// place so handlers stay uniform.
func writeServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	var quotaErr *tenant.QuotaExceededError
	if errors.As(err, &quotaErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": quotaErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrTerminalState) {
		c.JSON(http.StatusConflict, gin.H{"error": "run is in a terminal state"})
		return
	}

	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
