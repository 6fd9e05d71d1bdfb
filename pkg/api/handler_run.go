package api

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/pkg/models"
	"github.com/orchid-run/orchid/pkg/tenant"
)

// CreateRunRequest is the POST /v1/runs body.
type CreateRunRequest struct {
	Query   string         `json:"query" binding:"required"`
	Context map[string]any `json:"context,omitempty"`
	Config  *RunConfig     `json:"config,omitempty"`
}

// RunConfig carries per-run overrides of the deployment defaults.
type RunConfig struct {
	Seed        *int64   `json:"seed,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	TimeoutMs   int      `json:"timeout_ms,omitempty"`
}

func (s *Server) createRun(c *gin.Context) {
	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	tenantID := tenant.FromContext(ctx)
	if err := s.quota.AllowRun(ctx, tenantID); err != nil {
		writeServiceError(c, err)
		return
	}

	seed := s.cfg.Seed()
	temperature := s.cfg.Temperature
	timeoutMs := 0
	if req.Config != nil {
		if req.Config.Seed != nil {
			seed = *req.Config.Seed
		}
		if req.Config.Temperature != nil {
			temperature = *req.Config.Temperature
		}
		timeoutMs = req.Config.TimeoutMs
	}

	created, err := s.runs.CreateRun(ctx, models.CreateRunRequest{
		RunID:         uuid.NewString(),
		TenantID:      tenantID,
		CorrelationID: c.GetString("request_id"),
		Query:         req.Query,
		Context:       req.Context,
		Seed:          seed,
		Temperature:   temperature,
		TimeoutMs:     timeoutMs,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"run_id": created.ID, "status": created.Status})
}

func (s *Server) getRun(c *gin.Context) {
	withEdges := c.Query("include") == "steps"
	r, err := s.runs.GetRun(c.Request.Context(), c.Param("id"), withEdges)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) listSteps(c *gin.Context) {
	steps, err := s.steps.ListSteps(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

// cancelRun terminates a run. In-flight runs on this pod are cancelled
// through the pool; runs not yet claimed are finalized directly.
func (s *Server) cancelRun(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	r, err := s.runs.GetRun(ctx, id, false)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if s.pool != nil && s.pool.Cancel(id) {
		c.JSON(http.StatusAccepted, gin.H{"run_id": id, "status": "cancelling"})
		return
	}

	err = s.runs.FinalizeRun(ctx, id, run.StatusTerminated,
		r.StepCount, r.TokenTotal, r.ArtifactsPath, "CANCELLED", "cancelled before execution")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"run_id": id, "status": run.StatusTerminated})
}

func (s *Server) getArtifact(c *gin.Context) {
	name := c.Param("name")
	reader, err := s.artifacts.Open(c.Param("id"), name)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	defer reader.Close()

	c.Header("Content-Type", artifactContentType(name))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		s.logger.Warn("Artifact stream interrupted", "run_id", c.Param("id"), "name", name, "error", err)
	}
}

func artifactContentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".ndjson"):
		return "application/x-ndjson"
	case strings.HasSuffix(name, ".json"):
		return "application/json"
	case strings.HasSuffix(name, ".md"):
		return "text/markdown; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
