// Package models contains request/response models and business domain types.
package models

import "github.com/orchid-run/orchid/ent"

// CreateRunRequest contains fields for submitting a query run
type CreateRunRequest struct {
	RunID         string         `json:"run_id"`
	TenantID      string         `json:"tenant_id"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Query         string         `json:"query"`
	Context       map[string]any `json:"context,omitempty"`
	Seed          int64          `json:"seed"`
	Temperature   float64        `json:"temperature"`
	TimeoutMs     int            `json:"timeout_ms,omitempty"`
}

// RunFilters narrow a run listing
type RunFilters struct {
	TenantID string `form:"tenant_id"`
	Status   string `form:"status"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// RunListResponse is a paginated run listing
type RunListResponse struct {
	Runs  []*ent.Run `json:"runs"`
	Total int        `json:"total"`
}

// RunResponse wraps a Run with optional loaded edges
type RunResponse struct {
	*ent.Run
}

// StepResult carries one finished step's output back into the run record
type StepResult struct {
	StepID     int     `json:"step_id"`
	Output     string  `json:"output"`
	Confidence float64 `json:"confidence"`
	TokensUsed int     `json:"tokens_used"`
	FromCache  bool    `json:"from_cache"`
}
