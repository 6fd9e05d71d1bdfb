package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over run queries and step outputs; Ent
// schemas cannot express them, so they live here alongside the migrations.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_query_gin
		ON runs USING gin(to_tsvector('english', query))`)
	if err != nil {
		return fmt.Errorf("failed to create runs query GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_step_executions_output_gin
		ON step_executions USING gin(to_tsvector('english', COALESCE(output, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create step output GIN index: %w", err)
	}

	return nil
}
