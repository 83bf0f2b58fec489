package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates trigram GIN indexes for PostgreSQL.
// These indexes back substring search over deliberation tasks and syntheses.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Trigram support for ILIKE '%...%' search
	_, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	if err != nil {
		return fmt.Errorf("failed to create pg_trgm extension: %w", err)
	}

	// GIN index for task search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_deliberations_task_gin
		ON deliberations USING gin(task gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create task GIN index: %w", err)
	}

	// GIN index for synthesis search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_deliberations_synthesis_gin
		ON deliberations USING gin(COALESCE(synthesis, '') gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create synthesis GIN index: %w", err)
	}

	return nil
}
