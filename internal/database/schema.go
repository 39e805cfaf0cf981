package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements are run in order on every cold start. All of them
// are IF NOT EXISTS, so repeated calls are no-ops.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS rsvps (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		attendance VARCHAR(10) NOT NULL CHECK (attendance IN ('yes', 'no', 'maybe')),
		guest_count INTEGER NOT NULL DEFAULT 1,
		dietary_restrictions TEXT,
		message TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rsvps_email ON rsvps(email)`,
	`CREATE INDEX IF NOT EXISTS idx_rsvps_attendance ON rsvps(attendance)`,
}

// EnsureSchema creates the rsvps table and its indexes if they are
// absent. Idempotent; safe to call on every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
