package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. These must match the constraints in
// migrations/0001_init.up.sql.
//
// tasks_owner_active serializes per-owner admission: at most one task per
// owner may sit in pending or processing, so a second concurrent admission
// fails with a constraint error that the service maps to CONFLICT.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS tasks_owner_active
		ON tasks (owner_key)
		WHERE status IN ('pending', 'processing')`)
	if err != nil {
		return fmt.Errorf("failed to create active-task owner index: %w", err)
	}

	return nil
}
