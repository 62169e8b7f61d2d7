package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent so it is safe to
// run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS applications (
		id                 TEXT PRIMARY KEY,
		full_name          TEXT NOT NULL,
		age                TEXT NOT NULL,
		parent_name        TEXT NOT NULL,
		occupation         TEXT NOT NULL,
		address            TEXT NOT NULL,
		relationship       TEXT NOT NULL,
		annual_income      TEXT NOT NULL,
		requisition_amount TEXT NOT NULL,
		nature_requisition TEXT NOT NULL,
		fund_amount        TEXT NOT NULL,
		submitted_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_applications_submitted ON applications(submitted_at)`,

	`CREATE TABLE IF NOT EXISTS application_subjects (
		application_id TEXT NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL CHECK(position BETWEEN 1 AND 5),
		name           TEXT NOT NULL,
		total_marks    TEXT NOT NULL,
		score          TEXT NOT NULL,
		PRIMARY KEY (application_id, position)
	)`,
}
