package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS account (
		account_id SERIAL PRIMARY KEY,
		username   VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS message (
		message_id        SERIAL PRIMARY KEY,
		posted_by         INTEGER NOT NULL REFERENCES account (account_id),
		message_text      VARCHAR(255) NOT NULL,
		time_posted_epoch BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS message_posted_by_idx ON message (posted_by)`,
}

// EnsureSchema creates the account and message tables when they are missing.
// It never alters existing tables.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
