// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"log/slog"
)

// CreateSchema creates the submissions table and its index.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn Execer, statements []string) error {
	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	// Tables created by the first release have no email column
	if _, err := conn.ExecContext(ctx, `SELECT email FROM submissions LIMIT 0`); err != nil {
		slog.Info("adding email column to submissions")
		if _, err := conn.ExecContext(ctx, `ALTER TABLE submissions ADD COLUMN email TEXT DEFAULT ''`); err != nil {
			return fmt.Errorf("failed to add email column: %w", err)
		}
	}

	return nil
}

var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    wallet_address TEXT NOT NULL UNIQUE,
    x_username TEXT NOT NULL,
    telegram_username TEXT NOT NULL,
    reddit_username TEXT,
    email TEXT,
    submission_timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_timestamp ON submissions(submission_timestamp DESC)`,
}

var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS submissions (
    id BIGSERIAL PRIMARY KEY,
    wallet_address TEXT NOT NULL UNIQUE,
    x_username TEXT NOT NULL,
    telegram_username TEXT NOT NULL,
    reddit_username TEXT,
    email TEXT,
    submission_timestamp TIMESTAMP NOT NULL DEFAULT (NOW() AT TIME ZONE 'utc')
)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_timestamp ON submissions(submission_timestamp DESC)`,
}
