// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns database access: driver selection, scoped connections,
schema creation and the submission queries.

# Connection Provider

NewProvider picks a driver from Config.DatabaseType:

  - libsql (default): Turso over HTTPS. Any URL scheme is rewritten to
    https:// and the auth token is passed as the authToken parameter.
  - sqlite: local file through modernc.org/sqlite
  - postgres: lib/pq

Connections are scoped to a unit of work:

	err := provider.WithConn(ctx, func(conn *sqlx.Conn) error {
		inserted, err = db.InsertSubmission(ctx, conn, req)
		return err
	})

The pool keeps no idle connections, so every request opens its own and
closes it on release. A missing database URL yields ErrMissingDatabaseURL
from every acquisition.

# Schema Creation

EnsureSchema creates the submissions table:

	if err := provider.EnsureSchema(ctx); err != nil {
		slog.Error("schema creation failed", "error", err)
	}

Safe to call multiple times - uses IF NOT EXISTS. Tables from the first
release gain an email column.

# Tables

  - submissions: one row per wallet_address (UNIQUE)

Index on submission_timestamp DESC for the admin listing.

# Queries

Statements are written with ? placeholders and rebound by sqlx for the
active driver. The insert uses ON CONFLICT (wallet_address) DO NOTHING, so a
duplicate wallet affects zero rows instead of failing.
*/
package db
