// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5002)
  - DatabaseURL: Turso/libSQL URL, SQLite file or PostgreSQL connection string
  - DatabaseToken: Database auth token (libsql only)
  - DatabaseType: libsql (default), sqlite or postgres
  - AdminAPIKey: Bearer secret for GET /api/get_submissions
  - Origins: CORS allow list, "*" allows any origin

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-token      Database auth token
	-admin-key  Admin API key
	-origins    Comma separated CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	TURSO_DATABASE_URL  → -d (DATABASE_URL also accepted)
	TURSO_AUTH_TOKEN    → -token
	DATABASE_TYPE       → -t
	ADMIN_API_KEY       → -admin-key
	CORS_ORIGINS        → -origins

CLI flags take precedence over environment variables. main preloads the
environment from .env.development.local and .env when present.

# Validation

ParseFlags returns an error for an unparsable PORT or an unknown database type.
A missing database URL is accepted here; the connection provider
reports it on first use.
*/
package cliparse
