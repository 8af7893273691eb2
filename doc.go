// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the mission API server.

The mission API collects airdrop mission submissions (wallet address plus
X, Telegram, Reddit handles and email) from the public site and lets an
admin list them.

# Starting the Server

Configuration comes from flags or environment variables; .env.development.local
and .env are loaded first when present:

	TURSO_DATABASE_URL=libsql://... TURSO_AUTH_TOKEN=... ADMIN_API_KEY=... go run .

Or against a local SQLite file:

	go run . -t sqlite -d "file:missions.db" -admin-key dev

# Configuration

  - TURSO_DATABASE_URL (-d): database URL; missing URL stops startup
  - TURSO_AUTH_TOKEN (-token): database auth token
  - DATABASE_TYPE (-t): libsql (default), sqlite or postgres
  - ADMIN_API_KEY (-admin-key): bearer secret for the admin listing
  - CORS_ORIGINS (-origins): allowed origins, "*" for any
  - PORT (-p): server port (default: 5002)

# Architecture

  - handlers: intake and admin listing
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, recovery, logging, JSON helpers
  - models: request/response types and validation errors
  - auth: admin bearer check
  - db: connection provider, schema, queries
  - cliparse: configuration parsing
*/
package main
