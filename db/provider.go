// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/sudx-xyz/mission-api/cliparse"
)

// ConfigurationError means the process cannot reach a database at all.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

var ErrMissingDatabaseURL = &ConfigurationError{Msg: "TURSO_DATABASE_URL environment variable not set"}

// Execer is the write side shared by *sqlx.DB and *sqlx.Conn
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Conn is what the submission queries need from a connection
type Conn interface {
	Execer
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}

// Provider hands out one connection per unit of work. It holds no idle
// connections, so releasing a connection closes it.
type Provider struct {
	driver string
	schema []string
	db     *sqlx.DB
	err    error
}

// NewProvider prepares the driver for cfg without connecting. Configuration
// problems are returned by every later Acquire.
func NewProvider(cfg cliparse.Config) *Provider {
	p := &Provider{}

	if cfg.DatabaseURL == "" {
		p.err = ErrMissingDatabaseURL
		return p
	}

	dsn := cfg.DatabaseURL
	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		p.driver, p.schema = "postgres", postgresSchema
	case cliparse.DatabaseSQLite:
		p.driver, p.schema = "sqlite", sqliteSchema
	default:
		p.driver, p.schema = "libsql", sqliteSchema
		var err error
		dsn, err = LibSQLDSN(cfg.DatabaseURL, cfg.DatabaseToken)
		if err != nil {
			p.err = &ConfigurationError{Msg: err.Error()}
			return p
		}
	}

	db, err := sqlx.Open(p.driver, dsn)
	if err != nil {
		p.err = fmt.Errorf("failed to open %s database: %w", p.driver, err)
		return p
	}
	db.SetMaxIdleConns(0)
	p.db = db

	return p
}

// NormalizeURL rewrites any scheme to https so the libsql driver always uses
// its HTTP transport.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "https://") {
		return raw
	}
	if i := strings.Index(raw, "://"); i >= 0 {
		raw = raw[i+len("://"):]
	}
	return "https://" + raw
}

// LibSQLDSN builds the libsql driver DSN with the auth token as a query parameter
func LibSQLDSN(rawURL, token string) (string, error) {
	u, err := url.Parse(NormalizeURL(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}
	if u.Host == "" {
		return "", errors.New("invalid database URL: missing host")
	}
	if token != "" {
		q := u.Query()
		q.Set("authToken", token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Driver returns the database/sql driver name in use
func (p *Provider) Driver() string {
	return p.driver
}

// Acquire returns a dedicated connection. Callers must Close it.
func (p *Provider) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", p.driver, err)
	}
	return conn, nil
}

// WithConn runs fn on a fresh connection and releases it on every path
func (p *Provider) WithConn(ctx context.Context, fn func(conn *sqlx.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// EnsureSchema creates the submissions table if it does not exist
func (p *Provider) EnsureSchema(ctx context.Context) error {
	return p.WithConn(ctx, func(conn *sqlx.Conn) error {
		return CreateSchema(ctx, conn, p.schema)
	})
}

func (p *Provider) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}
