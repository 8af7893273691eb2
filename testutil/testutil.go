// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sudx-xyz/mission-api/cliparse"
	"github.com/sudx-xyz/mission-api/db"
	"github.com/sudx-xyz/mission-api/models"
)

// TestAdminKey is the admin bearer secret in GetTestConfig
const TestAdminKey = "test-admin-key"

// TestDSN returns a SQLite DSN for a fresh file in a per-test directory.
// A file is used instead of :memory: because released connections are closed.
func TestDSN(t *testing.T) string {
	t.Helper()
	return "file:" + filepath.Join(t.TempDir(), "missions.db") + "?_pragma=busy_timeout(10000)"
}

// GetTestConfig returns a standard test configuration for the given DSN
func GetTestConfig(dsn string) cliparse.Config {
	return cliparse.Config{
		Port:         5002,
		DatabaseURL:  dsn,
		DatabaseType: cliparse.DatabaseSQLite,
		AdminAPIKey:  TestAdminKey,
		Origins:      append([]string(nil), cliparse.DefaultOrigins...),
	}
}

// SetupTestDB creates a provider on a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) (*db.Provider, cliparse.Config) {
	t.Helper()

	cfg := GetTestConfig(TestDSN(t))
	provider := db.NewProvider(cfg)
	t.Cleanup(func() { provider.Close() })

	if err := provider.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return provider, cfg
}

// InsertTestSubmission writes a row with an explicit timestamp
func InsertTestSubmission(t *testing.T, provider *db.Provider, wallet string, at time.Time) {
	t.Helper()

	ctx := context.Background()
	err := provider.WithConn(ctx, func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, conn.Rebind(`
			INSERT INTO submissions (wallet_address, x_username, telegram_username, reddit_username, email, submission_timestamp)
			VALUES (?, ?, ?, '', '', ?)
		`), wallet, "x_"+wallet, "tg_"+wallet, models.Timestamp{Time: at})
		return err
	})
	if err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}
}

// CountSubmissions counts rows, optionally restricted to one wallet
func CountSubmissions(t *testing.T, provider *db.Provider, wallet string) int {
	t.Helper()

	ctx := context.Background()
	var n int
	err := provider.WithConn(ctx, func(conn *sqlx.Conn) error {
		if wallet == "" {
			return conn.GetContext(ctx, &n, `SELECT COUNT(*) FROM submissions`)
		}
		return conn.GetContext(ctx, &n, conn.Rebind(`SELECT COUNT(*) FROM submissions WHERE wallet_address = ?`), wallet)
	})
	if err != nil {
		t.Fatalf("Failed to count submissions: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns the Authorization header for the test admin key
func AdminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + TestAdminKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
