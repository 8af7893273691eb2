// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudx-xyz/mission-api/cliparse"
	"github.com/sudx-xyz/mission-api/models"
	"github.com/sudx-xyz/mission-api/testutil"
)

// countingProvider fails every acquisition and records how often it was asked
type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) WithConn(ctx context.Context, fn func(conn *sqlx.Conn) error) error {
	p.calls++
	return p.err
}

func TestSubmit(t *testing.T) {
	provider, cfg := testutil.SetupTestDB(t)
	handler := NewSubmissionHandler(provider, cfg)

	tests := []struct {
		name            string
		body            interface{}
		headers         map[string]string
		expectedStatus  int
		expectedMessage string
		expectedError   string
		wallet          string
		expectedRows    int
	}{
		{
			name:            "new wallet",
			body:            map[string]string{"walletAddress": "0xABC", "xUsername": "alice", "telegramUsername": "@alice"},
			expectedStatus:  http.StatusOK,
			expectedMessage: models.MessageSubmitted,
			wallet:          "0xABC",
			expectedRows:    1,
		},
		{
			name:            "same wallet again",
			body:            map[string]string{"walletAddress": "0xABC", "xUsername": "alice", "telegramUsername": "@alice"},
			expectedStatus:  http.StatusOK,
			expectedMessage: models.MessageAlreadySubmitted,
			wallet:          "0xABC",
			expectedRows:    1,
		},
		{
			name:            "same wallet with different handles",
			body:            map[string]string{"walletAddress": "0xABC", "xUsername": "bob", "telegramUsername": "@bob", "email": "bob@example.com"},
			expectedStatus:  http.StatusOK,
			expectedMessage: models.MessageAlreadySubmitted,
			wallet:          "0xABC",
			expectedRows:    1,
		},
		{
			name:            "optional fields present",
			body:            map[string]string{"walletAddress": "0xDEF", "xUsername": "carol", "telegramUsername": "@carol", "redditUsername": "u/carol", "email": "carol@example.com"},
			expectedStatus:  http.StatusOK,
			expectedMessage: models.MessageSubmitted,
			wallet:          "0xDEF",
			expectedRows:    1,
		},
		{
			name:            "content type with charset",
			body:            map[string]string{"walletAddress": "0x123", "xUsername": "dave", "telegramUsername": "@dave"},
			headers:         map[string]string{"Content-Type": "application/json; charset=utf-8"},
			expectedStatus:  http.StatusOK,
			expectedMessage: models.MessageSubmitted,
			wallet:          "0x123",
			expectedRows:    1,
		},
		{
			name:           "missing wallet and telegram",
			body:           map[string]string{"xUsername": "alice"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: walletAddress, telegramUsername",
		},
		{
			name:           "blank x handle",
			body:           map[string]string{"walletAddress": "0xBLANK", "xUsername": "  ", "telegramUsername": "@t"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: xUsername",
			wallet:         "0xBLANK",
			expectedRows:   0,
		},
		{
			name:           "malformed JSON",
			body:           `{"walletAddress": "0xBAD"`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  models.ReasonInvalidJSON,
			wallet:         "0xBAD",
			expectedRows:   0,
		},
		{
			name:           "JSON array",
			body:           `[{"walletAddress":"0xARR"}]`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  models.ReasonInvalidJSON,
		},
		{
			name:           "trailing garbage after object",
			body:           `{"walletAddress":"0xTRAIL1","xUsername":"t","telegramUsername":"@t"} trailing-garbage`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  models.ReasonInvalidJSON,
			wallet:         "0xTRAIL1",
			expectedRows:   0,
		},
		{
			name:           "two concatenated objects",
			body:           `{"walletAddress":"0xTRAIL2","xUsername":"t","telegramUsername":"@t"}{"x":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  models.ReasonInvalidJSON,
			wallet:         "0xTRAIL2",
			expectedRows:   0,
		},
		{
			name:           "stray closing bracket",
			body:           `{"walletAddress":"0xTRAIL3","xUsername":"t","telegramUsername":"@t"}]`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  models.ReasonInvalidJSON,
			wallet:         "0xTRAIL3",
			expectedRows:   0,
		},
		{
			name:            "trailing whitespace is fine",
			body:            "{\"walletAddress\":\"0xWS\",\"xUsername\":\"w\",\"telegramUsername\":\"@w\"}\n\t ",
			expectedStatus:  http.StatusOK,
			expectedMessage: models.MessageSubmitted,
			wallet:          "0xWS",
			expectedRows:    1,
		},
		{
			name:           "form encoded",
			body:           `walletAddress=0xFORM`,
			headers:        map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
			expectedStatus: http.StatusUnsupportedMediaType,
			expectedError:  models.ReasonUnsupportedFormat,
			wallet:         "0xFORM",
			expectedRows:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/submit_mission", tt.body, tt.headers)
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedMessage != "" {
				var resp models.MessageResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.wallet != "" {
				assert.Equal(t, tt.expectedRows, testutil.CountSubmissions(t, provider, tt.wallet))
			}
		})
	}

	// Only the four distinct valid wallets were stored
	assert.Equal(t, 4, testutil.CountSubmissions(t, provider, ""))
}

func TestSubmit_EmptyBody(t *testing.T) {
	provider, cfg := testutil.SetupTestDB(t)
	handler := NewSubmissionHandler(provider, cfg)

	req := httptest.NewRequest("POST", "/api/submit_mission", nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, 0, testutil.CountSubmissions(t, provider, ""))
}

func TestSubmit_DatabaseFailure(t *testing.T) {
	provider := &countingProvider{err: errors.New("dial tcp: connection refused")}
	handler := NewSubmissionHandler(provider, cliparse.Config{})

	req := testutil.MakeRequest("POST", "/api/submit_mission",
		map[string]string{"walletAddress": "0xABC", "xUsername": "alice", "telegramUsername": "@alice"}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, 1, provider.calls)
	assert.NotContains(t, w.Body.String(), "connection refused", "internal detail must not leak")

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "An internal server error occurred.", resp.Error)
}

func TestSubmit_ValidationSkipsDatabase(t *testing.T) {
	provider := &countingProvider{}
	handler := NewSubmissionHandler(provider, cliparse.Config{})

	req := testutil.MakeRequest("POST", "/api/submit_mission", map[string]string{"xUsername": "alice"}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Zero(t, provider.calls)
}

func TestSubmitNotAllowed(t *testing.T) {
	handler := NewSubmissionHandler(&countingProvider{}, cliparse.Config{})

	w := httptest.NewRecorder()
	handler.SubmitNotAllowed(w, httptest.NewRequest("GET", "/api/submit_mission", nil))

	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
	assert.Equal(t, "POST", w.Header().Get("Allow"))

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MessagePostOnly, resp.Message)
}

func TestList(t *testing.T) {
	provider, cfg := testutil.SetupTestDB(t)
	handler := NewSubmissionHandler(provider, cfg)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testutil.InsertTestSubmission(t, provider, "0xOLD", base)
	testutil.InsertTestSubmission(t, provider, "0xNEW", base.Add(2*time.Hour))
	testutil.InsertTestSubmission(t, provider, "0xMID", base.Add(time.Hour))

	req := testutil.MakeRequest("GET", "/api/get_submissions", nil, testutil.AdminHeaders())
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var subs []models.Submission
	testutil.AssertJSON(t, w, &subs)
	require.Len(t, subs, 3)
	assert.Equal(t, "0xNEW", subs[0].WalletAddress)
	assert.Equal(t, "0xMID", subs[1].WalletAddress)
	assert.Equal(t, "0xOLD", subs[2].WalletAddress)
	assert.Equal(t, "x_0xNEW", subs[0].XUsername)
	assert.True(t, subs[0].SubmissionTimestamp.Equal(base.Add(2*time.Hour)))
}

func TestList_FieldNames(t *testing.T) {
	provider, cfg := testutil.SetupTestDB(t)
	handler := NewSubmissionHandler(provider, cfg)

	testutil.InsertTestSubmission(t, provider, "0xABC", time.Now())

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/api/get_submissions", nil, testutil.AdminHeaders()))
	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []map[string]interface{}
	testutil.AssertJSON(t, w, &rows)
	require.Len(t, rows, 1)
	for _, key := range []string{"id", "wallet_address", "x_username", "telegram_username", "reddit_username", "email", "submission_timestamp"} {
		assert.Contains(t, rows[0], key)
	}
	assert.Len(t, rows[0], 7)
}

func TestList_Empty(t *testing.T) {
	provider, cfg := testutil.SetupTestDB(t)
	handler := NewSubmissionHandler(provider, cfg)

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/api/get_submissions", nil, testutil.AdminHeaders()))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestList_Unauthorized(t *testing.T) {
	cfg := testutil.GetTestConfig("unused")

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong token", "Bearer wrong"},
		{"raw key", testutil.TestAdminKey},
		{"basic scheme", "Basic " + testutil.TestAdminKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &countingProvider{}
			handler := NewSubmissionHandler(provider, cfg)

			req := httptest.NewRequest("GET", "/api/get_submissions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.List(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
			assert.Zero(t, provider.calls, "no database access before authentication")

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, "Unauthorized", resp.Error)
		})
	}
}

func TestList_AdminKeyNotConfigured(t *testing.T) {
	provider := &countingProvider{}
	handler := NewSubmissionHandler(provider, cliparse.Config{})

	req := httptest.NewRequest("GET", "/api/get_submissions", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.Zero(t, provider.calls)
}

func TestList_DatabaseFailure(t *testing.T) {
	provider := &countingProvider{err: errors.New("no such table: submissions")}
	handler := NewSubmissionHandler(provider, testutil.GetTestConfig("unused"))

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/api/get_submissions", nil, testutil.AdminHeaders()))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, 1, provider.calls)
	assert.NotContains(t, w.Body.String(), "no such table")
}

func TestCheckJSONContentType(t *testing.T) {
	tests := []struct {
		contentType string
		wantErr     bool
	}{
		{"", false},
		{"application/json", false},
		{"application/json; charset=utf-8", false},
		{"text/plain", true},
		{"application/x-www-form-urlencoded", true},
		{"not a media type;;", true},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/submit_mission", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			err := checkJSONContentType(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
