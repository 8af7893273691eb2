// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sudx-xyz/mission-api/auth"
	"github.com/sudx-xyz/mission-api/cliparse"
	"github.com/sudx-xyz/mission-api/db"
	"github.com/sudx-xyz/mission-api/middleware"
	"github.com/sudx-xyz/mission-api/models"
)

// ConnProvider hands out a connection scoped to one call of fn
type ConnProvider interface {
	WithConn(ctx context.Context, fn func(conn *sqlx.Conn) error) error
}

type SubmissionHandler struct {
	provider ConnProvider
	cfg      cliparse.Config
}

func NewSubmissionHandler(provider ConnProvider, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{provider: provider, cfg: cfg}
}

// Submit handles POST /api/submit_mission
// Stores the submission once per wallet; repeats are reported, not rejected
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := checkJSONContentType(r); err != nil {
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	var req models.SubmitMissionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		slog.Info("rejected submission body", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonInvalidJSON)
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var inserted bool
	err := h.provider.WithConn(r.Context(), func(conn *sqlx.Conn) error {
		var err error
		inserted, err = db.InsertSubmission(r.Context(), conn, req)
		return err
	})
	if err != nil {
		middleware.LogInternalError(r, "submission failed", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "An internal server error occurred.")
		return
	}

	slog.Info("submission processed", "wallet_address", req.WalletAddress, "inserted", inserted)

	message := models.MessageAlreadySubmitted
	if inserted {
		message = models.MessageSubmitted
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: message})
}

// checkJSONContentType accepts a missing Content-Type or any application/json variant
func checkJSONContentType(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "application/json" {
		return models.ErrUnsupportedFormat
	}
	return nil
}

// SubmitNotAllowed handles GET /api/submit_mission
func (h *SubmissionHandler) SubmitNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	middleware.JSONResponse(w, http.StatusMethodNotAllowed, models.MessageResponse{Message: models.MessagePostOnly})
}

// List handles GET /api/get_submissions
// Requires Authorization: Bearer <admin key>; returns all rows newest first
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminBearer(r.Header.Get("Authorization"), h.cfg.AdminAPIKey); err != nil {
		if errors.Is(err, auth.ErrAdminKeyNotConfigured) {
			slog.Error("ADMIN_API_KEY is not configured")
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Server security configuration is incomplete.")
			return
		}
		slog.Warn("unauthorized listing attempt", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var submissions []models.Submission
	err := h.provider.WithConn(r.Context(), func(conn *sqlx.Conn) error {
		var err error
		submissions, err = db.ListSubmissions(r.Context(), conn)
		return err
	})
	if err != nil {
		middleware.LogInternalError(r, "failed to fetch submissions", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch data from database.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, submissions)
}
