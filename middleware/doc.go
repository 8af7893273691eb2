// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The completion line is written even when the handler
panics, so API routes put Recoverer inside the logger:

	mux.HandleFunc("POST /api/submit_mission", middleware.WithLogging(middleware.Recoverer(handler)))

# Request IDs and Recovery

The router wraps the mux so every request carries an X-Request-ID and a panic
becomes a generic 500. Recoverer only writes the 500 when the handler has not
started its response yet:

	handler := middleware.WithRequestID(middleware.Recoverer(mux))

LogInternalError records the error, request ID and stack for failures that
the client only sees as a generic message.

# CORS Middleware

Enable cross-origin requests for the website and the admin dashboard:

	handler = middleware.CORS(cfg, handler)

Backed by github.com/rs/cors. Allows GET, POST, OPTIONS with Content-Type and
Authorization from cfg.Origins, or from any origin when the list is "*".

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.SubmitMissionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonInvalidJSON)
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
