// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/sudx-xyz/mission-api/cliparse"
	"github.com/sudx-xyz/mission-api/handlers"
	"github.com/sudx-xyz/mission-api/middleware"
)

// NewRouter wires the routes and wraps them with request IDs, panic
// recovery and CORS.
func NewRouter(provider handlers.ConnProvider, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	submissionHandler := handlers.NewSubmissionHandler(provider, cfg)

	// API routes recover inside the logger so a panic still gets its completion line
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.Recoverer(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public intake
	mux.HandleFunc("POST /api/submit_mission", api(submissionHandler.Submit))
	mux.HandleFunc("GET /api/submit_mission", api(submissionHandler.SubmitNotAllowed))

	// Admin
	mux.HandleFunc("GET /api/get_submissions", api(submissionHandler.List))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mission-api v1"))
	})

	return middleware.CORS(cfg, middleware.WithRequestID(middleware.Recoverer(mux)))
}
