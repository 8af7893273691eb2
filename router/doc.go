// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the mission API.

# Route Registration

NewRouter returns the full handler stack:

	handler := router.NewRouter(provider, cfg)

Order, outermost first: CORS, request ID, panic recovery, mux. Preflight
requests are answered by CORS before reaching the mux.

# Endpoints

Health:

	GET /health

Public intake:

	POST /api/submit_mission - Store a submission (once per wallet)
	GET  /api/submit_mission - 405 with a hint to use POST

Admin (requires Authorization: Bearer <ADMIN_API_KEY>):

	GET /api/get_submissions - All submissions, newest first
*/
package router
