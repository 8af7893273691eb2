// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the mission API.

# Handler Types

SubmissionHandler serves both the public form and the admin listing. It is
built from a ConnProvider (normally *db.Provider) and the Config:

	h := handlers.NewSubmissionHandler(provider, cfg)

Every database call runs inside provider.WithConn, so each request holds its
own connection and releases it before returning.

# Intake

	POST /api/submit_mission → Submit
	GET  /api/submit_mission → SubmitNotAllowed (405)

Body: walletAddress, xUsername, telegramUsername (required), redditUsername,
email (optional). A wallet is stored at most once:

	200 {"message":"Submission successful!"}
	200 {"message":"This wallet has already been submitted."}

Client errors are 400 (bad JSON, missing fields) or 415 (non-JSON content
type). Database failures are logged with a stack and reported as a generic 500.

# Admin Listing

	GET /api/get_submissions → List

Requires Authorization: Bearer <ADMIN_API_KEY>. The check happens before any
database access. Rows come back newest first.
*/
package handlers
