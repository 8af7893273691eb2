// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitMissionRequest: walletAddress, xUsername, telegramUsername,
    redditUsername (optional), email (optional)

SubmitMissionRequest.Validate returns a *ValidationError listing every missing
required field.

# Response Types

  - MessageResponse: message
  - ErrorResponse: error

# Domain Types

  - Submission: one stored row, tagged for both sqlx (db) and JSON
  - Timestamp: scans time.Time or SQLite text, renders "2006-01-02 15:04:05" UTC

# Errors

ValidationError values compare with errors.Is by reason:

	errors.Is(err, models.ErrMissingFields)
*/
package models
