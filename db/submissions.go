// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/sudx-xyz/mission-api/models"
)

const insertSubmission = `
	INSERT INTO submissions (wallet_address, x_username, telegram_username, reddit_username, email)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (wallet_address) DO NOTHING
`

const listSubmissions = `
	SELECT id, wallet_address, x_username, telegram_username,
	       COALESCE(reddit_username, '') AS reddit_username,
	       COALESCE(email, '') AS email,
	       submission_timestamp
	FROM submissions
	ORDER BY submission_timestamp DESC, id DESC
`

// InsertSubmission stores req unless its wallet is already present.
// It reports whether a new row was written.
func InsertSubmission(ctx context.Context, conn Conn, req models.SubmitMissionRequest) (bool, error) {
	res, err := conn.ExecContext(ctx, conn.Rebind(insertSubmission),
		req.WalletAddress, req.XUsername, req.TelegramUsername, req.RedditUsername, req.Email)
	if err != nil {
		return false, fmt.Errorf("failed to insert submission: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// ListSubmissions returns every row, newest first
func ListSubmissions(ctx context.Context, conn Conn) ([]models.Submission, error) {
	submissions := []models.Submission{}
	if err := conn.SelectContext(ctx, &submissions, conn.Rebind(listSubmissions)); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}
