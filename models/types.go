package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Intake response messages
const (
	MessageSubmitted        = "Submission successful!"
	MessageAlreadySubmitted = "This wallet has already been submitted."
	MessagePostOnly         = "This endpoint only accepts POST requests."
)

// Request types

// SubmitMissionRequest is the public form body. Optional fields stay empty when absent.
type SubmitMissionRequest struct {
	WalletAddress    string `json:"walletAddress"`
	XUsername        string `json:"xUsername"`
	TelegramUsername string `json:"telegramUsername"`
	RedditUsername   string `json:"redditUsername"`
	Email            string `json:"email"`
}

// Normalize trims surrounding whitespace from every field
func (r *SubmitMissionRequest) Normalize() {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
	r.XUsername = strings.TrimSpace(r.XUsername)
	r.TelegramUsername = strings.TrimSpace(r.TelegramUsername)
	r.RedditUsername = strings.TrimSpace(r.RedditUsername)
	r.Email = strings.TrimSpace(r.Email)
}

// Validate returns a *ValidationError naming every missing required field
func (r SubmitMissionRequest) Validate() error {
	var missing []string
	if r.WalletAddress == "" {
		missing = append(missing, "walletAddress")
	}
	if r.XUsername == "" {
		missing = append(missing, "xUsername")
	}
	if r.TelegramUsername == "" {
		missing = append(missing, "telegramUsername")
	}
	if len(missing) > 0 {
		return &ValidationError{Reason: ReasonMissingFields, Fields: missing}
	}
	return nil
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

// Submission is one row of the submissions table
type Submission struct {
	ID                  int64     `db:"id" json:"id"`
	WalletAddress       string    `db:"wallet_address" json:"wallet_address"`
	XUsername           string    `db:"x_username" json:"x_username"`
	TelegramUsername    string    `db:"telegram_username" json:"telegram_username"`
	RedditUsername      string    `db:"reddit_username" json:"reddit_username"`
	Email               string    `db:"email" json:"email"`
	SubmissionTimestamp Timestamp `db:"submission_timestamp" json:"submission_timestamp"`
}

// TimestampLayout matches SQLite's CURRENT_TIMESTAMP text
const TimestampLayout = "2006-01-02 15:04:05"

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
}

// Timestamp accepts both time values and SQLite timestamp text from the driver,
// and always renders as UTC in TimestampLayout.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	case int64:
		t.Time = time.Unix(v, 0).UTC()
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(TimestampLayout), nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", s)
	}
	return t.parse(s[1 : len(s)-1])
}
