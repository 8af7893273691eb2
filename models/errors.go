package models

import "strings"

// Validation failure reasons
const (
	ReasonInvalidJSON       = "Invalid JSON"
	ReasonMissingFields     = "Missing required fields"
	ReasonUnsupportedFormat = "Unsupported Media Type"
)

// ValidationError is a client mistake; its message is safe to return.
type ValidationError struct {
	Reason string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}

// Is matches any ValidationError with the same reason
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Reason == e.Reason
}

var (
	ErrInvalidJSON       = &ValidationError{Reason: ReasonInvalidJSON}
	ErrMissingFields     = &ValidationError{Reason: ReasonMissingFields}
	ErrUnsupportedFormat = &ValidationError{Reason: ReasonUnsupportedFormat}
)
