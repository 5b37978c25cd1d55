package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested record does not exist or
	// belongs to another user.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when no acting principal is available.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the principal may not touch the record.
	ErrForbidden = errors.New("forbidden")
	// ErrClassifierUnavailable is returned when no LLM classifier is
	// configured.
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)
