// Package error defines domain-specific errors for the Spendwise application.
package error

import "errors"

// Auth domain errors. Token issuance lives outside this service; only
// validation failures surface here.
var (
	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no bearer token is supplied.
	ErrMissingToken = errors.New("missing authorization token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020003"
)
