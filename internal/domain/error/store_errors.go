// Package error defines domain-specific errors for the Spendwise application.
package error

import "errors"

// Store errors.
var (
	// ErrStoreUnavailable is returned when the underlying persistence layer
	// fails. The failure is fatal for the current request and is never
	// retried by the application layer.
	ErrStoreUnavailable = errors.New("transaction store unavailable")
)
