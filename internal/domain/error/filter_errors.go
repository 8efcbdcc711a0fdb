// Package error defines domain-specific errors for the Spendwise application.
package error

import "errors"

// Filter domain errors.
var (
	// ErrInvalidDateFormat is returned when a filter date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when the start date is after the end of the range.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInvalidSortKey is returned when the sort key is not date, amount or category.
	ErrInvalidSortKey = errors.New("sort key must be: date, amount, or category")

	// ErrInvalidSortDirection is returned when the sort direction is not asc or desc.
	ErrInvalidSortDirection = errors.New("sort direction must be: asc or desc")

	// ErrInvalidTypeFilter is returned when the type filter is not income, expense or all.
	ErrInvalidTypeFilter = errors.New("type filter must be: income, expense, or all")
)

// FilterErrorCode defines error codes for filter errors.
// Format: FLT-XXYYYY where XX is category and YYYY is specific error.
type FilterErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFormat    FilterErrorCode = "FLT-010001"
	ErrCodeInvalidDateRange     FilterErrorCode = "FLT-010002"
	ErrCodeInvalidSortKey       FilterErrorCode = "FLT-010003"
	ErrCodeInvalidSortDirection FilterErrorCode = "FLT-010004"
	ErrCodeInvalidTypeFilter    FilterErrorCode = "FLT-010005"
)

// FilterError represents a filter validation error with code and message.
type FilterError struct {
	Code    FilterErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FilterError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FilterError) Unwrap() error {
	return e.Err
}

// NewFilterError creates a new FilterError with the given code and message.
func NewFilterError(code FilterErrorCode, message string, err error) *FilterError {
	return &FilterError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
