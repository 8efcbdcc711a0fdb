// Package error defines domain-specific errors for the Spendwise application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or
	// does not belong to the caller. The two cases are indistinguishable on
	// purpose, so the existence of other users' records is never leaked.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrNonPositiveTransactionAmount is returned when the transaction amount is zero or negative.
	ErrNonPositiveTransactionAmount = errors.New("transaction amount must be positive")

	// ErrMissingDescription is returned when the transaction description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrMissingCategory is returned when the transaction category is empty.
	ErrMissingCategory = errors.New("category is required")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrCategoryTooLong is returned when the transaction category exceeds the maximum length.
	ErrCategoryTooLong = errors.New("category too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType      TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate      TransactionErrorCode = "TXN-010002"
	ErrCodeNonPositiveAmount           TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound         TransactionErrorCode = "TXN-010004"
	ErrCodeNotAuthorizedTransaction    TransactionErrorCode = "TXN-010005"
	ErrCodeMissingDescription          TransactionErrorCode = "TXN-010006"
	ErrCodeMissingCategory             TransactionErrorCode = "TXN-010007"
	ErrCodeDescriptionTooLong          TransactionErrorCode = "TXN-010008"
	ErrCodeCategoryTooLong             TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields    TransactionErrorCode = "TXN-010010"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
