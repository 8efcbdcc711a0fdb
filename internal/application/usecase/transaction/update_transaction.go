// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged. Concurrent updates to the same record are
// last-write-wins; no concurrency token is maintained.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Description   *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, summaryCache adapter.SummaryCache) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.findOwned(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		transaction.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if err := validateFields(transaction.Type, transaction.Amount, transaction.Category, transaction.Description, transaction.Date); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStoreUnavailable, err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// findOwned loads the transaction and verifies ownership. A record owned by
// another user is reported as not found so record existence never leaks.
func (uc *UpdateTransactionUseCase) findOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStoreUnavailable, err)
	}

	if transaction.UserID != userID {
		return nil, notFoundError()
	}

	return transaction, nil
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
