// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for transaction categories.
	MaxCategoryLength = 100
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// summaryCache may be nil when caching is disabled.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, summaryCache adapter.SummaryCache) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	category := strings.TrimSpace(input.Category)
	description := strings.TrimSpace(input.Description)

	if err := validateFields(input.Type, input.Amount, category, description, input.Date); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Type,
		input.Amount,
		category,
		description,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStoreUnavailable, err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// validateFields checks the invariants shared by create and update.
func validateFields(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
	date time.Time,
) error {
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than zero",
			domainerror.ErrNonPositiveTransactionAmount,
		)
	}

	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}
	if len(category) > MaxCategoryLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}

	if description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}

// invalidateSummaries drops the user's cached summaries after a mutation.
// Cache failures are not surfaced; the next summary read recomputes.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	_ = cache.InvalidateUser(ctx, userID)
}
