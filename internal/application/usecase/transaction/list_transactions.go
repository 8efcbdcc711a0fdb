// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DefaultPageSize is used when the caller does not supply a page size.
const DefaultPageSize = 20

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID        uuid.UUID
	Filter        RawFilter
	SortKey       string
	SortDirection string
	Page          int
	PageSize      int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaginationOutput represents pagination metadata in the output. Total and
// TotalPages are computed under the same predicate as the returned records.
type PaginationOutput struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	maxPageSize     int
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
// maxPageSize caps the caller-supplied page size to bound result sets.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, maxPageSize int) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		maxPageSize:     maxPageSize,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter, err := BuildFilter(input.UserID, input.Filter)
	if err != nil {
		return nil, err
	}

	sort, err := BuildSort(input.SortKey, input.SortDirection)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > uc.maxPageSize {
		pageSize = uc.maxPageSize
	}

	pagination := adapter.TransactionPagination{
		Page:     page,
		PageSize: pageSize,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, sort, pagination)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStoreUnavailable, err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(result.Transactions)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
			HasNext:    result.Page < result.TotalPages,
			HasPrev:    result.Page > 1,
		},
	}

	for i, txn := range result.Transactions {
		output.Transactions[i] = toTransactionOutput(txn)
	}

	return output, nil
}

// toTransactionOutput maps a transaction entity to its output representation.
func toTransactionOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Type:        txn.Type,
		Amount:      txn.Amount,
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}
