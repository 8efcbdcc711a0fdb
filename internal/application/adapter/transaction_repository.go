// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// TransactionFilter defines the normalized predicate for transaction queries.
// All queries are scoped to UserID. StartDate is inclusive, EndDate exclusive.
// A nil Type and empty Category mean no filter on that field.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  string
	Search    string // Case-insensitive match against description and category
}

// SortKey identifies the primary listing sort column.
type SortKey string

const (
	SortKeyDate     SortKey = "date"
	SortKeyAmount   SortKey = "amount"
	SortKeyCategory SortKey = "category"
)

// SortDirection identifies the listing sort direction.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// TransactionSort defines the listing sort order. Ties on the primary key are
// always broken by created_at descending so pagination stays deterministic.
type TransactionSort struct {
	Key       SortKey
	Direction SortDirection
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page     int
	PageSize int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	PageSize     int
	TotalPages   int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, sorted and paginated.
	// The returned Total is counted under the same filter as the page.
	FindByFilter(
		ctx context.Context,
		filter TransactionFilter,
		sort TransactionSort,
		pagination TransactionPagination,
	) (*TransactionListResult, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the store. Hard delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// DistinctCategories returns the sorted set of distinct non-blank
	// categories ever used by the user, across all transactions.
	DistinctCategories(ctx context.Context, userID uuid.UUID) ([]string, error)
}
