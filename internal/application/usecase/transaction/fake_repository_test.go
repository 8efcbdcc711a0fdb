package transaction

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory adapter.TransactionRepository for
// use case tests. failWith forces every call to return that error.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	failWith     error
}

func (f *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	if f.failWith != nil {
		return f.failWith
	}
	copied := *transaction
	f.transactions = append(f.transactions, &copied)
	return nil
}

func (f *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, txn := range f.transactions {
		if txn.ID == id {
			copied := *txn
			return &copied, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) FindByFilter(
	_ context.Context,
	filter adapter.TransactionFilter,
	sortOrder adapter.TransactionSort,
	pagination adapter.TransactionPagination,
) (*adapter.TransactionListResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	var matched []*entity.Transaction
	for _, txn := range f.transactions {
		if txn.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !txn.Date.Before(*filter.EndDate) {
			continue
		}
		if filter.Type != nil && txn.Type != *filter.Type {
			continue
		}
		if filter.Category != "" && txn.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(txn.Description), needle) &&
				!strings.Contains(strings.ToLower(txn.Category), needle) {
				continue
			}
		}
		matched = append(matched, txn)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		less, equal := compare(matched[i], matched[j], sortOrder.Key)
		if equal {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		if sortOrder.Direction == adapter.SortDescending {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	totalPages := int((total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize))

	start := (pagination.Page - 1) * pagination.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pagination.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]*entity.Transaction, 0, end-start)
	for _, txn := range matched[start:end] {
		copied := *txn
		page = append(page, &copied)
	}

	return &adapter.TransactionListResult{
		Transactions: page,
		Total:        total,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		TotalPages:   totalPages,
	}, nil
}

func compare(a, b *entity.Transaction, key adapter.SortKey) (less, equal bool) {
	switch key {
	case adapter.SortKeyAmount:
		cmp := a.Amount.Cmp(b.Amount)
		return cmp < 0, cmp == 0
	case adapter.SortKeyCategory:
		return a.Category < b.Category, a.Category == b.Category
	default:
		return a.Date.Before(b.Date), a.Date.Equal(b.Date)
	}
}

func (f *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, txn := range f.transactions {
		if txn.ID == transaction.ID {
			copied := *transaction
			f.transactions[i] = &copied
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, txn := range f.transactions {
		if txn.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) DistinctCategories(_ context.Context, userID uuid.UUID) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	seen := make(map[string]struct{})
	for _, txn := range f.transactions {
		if txn.UserID == userID && txn.Category != "" {
			seen[txn.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// recordingSummaryCache records invalidation calls for assertions.
type recordingSummaryCache struct {
	invalidated []uuid.UUID
}

func (c *recordingSummaryCache) Get(context.Context, uuid.UUID, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *recordingSummaryCache) Set(context.Context, uuid.UUID, string, []byte) error {
	return nil
}

func (c *recordingSummaryCache) InvalidateUser(_ context.Context, userID uuid.UUID) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}

var errStoreDown = errors.New("connection refused")
