// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// filterAll is the sentinel value meaning "no filter on this field".
const filterAll = "all"

// RawFilter carries the user-supplied filter criteria before normalization.
type RawFilter struct {
	StartDate string // YYYY-MM-DD, optional
	EndDate   string // YYYY-MM-DD, optional, day-inclusive
	Type      string // income | expense | all | ""
	Category  string // category name | all | ""
	Search    string // free text, optional
}

// BuildFilter normalizes raw filter criteria into a repository predicate.
// The end date is widened to an exclusive next-day bound, "all" values are
// dropped, and whitespace-only search is treated as absent.
func BuildFilter(userID uuid.UUID, raw RawFilter) (adapter.TransactionFilter, error) {
	dateRange, err := valueobject.NewDateRange(raw.StartDate, raw.EndDate)
	if err != nil {
		return adapter.TransactionFilter{}, err
	}

	filter := adapter.TransactionFilter{
		UserID:    userID,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
	}

	switch raw.Type {
	case "", filterAll:
		// no type predicate
	case string(entity.TransactionTypeIncome), string(entity.TransactionTypeExpense):
		txnType := entity.TransactionType(raw.Type)
		filter.Type = &txnType
	default:
		return adapter.TransactionFilter{}, domainerror.NewFilterError(
			domainerror.ErrCodeInvalidTypeFilter,
			"invalid type filter: "+raw.Type,
			domainerror.ErrInvalidTypeFilter,
		)
	}

	if raw.Category != "" && raw.Category != filterAll {
		filter.Category = raw.Category
	}

	if search := strings.TrimSpace(raw.Search); search != "" {
		filter.Search = search
	}

	return filter, nil
}

// BuildSort normalizes the raw sort key and direction, defaulting to
// date descending when both are absent.
func BuildSort(key, direction string) (adapter.TransactionSort, error) {
	sort := adapter.TransactionSort{
		Key:       adapter.SortKeyDate,
		Direction: adapter.SortDescending,
	}

	switch key {
	case "":
	case string(adapter.SortKeyDate), string(adapter.SortKeyAmount), string(adapter.SortKeyCategory):
		sort.Key = adapter.SortKey(key)
	default:
		return adapter.TransactionSort{}, domainerror.NewFilterError(
			domainerror.ErrCodeInvalidSortKey,
			"invalid sort key: "+key,
			domainerror.ErrInvalidSortKey,
		)
	}

	switch direction {
	case "":
	case string(adapter.SortAscending), string(adapter.SortDescending):
		sort.Direction = adapter.SortDirection(direction)
	default:
		return adapter.TransactionSort{}, domainerror.NewFilterError(
			domainerror.ErrCodeInvalidSortDirection,
			"invalid sort direction: "+direction,
			domainerror.ErrInvalidSortDirection,
		)
	}

	return sort, nil
}
