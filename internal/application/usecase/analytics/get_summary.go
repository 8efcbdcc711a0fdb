// Package analytics contains summary-aggregation use cases.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the summary computation. Only the
// date range is honored: listing filters (type, category, search) do not
// apply to summaries.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate string // YYYY-MM-DD, optional
	EndDate   string // YYYY-MM-DD, optional, day-inclusive
}

// CategoryTotal is one entry of the expense category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyTrend is one (year, month, type) bucket of the monthly trend view.
type MonthlyTrend struct {
	Year  int                    `json:"year"`
	Month time.Month             `json:"month"`
	Type  entity.TransactionType `json:"type"`
	Total decimal.Decimal        `json:"total"`
}

// GetSummaryOutput carries the three co-computed views plus the derived net
// balance. A type absent from TypeTotals means zero activity of that type.
type GetSummaryOutput struct {
	TypeTotals        map[entity.TransactionType]decimal.Decimal `json:"type_totals"`
	CategoryBreakdown []CategoryTotal                            `json:"category_breakdown"`
	MonthlyTrends     []MonthlyTrend                             `json:"monthly_trends"`
	NetBalance        decimal.Decimal                            `json:"net_balance"`
}

// GetSummaryUseCase computes the multi-view transaction summary.
type GetSummaryUseCase struct {
	analyticsRepo AnalyticsRepository
	summaryCache  adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
// summaryCache may be nil when caching is disabled.
func NewGetSummaryUseCase(analyticsRepo AnalyticsRepository, summaryCache adapter.SummaryCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		analyticsRepo: analyticsRepo,
		summaryCache:  summaryCache,
	}
}

// Execute computes type totals, expense category breakdown, monthly trends
// and the derived net balance over one snapshot of the range-filtered set.
// Either all views are returned or the call fails as a whole.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	dateRange, err := valueobject.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	rangeKey := input.StartDate + ".." + input.EndDate

	if cached, ok := uc.cacheLookup(ctx, input.UserID, rangeKey); ok {
		return cached, nil
	}

	rows, err := uc.analyticsRepo.FindForSummary(ctx, input.UserID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStoreUnavailable, err)
	}

	output := aggregate(rows)

	uc.cacheStore(ctx, input.UserID, rangeKey, output)

	return output, nil
}

// monthlyKey buckets a row by calendar year, month and type of its date.
type monthlyKey struct {
	year  int
	month time.Month
	txn   entity.TransactionType
}

// aggregate computes all views in a single pass over the snapshot.
func aggregate(rows []SummaryRow) *GetSummaryOutput {
	typeTotals := make(map[entity.TransactionType]decimal.Decimal)
	categoryTotals := make(map[string]decimal.Decimal)
	monthlyTotals := make(map[monthlyKey]decimal.Decimal)

	for _, row := range rows {
		txnType := entity.TransactionType(row.Type)

		typeTotals[txnType] = typeTotals[txnType].Add(row.Amount)

		// Category breakdown is expense-only; blank categories are a
		// data-quality issue and are excluded, not an error.
		if txnType == entity.TransactionTypeExpense && row.Category != "" {
			categoryTotals[row.Category] = categoryTotals[row.Category].Add(row.Amount)
		}

		key := monthlyKey{
			year:  row.Date.Year(),
			month: row.Date.Month(),
			txn:   txnType,
		}
		monthlyTotals[key] = monthlyTotals[key].Add(row.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(categoryTotals))
	for category, total := range categoryTotals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		cmp := breakdown[i].Total.Cmp(breakdown[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	trends := make([]MonthlyTrend, 0, len(monthlyTotals))
	for key, total := range monthlyTotals {
		trends = append(trends, MonthlyTrend{
			Year:  key.year,
			Month: key.month,
			Type:  key.txn,
			Total: total,
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Year != trends[j].Year {
			return trends[i].Year < trends[j].Year
		}
		if trends[i].Month != trends[j].Month {
			return trends[i].Month < trends[j].Month
		}
		// Within a month, income precedes expense.
		return trends[i].Type > trends[j].Type
	})

	// Net balance is derived from the type totals, never recomputed from the
	// rows, so the two numbers cannot drift apart.
	netBalance := typeTotals[entity.TransactionTypeIncome].Sub(typeTotals[entity.TransactionTypeExpense])

	return &GetSummaryOutput{
		TypeTotals:        typeTotals,
		CategoryBreakdown: breakdown,
		MonthlyTrends:     trends,
		NetBalance:        netBalance,
	}
}

// cacheLookup returns a previously computed summary, if one is cached.
func (uc *GetSummaryUseCase) cacheLookup(ctx context.Context, userID uuid.UUID, rangeKey string) (*GetSummaryOutput, bool) {
	if uc.summaryCache == nil {
		return nil, false
	}

	payload, ok, err := uc.summaryCache.Get(ctx, userID, rangeKey)
	if err != nil || !ok {
		return nil, false
	}

	var output GetSummaryOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		return nil, false
	}
	if output.TypeTotals == nil {
		output.TypeTotals = make(map[entity.TransactionType]decimal.Decimal)
	}

	return &output, true
}

// cacheStore caches the computed summary. Failures are ignored; the cache is
// an optimization, never a source of truth.
func (uc *GetSummaryUseCase) cacheStore(ctx context.Context, userID uuid.UUID, rangeKey string, output *GetSummaryOutput) {
	if uc.summaryCache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		return
	}
	_ = uc.summaryCache.Set(ctx, userID, rangeKey, payload)
}
