// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/domain/entity"
)

// TypeTotalsResponse carries the per-type sums. A type with no activity in
// the range is reported as "0".
type TypeTotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// CategoryTotalResponse is one entry of the expense category breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// MonthlyTrendResponse is one (year, month, type) bucket of the trend view.
type MonthlyTrendResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Type  string `json:"type"`
	Total string `json:"total"`
}

// SummaryResponse represents the response body for the summary endpoint.
type SummaryResponse struct {
	TypeTotals        TypeTotalsResponse      `json:"type_totals"`
	CategoryBreakdown []CategoryTotalResponse `json:"category_breakdown"`
	MonthlyTrends     []MonthlyTrendResponse  `json:"monthly_trends"`
	NetBalance        string                  `json:"net_balance"`
}

// ToSummaryResponse maps a summary output to its response DTO. Missing type
// keys default to zero here so callers never deal with absent fields.
func ToSummaryResponse(output *analytics.GetSummaryOutput) SummaryResponse {
	breakdown := make([]CategoryTotalResponse, len(output.CategoryBreakdown))
	for i, item := range output.CategoryBreakdown {
		breakdown[i] = CategoryTotalResponse{
			Category: item.Category,
			Total:    item.Total.String(),
		}
	}

	trends := make([]MonthlyTrendResponse, len(output.MonthlyTrends))
	for i, trend := range output.MonthlyTrends {
		trends[i] = MonthlyTrendResponse{
			Year:  trend.Year,
			Month: int(trend.Month),
			Type:  string(trend.Type),
			Total: trend.Total.String(),
		}
	}

	return SummaryResponse{
		TypeTotals: TypeTotalsResponse{
			Income:  output.TypeTotals[entity.TransactionTypeIncome].String(),
			Expense: output.TypeTotals[entity.TransactionTypeExpense].String(),
		},
		CategoryBreakdown: breakdown,
		MonthlyTrends:     trends,
		NetBalance:        output.NetBalance.String(),
	}
}
