// Package analytics contains summary-aggregation use cases.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/valueobject"
)

// SummaryRow is a single transaction row in the aggregation snapshot. Only
// the fields the summary views read are carried.
type SummaryRow struct {
	Type     string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// AnalyticsRepository defines the read interface for the aggregation engine.
type AnalyticsRepository interface {
	// FindForSummary returns one consistent snapshot of the user's
	// transactions within the date range. All summary views are computed
	// from the returned slice; the repository is not consulted again.
	FindForSummary(
		ctx context.Context,
		userID uuid.UUID,
		dateRange valueobject.DateRange,
	) ([]SummaryRow, error)
}
