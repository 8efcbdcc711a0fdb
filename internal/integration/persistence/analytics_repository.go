// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/domain/valueobject"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// analyticsRepository implements the analytics.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// FindForSummary returns the user's transactions within the date range as one
// snapshot. A single query is issued; every summary view is derived from its
// result so the views can never disagree with each other.
func (r *analyticsRepository) FindForSummary(
	ctx context.Context,
	userID uuid.UUID,
	dateRange valueobject.DateRange,
) ([]analytics.SummaryRow, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, category, amount, date").
		Where("user_id = ?", userID)

	if dateRange.Start != nil {
		query = query.Where("date >= ?", dateRange.Start)
	}
	if dateRange.End != nil {
		query = query.Where("date < ?", dateRange.End)
	}

	var results []struct {
		Type     string          `gorm:"column:type"`
		Category string          `gorm:"column:category"`
		Amount   decimal.Decimal `gorm:"column:amount"`
		Date     time.Time       `gorm:"column:date"`
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to load summary snapshot: %w", err)
	}

	rows := make([]analytics.SummaryRow, len(results))
	for i, res := range results {
		rows[i] = analytics.SummaryRow{
			Type:     res.Type,
			Category: res.Category,
			Amount:   res.Amount,
			Date:     res.Date,
		}
	}

	return rows, nil
}
