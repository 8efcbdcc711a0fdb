// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles summary endpoints.
type AnalyticsController struct {
	summaryUseCase *analytics.GetSummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(summaryUseCase *analytics.GetSummaryUseCase) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /transactions/summary requests. Only the date range is
// honored; listing filters do not affect summaries.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetSummaryInput{
		UserID:    userID,
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
