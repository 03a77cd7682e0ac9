package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/services"
)

// AnalyticsHandler serves the dashboard and analytics views.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// BudgetProgressQuery selects the month of the budget report
type BudgetProgressQuery struct {
	Year        int  `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month       int  `form:"month" binding:"omitempty,min=1,max=12"`
	IncludeZero bool `form:"include_zero"`
}

// DailySeriesQuery sets the length of the daily chart
type DailySeriesQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=366"`
}

// GetSummary returns income, expense and balance over the whole ledger
// @Summary     Dashboard summary
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} aggregate.Summary "Summary"
// @Router      /dashboard/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.analyticsService.Summary()})
}

// GetDays returns transactions grouped by calendar day, newest first
// @Summary     Transactions by day
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} aggregate.DayGroup "Day groups"
// @Router      /dashboard/days [get]
func (h *AnalyticsHandler) GetDays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": h.analyticsService.Days()})
}

// GetBudgetProgress reports monthly spend against each budget
// @Summary     Budget progress
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       year         query int  false "Year (default current)"
// @Param       month        query int  false "Month 1-12 (default current)"
// @Param       include_zero query bool false "Include categories with neither budget nor spend"
// @Success     200 {array} aggregate.BudgetLine "Budget lines"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analytics/budgets [get]
func (h *AnalyticsHandler) GetBudgetProgress(c *gin.Context) {
	var q BudgetProgressQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	lines := h.analyticsService.BudgetProgress(q.Year, time.Month(q.Month), q.IncludeZero)
	c.JSON(http.StatusOK, gin.H{"budgets": lines})
}

// GetDailySeries returns the gap-filled daily expense series
// @Summary     Daily spend
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Number of days ending today (default 7)"
// @Success     200 {array} aggregate.DayPoint "Daily totals, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analytics/daily [get]
func (h *AnalyticsHandler) GetDailySeries(c *gin.Context) {
	var q DailySeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Days == 0 {
		q.Days = 7
	}

	c.JSON(http.StatusOK, gin.H{"series": h.analyticsService.DailySeries(q.Days)})
}

// GetCategoryBreakdown returns expense totals per category, largest first
// @Summary     Expense breakdown
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} aggregate.CategoryAmount "Category totals"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.analyticsService.CategoryBreakdown()})
}
