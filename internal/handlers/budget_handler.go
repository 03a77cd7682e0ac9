package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dream/internal/errors"
	"dream/internal/models"
	"dream/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	ledgerService services.LedgerServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledgerService services.LedgerServicer) *BudgetHandler {
	return &BudgetHandler{ledgerService: ledgerService}
}

// UpsertBudgetRequest sets one category's monthly limit
type UpsertBudgetRequest struct {
	Category string `json:"category" binding:"required,max=64"`
	Limit    string `json:"limit" binding:"required,decimal_amount"`
}

// GetBudgets lists every configured budget
// @Summary     List budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Budget "Budgets"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.ledgerService.GetBudgets()})
}

// UpsertBudget creates or replaces the budget of a category
// @Summary     Set a budget
// @Description Set the monthly limit of a top-level expense category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertBudgetRequest true "Budget"
// @Success     200 {object} models.Budget "Budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Router      /budgets [put]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledgerService.UpsertBudget(c.Request.Context(), models.Budget{
		Category: req.Category,
		Limit:    decimal.RequireFromString(req.Limit),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
