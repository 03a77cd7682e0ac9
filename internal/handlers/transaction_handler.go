package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dream/internal/errors"
	"dream/internal/models"
	"dream/internal/pagination"
	"dream/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
	loc           *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Bare dates in
// requests are read in loc.
func NewTransactionHandler(ledgerService services.LedgerServicer, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionHandler{ledgerService: ledgerService, loc: loc}
}

// ReplaceTransactionRequest represents the full replacement of a transaction
type ReplaceTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      string                 `json:"amount" binding:"required,decimal_amount"`
	Category    string                 `json:"category" binding:"required,max=64"`
	SubCategory *string                `json:"sub_category" binding:"omitempty,max=64"`
	Date        string                 `json:"date" binding:"required"`
	Note        string                 `json:"note" binding:"max=500"`
}

// GetTransactions handles the listing of transactions
// @Summary     List transactions
// @Description Get a paginated list of transactions, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by transaction type (income, expense)"
// @Param       category  query string false "Filter by top-level category name"
// @Param       from      query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to        query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := h.parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.ListTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles the retrieval of one transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.ledgerService.GetTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ReplaceTransaction handles the full replacement of a stored transaction
// @Summary     Replace a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Transaction ID"
// @Param       request body ReplaceTransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Transaction replaced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) ReplaceTransaction(c *gin.Context) {
	var req ReplaceTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date, h.loc)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	t := models.Transaction{
		ID:       c.Param("id"),
		Amount:   decimal.RequireFromString(req.Amount),
		Type:     req.Type,
		Category: req.Category,
		Date:     date,
		Note:     req.Note,
	}
	if req.SubCategory != nil && *req.SubCategory != "" {
		t.SubCategory = req.SubCategory
	}
	if t.Note == "" {
		t.Note = t.CategoryLabel()
	}

	transaction, err := h.ledgerService.ReplaceTransaction(c.Request.Context(), t)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportTransactions streams the ledger as CSV
// @Summary     Export transactions
// @Description Download every transaction as a CSV file
// @Tags        transactions
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV file"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="dream-ledger.csv"`)
	c.Status(http.StatusOK)

	if err := h.ledgerService.ExportCSV(c.Writer); err != nil {
		respondWithError(c, err)
	}
}

func (h *TransactionHandler) parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from"); v != "" {
		t, err := parseFlexibleTime(v, h.loc)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to"); v != "" {
		t, err := parseFlexibleTime(v, h.loc)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to format, use RFC3339 or YYYY-MM-DD")
		}
		// A bare day covers the whole day.
		if len(v) == len(dayLayout) {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.ToDate = &t
	}

	txType, err := parseTypeQuery(c, "type")
	if err != nil {
		return filter, err
	}
	filter.Type = txType

	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}

	return filter, nil
}
