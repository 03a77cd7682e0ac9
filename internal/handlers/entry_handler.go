package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dream/internal/entry"
	apperrors "dream/internal/errors"
	"dream/internal/models"
	"dream/internal/services"
)

const maxReceiptBytes = 10 << 20

// EntryHandler drives entry sessions over HTTP.
type EntryHandler struct {
	entryService services.EntryServicer
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService services.EntryServicer) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// OpenEntryRequest opens a blank session for a type, or an edit session for
// an existing transaction
type OpenEntryRequest struct {
	Type          models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	TransactionID string                 `json:"transaction_id" binding:"omitempty,max=64"`
}

// SwitchTypeRequest changes the session's transaction type
type SwitchTypeRequest struct {
	Type models.TransactionType `json:"type" binding:"required,transaction_type"`
}

// SelectNodeRequest picks a visible category node
type SelectNodeRequest struct {
	NodeID string `json:"node_id" binding:"required,max=64"`
}

// UpdateEntryRequest changes form fields; absent fields are kept
type UpdateEntryRequest struct {
	Amount *string `json:"amount" binding:"omitempty,max=32"`
	Date   *string `json:"date" binding:"omitempty,day_date"`
	Note   *string `json:"note" binding:"omitempty,max=500"`
}

// OpenEntry starts an entry session
// @Summary     Open an entry session
// @Description With transaction_id the session edits that transaction; otherwise a blank form of the given type (default expense)
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body OpenEntryRequest true "Type or transaction to edit"
// @Success     201 {object} entry.View "Session view"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /entries [post]
func (h *EntryHandler) OpenEntry(c *gin.Context) {
	var req OpenEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.TransactionID != "" {
		view, err := h.entryService.OpenForEdit(req.TransactionID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"entry": view})
		return
	}

	txType := req.Type
	if txType == "" {
		txType = models.TransactionTypeExpense
	}
	c.JSON(http.StatusCreated, gin.H{"entry": h.entryService.Open(txType)})
}

// GetEntry returns the current session view
// @Summary     Get an entry session
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} entry.View "Session view"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /entries/{id} [get]
func (h *EntryHandler) GetEntry(c *gin.Context) {
	view, err := h.entryService.Get(c.Param("id"))
	writeView(c, view, err)
}

// SwitchType changes the session's transaction type
// @Summary     Switch type
// @Description Switching to another type resets the category grid and clears the chosen category
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Session ID"
// @Param       request body SwitchTypeRequest true "Type"
// @Success     200 {object} entry.View "Session view"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /entries/{id}/type [post]
func (h *EntryHandler) SwitchType(c *gin.Context) {
	var req SwitchTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	view, err := h.entryService.SwitchType(c.Param("id"), req.Type)
	writeView(c, view, err)
}

// SelectNode picks a category node from the grid
// @Summary     Select a category
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Session ID"
// @Param       request body SelectNodeRequest true "Node"
// @Success     200 {object} entry.View "Session view"
// @Failure     400 {object} ErrorResponse "Node not visible"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /entries/{id}/select [post]
func (h *EntryHandler) SelectNode(c *gin.Context) {
	var req SelectNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	view, err := h.entryService.Select(c.Param("id"), req.NodeID)
	writeView(c, view, err)
}

// Ascend moves the category grid up one level
// @Summary     Go back a level
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} entry.View "Session view"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /entries/{id}/ascend [post]
func (h *EntryHandler) Ascend(c *gin.Context) {
	view, err := h.entryService.Ascend(c.Param("id"))
	writeView(c, view, err)
}

// UpdateEntry changes amount, date or note
// @Summary     Update form fields
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Session ID"
// @Param       request body UpdateEntryRequest true "Fields"
// @Success     200 {object} entry.View "Session view"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /entries/{id} [patch]
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	view, err := h.entryService.UpdateFields(c.Param("id"), services.EntryFields{
		Amount: req.Amount,
		Date:   req.Date,
		Note:   req.Note,
	})
	writeView(c, view, err)
}

// ScanReceipt fills the form from a receipt photo
// @Summary     Scan a receipt
// @Tags        entries
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       id    path     string true "Session ID"
// @Param       image formData file   true "Receipt image"
// @Success     200 {object} entry.View "Session view"
// @Failure     400 {object} ErrorResponse "Missing image"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Failure     422 {object} ErrorResponse "Receipt unreadable"
// @Failure     503 {object} ErrorResponse "Advisor not configured"
// @Router      /entries/{id}/receipt [post]
func (h *EntryHandler) ScanReceipt(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image file is required"))
		return
	}
	if file.Size > maxReceiptBytes {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image is larger than 10MB"))
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, maxReceiptBytes))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	view, err := h.entryService.ApplyReceipt(c.Request.Context(), c.Param("id"), image, file.Header.Get("Content-Type"))
	writeView(c, view, err)
}

// SubmitEntry saves the session as a transaction
// @Summary     Submit an entry
// @Description Saves the transaction and closes the session. A rejected submission keeps the session open.
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     201 {object} models.Transaction "Saved transaction"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Failure     422 {object} ErrorResponse "Missing category or invalid amount"
// @Router      /entries/{id}/submit [post]
func (h *EntryHandler) SubmitEntry(c *gin.Context) {
	transaction, err := h.entryService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// DiscardEntry closes a session without saving
// @Summary     Discard an entry
// @Tags        entries
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     204 "Session discarded"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /entries/{id} [delete]
func (h *EntryHandler) DiscardEntry(c *gin.Context) {
	if err := h.entryService.Discard(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeView(c *gin.Context, view *entry.View, err error) {
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": view})
}
