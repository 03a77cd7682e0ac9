package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/services"
)

// AdvisorHandler handles questions to the financial advisor.
type AdvisorHandler struct {
	advisorService services.AdvisorServicer
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService services.AdvisorServicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// AskRequest carries a free-text question
type AskRequest struct {
	Query string `json:"query" binding:"required,max=2000"`
}

// Ask answers a question using the ledger history
// @Summary     Ask the advisor
// @Description Always answers; model failures become an apology
// @Tags        advisor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AskRequest true "Question"
// @Success     200 {object} map[string]string "Answer in Markdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /advisor/ask [post]
func (h *AdvisorHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": h.advisorService.Ask(c.Request.Context(), req.Query)})
}
