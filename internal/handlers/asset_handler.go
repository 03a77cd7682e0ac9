package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dream/internal/errors"
	"dream/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	ledgerService    services.LedgerServicer
	analyticsService services.AnalyticsServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(ledgerService services.LedgerServicer, analyticsService services.AnalyticsServicer) *AssetHandler {
	return &AssetHandler{ledgerService: ledgerService, analyticsService: analyticsService}
}

// UpdateAssetRequest overwrites an asset's balance
type UpdateAssetRequest struct {
	Balance       string  `json:"balance" binding:"required,numeric"`
	Name          *string `json:"name" binding:"omitempty,max=100"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=64"`
}

// GetAssets lists every asset account
// @Summary     List assets
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Asset "Assets"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": h.ledgerService.GetAssets()})
}

// GetAssetTotal returns the sum of all balances
// @Summary     Asset total
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Total balance"
// @Router      /assets/total [get]
func (h *AssetHandler) GetAssetTotal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"total": h.analyticsService.AssetTotal()})
}

// UpdateAsset overwrites the balance of an asset
// @Summary     Update an asset
// @Description Overwrite the balance; name and account number are optional
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Asset ID"
// @Param       request body UpdateAssetRequest true "New values"
// @Success     200 {object} models.Asset "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid balance"))
		return
	}

	asset, err := h.ledgerService.UpdateAsset(c.Request.Context(), c.Param("id"), services.AssetUpdate{
		Balance:       balance,
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}
