package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dream/internal/models"
	"dream/internal/services"
)

// CategoryHandler serves the category trees.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories returns a category tree
// @Summary     Category tree
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "income or expense (default expense)"
// @Success     200 {array} category.Node "Top-level nodes with children"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	txType, err := typeOrExpense(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": txType, "categories": h.categoryService.Tree(txType)})
}

// GetCategoryNames returns the top-level category names
// @Summary     Category names
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "income or expense (default expense)"
// @Success     200 {array} string "Names"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories/names [get]
func (h *CategoryHandler) GetCategoryNames(c *gin.Context) {
	txType, err := typeOrExpense(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": txType, "names": h.categoryService.Names(txType)})
}

// GetCategoryIcon resolves the icon of a stored classification
// @Summary     Category icon
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type         query string false "income or expense (default expense)"
// @Param       category     query string true  "Top-level category name"
// @Param       sub_category query string false "Sub-category name"
// @Success     200 {object} map[string]string "Icon name"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories/icon [get]
func (h *CategoryHandler) GetCategoryIcon(c *gin.Context) {
	txType, err := typeOrExpense(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var sub *string
	if v, ok := c.GetQuery("sub_category"); ok && v != "" {
		sub = &v
	}

	icon := h.categoryService.ResolveIcon(txType, c.Query("category"), sub)
	c.JSON(http.StatusOK, gin.H{"icon": icon})
}

func typeOrExpense(c *gin.Context) (models.TransactionType, error) {
	txType, err := parseTypeQuery(c, "type")
	if err != nil {
		return "", err
	}
	if txType == nil {
		return models.TransactionTypeExpense, nil
	}
	return *txType, nil
}
