package handler

import (
	"net/http"

	"epo-browser/internal/models"

	"github.com/gin-gonic/gin"
)

// CatalogSource lists the searchable categories.
type CatalogSource interface {
	All() []models.Category
}

type CatalogHandler struct {
	catalog CatalogSource
}

func NewCatalogHandler(catalog CatalogSource) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Categories handles GET /api/categories requests
//
//	@Summary	Categories and specialties
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	models.Category
//	@Router		/api/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}
