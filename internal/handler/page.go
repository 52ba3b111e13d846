package handler

import (
	"net/http"

	"epo-browser/internal/models"
	"epo-browser/internal/service"
	"epo-browser/internal/web"

	"github.com/gin-gonic/gin"
)

// PageCatalog is what the page needs from the catalog.
type PageCatalog interface {
	All() []models.Category
	DefaultCategory() string
}

// PageDefaults pre-fill the sidebar.
type PageDefaults struct {
	Zip      string
	Radius   int
	MapStyle string
}

type PageHandler struct {
	catalog  PageCatalog
	defaults PageDefaults
}

func NewPageHandler(catalog PageCatalog, defaults PageDefaults) *PageHandler {
	return &PageHandler{catalog: catalog, defaults: defaults}
}

// Index handles GET / requests. The engine must have the web templates loaded.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.PageTemplate, gin.H{
		"Plans":           service.HealthPlans,
		"Categories":      h.catalog.All(),
		"DefaultCategory": h.catalog.DefaultCategory(),
		"DefaultZip":      h.defaults.Zip,
		"DefaultRadius":   h.defaults.Radius,
		"MinRadius":       service.MinRadius,
		"MaxRadius":       service.MaxRadius,
		"MapStyle":        h.defaults.MapStyle,
	})
}
