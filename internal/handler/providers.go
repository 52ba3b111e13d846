package handler

import (
	"context"
	"net/http"
	"strconv"

	"epo-browser/internal/models"

	"github.com/gin-gonic/gin"
)

// ProviderHandler handles provider search requests
type ProviderHandler struct {
	service SearchService
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(context.Context, models.SearchRequest) (*models.SearchResult, error)
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(svc SearchService) *ProviderHandler {
	return &ProviderHandler{service: svc}
}

// Search handles GET /api/providers requests
//
//	@Summary		Search providers
//	@Description	Finds in-network providers near a zip code and shapes them into a table and map view.
//	@Tags			providers
//	@Produce		json
//	@Param			plan		query		string		true	"Health plan"	Enums(EPO, PPO)
//	@Param			category	query		string		true	"Medical category"
//	@Param			specialty	query		string		true	"Specialty within the category"
//	@Param			zip			query		string		true	"5 digit zip code"
//	@Param			radius		query		int			true	"Search radius in miles (1-50)"
//	@Param			focus		query		[]string	false	"Provider display names to keep"	collectionFormat(multi)
//	@Param			selected	query		[]int		false	"Row indexes of selected providers"	collectionFormat(multi)
//	@Success		200			{object}	models.SearchResult
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		502			{object}	ErrorResponse
//	@Router			/api/providers [get]
func (h *ProviderHandler) Search(c *gin.Context) {
	radius, err := strconv.Atoi(c.Query("radius"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid radius format"})
		return
	}

	selected := make([]int, 0, len(c.QueryArray("selected")))
	for _, s := range c.QueryArray("selected") {
		idx, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid selected row index"})
			return
		}
		selected = append(selected, idx)
	}

	req := models.SearchRequest{
		HealthPlan: c.Query("plan"),
		Category:   c.Query("category"),
		Specialty:  c.Query("specialty"),
		Zip:        c.Query("zip"),
		Radius:     radius,
		Focus:      c.QueryArray("focus"),
		Selected:   selected,
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
