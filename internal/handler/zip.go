package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"epo-browser/internal/models"

	"github.com/gin-gonic/gin"
)

// ZipHandler handles zip code lookups
type ZipHandler struct {
	service ZipService
}

// ZipService interface for dependency injection
type ZipService interface {
	Lookup(context.Context, string) (*models.ZipCode, error)
	Nearest(context.Context, float64, float64) (*models.ZipCode, error)
}

// NewZipHandler creates a new zip handler
func NewZipHandler(svc ZipService) *ZipHandler {
	return &ZipHandler{service: svc}
}

// Lookup handles GET /api/zip/:zip requests
//
//	@Summary	Zip code centroid
//	@Tags		zip
//	@Produce	json
//	@Param		zip	path		string	true	"5 digit zip code"
//	@Success	200	{object}	models.ZipCode
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/zip/{zip} [get]
func (h *ZipHandler) Lookup(c *gin.Context) {
	zip, err := h.service.Lookup(c.Request.Context(), c.Param("zip"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, zip)
}

// Nearest handles GET /api/zip/nearest requests
//
//	@Summary	Nearest zip code
//	@Tags		zip
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lon	query		number	true	"Longitude"
//	@Success	200	{object}	models.ZipCode
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/api/zip/nearest [get]
func (h *ZipHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || math.IsNaN(lat) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || math.IsNaN(lon) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid longitude format"})
		return
	}

	zip, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, zip)
}
