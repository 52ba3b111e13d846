package handler

import (
	"errors"
	"net/http"

	"epo-browser/internal/geocoding"
	"epo-browser/internal/repository"
	"epo-browser/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps service and geocoding errors to status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidZip):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: service.InvalidZipMessage})
	case errors.Is(err, service.ErrInvalidRadius),
		errors.Is(err, service.ErrInvalidPlan),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrUnknownSpecialty),
		errors.Is(err, service.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, geocoding.ErrZipNotFound), errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "zip code not found"})
	case errors.Is(err, service.ErrUpstream):
		log.Error().Err(err).Str("path", c.FullPath()).Msg("upstream request failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "provider search is unavailable"})
	case errors.Is(err, service.ErrNearestUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
