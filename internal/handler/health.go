package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ZipCounter reports how many zip codes are imported.
type ZipCounter interface {
	CountZipCodes(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	counter ZipCounter
}

// NewHealthHandler creates a health handler. counter may be nil when no
// database is configured.
func NewHealthHandler(counter ZipCounter) *HealthHandler {
	return &HealthHandler{counter: counter}
}

// Health handles GET /health requests
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	503	{object}	map[string]any
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.counter == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	n, err := h.counter.CountZipCodes(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "zip_codes": n})
}
