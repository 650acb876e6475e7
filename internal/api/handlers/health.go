package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orbitalworks/stationsong-api/internal/config"
)

// HealthHandler reports service health
type HealthHandler struct {
	cfg     *config.Config
	version string
}

// NewHealthHandler creates a health handler
func NewHealthHandler(cfg *config.Config, version string) *HealthHandler {
	return &HealthHandler{cfg: cfg, version: version}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	journalStatus := "disabled"
	if h.cfg.OpenAIAPIKey != "" || h.cfg.GeminiAPIKey != "" {
		journalStatus = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
		"journal": gin.H{
			"status": journalStatus,
		},
		"telemetry_source": h.cfg.ISSAPIBaseURL,
	})
}
