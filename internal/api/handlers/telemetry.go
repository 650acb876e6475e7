package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orbitalworks/stationsong-api/internal/telemetry"
)

// TelemetryHandler exposes the current telemetry snapshot
type TelemetryHandler struct {
	client *telemetry.Client
}

// NewTelemetryHandler creates a telemetry handler
func NewTelemetryHandler(client *telemetry.Client) *TelemetryHandler {
	return &TelemetryHandler{client: client}
}

// Snapshot returns the current location, crew and telemetry record.
// Upstream failures are already recovered with mock data inside the
// client, so this never errors.
func (h *TelemetryHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.Snapshot(c.Request.Context()))
}
