package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orbitalworks/stationsong-api/internal/generation"
	"github.com/orbitalworks/stationsong-api/internal/logger"
	"github.com/orbitalworks/stationsong-api/internal/models"
)

// Journal models this API accepts.
var allowedModels = map[string]bool{
	"gpt-4o":           true,
	"gpt-4o-mini":      true,
	"gemini-2.5-flash": true,
	"gemini-2.5-pro":   true,
}

// CompositionHandler runs generation requests
type CompositionHandler struct {
	service *generation.Service
}

// NewCompositionHandler creates a composition handler
func NewCompositionHandler(service *generation.Service) *CompositionHandler {
	return &CompositionHandler{service: service}
}

// CreateRequest optionally pins parts of the generation input.
type CreateRequest struct {
	// Region pins the Earth region (otherwise derived from the live
	// station position).
	Region string `json:"region"`
	// Telemetry pins the telemetry record (otherwise synthesized).
	Telemetry *models.TelemetryRecord `json:"telemetry"`
	// Model selects the journal LLM (default gpt-4o-mini).
	Model string `json:"model"`
}

// Create runs one composition generation and returns the musical
// parameters, description, MIDI file path and journal entry.
func (h *CompositionHandler) Create(c *gin.Context) {
	var req CreateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if req.Model != "" && !allowedModels[req.Model] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid model. Allowed: gpt-4o, gpt-4o-mini, gemini-2.5-flash, gemini-2.5-pro",
		})
		return
	}

	startTime := time.Now()
	result, err := h.service.Generate(c.Request.Context(), generation.Options{
		Region:    req.Region,
		Telemetry: req.Telemetry,
		Model:     req.Model,
	})
	if err != nil {
		// Emit failure is terminal for this request; the composition is
		// cheap to regenerate on the next one.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	logger.Info("Composition request served", logger.Fields{
		"request_id":  c.GetString("request_id"),
		"region":      result.Params.Region,
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	c.JSON(http.StatusOK, gin.H{
		"request_id":     c.GetString("request_id"),
		"musical_params": result.Params,
		"description":    result.Description,
		"midi_path":      result.MIDIPath,
		"journal":        result.Journal,
		"snapshot":       result.Snapshot,
		"generated_at":   result.GeneratedAt,
	})
}
