package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orbitalworks/stationsong-api/internal/generation"
	"github.com/orbitalworks/stationsong-api/internal/llm"
	"github.com/orbitalworks/stationsong-api/internal/midi"
	"github.com/orbitalworks/stationsong-api/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCompositionRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := generation.NewService(
		telemetry.NewClient("http://127.0.0.1:0"),
		midi.NewWriter(t.TempDir()),
		llm.NewProviderFactory("", ""),
		nil,
	)

	router := gin.New()
	router.POST("/api/v1/compositions", NewCompositionHandler(service).Create)
	return router
}

func TestCreateCompositionWithoutBody(t *testing.T) {
	router := setupCompositionRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compositions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "musical_params")
	assert.Contains(t, resp, "description")
	assert.Contains(t, resp, "midi_path")
	assert.Contains(t, resp, "journal")
	assert.Contains(t, resp, "snapshot")
	assert.Contains(t, resp, "generated_at")
}

func TestCreateCompositionWithPinnedInputs(t *testing.T) {
	router := setupCompositionRouter(t)

	body := `{
		"region": "Europe",
		"telemetry": {
			"altitude_km": 415.2,
			"velocity_kmh": 27580,
			"temperature_celsius": -89,
			"cosmic_ray_intensity": 1.8,
			"solar_panel_efficiency": 92
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compositions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MusicalParams struct {
			ScaleType  string `json:"scale_type"`
			BaseOctave int    `json:"base_octave"`
			Volume     int    `json:"volume"`
			Region     string `json:"region"`
		} `json:"musical_params"`
		Description string `json:"description"`
		Journal     struct {
			Fallback bool `json:"fallback"`
		} `json:"journal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "cosmic", resp.MusicalParams.ScaleType)
	assert.Equal(t, 4, resp.MusicalParams.BaseOctave)
	assert.Equal(t, 55, resp.MusicalParams.Volume)
	assert.Equal(t, "Europe", resp.MusicalParams.Region)
	assert.Contains(t, resp.Description, "Europe")
	// No LLM keys, so the fallback journal is served
	assert.True(t, resp.Journal.Fallback)
}

func TestCreateCompositionRejectsUnknownModel(t *testing.T) {
	router := setupCompositionRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compositions",
		bytes.NewBufferString(`{"model": "gpt-2"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid model")
}

func TestCreateCompositionRejectsMalformedJSON(t *testing.T) {
	router := setupCompositionRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compositions",
		bytes.NewBufferString(`{"region":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
