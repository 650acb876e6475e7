package api

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/orbitalworks/stationsong-api/internal/api/handlers"
	apimiddleware "github.com/orbitalworks/stationsong-api/internal/api/middleware"
	"github.com/orbitalworks/stationsong-api/internal/config"
	"github.com/orbitalworks/stationsong-api/internal/generation"
	"github.com/orbitalworks/stationsong-api/internal/llm"
	"github.com/orbitalworks/stationsong-api/internal/metrics"
	"github.com/orbitalworks/stationsong-api/internal/midi"
	"github.com/orbitalworks/stationsong-api/internal/telemetry"
)

// SetupRouter wires all middleware, services and routes.
func SetupRouter(cfg *config.Config, m *metrics.Client, version string) (*gin.Engine, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(m))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	telemetryClient := telemetry.NewClient(cfg.ISSAPIBaseURL)
	writer := midi.NewWriter(cfg.OutputDir)
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	service := generation.NewService(telemetryClient, writer, factory, m)

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg, version)
	router.GET("/health", healthHandler.HealthCheck)

	// API routes v1
	v1 := router.Group("/api/v1")
	{
		compositionHandler := handlers.NewCompositionHandler(service)
		v1.POST("/compositions", compositionHandler.Create)

		telemetryHandler := handlers.NewTelemetryHandler(telemetryClient)
		v1.GET("/telemetry", telemetryHandler.Snapshot)
	}

	return router, nil
}
