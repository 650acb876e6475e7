package generation

import (
	"context"
	"time"

	"github.com/orbitalworks/stationsong-api/internal/journal"
	"github.com/orbitalworks/stationsong-api/internal/llm"
	"github.com/orbitalworks/stationsong-api/internal/logger"
	"github.com/orbitalworks/stationsong-api/internal/metrics"
	"github.com/orbitalworks/stationsong-api/internal/midi"
	"github.com/orbitalworks/stationsong-api/internal/models"
	"github.com/orbitalworks/stationsong-api/internal/music"
	"github.com/orbitalworks/stationsong-api/internal/telemetry"
)

// Options tune a single generation request. All fields are optional:
// an empty Options means "fetch everything live and use the default
// journal model".
type Options struct {
	// Region pins the Earth region instead of using the fetched one.
	Region string
	// Telemetry pins the telemetry record instead of synthesizing one.
	Telemetry *models.TelemetryRecord
	// Model selects the journal LLM (default gpt-4o-mini).
	Model string
}

// Result is everything one generation run produces.
type Result struct {
	Params      models.MusicalParameters `json:"musical_params"`
	Description string                   `json:"description"`
	MIDIPath    string                   `json:"midi_path"`
	Snapshot    models.Snapshot          `json:"snapshot"`
	Journal     models.JournalEntry      `json:"journal"`
	GeneratedAt string                   `json:"generated_at"`
}

// Service orchestrates one request-scoped generation: telemetry →
// musical parameters → composition → MIDI file, with the journal
// written off the same snapshot. Nothing is shared between requests
// except the clients themselves.
type Service struct {
	telemetry *telemetry.Client
	writer    *midi.Writer
	factory   *llm.ProviderFactory
	metrics   *metrics.Client

	// Rand overrides the composer's random source; nil means a fresh
	// time-seeded source per request.
	Rand music.RandSource
}

// NewService wires a generation service.
func NewService(tel *telemetry.Client, writer *midi.Writer, factory *llm.ProviderFactory, m *metrics.Client) *Service {
	return &Service{
		telemetry: tel,
		writer:    writer,
		factory:   factory,
		metrics:   m,
	}
}

// Generate runs one generation request. Telemetry and journal failures
// recover locally; only a MIDI write failure is terminal, in which
// case the in-memory composition is discarded and the error surfaced.
func (s *Service) Generate(ctx context.Context, opts Options) (*Result, error) {
	startTime := time.Now()

	snap := s.telemetry.Snapshot(ctx)
	if opts.Region != "" {
		snap.Location.Region = opts.Region
	}
	if opts.Telemetry != nil {
		snap.Telemetry = *opts.Telemetry
	}

	params := music.MapTelemetry(snap.Telemetry, snap.Location.Region)
	composition := music.NewComposer(s.Rand).Compose(params)

	path, err := s.writer.Write(composition)
	if err != nil {
		logger.Error("MIDI write failed", err, logger.Fields{"region": params.Region})
		s.metrics.RecordCompositionDuration(time.Since(startTime), false)
		return nil, err
	}

	description := music.Describe(params)
	entry := s.journalEntry(ctx, opts.Model, snap)

	s.metrics.RecordCompositionDuration(time.Since(startTime), true)

	logger.Info("Composition generated", logger.Fields{
		"region":      params.Region,
		"scale_type":  string(params.ScaleType),
		"midi_path":   path,
		"note_events": len(composition.Events),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	return &Result{
		Params:      params,
		Description: description,
		MIDIPath:    path,
		Snapshot:    snap,
		Journal:     entry,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// journalEntry writes the diary for the snapshot. A missing provider
// (e.g. no API key configured) degrades to the fixed fallback entry,
// same as a provider failure.
func (s *Service) journalEntry(ctx context.Context, model string, snap models.Snapshot) models.JournalEntry {
	if model == "" {
		model = journal.DefaultModel
	}

	provider, err := s.factory.GetProvider(ctx, model)
	if err != nil {
		logger.Warn("No journal provider available, using fallback entry", logger.Fields{
			"model": model,
			"error": err.Error(),
		})
		return journal.Fallback(snap)
	}

	entry, usage := journal.NewGenerator(provider, model).GenerateEntry(ctx, snap)
	if usage.TotalTokens > 0 {
		s.metrics.RecordTokenUsage(model, usage.TotalTokens, usage.InputTokens, usage.OutputTokens)
	}
	return entry
}
