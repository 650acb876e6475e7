package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/orbitalworks/stationsong-api/internal/llm"
	"github.com/orbitalworks/stationsong-api/internal/logger"
	"github.com/orbitalworks/stationsong-api/internal/models"
	"github.com/orbitalworks/stationsong-api/internal/observability"
)

const (
	// DefaultModel writes the diary when the request doesn't pick one.
	DefaultModel = "gpt-4o-mini"

	entryMaxTokens   = 300
	entryTemperature = 0.8
	titleMaxTokens   = 50
	titleTemperature = 0.9

	// How much of the entry the title prompt gets to see.
	titleContextChars = 200
)

const entrySystemPrompt = `You are an astronaut aboard the International Space Station writing in your personal diary.
Write in first person, be poetic and contemplative, focusing on the wonder of space, Earth's beauty,
and the human experience in microgravity. Keep entries between 100-200 words.
Be specific about locations and technical details but make them feel personal and emotional.`

const titleSystemPrompt = `Create a poetic, evocative title for an astronaut's journal entry.
The title should be 3-8 words and capture the essence of the experience.
Examples: "Whispers Over the Pacific", "Dancing with Aurora", "Silence Above the Sahara".`

// Generator writes astronaut diary entries from a telemetry snapshot.
// Provider failures never surface: the generator falls back to a fixed
// templated entry instead.
type Generator struct {
	provider llm.Provider
	model    string
}

// NewGenerator creates a journal generator using the given provider
// and model.
func NewGenerator(provider llm.Provider, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		provider: provider,
		model:    model,
	}
}

// GenerateEntry writes a diary entry and its title from the snapshot.
// The returned usage covers both LLM calls, for metrics.
func (g *Generator) GenerateEntry(ctx context.Context, snap models.Snapshot) (models.JournalEntry, llm.Usage) {
	trace := observability.GetClient().StartTrace(ctx, "journal_entry", map[string]interface{}{
		"region": snap.Location.Region,
		"model":  g.model,
	})
	defer trace.Finish()

	contextPrompt := buildContextPrompt(snap)

	entryResp, err := g.generate(ctx, trace, "diary_entry", entrySystemPrompt, contextPrompt, entryMaxTokens, entryTemperature)
	if err != nil {
		logger.Error("Journal entry generation failed, using fallback", err, logger.Fields{"model": g.model})
		return Fallback(snap), llm.Usage{}
	}

	titlePrompt := fmt.Sprintf("Create a title for this journal entry: %s...", truncate(entryResp.Text, titleContextChars))
	titleResp, err := g.generate(ctx, trace, "diary_title", titleSystemPrompt, titlePrompt, titleMaxTokens, titleTemperature)
	if err != nil {
		logger.Error("Journal title generation failed, using fallback", err, logger.Fields{"model": g.model})
		return Fallback(snap), entryResp.Usage
	}

	usage := llm.Usage{
		InputTokens:  entryResp.Usage.InputTokens + titleResp.Usage.InputTokens,
		OutputTokens: entryResp.Usage.OutputTokens + titleResp.Usage.OutputTokens,
		TotalTokens:  entryResp.Usage.TotalTokens + titleResp.Usage.TotalTokens,
	}

	return models.JournalEntry{
		Title:       stripQuotes(titleResp.Text),
		Entry:       entryResp.Text,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, usage
}

func (g *Generator) generate(
	ctx context.Context,
	trace *observability.Trace,
	name, systemPrompt, userPrompt string,
	maxTokens int64,
	temperature float64,
) (*llm.TextResponse, error) {
	gen := trace.Generation(name, nil)
	defer gen.Finish()

	resp, err := g.provider.GenerateText(ctx, &llm.TextRequest{
		Model:        g.model,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
	})
	if err != nil {
		gen.SetLevel("ERROR")
		return nil, err
	}

	gen.LogTextGeneration(g.model, systemPrompt, userPrompt, resp.Text, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

// buildContextPrompt summarizes the current situation aboard for the
// LLM.
func buildContextPrompt(snap models.Snapshot) string {
	return fmt.Sprintf(`Current situation aboard the ISS:

Location: Flying over %s at coordinates %.2f°, %.2f°
Altitude: %.1f km above Earth
Velocity: %.0f km/h
External temperature: %.1f°C
Cosmic ray intensity: %.2f
Crew members aboard: %d
Time context: %s

Write a personal diary entry reflecting on this moment in space, the view of Earth below,
the technical aspects of the mission, and the emotional experience of being in orbit.`,
		snap.Location.Region,
		snap.Location.Latitude,
		snap.Location.Longitude,
		snap.Telemetry.AltitudeKm,
		snap.Telemetry.VelocityKmh,
		snap.Telemetry.TemperatureCelsius,
		snap.Telemetry.CosmicRayIntensity,
		snap.Crew.Count,
		timeContext(time.Now().Hour()),
	)
}

// timeContext gives the LLM a sense of watch time.
func timeContext(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Morning watch - Earth awakening below"
	case hour >= 12 && hour < 17:
		return "Afternoon orbit - Sun illuminating continents"
	case hour >= 17 && hour < 21:
		return "Evening pass - City lights beginning to twinkle"
	default:
		return "Night shift - Darkness revealing Earth's glow"
	}
}

// Fallback is the fixed templated diary used when the text
// provider is unavailable.
func Fallback(snap models.Snapshot) models.JournalEntry {
	region := snap.Location.Region
	if region == "" {
		region = "the vast ocean"
	}
	altitude := snap.Telemetry.AltitudeKm
	if altitude == 0 {
		altitude = 408
	}

	entry := fmt.Sprintf(`Another orbit complete, another moment of wonder.

Today finds us %.1f kilometers above %s, moving through the cosmos at impossible speeds yet feeling perfectly still. The silence up here is profound - broken only by the gentle hum of life support systems that keep us tethered to existence.

Looking down at Earth, I'm struck by how fragile and beautiful our home appears. No borders visible from this height, just the flowing blues and greens of a living world. The solar panels catch the light just right, and for a moment, everything feels perfectly aligned.

These moments remind me why we're here - not just as explorers, but as witnesses to the extraordinary.`, altitude, region)

	return models.JournalEntry{
		Title:       fmt.Sprintf("Reflections Above %s", region),
		Entry:       entry,
		Fallback:    true,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func stripQuotes(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != '"' {
			out = append(out, r)
		}
	}
	return string(out)
}
