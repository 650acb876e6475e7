package generation

import (
	"context"
	"testing"

	"github.com/orbitalworks/stationsong-api/internal/llm"
	"github.com/orbitalworks/stationsong-api/internal/midi"
	"github.com/orbitalworks/stationsong-api/internal/models"
	"github.com/orbitalworks/stationsong-api/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always draws the same value, keeping compositions stable.
type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

// newTestService builds a service with an unreachable telemetry host
// (forcing mock data), a temp-dir writer and no LLM keys (forcing the
// fallback journal).
func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(
		telemetry.NewClient("http://127.0.0.1:0"),
		midi.NewWriter(t.TempDir()),
		llm.NewProviderFactory("", ""),
		nil,
	)
	svc.Rand = fixedRand{v: 0.5}
	return svc
}

func TestGenerateEndToEnd(t *testing.T) {
	svc := newTestService(t)

	telemetryRecord := &models.TelemetryRecord{
		AltitudeKm:           415.2,
		VelocityKmh:          27580,
		TemperatureCelsius:   -89,
		CosmicRayIntensity:   1.8,
		SolarPanelEfficiency: 92,
	}

	result, err := svc.Generate(context.Background(), Options{
		Region:    "Europe",
		Telemetry: telemetryRecord,
	})
	require.NoError(t, err)

	assert.Equal(t, "Europe", result.Params.Region)
	assert.Equal(t, models.ScaleCosmic, result.Params.ScaleType)
	assert.Equal(t, 4, result.Params.BaseOctave)
	assert.Equal(t, 55, result.Params.Volume)

	assert.Contains(t, result.Description, "Expansive harmonies")
	assert.Contains(t, result.Description, "Europe")

	assert.FileExists(t, result.MIDIPath)
	assert.NotEmpty(t, result.GeneratedAt)

	// Overrides flow into the returned snapshot
	assert.Equal(t, "Europe", result.Snapshot.Location.Region)
	assert.Equal(t, *telemetryRecord, result.Snapshot.Telemetry)

	// No API keys configured, so the journal is the fixed fallback
	assert.True(t, result.Journal.Fallback)
	assert.Equal(t, "Reflections Above Europe", result.Journal.Title)
}

func TestGenerateWithoutOverridesUsesMockSnapshot(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Generate(context.Background(), Options{})
	require.NoError(t, err)

	// The unreachable host recovers to the mock Pacific track
	assert.Equal(t, "Pacific Ocean", result.Params.Region)
	assert.Equal(t, models.ScalePeaceful, result.Params.ScaleType)
	assert.NotEmpty(t, result.Snapshot.Crew.Members)
	assert.FileExists(t, result.MIDIPath)
}

func TestGenerateEmitFailureIsTerminal(t *testing.T) {
	svc := newTestService(t)
	svc.writer = midi.NewWriter("/nonexistent/output/dir")

	_, err := svc.Generate(context.Background(), Options{Region: "Asia"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write MIDI file")
}

func TestGenerateIsReproducibleWithFixedRand(t *testing.T) {
	svc := newTestService(t)

	opts := Options{
		Region: "Arctic Ocean",
		Telemetry: &models.TelemetryRecord{
			AltitudeKm:           410,
			VelocityKmh:          27600,
			TemperatureCelsius:   0,
			CosmicRayIntensity:   1.0,
			SolarPanelEfficiency: 90,
		},
	}

	first, err := svc.Generate(context.Background(), opts)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Params, second.Params)
	assert.Equal(t, first.Description, second.Description)
}
