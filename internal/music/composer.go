package music

import (
	"math"
	"math/rand"
	"time"

	"github.com/orbitalworks/stationsong-api/internal/models"
)

// RandSource is the composer's only source of randomness. Injecting it
// makes compositions reproducible in tests; the default source is
// time-seeded, so production runs stay non-deterministic.
type RandSource interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}

// Composition layout constants.
const (
	DefaultDurationSeconds = 30
	DefaultTicksPerBeat    = 480

	channelPad     = 0
	channelMelody  = 1
	channelTexture = 2

	padHoldFraction   = 0.8
	padVelocityFloor  = 30
	padVelocityScale  = 0.6
	melodyMaxNotes    = 12
	melodyVelScale    = 0.8
	textureMaxNotes   = 8
	textureVelScale   = 0.4
	textureOctaveUp   = 24 // two octaves
	texturePitchCount = 4  // first 4 scale degrees

	// Texture only appears once harmonic complexity passes this.
	textureThreshold = 0.5
	// A 4th chord tone is added once brightness passes this.
	brightChordThreshold = 0.7
)

// Composer builds a multi-layer Composition from musical parameters.
type Composer struct {
	DurationSeconds int
	TicksPerBeat    int
	rng             RandSource
}

// NewComposer returns a composer drawing from rng. A nil rng gets a
// time-seeded source.
func NewComposer(rng RandSource) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{
		DurationSeconds: DefaultDurationSeconds,
		TicksPerBeat:    DefaultTicksPerBeat,
		rng:             rng,
	}
}

// Compose turns a parameter set into a pad + melody (+ texture) note
// sequence. Melody and texture pitch choices and texture timing come
// from the injected random source; everything else is deterministic in
// the parameters. A zero-note melody or texture layer is valid.
func (c *Composer) Compose(params models.MusicalParameters) models.Composition {
	scale := ScaleFor(params.ScaleType)

	// Shift the palette into the mapped octave.
	octaveShift := (params.BaseOctave - 4) * 12
	pitches := make([]int, len(scale))
	for i, p := range scale {
		pitches[i] = p + octaveShift
	}

	totalTicks := c.DurationSeconds * c.TicksPerBeat * params.Tempo / 60

	comp := models.Composition{
		TempoBPM:     params.Tempo,
		TicksPerBeat: c.TicksPerBeat,
		TotalTicks:   totalTicks,
	}

	comp.Events = append(comp.Events, c.padLayer(pitches, params, totalTicks)...)
	comp.Events = append(comp.Events, c.melodyLayer(pitches, params, totalTicks)...)
	if params.HarmonyComplexity > textureThreshold {
		comp.Events = append(comp.Events, c.textureLayer(pitches, params, totalTicks)...)
	}

	return comp
}

// padLayer emits the sustained chord: scale degrees 0, 2, 4, plus
// degree 6 when the piece is bright. All tones start together and hold
// for 80% of the piece, ending simultaneously.
func (c *Composer) padLayer(pitches []int, params models.MusicalParameters, totalTicks int) []models.NoteEvent {
	chord := []int{pitches[0], pitches[2], pitches[4]}
	if params.Brightness > brightChordThreshold {
		chord = append(chord, pitches[6])
	}

	velocity := int(math.Round(float64(params.Volume) * padVelocityScale))
	if velocity < padVelocityFloor {
		velocity = padVelocityFloor
	}

	holdTicks := int(float64(totalTicks) * padHoldFraction)

	events := make([]models.NoteEvent, 0, len(chord))
	for _, pitch := range chord {
		events = append(events, models.NoteEvent{
			Channel:       channelPad,
			Pitch:         clampPitch(pitch),
			Velocity:      uint8(velocity),
			StartTicks:    0,
			DurationTicks: holdTicks,
		})
	}
	return events
}

// melodyLayer emits round(density*12) notes spaced evenly across the
// piece. Each note lasts half its inter-onset spacing, so the line is
// staccato by construction.
func (c *Composer) melodyLayer(pitches []int, params models.MusicalParameters, totalTicks int) []models.NoteEvent {
	noteCount := int(math.Round(params.NoteDensity * melodyMaxNotes))
	if noteCount <= 0 {
		return nil
	}

	velocity := uint8(math.Round(float64(params.Volume) * melodyVelScale))
	interval := totalTicks / noteCount
	duration := totalTicks / (noteCount * 2)

	events := make([]models.NoteEvent, 0, noteCount)
	for i := 0; i < noteCount; i++ {
		pitch := pitches[int(c.rng.Float64()*float64(len(pitches)))]
		events = append(events, models.NoteEvent{
			Channel:       channelMelody,
			Pitch:         clampPitch(pitch),
			Velocity:      velocity,
			StartTicks:    i * interval,
			DurationTicks: duration,
		})
	}
	return events
}

// textureLayer sprinkles round(complexity*8) short high-register notes
// at random onsets: the first four scale degrees raised two octaves.
func (c *Composer) textureLayer(pitches []int, params models.MusicalParameters, totalTicks int) []models.NoteEvent {
	noteCount := int(math.Round(params.HarmonyComplexity * textureMaxNotes))
	if noteCount <= 0 {
		return nil
	}

	high := make([]int, texturePitchCount)
	for i := 0; i < texturePitchCount; i++ {
		high[i] = pitches[i] + textureOctaveUp
	}

	velocity := uint8(math.Round(float64(params.Volume) * textureVelScale))
	duration := c.TicksPerBeat / 4

	events := make([]models.NoteEvent, 0, noteCount)
	for i := 0; i < noteCount; i++ {
		pitch := high[int(c.rng.Float64()*float64(len(high)))]
		onset := int(c.rng.Float64() * float64(totalTicks))
		events = append(events, models.NoteEvent{
			Channel:       channelTexture,
			Pitch:         clampPitch(pitch),
			Velocity:      velocity,
			StartTicks:    onset,
			DurationTicks: duration,
		})
	}
	return events
}

func clampPitch(p int) uint8 {
	if p < 0 {
		return 0
	}
	if p > 127 {
		return 127
	}
	return uint8(p)
}
