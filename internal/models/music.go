package models

// ScaleType names the harmonic mood of a composition.
type ScaleType string

// Supported moods. Each maps to a fixed 8-pitch scale.
const (
	ScalePeaceful   ScaleType = "peaceful"
	ScaleMysterious ScaleType = "mysterious"
	ScaleCosmic     ScaleType = "cosmic"
	ScaleEthereal   ScaleType = "ethereal"
)

// MusicalParameters is the derived, immutable value object that drives
// the composer. All continuous fields are clamped linear mappings of
// their telemetry inputs.
type MusicalParameters struct {
	ScaleType         ScaleType `json:"scale_type"`
	BaseOctave        int       `json:"base_octave"`        // 3-5
	NoteDensity       float64   `json:"note_density"`       // 0..1
	Volume            int       `json:"volume"`             // MIDI velocity range 0..127
	HarmonyComplexity float64   `json:"harmony_complexity"` // 0..1
	Brightness        float64   `json:"brightness"`         // 0..1
	Region            string    `json:"region"`
	Tempo             int       `json:"tempo"` // BPM, fixed per run
}

// NoteEvent is a single note with onset and duration in ticks,
// absolute within the composition. Channel 0 = pad, 1 = melody,
// 2 = texture.
type NoteEvent struct {
	Channel       uint8 `json:"channel"`
	Pitch         uint8 `json:"pitch"`
	Velocity      uint8 `json:"velocity"`
	StartTicks    int   `json:"start_ticks"`
	DurationTicks int   `json:"duration_ticks"`
}

// Composition is the finished multi-layer note sequence. It is built
// once per request, never mutated afterwards, consumed by the MIDI
// writer and then discarded.
type Composition struct {
	TempoBPM     int         `json:"tempo_bpm"`
	TicksPerBeat int         `json:"ticks_per_beat"`
	Events       []NoteEvent `json:"events"`
	TotalTicks   int         `json:"total_ticks"`
}

// EventsForChannel returns the events on one channel, in the order they
// were composed (onset-ordered within each layer).
func (c *Composition) EventsForChannel(channel uint8) []NoteEvent {
	var out []NoteEvent
	for _, ev := range c.Events {
		if ev.Channel == channel {
			out = append(out, ev)
		}
	}
	return out
}
