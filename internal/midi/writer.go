package midi

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/orbitalworks/stationsong-api/internal/models"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Writer serializes compositions as Standard MIDI Files. A write
// failure is terminal for the generation request: the in-memory
// composition is simply discarded, never retried.
type Writer struct {
	OutputDir string
}

// NewWriter creates a writer that puts files under outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{OutputDir: outputDir}
}

// channels present in a composition, in track order.
var channels = []uint8{0, 1, 2}

// Write serializes the composition: one tempo track followed by one
// track per channel, delta-timed. The tempo meta message is the first
// event of the file. Returns the path of the written file.
func (w *Writer) Write(comp models.Composition) (string, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(comp.TicksPerBeat)

	var tempoTrack smf.Track
	tempoTrack.Add(0, smf.MetaTempo(float64(comp.TempoBPM)))
	tempoTrack.Close(0)
	if err := s.Add(tempoTrack); err != nil {
		return "", fmt.Errorf("failed to add tempo track: %w", err)
	}

	for _, ch := range channels {
		events := comp.EventsForChannel(ch)
		if len(events) == 0 {
			continue
		}
		if err := s.Add(buildTrack(ch, events)); err != nil {
			return "", fmt.Errorf("failed to add channel %d track: %w", ch, err)
		}
	}

	filename := fmt.Sprintf("space_music_%s.mid", time.Now().Format("20060102_150405"))
	path := filepath.Join(w.OutputDir, filename)

	if err := s.WriteFile(path); err != nil {
		return "", fmt.Errorf("failed to write MIDI file: %w", err)
	}

	return path, nil
}

// timedMessage is an absolute-tick MIDI message awaiting delta
// conversion.
type timedMessage struct {
	tick   int
	noteOn bool
	msg    midi.Message
}

// buildTrack converts absolute note events into a delta-timed track.
// Note-offs sort before note-ons at the same tick so back-to-back
// repeats of a pitch never leave a note hanging. Simultaneous chord
// tones keep the cumulative convention: the first off carries the hold
// delta, the rest carry zero.
func buildTrack(ch uint8, events []models.NoteEvent) smf.Track {
	msgs := make([]timedMessage, 0, len(events)*2)
	for _, ev := range events {
		msgs = append(msgs, timedMessage{
			tick:   ev.StartTicks,
			noteOn: true,
			msg:    midi.NoteOn(ch, ev.Pitch, ev.Velocity),
		})
		msgs = append(msgs, timedMessage{
			tick: ev.StartTicks + ev.DurationTicks,
			msg:  midi.NoteOff(ch, ev.Pitch),
		})
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return !msgs[i].noteOn && msgs[j].noteOn
	})

	var track smf.Track
	prev := 0
	for _, m := range msgs {
		track.Add(uint32(m.tick-prev), m.msg)
		prev = m.tick
	}
	track.Close(0)
	return track
}
