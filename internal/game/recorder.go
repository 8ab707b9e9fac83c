package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/gsinfogaurav-sudo/music/internal/catalog"
)

const (
	recorderTicksPerQuarter = 960
	recorderBPM             = 120.0
	recorderNoteTicks       = 480 // half a beat per played key
	recorderChannel         = 0
	recorderVelocity        = 90
	midiMiddleC             = 60
)

// Recorder captures free-play notes with wall-clock timestamps and
// writes them out as a single-track standard MIDI file.
type Recorder struct {
	dir   string
	start time.Time
	notes []recordedNote
}

type recordedNote struct {
	key uint8
	at  time.Duration
}

// NewRecorder records into dir. A nil recorder is valid and records nothing.
func NewRecorder(dir string) *Recorder {
	if dir == "" {
		return nil
	}
	return &Recorder{dir: dir, start: time.Now()}
}

// Add appends a played note. Unknown names are dropped.
func (r *Recorder) Add(name string) {
	if r == nil {
		return
	}
	idx := catalog.NoteIndex(name)
	if idx < 0 {
		return
	}
	scale := []uint8{0, 2, 4, 5, 7, 9, 11} // major-scale semitone offsets
	r.notes = append(r.notes, recordedNote{
		key: midiMiddleC + scale[idx],
		at:  time.Since(r.start),
	})
}

// Flush writes the captured notes and returns the file path. An empty
// capture writes nothing.
func (r *Recorder) Flush() (string, error) {
	if r == nil || len(r.notes) == 0 {
		return "", nil
	}
	ticks := smf.MetricTicks(recorderTicksPerQuarter)
	var track smf.Track
	track.Add(0, smf.MetaTempo(recorderBPM))

	prev := uint32(0)
	for _, n := range r.notes {
		at := ticks.Ticks(recorderBPM, n.at)
		// A note can land while the previous one is still sounding;
		// the previous note-off already advanced prev past it, so the
		// next note starts right after instead of rewinding the track.
		if at < prev {
			at = prev
		}
		track.Add(at-prev, midi.NoteOn(recorderChannel, n.key, recorderVelocity))
		track.Add(recorderNoteTicks, midi.NoteOff(recorderChannel, n.key))
		prev = at + recorderNoteTicks
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = ticks
	if err := s.Add(track); err != nil {
		return "", fmt.Errorf("recorder: add track: %w", err)
	}

	path := filepath.Join(r.dir, uuid.New().String()+".mid")
	if err := s.WriteFile(path); err != nil {
		return "", fmt.Errorf("recorder: write %s: %w", path, err)
	}
	r.notes = r.notes[:0]
	r.start = time.Now()
	return path, nil
}
