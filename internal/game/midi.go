package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters the driver

	"github.com/gsinfogaurav-sudo/music/internal/catalog"
	"github.com/gsinfogaurav-sudo/music/internal/util"
)

// midiNoteEvent crosses from the driver callback goroutine into the
// frame loop; all game state mutation stays on the main thread.
type midiNoteEvent struct {
	Note  string
	Chord []string // non-nil when a debounced chord group settled
}

// MIDIInput listens on the first available input port. Near-simultaneous
// key presses are additionally grouped into a chord event after a short
// settle delay, so chord rounds can be answered on a real keyboard
// without an explicit check press.
type MIDIInput struct {
	stop   func()
	events chan midiNoteEvent

	mu      sync.Mutex
	pending map[string]bool
	settle  func(func())
}

// OpenMIDI connects to MIDI input port 0. Callers drain Events once
// per frame.
func OpenMIDI() (*MIDIInput, error) {
	in, err := midi.InPort(0)
	if err != nil {
		return nil, fmt.Errorf("midi: no input port: %w", err)
	}

	m := &MIDIInput{
		events:  make(chan midiNoteEvent, 64),
		pending: make(map[string]bool),
		settle:  debounce.New(ChordDebounceMillis * time.Millisecond),
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		if !msg.GetNoteStart(&ch, &key, &vel) {
			return
		}
		name := noteNameForKey(key)
		if name == "" {
			return
		}
		m.push(name)
	})
	if err != nil {
		return nil, fmt.Errorf("midi: listen on %s: %w", in.String(), err)
	}
	m.stop = stop
	return m, nil
}

func (m *MIDIInput) push(name string) {
	select {
	case m.events <- midiNoteEvent{Note: name}:
	default:
	}

	m.mu.Lock()
	m.pending[name] = true
	m.mu.Unlock()
	m.settle(m.flushChord)
}

func (m *MIDIInput) flushChord() {
	m.mu.Lock()
	group := util.Keys(m.pending)
	m.pending = make(map[string]bool)
	m.mu.Unlock()

	if len(group) < 2 {
		return
	}
	sort.Strings(group)
	select {
	case m.events <- midiNoteEvent{Chord: group}:
	default:
	}
}

// Events is drained by the frame loop.
func (m *MIDIInput) Events() <-chan midiNoteEvent { return m.events }

// Close stops listening.
func (m *MIDIInput) Close() {
	if m.stop != nil {
		m.stop()
	}
}

// noteNameForKey folds a MIDI key onto the seven white keys of the
// C major octave. Black keys return "".
func noteNameForKey(key uint8) string {
	names := map[uint8]string{0: "C", 2: "D", 4: "E", 5: "F", 7: "G", 9: "A", 11: "B"}
	name, ok := names[key%12]
	if !ok {
		return ""
	}
	if catalog.NoteIndex(name) < 0 {
		return ""
	}
	return name
}
