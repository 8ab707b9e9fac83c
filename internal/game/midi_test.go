package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsinfogaurav-sudo/music/internal/trainer"
)

func TestNoteNameForKeyFoldsOctaves(t *testing.T) {
	assert.Equal(t, "C", noteNameForKey(60))
	assert.Equal(t, "C", noteNameForKey(72))
	assert.Equal(t, "C", noteNameForKey(0))
	assert.Equal(t, "A", noteNameForKey(69))
	assert.Equal(t, "B", noteNameForKey(107))
}

func TestNoteNameForKeyDropsBlackKeys(t *testing.T) {
	for _, key := range []uint8{61, 63, 66, 68, 70} {
		assert.Equal(t, "", noteNameForKey(key), "key %d", key)
	}
}

func TestDrainKeepsEveryPendingNote(t *testing.T) {
	m := &MIDIInput{events: make(chan midiNoteEvent, 8)}
	for _, n := range []string{"C", "E", "G"} {
		m.events <- midiNoteEvent{Note: n}
	}
	m.events <- midiNoteEvent{Chord: []string{"C", "E", "G"}}

	g := &loop{midiIn: m}
	notes, check := g.drainMIDI(nil)
	assert.Equal(t, []string{"C", "E", "G"}, notes)
	assert.True(t, check)

	notes, check = g.drainMIDI(nil)
	assert.Empty(t, notes, "drained channel yields nothing")
	assert.False(t, check)
}

func TestSameFrameChordPressesAllReachSelection(t *testing.T) {
	// Three note-ons landing within one frame must all toggle before
	// the settled chord group triggers the check.
	bus := NewEventBus()
	s := NewSession(ModeChordBuilder, 11, bus)
	require.NotNil(t, s)
	s.Start()

	m := &MIDIInput{events: make(chan midiNoteEvent, 8)}
	target := s.chordRule.Target().Notes
	for _, n := range target {
		m.events <- midiNoteEvent{Note: n}
	}
	m.events <- midiNoteEvent{Chord: append([]string(nil), target[:]...)}

	g := &loop{midiIn: m}
	notes, check := g.drainMIDI(nil)
	for _, n := range notes {
		s.SubmitNote(n)
	}
	require.True(t, check)
	s.SubmitCheck()
	assert.Equal(t, trainer.ResolvedCorrect, s.Machine.State())
	assert.Equal(t, 1, s.Machine.Round())
}
