package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestNilRecorderIsInert(t *testing.T) {
	r := NewRecorder("")
	assert.Nil(t, r)
	r.Add("C")
	path, err := r.Flush()
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestEmptyCaptureWritesNothing(t *testing.T) {
	r := NewRecorder(t.TempDir())
	path, err := r.Flush()
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestRecorderDropsUnknownNotes(t *testing.T) {
	r := NewRecorder(t.TempDir())
	r.Add("H")
	r.Add("")
	path, err := r.Flush()
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestFlushWritesReadableMIDIFile(t *testing.T) {
	r := NewRecorder(t.TempDir())
	r.Add("C")
	r.Add("E")
	r.Add("G")

	path, err := r.Flush()
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, ".mid"))

	read, err := smf.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, read.Tracks, 1)

	var starts []uint8
	for _, evt := range read.Tracks[0] {
		var ch, key, vel uint8
		if evt.Message.GetNoteStart(&ch, &key, &vel) {
			starts = append(starts, key)
		}
	}
	assert.Equal(t, []uint8{60, 64, 67}, starts, "C E G above middle C")
}

func TestRapidNotesKeepDeltasSane(t *testing.T) {
	// Back-to-back Adds land within the fixed note length; deltas must
	// never wrap around zero.
	r := NewRecorder(t.TempDir())
	r.Add("C")
	r.Add("E")
	r.Add("G")

	path, err := r.Flush()
	require.NoError(t, err)
	require.NotEmpty(t, path)

	read, err := smf.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, read.Tracks, 1)

	var starts []uint8
	for _, evt := range read.Tracks[0] {
		assert.LessOrEqual(t, evt.Delta, uint32(recorderNoteTicks))
		var ch, key, vel uint8
		if evt.Message.GetNoteStart(&ch, &key, &vel) {
			starts = append(starts, key)
		}
	}
	assert.Equal(t, []uint8{60, 64, 67}, starts, "order preserved")
}

func TestFlushResetsCapture(t *testing.T) {
	r := NewRecorder(t.TempDir())
	r.Add("C")
	path, err := r.Flush()
	require.NoError(t, err)
	require.NotEmpty(t, path)

	again, err := r.Flush()
	assert.NoError(t, err)
	assert.Empty(t, again, "second flush has nothing to write")
}
