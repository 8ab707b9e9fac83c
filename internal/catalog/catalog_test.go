package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotesAreOrderedByFrequency(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Notes, 7)
	for i := 1; i < len(Notes); i++ {
		assert.Greater(Notes[i].Freq, Notes[i-1].Freq, "note %s", Notes[i].Name)
	}
}

func TestNoteIndexRoundTrips(t *testing.T) {
	assert := assert.New(t)
	for i, n := range Notes {
		assert.Equal(i, NoteIndex(n.Name))
		got, ok := NoteByName(n.Name)
		assert.True(ok)
		assert.Equal(n, got)
	}
	assert.Equal(-1, NoteIndex("H"))
	assert.Equal(0.0, Frequency("H"))
}

func TestChordsReferenceKnownNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Chords, 6)
	for _, c := range Chords {
		seen := map[string]bool{}
		for _, name := range c.Notes {
			assert.GreaterOrEqual(NoteIndex(name), 0, "%s: %s", c.Name, name)
			assert.False(seen[name], "%s repeats %s", c.Name, name)
			seen[name] = true
		}
	}
}

func TestScalesReferenceKnownNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Scales, 3)
	for _, s := range Scales {
		assert.NotEmpty(s.Sequence)
		for _, name := range s.Sequence {
			assert.GreaterOrEqual(NoteIndex(name), 0, "%s: %s", s.Name, name)
		}
		// Every table scale wraps back to its tonic.
		assert.Equal(s.Sequence[0], s.Sequence[len(s.Sequence)-1])
	}
}

func TestIntervalStepsFitTheKeyboard(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Intervals, 6)
	for _, iv := range Intervals {
		assert.Greater(iv.Steps, 0)
		assert.Less(iv.Steps, len(Notes))
	}
}

func TestTimeSignatureBeats(t *testing.T) {
	assert := assert.New(t)
	assert.Len(TimeSignatures, 3)
	for _, ts := range TimeSignatures {
		assert.Greater(ts.Beats, 0)
	}
}
