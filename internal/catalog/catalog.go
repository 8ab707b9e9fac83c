// Package catalog holds the fixed target tables the practice modes draw
// from: seven natural notes over one octave plus the chords, scales,
// intervals and time signatures built on them. Everything here is
// immutable after init.
package catalog

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Note is one key of the on-screen keyboard.
type Note struct {
	Name  string
	Freq  float64 // Hz, fourth octave
	Color RGB
}

// Chord is a triad; Notes is stored in root position but compared as a set.
type Chord struct {
	Name  string
	Notes [3]string
}

// Scale is an ordered sequence of note names, octave wrap allowed.
type Scale struct {
	Name     string
	Sequence []string
}

// Interval is a step offset within the note table's index space.
type Interval struct {
	Name  string
	Steps int
}

// TimeSignature maps a meter name to its beat count per measure.
type TimeSignature struct {
	Name  string
	Beats int
}

// Notes is the keyboard, low to high. Index order is the interval index
// space: rootIndex + Interval.Steps addresses the interval target.
var Notes = []Note{
	{Name: "C", Freq: 261.63, Color: RGB{R: 226, G: 61, B: 61}},
	{Name: "D", Freq: 293.66, Color: RGB{R: 235, G: 135, B: 49}},
	{Name: "E", Freq: 329.63, Color: RGB{R: 240, G: 205, B: 60}},
	{Name: "F", Freq: 349.23, Color: RGB{R: 90, G: 185, B: 85}},
	{Name: "G", Freq: 392.00, Color: RGB{R: 66, G: 150, B: 220}},
	{Name: "A", Freq: 440.00, Color: RGB{R: 105, G: 85, B: 205}},
	{Name: "B", Freq: 493.88, Color: RGB{R: 190, G: 80, B: 190}},
}

// Chords are the six white-key triads (the diminished triad on B is
// left out on purpose).
var Chords = []Chord{
	{Name: "C Major", Notes: [3]string{"C", "E", "G"}},
	{Name: "D Minor", Notes: [3]string{"D", "F", "A"}},
	{Name: "E Minor", Notes: [3]string{"E", "G", "B"}},
	{Name: "F Major", Notes: [3]string{"F", "A", "C"}},
	{Name: "G Major", Notes: [3]string{"G", "B", "D"}},
	{Name: "A Minor", Notes: [3]string{"A", "C", "E"}},
}

var Scales = []Scale{
	{Name: "C Major", Sequence: []string{"C", "D", "E", "F", "G", "A", "B", "C"}},
	{Name: "C Major Pentatonic", Sequence: []string{"C", "D", "E", "G", "A", "C"}},
	{Name: "C Major Arpeggio", Sequence: []string{"C", "E", "G", "C"}},
}

var Intervals = []Interval{
	{Name: "Major Second", Steps: 1},
	{Name: "Major Third", Steps: 2},
	{Name: "Perfect Fourth", Steps: 3},
	{Name: "Perfect Fifth", Steps: 4},
	{Name: "Major Sixth", Steps: 5},
	{Name: "Major Seventh", Steps: 6},
}

var TimeSignatures = []TimeSignature{
	{Name: "2/4", Beats: 2},
	{Name: "3/4", Beats: 3},
	{Name: "4/4", Beats: 4},
}

// noteIndex maps note names to their position in Notes.
var noteIndex = func() map[string]int {
	m := make(map[string]int, len(Notes))
	for i, n := range Notes {
		m[n.Name] = i
	}
	return m
}()

// NoteIndex returns the index of name in Notes, or -1 when unknown.
func NoteIndex(name string) int {
	if i, ok := noteIndex[name]; ok {
		return i
	}
	return -1
}

// NoteByName returns the note for name and whether it exists.
func NoteByName(name string) (Note, bool) {
	i := NoteIndex(name)
	if i < 0 {
		return Note{}, false
	}
	return Notes[i], true
}

// Frequency returns the frequency for a note name, 0 when unknown.
func Frequency(name string) float64 {
	n, ok := NoteByName(name)
	if !ok {
		return 0
	}
	return n.Freq
}
