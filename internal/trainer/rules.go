package trainer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gsinfogaurav-sudo/music/internal/catalog"
)

// beatEpsilon absorbs float error when summing fractional beat values.
const beatEpsilon = 0.001

// NoteRule: scalar equality against a randomly drawn note name.
type NoteRule struct {
	notes  []catalog.Note
	target catalog.Note
}

func NewNoteRule() *NoteRule {
	return &NoteRule{notes: catalog.Notes}
}

func (nr *NoteRule) Draw(r *Rand) {
	nr.target = nr.notes[r.Intn(len(nr.notes))]
}

func (nr *NoteRule) Judge(in Input) Outcome {
	if in.Note == "" {
		return OutcomeIgnored
	}
	if in.Note == nr.target.Name {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

func (nr *NoteRule) Prompt() string { return "Find: " + nr.target.Name }

// Target returns the note the round asks for, e.g. to sound it.
func (nr *NoteRule) Target() catalog.Note { return nr.target }

// ChordRule: set equality, evaluated only on the explicit check. Note
// inputs toggle membership in the pending selection and are never
// judged on their own.
type ChordRule struct {
	chords   []catalog.Chord
	target   catalog.Chord
	selected map[string]bool
}

func NewChordRule() *ChordRule {
	return &ChordRule{chords: catalog.Chords}
}

func (cr *ChordRule) Draw(r *Rand) {
	cr.target = cr.chords[r.Intn(len(cr.chords))]
	cr.selected = make(map[string]bool)
}

func (cr *ChordRule) Judge(in Input) Outcome {
	if in.Check {
		if cr.matches() {
			return OutcomeCorrect
		}
		// A wrong check clears the selection so the retry starts clean.
		cr.selected = make(map[string]bool)
		return OutcomeIncorrect
	}
	if in.Note == "" {
		return OutcomeIgnored
	}
	if cr.selected[in.Note] {
		delete(cr.selected, in.Note)
	} else {
		cr.selected[in.Note] = true
	}
	return OutcomeIgnored
}

func (cr *ChordRule) matches() bool {
	if len(cr.selected) != len(cr.target.Notes) {
		return false
	}
	for _, name := range cr.target.Notes {
		if !cr.selected[name] {
			return false
		}
	}
	return true
}

func (cr *ChordRule) Prompt() string { return "Build: " + cr.target.Name }

// Selected reports whether name is in the pending selection.
func (cr *ChordRule) Selected(name string) bool { return cr.selected[name] }

// SelectedKey returns the pending selection as a sorted dash-joined
// key, for display.
func (cr *ChordRule) SelectedKey() string {
	names := make([]string, 0, len(cr.selected))
	for n := range cr.selected {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "-")
}

// Target returns the chord the round asks for.
func (cr *ChordRule) Target() catalog.Chord { return cr.target }

// ScaleRule: ordered one-at-a-time matching. A wrong note holds the
// position; there is no retry limit and the round never fails outright.
type ScaleRule struct {
	scales []catalog.Scale
	target catalog.Scale
	pos    int
}

func NewScaleRule() *ScaleRule {
	return &ScaleRule{scales: catalog.Scales}
}

func (sr *ScaleRule) Draw(r *Rand) {
	sr.target = sr.scales[r.Intn(len(sr.scales))]
	sr.pos = 0
}

func (sr *ScaleRule) Judge(in Input) Outcome {
	if in.Note == "" {
		return OutcomeIgnored
	}
	if in.Note != sr.target.Sequence[sr.pos] {
		return OutcomeIncorrect
	}
	sr.pos++
	if sr.pos == len(sr.target.Sequence) {
		return OutcomeCorrect
	}
	return OutcomeProgress
}

func (sr *ScaleRule) Prompt() string {
	return fmt.Sprintf("Play: %s (%d/%d)", sr.target.Name, sr.pos, len(sr.target.Sequence))
}

// Position returns how many notes of the sequence have been matched.
func (sr *ScaleRule) Position() int { return sr.pos }

// Expected returns the next note the sequence is waiting for.
func (sr *ScaleRule) Expected() string { return sr.target.Sequence[sr.pos] }

// Target returns the scale the round asks for.
func (sr *ScaleRule) Target() catalog.Scale { return sr.target }

// IntervalRule: indexed-offset equality. The target is the note at
// rootIndex+steps; draws reject any root/interval pair whose target
// would land past the top of the keyboard.
type IntervalRule struct {
	notes     []catalog.Note
	intervals []catalog.Interval

	root     int
	interval catalog.Interval
}

func NewIntervalRule() *IntervalRule {
	return &IntervalRule{notes: catalog.Notes, intervals: catalog.Intervals}
}

func (ir *IntervalRule) Draw(r *Rand) {
	// Rejection sampling: redraw until the computed target stays on
	// the keyboard.
	for {
		root := r.Intn(len(ir.notes))
		iv := ir.intervals[r.Intn(len(ir.intervals))]
		if root+iv.Steps < len(ir.notes) {
			ir.root = root
			ir.interval = iv
			return
		}
	}
}

func (ir *IntervalRule) Judge(in Input) Outcome {
	if in.Note == "" {
		return OutcomeIgnored
	}
	if in.Note == ir.ExpectedNote() {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

func (ir *IntervalRule) Prompt() string {
	return fmt.Sprintf("%s up from %s", ir.interval.Name, ir.notes[ir.root].Name)
}

// Root returns the root note of the current interval question.
func (ir *IntervalRule) Root() catalog.Note { return ir.notes[ir.root] }

// ExpectedNote returns the name of the note at root+steps.
func (ir *IntervalRule) ExpectedNote() string {
	return ir.notes[ir.root+ir.interval.Steps].Name
}

// MeterRule: accumulating sum with overflow reset. Beat values add to
// a running total; hitting the target beat count exactly resolves the
// round, overshooting resets the measure without penalizing it.
type MeterRule struct {
	meters []catalog.TimeSignature
	target catalog.TimeSignature
	sum    float64
}

func NewMeterRule() *MeterRule {
	return &MeterRule{meters: catalog.TimeSignatures}
}

func (mr *MeterRule) Draw(r *Rand) {
	mr.target = mr.meters[r.Intn(len(mr.meters))]
	mr.sum = 0
}

func (mr *MeterRule) Judge(in Input) Outcome {
	if in.Beats <= 0 {
		return OutcomeIgnored
	}
	mr.sum += in.Beats
	want := float64(mr.target.Beats)
	if math.Abs(mr.sum-want) < beatEpsilon {
		return OutcomeCorrect
	}
	if mr.sum > want {
		mr.sum = 0
		return OutcomeIncorrect
	}
	return OutcomeProgress
}

func (mr *MeterRule) Prompt() string {
	return fmt.Sprintf("Fill a %s measure (%.1f/%d)", mr.target.Name, mr.sum, mr.target.Beats)
}

// Sum returns the accumulated beat total for the current measure.
func (mr *MeterRule) Sum() float64 { return mr.sum }

// Target returns the time signature the round asks for.
func (mr *MeterRule) Target() catalog.TimeSignature { return mr.target }
