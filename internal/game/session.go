package game

import (
	"github.com/gsinfogaurav-sudo/music/internal/catalog"
	"github.com/gsinfogaurav-sudo/music/internal/trainer"
)

// Mode is the active screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModeFreePlay
	ModeNoteMatch
	ModeChordBuilder
	ModeScalePractice
	ModeIntervalTrainer
	ModeTimeSignature
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeFreePlay:
		return "free-play"
	case ModeNoteMatch:
		return "note-match"
	case ModeChordBuilder:
		return "chord-builder"
	case ModeScalePractice:
		return "scale-practice"
	case ModeIntervalTrainer:
		return "interval-trainer"
	case ModeTimeSignature:
		return "time-signature"
	}
	return "unknown"
}

// Session runs one mode. It owns the round machine and whichever rule
// variant the mode uses; the concrete rule pointers let the HUD read
// mode-specific progress. Leaving a mode discards the session outright,
// pending feedback timers with it.
type Session struct {
	Mode    Mode
	Machine *trainer.Machine
	bus     *EventBus

	// exactly one of these is non-nil, matching Mode
	noteRule     *trainer.NoteRule
	chordRule    *trainer.ChordRule
	scaleRule    *trainer.ScaleRule
	intervalRule *trainer.IntervalRule
	meterRule    *trainer.MeterRule

	Feedback      string
	FeedbackColor RGB
}

// NewSession builds a session for mode. Returns nil for the menu and
// free play, which have no rounds.
func NewSession(mode Mode, seed uint64, bus *EventBus) *Session {
	s := &Session{Mode: mode, bus: bus}
	var rule trainer.Rule
	hold := CorrectHold
	switch mode {
	case ModeNoteMatch:
		s.noteRule = trainer.NewNoteRule()
		rule = s.noteRule
	case ModeChordBuilder:
		s.chordRule = trainer.NewChordRule()
		rule = s.chordRule
		hold = CorrectHoldLong
	case ModeScalePractice:
		s.scaleRule = trainer.NewScaleRule()
		rule = s.scaleRule
		hold = CorrectHoldLong
	case ModeIntervalTrainer:
		s.intervalRule = trainer.NewIntervalRule()
		rule = s.intervalRule
	case ModeTimeSignature:
		s.meterRule = trainer.NewMeterRule()
		rule = s.meterRule
	default:
		return nil
	}
	s.Machine = trainer.New(rule, RoundLimit, seed, hold, IncorrectHold)
	return s
}

// Start begins the first round.
func (s *Session) Start() {
	s.Machine.StartRound()
	s.Feedback = s.Machine.Prompt()
	s.FeedbackColor = Palette.HUDText
	s.bus.Publish(Event{Type: EventRoundStarted, Mode: s.Mode})
}

// SubmitNote feeds a played note into the round.
func (s *Session) SubmitNote(name string) {
	s.apply(trainer.Input{Note: name})
}

// SubmitBeats feeds a note-length choice into the counting round.
func (s *Session) SubmitBeats(beats float64) {
	s.apply(trainer.Input{Beats: beats})
}

// SubmitCheck asks the chord round to judge the current selection.
func (s *Session) SubmitCheck() {
	s.apply(trainer.Input{Check: true})
}

func (s *Session) apply(in trainer.Input) {
	outcome := s.Machine.Submit(in)
	switch outcome {
	case trainer.OutcomeCorrect:
		s.Feedback = "CORRECT!"
		s.FeedbackColor = Palette.Correct
		PlaySound(SoundCorrect)
		s.bus.Publish(Event{Type: EventAnswerJudged, Mode: s.Mode, Correct: true})
		// The machine holds ResolvedCorrect until the feedback delay
		// expires, so the last round is detected from the counter.
		if s.Machine.Round() >= s.Machine.Limit() {
			s.Feedback = "ALL DONE! GREAT JOB!"
			PlaySound(SoundComplete)
			s.bus.Publish(Event{Type: EventSessionComplete, Mode: s.Mode})
		}
	case trainer.OutcomeIncorrect:
		s.Feedback = "TRY AGAIN!"
		s.FeedbackColor = Palette.Incorrect
		PlaySound(SoundIncorrect)
		s.bus.Publish(Event{Type: EventAnswerJudged, Mode: s.Mode, Correct: false})
	case trainer.OutcomeProgress:
		s.Feedback = s.Machine.Prompt()
		s.FeedbackColor = Palette.HUDText
	}
}

// Tick advances feedback timers; when a hold expires the machine moves
// on by itself and the prompt refreshes.
func (s *Session) Tick(dt float64) {
	before := s.Machine.State()
	s.Machine.Tick(dt)
	after := s.Machine.State()
	if before != after && after == trainer.RoundActive {
		s.Feedback = s.Machine.Prompt()
		s.FeedbackColor = Palette.HUDText
		if before == trainer.ResolvedCorrect {
			s.bus.Publish(Event{Type: EventRoundStarted, Mode: s.Mode})
		}
	}
}

// Active reports whether the round accepts input right now.
func (s *Session) Active() bool {
	return s.Machine.State() == trainer.RoundActive
}

// HighlightedNotes returns note names the keyboard should emphasize
// for the current mode, keyed to what the player should see.
func (s *Session) HighlightedNotes() map[string]bool {
	hl := make(map[string]bool)
	switch {
	case s.chordRule != nil:
		for _, n := range catalog.Notes {
			if s.chordRule.Selected(n.Name) {
				hl[n.Name] = true
			}
		}
	case s.scaleRule != nil:
		if s.Active() {
			hl[s.scaleRule.Expected()] = true
		}
	case s.intervalRule != nil:
		hl[s.intervalRule.Root().Name] = true
	}
	return hl
}

// notePlayed publishes the free-play event and sounds the key.
func notePlayed(bus *EventBus, mode Mode, name string) {
	freq := catalog.Frequency(name)
	if freq <= 0 {
		return
	}
	PlayTone(freq)
	bus.Publish(Event{Type: EventNotePlayed, Mode: mode, Note: name})
}
