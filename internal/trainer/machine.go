// Package trainer implements the round state machine shared by the
// practice modes. A Machine owns one mode's rounds: it draws a target,
// judges submitted answers through the mode's Rule, counts score, and
// holds resolved feedback for a display delay before moving on. It is
// pure logic; the game layer feeds it input events and frame time.
package trainer

// State is the machine's lifecycle position.
type State int

const (
	AwaitingStart State = iota
	RoundActive
	ResolvedCorrect
	ResolvedIncorrect
	Complete
)

// Outcome is the judgement of a single submission.
type Outcome int

const (
	// OutcomeIgnored: the input was not judged (guarded no-op, or a
	// chord toggle that only changes the pending selection).
	OutcomeIgnored Outcome = iota
	// OutcomeProgress: the input was accepted as a step toward the
	// target (scale position advance, partial beat total).
	OutcomeProgress
	OutcomeCorrect
	OutcomeIncorrect
)

// Input is one user event: a note selection, a beat value, or the
// explicit chord check.
type Input struct {
	Note  string
	Beats float64
	Check bool
}

// Rule is the per-mode variation point: how a target is drawn, how
// input is judged against it, and how it is described to the player.
// Everything else — round counting, scoring, target lifetime, feedback
// delays — is identical across modes and lives in Machine.
type Rule interface {
	// Draw picks a new target uniformly at random and resets any
	// per-round progress.
	Draw(r *Rand)
	// Judge evaluates one input event against the current target.
	// It must not be called before Draw.
	Judge(in Input) Outcome
	// Prompt describes the current target for the HUD.
	Prompt() string
}

// Machine runs rounds for one mode instance. Created on mode entry,
// discarded on exit; a discarded machine is never ticked again, so
// its pending delays cannot touch torn-down UI.
type Machine struct {
	rule  Rule
	rand  *Rand
	state State

	round int
	limit int
	score int

	// hold counts down the resolved-state display time in seconds.
	hold          float64
	correctHold   float64
	incorrectHold float64
}

// New returns a machine in AwaitingStart. limit is the number of
// rounds; correctHold/incorrectHold are the feedback display times in
// seconds.
func New(rule Rule, limit int, seed uint64, correctHold, incorrectHold float64) *Machine {
	return &Machine{
		rule:          rule,
		rand:          NewRand(seed),
		limit:         limit,
		correctHold:   correctHold,
		incorrectHold: incorrectHold,
	}
}

// StartRound draws a fresh target and activates it, or completes the
// session once the round limit is reached. No-op while a round is
// being resolved.
func (m *Machine) StartRound() {
	switch m.state {
	case ResolvedCorrect, ResolvedIncorrect, RoundActive:
		return
	case Complete:
		return
	}
	m.startRound()
}

func (m *Machine) startRound() {
	if m.round >= m.limit {
		m.state = Complete
		return
	}
	m.rule.Draw(m.rand)
	m.state = RoundActive
}

// Submit judges one input event. Outside RoundActive it is a guarded
// no-op and reports OutcomeIgnored.
func (m *Machine) Submit(in Input) Outcome {
	if m.state != RoundActive {
		return OutcomeIgnored
	}
	out := m.rule.Judge(in)
	switch out {
	case OutcomeCorrect:
		m.score++
		m.round++
		m.state = ResolvedCorrect
		m.hold = m.correctHold
	case OutcomeIncorrect:
		m.state = ResolvedIncorrect
		m.hold = m.incorrectHold
	}
	return out
}

// Tick advances the resolve-delay countdown by dt seconds and performs
// the scheduled transition once it expires: a correct round starts the
// next one (or completes the session), an incorrect round re-activates
// the same target with its progress intact.
func (m *Machine) Tick(dt float64) {
	switch m.state {
	case ResolvedCorrect:
		m.hold -= dt
		if m.hold <= 0 {
			m.startRound()
		}
	case ResolvedIncorrect:
		m.hold -= dt
		if m.hold <= 0 {
			m.state = RoundActive
		}
	}
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Round() int     { return m.round }
func (m *Machine) Limit() int     { return m.limit }
func (m *Machine) Score() int     { return m.score }
func (m *Machine) Complete() bool { return m.state == Complete }

// Prompt forwards the rule's target description; empty before the
// first round.
func (m *Machine) Prompt() string {
	if m.state == AwaitingStart || m.state == Complete {
		return ""
	}
	return m.rule.Prompt()
}
