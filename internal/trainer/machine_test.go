package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedRule lets tests drive the machine with known targets.
type scriptedRule struct {
	target string
	draws  int
}

func (s *scriptedRule) Draw(r *Rand) { s.draws++ }
func (s *scriptedRule) Judge(in Input) Outcome {
	if in.Note == "" {
		return OutcomeIgnored
	}
	if in.Note == s.target {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}
func (s *scriptedRule) Prompt() string { return "Find: " + s.target }

func newTestMachine(rule Rule, limit int) *Machine {
	return New(rule, limit, 42, 1.0, 0.8)
}

func TestMachineStartsAwaiting(t *testing.T) {
	m := newTestMachine(&scriptedRule{target: "C"}, 5)
	assert.Equal(t, AwaitingStart, m.State())
	assert.Equal(t, "", m.Prompt())
	assert.Equal(t, OutcomeIgnored, m.Submit(Input{Note: "C"}))
}

func TestCorrectAnswerAdvancesRoundAndScore(t *testing.T) {
	assert := assert.New(t)
	rule := &scriptedRule{target: "C"}
	m := newTestMachine(rule, 5)
	m.StartRound()
	assert.Equal(RoundActive, m.State())
	assert.Equal(1, rule.draws)

	assert.Equal(OutcomeCorrect, m.Submit(Input{Note: "C"}))
	assert.Equal(ResolvedCorrect, m.State())
	assert.Equal(1, m.Round())
	assert.Equal(1, m.Score())
}

func TestWrongAnswerKeepsRoundAndTarget(t *testing.T) {
	assert := assert.New(t)
	rule := &scriptedRule{target: "C"}
	m := newTestMachine(rule, 5)
	m.StartRound()

	assert.Equal(OutcomeIncorrect, m.Submit(Input{Note: "D"}))
	assert.Equal(ResolvedIncorrect, m.State())
	assert.Equal(0, m.Round())
	assert.Equal(0, m.Score())

	// After the display delay the same target becomes active again —
	// no redraw happened.
	m.Tick(0.8)
	assert.Equal(RoundActive, m.State())
	assert.Equal(1, rule.draws)
}

func TestSubmitWhileResolvedIsIgnored(t *testing.T) {
	assert := assert.New(t)
	m := newTestMachine(&scriptedRule{target: "C"}, 5)
	m.StartRound()
	assert.Equal(OutcomeCorrect, m.Submit(Input{Note: "C"}))

	// Hammering the already-correct key during feedback has no effect.
	for i := 0; i < 3; i++ {
		assert.Equal(OutcomeIgnored, m.Submit(Input{Note: "C"}))
	}
	assert.Equal(1, m.Round())
	assert.Equal(1, m.Score())
}

func TestStartRoundWhileActiveIsNoOp(t *testing.T) {
	rule := &scriptedRule{target: "C"}
	m := newTestMachine(rule, 5)
	m.StartRound()
	m.StartRound()
	assert.Equal(t, 1, rule.draws)
}

func TestCorrectHoldThenNextRound(t *testing.T) {
	assert := assert.New(t)
	rule := &scriptedRule{target: "C"}
	m := newTestMachine(rule, 5)
	m.StartRound()
	m.Submit(Input{Note: "C"})

	m.Tick(0.5)
	assert.Equal(ResolvedCorrect, m.State())
	m.Tick(0.5)
	assert.Equal(RoundActive, m.State())
	assert.Equal(2, rule.draws)
}

func TestSessionCompletesAtRoundLimit(t *testing.T) {
	assert := assert.New(t)
	m := newTestMachine(&scriptedRule{target: "C"}, 3)
	m.StartRound()
	for i := 0; i < 3; i++ {
		assert.Equal(RoundActive, m.State())
		m.Submit(Input{Note: "C"})
		m.Tick(1.0)
	}
	assert.True(m.Complete())
	assert.Equal(3, m.Round())
	assert.Equal(3, m.Score())

	// Terminal: no further rounds or submissions.
	m.StartRound()
	assert.True(m.Complete())
	assert.Equal(OutcomeIgnored, m.Submit(Input{Note: "C"}))
}

func TestRoundIndexMonotoneAndScoreBounded(t *testing.T) {
	assert := assert.New(t)
	rule := &scriptedRule{target: "C"}
	m := newTestMachine(rule, 5)
	m.StartRound()

	inputs := []string{"D", "C", "E", "E", "C", "B", "C", "C", "C"}
	prevRound := 0
	for _, note := range inputs {
		m.Submit(Input{Note: note})
		assert.GreaterOrEqual(m.Round(), prevRound)
		assert.LessOrEqual(m.Round(), m.Limit())
		assert.LessOrEqual(m.Score(), m.Round())
		assert.GreaterOrEqual(m.Score(), 0)
		prevRound = m.Round()
		m.Tick(1.0)
	}
}
