// Package stats keeps per-mode practice counters for the current
// session and can serve them as JSON on a local endpoint. Nothing is
// persisted; a new session starts from zero.
package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ModeStats counts one practice mode's results within the session.
type ModeStats struct {
	Mode       string  `json:"mode"`
	Rounds     int     `json:"rounds"`
	Correct    int     `json:"correct"`
	Streak     int     `json:"streak"`
	BestStreak int     `json:"bestStreak"`
	Accuracy   float64 `json:"accuracy"`
}

// Report is the JSON shape served by the stats endpoint.
type Report struct {
	SessionID string      `json:"sessionId"`
	StartedAt time.Time   `json:"startedAt"`
	Modes     []ModeStats `json:"modes"`
}

// Collector aggregates results. The game loop records from the main
// thread while the HTTP handler snapshots from its own goroutine, so
// access is locked.
type Collector struct {
	mu        sync.Mutex
	sessionID string
	startedAt time.Time
	modes     map[string]*ModeStats
}

func NewCollector() *Collector {
	return &Collector{
		sessionID: uuid.New().String(),
		startedAt: time.Now(),
		modes:     make(map[string]*ModeStats),
	}
}

// Record counts one resolved answer for mode. Correct answers extend
// the streak; wrong ones break it.
func (c *Collector) Record(mode string, correct bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms, ok := c.modes[mode]
	if !ok {
		ms = &ModeStats{Mode: mode}
		c.modes[mode] = ms
	}
	ms.Rounds++
	if correct {
		ms.Correct++
		ms.Streak++
		if ms.Streak > ms.BestStreak {
			ms.BestStreak = ms.Streak
		}
	} else {
		ms.Streak = 0
	}
}

// Snapshot returns a copy of the current counters, modes sorted by name.
func (c *Collector) Snapshot() Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	rep := Report{
		SessionID: c.sessionID,
		StartedAt: c.startedAt,
		Modes:     make([]ModeStats, 0, len(c.modes)),
	}
	for _, ms := range c.modes {
		cp := *ms
		if cp.Rounds > 0 {
			cp.Accuracy = float64(cp.Correct) / float64(cp.Rounds)
		}
		rep.Modes = append(rep.Modes, cp)
	}
	sort.Slice(rep.Modes, func(i, j int) bool {
		return rep.Modes[i].Mode < rep.Modes[j].Mode
	})
	return rep
}
