package stats

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCountsStreaks(t *testing.T) {
	assert := assert.New(t)
	c := NewCollector()

	c.Record("note-match", true)
	c.Record("note-match", true)
	c.Record("note-match", false)
	c.Record("note-match", true)
	c.Record("intervals", true)

	rep := c.Snapshot()
	assert.Len(rep.Modes, 2)
	assert.NotEmpty(rep.SessionID)

	// Sorted by mode name: intervals first.
	iv := rep.Modes[0]
	assert.Equal("intervals", iv.Mode)
	assert.Equal(1, iv.Rounds)

	nm := rep.Modes[1]
	assert.Equal("note-match", nm.Mode)
	assert.Equal(4, nm.Rounds)
	assert.Equal(3, nm.Correct)
	assert.Equal(1, nm.Streak)
	assert.Equal(2, nm.BestStreak)
	assert.InDelta(0.75, nm.Accuracy, 1e-9)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCollector()
	c.Record("scales", true)
	rep := c.Snapshot()
	rep.Modes[0].Correct = 99
	assert.Equal(t, 1, c.Snapshot().Modes[0].Correct)
}

func TestStatsEndpoint(t *testing.T) {
	assert := assert.New(t)
	c := NewCollector()
	c.Record("chords", true)

	srv := httptest.NewServer(Handler(c))
	defer srv.Close()

	res, err := srv.Client().Get(srv.URL + "/stats")
	assert.NoError(err)
	defer res.Body.Close()
	assert.Equal(200, res.StatusCode)
	assert.Equal("application/json", res.Header.Get("Content-Type"))

	var rep Report
	assert.NoError(json.NewDecoder(res.Body).Decode(&rep))
	assert.Len(rep.Modes, 1)
	assert.Equal("chords", rep.Modes[0].Mode)
	assert.Equal(1, rep.Modes[0].Correct)
}
