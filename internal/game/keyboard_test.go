package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gsinfogaurav-sudo/music/internal/catalog"
)

func TestKeyboardIsCenteredAndNonOverlapping(t *testing.T) {
	first := keyRect(0)
	last := keyRect(KeyCount - 1)
	leftMargin := first.x
	rightMargin := float32(WindowWidth) - (last.x + last.w)
	assert.InDelta(t, leftMargin, rightMargin, 0.5)

	for i := 0; i < KeyCount-1; i++ {
		assert.GreaterOrEqual(t, keyRect(i+1).x, keyRect(i).x+keyRect(i).w)
	}
}

func TestKeyAtHitsEveryKeyCenter(t *testing.T) {
	for i, note := range catalog.Notes {
		k := keyRect(i)
		got := keyAt(k.x+k.w/2, k.y+k.h/2)
		assert.Equal(t, note.Name, got)
	}
}

func TestKeyAtMissesGapsAndOutside(t *testing.T) {
	k0 := keyRect(0)
	assert.Equal(t, "", keyAt(k0.x+k0.w+1, k0.y+10), "gap between keys")
	assert.Equal(t, "", keyAt(k0.x+5, k0.y-10), "above the keyboard")
	assert.Equal(t, "", keyAt(-5, -5))
}

func TestBeatAtReturnsButtonValues(t *testing.T) {
	for i, bv := range beatValues {
		b := beatButtonRect(i, len(beatValues))
		assert.Equal(t, bv.Beats, beatAt(b.x+b.w/2, b.y+b.h/2))
	}
	assert.Equal(t, 0.0, beatAt(0, 0))
}

func TestCheckButtonHitTest(t *testing.T) {
	b := checkButtonRect()
	assert.True(t, b.contains(b.x+1, b.y+1))
	assert.False(t, b.contains(b.x-1, b.y+1))
	assert.False(t, b.contains(b.x+b.w, b.y))
}
