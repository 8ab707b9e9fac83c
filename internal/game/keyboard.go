package game

import "github.com/gsinfogaurav-sudo/music/internal/catalog"

// Layout for the on-screen keyboard and buttons. All hit testing is
// done in window coordinates so it stays testable without a GL context.

type rect struct {
	x, y, w, h float32
}

func (r rect) contains(px, py float32) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// keyRect returns the bounds of keyboard key i (0..KeyCount-1).
func keyRect(i int) rect {
	total := float32(KeyCount*KeyWidth + (KeyCount-1)*KeyGap)
	x0 := (float32(WindowWidth) - total) / 2
	return rect{
		x: x0 + float32(i)*(KeyWidth+KeyGap),
		y: KeyboardY,
		w: KeyWidth,
		h: KeyHeight,
	}
}

// keyAt returns the note name under (px,py), or "" if none.
func keyAt(px, py float32) string {
	for i := range catalog.Notes {
		if keyRect(i).contains(px, py) {
			return catalog.Notes[i].Name
		}
	}
	return ""
}

// beatButtonRect returns the bounds of beat button i. The counting
// mode shows four buttons: whole, half, quarter and the check action
// is separate.
func beatButtonRect(i, count int) rect {
	total := float32(count*BeatButtonWidth + (count-1)*BeatButtonGap)
	x0 := (float32(WindowWidth) - total) / 2
	return rect{
		x: x0 + float32(i)*(BeatButtonWidth+BeatButtonGap),
		y: BeatButtonY,
		w: BeatButtonWidth,
		h: BeatButtonHeight,
	}
}

// beatValues are the note lengths offered in the counting mode,
// in beats at a quarter-note pulse.
var beatValues = []struct {
	Label string
	Beats float64
}{
	{"WHOLE (4)", 4},
	{"HALF (2)", 2},
	{"QUARTER (1)", 1},
	{"EIGHTH (1/2)", 0.5},
}

// beatAt returns the beat value under (px,py), or 0 if none.
func beatAt(px, py float32) float64 {
	for i, bv := range beatValues {
		if beatButtonRect(i, len(beatValues)).contains(px, py) {
			return bv.Beats
		}
	}
	return 0
}

// checkButtonRect is the chord mode's explicit submit button.
func checkButtonRect() rect {
	return rect{
		x: (float32(WindowWidth) - CheckButtonWidth) / 2,
		y: CheckButtonY,
		w: CheckButtonWidth,
		h: CheckButtonHeight,
	}
}
