package game

import (
	"fmt"

	"github.com/gsinfogaurav-sudo/music/internal/catalog"
	"github.com/gsinfogaurav-sudo/music/internal/trainer"
	"github.com/gsinfogaurav-sudo/music/internal/util"
)

var menuEntries = []struct {
	Key   string
	Label string
	Mode  Mode
}{
	{"1", "FREE PLAY", ModeFreePlay},
	{"2", "NOTE MATCH", ModeNoteMatch},
	{"3", "CHORD BUILDER", ModeChordBuilder},
	{"4", "SCALE PRACTICE", ModeScalePractice},
	{"5", "INTERVAL TRAINER", ModeIntervalTrainer},
	{"6", "COUNT THE BEATS", ModeTimeSignature},
}

func drawCentered(r *Renderer, text string, y int, scale float32, col RGB) {
	r.DrawString(text, (WindowWidth-TextWidth(text, scale))/2, y, scale, col)
}

func renderMenu(r *Renderer) {
	drawCentered(r, "KEYBOARD TRAINER", 70, 5, Palette.Highlight)
	drawCentered(r, "PICK A GAME", 140, 2, Palette.HUDDim)
	for i, e := range menuEntries {
		y := 210 + i*56
		line := e.Key + " : " + e.Label
		r.DrawString(line, WindowWidth/2-220, y, 3, Palette.HUDText)
	}
	drawCentered(r, "ESC QUITS. IN A GAME, ESC RETURNS HERE.", 600, 1, Palette.HUDDim)
}

// renderKeyboard draws the seven keys. pressed and highlighted are sets
// of note names; highlighted keys pulse with a glow.
func renderKeyboard(r *Renderer, pressed, highlighted map[string]bool, t float64) {
	for i, note := range catalog.Notes {
		k := keyRect(i)
		col := note.Color.Mul(215)
		alpha := float32(0.92)
		if pressed[note.Name] {
			col = lerpRGB(note.Color, RGB{R: 255, G: 255, B: 255}, 0.45)
			alpha = 1
		}
		r.DrawRect(k.x, k.y, k.w, k.h, col, alpha)
		r.DrawRectOutline(k.x, k.y, k.w, k.h, 2, Palette.KeyBorder, 1)
		if highlighted[note.Name] {
			pulse := 0.55 + 0.45*pulseWave(t)
			r.DrawGlow(k.x+k.w/2, k.y+k.h/2, k.w*1.7, Palette.Highlight, float32(pulse))
			r.DrawRectOutline(k.x-3, k.y-3, k.w+6, k.h+6, 3, Palette.Highlight, 1)
		}
	}
	r.FlushRects(WindowWidth, WindowHeight)
	r.FlushGlow(WindowWidth, WindowHeight)
	for i, note := range catalog.Notes {
		k := keyRect(i)
		lx := int(k.x) + (KeyWidth-TextWidth(note.Name, 3))/2
		r.DrawString(note.Name, lx, int(k.y)+KeyHeight-40, 3, Palette.KeyLabel)
	}
}

func pulseWave(t float64) float64 {
	frac := t - float64(int(t))
	if frac > 0.5 {
		frac = 1 - frac
	}
	return frac * 2
}

// renderBeatButtons draws the note-length buttons for the counting mode.
func renderBeatButtons(r *Renderer, hotX, hotY float32) {
	for i := range beatValues {
		b := beatButtonRect(i, len(beatValues))
		col := Palette.Button
		if b.contains(hotX, hotY) {
			col = Palette.ButtonHot
		}
		r.DrawRect(b.x, b.y, b.w, b.h, col, 0.92)
		r.DrawRectOutline(b.x, b.y, b.w, b.h, 2, Palette.KeyBorder, 1)
	}
	r.FlushRects(WindowWidth, WindowHeight)
	for i, bv := range beatValues {
		b := beatButtonRect(i, len(beatValues))
		lx := int(b.x) + (BeatButtonWidth-TextWidth(bv.Label, 2))/2
		r.DrawString(bv.Label, lx, int(b.y)+BeatButtonHeight/2-8, 2, Palette.HUDText)
	}
}

// renderCheckButton draws the chord submit button.
func renderCheckButton(r *Renderer, hotX, hotY float32) {
	b := checkButtonRect()
	col := Palette.Button
	if b.contains(hotX, hotY) {
		col = Palette.ButtonHot
	}
	r.DrawRect(b.x, b.y, b.w, b.h, col, 0.92)
	r.DrawRectOutline(b.x, b.y, b.w, b.h, 2, Palette.KeyBorder, 1)
	r.FlushRects(WindowWidth, WindowHeight)
	label := "CHECK (ENTER)"
	lx := int(b.x) + (CheckButtonWidth-TextWidth(label, 2))/2
	r.DrawString(label, lx, int(b.y)+CheckButtonHeight/2-8, 2, Palette.HUDText)
}

// renderHUD draws the prompt, feedback line and round counter for an
// active session.
func renderHUD(r *Renderer, s *Session) {
	title := map[Mode]string{
		ModeNoteMatch:       "NOTE MATCH",
		ModeChordBuilder:    "CHORD BUILDER",
		ModeScalePractice:   "SCALE PRACTICE",
		ModeIntervalTrainer: "INTERVAL TRAINER",
		ModeTimeSignature:   "COUNT THE BEATS",
	}[s.Mode]
	r.DrawString(title, 28, 24, 2, Palette.HUDDim)

	counter := fmt.Sprintf("ROUND %d/%d  SCORE %d",
		util.Min(s.Machine.Round()+1, s.Machine.Limit()), s.Machine.Limit(), s.Machine.Score())
	r.DrawString(counter, WindowWidth-28-TextWidth(counter, 2), 24, 2, Palette.HUDDim)

	if s.Machine.Complete() {
		drawCentered(r, s.Feedback, 150, 4, Palette.Correct)
		drawCentered(r, "SPACE PLAYS AGAIN. ESC FOR MENU.", 220, 2, Palette.HUDDim)
		return
	}

	drawCentered(r, s.Machine.Prompt(), 90, 3, Palette.HUDText)
	if s.Machine.State() == trainer.ResolvedCorrect ||
		s.Machine.State() == trainer.ResolvedIncorrect {
		drawCentered(r, s.Feedback, 160, 4, s.FeedbackColor)
	}

	switch {
	case s.scaleRule != nil && s.Active():
		progress := fmt.Sprintf("STEP %d OF %d", s.scaleRule.Position()+1, len(s.scaleRule.Target().Sequence))
		drawCentered(r, progress, 160, 2, Palette.HUDDim)
	case s.meterRule != nil:
		drawCentered(r, fmt.Sprintf("%.1f / %d BEATS", s.meterRule.Sum(), s.meterRule.Target().Beats), 160, 2, Palette.HUDDim)
	}
}

func renderFreePlayHUD(r *Renderer, recording bool) {
	drawCentered(r, "FREE PLAY", 70, 4, Palette.Highlight)
	drawCentered(r, "CLICK A KEY OR USE A S D F G H J", 140, 2, Palette.HUDDim)
	if recording {
		r.DrawString("* REC", 28, 24, 2, Palette.Incorrect)
	}
}
