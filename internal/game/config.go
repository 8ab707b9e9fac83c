package game

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "Keyboard Trainer"
)

// On-screen keyboard layout (in framebuffer pixels).
const (
	KeyCount  = 7
	KeyWidth  = 110
	KeyHeight = 210
	KeyGap    = 14
	KeyboardY = 360
)

// Beat buttons shown by the time-signature mode.
const (
	BeatButtonWidth  = 170
	BeatButtonHeight = 110
	BeatButtonGap    = 22
	BeatButtonY      = 400
)

// Check button used by the chord builder.
const (
	CheckButtonWidth  = 200
	CheckButtonHeight = 56
	CheckButtonY      = 284
)

// Rounds per practice session.
const RoundLimit = 5

// Feedback display delays (seconds). Multi-step modes hold correct
// feedback a little longer so the resolution tone can ring out.
const (
	CorrectHold     = 1.0
	CorrectHoldLong = 1.2
	IncorrectHold   = 0.8
)

// Font atlas layout (procedural, ASCII 32-127: 16 cols x 6 rows).
const (
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 96
	FontAtlasH = FontCellH * FontRows // 48
)

// Tone length for key presses.
const ToneSeconds = 0.6

// MIDI chord debounce window.
const ChordDebounceMillis = 150
