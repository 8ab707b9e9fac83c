package game

import "github.com/gsinfogaurav-sudo/music/internal/catalog"

// RGB aliases the catalog colour type so keys and HUD share one palette.
type RGB = catalog.RGB

var Palette = struct {
	Background RGB
	KeyBorder  RGB
	KeyLabel   RGB
	Correct    RGB
	Incorrect  RGB
	Highlight  RGB
	HUDText    RGB
	HUDDim     RGB
	Button     RGB
	ButtonHot  RGB
}{
	Background: RGB{R: 24, G: 26, B: 33},
	KeyBorder:  RGB{R: 12, G: 12, B: 16},
	KeyLabel:   RGB{R: 245, G: 245, B: 245},
	Correct:    RGB{R: 100, G: 255, B: 100},
	Incorrect:  RGB{R: 255, G: 80, B: 80},
	Highlight:  RGB{R: 255, G: 228, B: 120},
	HUDText:    RGB{R: 255, G: 255, B: 255},
	HUDDim:     RGB{R: 150, G: 155, B: 165},
	Button:     RGB{R: 62, G: 68, B: 84},
	ButtonHot:  RGB{R: 96, G: 106, B: 130},
}
