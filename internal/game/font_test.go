package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphCoverage(t *testing.T) {
	for ch := 'A'; ch <= 'Z'; ch++ {
		assert.Contains(t, glyphs, ch)
	}
	for ch := '0'; ch <= '9'; ch++ {
		assert.Contains(t, glyphs, ch)
	}
	for _, ch := range " :/().!?%#" {
		assert.Contains(t, glyphs, ch)
	}
}

func TestGlyphForFoldsLowercase(t *testing.T) {
	assert.Equal(t, glyphFor('A'), glyphFor('a'))
	assert.Equal(t, glyphFor('z'), glyphFor('Z'))
	assert.Equal(t, [7]uint8{}, glyphFor('~'), "unknown rune renders blank")
}

func TestGlyphRowsFitCell(t *testing.T) {
	for ch, rows := range glyphs {
		for _, row := range rows {
			assert.Zero(t, row&^0b11111, "glyph %q uses more than 5 columns", ch)
		}
	}
}

func TestFontAtlasDimensions(t *testing.T) {
	img := buildFontAtlas()
	assert.Equal(t, FontAtlasW, img.Bounds().Dx())
	assert.Equal(t, FontAtlasH, img.Bounds().Dy())

	// 'A' sits at cell 33: column 1, row 2.
	cx := (33 % FontCols) * FontCellW
	cy := (33 / FontCols) * FontCellH
	opaque := false
	for y := 0; y < 7 && !opaque; y++ {
		for x := 0; x < 5; x++ {
			if _, _, _, a := img.At(cx+x, cy+y).RGBA(); a > 0 {
				opaque = true
				break
			}
		}
	}
	assert.True(t, opaque, "glyph A has visible pixels in its cell")
}

func TestTextWidthScalesWithLength(t *testing.T) {
	one := TextWidth("A", 2)
	three := TextWidth("ABC", 2)
	assert.Equal(t, 3*one, three)
	assert.Equal(t, 2*TextWidth("AB", 1), TextWidth("AB", 2))
	assert.Zero(t, TextWidth("", 3))
}
