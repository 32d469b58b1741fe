package display

import "image/color"
import "math/bits"

import "tinygo.org/x/drivers"
import "tinygo.org/x/tinyfont"

import "github.com/tinne26/sheetfont"

// Exposes a sheet font as a [tinyfont.Fonter]. tinyfont has no
// kerning, so text drawn through it ignores the font's kerning table.
// Use [DrawLine]() when kerning matters.
//
// Like other tinyfont fonts, a Fonter reuses a single glyph value and
// is not safe for concurrent use.
type Fonter struct {
	font *sheetfont.Font
	glyph fonterGlyph
}

var _ tinyfont.Fonter = (*Fonter)(nil)

func NewFonter(font *sheetfont.Font) *Fonter {
	return &Fonter{ font: font, glyph: fonterGlyph{ font: font } }
}

func (self *Fonter) GetYAdvance() uint8 { return self.font.LineSpacing }

func (self *Fonter) GetGlyph(r rune) tinyfont.Glypher {
	self.glyph.r = r
	self.glyph.glyph = self.font.Glyph(r)
	return &self.glyph
}

type fonterGlyph struct {
	font *sheetfont.Font
	r rune
	glyph sheetfont.Glyph
}

// Draws the glyph with its baseline at y.
func (self *fonterGlyph) Draw(display drivers.Displayer, x int16, y int16, clr color.RGBA) {
	if !self.glyph.HasImage() { return }
	target := NewTarget(display)
	gx := int(x) + int(self.glyph.OriginX)
	gy := int(y) - int(self.font.Ascent) + int(self.glyph.OriginY)
	rowBytes := int(self.glyph.RowBytes)
	bitmap := self.font.GlyphBitmap(self.glyph)
	for row := 0; row < int(self.glyph.ImageHeight); row++ {
		for i, b := range bitmap[row*rowBytes : (row + 1)*rowBytes] {
			for b != 0 {
				bit := bits.LeadingZeros8(b)
				target.SetPixel(gx + i*8 + bit, gy + row, clr)
				b &^= 0x80 >> uint(bit)
			}
		}
	}
}

func (self *fonterGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune: self.r,
		Width: uint8(inkWidth(self.font, self.glyph)),
		Height: self.glyph.ImageHeight,
		XAdvance: self.glyph.Advance,
		XOffset: int8(self.glyph.OriginX),
		YOffset: int8(int(self.glyph.OriginY) - int(self.font.Ascent)),
	}
}

// Returns the width of the glyph image without row padding bits.
func inkWidth(font *sheetfont.Font, glyph sheetfont.Glyph) int {
	if !glyph.HasImage() { return 0 }
	rowBytes := int(glyph.RowBytes)
	bitmap := font.GlyphBitmap(glyph)
	width := 0
	for start := 0; start < len(bitmap); start += rowBytes {
		for i := rowBytes - 1; i >= 0; i-- {
			b := bitmap[start + i]
			if b == 0 { continue }
			width = max(width, i*8 + 8 - bits.TrailingZeros8(b))
			break
		}
	}
	return width
}
