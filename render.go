package sheetfont

import "github.com/tinne26/sheetfont/internal"

// A surface that can be drawn pixel by pixel. SetPixel must silently
// ignore coordinates outside the surface.
type Target[P any] interface {
	SetPixel(x, y int, pixel P)
}

// A flat, single-channel surface that exposes rows directly. Subrow
// returns the writable pixels of row y in the [minX, maxX) range.
// The returned span may be shorter than requested when the range
// goes beyond the right edge of the surface, but it must always start
// at minX. Rows and starting columns outside the surface must return
// nil. Render functions never request a negative minX.
type RowTarget[P any] interface {
	Subrow(y, minX, maxX int) []P
}

// Draws the given text with its line box top-left corner at (x, y),
// setting glyph pixels one by one. Pixels falling outside the target
// are dropped, so text can start or end beyond the target edges.
//
// Each call lays out a single line: newlines are drawn with their
// glyphs (or the replacement glyph), and kerning never crosses calls.
// Use [Font.BaselineToTop]() to position the text by its baseline.
func Render[P any](font *Font, text string, x, y int, target Target[P], fg P) {
	renderLine[P](font, text, x, y, pixelBlitter[P]{ target }, fg)
}

// Like [Render](), but writes whole row spans through a [RowTarget]
// instead of going pixel by pixel. Spans starting at a negative x are
// clipped to x = 0 before requesting them. The output is identical to
// [Render]() for targets whose top-left corner is (0, 0).
func RenderDirect[P any](font *Font, text string, x, y int, target RowTarget[P], fg P) {
	renderLine[P](font, text, x, y, spanBlitter[P]{ target }, fg)
}

// Both render strategies share this layout loop, only the way
// each glyph row reaches the surface differs.
type rowBlitter[P any] interface {
	blitRow(x, y int, row []byte, fg P)
}

func renderLine[P any](font *Font, text string, x, y int, blitter rowBlitter[P], fg P) {
	cursor := newPenCursor(font, x)
	for _, codePoint := range text {
		glyph, penX := cursor.next(codePoint)
		if !glyph.HasImage() { continue }

		bitmap := glyph.Bitmap(font.Bitmaps)
		rowBytes := int(glyph.RowBytes)
		gx := internal.SaturatingAdd(penX, int(glyph.OriginX))
		gy := internal.SaturatingAdd(y, int(glyph.OriginY))
		for row := 0; row < int(glyph.ImageHeight); row++ {
			start := row*rowBytes
			blitter.blitRow(gx, internal.SaturatingAdd(gy, row), bitmap[start : start + rowBytes], fg)
		}
	}
}

type pixelBlitter[P any] struct { target Target[P] }

func (self pixelBlitter[P]) blitRow(x, y int, row []byte, fg P) {
	for i, bits := range row {
		for bit := 0; bits != 0; bit++ {
			if bits & 0x80 != 0 {
				self.target.SetPixel(internal.SaturatingAdd(x, i*8 + bit), y, fg)
			}
			bits <<= 1
		}
	}
}

type spanBlitter[P any] struct { target RowTarget[P] }

func (self spanBlitter[P]) blitRow(x, y int, row []byte, fg P) {
	numBits := len(row) << 3
	skip := 0
	if x < 0 {
		if x <= -numBits { return }
		skip, x = -x, 0
	}
	numBits -= skip
	span := self.target.Subrow(y, x, internal.SaturatingAdd(x, numBits))
	if len(span) > numBits { span = span[ : numBits] }
	for i := range span {
		bit := i + skip
		if row[bit >> 3] & (0x80 >> (bit & 0b111)) != 0 {
			span[i] = fg
		}
	}
}
