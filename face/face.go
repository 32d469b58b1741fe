// Package face adapts sheet fonts to the [font.Face] interface, so
// they can be used with [font.Drawer] and other x/image text tools.
package face

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/mask"

var _ font.Face = (*Face)(nil)

// A [font.Face] backed by a [sheetfont.Font]. Sheet fonts have no
// fractional metrics, so all values are whole pixels and dot positions
// are rounded.
//
// Missing codepoints resolve to the font's replacement glyph, exactly
// like [sheetfont.Render]() does, so Glyph and friends always report ok.
type Face struct {
	source *sheetfont.Font
	metrics font.Metrics
}

func New(source *sheetfont.Font) *Face {
	return &Face{
		source: source,
		metrics: font.Metrics{
			Height: fixed.I(int(source.LineSpacing)),
			Ascent: fixed.I(int(source.Ascent)),
			Descent: fixed.I(int(source.Descent)),
			XHeight: fixed.I(inkAboveBaseline(source, 'x')),
			CapHeight: fixed.I(inkAboveBaseline(source, 'H')),
			CaretSlope: image.Pt(0, 1),
		},
	}
}

// Rows of ink above the baseline for the given reference character,
// zero if the font doesn't have it.
func inkAboveBaseline(source *sheetfont.Font, codePoint rune) int {
	glyph, found := source.Lookup(codePoint)
	if !found || !glyph.HasImage() { return 0 }
	return max(int(source.Ascent) - int(glyph.OriginY), 0)
}

func (self *Face) Close() error { return nil }

func (self *Face) Metrics() font.Metrics { return self.metrics }

// The returned mask is a [mask.Bits] view over the font's bitmap arena.
// It must not be modified.
func (self *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	glyph := self.source.Glyph(r)
	advance := fixed.I(int(glyph.Advance))
	x := dot.X.Round() + int(glyph.OriginX)
	y := dot.Y.Round() - int(self.source.Ascent) + int(glyph.OriginY)
	bits := mask.NewBits(self.source.GlyphBitmap(glyph), int(glyph.RowBytes), image.Point{})
	return bits.Rect.Add(image.Pt(x, y)), bits, image.Point{}, advance, true
}

func (self *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	glyph := self.source.Glyph(r)
	advance := fixed.I(int(glyph.Advance))
	if !glyph.HasImage() { return fixed.Rectangle26_6{}, advance, true }

	minX := int(glyph.OriginX)
	minY := int(glyph.OriginY) - int(self.source.Ascent)
	bounds := fixed.R(minX, minY, minX + int(glyph.RowBytes)*8, minY + int(glyph.ImageHeight))
	return bounds, advance, true
}

func (self *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return fixed.I(self.source.CharWidth(r)), true
}

func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	entry, found := self.source.Kerning.Get(r0, r1)
	if !found { return 0 }
	return fixed.I(int(entry.Adjust))
}
