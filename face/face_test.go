package face

import "testing"
import "image"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/builder"

func newTestFont(t *testing.T) *sheetfont.Font {
	t.Helper()

	// ' ', 'H', 'x' and a 9 pixels wide '~', 5 rows, ascent 4
	glyphs := [][]uint32{
		{ 0x0000, 0x0000, 0x0000, 0x0000, 0x0000 },
		{ 0x8800, 0x8800, 0xF800, 0x8800, 0x0000 },
		{ 0x0000, 0x0000, 0x5000, 0x2000, 0x5000 },
		{ 0x6080, 0x9300, 0x0C00, 0x0000, 0x0000 },
	}
	sheet, err := builder.DrawSheet(glyphs, builder.SheetConfig{ Width: 9, Height: 5, Ascent: 4, AddAdvance: 1 })
	if err != nil { t.Fatalf("unexpected DrawSheet() error: %s", err) }

	compiler := builder.New()
	compiler.SetFirst(0x20)
	_ = compiler.SetKerningPair('H', 'x', -3)
	source, err := compiler.Build(sheet)
	if err != nil { t.Fatalf("unexpected Compiler.Build() error: %s", err) }

	// remap 'H' and 'x' from sheet indices 1 and 2
	return remap(source, map[rune]int{ ' ': 0, 'H': 1, 'x': 2, '~': 3 })
}

// Sheet glyphs are indexed from 0x20 up. Reassigns them to the given
// codepoints so tests can use real letters.
func remap(source *sheetfont.Font, codePoints map[rune]int) *sheetfont.Font {
	entries := make([]sheetfont.SparseEntry, 0, len(codePoints))
	for codePoint := rune(0); codePoint < 0x80; codePoint++ {
		index, found := codePoints[codePoint]
		if !found { continue }
		glyph, _ := source.Lookup(rune(0x20 + index))
		entries = append(entries, sheetfont.SparseEntry{ CodePoint: codePoint, Glyph: glyph })
	}
	remapped := *source
	remapped.Storage = sheetfont.NewSparseStorage(entries)
	return &remapped
}

func TestMetrics(t *testing.T) {
	face := New(newTestFont(t))
	metrics := face.Metrics()
	if metrics.Ascent != fixed.I(4) || metrics.Descent != fixed.I(1) || metrics.Height != fixed.I(5) {
		t.Fatalf("unexpected metrics %+v", metrics)
	}
	if metrics.CapHeight != fixed.I(4) || metrics.XHeight != fixed.I(2) {
		t.Fatalf("expected cap height 4 and x height 2, got %s and %s", metrics.CapHeight, metrics.XHeight)
	}
	if face.Close() != nil { t.Fatalf("unexpected Close() error") }
}

func TestMeasure(t *testing.T) {
	source := newTestFont(t)
	face := New(source)
	for _, text := range []string{ "H", "Hx", "xH", "H x~", "?H" } {
		got, expected := font.MeasureString(face, text), fixed.I(source.Width(text))
		if got != expected {
			t.Fatalf("expected MeasureString(%q) = %s, got %s", text, expected, got)
		}
	}
	if face.Kern('H', 'x') != fixed.I(-3) || face.Kern('x', 'H') != 0 {
		t.Fatalf("unexpected kerning values")
	}

	bounds, advance, ok := face.GlyphBounds('x')
	if !ok || advance != fixed.I(10) {
		t.Fatalf("expected advance 10, got %s (%t)", advance, ok)
	}
	if bounds.Min != fixed.P(1, -2) || bounds.Max != fixed.P(9, 1) {
		t.Fatalf("unexpected 'x' bounds %s", bounds)
	}
	bounds, _, _ = face.GlyphBounds(' ')
	if bounds != (fixed.Rectangle26_6{}) {
		t.Fatalf("expected empty bounds for space, got %s", bounds)
	}
}

func TestDrawerMatchesRender(t *testing.T) {
	source := newTestFont(t)
	face := New(source)
	for _, text := range []string{ "Hx~", "x H", "~~x?" } {
		width := source.Width(text) + 4
		expected := image.NewGray(image.Rect(0, 0, width, 7))
		sheetfont.Render[uint8](source, text, 2, 1, sheetfont.NewGrayTarget(expected), 255)

		got := image.NewGray(expected.Rect)
		drawer := font.Drawer{ Dst: got, Src: image.White, Face: face, Dot: fixed.P(2, 1 + 4) }
		drawer.DrawString(text)

		for y := 0; y < 7; y++ {
			for x := 0; x < width; x++ {
				if got.GrayAt(x, y) != expected.GrayAt(x, y) {
					t.Fatalf("%q: pixel (%d, %d) expected %d, got %d", text, x, y, expected.GrayAt(x, y).Y, got.GrayAt(x, y).Y)
				}
			}
		}
	}

	// the mask can be drawn on its own too
	dr, glyphMask, maskp, _, _ := face.Glyph(fixed.P(0, 4), 'H')
	dst := image.NewAlpha(image.Rect(0, 0, 8, 5))
	draw.DrawMask(dst, dr, image.Opaque, image.Point{}, glyphMask, maskp, draw.Over)
	if dst.AlphaAt(0, 0).A != 255 || dst.AlphaAt(1, 0).A != 0 || dst.AlphaAt(2, 2).A != 255 {
		t.Fatalf("unexpected 'H' mask drawing")
	}
}
