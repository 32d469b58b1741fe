package main

import "testing"
import "bytes"
import "image"
import "strings"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/builder"

const testRawRows = `[
	0x00, 0x00, 0x00, 0x00,
	0x40, 0x40, 0x00, 0x40,
	0xE0, 0xA0, 0xE0, 0x00,
]`

// Goes through the same steps as the convert and compile commands.
func buildTestFont(t *testing.T) *sheetfont.Font {
	t.Helper()
	rows, err := parseRawRows([]byte(testRawRows))
	if err != nil { t.Fatalf("unexpected parseRawRows() error: %s", err) }
	glyphs, err := splitGlyphs(rows, 4)
	if err != nil { t.Fatalf("unexpected splitGlyphs() error: %s", err) }
	sheet, err := builder.DrawSheet(glyphs, builder.SheetConfig{ Width: 3, Height: 4, Ascent: 3, AddAdvance: 1 })
	if err != nil { t.Fatalf("unexpected DrawSheet() error: %s", err) }
	font, err := builder.New().Build(sheet)
	if err != nil { t.Fatalf("unexpected Build() error: %s", err) }
	return font
}

func expectGray(t *testing.T, img *image.Gray, x, y int, expected uint8) {
	t.Helper()
	if value := img.GrayAt(x, y).Y; value != expected {
		t.Fatalf("pixel (%d, %d): expected %d, got %d", x, y, expected, value)
	}
}

func TestParseRawRows(t *testing.T) {
	rows, err := parseRawRows([]byte("[0x10, 2,\n\t0b11]"))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(rows) != 3 || rows[0] != 16 || rows[1] != 2 || rows[2] != 3 {
		t.Fatalf("expected [16 2 3], got %v", rows)
	}
	_, err = parseRawRows([]byte("0x10 0xZZ"))
	if err == nil { t.Fatalf("expected error for invalid row") }
	_, err = parseRawRows([]byte("0x1FFFFFFFF"))
	if err == nil { t.Fatalf("expected error for row beyond 32 bits") }

	_, err = splitGlyphs(rows, 2)
	if err == nil { t.Fatalf("expected error for incomplete glyph") }
	glyphs, err := splitGlyphs(rows, 3)
	if err != nil || len(glyphs) != 1 {
		t.Fatalf("expected a single glyph, got %v (err = %v)", glyphs, err)
	}
}

func TestParseKerning(t *testing.T) {
	pairs, err := parseKerning(" AV=-2  Vé=+1 ")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	expected := []kerningPair{ { 'A', 'V', -2 }, { 'V', 'é', 1 } }
	if len(pairs) != len(expected) {
		t.Fatalf("expected %d pairs, got %d", len(expected), len(pairs))
	}
	for i := range pairs {
		if pairs[i] != expected[i] {
			t.Fatalf("pair %d: expected %+v, got %+v", i, expected[i], pairs[i])
		}
	}

	for _, spec := range []string{ "A=1", "AVX=1", "AV=200", "AV", "AV=x" } {
		_, err := parseKerning(spec)
		if err == nil { t.Fatalf("expected error for %q", spec) }
	}
}

func TestRenderLines(t *testing.T) {
	font := buildTestFont(t)
	spacing := int(font.LineSpacing)
	for _, slow := range []bool{ false, true } {
		img := renderLines(font, []string{ "!", "\"!" }, false, slow)
		if img.Rect.Dx() != 8 || img.Rect.Dy() != 2*spacing {
			t.Fatalf("expected 8x%d image, got %v", 2*spacing, img.Rect)
		}
		expectGray(t, img, 0, 0, 0xFF)
		expectGray(t, img, 1, 0, 0x00)
		expectGray(t, img, 1, 2, 0xFF)
		expectGray(t, img, 1, 3, 0x00)
		expectGray(t, img, 0, spacing, 0x00)
		expectGray(t, img, 1, spacing + 1, 0xFF)
		expectGray(t, img, 5, spacing + 1, 0x00)
	}

	img := renderLines(font, []string{ "!" }, true, false)
	expectGray(t, img, 0, 0, 0x00)
	expectGray(t, img, 1, 0, 0xFF)

	img = renderLines(font, []string{ "" }, false, false)
	if img.Rect.Dx() != 1 {
		t.Fatalf("expected empty text to still produce a 1 pixel wide image, got %v", img.Rect)
	}
}

func TestDumpFont(t *testing.T) {
	font := buildTestFont(t)
	var buffer bytes.Buffer
	dumpFont(&buffer, font)
	output := buffer.String()
	for _, expected := range []string{ "dense storage, 3 glyphs from U+0020", "U+0021 '!': advance 4", "  |X       |", "replacement: advance 4, blank" } {
		if !strings.Contains(output, expected) {
			t.Fatalf("expected dump to contain %q:\n%s", expected, output)
		}
	}
}

func TestDrawAtlas(t *testing.T) {
	font := buildTestFont(t)
	atlas := drawAtlas(font)
	if atlas.Rect.Dx() != 3*10 || atlas.Rect.Dy() != font.Height() + 1 {
		t.Fatalf("unexpected atlas size %v", atlas.Rect)
	}
	expectGray(t, atlas, 10, 0, 0xFF)
	expectGray(t, atlas, 11, 0, 0x00)
	expectGray(t, atlas, 11, 2, 0xFF)
	expectGray(t, atlas, 20, 1, 0x00)
	expectGray(t, atlas, 21, 1, 0xFF)
}
