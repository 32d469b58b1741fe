package builder

import "testing"
import "bytes"
import "errors"
import "image/color"
import "log/slog"
import "strings"

import "github.com/tinne26/sheetfont"

func TestInferFirst(t *testing.T) {
	tests := []struct {
		count int
		blanks []int
		first int // -1 for ambiguous
	}{
		{10, []int{0}, 0x20},
		{10, []int{5}, 0x1B},
		{40, []int{32}, 0x00},
		{40, []int{0, 32}, 0x00},
		{230, []int{3, 226}, 0x20},
		{256, []int{0, 32, 255}, 0x00},
		{96, []int{0, 95}, 0x20},
		{10, []int{}, -1},
		{50, []int{40}, -1},
		{10, []int{1, 2}, -1},
		{40, []int{0, 5, 9}, -1},
		{256, []int{0, 32, 254}, -1},
	}

	for i, test := range tests {
		glyphs := make([]sheetfont.Glyph, test.count)
		for j := range glyphs {
			glyphs[j] = sheetfont.Glyph{ RowBytes: 1, ImageHeight: 1, Advance: 4 }
		}
		for _, index := range test.blanks {
			glyphs[index] = sheetfont.Glyph{ Advance: 4 }
		}

		first, err := inferFirst(glyphs)
		if test.first == -1 {
			if !errors.Is(err, ErrAmbiguousOffset) {
				t.Fatalf("test #%d: expected ErrAmbiguousOffset, got first = 0x%02X, err = %v", i, first, err)
			}
			continue
		}
		if err != nil { t.Fatalf("test #%d: unexpected error: %s", i, err) }
		if int(first) != test.first {
			t.Fatalf("test #%d: expected first 0x%02X, got 0x%02X", i, test.first, first)
		}
	}
}

func TestGuessAscent(t *testing.T) {
	glyphs := [][]uint32{
		{ 1, 1, 1, 0, 0 },
		{ 1, 1, 0, 0, 0 },
		{ 1, 1, 1, 0, 0 },
		{ 1, 1, 1, 1, 1 }, // doesn't vote
		{ 0, 0, 0, 0, 0 }, // doesn't vote
	}
	if ascent := GuessAscent(glyphs, 5); ascent != 3 {
		t.Fatalf("expected ascent 3, got %d", ascent)
	}

	// ties go to the larger descent
	glyphs = glyphs[1 : ]
	if ascent := GuessAscent(glyphs, 5); ascent != 2 {
		t.Fatalf("expected ascent 2, got %d", ascent)
	}

	// no votes
	if ascent := GuessAscent([][]uint32{ { 1, 1 } }, 2); ascent != 2 {
		t.Fatalf("expected ascent 2, got %d", ascent)
	}
}

func TestDrawSheetFlips(t *testing.T) {
	// a 2x3 glyph drawn as:
	// X.
	// .X
	// ..
	expected := []uint32{ 0x80, 0x40, 0x00 }
	raw := map[string][]uint32{
		"plain": { 0x80, 0x40, 0x00 },
		"flipX": { 0b01, 0b10, 0b00 },
		"flipY": { 0x00, 0x40, 0x80 },
	}

	for name, rows := range raw {
		config := SheetConfig{ Width: 2, Height: 3, Ascent: 2, PerBand: 4 }
		config.FlipX = (name == "flipX")
		config.FlipY = (name == "flipY")
		sheet, err := DrawSheet([][]uint32{ rows, rows }, config)
		if err != nil { t.Fatalf("%s: unexpected DrawSheet() error: %s", name, err) }
		if sheet.Rect.Dx() != 12 || sheet.Rect.Dy() != 4 {
			t.Fatalf("%s: expected 12x4 sheet, got %s", name, sheet.Rect)
		}

		compiler := New()
		compiler.SetFirst('x')
		font := buildTestFont(t, compiler, sheet)
		for _, codePoint := range "xy" {
			img := renderForTest(font, codePoint)
			for y := 0; y < 3; y++ {
				for x := 0; x < 2; x++ {
					want := expected[y] & (0x80 >> uint(x)) != 0
					if got := img.GrayAt(x, y).Y == 255; got != want {
						t.Fatalf("%s: pixel (%d, %d) expected ink = %t, got %t", name, x, y, want, got)
					}
				}
			}
		}
	}
}

func TestDrawSheetAddAdvance(t *testing.T) {
	rows := []uint32{ 0x80, 0x80, 0x80, 0x00 }
	sheet, err := DrawSheet([][]uint32{ rows }, SheetConfig{ Width: 1, Height: 4, AddAdvance: 2 })
	if err != nil { t.Fatalf("unexpected DrawSheet() error: %s", err) }
	compiler := New()
	compiler.SetFirst('!')
	font := buildTestFont(t, compiler, sheet)
	if font.CharWidth('!') != 3 {
		t.Fatalf("expected advance 3, got %d", font.CharWidth('!'))
	}
	if font.Ascent != 3 || font.Descent != 1 { // guessed
		t.Fatalf("expected ascent 3 and descent 1, got %d and %d", font.Ascent, font.Descent)
	}
}

func TestDrawSheetErrors(t *testing.T) {
	rows := []uint32{ 0x80, 0x80 }
	configs := []SheetConfig{
		{ Width: 0, Height: 2 },
		{ Width: 33, Height: 2 },
		{ Width: 8, Height: 3 }, // row count mismatch
		{ Width: 8, Height: 2, Ascent: 3 },
		{ Width: 8, Height: 2, AddAdvance: -1 },
	}
	for i, config := range configs {
		_, err := DrawSheet([][]uint32{ rows }, config)
		if !errors.Is(err, ErrSheetConfig) {
			t.Fatalf("config #%d: expected ErrSheetConfig, got %v", i, err)
		}
	}

	_, err := DrawSheet([][]uint32{ rows }, SheetConfig{ Width: 32, Height: 2, AddAdvance: 33 })
	if !errors.Is(err, ErrCellTooWide) {
		t.Fatalf("expected ErrCellTooWide, got %v", err)
	}
	_, err = DrawSheet(nil, SheetConfig{ Width: 8, Height: 2 })
	if !errors.Is(err, ErrNoGlyphs) {
		t.Fatalf("expected ErrNoGlyphs, got %v", err)
	}
}

func TestArenaVerify(t *testing.T) {
	var buffer bytes.Buffer
	sheetfont.SetLogger(slog.New(slog.NewTextHandler(&buffer, nil)))
	defer sheetfont.SetLogger(nil)

	// a glyph stored after an earlier copy of its own bytes
	arena := bitmapArena{ data: []byte{ 0xA0, 0xE0, 0xA0, 0xE0 } }
	glyphs := []sheetfont.Glyph{
		{ RowBytes: 1, ImageHeight: 2, ImageOffset: 0, Advance: 3 },
		{ RowBytes: 1, ImageHeight: 2, ImageOffset: 2, Advance: 3 },
		{ Advance: 3 },
	}
	arena.verify(glyphs)
	if !strings.Contains(buffer.String(), "found earlier") {
		t.Fatalf("expected a warning about glyph 1, got log '%s'", buffer.String())
	}

	// interned arenas never warn
	buffer.Reset()
	arena = bitmapArena{}
	glyphs = glyphs[ : 0]
	for _, rows := range [][]uint64{ { 1 << 63, 3 << 62 }, { 3 << 62 }, { 1 << 63, 3 << 62 } } {
		glyph, err := arena.addCell(rows, 2)
		if err != nil { t.Fatalf("unexpected addCell() error: %s", err) }
		glyphs = append(glyphs, glyph)
	}
	arena.verify(glyphs)
	if buffer.Len() != 0 {
		t.Fatalf("expected no warnings, got '%s'", buffer.String())
	}
	if !bytes.Equal(arena.data, []byte{ 0x80, 0xC0 }) {
		t.Fatalf("expected arena [80 C0], got %X", arena.data)
	}
}

func TestArenaOverflow(t *testing.T) {
	arena := bitmapArena{ data: make([]byte, 1 << 16) }
	_, err := arena.intern([]byte{ 0xFF })
	if !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("expected ErrFieldOverflow, got %v", err)
	}
	offset, err := arena.intern([]byte{ 0x00, 0x00 })
	if err != nil || offset != 0 {
		t.Fatalf("expected reuse at offset 0, got %d (%v)", offset, err)
	}
}

func TestClassifyPixel(t *testing.T) {
	tests := []struct{ Color color.Color; Expected pixelKind }{
		{ color.RGBA{0xFF, 0x00, 0x00, 0xFF}, pixelMarker },
		{ color.RGBA{0x00, 0x00, 0xFF, 0xFF}, pixelBaseline },
		{ color.RGBA{0x00, 0x00, 0x00, 0xFF}, pixelInk },
		{ color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, pixelBackground },
		{ color.RGBA{0xFE, 0x00, 0x00, 0xFF}, pixelBackground },
		{ color.NRGBA{0xFF, 0xFF, 0xFF, 0x00}, pixelBackground }, // transparent white
		{ color.NRGBA{0x00, 0x00, 0xFF, 0x80}, pixelBaseline },
		{ color.Gray{0x00}, pixelInk },
		{ color.Gray{0xFF}, pixelBackground },
	}
	for i, test := range tests {
		kind := classifyPixel(test.Color)
		if kind != test.Expected {
			t.Fatalf("test #%d (%v): expected kind %d, got %d", i, test.Color, test.Expected, kind)
		}
	}
}
