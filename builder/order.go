package builder

import "errors"
import "slices"
import "strings"

import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/sheetfont"

// Determines how sheet glyph indices map to codepoints.
type GlyphOrder uint8
const (
	// Glyph i is codepoint first + i. Produces dense storage.
	OrderLatin1 GlyphOrder = iota

	// Glyph i is the character at byte first + i in the IBM PC code
	// page 437. Produces sparse storage. Glyphs beyond byte 0xFF are
	// dropped.
	OrderCP437
)

func (self GlyphOrder) String() string {
	switch self {
	case OrderLatin1 : return "latin1"
	case OrderCP437  : return "cp437"
	default:
		return "invalid"
	}
}

var ErrUnknownOrder = errors.New("unknown glyph order")

// Parses "latin1" (also "iso8859-1") or "cp437", case insensitive.
func ParseGlyphOrder(name string) (GlyphOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "latin1", "latin-1", "iso8859-1", "iso8859_1", "iso-8859-1":
		return OrderLatin1, nil
	case "cp437", "ibm437":
		return OrderCP437, nil
	default:
		return 0, ErrUnknownOrder
	}
}

// Code page 437 includes printable symbols for the control range. The
// charmap decoder keeps control characters as they are, so those come
// from here.
var cp437Low = [32]rune{
	0x0000, 0x263A, 0x263B, 0x2665, 0x2666, 0x2663, 0x2660, 0x2022,
	0x25D8, 0x25CB, 0x25D9, 0x2642, 0x2640, 0x266A, 0x266B, 0x263C,
	0x25BA, 0x25C4, 0x2195, 0x203C, 0x00B6, 0x00A7, 0x25AC, 0x21A8,
	0x2191, 0x2193, 0x2192, 0x2190, 0x221F, 0x2194, 0x25B2, 0x25BC,
}

var cp437CodePoints = func() [256]rune {
	var table [256]rune
	for i := 0; i < 256; i++ {
		switch {
		case i < 32   : table[i] = cp437Low[i]
		case i == 0x7F: table[i] = 0x2302 // house
		default:
			table[i] = charmap.CodePage437.DecodeByte(byte(i))
		}
	}
	return table
}()

// Returns the codepoint of the given code page 437 byte.
func CP437Rune(b byte) rune { return cp437CodePoints[b] }

func (self GlyphOrder) assemble(first uint8, glyphs []sheetfont.Glyph) sheetfont.GlyphStorage {
	switch self {
	case OrderLatin1:
		return sheetfont.NewDenseStorage(rune(first), glyphs)
	case OrderCP437:
		count := min(len(glyphs), 256 - int(first))
		if count < len(glyphs) {
			sheetfont.Logger().Debug("glyphs beyond code page 437 dropped", "count", len(glyphs) - count)
		}
		entries := make([]sheetfont.SparseEntry, count)
		for i := 0; i < count; i++ {
			entries[i] = sheetfont.SparseEntry{
				CodePoint: cp437CodePoints[int(first) + i],
				Glyph: glyphs[i],
			}
		}
		slices.SortFunc(entries, func(a, b sheetfont.SparseEntry) int {
			return int(a.CodePoint - b.CodePoint)
		})
		return sheetfont.NewSparseStorage(entries)
	default:
		panic(brokenCode)
	}
}
