package builder

import "fmt"

import "github.com/bits-and-blooms/bitset"

import "github.com/tinne26/sheetfont"

// Guesses the codepoint of the first glyph from the positions of the
// blank glyphs in the sheet. Only a few known layouts are recognized:
//  - A single blank at index i is the space, so first is 0x20 - i.
//  - Blanks at {0, 32} are NUL and space, first is 0x00.
//  - Blanks at {i, i + 223} are space and NBSP, first is 0x20.
//  - Blanks at {0, 32, 255} are NUL, space and NBSP, first is 0x00.
//  - Blanks at {0, 95} are space and DEL, first is 0x20.
// Anything else is reported as [ErrAmbiguousOffset].
func inferFirst(glyphs []sheetfont.Glyph) (uint8, error) {
	var blanks bitset.BitSet
	for i, glyph := range glyphs {
		if !glyph.HasImage() { blanks.Set(uint(i)) }
	}
	indices := blanks.AsSlice(make([]uint, blanks.Count()))

	switch len(indices) {
	case 1:
		if indices[0] <= 0x20 { return uint8(0x20 - indices[0]), nil }
	case 2:
		a, b := indices[0], indices[1]
		if a == 0 && b == 32 { return 0x00, nil }
		if b == a + 223 { return 0x20, nil }
		if a == 0 && b == 95 { return 0x20, nil }
	case 3:
		if indices[0] == 0 && indices[1] == 32 && indices[2] == 255 { return 0x00, nil }
	}
	return 0, fmt.Errorf("%w: blanks at %v", ErrAmbiguousOffset, indices)
}
