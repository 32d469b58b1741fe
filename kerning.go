package sheetfont

import "cmp"
import "errors"
import "slices"

import "github.com/tinne26/sheetfont/internal"

// An entry in the kerning table. Characters are given by their
// codepoint, which limits kerning to the first 256 codepoints.
type KerningEntry struct {
	Before uint8
	After uint8

	// Adjustment to the advance between Before and After. Negative
	// values bring the glyphs closer together.
	Adjust int8
}

func (self KerningEntry) pairKey() uint16 {
	return uint16(self.Before) << 8 | uint16(self.After)
}

// A kerning table, sorted by (Before, After) pairs.
type KerningTable struct {
	Entries []KerningEntry
}

func (self *KerningTable) Len() int { return len(self.Entries) }

// Returns the kerning entry for the given pair of characters. Pairs
// involving characters beyond [MaxKerningCodePoint] always miss.
func (self *KerningTable) Get(before, after rune) (KerningEntry, bool) {
	if before < 0 || before > MaxKerningCodePoint { return KerningEntry{}, false }
	if after  < 0 || after  > MaxKerningCodePoint { return KerningEntry{}, false }

	key := uint16(before) << 8 | uint16(after)
	index, found := slices.BinarySearchFunc(self.Entries, key, func(entry KerningEntry, key uint16) int {
		return cmp.Compare(entry.pairKey(), key)
	})
	if !found { return KerningEntry{}, false }
	return self.Entries[index], true
}

// Checks that entries are sorted and that no pair is repeated.
func (self *KerningTable) Validate() error {
	for i := 1; i < len(self.Entries); i++ {
		prev, curr := self.Entries[i - 1].pairKey(), self.Entries[i].pairKey()
		if prev == curr { return errors.New("kerning table contains repeated pairs") }
		if prev >  curr { return errors.New("kerning table is not sorted") }
	}
	return nil
}

// --- pen cursor ---

// Tracks the pen position along a single line. The cursor must not be
// reused across lines: kerning never applies between the last character
// of a line and the first one of the next.
//
// Kerning never moves the pen left of floor, the x where the line
// starts, so layout doesn't depend on where the line is drawn.
type penCursor struct {
	font *Font
	x int
	floor int
	prev rune
	started bool
}

func newPenCursor(font *Font, x int) penCursor {
	return penCursor{ font: font, x: x, floor: x }
}

// Moves the cursor over the given character. Returns the glyph to draw
// and the pen x position at which it must be drawn.
func (self *penCursor) next(codePoint rune) (Glyph, int) {
	if self.started {
		entry, found := self.font.Kerning.Get(self.prev, codePoint)
		if found {
			self.x = max(internal.SaturatingAdd(self.x, int(entry.Adjust)), self.floor)
		}
	}
	self.prev, self.started = codePoint, true

	glyph := self.font.Glyph(codePoint)
	penX := self.x
	self.x = internal.SaturatingAdd(self.x, int(glyph.Advance))
	return glyph, penX
}
