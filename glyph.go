package sheetfont

import "cmp"
import "slices"

// Data for a single glyph in a font.
//
// Glyph images are stored in the font's shared bitmap arena, one bit
// per pixel, MSB first, each row padded to a whole number of bytes.
// Different glyphs may reference overlapping ranges of the arena.
type Glyph struct {
	// Width of each image row, in bytes. Zero for blank glyphs.
	RowBytes uint8

	// Position of the image in the font's bitmap arena.
	ImageOffset uint16

	// Number of image rows. Always zero for blank glyphs.
	ImageHeight uint8

	// Displacement from the top-left of the glyph's box to the
	// top-left pixel of the image. Allows the image to be smaller
	// than the box, e.g. omitting the empty area above lowercase
	// letters.
	OriginX, OriginY uint8

	// Default horizontal advance from the left side of this glyph's
	// box to the left side of the next one. Kerning may override it.
	Advance uint8
}

// Returns whether the glyph has any image data at all.
func (self Glyph) HasImage() bool { return self.RowBytes != 0 }

// Returns the number of bytes the glyph image takes in the arena.
func (self Glyph) ImageSize() int {
	return int(self.RowBytes)*int(self.ImageHeight)
}

// Returns the glyph image slice within the given bitmap arena.
// Blank glyphs return nil. Out of range offsets panic, as they
// can only come from a broken font.
func (self Glyph) Bitmap(bitmaps []byte) []byte {
	if self.RowBytes == 0 { return nil }
	start := int(self.ImageOffset)
	return bitmaps[start : start + self.ImageSize()]
}

func (self Glyph) fitsIn(bitmaps []byte) bool {
	if self.RowBytes == 0 { return self.ImageHeight == 0 }
	return int(self.ImageOffset) + self.ImageSize() <= len(bitmaps)
}

// --- storage ---

type StorageKind uint8
const (
	StorageDense  StorageKind = 1
	StorageSparse StorageKind = 2
)

func (self StorageKind) String() string {
	switch self {
	case StorageDense  : return "dense"
	case StorageSparse : return "sparse"
	default:
		return "invalid"
	}
}

// A codepoint and glyph pair for sparse storage.
type SparseEntry struct {
	CodePoint rune
	Glyph Glyph
}

// Storage for the set of glyphs that make up a font. The storage
// is one of two variants, reported by [GlyphStorage.Kind]():
//  - Dense storage holds glyphs for a contiguous range of codepoints
//    starting at [GlyphStorage.First](). Lookups are O(1).
//  - Sparse storage holds codepoint and glyph pairs sorted by
//    codepoint. Lookups are binary searches.
type GlyphStorage struct {
	kind StorageKind
	first rune
	glyphs []Glyph
	entries []SparseEntry
}

// Creates dense storage, where glyphs[i] corresponds to the
// codepoint first + i. The slice is not copied.
func NewDenseStorage(first rune, glyphs []Glyph) GlyphStorage {
	return GlyphStorage{ kind: StorageDense, first: first, glyphs: glyphs }
}

// Creates sparse storage. Entries must be sorted by codepoint, without
// repeats. The slice is not copied.
func NewSparseStorage(entries []SparseEntry) GlyphStorage {
	return GlyphStorage{ kind: StorageSparse, entries: entries }
}

func (self *GlyphStorage) Kind() StorageKind { return self.kind }

// Codepoint of the first glyph for dense storage, zero for sparse storage.
func (self *GlyphStorage) First() rune { return self.first }

// Returns the number of glyphs held by the storage.
func (self *GlyphStorage) Len() int {
	if self.kind == StorageSparse { return len(self.entries) }
	return len(self.glyphs)
}

// Returns the glyph for the given codepoint, if present.
func (self *GlyphStorage) Lookup(codePoint rune) (Glyph, bool) {
	switch self.kind {
	case StorageDense:
		// negative codepoints and codepoints below first wrap around
		// to huge indices and fail the bounds check
		index := uint32(codePoint) - uint32(self.first)
		if index >= uint32(len(self.glyphs)) { return Glyph{}, false }
		return self.glyphs[index], true
	case StorageSparse:
		index, found := slices.BinarySearchFunc(self.entries, codePoint, compareEntryCodePoint)
		if !found { return Glyph{}, false }
		return self.entries[index].Glyph, true
	default:
		return Glyph{}, false
	}
}

// Iterates all stored glyphs in ascending codepoint order.
func (self *GlyphStorage) Each(fn func(codePoint rune, glyph Glyph)) {
	switch self.kind {
	case StorageDense:
		for i, glyph := range self.glyphs {
			fn(self.first + rune(i), glyph)
		}
	case StorageSparse:
		for _, entry := range self.entries {
			fn(entry.CodePoint, entry.Glyph)
		}
	}
}

func compareEntryCodePoint(entry SparseEntry, codePoint rune) int {
	return cmp.Compare(entry.CodePoint, codePoint)
}
