package builder

import "bytes"
import "fmt"

import "github.com/BobuSumisu/aho-corasick"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/internal"
import "github.com/tinne26/sheetfont/mask"

// The bitmap arena under construction. Glyph bitmaps are interned:
// if the packed bytes of a glyph already appear anywhere in the arena,
// even across glyph boundaries, the existing offset is reused.
type bitmapArena struct {
	data []byte
	scratch []byte
}

// Converts a sheet cell into a glyph, trimming its empty borders and
// interning its packed rows.
func (self *bitmapArena) addCell(rows []uint64, advance int) (sheetfont.Glyph, error) {
	rect := mask.ComputeRect(rows)
	if rect.Empty() { return sheetfont.Glyph{ Advance: uint8(advance) }, nil }

	self.scratch = mask.AppendPackedRows(self.scratch[ : 0], rows, rect)
	offset, err := self.intern(self.scratch)
	if err != nil { return sheetfont.Glyph{}, err }
	return sheetfont.Glyph{
		RowBytes: uint8(mask.RowBytes(rect.Dx())),
		ImageOffset: offset,
		ImageHeight: uint8(rect.Dy()),
		OriginX: uint8(rect.Min.X),
		OriginY: uint8(rect.Min.Y),
		Advance: uint8(advance),
	}, nil
}

func (self *bitmapArena) intern(bitmap []byte) (uint16, error) {
	offset := bytes.Index(self.data, bitmap)
	if offset >= 0 { return uint16(offset), nil }

	offset = len(self.data)
	if offset + len(bitmap) > internal.MaxBitmapsSize {
		return 0, fmt.Errorf("%w: bitmap arena exceeds %d bytes", ErrFieldOverflow, internal.MaxBitmapsSize)
	}
	self.data = append(self.data, bitmap...)
	return uint16(offset), nil
}

// Scans the finished arena for every distinct glyph bitmap at once and
// checks the interning results. An occurrence that ends before a glyph's
// own offset means interning missed a reuse opportunity. That is logged,
// and the earlier bytes must be identical to the glyph's or the arena
// is corrupt.
func (self *bitmapArena) verify(glyphs []sheetfont.Glyph) {
	patternIndex := make(map[string]int, len(glyphs))
	var patterns [][]byte
	for _, glyph := range glyphs {
		if !glyph.HasImage() { continue }
		bitmap := glyph.Bitmap(self.data)
		if _, seen := patternIndex[string(bitmap)]; seen { continue }
		patternIndex[string(bitmap)] = len(patterns)
		patterns = append(patterns, bitmap)
	}
	if len(patterns) == 0 { return }

	trie := ahocorasick.NewTrieBuilder().AddPatterns(patterns).Build()
	earliest := make([]int, len(patterns))
	for i := range earliest { earliest[i] = -1 }
	for _, match := range trie.Match(self.data) {
		pattern, start := int(match.Pattern()), int(match.Pos())
		if earliest[pattern] == -1 || start < earliest[pattern] {
			earliest[pattern] = start
		}
	}

	logger := sheetfont.Logger()
	for i, glyph := range glyphs {
		if !glyph.HasImage() { continue }
		bitmap := glyph.Bitmap(self.data)
		start := earliest[patternIndex[string(bitmap)]]
		if start == -1 { panic(brokenCode) } // the glyph's own bytes must match
		offset := int(glyph.ImageOffset)
		if start + len(bitmap) > offset { continue }

		logger.Warn(
			"glyph bitmap found earlier in arena",
			"glyph", i, "offset", offset, "earlier", start,
		)
		if !bytes.Equal(bitmap, self.data[start : start + len(bitmap)]) {
			panic(brokenCode)
		}
	}
}
