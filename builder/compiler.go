package builder

import "fmt"
import "image"
import "slices"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/internal"

// The font sheet compiler. The zero configuration infers the first
// codepoint from the blank glyphs, uses [OrderLatin1], takes the first
// glyph as the replacement and has no kerning.
//
// A compiler can be reused to build multiple fonts with the same
// configuration, but it must not be used concurrently.
type Compiler struct {
	first uint8
	hasFirst bool
	order GlyphOrder
	replacement int
	kerningPairs map[uint16]int8
}

func New() *Compiler {
	return &Compiler{ kerningPairs: make(map[uint16]int8) }
}

// Sets the codepoint of the first glyph explicitly.
func (self *Compiler) SetFirst(first uint8) {
	self.first, self.hasFirst = first, true
}

// Returns to inferring the first codepoint from blank glyphs.
func (self *Compiler) ClearFirst() {
	self.first, self.hasFirst = 0, false
}

func (self *Compiler) SetOrder(order GlyphOrder) {
	if order != OrderLatin1 && order != OrderCP437 { panic(ErrUnknownOrder) }
	self.order = order
}

// Sets the sheet index of the glyph to use for missing codepoints.
// The index is checked on [Compiler.Build]().
func (self *Compiler) SetReplacementIndex(index int) {
	self.replacement = index
}

// Sets the advance adjustment between two characters. Setting a pair
// again overwrites it. Zero removes the pair.
func (self *Compiler) SetKerningPair(before, after rune, adjust int8) error {
	if before < 0 || before > sheetfont.MaxKerningCodePoint { return ErrKerningRange }
	if after  < 0 || after  > sheetfont.MaxKerningCodePoint { return ErrKerningRange }

	key := uint16(before) << 8 | uint16(after)
	if adjust == 0 {
		delete(self.kerningPairs, key)
	} else {
		self.kerningPairs[key] = adjust
	}
	return nil
}

func (self *Compiler) kerningTable() sheetfont.KerningTable {
	if len(self.kerningPairs) == 0 { return sheetfont.KerningTable{} }
	keys := make([]uint16, 0, len(self.kerningPairs))
	for key := range self.kerningPairs {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	entries := make([]sheetfont.KerningEntry, len(keys))
	for i, key := range keys {
		entries[i] = sheetfont.KerningEntry{
			Before: uint8(key >> 8),
			After: uint8(key),
			Adjust: self.kerningPairs[key],
		}
	}
	return sheetfont.KerningTable{ Entries: entries }
}

// Compiles the given font sheet. Any format violation aborts the
// whole build.
//
// The sheet is read with [image.Image.At](), so any decoded image
// works. Marker colors are matched on their 8-bit RGB values.
func (self *Compiler) Build(sheet image.Image) (*sheetfont.Font, error) {
	logger := sheetfont.Logger()

	bands, err := scanSheet(sheet)
	if err != nil { return nil, err }
	ascent, descent := normalizeBands(bands)
	err = checkUint8("line spacing", ascent + descent)
	if err != nil { return nil, err }

	// trim, pack and intern glyph bitmaps
	var arena bitmapArena
	var glyphs []sheetfont.Glyph
	for bandIndex, band := range bands {
		for _, cell := range band.cells {
			glyph, err := arena.addCell(cell.rows, cell.width)
			if err != nil {
				return nil, &SheetError{ Band: bandIndex, Column: cell.column, Err: err }
			}
			glyphs = append(glyphs, glyph)
		}
		logger.Debug("sheet band scanned", "band", bandIndex, "cells", len(band.cells))
	}
	if len(glyphs) == 0 { return nil, ErrNoGlyphs }
	if len(glyphs) > internal.MaxGlyphs {
		return nil, fmt.Errorf("%w: %d glyphs", ErrFieldOverflow, len(glyphs))
	}
	arena.verify(glyphs)

	// codepoint mapping
	first := self.first
	if !self.hasFirst {
		first, err = inferFirst(glyphs)
		if err != nil { return nil, err }
		logger.Debug("first codepoint inferred", "first", first)
	}
	if self.replacement < 0 || self.replacement >= len(glyphs) {
		return nil, ErrReplacementIndex
	}

	font := &sheetfont.Font{
		Ascent: uint8(ascent),
		Descent: uint8(descent),
		LineSpacing: uint8(ascent + descent),
		Storage: self.order.assemble(first, glyphs),
		Replacement: glyphs[self.replacement],
		Bitmaps: arena.data,
		Kerning: self.kerningTable(),
	}
	logger.Debug(
		"font compiled",
		"glyphs", font.Storage.Len(), "storage", font.Storage.Kind().String(),
		"arena", len(font.Bitmaps), "ascent", ascent, "descent", descent,
	)
	return font, nil
}
