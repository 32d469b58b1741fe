package sheetfont

import "errors"
import "fmt"

// A [Font] is a read-only object containing all the data required
// to measure and render text: metrics, glyph storage, a shared bitmap
// arena and a kerning table. Fonts are created by the builder package
// or loaded with [Parse](), and they must not be modified afterwards.
//
// A font can be shared by multiple goroutines rendering concurrently.
// Render calls borrow the font's bitmaps and tables, nothing is copied.
type Font struct {
	// Displacement from the top of the line box to the baseline, in pixels.
	Ascent uint8

	// Displacement from the baseline to the bottom of the line box, in pixels.
	Descent uint8

	// Displacement from one line box to the next one, in pixels.
	// Ordinarily at least Ascent + Descent.
	LineSpacing uint8

	// Glyphs in the font.
	Storage GlyphStorage

	// Glyph used to render any codepoint missing from the storage.
	// Usually a copy of one of the stored glyphs.
	Replacement Glyph

	// Bitmap arena for all glyphs. Glyphs reference ranges of it.
	Bitmaps []byte

	// Kerning table for adjusting glyph-to-glyph spacing.
	Kerning KerningTable
}

// Returns the glyph for the given codepoint, or the replacement glyph
// if the font doesn't have it.
func (self *Font) Glyph(codePoint rune) Glyph {
	glyph, found := self.Storage.Lookup(codePoint)
	if !found { return self.Replacement }
	return glyph
}

// Returns the glyph for the given codepoint only if the font defines it.
func (self *Font) Lookup(codePoint rune) (Glyph, bool) {
	return self.Storage.Lookup(codePoint)
}

// Returns the image data of the given glyph.
func (self *Font) GlyphBitmap(glyph Glyph) []byte {
	return glyph.Bitmap(self.Bitmaps)
}

// Returns the default advance of the given character. Kerning
// is ignored, so adding these up won't match [Font.Width]().
func (self *Font) CharWidth(codePoint rune) int {
	return int(self.Glyph(codePoint).Advance)
}

// Returns the width in pixels of the given text rendered in a single
// line, kerning included. Newlines are looked up like any other
// character, they don't break lines.
func (self *Font) Width(text string) int {
	cursor := newPenCursor(self, 0)
	for _, codePoint := range text {
		_, _ = cursor.next(codePoint)
	}
	return cursor.x
}

// Render functions take the top of the line box as their y coordinate.
// This converts a baseline row into that top row. It fails when the
// result would be negative.
func (self *Font) BaselineToTop(baseline int) (int, bool) {
	if baseline < int(self.Ascent) { return 0, false }
	return baseline - int(self.Ascent), true
}

// Returns Ascent + Descent.
func (self *Font) Height() int {
	return int(self.Ascent) + int(self.Descent)
}

// --- validation ---

type FmtValidation bool
const (
	FmtDefault FmtValidation = false // basic and inexpensive checks only
	FmtStrict  FmtValidation = true  // check everything that can be checked
)

var ErrInvalidGlyph = errors.New("glyph image exceeds the bitmap arena")

// Checks the font invariants. Fonts built by the builder package always
// pass validation; this is mostly useful for fonts coming from elsewhere.
func (self *Font) Validate(mode FmtValidation) error {
	if len(self.Bitmaps) > MaxBitmapsSize {
		return errors.New("bitmap arena exceeds maximum size")
	}

	// storage
	switch self.Storage.Kind() {
	case StorageDense:
		if self.Storage.First() < 0 { return errors.New("dense storage can't start at a negative codepoint") }
	case StorageSparse:
		entries := self.Storage.entries
		for i := 1; i < len(entries); i++ {
			if entries[i - 1].CodePoint >= entries[i].CodePoint {
				return fmt.Errorf("sparse storage is not sorted at entry %d", i)
			}
		}
	default:
		return errors.New("invalid glyph storage kind")
	}

	// glyphs
	var err error
	self.Storage.Each(func(codePoint rune, glyph Glyph) {
		if err != nil || glyph.fitsIn(self.Bitmaps) { return }
		err = fmt.Errorf("codepoint U+%04X: %w", codePoint, ErrInvalidGlyph)
	})
	if err != nil { return err }
	if !self.Replacement.fitsIn(self.Bitmaps) {
		return fmt.Errorf("replacement: %w", ErrInvalidGlyph)
	}

	// kerning
	err = self.Kerning.Validate()
	if err != nil { return err }

	// strict checks
	if mode == FmtStrict {
		if int(self.LineSpacing) < self.Height() {
			return errors.New("LineSpacing can't be smaller than Ascent + Descent")
		}
		height := self.Height()
		self.Storage.Each(func(codePoint rune, glyph Glyph) {
			if err != nil { return }
			if int(glyph.OriginY) + int(glyph.ImageHeight) > height {
				err = fmt.Errorf("codepoint U+%04X: glyph image exceeds the line box", codePoint)
			} else if glyph.RowBytes > 8 { // cells are at most 64 pixels wide
				err = fmt.Errorf("codepoint U+%04X: glyph image row too wide", codePoint)
			}
		})
		if err != nil { return err }
	}

	return nil
}
