package builder

import "errors"
import "fmt"
import "image"
import "image/color"
import "image/draw"
import "math/bits"

import "github.com/tinne26/sheetfont/internal"
import "github.com/tinne26/sheetfont/mask"

// Configuration for [DrawSheet]().
type SheetConfig struct {
	// Glyph image size, in pixels. Width can't exceed 32.
	Width, Height int

	// Rows above the baseline, baseline row included. Zero guesses
	// the ascent with [GuessAscent]().
	Ascent int

	// Glyphs per band. Zero means 16.
	PerBand int

	// Extra advance added at the right of each glyph.
	AddAdvance int

	// Raw rows store the leftmost pixel in the least significant bit.
	FlipX bool

	// Raw glyphs store their rows from the bottom up.
	FlipY bool
}

// Returns the glyph rows in canonical form: top row first, leftmost
// pixel in bit 31.
func (self *SheetConfig) normalize(raw []uint32) []uint32 {
	rows := make([]uint32, len(raw))
	shift := 8*(4 - mask.RowBytes(self.Width))
	for i, row := range raw {
		if self.FlipX {
			row = bits.Reverse32(row)
		} else {
			row <<= uint(shift)
		}
		if self.FlipY {
			rows[len(raw) - 1 - i] = row
		} else {
			rows[i] = row
		}
	}
	return rows
}

var ErrSheetConfig = errors.New("invalid sheet configuration")

// Draws a font sheet from raw fixed size glyph images, one []uint32
// per glyph with one value per row. Raw rows are right aligned to
// whole bytes, with the leftmost pixel in the most significant bit of
// the first byte, unless [SheetConfig].FlipX is set.
//
// The result can be compiled with [Compiler.Build](). Glyph cells are
// Width + AddAdvance pixels wide, followed by a marker column on the
// baseline, and each band is Height rows plus its marker row.
func DrawSheet(glyphs [][]uint32, config SheetConfig) (*image.RGBA, error) {
	if config.Width <= 0 || config.Width > 32 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: glyph size %dx%d", ErrSheetConfig, config.Width, config.Height)
	}
	if config.AddAdvance < 0 || config.PerBand < 0 {
		return nil, ErrSheetConfig
	}
	cellWidth := config.Width + config.AddAdvance
	if cellWidth > internal.MaxCellWidth { return nil, ErrCellTooWide }
	perBand := config.PerBand
	if perBand == 0 { perBand = 16 }
	if len(glyphs) == 0 { return nil, ErrNoGlyphs }

	canonical := make([][]uint32, len(glyphs))
	for i, raw := range glyphs {
		if len(raw) != config.Height {
			return nil, fmt.Errorf("%w: glyph %d has %d rows, expected %d", ErrSheetConfig, i, len(raw), config.Height)
		}
		canonical[i] = config.normalize(raw)
	}

	ascent := config.Ascent
	if ascent == 0 { ascent = GuessAscent(canonical, config.Height) }
	if ascent < 1 || ascent > config.Height {
		return nil, fmt.Errorf("%w: ascent %d", ErrSheetConfig, ascent)
	}

	// background, marker rows and baselines
	bandHeight := config.Height + 1
	numBands := (len(glyphs) + perBand - 1)/perBand
	sheet := image.NewRGBA(image.Rect(0, 0, (cellWidth + 1)*perBand, bandHeight*numBands))
	draw.Draw(sheet, sheet.Rect, image.White, image.Point{}, draw.Src)
	for band := 0; band < numBands; band++ {
		top := band*bandHeight
		fillRow(sheet, top + ascent - 1, baselineColor)
		fillRow(sheet, top + bandHeight - 1, markerColor)
	}

	// cell separators and glyph ink
	for i, rows := range canonical {
		gx, gy := (i % perBand)*(cellWidth + 1), (i/perBand)*bandHeight
		sheet.SetRGBA(gx + cellWidth, gy + ascent - 1, markerColor)
		if ascent >= 2 {
			sheet.SetRGBA(gx + cellWidth, gy + ascent - 2, markerColor)
		}
		for y, row := range rows {
			for x := 0; x < config.Width; x++ {
				if row & (1 << 31) != 0 {
					sheet.SetRGBA(gx + x, gy + y, inkColor)
				}
				row <<= 1
			}
		}
	}

	return sheet, nil
}

func fillRow(img *image.RGBA, y int, clr color.RGBA) {
	for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
		img.SetRGBA(x, y, clr)
	}
}

// Guesses the ascent of a set of glyphs given as canonical rows, top
// row first. The most common count of empty rows at the bottom of the
// glyphs is taken as the descent. Blank glyphs and glyphs touching the
// bottom don't vote, and ties go to the larger descent. Returns height
// if no glyph votes.
func GuessAscent(glyphs [][]uint32, height int) int {
	votes := make(map[int]int)
	for _, rows := range glyphs {
		pad := 0
		for pad < len(rows) && rows[len(rows) - 1 - pad] == 0 {
			pad += 1
		}
		if pad == 0 || pad == len(rows) { continue }
		votes[pad] += 1
	}

	descent, best := 0, 0
	for pad, count := range votes {
		if count > best || (count == best && pad > descent) {
			descent, best = pad, count
		}
	}
	return height - descent
}
