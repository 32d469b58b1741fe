package builder

import "image"
import "image/color"

import "github.com/tinne26/sheetfont/internal"

// Sheet protocol colors. Anything else is background.
var (
	markerColor   = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	baselineColor = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	inkColor      = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

type pixelKind uint8
const (
	pixelBackground pixelKind = iota
	pixelInk
	pixelMarker
	pixelBaseline
)

// Alpha is ignored, only the 8-bit color channels matter. Colors are
// read non-premultiplied, so transparent pixels keep their stored color
// when the image format preserves it.
func classifyPixel(clr color.Color) pixelKind {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	switch {
	case c.R == markerColor.R && c.G == 0 && c.B == 0 : return pixelMarker
	case c.R == 0 && c.G == 0 && c.B == baselineColor.B : return pixelBaseline
	case c.R == 0 && c.G == 0 && c.B == 0 : return pixelInk
	default:
		return pixelBackground
	}
}

// A glyph cell as read from the sheet. Each row is a 64-bit mask with
// the leftmost cell pixel in the MSB.
type sheetCell struct {
	rows []uint64
	width int
	column int
}

type sheetBand struct {
	ascent int
	descent int
	cells []sheetCell
}

// Splits the sheet into bands and reads all their glyph cells.
//
// A band ends at a row whose first pixel is a marker. The band width
// is the run of marker pixels starting at that first pixel. Within
// the band, exactly one row must contain baseline pixels, and marker
// pixels on that row separate the glyph cells.
func scanSheet(sheet image.Image) ([]sheetBand, error) {
	bounds := sheet.Bounds()
	x0 := bounds.Min.X

	var bands []sheetBand
	top := bounds.Min.Y
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if classifyPixel(sheet.At(x0, y)) != pixelMarker { continue }

		bandIndex := len(bands)
		width := 1
		for x0 + width < bounds.Max.X && classifyPixel(sheet.At(x0 + width, y)) == pixelMarker {
			width += 1
		}

		baseline, err := findBaseline(sheet, x0, width, top, y)
		if err != nil { return nil, &SheetError{ Band: bandIndex, Column: -1, Err: err } }
		ascent := baseline + 1 - top
		band := sheetBand{ ascent: ascent, descent: (y - top) - ascent }

		edge := 0
		for bx := 0; bx < width; bx++ {
			if classifyPixel(sheet.At(x0 + bx, baseline)) != pixelMarker { continue }
			cellWidth := bx - edge
			if cellWidth > internal.MaxCellWidth {
				return nil, &SheetError{ Band: bandIndex, Column: x0 + edge, Err: ErrCellTooWide }
			}
			if cellWidth > 0 {
				band.cells = append(band.cells, readCell(sheet, x0 + edge, cellWidth, top, y))
			}
			edge = bx + 1
		}

		bands = append(bands, band)
		top = y + 1
	}

	if len(bands) == 0 { return nil, ErrNoBands }
	return bands, nil
}

// Returns the only row in [top, bottom) with baseline pixels.
func findBaseline(sheet image.Image, x0, width, top, bottom int) (int, error) {
	baseline := -1
	for y := top; y < bottom; y++ {
		for x := x0; x < x0 + width; x++ {
			if classifyPixel(sheet.At(x, y)) != pixelBaseline { continue }
			if baseline != -1 { return 0, ErrAmbiguousBaseline }
			baseline = y
			break
		}
	}
	if baseline == -1 { return 0, ErrMissingBaseline }
	return baseline, nil
}

// The marker row at bottom is not part of the cell.
func readCell(sheet image.Image, x, width, top, bottom int) sheetCell {
	rows := make([]uint64, bottom - top)
	for y := top; y < bottom; y++ {
		var mask uint64 = 1 << 63
		for cx := x; cx < x + width; cx++ {
			if classifyPixel(sheet.At(cx, y)) == pixelInk {
				rows[y - top] |= mask
			}
			mask >>= 1
		}
	}
	return sheetCell{ rows: rows, width: width, column: x }
}

// Pads all cells with empty rows so every band shares the largest
// ascent and descent. Returns the shared metrics.
func normalizeBands(bands []sheetBand) (int, int) {
	var ascent, descent int
	for _, band := range bands {
		ascent  = max(ascent, band.ascent)
		descent = max(descent, band.descent)
	}

	for i := range bands {
		band := &bands[i]
		padTop, padBottom := ascent - band.ascent, descent - band.descent
		if padTop == 0 && padBottom == 0 { continue }
		for j := range band.cells {
			cell := &band.cells[j]
			rows := make([]uint64, padTop, ascent + descent)
			rows = append(rows, cell.rows...)
			cell.rows = internal.GrowSliceByN(rows, padBottom)
		}
		band.ascent, band.descent = ascent, descent
	}
	return ascent, descent
}
