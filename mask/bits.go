package mask

import "image"
import "image/color"

// An [image.Image] view over a packed glyph bitmap, one bit per pixel,
// MSB first, rows of Stride bytes. Set bits are opaque and unset bits
// transparent. The view doesn't copy the data.
type Bits struct {
	Pix []byte
	Stride int
	Rect image.Rectangle
}

// Creates a view over the given bitmap, placing its top-left pixel at
// origin. The view is rowBytes*8 pixels wide.
func NewBits(bitmap []byte, rowBytes int, origin image.Point) *Bits {
	height := 0
	if rowBytes > 0 { height = len(bitmap)/rowBytes }
	return &Bits{
		Pix: bitmap,
		Stride: rowBytes,
		Rect: image.Rect(origin.X, origin.Y, origin.X + rowBytes*8, origin.Y + height),
	}
}

func (self *Bits) ColorModel() color.Model { return color.AlphaModel }
func (self *Bits) Bounds() image.Rectangle { return self.Rect }
func (self *Bits) At(x, y int) color.Color { return self.AlphaAt(x, y) }

func (self *Bits) AlphaAt(x, y int) color.Alpha {
	if self.IsSet(x, y) { return color.Alpha{255} }
	return color.Alpha{0}
}

// Returns whether the pixel at the given coordinates is set.
// Coordinates outside the view are never set.
func (self *Bits) IsSet(x, y int) bool {
	if !image.Pt(x, y).In(self.Rect) { return false }
	x, y = x - self.Rect.Min.X, y - self.Rect.Min.Y
	return self.Pix[y*self.Stride + (x >> 3)] & (0x80 >> uint(x & 0b111)) != 0
}
