package sheetfont

import "image"
import "image/color"
import "image/draw"

// Adapts any [draw.Image] to a per-pixel [Target].
type ImageTarget struct {
	img draw.Image
}

func NewImageTarget(img draw.Image) *ImageTarget {
	return &ImageTarget{ img: img }
}

func (self *ImageTarget) SetPixel(x, y int, pixel color.Color) {
	if !image.Pt(x, y).In(self.img.Bounds()) { return }
	self.img.Set(x, y, pixel)
}

// Adapts an [*image.Gray] to both [Target] and [RowTarget], with
// gray levels as pixel values.
type GrayTarget struct {
	img *image.Gray
}

func NewGrayTarget(img *image.Gray) *GrayTarget {
	return &GrayTarget{ img: img }
}

func (self *GrayTarget) SetPixel(x, y int, pixel uint8) {
	if !image.Pt(x, y).In(self.img.Rect) { return }
	self.img.Pix[self.img.PixOffset(x, y)] = pixel
}

// Rows outside the image or spans starting beyond its sides
// return nil. Spans are clamped on the right edge.
func (self *GrayTarget) Subrow(y, minX, maxX int) []uint8 {
	rect := self.img.Rect
	if y < rect.Min.Y || y >= rect.Max.Y { return nil }
	if minX < rect.Min.X || minX >= rect.Max.X { return nil }
	maxX = min(maxX, rect.Max.X)
	if maxX <= minX { return nil }
	start := self.img.PixOffset(minX, y)
	return self.img.Pix[start : start + (maxX - minX)]
}
