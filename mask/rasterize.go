package mask

import "image"

// Converts a packed glyph bitmap into an alpha mask with its top-left
// pixel at origin. The mask is rowBytes*8 pixels wide.
func Rasterize(bitmap []byte, rowBytes int, origin image.Point) *image.Alpha {
	bits := NewBits(bitmap, rowBytes, origin)
	mask := image.NewAlpha(bits.Rect)
	index := 0
	for y := bits.Rect.Min.Y; y < bits.Rect.Max.Y; y++ {
		for x := bits.Rect.Min.X; x < bits.Rect.Max.X; x++ {
			if bits.IsSet(x, y) { mask.Pix[index] = 255 }
			index += 1
		}
	}
	return mask
}
