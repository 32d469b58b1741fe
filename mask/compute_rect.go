package mask

import "image"
import "math/bits"

// Computes the tight bounding box of the set bits in the given rows.
// Each row is a 64-bit mask with the leftmost pixel in the MSB, so
// x = 0 corresponds to bit 63. Returns an empty rectangle if no bit
// is set at all.
func ComputeRect(rows []uint64) image.Rectangle {
	minX, maxX := 64, 0
	minY, maxY := len(rows), -1
	for y, row := range rows {
		if row == 0 { continue }
		if y < minY { minY = y }
		maxY = y
		minX = min(minX, bits.LeadingZeros64(row))
		maxX = max(maxX, 64 - bits.TrailingZeros64(row))
	}

	if maxY < 0 { return image.Rectangle{} }
	return image.Rect(minX, minY, maxX, maxY + 1)
}
