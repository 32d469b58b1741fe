package mask

import "image"

// Returns the number of bytes needed to store a row of the given width.
func RowBytes(width int) int {
	return (width + 7) >> 3
}

// Appends the rows within rect to data, packed MSB first, one bit per
// pixel, each row padded to [RowBytes](rect.Dx()) bytes. Rows use the
// same layout as in [ComputeRect]().
func AppendPackedRows(data []byte, rows []uint64, rect image.Rectangle) []byte {
	if rect.Empty() { return data }
	if rect.Min.X < 0 || rect.Max.X > 64 { panic("rect exceeds 64-bit rows") }
	rowBytes := RowBytes(rect.Dx())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := rows[y] << uint(rect.Min.X)
		for i := 0; i < rowBytes; i++ {
			data = append(data, byte(row >> 56))
			row <<= 8
		}
	}
	return data
}
