package builder

import "fmt"

const brokenCode = "broken code"

func checkUint8(field string, value int) error {
	if value >= 0 && value <= 255 { return nil }
	return fmt.Errorf("%w: %s = %d", ErrFieldOverflow, field, value)
}
