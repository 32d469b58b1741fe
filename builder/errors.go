package builder

import "errors"
import "strconv"

var (
	ErrNoBands           = errors.New("sheet contains no band marker rows")
	ErrMissingBaseline   = errors.New("band has no baseline row")
	ErrAmbiguousBaseline = errors.New("band has more than one baseline row")
	ErrCellTooWide       = errors.New("glyph cell wider than 64 pixels")
	ErrNoGlyphs          = errors.New("sheet contains no glyph cells")
	ErrAmbiguousOffset   = errors.New("can't infer first codepoint from blank glyph pattern")
	ErrFieldOverflow     = errors.New("value doesn't fit its font field")
	ErrKerningRange      = errors.New("kerning pairs are limited to codepoints 0x00 - 0xFF")
	ErrReplacementIndex  = errors.New("replacement glyph index out of range")
)

// Wraps sheet format errors with the location where they were
// detected. Column is the sheet x coordinate, or -1 when the error
// concerns the whole band.
type SheetError struct {
	Band int
	Column int
	Err error
}

func (self *SheetError) Error() string {
	str := "band " + strconv.Itoa(self.Band)
	if self.Column >= 0 {
		str += ", column " + strconv.Itoa(self.Column)
	}
	return str + ": " + self.Err.Error()
}

func (self *SheetError) Unwrap() error { return self.Err }
