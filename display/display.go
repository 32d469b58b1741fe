// Package display draws sheet fonts on TinyGo displays, either through
// [sheetfont.Render]() or as a [tinyfont.Fonter].
package display

import "image/color"
import "math"

import "tinygo.org/x/drivers"

import "github.com/tinne26/sheetfont"

// Adapts a [drivers.Displayer] to [sheetfont.Target]. Pixels outside
// the display size are dropped.
type Target struct {
	display drivers.Displayer
	width, height int
}

var _ sheetfont.Target[color.RGBA] = (*Target)(nil)

// The display size is queried once. Create a new target if the
// display is rotated or resized.
func NewTarget(display drivers.Displayer) *Target {
	width, height := display.Size()
	return &Target{ display: display, width: int(width), height: int(height) }
}

func (self *Target) SetPixel(x, y int, pixel color.RGBA) {
	if x < 0 || y < 0 || x >= self.width || y >= self.height { return }
	if x > math.MaxInt16 || y > math.MaxInt16 { return }
	self.display.SetPixel(int16(x), int16(y), pixel)
}

// Draws a line of text with its baseline at the given row, then
// flushes the display. Returns false without drawing anything if the
// baseline is above the font's ascent.
func DrawLine(display drivers.Displayer, font *sheetfont.Font, text string, x, baseline int, clr color.RGBA) (bool, error) {
	top, ok := font.BaselineToTop(baseline)
	if !ok { return false, nil }
	sheetfont.Render[color.RGBA](font, text, x, top, NewTarget(display), clr)
	return true, display.Display()
}
