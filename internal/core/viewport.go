package core

import "math"

// Glyphs used when drawing field-unit shapes onto the character grid.
const (
	FillGlyph   = '█'
	GroundGlyph = '═'
)

// Viewport projects a play field measured in field units onto a region of
// a Screen. It is the terminal-side drawing surface for the game.
type Viewport struct {
	screen *Screen
	region CellRect
	fieldW float64
	fieldH float64
}

// NewViewport creates a viewport that maps a fieldW x fieldH play field
// onto the given screen region.
func NewViewport(s *Screen, region CellRect, fieldW, fieldH float64) *Viewport {
	return &Viewport{screen: s, region: region, fieldW: fieldW, fieldH: fieldH}
}

// Region returns the screen area covered by the viewport.
func (v *Viewport) Region() CellRect {
	return v.region
}

// SetRegion moves or resizes the viewport on its screen.
func (v *Viewport) SetRegion(r CellRect) {
	v.region = r
}

func (v *Viewport) scale() (float64, float64) {
	if v.fieldW <= 0 || v.fieldH <= 0 {
		return 0, 0
	}
	return float64(v.region.W) / v.fieldW, float64(v.region.H) / v.fieldH
}

// ToField converts a screen cell into field coordinates.
// ok is false when the cell lies outside the viewport.
func (v *Viewport) ToField(x, y int) (fx, fy float64, ok bool) {
	if !v.region.Contains(x, y) {
		return 0, 0, false
	}
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return 0, 0, false
	}
	return float64(x-v.region.X) / sx, float64(y-v.region.Y) / sy, true
}

// Clear blanks the viewport region.
func (v *Viewport) Clear() {
	v.screen.DrawRect(v.region, ' ', ColorDefault)
}

// FillRect draws a solid field-unit rectangle, clipped to the viewport.
func (v *Viewport) FillRect(r Rect, c Color) {
	sx, sy := v.scale()
	cr := r.Scale(sx, sy)

	x0 := max(cr.X, 0)
	y0 := max(cr.Y, 0)
	x1 := min(cr.Right(), v.region.W)
	y1 := min(cr.Bottom(), v.region.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	v.screen.DrawRect(NewCellRect(v.region.X+x0, v.region.Y+y0, x1-x0, y1-y0), FillGlyph, c)
}

// HLine draws a horizontal line at field height y between x0 and x1.
func (v *Viewport) HLine(x0, x1, y float64, c Color) {
	sx, sy := v.scale()
	row := Clamp(int(math.Floor(y*sy)), 0, v.region.H-1)
	c0 := Clamp(int(math.Floor(x0*sx)), 0, v.region.W)
	c1 := Clamp(int(math.Ceil(x1*sx)), 0, v.region.W)
	if c1 <= c0 || v.region.H == 0 {
		return
	}
	v.screen.DrawHLine(v.region.X+c0, v.region.Y+row, c1-c0, GroundGlyph, c)
}

// Text draws a label whose left edge starts at field position (x, y).
// The label is shifted left when it would overflow the viewport.
func (v *Viewport) Text(x, y float64, text string, c Color) {
	sx, sy := v.scale()
	n := len([]rune(text))
	col := Clamp(int(math.Floor(x*sx)), 0, max(v.region.W-n, 0))
	row := Clamp(int(math.Floor(y*sy)), 0, v.region.H-1)
	if v.region.H == 0 {
		return
	}
	v.screen.DrawText(v.region.X+col, v.region.Y+row, text, c)
}
