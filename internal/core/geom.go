// Package core provides fundamental types and utilities shared by the game
// and its frontends. It has no dependency on Bubble Tea or ebiten so that
// game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in play-field units, used for game entities
// and collision detection.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap.
// All four comparisons are strict: rectangles that only share an edge
// do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// CellRect is a rectangle on the character grid.
type CellRect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewCellRect creates a new grid rectangle.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scale maps field-unit rectangles onto the character grid.
// sx and sy are cells per field unit.
func (r Rect) Scale(sx, sy float64) CellRect {
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	// Anything with a positive size occupies at least one cell.
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
