// Package core provides the geometry and colour primitives shared by the icon
// renderer, the preview and the verifier. It has no third-party dependencies
// so rendering stays pure and testable.
package core

import "image"

// Point is a (column, row) coordinate on the icon grid.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned pixel rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle shares at least one pixel with another.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the pixel (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Image converts the rectangle to an image.Rectangle (max corner exclusive).
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// Shrink trims n pixels from the right and bottom edges. Width and height
// never go below zero.
func (r Rect) Shrink(n int) Rect {
	return Rect{X: r.X, Y: r.Y, W: Max(r.W-n, 0), H: Max(r.H-n, 0)}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
