// Package icon renders the snake-game icon onto an RGBA canvas.
//
// An icon is a 4x4 grid: a handful of snake segments and one food cell, each
// filled as a solid rectangle. The look (colours, optional background, inset)
// comes from a Style; the geometry comes from core.Grid.
package icon

import (
	"image/color"

	"github.com/vovakirdan/snake-icons/internal/core"
)

// Style describes how an icon is drawn.
type Style struct {
	ID    string
	Title string

	// Background fills the whole canvas before any cell is drawn.
	// Nil leaves the canvas fully transparent.
	Background *color.RGBA

	SnakeColor color.RGBA
	FoodColor  color.RGBA

	// Segments are drawn in order; FoodCell is drawn last.
	Segments []core.Point
	FoodCell core.Point

	// Inset trims this many pixels off the right and bottom of every cell.
	Inset int
}

// DefaultSegments is the snake body shared by the built-in styles.
func DefaultSegments() []core.Point {
	return []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
}

// DefaultFood is the food cell shared by the built-in styles.
var DefaultFood = core.Point{X: 0, Y: 3}

// Classic is the transparent icon with Material green snake and red food.
func Classic() Style {
	return Style{
		ID:         "classic",
		Title:      "Classic (transparent)",
		SnakeColor: core.Green500,
		FoodColor:  core.Red500,
		Segments:   DefaultSegments(),
		FoodCell:   DefaultFood,
	}
}

// Layout returns the pixel rectangles filled for the given canvas side:
// one per segment in order, then the food cell.
func (s Style) Layout(size int) (segments []core.Rect, food core.Rect) {
	g := core.NewGrid(size)
	segments = make([]core.Rect, 0, len(s.Segments))
	for _, p := range s.Segments {
		segments = append(segments, g.CellRect(p).Shrink(s.Inset))
	}
	return segments, g.CellRect(s.FoodCell).Shrink(s.Inset)
}
