package core

// GridCells is the number of cells along each side of the icon grid.
const GridCells = 4

// Grid divides a square canvas into GridCells x GridCells square cells.
// Cell side uses floor division, so when the canvas side is not a multiple of
// GridCells the high-edge strip belongs to no cell.
type Grid struct {
	Size int // Canvas side in pixels
	Cell int // Cell side in pixels
}

// NewGrid creates the grid for a canvas of the given side.
func NewGrid(size int) Grid {
	if size < 0 {
		size = 0
	}
	return Grid{Size: size, Cell: size / GridCells}
}

// CellRect returns the pixel rectangle covered by grid cell p.
func (g Grid) CellRect(p Point) Rect {
	return NewRect(p.X*g.Cell, p.Y*g.Cell, g.Cell, g.Cell)
}

// Covered returns the pixel extent of all cells, i.e. Cell*GridCells squared.
func (g Grid) Covered() Rect {
	side := g.Cell * GridCells
	return NewRect(0, 0, side, side)
}
