package core

// Cell is a grid-aligned coordinate, X is the column and Y the row
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell one step along d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// In reports whether the cell lies inside an n×n grid
func (c Cell) In(n int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < n && c.Y < n
}

// Contains reports whether cell is one of cells
// Linear scan; snake bodies are short relative to the grid
func Contains(cells []Cell, cell Cell) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
