// Package stack provides the core game logic for the single-button
// stack game. This package is UI-agnostic and deterministic: the
// platform feeds it elapsed milliseconds and debounced input events,
// and reads frames back out through the render cycle.
package stack

// Grid is the occupancy model for landed block cells. Cells are stored
// in row-major order: index = row*cols + col. Within a game the grid is
// append-only: a cell once occupied is never cleared except by Reset.
type Grid struct {
	rows, cols  int
	cells       []bool
	stackHeight int // count of fully-processed rows from the bottom
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the logical grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the logical grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// StackHeight returns one plus the highest row index that has ever
// received a placement, or 0 if none.
func (g *Grid) StackHeight() int {
	return g.stackHeight
}

// Reset clears every cell and zeroes the stack height.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = false
	}
	g.stackHeight = 0
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOccupied reports whether the cell is occupied. Out-of-range
// coordinates return false rather than faulting: column ranges computed
// from a moving block may transiently extend past the edges.
func (g *Grid) IsOccupied(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Place marks a cell occupied and raises the stack height watermark
// when the placement tops the current stack. Callers validate
// coordinates; out-of-range placements are ignored.
func (g *Grid) Place(row, col int) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = true
	if row+1 > g.stackHeight {
		g.stackHeight = row + 1
	}
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}
