package core

// Cell is a position on the playfield, addressed by column and row.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Grid is the discretized playfield. Movement on it is toroidal: leaving one
// edge re-enters at the opposite one.
type Grid struct {
	W, H int // Size in cells
}

// NewGrid creates a grid of w by h cells.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Wrap moves c one step in direction d, reducing each axis modulo its size.
func (g Grid) Wrap(c Cell, d Direction) Cell {
	next := c.Add(d.Delta())
	return Cell{X: mod(next.X, g.W), Y: mod(next.Y, g.H)}
}

// Center returns the middle cell, rounding towards the top-left.
func (g Grid) Center() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.W * g.H
}

// PixelRect returns the pixel box of c for square cells of cellSize pixels.
func (g Grid) PixelRect(c Cell, cellSize int) Rect {
	return NewRect(c.X*cellSize, c.Y*cellSize, cellSize, cellSize)
}
