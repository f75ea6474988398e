package core

// Canvas is the drawing primitive a frontend offers the game: one
// grid-aligned filled square with the canvas's fixed border colour.
type Canvas interface {
	DrawCell(c Cell, col Color)
}

// Drawable is anything that can paint itself onto a Canvas.
type Drawable interface {
	Draw(dst Canvas)
}

// CanvasFunc adapts a plain function to the Canvas interface.
type CanvasFunc func(c Cell, col Color)

// DrawCell calls f(c, col).
func (f CanvasFunc) DrawCell(c Cell, col Color) {
	f(c, col)
}

// CellWidth is the number of terminal columns one grid cell occupies.
// Two columns make a cell look roughly square in most fonts.
const CellWidth = 2

// CellCanvas draws grid cells onto a character Screen. Every cell becomes a
// two-character glyph whose outer edges carry the border colour.
type CellCanvas struct {
	screen  *Screen
	grid    Grid
	offsetX int
	offsetY int
	border  Color
}

// NewCellCanvas creates a canvas that places the grid's top-left cell at
// (offsetX, offsetY) on the screen.
func NewCellCanvas(screen *Screen, grid Grid, offsetX, offsetY int, border Color) *CellCanvas {
	return &CellCanvas{
		screen:  screen,
		grid:    grid,
		offsetX: offsetX,
		offsetY: offsetY,
		border:  border,
	}
}

// Bounds returns the screen area covered by the grid.
func (c *CellCanvas) Bounds() Rect {
	return NewRect(c.offsetX, c.offsetY, c.grid.W*CellWidth, c.grid.H)
}

// DrawCell paints cell with the given fill colour. Cells outside the grid are
// ignored.
func (c *CellCanvas) DrawCell(cell Cell, col Color) {
	if !c.grid.Contains(cell) {
		return
	}
	x := c.offsetX + cell.X*CellWidth
	y := c.offsetY + cell.Y
	c.screen.SetStyled(x, y, '▏', c.border, col)
	c.screen.SetStyled(x+1, y, '▕', c.border, col)
}

// Fill paints every cell of the grid with a plain background colour.
func (c *CellCanvas) Fill(col Color) {
	b := c.Bounds()
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			c.screen.SetStyled(x, y, ' ', col, col)
		}
	}
}
