package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Apple is the single food cell on the field.
type Apple struct {
	cell  core.Cell
	color core.Color
}

// NewApple creates an apple at the origin. Call Relocate before use.
func NewApple(color core.Color) *Apple {
	return &Apple{color: color}
}

// Cell returns the apple's position.
func (a *Apple) Cell() core.Cell {
	return a.cell
}

// Relocate moves the apple to a uniformly random grid cell not listed in
// occupied, sampling until one is free.
//
// If occupied covers the whole grid the loop never ends. A snake filling the
// board is a won game that the rules do not model, so this is left as is.
func (a *Apple) Relocate(rng *rand.Rand, grid core.Grid, occupied []core.Cell) {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	for {
		c := core.Cell{X: rng.Intn(grid.W), Y: rng.Intn(grid.H)}
		if _, ok := taken[c]; !ok {
			a.cell = c
			return
		}
	}
}

// Draw paints the apple.
func (a *Apple) Draw(dst core.Canvas) {
	dst.DrawCell(a.cell, a.color)
}
