package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player's body: an ordered list of cells with the head at
// index 0. It grows towards a target length by keeping its tail after a
// move instead of dropping it.
type Snake struct {
	grid       core.Grid
	body       []core.Cell // Head at index 0
	length     int         // Growth target
	direction  core.Direction
	pending    core.Direction
	hasPending bool
	vacated    core.Cell // Tail cell dropped by the last move
	hasVacated bool
	cleared    []core.Cell // Segments dropped by the last reset

	color core.Color // Segment fill
	erase core.Color // Used to paint over the vacated cell
}

// NewSnake creates a snake of length 1 at the centre of grid, heading dir.
func NewSnake(grid core.Grid, dir core.Direction, color, erase core.Color) *Snake {
	s := &Snake{
		grid:  grid,
		color: color,
		erase: erase,
	}
	s.Reset(dir)
	return s
}

// Reset collapses the snake in place to a single cell at the grid centre.
// The segments it gives up are erased by the next Draw.
func (s *Snake) Reset(dir core.Direction) {
	center := s.grid.Center()
	s.cleared = s.cleared[:0]
	for _, seg := range s.body {
		if seg != center {
			s.cleared = append(s.cleared, seg)
		}
	}

	s.body = append(s.body[:0], center)
	s.length = 1
	s.direction = dir
	s.hasPending = false
	s.hasVacated = false
}

// SetPendingDirection queues d for the next move. A request to reverse into
// the committed direction is ignored; queued but uncommitted requests do not
// take part in that check.
func (s *Snake) SetPendingDirection(d core.Direction) {
	if d.IsOpposite(s.direction) {
		return
	}
	s.pending = d
	s.hasPending = true
}

// CommitDirection makes the queued direction current. Called once per tick
// before the move.
func (s *Snake) CommitDirection() {
	if !s.hasPending {
		return
	}
	s.direction = s.pending
	s.hasPending = false
}

// NextHead returns the cell the head would enter on the next move.
func (s *Snake) NextHead() core.Cell {
	return s.grid.Wrap(s.Head(), s.direction)
}

// tailLeaves reports whether the next move drops the tail.
func (s *Snake) tailLeaves() bool {
	return len(s.body) >= s.length
}

// WillCollide reports whether moving the head into newHead hits the body.
// The tail only counts while the snake is still growing: otherwise it leaves
// its cell in the same tick the head arrives.
func (s *Snake) WillCollide(newHead core.Cell) bool {
	check := len(s.body)
	if s.tailLeaves() {
		check--
	}
	for _, seg := range s.body[:check] {
		if seg == newHead {
			return true
		}
	}
	return false
}

// Move advances the head one cell in the committed direction. The tail is
// dropped and remembered as vacated once the body exceeds its length.
func (s *Snake) Move() {
	s.cleared = s.cleared[:0]
	newHead := s.NextHead()
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if len(s.body) > s.length {
		last := len(s.body) - 1
		s.vacated = s.body[last]
		s.hasVacated = true
		s.body = s.body[:last]
		return
	}
	s.hasVacated = false
}

// Grow raises the target length by one; the next move keeps its tail.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of occupied cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Length returns the growth target.
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the committed direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the queued direction, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Vacated returns the tail cell released by the last move, if any.
func (s *Snake) Vacated() (core.Cell, bool) {
	return s.vacated, s.hasVacated
}

// Cleared returns a copy of the segments released by the last reset. It is
// empty once the snake has moved again.
func (s *Snake) Cleared() []core.Cell {
	out := make([]core.Cell, len(s.cleared))
	copy(out, s.cleared)
	return out
}

// Occupies checks if any segment sits on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Draw paints over the cells given up by the last reset or move, then every
// segment.
func (s *Snake) Draw(dst core.Canvas) {
	for _, c := range s.cleared {
		dst.DrawCell(c, s.erase)
	}
	if s.hasVacated {
		dst.DrawCell(s.vacated, s.erase)
	}
	for _, seg := range s.body {
		dst.DrawCell(seg, s.color)
	}
}
