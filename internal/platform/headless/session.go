// Package headless provides a game session with no display: an autopilot
// that presses random directions and stops after a fixed number of ticks.
package headless

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session is a scripted collaborator for the game loop. It is not safe for
// concurrent use.
type Session struct {
	rng      *rand.Rand
	maxTicks int
	turnRate float64
	realtime bool

	ticks int
	draws int
	last  map[core.Cell]core.Color
}

// Option configures a Session.
type Option func(*Session)

// WithTurnRate sets the chance per tick of pressing a random direction.
func WithTurnRate(p float64) Option {
	return func(s *Session) { s.turnRate = p }
}

// WithRealtime makes WaitNextTick sleep for one tick interval.
func WithRealtime() Option {
	return func(s *Session) { s.realtime = true }
}

// New creates a session that quits after maxTicks ticks.
func New(seed int64, maxTicks int, opts ...Option) *Session {
	s := &Session{
		rng:      rand.New(rand.NewSource(seed)),
		maxTicks: maxTicks,
		turnRate: 0.2,
		last:     make(map[core.Cell]core.Color),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PollEvents returns at most one random direction press, or a quit once the
// tick budget is spent.
func (s *Session) PollEvents() []core.Event {
	if s.ticks >= s.maxTicks {
		return []core.Event{core.QuitEvent()}
	}
	if s.rng.Float64() >= s.turnRate {
		return nil
	}
	d := core.Directions[s.rng.Intn(len(core.Directions))]
	return []core.Event{core.KeyEvent(d)}
}

// DrawCell records the latest colour drawn at each cell.
func (s *Session) DrawCell(c core.Cell, col core.Color) {
	s.draws++
	s.last[c] = col
}

// WaitNextTick counts the tick and optionally sleeps for its duration.
func (s *Session) WaitNextTick(tps int) {
	s.ticks++
	if s.realtime && tps > 0 {
		time.Sleep(time.Second / time.Duration(tps))
	}
}

// Ticks returns the number of completed ticks.
func (s *Session) Ticks() int {
	return s.ticks
}

// Draws returns the total number of DrawCell calls.
func (s *Session) Draws() int {
	return s.draws
}

// ColorAt returns the last colour drawn at c.
func (s *Session) ColorAt(c core.Cell) (core.Color, bool) {
	col, ok := s.last[c]
	return col, ok
}
