package snake

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session is the rendering and input collaborator of the game loop. It is
// created once per process (or per remote connection) and owns the drawing
// surface and the tick timer.
type Session interface {
	// PollEvents drains every pending input event without blocking.
	PollEvents() []core.Event

	// DrawCell draws one bordered grid square.
	DrawCell(c core.Cell, col core.Color)

	// WaitNextTick blocks until the next fixed-rate tick boundary.
	WaitNextTick(ticksPerSecond int)
}

// Run drives g until the session reports a quit event or ctx is cancelled.
// Each tick polls input, steps the game, redraws the entities and waits for
// the next boundary. A quit abandons the current tick.
func Run(ctx context.Context, g *Game, s Session) error {
	tps := g.TickRate()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		events := s.PollEvents()
		if hasQuit(events) {
			return nil
		}

		g.Step(core.FrameFromEvents(events))
		g.Draw(s)
		s.WaitNextTick(tps)
	}
}

func hasQuit(events []core.Event) bool {
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			return true
		}
	}
	return false
}
