package headless

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestSessionQuitsAfterBudget(t *testing.T) {
	s := New(1, 3)
	for i := 0; i < 3; i++ {
		for _, ev := range s.PollEvents() {
			if ev.Kind == core.EventQuit {
				t.Fatalf("tick %d: quit before budget", i)
			}
		}
		s.WaitNextTick(1000)
	}

	events := s.PollEvents()
	if len(events) != 1 || events[0].Kind != core.EventQuit {
		t.Errorf("PollEvents() = %v, expected a single quit", events)
	}
}

func TestSessionTurnRate(t *testing.T) {
	never := New(2, 100, WithTurnRate(0))
	always := New(2, 100, WithTurnRate(1))
	for i := 0; i < 100; i++ {
		if len(never.PollEvents()) != 0 {
			t.Fatal("turn rate 0 should never press a key")
		}
		if len(always.PollEvents()) != 1 {
			t.Fatal("turn rate 1 should press a key every tick")
		}
	}
}

func TestRunWithSession(t *testing.T) {
	run := func() (snake.Snapshot, *Session) {
		g := snake.NewWithConfig(snake.Classic, config.DefaultSnakeConfig(), nil)
		g.Reset(core.RuntimeConfig{Seed: 77})
		s := New(77, 500)
		if err := snake.Run(context.Background(), g, s); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return g.Snapshot(), s
	}

	snap, s := run()
	if s.Ticks() != 500 || snap.Tick != 500 {
		t.Errorf("ticks = %d/%d, expected 500", s.Ticks(), snap.Tick)
	}
	if s.Draws() < 1000 {
		t.Errorf("Draws() = %d, expected at least apple and head each tick", s.Draws())
	}
	if col, ok := s.ColorAt(snap.Head); !ok || col != core.DefaultPalette().Snake {
		t.Errorf("head colour = %v, %v", col, ok)
	}
	if col, ok := s.ColorAt(snap.Apple); !ok || col != core.DefaultPalette().Apple {
		t.Errorf("apple colour = %v, %v", col, ok)
	}

	again, _ := run()
	if again != snap {
		t.Errorf("seeded runs differ:\n%+v\n%+v", snap, again)
	}
}
