package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// newTestGame returns a reset game with no terminal attached.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(Classic, config.DefaultSnakeConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// steer points the snake and parks the apple out of the way.
func steer(g *Game, dir core.Direction, apple core.Cell) {
	g.snake.direction = dir
	g.apple.cell = apple
}

func TestResetPlacesEntities(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t, seed)

		if g.snake.Head() != (core.Cell{X: 16, Y: 12}) {
			t.Fatalf("seed %d: snake should start at (16, 12), got %v", seed, g.snake.Head())
		}
		if g.snake.Length() != 1 {
			t.Fatalf("seed %d: Length() = %d, expected 1", seed, g.snake.Length())
		}
		if g.snake.Occupies(g.apple.Cell()) {
			t.Fatalf("seed %d: apple starts on the snake at %v", seed, g.apple.Cell())
		}
		if !g.grid.Contains(g.apple.Cell()) {
			t.Fatalf("seed %d: apple outside grid at %v", seed, g.apple.Cell())
		}
	}
}

func TestThreeMovesWithoutGrowth(t *testing.T) {
	g := newTestGame(t, 1)
	steer(g, core.DirRight, core.Cell{X: 0, Y: 0})

	expected := []core.Cell{{X: 17, Y: 12}, {X: 18, Y: 12}, {X: 19, Y: 12}}
	for i, want := range expected {
		res := g.Step(core.NewInputFrame())
		if g.snake.Head() != want {
			t.Errorf("tick %d: head = %v, expected %v", i+1, g.snake.Head(), want)
		}
		if res.State.Length != 1 || g.snake.Length() != 1 {
			t.Errorf("tick %d: length = %d/%d, expected 1", i+1, res.State.Length, g.snake.Length())
		}
		if res.Ate || res.Collided {
			t.Errorf("tick %d: unexpected event %+v", i+1, res)
		}
	}
}

func TestEatingGrowsAndRelocates(t *testing.T) {
	g := newTestGame(t, 2)
	steer(g, core.DirRight, core.Cell{X: 17, Y: 12})

	res := g.Step(core.NewInputFrame())

	if !res.Ate {
		t.Fatal("snake should eat the apple in front of it")
	}
	if g.snake.Length() != 2 {
		t.Errorf("Length() = %d, expected 2", g.snake.Length())
	}
	if g.snake.Len() != 1 {
		t.Errorf("Len() = %d, growth should show on the next move", g.snake.Len())
	}
	for _, c := range g.snake.Body() {
		if c == g.apple.Cell() {
			t.Errorf("apple relocated onto the snake at %v", c)
		}
	}

	g.apple.cell = core.Cell{X: 0, Y: 0}
	g.Step(core.NewInputFrame())
	if g.snake.Len() != 2 {
		t.Errorf("Len() = %d after the following move, expected 2", g.snake.Len())
	}
}

func TestSelfCollisionResets(t *testing.T) {
	g := newTestGame(t, 3)
	// Head (5,5) moving right runs into (6,5), a body cell that is not the tail.
	g.snake.body = []core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
	g.snake.length = 5
	steer(g, core.DirRight, core.Cell{X: 20, Y: 20})

	res := g.Step(core.NewInputFrame())

	if !res.Collided {
		t.Fatal("Step should report the collision")
	}
	if g.snake.Len() != 1 || g.snake.Length() != 1 {
		t.Errorf("after reset: Len() = %d, Length() = %d, expected 1 and 1", g.snake.Len(), g.snake.Length())
	}
	if g.snake.Head() != g.grid.Center() {
		t.Errorf("after reset: head = %v, expected centre", g.snake.Head())
	}
	if res.State.Resets != 1 {
		t.Errorf("Resets = %d, expected 1", res.State.Resets)
	}
	if g.apple.Cell() != (core.Cell{X: 20, Y: 20}) {
		t.Errorf("apple should stay put, moved to %v", g.apple.Cell())
	}
	if res.State.Best != 1 {
		t.Errorf("Best = %d, expected 1 (manual body does not count)", res.State.Best)
	}
}

func TestMovingOntoTailIsNotCollision(t *testing.T) {
	g := newTestGame(t, 4)
	g.snake.body = []core.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	g.snake.length = 4
	steer(g, core.DirLeft, core.Cell{X: 20, Y: 20})

	res := g.Step(core.NewInputFrame())

	if res.Collided {
		t.Fatal("chasing the tail must not count as a collision")
	}
	if g.snake.Head() != (core.Cell{X: 0, Y: 0}) || g.snake.Len() != 4 {
		t.Errorf("head = %v len = %d, expected (0, 0) and 4", g.snake.Head(), g.snake.Len())
	}
}

func TestCollisionRelocatesAppleOnCentre(t *testing.T) {
	g := newTestGame(t, 5)
	g.snake.body = []core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
	g.snake.length = 5
	steer(g, core.DirRight, g.grid.Center())

	g.Step(core.NewInputFrame())

	if g.apple.Cell() == g.grid.Center() {
		t.Error("apple should leave the cell the reset snake occupies")
	}
}

func TestInputOrderAndReversal(t *testing.T) {
	g := newTestGame(t, 6)
	steer(g, core.DirRight, core.Cell{X: 0, Y: 0})

	frame := core.NewInputFrame()
	frame.Set(core.ActionUp)
	frame.Set(core.ActionLeft) // Opposite of committed right: ignored
	g.Step(frame)

	if g.snake.Direction() != core.DirUp {
		t.Errorf("Direction() = %v, expected up", g.snake.Direction())
	}
	if g.snake.Head() != (core.Cell{X: 16, Y: 11}) {
		t.Errorf("head = %v, expected (16, 11)", g.snake.Head())
	}

	frame.Clear()
	frame.Set(core.ActionDown) // Opposite of committed up
	g.Step(frame)
	if g.snake.Direction() != core.DirUp {
		t.Errorf("reversal accepted: Direction() = %v", g.snake.Direction())
	}
}

func TestPauseStopsMovement(t *testing.T) {
	g := newTestGame(t, 7)
	steer(g, core.DirRight, core.Cell{X: 0, Y: 0})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	head := g.snake.Head()
	g.Step(core.NewInputFrame())
	if g.snake.Head() != head {
		t.Error("snake moved while paused")
	}

	g.Step(pause)
	if g.snake.Head() == head {
		t.Error("snake should move again after unpausing")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 8)
	steer(g, core.DirRight, core.Cell{X: 0, Y: 0})
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	g.Step(frame)

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Resets != 0 || snap.Head != g.grid.Center() {
		t.Errorf("restart did not reset state: %+v", snap)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		input := core.NewInputFrame()
		for i := 0; i < 300; i++ {
			input.Clear()
			switch i % 37 {
			case 5:
				input.Set(core.ActionDown)
			case 17:
				input.Set(core.ActionLeft)
			case 29:
				input.Set(core.ActionUp)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Tick != 300 {
		t.Errorf("Tick = %d, expected 300", snap1.Tick)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	g := newTestGame(t, 42)
	input := core.NewInputFrame()
	dirs := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

	for i := 0; i < 5000; i++ {
		input.Clear()
		if g.rng.Intn(3) == 0 {
			input.Set(dirs[g.rng.Intn(len(dirs))])
		}
		g.Step(input)

		if g.snake.Len() < 1 || g.snake.Len() > g.snake.Length() {
			t.Fatalf("tick %d: Len() = %d outside [1, %d]", i, g.snake.Len(), g.snake.Length())
		}
		seen := make(map[core.Cell]bool)
		for _, c := range g.snake.Body() {
			if seen[c] {
				t.Fatalf("tick %d: duplicate segment %v", i, c)
			}
			seen[c] = true
		}
		if seen[g.apple.Cell()] {
			t.Fatalf("tick %d: apple on the snake at %v", i, g.apple.Cell())
		}
	}
}

func TestRenderDrawsField(t *testing.T) {
	g := NewWithConfig(Classic, config.DefaultSnakeConfig(), nil)
	cfg := core.RuntimeConfig{Seed: 444, ScreenW: 80, ScreenH: 30}
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Snake") {
		t.Errorf("HUD should contain 'Snake', got %q", screen.Row(0))
	}

	// 32 cells of 2 columns centred in 80 columns, below HUD and frame.
	offsetX, offsetY := (80-64)/2, 2
	at := func(c core.Cell) core.ScreenCell {
		return screen.GetCell(offsetX+c.X*core.CellWidth, offsetY+c.Y)
	}

	pal := core.DefaultPalette()
	if got := at(g.snake.Head()); got.BG != pal.Snake {
		t.Errorf("snake head colour = %v, expected %v", got.BG, pal.Snake)
	}
	if got := at(g.apple.Cell()); got.BG != pal.Apple {
		t.Errorf("apple colour = %v, expected %v", got.BG, pal.Apple)
	}
	if screen.Get(offsetX-1, offsetY-1) != '┌' {
		t.Errorf("field frame missing, got %q", screen.Get(offsetX-1, offsetY-1))
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := NewWithConfig(Classic, config.DefaultSnakeConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 40, ScreenH: 10})

	res := g.Step(core.NewInputFrame())
	if !res.State.TooSmall {
		t.Fatal("game should detect window is too small")
	}
	if g.Snapshot().Tick != 0 {
		t.Error("game should not advance while the window is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected paused_small_window", g.Snapshot().State)
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small overlay missing")
	}

	g.Resize(80, 30)
	if g.State().TooSmall {
		t.Error("Resize to a larger terminal should clear the flag")
	}
}

func TestVariants(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	classic := NewWithConfig(Classic, cfg, nil)
	if classic.ID() != "snake" || classic.Title() != "Snake" {
		t.Errorf("classic = %s/%s", classic.ID(), classic.Title())
	}
	if classic.TickRate() != 20 {
		t.Errorf("classic TickRate() = %d, expected 20", classic.TickRate())
	}

	relaxed := NewWithConfig(Relaxed, cfg, nil)
	if relaxed.ID() != "snake_relaxed" {
		t.Errorf("relaxed ID = %s", relaxed.ID())
	}
	if relaxed.TickRate() != 10 {
		t.Errorf("relaxed TickRate() = %d, expected 10", relaxed.TickRate())
	}
}

func TestBadPaletteFallsBack(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Colors.Apple = "not-a-colour"

	g := NewWithConfig(Classic, cfg, nil)
	if g.Palette() != core.DefaultPalette() {
		t.Errorf("Palette() = %+v, expected defaults", g.Palette())
	}
}

func TestVariantByID(t *testing.T) {
	for _, v := range Variants {
		got, ok := VariantByID(v.ID)
		if !ok || got != v {
			t.Errorf("VariantByID(%q) = %+v, %v", v.ID, got, ok)
		}
	}
	if _, ok := VariantByID("tetris"); ok {
		t.Error("VariantByID should reject unknown IDs")
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q is not registered", v.ID)
		}
	}
}

func TestDrawPaintsAppleLast(t *testing.T) {
	g := newTestGame(t, 9)
	steer(g, core.DirRight, core.Cell{X: 0, Y: 0})
	g.Step(core.NewInputFrame())

	// Put the apple where the tail was just erased.
	vacated, ok := g.snake.Vacated()
	if !ok {
		t.Fatal("a length-1 snake vacates its previous cell on every move")
	}
	g.apple.cell = vacated

	var last core.Cell
	var lastCol core.Color
	g.Draw(core.CanvasFunc(func(c core.Cell, col core.Color) {
		last, lastCol = c, col
	}))
	if last != vacated || lastCol != g.Palette().Apple {
		t.Errorf("last draw = %v %v, expected apple at %v", last, lastCol, vacated)
	}
}
