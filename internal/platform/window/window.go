//go:build ebiten

package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// keyDirections maps steering keys to directions.
var keyDirections = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowUp:    core.DirUp,
	ebiten.KeyW:          core.DirUp,
	ebiten.KeyArrowDown:  core.DirDown,
	ebiten.KeyS:          core.DirDown,
	ebiten.KeyArrowLeft:  core.DirLeft,
	ebiten.KeyA:          core.DirLeft,
	ebiten.KeyArrowRight: core.DirRight,
	ebiten.KeyD:          core.DirRight,
}

var (
	_ ebiten.Game   = (*Window)(nil)
	_ snake.Session = (*Window)(nil)
)

// Window adapts a snake game to the ebiten.Game interface. Ebiten calls
// Update at the game's tick rate, so every Update is exactly one tick.
type Window struct {
	game     *snake.Game
	cellSize int
	tps      int
	log      *log.Logger

	target *ebiten.Image
	keys   []ebiten.Key
}

// New constructs a Window around a game that has already been reset.
func New(game *snake.Game, tps int, logger *log.Logger) *Window {
	if tps <= 0 {
		tps = game.TickRate()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:     game,
		cellSize: game.CellSize(),
		tps:      tps,
		log:      logger,
	}
}

// PollEvents drains the keys pressed since the previous tick.
func (w *Window) PollEvents() []core.Event {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])

	var events []core.Event
	for _, k := range w.keys {
		if k == ebiten.KeyQ || k == ebiten.KeyEscape {
			events = append(events, core.QuitEvent())
			continue
		}
		if d, ok := keyDirections[k]; ok {
			events = append(events, core.KeyEvent(d))
		}
	}
	return events
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	events := w.PollEvents()
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			w.log.Info("window closed", "snapshot", w.game.Snapshot())
			return ebiten.Termination
		}
	}

	frame := core.FrameFromEvents(events)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}

	if res := w.game.Step(frame); res.Collided {
		w.log.Debug("snake reset", "resets", res.State.Resets)
	}
	return nil
}

// Draw repaints the whole field. Ebiten clears the screen every frame, so
// the background is filled before the entities.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.game.Palette().Background.RGBA())
	w.target = screen
	w.game.Draw(w)
	w.target = nil
}

// DrawCell draws one filled square with a one pixel border.
func (w *Window) DrawCell(c core.Cell, col core.Color) {
	if w.target == nil {
		return
	}
	r := w.game.Grid().PixelRect(c, w.cellSize)
	x, y := float32(r.X), float32(r.Y)
	size := float32(r.W)

	vector.DrawFilledRect(w.target, x, y, size, size, col.RGBA(), false)
	vector.StrokeRect(w.target, x, y, size, size, 1, w.game.Palette().Border.RGBA(), false)
}

// WaitNextTick is a no-op: ebiten paces Update itself.
func (w *Window) WaitNextTick(int) {}

// Layout returns the logical screen size.
func (w *Window) Layout(int, int) (int, int) {
	g := w.game.Grid()
	return g.W * w.cellSize, g.H * w.cellSize
}

// Run opens the window and blocks until it is closed.
func Run(game *snake.Game, opts Options) error {
	game.Reset(core.RuntimeConfig{Seed: opts.Seed})

	w := New(game, opts.TickRate, opts.Logger)
	width, height := w.Layout(0, 0)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(w.tps)

	w.log.Info("window opened", "game", game.ID(), "size", [2]int{width, height}, "tps", w.tps)
	return ebiten.RunGame(w)
}
