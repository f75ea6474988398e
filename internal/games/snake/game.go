// Package snake implements Snake on a wrap-around field: the snake grows by
// eating apples and collapses back to a single cell when it bites itself.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Layout of the terminal rendering.
const (
	hudHeight = 1 // Status line above the field
	boxMargin = 1 // Frame around the field
)

// Variant describes one registered flavour of the game.
type Variant struct {
	ID       string
	Title    string
	TickRate int // 0 means use the configured tick rate
}

// Registered variants. The relaxed one runs at half speed.
var (
	Classic = Variant{ID: "snake", Title: "Snake"}
	Relaxed = Variant{ID: "snake_relaxed", Title: "Snake (Relaxed)", TickRate: 10}
)

// Variants lists every registered variant.
var Variants = []Variant{Classic, Relaxed}

// VariantByID looks up a variant by its registry ID.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Package-level settings used by registry factories.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultSnakeConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.SnakeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game holds the snake, the apple and the tick orchestration between them.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	palette core.Palette
	log     *log.Logger

	rng   *rand.Rand
	grid  core.Grid
	snake *Snake
	apple *Apple

	tick   uint64
	best   int
	resets int
	eaten  int
	paused bool

	// Terminal layout
	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a game for variant using the package-level settings.
func New(v Variant) *Game {
	settingsMu.RLock()
	cfg, l := settings, logger
	settingsMu.RUnlock()
	return NewWithConfig(v, cfg, l)
}

// NewWithConfig creates a game with explicit settings. A nil logger discards
// output. An unparsable palette falls back to the default colours.
func NewWithConfig(v Variant, cfg config.SnakeConfig, l *log.Logger) *Game {
	if l == nil {
		l = log.New(io.Discard)
	}
	palette, err := cfg.Palette()
	if err != nil {
		l.Warn("using default colours", "error", err)
		palette = core.DefaultPalette()
	}
	return &Game{
		variant: v,
		cfg:     cfg,
		palette: palette,
		log:     l.With("game", v.ID),
		grid:    cfg.Grid(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// TickRate returns the moves per second for this variant.
func (g *Game) TickRate() int {
	if g.variant.TickRate > 0 {
		return g.variant.TickRate
	}
	return g.cfg.TickRate
}

// Grid returns the playfield.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Palette returns the colours in use.
func (g *Game) Palette() core.Palette {
	return g.palette
}

// CellSize returns the configured pixel size of a cell.
func (g *Game) CellSize() int {
	return g.cfg.Field.CellSize
}

// Snake returns the snake entity.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple entity.
func (g *Game) Apple() *Apple {
	return g.apple
}

// Reset starts a new game: one-cell snake at the centre heading a random
// way, apple on a random free cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.best = 1
	g.resets = 0
	g.eaten = 0
	g.paused = false

	g.snake = NewSnake(g.grid, g.randomDirection(), g.palette.Snake, g.palette.Background)
	g.apple = NewApple(g.palette.Apple)
	g.apple.Relocate(g.rng, g.grid, []core.Cell{g.snake.Head()})

	g.layout(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("game reset", "seed", cfg.Seed, "direction", g.snake.Direction(), "apple", g.apple.Cell())
}

// Resize recomputes the terminal layout without touching game state.
func (g *Game) Resize(screenW, screenH int) {
	g.layout(screenW, screenH)
}

// layout centres the field on the terminal. A zero size means there is no
// terminal (windowed or headless frontends) and never counts as too small.
func (g *Game) layout(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if screenW == 0 && screenH == 0 {
		g.tooSmall = false
		return
	}

	fieldW := g.grid.W * core.CellWidth
	requiredW := fieldW + 2*boxMargin
	requiredH := g.grid.H + hudHeight + 2*boxMargin
	g.tooSmall = screenW < requiredW || screenH < requiredH

	g.offsetX = (screenW - fieldW) / 2
	g.offsetY = hudHeight + boxMargin
}

func (g *Game) randomDirection() core.Direction {
	return core.Directions[g.rng.Intn(len(core.Directions))]
}

// Step advances the game by one tick: queue the drained direction presses,
// commit, then either reset on self-collision or move and eat.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	for _, d := range input.Directions() {
		g.snake.SetPendingDirection(d)
	}
	g.snake.CommitDirection()

	newHead := g.snake.NextHead()
	if g.snake.WillCollide(newHead) {
		g.collide(newHead)
		return core.StepResult{State: g.State(), Collided: true}
	}

	g.snake.Move()
	g.best = core.Max(g.best, g.snake.Len())

	ate := false
	if g.snake.Head() == g.apple.Cell() {
		ate = true
		g.eaten++
		g.snake.Grow()
		g.apple.Relocate(g.rng, g.grid, g.snake.Body())
		g.log.Debug("apple eaten", "tick", g.tick, "length", g.snake.Length(), "apple", g.apple.Cell())
	}

	return core.StepResult{State: g.State(), Ate: ate}
}

// collide resets the snake in place. The apple only moves if the fresh
// snake landed on it.
func (g *Game) collide(at core.Cell) {
	g.resets++
	g.log.Debug("self collision", "tick", g.tick, "cell", at, "length", g.snake.Len())

	g.snake.Reset(g.randomDirection())
	if g.snake.Occupies(g.apple.Cell()) {
		g.apple.Relocate(g.rng, g.grid, g.snake.Body())
	}
}

// Draw paints the snake and the apple onto any canvas. The apple goes last
// because it may have been relocated onto the cell the snake just vacated.
func (g *Game) Draw(dst core.Canvas) {
	for _, d := range g.Drawables() {
		d.Draw(dst)
	}
}

// Drawables returns the entities in paint order.
func (g *Game) Drawables() []core.Drawable {
	return []core.Drawable{g.snake, g.apple}
}

// Render draws the game to a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	canvas := core.NewCellCanvas(dst, g.grid, g.offsetX, g.offsetY, g.palette.Border)
	field := canvas.Bounds()
	dst.DrawBox(core.NewRect(field.X-boxMargin, field.Y-boxMargin, field.W+2*boxMargin, field.H+2*boxMargin))
	canvas.Fill(g.palette.Background)
	for _, d := range g.Drawables() {
		d.Draw(canvas)
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Length: %d  Best: %d  Resets: %d", g.Title(), g.snake.Len(), g.best, g.resets)
	dst.DrawText(0, 0, hud)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ')
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Length:   g.snake.Len(),
		Best:     g.best,
		Resets:   g.resets,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
}
