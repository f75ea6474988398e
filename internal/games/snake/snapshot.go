package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and the sim command.
type Snapshot struct {
	Tick     uint64         `yaml:"tick"`
	Variant  string         `yaml:"variant"`
	Head     core.Cell      `yaml:"head"`
	Dir      core.Direction `yaml:"direction"`
	SnakeLen int            `yaml:"snake_len"`
	Length   int            `yaml:"length"`
	Best     int            `yaml:"best"`
	Apple    core.Cell      `yaml:"apple"`
	Eaten    int            `yaml:"eaten"`
	Resets   int            `yaml:"resets"`
	State    GameStateType  `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Variant:  g.variant.ID,
		Head:     g.snake.Head(),
		Dir:      g.snake.Direction(),
		SnakeLen: g.snake.Len(),
		Length:   g.snake.Length(),
		Best:     g.best,
		Apple:    g.apple.Cell(),
		Eaten:    g.eaten,
		Resets:   g.resets,
		State:    state,
	}
}
