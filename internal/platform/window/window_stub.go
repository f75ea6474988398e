//go:build !ebiten

package window

import "github.com/vovakirdan/tui-snake/internal/games/snake"

// Run always fails in builds without the ebiten tag.
func Run(*snake.Game, Options) error {
	return ErrUnavailable
}
