//go:build !ebiten

package window

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestRunWithoutTag(t *testing.T) {
	g := snake.NewWithConfig(snake.Classic, config.DefaultSnakeConfig(), nil)
	if err := Run(g, Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() error = %v, expected ErrUnavailable", err)
	}
}
