package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a window sized to the configured field (640x480 by default).

Requires a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/snake

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart
  Q/Esc        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	v, err := variantArg(args)
	if err != nil {
		return err
	}

	err = window.Run(snake.New(v), window.Options{
		Seed:     seed(),
		TickRate: flagFPS,
		Logger:   logger,
	})
	if errors.Is(err, window.ErrUnavailable) {
		return fmt.Errorf("%w; rebuild with -tags ebiten or use 'snake play'", err)
	}
	return err
}
