// Package window shows the game in a desktop window. The real frontend needs
// the ebiten build tag; without it Run reports ErrUnavailable.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: desktop window requires building with -tags ebiten")

// Options configures the window frontend.
type Options struct {
	// Seed for the game's random source.
	Seed int64

	// TickRate overrides the variant's tick rate when positive.
	TickRate int

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger
}
