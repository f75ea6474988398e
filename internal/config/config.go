// Package config provides YAML-based configuration loading for the snake
// game: field size, tick rate and colours.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Field    FieldConfig `yaml:"field"`
	TickRate int         `yaml:"tick_rate"`
	Colors   ColorConfig `yaml:"colors"`
}

// FieldConfig defines the playfield grid.
type FieldConfig struct {
	CellSize int `yaml:"cell_size"` // Pixels per cell in windowed mode
	Width    int `yaml:"width"`     // Cells across
	Height   int `yaml:"height"`    // Cells down
}

// ColorConfig holds the four colours as "#rrggbb" strings.
type ColorConfig struct {
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
	Border     string `yaml:"border"`
	Background string `yaml:"background"`
}

// Validate checks that every value is usable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Field.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("field.cell_size must be positive, got %d", c.Field.CellSize))
	}
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		errs = append(errs, fmt.Errorf("field size must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	case c.Field.Width*c.Field.Height < 2:
		// The snake starts on one cell and the apple needs another.
		errs = append(errs, fmt.Errorf("field size must hold at least 2 cells, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}

// Grid returns the playfield described by the config.
func (c SnakeConfig) Grid() core.Grid {
	return core.NewGrid(c.Field.Width, c.Field.Height)
}

// ScreenSize returns the window size in pixels.
func (c SnakeConfig) ScreenSize() (int, int) {
	return c.Field.Width * c.Field.CellSize, c.Field.Height * c.Field.CellSize
}

// Palette parses the configured colours.
func (c SnakeConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"apple", c.Colors.Apple, &p.Apple},
		{"snake", c.Colors.Snake, &p.Snake},
		{"border", c.Colors.Border, &p.Border},
		{"background", c.Colors.Background, &p.Background},
	}
	for _, f := range fields {
		col, err := parseColor(f.value)
		if err != nil {
			return core.Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// parseColor converts "#rrggbb" (or "#rgb") into a core colour.
func parseColor(s string) (core.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("cannot parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}
