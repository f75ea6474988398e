package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			CellSize: 20,
			Width:    32,
			Height:   24,
		},
		TickRate: 20,
		Colors: ColorConfig{
			Apple:      "#ff0000",
			Snake:      "#00ff00",
			Border:     "#5dd8e4",
			Background: "#000000",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
