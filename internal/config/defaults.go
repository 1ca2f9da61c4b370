package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
// It matches defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Playfield: PlayfieldConfig{
			CellSize: 80,
			Width:    1600,
			Height:   960,
		},
		Start: StartConfig{
			X: 5,
			Y: 5,
		},
		Timing: TimingConfig{
			TickIntervalMS: 200,
		},
		Seed: 0,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
