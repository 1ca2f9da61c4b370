// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidTiming is returned when the tick interval is not positive.
var ErrInvalidTiming = errors.New("tick interval must be positive")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Start     StartConfig     `yaml:"start"`
	Timing    TimingConfig    `yaml:"timing"`
	Seed      int64           `yaml:"seed"`
}

// PlayfieldConfig defines the rendering surface the grid is derived from.
type PlayfieldConfig struct {
	CellSize int `yaml:"cell_size"` // Pixels per grid cell
	Width    int `yaml:"width"`     // Pixels
	Height   int `yaml:"height"`    // Pixels
}

// StartConfig is the cell the snake spawns on.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig controls the clock.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// TickInterval returns the configured time between ticks.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// Options converts the config into game construction options.
// The caller supplies the randomness source.
func (c SnakeConfig) Options(rng snake.Rand) snake.Options {
	return snake.Options{
		CellSize:    c.Playfield.CellSize,
		PixelWidth:  c.Playfield.Width,
		PixelHeight: c.Playfield.Height,
		Start:       snake.Point{X: c.Start.X, Y: c.Start.Y},
		Rand:        rng,
	}
}

// Runtime builds the host runtime config for a screen of the given size.
func (c SnakeConfig) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      screenW,
		ScreenH:      screenH,
		TickInterval: c.TickInterval(),
		Seed:         c.Seed,
	}
}

// Validate checks the config eagerly so bad playfields fail at load time
// rather than inside the game loop.
func (c SnakeConfig) Validate() error {
	if c.Timing.TickIntervalMS <= 0 {
		return fmt.Errorf("config: tick_interval_ms %d: %w", c.Timing.TickIntervalMS, ErrInvalidTiming)
	}
	// Build a throwaway game to reuse the grid and start cell checks
	if _, err := snake.New(c.Options(fixedRand{})); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// fixedRand always returns zero; enough for validation.
type fixedRand struct{}

func (fixedRand) Intn(int) int { return 0 }
