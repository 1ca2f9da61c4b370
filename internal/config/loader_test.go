package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded default %+v differs from DefaultSnakeConfig %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.TickInterval() != 200*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 200ms", cfg.TickInterval())
	}
}

func TestLoadSnakeCustomPathMergesDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "mine.yaml")
	writeFile(t, path, `
playfield:
  cell_size: 40
  width: 400
  height: 200
start:
  x: 1
  y: 1
`)

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Playfield.CellSize != 40 || cfg.Start.X != 1 {
		t.Errorf("Custom values not applied: %+v", cfg)
	}
	if cfg.Timing.TickIntervalMS != 200 {
		t.Errorf("Missing keys should keep defaults, got tick %d", cfg.Timing.TickIntervalMS)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := LoadSnake(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing custom config")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "playfield: [not, a, map")
	if _, err := LoadSnake(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, LocalConfigPath), "seed: 2\n")
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Seed != 2 {
		t.Errorf("Expected local config seed 2, got %d", cfg.Seed)
	}

	// User config takes precedence over the local one
	writeFile(t, filepath.Join(home, ".snake", "configs", "snake.yaml"), "seed: 1\n")
	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Seed != 1 {
		t.Errorf("Expected user config seed 1, got %d", cfg.Seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr error
	}{
		{"defaults", func(*SnakeConfig) {}, nil},
		{"zero tick", func(c *SnakeConfig) { c.Timing.TickIntervalMS = 0 }, ErrInvalidTiming},
		{"zero cell size", func(c *SnakeConfig) { c.Playfield.CellSize = 0 }, snake.ErrInvalidConfiguration},
		{"playfield smaller than a cell", func(c *SnakeConfig) { c.Playfield.Height = 79 }, snake.ErrInvalidConfiguration},
		{"start off the grid", func(c *SnakeConfig) { c.Start.X = 20 }, snake.ErrInvalidConfiguration},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSnakeRejectsInvalidFile(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "tiny.yaml")
	writeFile(t, path, "playfield:\n  cell_size: 100\n  width: 50\n  height: 50\n")

	if _, err := LoadSnake(path); !errors.Is(err, snake.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestOptionsAndRuntime(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Seed = 42

	opts := cfg.Options(nil)
	if opts.CellSize != 80 || opts.PixelWidth != 1600 || opts.PixelHeight != 960 {
		t.Errorf("Unexpected playfield options: %+v", opts)
	}
	if opts.Start != (snake.Point{X: 5, Y: 5}) {
		t.Errorf("Unexpected start: %v", opts.Start)
	}

	rt := cfg.Runtime(100, 30)
	if rt.ScreenW != 100 || rt.ScreenH != 30 || rt.Seed != 42 || rt.TickInterval != 200*time.Millisecond {
		t.Errorf("Unexpected runtime config: %+v", rt)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"cell_size: 80", "tick_interval_ms: 200", "x: 5"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshalled YAML missing %q:\n%s", key, data)
		}
	}
}
