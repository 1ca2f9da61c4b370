// snake is a click-to-steer snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start SSH server for remote play
//	snake web      - Serve the browser version
//	snake config   - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a specific config YAML
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--tick <ms>     - Override the tick interval in milliseconds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagTick   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer with clicks, wrap around the edges",
	Long: `Snake on a wrap-around grid. Click anywhere to turn the snake towards
the pointer, or use the arrow keys. Every food is worth 10 points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the browser version over HTTP
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42 --tick 150
  snake serve --ssh :2222
  snake web --addr :8080
  snake config > ./configs/snake.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("tick") {
		cfg.Timing.TickIntervalMS = flagTick
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
