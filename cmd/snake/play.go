package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Click        - Turn towards the pointer (restart after game over)
  Arrows/WASD  - Turn (no direct reversal)
  X            - Give up
  Space/R      - Restart (after game over)
  P            - Pause
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --tick 120
  snake play --log-file ./snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logFile *os.File
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		out = logFile
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})

	rt := cfg.Runtime(width, height)
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Config was validated by loadConfig
	game, err := snake.New(cfg.Options(rand.New(rand.NewSource(seed))))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game started", "grid", fmt.Sprintf("%dx%d", game.Grid().Width, game.Grid().Height), "seed", seed)
	runErr := tui.Run(game, rt, logger)
	logger.Info("game closed", "score", game.Score())

	// Close log file before potential exit
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
