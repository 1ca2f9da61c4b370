package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model for a snake session.
// Bubble Tea runs Update and View on one goroutine, which makes the model
// the single writer of its GameState.
type Model struct {
	game     *snake.GameState
	screen   *core.Screen
	viewport snake.Viewport
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	paused   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model driving the given game.
func NewModel(game *snake.GameState, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		return m, nil
	case core.ActionRestart:
		if m.game.Terminal() {
			m.logger.Info("restart", "score", m.game.Score())
		}
	case core.ActionGiveUp:
		if !m.game.Terminal() {
			m.logger.Info("gave up", "score", m.game.Score())
		}
	}

	snake.ApplyAction(m.game, action)
	return m, nil
}

// handleMouse turns a left click into a canvas-space pointer event.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x, y := m.viewport.CanvasPoint(msg.X, msg.Y)
	if snake.Click(m.game, x, y) {
		m.logger.Info("restart", "via", "click")
		return m, nil
	}
	if cell, ok := m.viewport.CellAt(msg.X, msg.Y); ok {
		m.logger.Debug("click", "cell", cell, "pending", m.game.PendingDirection())
	} else {
		m.logger.Debug("click outside board", "x", x, "y", y, "pending", m.game.PendingDirection())
	}
	return m, nil
}

// handleTick advances the game unless paused, then schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		res := m.game.Tick()
		if res.Ate {
			m.logger.Debug("food eaten", "head", res.Head, "score", m.game.Score())
		}
	}
	return m, tickCmd(m.config.TickInterval)
}

// resize updates the screen buffer and layout. The game itself is untouched.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.viewport = snake.NewViewport(m.game.Grid(), width, height)

	screenH := core.Max(0, height-snake.FooterHeight)
	if m.screen == nil {
		m.screen = core.NewScreen(width, screenH)
	} else {
		m.screen.Resize(width, screenH)
	}
	m.help.Width = width
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.game.Snapshot(), m.viewport, m.screen)
	if m.paused {
		label := "PAUSED "
		m.screen.DrawTextColor(m.screen.Width()-len(label), 0, label, core.ColorYellow)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Paused reports whether the clock is stopped.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts a local Bubble Tea program for the game.
func Run(game *snake.GameState, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks steer the snake
	)

	_, err := p.Run()
	return err
}
