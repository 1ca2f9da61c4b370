package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// newTestModel builds a model around the default 20x12 playfield on an
// 80x24 terminal. The head starts at (5, 5), drawn at terminal (30, 8).
func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	game, err := snake.New(cfg.Options(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewModel(game, cfg.Runtime(80, 24), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModelKeysSteerOnTick(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.game.PendingDirection() != snake.DirUp {
		t.Fatalf("Expected pending up, got %v", m.game.PendingDirection())
	}
	if m.game.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Error("Head must not move before the tick")
	}

	m = update(t, m, TickMsg(time.Now()))
	if m.game.Head() != (snake.Point{X: 5, Y: 4}) {
		t.Errorf("Expected head (5,4) after tick, got %v", m.game.Head())
	}
}

func TestModelKeyboardReversalBlocked(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.game.PendingDirection() != snake.DirRight {
		t.Errorf("Keyboard reversal should be refused, pending is %v", m.game.PendingDirection())
	}
}

func TestModelClickSteers(t *testing.T) {
	m := newTestModel(t)

	// Three rows below the head
	m = update(t, m, leftClick(30, 11))
	if m.game.PendingDirection() != snake.DirDown {
		t.Errorf("Expected pending down, got %v", m.game.PendingDirection())
	}

	// Far left of the head; pointer input may reverse
	m = update(t, m, leftClick(21, 8))
	if m.game.PendingDirection() != snake.DirLeft {
		t.Errorf("Expected pending left, got %v", m.game.PendingDirection())
	}
}

func TestModelIgnoresNonLeftClicks(t *testing.T) {
	m := newTestModel(t)

	release := tea.MouseMsg{X: 30, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m = update(t, m, release)
	right := tea.MouseMsg{X: 30, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m = update(t, m, right)

	if m.game.PendingDirection() != snake.DirRight {
		t.Errorf("Only left presses should steer, pending is %v", m.game.PendingDirection())
	}
}

func TestModelGiveUpThenClickRestarts(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, runeKey('x'))
	if !m.game.Terminal() {
		t.Fatal("Give up key should end the game")
	}
	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("View should show the game over box")
	}

	// Ticks do nothing while the game is over
	head := m.game.Head()
	m = update(t, m, TickMsg(time.Now()))
	if m.game.Head() != head {
		t.Error("Finished game should not move")
	}

	m = update(t, m, leftClick(0, 0))
	if m.game.Terminal() {
		t.Fatal("Click should restart a finished game")
	}
	if m.game.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Errorf("Expected the start cell after restart, got %v", m.game.Head())
	}
}

func TestModelRestartKey(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey('x'))

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.game.Terminal() {
		t.Error("Space should restart a finished game")
	}
}

func TestModelPauseStopsClock(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("Expected paused model")
	}
	m = update(t, m, TickMsg(time.Now()))
	if m.game.Head() != (snake.Point{X: 5, Y: 5}) {
		t.Error("Paused model should not tick the game")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View should mark the pause")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(time.Now()))
	if m.game.Head() != (snake.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head (6,5) after unpausing, got %v", m.game.Head())
	}
}

func TestModelTickSchedulesNextTick(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("Tick should schedule another tick")
	}
	if m.Init() == nil {
		t.Error("Init should start the clock")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, TickMsg(time.Now()))
	before := m.game.Snapshot()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	after := m.game.Snapshot()
	if after.Head() != before.Head() || after.Tick != before.Tick {
		t.Error("Resize must not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-snake.FooterHeight {
		t.Errorf("Screen is %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-snake.FooterHeight)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("Quitting model should render nothing")
	}
}

func TestModelViewShowsScoreAndHelp(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("View should include the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View should include the help line")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorGreen)
	s.DrawTextColor(2, 0, "cd", core.ColorBrightRed)
	s.DrawTextColor(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 lines, got %q", out)
	}
}
