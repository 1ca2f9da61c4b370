package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// PointerDirection picks a direction from a click at canvas pixel (x, y)
// relative to the centre of the head cell. The axis with the larger offset
// wins; equal offsets resolve to the vertical axis.
func PointerDirection(grid Grid, head Point, x, y int) Direction {
	hx, hy := grid.Center(head)
	dx := x - hx
	dy := y - hy

	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// Click handles a pointer press at canvas pixel (x, y). On the game-over
// screen it restarts the game; otherwise it steers towards the click.
// Returns true if the click restarted the game.
func Click(g *GameState, x, y int) bool {
	if g.Terminal() {
		g.Reset()
		return true
	}
	g.SubmitDirection(PointerDirection(g.Grid(), g.Head(), x, y))
	return false
}

// KeyDirection handles a keyboard direction. Unlike pointer input it refuses
// to turn straight back into the direction the snake last moved in.
// Returns true if the direction was submitted.
func KeyDirection(g *GameState, d Direction) bool {
	if g.Terminal() {
		return false
	}
	if d == g.Direction().Opposite() {
		return false
	}
	g.SubmitDirection(d)
	return true
}

// ApplyAction routes a platform action into the game. Direction actions go
// through KeyDirection, restart resets a finished game and give-up ends a
// running one.
func ApplyAction(g *GameState, a core.Action) {
	switch a {
	case core.ActionUp:
		KeyDirection(g, DirUp)
	case core.ActionDown:
		KeyDirection(g, DirDown)
	case core.ActionLeft:
		KeyDirection(g, DirLeft)
	case core.ActionRight:
		KeyDirection(g, DirRight)
	case core.ActionRestart:
		if g.Terminal() {
			g.Reset()
		}
	case core.ActionGiveUp:
		g.Terminate()
	}
}
