package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws a snapshot onto the screen. It only reads the snapshot.
func Render(snap Snapshot, vp Viewport, dst *core.Screen) {
	dst.Clear()

	renderHUD(snap, dst)

	if !vp.Fits() {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(vp.Board(), core.ColorGray)
	renderGrid(snap.Grid, vp, dst)
	renderSnake(snap, vp, dst)

	// Food is drawn last so it stays visible when it spawns under the body
	fx, fy := vp.ScreenPos(snap.Food)
	dst.DrawTextColor(fx, fy, "<>", core.ColorBrightRed)

	if snap.Terminal {
		renderOverlay(dst, "Game Over!", "Click to restart")
	}
}

// renderHUD draws the top status bar.
func renderHUD(snap Snapshot, dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", snap.Score, len(snap.Snake))
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderGrid dots the top-left of every cell.
func renderGrid(grid Grid, vp Viewport, dst *core.Screen) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			sx, sy := vp.ScreenPos(Point{X: x, Y: y})
			dst.SetColor(sx, sy, '·', core.ColorGray)
		}
	}
}

// renderSnake draws body segments tail first so the head ends up on top.
func renderSnake(snap Snapshot, vp Viewport, dst *core.Screen) {
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		sx, sy := vp.ScreenPos(snap.Snake[i])
		if i == 0 {
			dst.DrawTextColor(sx, sy, "()", core.ColorBrightGreen)
		} else {
			dst.DrawTextColor(sx, sy, "[]", core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
}
