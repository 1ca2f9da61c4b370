package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Terminal layout constants.
const (
	HUDHeight    = 2 // Score line plus separator
	FooterHeight = 1 // Help line drawn by the host
	CellCols     = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// Viewport places the playfield on a terminal screen and maps terminal
// positions back to canvas pixels.
type Viewport struct {
	grid    Grid
	screenW int
	screenH int
	board   core.Rect // Border included
}

// NewViewport centres the playfield horizontally below the HUD.
func NewViewport(grid Grid, screenW, screenH int) Viewport {
	boardW := grid.Width*CellCols + 2
	boardH := grid.Height + 2
	x := core.Max(0, (screenW-boardW)/2)

	return Viewport{
		grid:    grid,
		screenW: screenW,
		screenH: screenH,
		board:   core.NewRect(x, HUDHeight, boardW, boardH),
	}
}

// Board returns the playfield rectangle including its border.
func (v Viewport) Board() core.Rect {
	return v.board
}

// Fits reports whether the whole playfield, HUD and footer fit on screen.
func (v Viewport) Fits() bool {
	return v.board.Right() <= v.screenW && v.board.Bottom()+FooterHeight <= v.screenH
}

// ScreenPos returns the terminal position of the left column of cell p.
func (v Viewport) ScreenPos(p Point) (x, y int) {
	return v.board.X + 1 + p.X*CellCols, v.board.Y + 1 + p.Y
}

// CellAt returns the grid cell under terminal position (col, row).
func (v Viewport) CellAt(col, row int) (Point, bool) {
	inner := core.NewRect(v.board.X+1, v.board.Y+1, v.grid.Width*CellCols, v.grid.Height)
	if !inner.Contains(col, row) {
		return Point{}, false
	}
	return Point{X: (col - inner.X) / CellCols, Y: row - inner.Y}, true
}

// CanvasPoint converts a terminal position into canvas pixel coordinates:
// the centre of the clicked column half within its grid cell.
// Positions outside the playfield extrapolate past its edges.
func (v Viewport) CanvasPoint(col, row int) (x, y int) {
	cs := v.grid.CellSize
	rx := col - (v.board.X + 1)
	ry := row - (v.board.Y + 1)
	return rx*cs/CellCols + cs/(2*CellCols), ry*cs + cs/2
}
