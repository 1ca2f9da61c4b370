package snake

import "testing"

func TestViewportLayout(t *testing.T) {
	grid := Grid{Width: 20, Height: 12, CellSize: 80}
	vp := NewViewport(grid, 80, 24)

	board := vp.Board()
	if board.X != 19 || board.Y != HUDHeight || board.W != 42 || board.H != 14 {
		t.Errorf("Board = %+v, expected {19 2 42 14}", board)
	}
	if !vp.Fits() {
		t.Error("20x12 grid should fit an 80x24 terminal")
	}

	x, y := vp.ScreenPos(Point{X: 5, Y: 5})
	if x != 30 || y != 8 {
		t.Errorf("ScreenPos(5,5) = (%d, %d), expected (30, 8)", x, y)
	}
}

func TestViewportFits(t *testing.T) {
	grid := Grid{Width: 20, Height: 12, CellSize: 80}

	tests := []struct {
		name string
		w, h int
		fits bool
	}{
		{"roomy", 120, 40, true},
		{"exact", 42, 17, true},
		{"one column short", 41, 17, false},
		{"one row short", 42, 16, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewViewport(grid, tc.w, tc.h).Fits(); got != tc.fits {
				t.Errorf("Fits() on %dx%d = %v, expected %v", tc.w, tc.h, got, tc.fits)
			}
		})
	}
}

func TestViewportCellAt(t *testing.T) {
	vp := NewViewport(Grid{Width: 20, Height: 12, CellSize: 80}, 80, 24)

	tests := []struct {
		col, row int
		expected Point
		ok       bool
	}{
		{30, 8, Point{X: 5, Y: 5}, true},
		{31, 8, Point{X: 5, Y: 5}, true},
		{20, 3, Point{X: 0, Y: 0}, true},
		{59, 14, Point{X: 19, Y: 11}, true},
		{19, 3, Point{}, false}, // left border
		{20, 2, Point{}, false}, // top border
		{60, 8, Point{}, false}, // right border
	}

	for _, tc := range tests {
		p, ok := vp.CellAt(tc.col, tc.row)
		if ok != tc.ok || p != tc.expected {
			t.Errorf("CellAt(%d, %d) = %v, %v; expected %v, %v", tc.col, tc.row, p, ok, tc.expected, tc.ok)
		}
	}
}

func TestViewportCanvasPoint(t *testing.T) {
	grid := Grid{Width: 20, Height: 12, CellSize: 80}
	vp := NewViewport(grid, 80, 24)

	// Left and right halves of cell (5,5)
	x, y := vp.CanvasPoint(30, 8)
	if x != 420 || y != 440 {
		t.Errorf("CanvasPoint(30, 8) = (%d, %d), expected (420, 440)", x, y)
	}
	x, y = vp.CanvasPoint(31, 8)
	if x != 460 || y != 440 {
		t.Errorf("CanvasPoint(31, 8) = (%d, %d), expected (460, 440)", x, y)
	}

	// A click three cells below the head steers down
	head := Point{X: 5, Y: 5}
	cx, cy := vp.CanvasPoint(30, 11)
	if d := PointerDirection(grid, head, cx, cy); d != DirDown {
		t.Errorf("Expected down for a click below the head, got %v", d)
	}

	// A click far to the left steers left
	cx, cy = vp.CanvasPoint(22, 9)
	if d := PointerDirection(grid, head, cx, cy); d != DirLeft {
		t.Errorf("Expected left for a click left of the head, got %v", d)
	}
}
