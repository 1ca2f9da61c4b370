package snake

// Snapshot is a read-only copy of the game state for renderers.
type Snapshot struct {
	Grid      Grid      `json:"grid"`
	Snake     []Point   `json:"snake"` // Head first
	Food      Point     `json:"food"`
	Score     int       `json:"score"`
	Eaten     int       `json:"eaten"`
	Tick      uint64    `json:"tick"`
	Direction Direction `json:"direction"`
	Pending   Direction `json:"pending"`
	Terminal  bool      `json:"terminal"`
}

// Snapshot returns a copy of the current state. The snake slice is copied so
// callers may hold on to it across ticks.
func (g *GameState) Snapshot() Snapshot {
	body := make([]Point, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Grid:      g.grid,
		Snake:     body,
		Food:      g.food,
		Score:     g.score,
		Eaten:     g.eaten,
		Tick:      g.tick,
		Direction: g.direction,
		Pending:   g.pending,
		Terminal:  g.terminal,
	}
}

// Head returns the first segment of the snapshot's snake.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}
