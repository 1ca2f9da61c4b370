// Package snake implements a single-player wrap-around snake game.
// The state machine here has no terminal or network dependencies; hosts drive
// it with Tick at a fixed cadence, feed it directions, and draw Snapshots.
package snake

import (
	"fmt"
	"math/rand"
	"time"
)

// FoodReward is the number of points awarded per food eaten.
const FoodReward = 10

// Rand is the source of randomness used for food placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Options configures a new GameState.
type Options struct {
	CellSize    int   // Pixels per grid cell
	PixelWidth  int   // Playfield width in pixels
	PixelHeight int   // Playfield height in pixels
	Start       Point // Cell the snake (re)spawns on
	Rand        Rand  // Food placement source; nil means time-seeded math/rand
}

// GameState owns the snake, direction buffer, food, score and game-over flag.
// It is not safe for concurrent use: exactly one goroutine may call its
// mutating methods, and other readers must go through Snapshot.
type GameState struct {
	grid  Grid
	start Point
	rng   Rand

	snake     []Point // Head at index 0, never empty
	direction Direction
	pending   Direction // Applied at the start of the next tick
	food      Point
	score     int
	eaten     int
	tick      uint64
	terminal  bool
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved bool  // False when the game is over
	Ate   bool  // Head landed on food this tick
	Head  Point // Head position after the tick
}

// New validates the options and returns a game in its initial state.
func New(opts Options) (*GameState, error) {
	grid, err := NewGrid(opts.CellSize, opts.PixelWidth, opts.PixelHeight)
	if err != nil {
		return nil, err
	}
	if !grid.Contains(opts.Start) {
		return nil, fmt.Errorf("snake: start cell (%d, %d) outside %dx%d grid: %w",
			opts.Start.X, opts.Start.Y, grid.Width, grid.Height, ErrInvalidConfiguration)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &GameState{
		grid:  grid,
		start: opts.Start,
		rng:   rng,
	}
	g.Reset()
	return g, nil
}

// Grid returns the playfield dimensions.
func (g *GameState) Grid() Grid {
	return g.grid
}

// Reset replaces the whole state with a fresh game: a single segment on the
// start cell heading right, new food, zero score.
func (g *GameState) Reset() {
	g.snake = []Point{g.start}
	g.direction = DirRight
	g.pending = DirRight
	g.score = 0
	g.eaten = 0
	g.tick = 0
	g.terminal = false
	g.food = g.spawnFood()
}

// SubmitDirection buffers d for the next tick. Later calls overwrite earlier
// ones. Reversals are accepted. Ignored once the game is over.
func (g *GameState) SubmitDirection(d Direction) {
	if g.terminal {
		return
	}
	g.pending = d
}

// Tick advances the snake by one cell.
func (g *GameState) Tick() TickResult {
	if g.terminal {
		return TickResult{Head: g.snake[0]}
	}
	g.tick++

	// Apply buffered direction
	g.direction = g.pending

	dx, dy := g.direction.Offset()
	head := g.snake[0]
	newHead := g.grid.Wrap(Point{X: head.X + dx, Y: head.Y + dy})

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score += FoodReward
		g.eaten++
		g.food = g.spawnFood()
		return TickResult{Moved: true, Ate: true, Head: newHead}
	}

	g.snake = g.snake[:len(g.snake)-1]
	return TickResult{Moved: true, Head: newHead}
}

// Terminate ends the game. Play itself never dies (edges wrap and the body may
// overlap), so this is the only way into the game-over state.
func (g *GameState) Terminate() {
	g.terminal = true
}

// Terminal reports whether the game is over.
func (g *GameState) Terminal() bool {
	return g.terminal
}

// Score returns the current score.
func (g *GameState) Score() int {
	return g.score
}

// Head returns the snake's head cell.
func (g *GameState) Head() Point {
	return g.snake[0]
}

// Direction returns the direction used by the last tick.
func (g *GameState) Direction() Direction {
	return g.direction
}

// PendingDirection returns the direction the next tick will use.
func (g *GameState) PendingDirection() Direction {
	return g.pending
}
