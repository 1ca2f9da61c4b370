package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when the playfield cannot hold at least
// one cell in each dimension, or the start cell falls outside it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Point represents a grid cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is the discrete playfield derived from pixel dimensions and a cell size.
type Grid struct {
	Width    int `json:"width"`    // cells
	Height   int `json:"height"`   // cells
	CellSize int `json:"cellSize"` // pixels per cell
}

// NewGrid derives a grid of floor(pixelW/cellSize) x floor(pixelH/cellSize) cells.
// Both dimensions must come out as at least one cell.
func NewGrid(cellSize, pixelW, pixelH int) (Grid, error) {
	if cellSize < 1 {
		return Grid{}, fmt.Errorf("snake: cell size %d: %w", cellSize, ErrInvalidConfiguration)
	}
	g := Grid{
		Width:    pixelW / cellSize,
		Height:   pixelH / cellSize,
		CellSize: cellSize,
	}
	if g.Width < 1 || g.Height < 1 {
		return Grid{}, fmt.Errorf("snake: playfield %dx%d px with cell size %d gives %dx%d cells: %w",
			pixelW, pixelH, cellSize, g.Width, g.Height, ErrInvalidConfiguration)
	}
	return g, nil
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap brings a point that stepped off one edge back in from the opposite edge.
// Each axis is handled independently.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.Width - 1
	} else if p.X >= g.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - 1
	} else if p.Y >= g.Height {
		p.Y = 0
	}
	return p
}

// Center returns the canvas pixel coordinates of the centre of cell p.
func (g Grid) Center(p Point) (px, py int) {
	return p.X*g.CellSize + g.CellSize/2, p.Y*g.CellSize + g.CellSize/2
}
