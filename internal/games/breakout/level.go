// Package breakout implements a Breakout-style brick breaker simulation
// and its adapter to the platform game interface.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickStatus tracks whether a brick is still in play.
type BrickStatus int

const (
	BrickAlive BrickStatus = iota
	BrickBroken
)

// Brick represents a single brick in the grid.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Status        BrickStatus
	Color         core.Color
	Points        int // Points awarded when destroyed
}

// Alive reports whether the brick can still be hit.
func (b Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Rect returns the brick bounds.
func (b Brick) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Grid is the rows x cols brick layout of the current level.
// Bricks are only ever mutated by marking them destroyed.
type Grid struct {
	rows, cols int
	bricks     []Brick // row-major
}

// NewGrid lays out a full grid of alive bricks.
// Top rows are worth the most: points = (rows - row) * points_per_row.
func NewGrid(cfg config.BricksConfig) *Grid {
	g := &Grid{
		rows:   cfg.Rows,
		cols:   cfg.Cols,
		bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
	}

	for row := range cfg.Rows {
		var color core.Color
		if len(cfg.Colors) > 0 {
			color = core.Color(cfg.Colors[row%len(cfg.Colors)])
		}
		for col := range cfg.Cols {
			g.bricks = append(g.bricks, Brick{
				X:      float64(col)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(row)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				Width:  cfg.Width,
				Height: cfg.Height,
				Status: BrickAlive,
				Color:  color,
				Points: (cfg.Rows - row) * cfg.PointsPerRow,
			})
		}
	}
	return g
}

// Rows returns the number of brick rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of brick columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of bricks in the grid.
func (g *Grid) Len() int { return len(g.bricks) }

// At returns the brick at row, col. Out-of-range positions yield a destroyed zero brick.
func (g *Grid) At(row, col int) Brick {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Brick{Status: BrickBroken}
	}
	return g.bricks[row*g.cols+col]
}

// destroy marks the brick at row, col as destroyed and returns it.
func (g *Grid) destroy(row, col int) Brick {
	b := &g.bricks[row*g.cols+col]
	b.Status = BrickBroken
	return *b
}

// CountAlive returns the number of bricks still in play.
func (g *Grid) CountAlive() int {
	n := 0
	for _, b := range g.bricks {
		if b.Alive() {
			n++
		}
	}
	return n
}

// AllDestroyed reports whether the grid has been cleared.
func (g *Grid) AllDestroyed() bool {
	for _, b := range g.bricks {
		if b.Alive() {
			return false
		}
	}
	return true
}

// TotalPoints returns the score available from a full grid.
func (g *Grid) TotalPoints() int {
	total := 0
	for _, b := range g.bricks {
		total += b.Points
	}
	return total
}

// Bricks returns a copy of all bricks in row-major order.
func (g *Grid) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}
