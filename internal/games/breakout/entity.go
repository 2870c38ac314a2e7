package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction is the horizontal paddle input.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Ball is the single ball in play. Position is the centre in field units.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Speed  float64 // Scalar speed; |(DX, DY)| equals Speed after every bounce
}

// Velocity returns the magnitude of the current velocity vector.
func (b Ball) Velocity() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
}

// Center returns the x coordinate of the paddle centre.
func (p Paddle) Center() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}
