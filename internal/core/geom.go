// Package core provides fundamental types and utilities for the breakout platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in field units (sub-cell precision).
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a new field rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CircleInRect reports whether the circle's center lies strictly inside rect.
// Only the center is tested: the radius does not widen the rect and a center
// sitting exactly on an edge is outside.
func CircleInRect(cx, cy, radius float64, rect RectF) bool {
	return cx > rect.X && cx < rect.Right() &&
		cy > rect.Y && cy < rect.Bottom()
}

// PointInPaddleRange reports whether x lies strictly between paddleX and
// paddleX+paddleWidth.
func PointInPaddleRange(x, paddleX, paddleWidth float64) bool {
	return x > paddleX && x < paddleX+paddleWidth
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
