package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// CollisionKind identifies what the ball hit during a tick.
type CollisionKind int

const (
	CollisionWall CollisionKind = iota
	CollisionCeiling
	CollisionPaddle
	CollisionBrick
	CollisionMiss
)

// String returns a human-readable name for the collision.
func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionCeiling:
		return "ceiling"
	case CollisionPaddle:
		return "paddle"
	case CollisionBrick:
		return "brick"
	case CollisionMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Collision describes a single contact resolved during a tick.
// Row and Col are only meaningful for brick collisions.
type Collision struct {
	Kind     CollisionKind
	Row, Col int
}

// launchVelocity returns a serve velocity of magnitude speed at 45 degrees upward.
// sign picks the horizontal direction.
func launchVelocity(speed float64, sign float64) (dx, dy float64) {
	c := speed * math.Sqrt2 / 2
	if sign < 0 {
		return -c, -c
	}
	return c, -c
}

// bounceWalls flips the velocity components whose projected position leaves
// the field. The bottom edge is not a wall.
func bounceWalls(b *Ball, fieldW float64) (side, ceiling bool) {
	nx := b.X + b.DX
	if nx > fieldW-b.Radius || nx < b.Radius {
		b.DX = -b.DX
		side = true
	}
	if b.Y+b.DY < b.Radius {
		b.DY = -b.DY
		ceiling = true
	}
	return side, ceiling
}

// reachesPaddle reports whether the projected position crosses the paddle plane.
func reachesPaddle(b Ball, p Paddle) bool {
	return b.Y+b.DY > p.Y-b.Radius
}

// missed reports whether the projected position falls past the bottom edge.
func missed(b Ball, fieldH float64) bool {
	return b.Y+b.DY > fieldH-b.Radius
}

// HitPoint returns the normalised contact position of x on the paddle:
// 0 at the left edge, 1 at the right edge.
func HitPoint(x float64, p Paddle) float64 {
	return (x - p.X) / p.Width
}

// bouncePaddle redirects the ball by where it hit the paddle.
// The outgoing angle is hit*pi - pi/2 and the magnitude is preserved.
// A centre hit leaves the ball moving horizontally at full speed.
func bouncePaddle(b *Ball, p Paddle) {
	hit := HitPoint(b.X, p)
	angle := hit*math.Pi - math.Pi/2
	speed := math.Hypot(b.DX, b.DY)
	b.DX = speed * math.Cos(angle)
	b.DY = -math.Abs(speed * math.Sin(angle))
}

// brickHits returns the row and column of every alive brick whose
// bounds strictly contain the ball centre.
func brickHits(b Ball, g *Grid) [][2]int {
	var hits [][2]int
	for i, br := range g.bricks {
		if !br.Alive() {
			continue
		}
		if core.CircleInRect(b.X, b.Y, b.Radius, br.Rect()) {
			hits = append(hits, [2]int{i / g.cols, i % g.cols})
		}
	}
	return hits
}

// movePaddle shifts the paddle by its speed in dir and clamps it to the field.
func movePaddle(p *Paddle, dir Direction, fieldW float64) {
	switch dir {
	case DirLeft:
		p.X -= p.Speed
	case DirRight:
		p.X += p.Speed
	}
	p.X = core.ClampF(p.X, 0, fieldW-p.Width)
}

// centerPaddle places the paddle centre at x, clamped to the field.
func centerPaddle(p *Paddle, x, fieldW float64) {
	p.X = core.ClampF(x-p.Width/2, 0, fieldW-p.Width)
}

// integrate advances the ball by one tick of velocity.
func integrate(b *Ball) {
	b.X += b.DX
	b.Y += b.DY
}
