package breakout

import "math"

// Snapshot is an immutable per-frame copy of the simulation state.
// Renderers and tests read it; nothing writes it back into a Sim.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Hold   HoldReason
	FieldW float64
	FieldH float64

	Ball   Ball
	Paddle Paddle

	Score int
	Level int
	Lives int
	Won   bool

	GridRows int
	GridCols int
	Bricks   []Brick // row-major copy
}

// Snapshot returns the current state as a Snapshot.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Phase:    s.Phase(),
		Hold:     s.holdReason,
		FieldW:   s.cfg.Field.Width,
		FieldH:   s.cfg.Field.Height,
		Ball:     s.ball,
		Paddle:   s.paddle,
		Score:    s.score,
		Level:    s.level,
		Lives:    s.lives,
		Won:      s.won,
		GridRows: s.grid.Rows(),
		GridCols: s.grid.Cols(),
		Bricks:   s.grid.Bricks(),
	}
}

// BricksAlive returns the number of bricks still in play.
func (snap *Snapshot) BricksAlive() int {
	n := 0
	for _, b := range snap.Bricks {
		if b.Alive() {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + math.Float64bits(snap.Ball.DX)
	h = h*31 + math.Float64bits(snap.Ball.DY)
	h = h*31 + math.Float64bits(snap.Ball.Speed)
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.Status) //#nosec G115 -- hash computation
	}

	return h
}
