package breakout

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Autopilot steers the paddle under the ball through the pointer input.
// It aims for an off-centre hit so the ball always leaves the paddle upward.
type Autopilot struct {
	rng     *rand.Rand
	aim     float64 // Hit point to aim for, away from the centre
	falling bool
}

// NewAutopilot creates an autopilot with a seeded aim.
func NewAutopilot(seed int64) *Autopilot {
	a := &Autopilot{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness
	a.pickAim()
	return a
}

// pickAim chooses a hit point in [0.2, 0.4] or [0.6, 0.8].
func (a *Autopilot) pickAim() {
	off := 0.1 + a.rng.Float64()*0.2
	if a.rng.Intn(2) == 0 {
		a.aim = 0.5 - off
	} else {
		a.aim = 0.5 + off
	}
}

// Drive issues the commands for one frame: it serves from Idle and
// positions the paddle while the ball is in play.
func (a *Autopilot) Drive(s *Sim) {
	if s.Phase() == PhaseIdle {
		s.Start()
		return
	}

	ball := s.Ball()
	falling := ball.DY > 0
	if falling && !a.falling {
		a.pickAim()
	}
	a.falling = falling

	w := s.Paddle().Width
	s.SetPaddleAbsoluteX(ball.X + (0.5-a.aim)*w)
}

// RunResult is the outcome of a headless run.
type RunResult struct {
	Ticks    uint64
	Score    int
	Level    int
	Lives    int
	Won      bool
	Finished bool // False when the run hit the tick limit first
}

// RunHeadless plays a game with the autopilot on a manual clock advanced
// by tick per frame, stopping at game over or after maxTicks.
func RunHeadless(s *Sim, pilot *Autopilot, clock *core.ManualClock, tick time.Duration, maxTicks uint64) RunResult {
	for s.Ticks() < maxTicks && s.Phase() != PhaseGameOver {
		pilot.Drive(s)
		s.Tick()
		clock.Advance(tick)
	}
	return RunResult{
		Ticks:    s.Ticks(),
		Score:    s.Score(),
		Level:    s.Level(),
		Lives:    s.Lives(),
		Won:      s.Won(),
		Finished: s.Phase() == PhaseGameOver,
	}
}
