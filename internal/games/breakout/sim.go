package breakout

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the run mode of the simulation, derived from its flags and the clock.
type Phase int

const (
	PhaseIdle       Phase = iota // Waiting for Start
	PhaseRunning                 // Physics advances every tick
	PhasePaused                  // Paused by the player
	PhaseTransition              // Transient hold after a miss or level-up
	PhaseGameOver                // Finished, won or lost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseTransition:
		return "transition"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// HoldReason explains why the simulation is in a transient hold.
type HoldReason int

const (
	HoldNone HoldReason = iota
	HoldLevelUp
	HoldMiss
)

// WinCondition is consulted whenever the grid is cleared. Returning true
// ends the game as won instead of advancing to the next level.
type WinCondition func(level, score int) bool

// TickReport summarises one call to Tick.
type TickReport struct {
	Tick       uint64
	Phase      Phase // Phase after the tick
	Advanced   bool  // Whether physics ran
	Collisions []Collision
}

// Option configures a Sim.
type Option func(*Sim)

// WithClock sets the time source used for transient holds.
func WithClock(c core.Clock) Option {
	return func(s *Sim) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithSeed seeds the serve direction RNG.
func WithSeed(seed int64) Option {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	}
}

// WithObserver registers an event observer.
func WithObserver(o Observer) Option {
	return func(s *Sim) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithWinCondition installs a win hook. Without one the game never ends as won.
func WithWinCondition(w WinCondition) Option {
	return func(s *Sim) {
		s.winCondition = w
	}
}

// Sim owns the entire state of one breakout game.
// It is not safe for concurrent use; callers drive it from a single loop.
type Sim struct {
	cfg   config.BreakoutConfig
	clock core.Clock
	rng   *rand.Rand

	ball   Ball
	paddle Paddle
	grid   *Grid

	score int
	level int
	lives int

	running    bool
	userPaused bool
	over       bool
	won        bool
	holdUntil  time.Time
	holdReason HoldReason

	dir     Direction
	pointer *float64

	observers    []Observer
	winCondition WinCondition
	tick         uint64
}

// NewSim creates a simulation in the Idle phase with a full grid.
func NewSim(cfg config.BreakoutConfig, opts ...Option) *Sim {
	s := &Sim{
		cfg:   cfg,
		clock: core.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- gameplay randomness
	}

	s.score = 0
	s.level = 1
	s.lives = cfg.Gameplay.Lives
	s.ball.Radius = cfg.Ball.Radius
	s.ball.Speed = cfg.Ball.Speed
	s.grid = NewGrid(cfg.Bricks)
	s.resetBallAndPaddle()
	return s
}

// Subscribe adds an observer after construction.
func (s *Sim) Subscribe(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// Phase returns the current run mode.
func (s *Sim) Phase() Phase {
	switch {
	case s.over:
		return PhaseGameOver
	case !s.running:
		return PhaseIdle
	case s.userPaused:
		return PhasePaused
	case s.clock.Now().Before(s.holdUntil):
		return PhaseTransition
	default:
		return PhaseRunning
	}
}

// HoldReason returns why the last transient hold started.
// It is only meaningful while the phase is PhaseTransition.
func (s *Sim) HoldReason() HoldReason { return s.holdReason }

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.BreakoutConfig { return s.cfg }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Sim) Level() int { return s.level }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.lives }

// Won reports whether the game ended as won.
func (s *Sim) Won() bool { return s.won }

// Ball returns a copy of the ball.
func (s *Sim) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Sim) Paddle() Paddle { return s.paddle }

// Grid returns the current brick grid. Callers must treat it as read-only.
func (s *Sim) Grid() *Grid { return s.grid }

// Ticks returns the number of Tick calls so far.
func (s *Sim) Ticks() uint64 { return s.tick }

// SetHorizontalInput sets the keyboard direction applied on every running tick.
func (s *Sim) SetHorizontalInput(dir Direction) {
	s.dir = dir
}

// SetPaddleAbsoluteX requests the paddle centre at x. The request is
// clamped to the field and applied on the next running tick.
func (s *Sim) SetPaddleAbsoluteX(x float64) {
	s.pointer = &x
}

// Start leaves Idle: the grid is rebuilt and ball and paddle are served.
// It has no effect in any other phase.
func (s *Sim) Start() {
	if s.over || s.running {
		return
	}
	s.grid = NewGrid(s.cfg.Bricks)
	s.resetBallAndPaddle()
	s.running = true
	s.userPaused = false
}

// TogglePause switches between Running and Paused.
// It has no effect while Idle or after the game is over.
func (s *Sim) TogglePause() {
	if !s.running || s.over {
		return
	}
	s.userPaused = !s.userPaused
}

// Restart resets score, level, lives, speed and grid from any phase.
func (s *Sim) Restart() {
	s.score = 0
	s.level = 1
	s.lives = s.cfg.Gameplay.Lives
	s.ball.Speed = s.cfg.Ball.Speed
	s.grid = NewGrid(s.cfg.Bricks)
	s.resetBallAndPaddle()

	s.over = false
	s.won = false
	s.userPaused = false
	s.holdUntil = time.Time{}
	s.holdReason = HoldNone
	s.pointer = nil
	s.running = !s.cfg.Gameplay.ServeOnRestart

	s.emit(ScoreChanged{Score: s.score})
	s.emit(LevelChanged{Level: s.level})
	s.emit(LivesChanged{Lives: s.lives})
}

// Tick advances the simulation by one frame. Nothing changes unless the
// phase is Running. Order: bricks, walls, paddle or miss, paddle movement,
// integration.
func (s *Sim) Tick() TickReport {
	s.tick++
	report := TickReport{Tick: s.tick}

	if s.Phase() != PhaseRunning {
		report.Phase = s.Phase()
		return report
	}
	report.Advanced = true

	report.Collisions = s.collideBricks(report.Collisions)
	if s.Phase() == PhaseRunning {
		report.Collisions = s.collideWallsAndPaddle(report.Collisions)
	}
	if s.Phase() == PhaseRunning {
		s.applyPaddleInput()
		integrate(&s.ball)
	}

	s.assertInvariants()
	report.Phase = s.Phase()
	return report
}

// applyPaddleInput consumes a pending pointer target, then applies the keyboard direction.
func (s *Sim) applyPaddleInput() {
	if s.pointer != nil {
		centerPaddle(&s.paddle, *s.pointer, s.cfg.Field.Width)
		s.pointer = nil
	}
	movePaddle(&s.paddle, s.dir, s.cfg.Field.Width)
}

// resetBallAndPaddle serves the ball from the bottom centre and recentres the paddle.
func (s *Sim) resetBallAndPaddle() {
	w, h := s.cfg.Field.Width, s.cfg.Field.Height

	sign := 1.0
	if s.rng.Intn(2) == 0 {
		sign = -1
	}
	s.ball.X = w / 2
	s.ball.Y = h - s.cfg.Ball.StartOffset
	s.ball.DX, s.ball.DY = launchVelocity(s.ball.Speed, sign)

	s.paddle = Paddle{
		X:      (w - s.cfg.Paddle.Width) / 2,
		Y:      h - s.cfg.Paddle.BottomOffset,
		Width:  s.cfg.Paddle.Width,
		Height: s.cfg.Paddle.Height,
		Speed:  s.cfg.Paddle.Speed,
	}
}

// hold starts a transient pause that expires on its own.
func (s *Sim) hold(reason HoldReason) {
	delay := time.Duration(s.cfg.Gameplay.TransitionDelay) * time.Millisecond
	s.holdUntil = s.clock.Now().Add(delay)
	s.holdReason = reason
}

func (s *Sim) emit(e GameEvent) {
	for _, o := range s.observers {
		o.OnEvent(e)
	}
}
