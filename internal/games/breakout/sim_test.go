package breakout

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const eps = 1e-9

type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(e GameEvent) {
	r.events = append(r.events, e)
}

func newTestSim(t *testing.T, cfg config.BreakoutConfig, opts ...Option) (*Sim, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	opts = append([]Option{WithClock(clock), WithSeed(42)}, opts...)
	return NewSim(cfg, opts...), clock
}

// startedSim returns a running simulation with default config.
func startedSim(t *testing.T, opts ...Option) (*Sim, *core.ManualClock) {
	t.Helper()
	s, clock := newTestSim(t, config.DefaultBreakoutConfig(), opts...)
	s.Start()
	if s.Phase() != PhaseRunning {
		t.Fatalf("Phase() after Start = %v, expected running", s.Phase())
	}
	return s, clock
}

// placeBall puts the ball at x, y moving with dx, dy and matching speed.
func placeBall(s *Sim, x, y, dx, dy float64) {
	s.ball.X, s.ball.Y = x, y
	s.ball.DX, s.ball.DY = dx, dy
	s.ball.Speed = math.Hypot(dx, dy)
}

func TestNewSimIsIdle(t *testing.T) {
	s, _ := newTestSim(t, config.DefaultBreakoutConfig())

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	if s.Score() != 0 || s.Level() != 1 || s.Lives() != 3 {
		t.Errorf("initial score/level/lives = %d/%d/%d, expected 0/1/3", s.Score(), s.Level(), s.Lives())
	}
	if s.Grid().CountAlive() != 50 {
		t.Errorf("CountAlive() = %d, expected 50", s.Grid().CountAlive())
	}

	before := s.Ball()
	report := s.Tick()
	if report.Advanced {
		t.Error("Tick while idle should not advance physics")
	}
	if s.Ball() != before {
		t.Error("ball moved while idle")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestServePosition(t *testing.T) {
	s, _ := startedSim(t)
	b, p := s.Ball(), s.Paddle()

	if b.X != 400 || b.Y != 550 {
		t.Errorf("ball at (%g, %g), expected (400, 550)", b.X, b.Y)
	}
	if b.DY >= 0 {
		t.Errorf("served ball should move up, dy = %g", b.DY)
	}
	if math.Abs(b.Velocity()-5) > eps {
		t.Errorf("|v| = %g, expected 5", b.Velocity())
	}
	if p.X != 340 || p.Y != 570 {
		t.Errorf("paddle at (%g, %g), expected (340, 570)", p.X, p.Y)
	}
}

func TestWallHandling(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantDX, wantDY float64
		kind           CollisionKind
	}{
		{"right wall", 788, 300, 3, -4, -3, -4, CollisionWall},
		{"left wall", 12, 300, -3, -4, 3, -4, CollisionWall},
		{"ceiling", 300, 12, 3, -4, 3, 4, CollisionCeiling},
		{"corner", 788, 12, 3, -4, -3, 4, CollisionWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := startedSim(t)
			placeBall(s, tt.x, tt.y, tt.dx, tt.dy)

			report := s.Tick()
			b := s.Ball()

			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("velocity = (%g, %g), expected (%g, %g)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
			if b.X < b.Radius || b.X > 800-b.Radius {
				t.Errorf("x = %g, expected within [%g, %g]", b.X, b.Radius, 800-b.Radius)
			}
			if b.Y < b.Radius {
				t.Errorf("y = %g, expected >= %g", b.Y, b.Radius)
			}
			if math.Abs(b.Velocity()-b.Speed) > eps {
				t.Errorf("|v| = %g, expected %g", b.Velocity(), b.Speed)
			}
			if !hasCollision(report, tt.kind) {
				t.Errorf("collisions = %v, expected %v", report.Collisions, tt.kind)
			}
		})
	}
}

func TestPaddleCentreHit(t *testing.T) {
	s, _ := startedSim(t)
	placeBall(s, 400, 556, 0, 5)

	report := s.Tick()
	b := s.Ball()

	if !hasCollision(report, CollisionPaddle) {
		t.Fatalf("collisions = %v, expected paddle", report.Collisions)
	}
	if math.Abs(b.DY) > eps {
		t.Errorf("dy = %g, expected 0", b.DY)
	}
	if math.Abs(b.DX-5) > eps {
		t.Errorf("dx = %g, expected 5", b.DX)
	}
}

func TestPaddleEdgeOutsideIsNotCaught(t *testing.T) {
	s, _ := startedSim(t)
	// Exactly on the left edge: strict range test fails, ball keeps falling.
	placeBall(s, 340, 556, 0, 5)

	report := s.Tick()
	if hasCollision(report, CollisionPaddle) {
		t.Error("ball on the paddle edge should not be caught")
	}
	if s.Ball().DY <= 0 {
		t.Errorf("dy = %g, expected the ball to keep falling", s.Ball().DY)
	}
}

func TestBrickCollision(t *testing.T) {
	rec := &recorder{}
	s, _ := startedSim(t, WithObserver(rec))
	placeBall(s, 70, 62.5, 3, -4)

	report := s.Tick()

	if s.Grid().At(0, 0).Alive() {
		t.Error("brick (0, 0) should be destroyed")
	}
	if s.Grid().CountAlive() != 49 {
		t.Errorf("CountAlive() = %d, expected 49", s.Grid().CountAlive())
	}
	if s.Score() != 50 {
		t.Errorf("Score() = %d, expected 50", s.Score())
	}
	if s.Ball().DY != 4 {
		t.Errorf("dy = %g, expected 4 after brick bounce", s.Ball().DY)
	}
	if !hasCollision(report, CollisionBrick) {
		t.Errorf("collisions = %v, expected brick", report.Collisions)
	}

	var destroyed *BrickDestroyed
	var scored bool
	for _, e := range rec.events {
		switch ev := e.(type) {
		case BrickDestroyed:
			destroyed = &ev
		case ScoreChanged:
			scored = ev.Score == 50
		}
	}
	if destroyed == nil || destroyed.Row != 0 || destroyed.Col != 0 || destroyed.Color != "#ff6b6b" {
		t.Errorf("BrickDestroyed = %+v, expected row 0 col 0 red", destroyed)
	}
	if !scored {
		t.Error("expected ScoreChanged{50}")
	}
}

func TestOverlappingBricksAllDestroyed(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Padding = -10 // neighbours overlap by 10 units
	s, _ := newTestSim(t, cfg)
	s.Start()
	placeBall(s, 100, 62.5, 3, -4)

	s.Tick()

	if s.Grid().At(0, 0).Alive() || s.Grid().At(0, 1).Alive() {
		t.Error("both overlapping bricks should be destroyed")
	}
	if s.Score() != 100 {
		t.Errorf("Score() = %d, expected 100", s.Score())
	}
	// Two flips cancel out.
	if s.Ball().DY != -4 {
		t.Errorf("dy = %g, expected -4", s.Ball().DY)
	}
}

// clearGrid destroys every brick through real collisions.
func clearGrid(t *testing.T, s *Sim) {
	t.Helper()
	rows, cols := s.Grid().Rows(), s.Grid().Cols()
	speed := s.Ball().Speed
	for row := range rows {
		for col := range cols {
			cx, cy := s.Grid().At(row, col).Rect().Center()
			placeBall(s, cx, cy, speed*0.6, -speed*0.8)
			s.Tick()
		}
	}
}

func TestLevelUpOnGridClear(t *testing.T) {
	rec := &recorder{}
	s, clock := startedSim(t, WithObserver(rec))

	clearGrid(t, s)

	if s.Score() != 1500 {
		t.Errorf("Score() = %d, expected 1500", s.Score())
	}
	if s.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", s.Level())
	}
	if math.Abs(s.Ball().Speed-5.5) > eps {
		t.Errorf("speed = %g, expected 5.5", s.Ball().Speed)
	}
	if math.Abs(s.Ball().Velocity()-5.5) > eps {
		t.Errorf("|v| = %g, expected 5.5", s.Ball().Velocity())
	}
	if s.Grid().CountAlive() != 50 {
		t.Errorf("CountAlive() = %d, expected rebuilt grid of 50", s.Grid().CountAlive())
	}
	if s.Phase() != PhaseTransition || s.HoldReason() != HoldLevelUp {
		t.Errorf("Phase() = %v (%v), expected level-up transition", s.Phase(), s.HoldReason())
	}
	if !hasEvent(rec.events, LevelChanged{Level: 2}) {
		t.Error("expected LevelChanged{2}")
	}

	ball := s.Ball()
	clock.Advance(999 * time.Millisecond)
	if r := s.Tick(); r.Advanced || s.Ball() != ball {
		t.Error("nothing should advance during the transition")
	}

	clock.Advance(time.Millisecond)
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v after 1s, expected running", s.Phase())
	}
	if r := s.Tick(); !r.Advanced {
		t.Error("physics should resume after the transition")
	}
}

func TestWinCondition(t *testing.T) {
	rec := &recorder{}
	s, _ := startedSim(t,
		WithObserver(rec),
		WithWinCondition(func(level, score int) bool { return level == 1 }),
	)

	clearGrid(t, s)

	if s.Phase() != PhaseGameOver || !s.Won() {
		t.Errorf("Phase() = %v, Won() = %v, expected won game over", s.Phase(), s.Won())
	}
	if !hasEvent(rec.events, GameOver{Won: true, FinalScore: 1500}) {
		t.Error("expected GameOver{Won: true, FinalScore: 1500}")
	}
}

func TestMissLosesLife(t *testing.T) {
	rec := &recorder{}
	s, clock := startedSim(t, WithObserver(rec))
	placeBall(s, 20, 586, 0, 5)

	report := s.Tick()

	if !hasCollision(report, CollisionMiss) {
		t.Fatalf("collisions = %v, expected miss", report.Collisions)
	}
	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", s.Lives())
	}
	if !hasEvent(rec.events, LivesChanged{Lives: 2}) {
		t.Error("expected LivesChanged{2}")
	}
	if s.Phase() != PhaseTransition || s.HoldReason() != HoldMiss {
		t.Errorf("Phase() = %v (%v), expected miss transition", s.Phase(), s.HoldReason())
	}
	if b := s.Ball(); b.X != 400 || b.Y != 550 {
		t.Errorf("ball at (%g, %g), expected reset to (400, 550)", b.X, b.Y)
	}

	clock.Advance(time.Second)
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running after the hold", s.Phase())
	}
}

func TestMissWithLastLifeEndsGame(t *testing.T) {
	rec := &recorder{}
	s, clock := startedSim(t, WithObserver(rec))
	s.lives = 1
	placeBall(s, 20, 586, 0, 5)

	s.Tick()

	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
	if s.Phase() != PhaseGameOver || s.Won() {
		t.Errorf("Phase() = %v, Won() = %v, expected lost game over", s.Phase(), s.Won())
	}
	if !hasEvent(rec.events, GameOver{Won: false, FinalScore: 0}) {
		t.Error("expected GameOver{Won: false}")
	}

	ball := s.Ball()
	clock.Advance(5 * time.Second)
	for range 10 {
		if r := s.Tick(); r.Advanced {
			t.Fatal("no physics should run after game over")
		}
	}
	if s.Ball() != ball {
		t.Error("ball moved after game over")
	}

	s.Start()
	s.TogglePause()
	if s.Phase() != PhaseGameOver {
		t.Errorf("Start/TogglePause after game over changed phase to %v", s.Phase())
	}
}

func TestRestartRoundTrip(t *testing.T) {
	rec := &recorder{}
	s, _ := startedSim(t, WithObserver(rec))

	clearGrid(t, s)
	s.lives = 1
	placeBall(s, 20, 586, 0, 5)
	s.holdUntil = time.Time{}
	s.Tick()
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over before restart", s.Phase())
	}

	rec.events = nil
	s.Restart()

	if s.Score() != 0 || s.Level() != 1 || s.Lives() != 3 {
		t.Errorf("after Restart score/level/lives = %d/%d/%d, expected 0/1/3", s.Score(), s.Level(), s.Lives())
	}
	if s.Ball().Speed != 5 {
		t.Errorf("speed = %g, expected base 5", s.Ball().Speed)
	}
	if s.Grid().CountAlive() != 50 {
		t.Errorf("CountAlive() = %d, expected 50", s.Grid().CountAlive())
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}
	for _, want := range []GameEvent{ScoreChanged{0}, LevelChanged{1}, LivesChanged{3}} {
		if !hasEvent(rec.events, want) {
			t.Errorf("expected %#v after Restart", want)
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestRestartServeOnRestart(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.ServeOnRestart = true
	s, _ := newTestSim(t, cfg)
	s.Start()

	s.Restart()
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle with serve_on_restart", s.Phase())
	}
}

func TestTogglePauseTwice(t *testing.T) {
	s, _ := startedSim(t)
	for range 5 {
		s.Tick()
	}
	ball, paddle, score := s.Ball(), s.Paddle(), s.Score()

	s.TogglePause()
	if s.Phase() != PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", s.Phase())
	}
	s.SetHorizontalInput(DirLeft)
	for range 10 {
		if r := s.Tick(); r.Advanced {
			t.Fatal("physics advanced while paused")
		}
	}
	s.SetHorizontalInput(DirNone)
	s.TogglePause()

	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}
	if s.Ball() != ball || s.Paddle() != paddle || s.Score() != score {
		t.Error("state changed across a pause round trip")
	}
}

func TestCommandsOutsideTheirPhase(t *testing.T) {
	s, _ := newTestSim(t, config.DefaultBreakoutConfig())

	s.TogglePause()
	if s.Phase() != PhaseIdle {
		t.Errorf("TogglePause while idle moved to %v", s.Phase())
	}

	s.Start()
	for range 3 {
		s.Tick()
	}
	ball := s.Ball()
	s.Start()
	if s.Ball() != ball {
		t.Error("Start while running should be ignored")
	}
}

func TestPaddleInput(t *testing.T) {
	s, _ := startedSim(t)

	s.SetHorizontalInput(DirRight)
	s.Tick()
	if got := s.Paddle().X; got != 348 {
		t.Errorf("paddle x = %g after one right tick, expected 348", got)
	}

	s.SetHorizontalInput(DirNone)
	s.SetPaddleAbsoluteX(-500)
	s.Tick()
	if got := s.Paddle().X; got != 0 {
		t.Errorf("paddle x = %g, expected clamped to 0", got)
	}

	s.SetPaddleAbsoluteX(2000)
	s.Tick()
	if got := s.Paddle().X; got != 680 {
		t.Errorf("paddle x = %g, expected clamped to 680", got)
	}

	s.SetPaddleAbsoluteX(500)
	s.Tick()
	if got := s.Paddle().Center(); got != 500 {
		t.Errorf("paddle centre = %g, expected 500", got)
	}
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	s, clock := newTestSim(t, config.DefaultBreakoutConfig())
	pilot := NewAutopilot(7)

	lastScore := 0
	for range 20000 {
		pilot.Drive(s)
		s.Tick()
		clock.Advance(16 * time.Millisecond)

		if err := s.Validate(); err != nil {
			t.Fatalf("tick %d: Validate() = %v", s.Ticks(), err)
		}
		if s.Score() < lastScore {
			t.Fatalf("score decreased from %d to %d", lastScore, s.Score())
		}
		lastScore = s.Score()
	}

	if s.Score() == 0 {
		t.Error("autopilot should have scored in 20000 ticks")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s, clock := newTestSim(t, config.DefaultBreakoutConfig())
		RunHeadless(s, NewAutopilot(3), clock, 16*time.Millisecond, 5000)
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score {
		t.Errorf("scores differ: %d vs %d", a.Score, b.Score)
	}
}

func TestRunHeadlessStopsAtLimit(t *testing.T) {
	s, clock := newTestSim(t, config.DefaultBreakoutConfig())
	res := RunHeadless(s, NewAutopilot(1), clock, 16*time.Millisecond, 100)

	if res.Ticks != 100 {
		t.Errorf("Ticks = %d, expected 100", res.Ticks)
	}
	if res.Finished {
		t.Error("a 100 tick run should not finish the game")
	}
}

func TestValidateReportsBrokenState(t *testing.T) {
	s, _ := startedSim(t)
	s.ball.DX *= 2
	s.lives = -1
	s.paddle.X = -5

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
}

func hasCollision(r TickReport, kind CollisionKind) bool {
	for _, c := range r.Collisions {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

func hasEvent(events []GameEvent, want GameEvent) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
