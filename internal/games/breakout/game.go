package breakout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameID identifies Breakout in the registry and in stored results.
const GameID = "breakout"

// keyHoldTicks keeps a direction active after a key press, since terminals
// only report key repeats and never key releases.
const keyHoldTicks = 6

// Minimum terminal size the field can be drawn into.
const (
	minScreenW = 30
	minScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events; nil disables event logging
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, _ := config.ParsePreset(preset)
	difficultyPreset = p
}

// SetLogger sets the logger used for game events.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig resolves the configuration from the CLI settings.
// Errors fall back to the built-in defaults.
func LoadConfig() config.BreakoutConfig {
	return LoadConfigWithPreset(difficultyPreset)
}

// LoadConfigWithPreset loads the configuration and applies the given preset
// instead of the package-wide one.
func LoadConfigWithPreset(preset config.DifficultyPreset) config.BreakoutConfig {
	cfg, err := config.LoadBreakoutWithPreset(configPath, preset)
	if err == nil {
		return cfg
	}
	if logger != nil {
		logger.Warn("using default config", "preset", preset, "err", err)
	}
	cfg = config.DefaultBreakoutConfig()
	config.ApplyBreakoutPreset(&cfg, preset)
	return cfg
}

// Game adapts Sim to the platform game interface: it maps actions to
// commands, owns the cosmetic particles and draws into a cell screen.
type Game struct {
	sim       *Sim
	cfg       config.BreakoutConfig
	particles *Particles
	runtime   core.RuntimeConfig
	layout    layout

	dir      Direction
	dirTicks int

	// preset overrides the package-wide difficulty when set
	preset    config.DifficultyPreset
	hasPreset bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// SetPreset pins the difficulty for this instance, e.g. one SSH session.
func (g *Game) SetPreset(name string) {
	g.preset, _ = config.ParsePreset(name)
	g.hasPreset = true
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.hasPreset {
		g.ResetWithConfig(runtime, LoadConfigWithPreset(g.preset))
		return
	}
	g.ResetWithConfig(runtime, LoadConfig())
}

// ResetWithConfig initializes the game with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []Option{
		WithClock(runtime.Clock),
		WithSeed(seed),
		WithObserver(ObserverFunc(g.onEvent)),
	}
	if logger != nil {
		opts = append(opts, WithObserver(EventLogger(logger)))
	}

	g.sim = NewSim(cfg, opts...)
	g.particles = NewParticles(cfg.Particles, seed+1)
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, cfg.Field.Width, cfg.Field.Height)
	g.dir = DirNone
	g.dirTicks = 0
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Resize recomputes the field-to-cell mapping without touching the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = newLayout(w, h, g.cfg.Field.Width, g.cfg.Field.Height)
}

// onEvent spawns particles for destroyed bricks.
func (g *Game) onEvent(e GameEvent) {
	switch ev := e.(type) {
	case BrickDestroyed:
		g.particles.Burst(ev.X, ev.Y, ev.Color)
	case LevelChanged:
		if ev.Level == 1 {
			g.particles.Clear()
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.sim.Restart()
	case in.Has(core.ActionLaunch):
		if g.sim.Phase() == PhaseIdle {
			g.sim.Start()
		} else {
			g.sim.TogglePause()
		}
	case in.Has(core.ActionPause):
		g.sim.TogglePause()
	}

	g.updateDirection(in)

	if in.Pointer.Active {
		if x, ok := g.layout.fieldX(in.Pointer.X); ok {
			w := g.sim.Paddle().Width
			if core.PointInPaddleRange(x, w/2, g.cfg.Field.Width-w) {
				g.sim.SetPaddleAbsoluteX(x)
			}
		}
	}

	report := g.sim.Tick()
	if report.Advanced {
		g.particles.Update()
	}

	return core.StepResult{State: g.State()}
}

// updateDirection turns key presses into a held direction.
func (g *Game) updateDirection(in core.InputFrame) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.dir, g.dirTicks = DirLeft, keyHoldTicks
	case right && !left:
		g.dir, g.dirTicks = DirRight, keyHoldTicks
	case g.dirTicks > 0:
		g.dirTicks--
	default:
		g.dir = DirNone
	}
	g.sim.SetHorizontalInput(g.dir)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.sim.Phase()
	return core.GameState{
		Score:    g.sim.Score(),
		Level:    g.sim.Level(),
		Lives:    g.sim.Lives(),
		GameOver: phase == PhaseGameOver,
		Won:      g.sim.Won(),
		Paused:   phase == PhasePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
