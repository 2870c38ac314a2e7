// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout platform.
package config

// BreakoutConfig contains all configuration for the Breakout simulation.
// Geometry is expressed in field units, not terminal cells.
type BreakoutConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Particles ParticlesConfig `yaml:"particles"`
}

// FieldConfig defines the playing field bounds.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball geometry and speed.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Base speed, field units per tick
	SpeedStep   float64 `yaml:"speed_step"`   // Added on every level-up
	StartOffset float64 `yaml:"start_offset"` // Distance from the bottom edge on serve
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the paddle top from the bottom edge
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows         int      `yaml:"rows"`
	Cols         int      `yaml:"cols"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	Padding      float64  `yaml:"padding"`
	OffsetTop    float64  `yaml:"offset_top"`
	OffsetLeft   float64  `yaml:"offset_left"`
	PointsPerRow int      `yaml:"points_per_row"`
	Colors       []string `yaml:"colors"` // One per row, cycled
}

// GameplayConfig defines lives and transition timing.
type GameplayConfig struct {
	Lives           int  `yaml:"lives"`
	TransitionDelay int  `yaml:"transition_delay"` // Milliseconds
	ServeOnRestart  bool `yaml:"serve_on_restart"` // Restart into Idle instead of Running
}

// ParticlesConfig defines the cosmetic brick burst.
type ParticlesConfig struct {
	Count     int     `yaml:"count"`
	Spread    float64 `yaml:"spread"`
	Decay     float64 `yaml:"decay"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Unknown names yield normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}
