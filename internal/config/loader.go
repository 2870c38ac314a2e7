package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no --config flag is given.
const EnvConfigPath = "BREAKOUT_CONFIG"

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	var cfg BreakoutConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "breakout.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (BreakoutConfig, bool) {
	var cfg BreakoutConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}

// LoadBreakoutWithPreset loads the configuration and applies a difficulty
// preset on top. A preset can break a valid custom config (a wide paddle on a
// narrow field), so the result is validated again.
func LoadBreakoutWithPreset(customPath string, preset DifficultyPreset) (BreakoutConfig, error) {
	cfg, err := LoadBreakout(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: preset %s: %w", preset, err)
	}
	return cfg, nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 6.5
	}
}

// Validate reports every invalid field at once.
func (c BreakoutConfig) Validate() error {
	var errs []error
	add := func(field string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("invalid %s: "+format, append([]any{field}, args...)...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		add("field", "size %gx%g must be positive", c.Field.Width, c.Field.Height)
	}
	if c.Ball.Radius <= 0 {
		add("ball.radius", "%g must be positive", c.Ball.Radius)
	}
	if c.Ball.Speed <= 0 {
		add("ball.speed", "%g must be positive", c.Ball.Speed)
	}
	if c.Ball.SpeedStep < 0 {
		add("ball.speed_step", "%g must not be negative", c.Ball.SpeedStep)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		add("paddle", "size %gx%g must be positive", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > c.Field.Width {
		add("paddle.width", "%g exceeds field width %g", c.Paddle.Width, c.Field.Width)
	}
	if c.Paddle.Speed < 0 {
		add("paddle.speed", "%g must not be negative", c.Paddle.Speed)
	}
	if c.Paddle.BottomOffset <= 0 || c.Paddle.BottomOffset >= c.Field.Height {
		add("paddle.bottom_offset", "%g must lie inside the field", c.Paddle.BottomOffset)
	}
	if c.Ball.StartOffset < c.Paddle.BottomOffset+c.Ball.Radius {
		add("ball.start_offset", "%g must clear the paddle (>= %g)", c.Ball.StartOffset, c.Paddle.BottomOffset+c.Ball.Radius)
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		add("bricks", "grid %dx%d must be positive", c.Bricks.Rows, c.Bricks.Cols)
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		add("bricks", "brick size %gx%g must be positive", c.Bricks.Width, c.Bricks.Height)
	}
	if c.Bricks.PointsPerRow < 0 {
		add("bricks.points_per_row", "%d must not be negative", c.Bricks.PointsPerRow)
	}
	if len(c.Bricks.Colors) == 0 {
		add("bricks.colors", "at least one colour is required")
	}
	if c.Bricks.Cols > 0 && c.Bricks.Rows > 0 {
		right := c.Bricks.OffsetLeft + float64(c.Bricks.Cols)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
		if right > c.Field.Width {
			add("bricks", "grid right edge %g exceeds field width %g", right, c.Field.Width)
		}
		bottom := c.Bricks.OffsetTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
		if bottom > c.Field.Height-c.Paddle.BottomOffset {
			add("bricks", "grid bottom edge %g overlaps the paddle row", bottom)
		}
	}
	if c.Gameplay.Lives <= 0 {
		add("gameplay.lives", "%d must be positive", c.Gameplay.Lives)
	}
	if c.Gameplay.TransitionDelay < 0 {
		add("gameplay.transition_delay", "%d must not be negative", c.Gameplay.TransitionDelay)
	}
	if c.Particles.Count < 0 {
		add("particles.count", "%d must not be negative", c.Particles.Count)
	}
	if c.Particles.Count > 0 && c.Particles.Decay <= 0 {
		add("particles.decay", "%g must be positive", c.Particles.Decay)
	}
	if c.Particles.MaxRadius < c.Particles.MinRadius {
		add("particles", "max_radius %g is below min_radius %g", c.Particles.MaxRadius, c.Particles.MinRadius)
	}

	return errors.Join(errs...)
}
