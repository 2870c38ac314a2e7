package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:      10,
			Speed:       5,
			SpeedStep:   0.5,
			StartOffset: 50,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			Speed:        8,
			BottomOffset: 30,
		},
		Bricks: BricksConfig{
			Rows:         5,
			Cols:         10,
			Width:        70,
			Height:       25,
			Padding:      5,
			OffsetTop:    50,
			OffsetLeft:   35,
			PointsPerRow: 10,
			Colors:       []string{"#ff6b6b", "#feca57", "#48dbfb", "#1dd1a1", "#5f27cd"},
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			TransitionDelay: 1000,
		},
		Particles: ParticlesConfig{
			Count:     10,
			Spread:    4,
			Decay:     0.02,
			MinRadius: 1,
			MaxRadius: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
