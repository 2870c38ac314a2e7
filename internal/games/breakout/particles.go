package breakout

import (
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Particle is a short-lived visual effect. It never affects the simulation.
type Particle struct {
	X, Y   float64 // Position in field units
	DX, DY float64 // Velocity per tick
	Radius float64
	Color  core.Color
	Life   float64 // 1 when spawned, removed at 0
}

// Particles holds the bursts spawned by destroyed bricks.
type Particles struct {
	cfg  config.ParticlesConfig
	rng  *rand.Rand
	list []Particle
}

// NewParticles creates an empty particle system.
func NewParticles(cfg config.ParticlesConfig, seed int64) *Particles {
	return &Particles{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), //#nosec G404 -- cosmetic randomness
	}
}

// Burst spawns a ring of particles at x, y in the given colour.
func (p *Particles) Burst(x, y float64, color core.Color) {
	for range p.cfg.Count {
		p.list = append(p.list, Particle{
			X:      x,
			Y:      y,
			DX:     (p.rng.Float64()*2 - 1) * p.cfg.Spread,
			DY:     (p.rng.Float64()*2 - 1) * p.cfg.Spread,
			Radius: p.cfg.MinRadius + p.rng.Float64()*(p.cfg.MaxRadius-p.cfg.MinRadius),
			Color:  color,
			Life:   1,
		})
	}
}

// Update moves every particle and drops the expired ones.
func (p *Particles) Update() {
	alive := p.list[:0]
	for _, pt := range p.list {
		pt.X += pt.DX
		pt.Y += pt.DY
		pt.Life -= p.cfg.Decay
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	p.list = alive
}

// Clear removes all particles.
func (p *Particles) Clear() {
	p.list = p.list[:0]
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.list)
}

// Each calls fn for every live particle.
func (p *Particles) Each(fn func(Particle)) {
	for _, pt := range p.list {
		fn(pt)
	}
}
