package pong

import "github.com/vovakirdan/neon-pong/internal/core"

// Particle tuning
const (
	particleSpread = 8    // Initial velocity range, centered on zero
	particleDecay  = 0.02 // Life lost per frame
	particleDrag   = 0.98 // Velocity kept per frame
	particleMinSz  = 2
	particleSzVar  = 4
)

// Particle is one spark of an explosion burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 when spawned, removed once it reaches 0
	Size   float64
	Color  core.Color
}

// explode spawns a burst of ParticleCount particles at (x, y).
func (g *Game) explode(x, y float64, c core.Color) {
	for range g.cfg.Gameplay.ParticleCount {
		g.particles = append(g.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (g.rng.Float64() - 0.5) * particleSpread,
			VY:    (g.rng.Float64() - 0.5) * particleSpread,
			Life:  1,
			Size:  g.rng.Float64()*particleSzVar + particleMinSz,
			Color: c,
		})
	}
}

// update advances the particle by one frame.
func (p *Particle) update() {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= particleDecay
	p.VX *= particleDrag
	p.VY *= particleDrag
}

// updateParticles advances every particle and drops the dead ones in place.
func (g *Game) updateParticles() {
	alive := g.particles[:0]
	for i := range g.particles {
		p := g.particles[i]
		p.update()
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive
}
