package particles

import (
	"github.com/meghashyamc/curlplanet/geometry"
)

// Particle is a point advected by the curl field. Origin is fixed at creation and is where the
// particle returns when its Life runs out.
type Particle struct {
	Position geometry.Vector
	Origin   geometry.Vector
	Life     float64
}

func newParticle(i, j, gridSide int, radius, life float64) Particle {
	n := float64(gridSide)
	position := geometry.Vector{
		X: float64(j)/n*radius - radius/2,
		Y: float64(i)/n*radius - radius/2,
	}
	return Particle{
		Position: position,
		Origin:   position,
		Life:     life,
	}
}

// age counts down one frame of life and respawns the particle at its origin once life drops
// below zero. It reports whether a respawn happened.
func (p *Particle) age(rng Rand, lifeMax float64) bool {
	p.Life--
	if p.Life >= 0 {
		return false
	}
	p.Position.Copy(p.Origin)
	p.Life = rng.Float64() * lifeMax
	return true
}

// Segment is a line-segment draw request in projected coordinates.
type Segment struct {
	From geometry.Vector
	To   geometry.Vector
}
