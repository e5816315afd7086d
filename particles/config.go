package particles

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid particle system config")

// MaxGridSide bounds the particle grid to MaxGridSide² particles.
const MaxGridSide = 4096

// Canvas size the default radius is derived from.
const (
	DefaultCanvasWidth  = 1900.0
	DefaultCanvasHeight = 1850.0
)

// Config holds the constants for one simulation instance. They are fixed at construction.
type Config struct {
	// K controls how tightly the hyperbolic projection packs particles toward the center.
	// Large values give a small dense planet, small values a disk with a dark core.
	K          float64
	FieldScale float64
	Radius     float64
	// Density is grid cells per unit of radius; the grid side is floor(Radius*Density).
	Density   float64
	NoiseSeed float64

	InitialLifeMax float64
	RespawnLifeMax float64
	// Particles further than Radius*CullFactor from the origin are not drawn.
	CullFactor float64

	// The per-frame drift offset is (t*TimeScaleX, t*TimeScaleY) advected once by the field
	// sampled at OffsetScale/OffsetDelta.
	OffsetScale float64
	OffsetDelta float64
	TimeScaleX  float64
	TimeScaleY  float64
}

func DefaultConfig() Config {
	radius := math.Min(DefaultCanvasWidth, DefaultCanvasHeight) / 3.3
	return Config{
		K:              25,
		FieldScale:     0.05,
		Radius:         radius,
		Density:        150.5 / radius,
		NoiseSeed:      0,
		InitialLifeMax: 50,
		RespawnLifeMax: 100,
		CullFactor:     0.45,
		OffsetScale:    0.05,
		OffsetDelta:    2,
		TimeScaleX:     10,
		TimeScaleY:     2,
	}
}

// GridSide is the number of particles along each side of the initial grid.
func (c Config) GridSide() int {
	return int(math.Floor(c.Radius * c.Density))
}

func (c Config) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"k", c.K},
		{"field_scale", c.FieldScale},
		{"radius", c.Radius},
		{"density", c.Density},
		{"noise_seed", c.NoiseSeed},
		{"initial_life_max", c.InitialLifeMax},
		{"respawn_life_max", c.RespawnLifeMax},
		{"cull_factor", c.CullFactor},
		{"offset_scale", c.OffsetScale},
		{"offset_delta", c.OffsetDelta},
		{"time_scale_x", c.TimeScaleX},
		{"time_scale_y", c.TimeScaleY},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, v.name, v.value)
		}
	}

	switch {
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidConfig, c.Radius)
	case c.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %v", ErrInvalidConfig, c.Density)
	case c.Radius*c.Density >= MaxGridSide+1:
		return fmt.Errorf("%w: radius*density must be below %d, got %v", ErrInvalidConfig, MaxGridSide+1, c.Radius*c.Density)
	case c.GridSide() < 1:
		return fmt.Errorf("%w: radius*density must be at least 1, got %v", ErrInvalidConfig, c.Radius*c.Density)
	case c.K <= 0:
		return fmt.Errorf("%w: k must be positive, got %v", ErrInvalidConfig, c.K)
	case c.InitialLifeMax <= 0:
		return fmt.Errorf("%w: initial_life_max must be positive, got %v", ErrInvalidConfig, c.InitialLifeMax)
	case c.RespawnLifeMax <= 0:
		return fmt.Errorf("%w: respawn_life_max must be positive, got %v", ErrInvalidConfig, c.RespawnLifeMax)
	case c.CullFactor <= 0:
		return fmt.Errorf("%w: cull_factor must be positive, got %v", ErrInvalidConfig, c.CullFactor)
	case c.OffsetDelta <= 0:
		return fmt.Errorf("%w: offset_delta must be positive, got %v", ErrInvalidConfig, c.OffsetDelta)
	}

	return nil
}
