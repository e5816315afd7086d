package field

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	NoiseKindSimple = "simple"
	NoiseKindPerlin = "perlin"
)

// Perlin tuning used when the gradient-noise primitive is selected.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

var ErrUnknownNoise = errors.New("unknown noise kind")

// Noise is a scalar function of one input used as the primitive under the curl field.
type Noise interface {
	Noise(x float64) float64
}

// SimpleNoise is a cheap oscillating stand-in for gradient noise: sin(seed + x*cos(seed)).
type SimpleNoise struct {
	Seed float64
}

func NewSimpleNoise(seed float64) SimpleNoise {
	return SimpleNoise{Seed: seed}
}

func (n SimpleNoise) Noise(x float64) float64 {
	return math.Sin(n.Seed + x*math.Cos(n.Seed))
}

// PerlinNoise samples one-dimensional gradient noise.
type PerlinNoise struct {
	p *perlin.Perlin
}

func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (n *PerlinNoise) Noise(x float64) float64 {
	return n.p.Noise1D(x)
}

// NewNoise builds the primitive named by kind. An empty kind selects SimpleNoise.
func NewNoise(kind string, seed float64) (Noise, error) {
	switch kind {
	case "", NoiseKindSimple:
		return NewSimpleNoise(seed), nil
	case NoiseKindPerlin:
		return NewPerlinNoise(int64(seed)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoise, kind)
	}
}
