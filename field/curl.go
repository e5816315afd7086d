package field

import (
	"github.com/meghashyamc/curlplanet/geometry"
)

// CurlField derives a swirling 2D vector field from a scalar Noise by finite-differencing it
// along each axis and rotating the gradient by 90 degrees.
type CurlField struct {
	noise Noise
}

func NewCurlField(noise Noise) *CurlField {
	if noise == nil {
		noise = NewSimpleNoise(0)
	}
	return &CurlField{noise: noise}
}

// Sample returns the field vector at p. The result has length 1/(2*delta), or is the zero
// vector when the finite differences cancel on both axes.
func (c *CurlField) Sample(p geometry.Vector, scale, delta float64) geometry.Vector {
	scaledX := scale * p.X
	scaledY := scale * p.Y

	left := c.noise.Noise(scaledX - scale)
	right := c.noise.Noise(scaledX + scale)
	up := c.noise.Noise(scaledY - scale)
	down := c.noise.Noise(scaledY + scale)

	curl := geometry.Vector{X: up - down, Y: left - right}
	if curl.IsZero() {
		return geometry.Vector{}
	}

	curl.Normalize().Scale(1.0 / (2.0 * delta))
	return curl
}
