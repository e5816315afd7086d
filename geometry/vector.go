package geometry

import (
	"math"
)

// Vector is a mutable 2D vector. Mutating methods return the receiver so calls can be chained,
// e.g. p.Clone().Add(offset).
type Vector struct {
	X float64
	Y float64
}

func New(x, y float64) *Vector {
	return &Vector{X: x, Y: y}
}

// Add adds other to v in place
func (v *Vector) Add(other Vector) *Vector {
	v.X += other.X
	v.Y += other.Y
	return v
}

// Copy overwrites v with the components of other
func (v *Vector) Copy(other Vector) *Vector {
	v.X = other.X
	v.Y = other.Y
	return v
}

// Clone returns a new vector with the same components, leaving v untouched
func (v *Vector) Clone() *Vector {
	return &Vector{X: v.X, Y: v.Y}
}

// Scale multiplies both components by factor in place
func (v *Vector) Scale(factor float64) *Vector {
	v.X *= factor
	v.Y *= factor
	return v
}

// Length calculates the Euclidean norm of the vector
func (v *Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize divides v by its length in place.
// A zero vector yields NaN components; callers must check IsZero first.
func (v *Vector) Normalize() *Vector {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v *Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite
func (v *Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
