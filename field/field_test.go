package field

import (
	"errors"
	"math"
	"testing"

	"github.com/meghashyamc/curlplanet/geometry"
)

type constantNoise float64

func (c constantNoise) Noise(float64) float64 { return float64(c) }

func TestSimpleNoiseFormula(t *testing.T) {
	tests := []struct {
		seed, x float64
	}{
		{0, 0},
		{0, 1.5},
		{1, -2},
		{3.7, 100},
	}

	for _, tt := range tests {
		want := math.Sin(tt.seed + tt.x*math.Cos(tt.seed))
		if got := NewSimpleNoise(tt.seed).Noise(tt.x); got != want {
			t.Errorf("Noise(seed=%v, x=%v) = %v, want %v", tt.seed, tt.x, got, want)
		}
	}
}

func TestSimpleNoiseDeterministic(t *testing.T) {
	a := NewSimpleNoise(0.42)
	b := NewSimpleNoise(0.42)

	for x := -10.0; x <= 10; x += 0.37 {
		if a.Noise(x) != b.Noise(x) {
			t.Fatalf("noise differs at x=%v", x)
		}
	}
}

func TestSampleLength(t *testing.T) {
	curl := NewCurlField(NewSimpleNoise(0))
	points := []geometry.Vector{
		{X: 1, Y: 2},
		{X: -40, Y: 13.5},
		{X: 250, Y: -300},
		{X: 0.001, Y: 1000},
	}
	deltas := []float64{0.5, 1, 2, 10}

	for _, p := range points {
		for _, delta := range deltas {
			v := curl.Sample(p, 0.05, delta)
			if v.IsZero() {
				continue
			}
			want := 1 / (2 * delta)
			if math.Abs(v.Length()-want) > 1e-9 {
				t.Errorf("Sample(%v, delta=%v) length = %v, want %v", p, delta, v.Length(), want)
			}
		}
	}
}

func TestSampleZeroScaleReturnsZero(t *testing.T) {
	curl := NewCurlField(NewSimpleNoise(0))
	v := curl.Sample(geometry.Vector{X: 12, Y: -4}, 0, 1)

	if !v.IsZero() {
		t.Errorf("expected zero vector, got (%f, %f)", v.X, v.Y)
	}
	if !v.IsFinite() {
		t.Error("zero candidate must not produce NaN")
	}
}

func TestSampleFlatNoiseReturnsZero(t *testing.T) {
	curl := NewCurlField(constantNoise(0.3))
	v := curl.Sample(geometry.Vector{X: 5, Y: 5}, 0.05, 2)

	if !v.IsZero() {
		t.Errorf("expected zero vector for flat noise, got (%f, %f)", v.X, v.Y)
	}
}

func TestSampleSignConvention(t *testing.T) {
	noise := NewSimpleNoise(0)
	curl := NewCurlField(noise)
	p := geometry.Vector{X: 3, Y: 7}
	scale := 0.1

	left := noise.Noise(scale*p.X - scale)
	right := noise.Noise(scale*p.X + scale)
	up := noise.Noise(scale*p.Y - scale)
	down := noise.Noise(scale*p.Y + scale)

	want := geometry.Vector{X: up - down, Y: left - right}
	want.Normalize().Scale(0.5)

	got := curl.Sample(p, scale, 1)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("expected (%f, %f), got (%f, %f)", want.X, want.Y, got.X, got.Y)
	}
}

func TestNilNoiseDefaultsToSimple(t *testing.T) {
	a := NewCurlField(nil).Sample(geometry.Vector{X: 1, Y: 2}, 0.05, 1)
	b := NewCurlField(NewSimpleNoise(0)).Sample(geometry.Vector{X: 1, Y: 2}, 0.05, 1)

	if a != b {
		t.Errorf("expected %v, got %v", b, a)
	}
}

func TestNewNoise(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"", false},
		{NoiseKindSimple, false},
		{NoiseKindPerlin, false},
		{"simplex", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			n, err := NewNoise(tt.kind, 7)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownNoise) {
					t.Errorf("expected ErrUnknownNoise, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n == nil {
				t.Fatal("expected noise, got nil")
			}
		})
	}
}

func TestPerlinNoiseSeeded(t *testing.T) {
	a := NewPerlinNoise(99)
	b := NewPerlinNoise(99)

	for x := 0.0; x < 5; x += 0.25 {
		va, vb := a.Noise(x), b.Noise(x)
		if va != vb {
			t.Fatalf("same seed produced different values at x=%v: %v vs %v", x, va, vb)
		}
		if math.IsNaN(va) {
			t.Fatalf("perlin noise returned NaN at x=%v", x)
		}
	}
}
