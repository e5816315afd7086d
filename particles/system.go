package particles

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/meghashyamc/curlplanet/field"
	"github.com/meghashyamc/curlplanet/geometry"
)

// Rand is a uniform random source on [0, 1).
type Rand interface {
	Float64() float64
}

// Frame summarises one Step.
type Frame struct {
	Time       float64
	Offset     geometry.Vector
	Segments   []Segment
	Drawn      int
	Suppressed int
	Respawned  int
}

// System owns a fixed set of particles and advances them one frame at a time.
// It is not safe for concurrent use; Step must not overlap with itself.
type System struct {
	cfg       Config
	curl      *field.CurlField
	rng       Rand
	particles []Particle
	gridSide  int

	workers int
	results []advanceResult
}

type Option func(*System)

// WithWorkers splits the per-particle advection across n goroutines. Values below 2 keep the
// update sequential. Output is identical either way.
func WithWorkers(n int) Option {
	return func(s *System) {
		s.workers = n
	}
}

// New validates cfg and lays out gridSide² particles over a square of side cfg.Radius centered
// on the origin. A nil noise selects SimpleNoise seeded with cfg.NoiseSeed; a nil rng selects a
// time-seeded source.
func New(cfg Config, noise field.Noise, rng Rand, opts ...Option) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if noise == nil {
		noise = field.NewSimpleNoise(cfg.NoiseSeed)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &System{
		cfg:      cfg,
		curl:     field.NewCurlField(noise),
		rng:      rng,
		gridSide: cfg.GridSide(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.particles = make([]Particle, 0, s.gridSide*s.gridSide)
	for i := 0; i < s.gridSide; i++ {
		for j := 0; j < s.gridSide; j++ {
			s.particles = append(s.particles, newParticle(i, j, s.gridSide, cfg.Radius, s.rng.Float64()*cfg.InitialLifeMax))
		}
	}

	if s.workers > 1 {
		s.results = make([]advanceResult, len(s.particles))
	}

	return s, nil
}

// Step advances every particle by one frame at time t (seconds) and returns the draw requests
// in particle order.
func (s *System) Step(t float64) Frame {
	segments := make([]Segment, 0, len(s.particles))
	frame := s.StepInto(t, func(seg Segment) {
		segments = append(segments, seg)
	})
	frame.Segments = segments
	return frame
}

// StepInto is Step with the draw requests streamed to emit instead of collected.
func (s *System) StepInto(t float64, emit func(Segment)) Frame {
	frame := Frame{Time: t, Offset: s.offset(t)}

	if s.workers > 1 && len(s.particles) >= parallelThreshold {
		s.advanceParallel(frame.Offset)
		for i := range s.particles {
			r := s.results[i]
			s.record(&frame, r.segment, r.drawn, emit)
			if s.particles[i].age(s.rng, s.cfg.RespawnLifeMax) {
				frame.Respawned++
			}
		}
		return frame
	}

	for i := range s.particles {
		p := &s.particles[i]
		seg, drawn := s.advance(p, frame.Offset)
		s.record(&frame, seg, drawn, emit)
		if p.age(s.rng, s.cfg.RespawnLifeMax) {
			frame.Respawned++
		}
	}
	return frame
}

func (s *System) record(frame *Frame, seg Segment, drawn bool, emit func(Segment)) {
	if !drawn {
		frame.Suppressed++
		return
	}
	frame.Drawn++
	if emit != nil {
		emit(seg)
	}
}

// offset is the global drift shared by every particle in a frame.
func (s *System) offset(t float64) geometry.Vector {
	o := geometry.Vector{X: t * s.cfg.TimeScaleX, Y: t * s.cfg.TimeScaleY}
	o.Add(s.curl.Sample(o, s.cfg.OffsetScale, s.cfg.OffsetDelta))
	return o
}

// advance moves p along the field sampled at its offset position and projects the result.
// drawn is false when the particle is outside the cull radius.
func (s *System) advance(p *Particle, o geometry.Vector) (seg Segment, drawn bool) {
	n := p.Position.Clone().Add(o)
	p.Position.Add(s.curl.Sample(*n, s.cfg.FieldScale, 1))

	length := p.Position.Length()
	if length > s.cfg.Radius*s.cfg.CullFactor {
		return Segment{}, false
	}

	return projectSegment(p.Position, length, s.cfg.K, s.cfg.Radius), true
}

// Project maps position through the hyperbolic transform position/(|position|+k)*radius.
func Project(position geometry.Vector, k, radius float64) geometry.Vector {
	return projectSegment(position, position.Length(), k, radius).From
}

func projectSegment(position geometry.Vector, length, k, radius float64) Segment {
	x := position.X / (length + k) * radius
	y := position.Y / (length + k) * radius
	return Segment{
		From: geometry.Vector{X: x, Y: y},
		To:   geometry.Vector{X: x + 1, Y: y},
	}
}

// Reset returns every particle to its origin with a fresh initial life.
func (s *System) Reset() {
	for i := range s.particles {
		p := &s.particles[i]
		p.Position.Copy(p.Origin)
		p.Life = s.rng.Float64() * s.cfg.InitialLifeMax
	}
}

func (s *System) Len() int {
	return len(s.particles)
}

func (s *System) GridSide() int {
	return s.gridSide
}

func (s *System) Config() Config {
	return s.cfg
}

// Particle returns a copy of the i-th particle.
func (s *System) Particle(i int) (Particle, error) {
	if i < 0 || i >= len(s.particles) {
		return Particle{}, fmt.Errorf("particle index %d out of range [0, %d)", i, len(s.particles))
	}
	return s.particles[i], nil
}

// Particles returns a snapshot of all particles in insertion order.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}
