package telemetry

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/meghashyamc/curlplanet/particles"
)

// FrameStats is one row of per-frame telemetry.
type FrameStats struct {
	Frame      int     `csv:"frame" yaml:"frame"`
	Time       float64 `csv:"time" yaml:"time"`
	Drawn      int     `csv:"drawn" yaml:"drawn"`
	Suppressed int     `csv:"suppressed" yaml:"suppressed"`
	Respawned  int     `csv:"respawned" yaml:"respawned"`
	// Distance of drawn dots from the projection center, in canvas units.
	MeanRadius float64 `csv:"mean_radius" yaml:"mean_radius"`
	StdRadius  float64 `csv:"std_radius" yaml:"std_radius"`
	StepMillis float64 `csv:"step_ms" yaml:"step_ms"`
}

// Summary aggregates every frame seen by a Collector.
type Summary struct {
	Frames         int     `yaml:"frames"`
	MeanDrawn      float64 `yaml:"mean_drawn"`
	MeanSuppressed float64 `yaml:"mean_suppressed"`
	TotalRespawned int     `yaml:"total_respawned"`
	MeanStepMillis float64 `yaml:"mean_step_ms"`
}

type stepper interface {
	StepInto(t float64, emit func(particles.Segment)) particles.Frame
}

// Collector wraps a simulation and measures every frame passing through it.
type Collector struct {
	inner stepper
	radii []float64

	last       FrameStats
	frames     int
	drawn      []float64
	suppressed []float64
	stepMillis []float64
	respawned  int
}

func NewCollector(inner stepper) *Collector {
	return &Collector{inner: inner}
}

// StepInto forwards to the wrapped simulation, recording each segment on the way through.
func (c *Collector) StepInto(t float64, emit func(particles.Segment)) particles.Frame {
	c.radii = c.radii[:0]
	start := time.Now()

	frame := c.inner.StepInto(t, func(seg particles.Segment) {
		c.radii = append(c.radii, math.Hypot(seg.From.X, seg.From.Y))
		if emit != nil {
			emit(seg)
		}
	})

	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	c.last = FrameStats{
		Frame:      c.frames,
		Time:       frame.Time,
		Drawn:      frame.Drawn,
		Suppressed: frame.Suppressed,
		Respawned:  frame.Respawned,
		MeanRadius: mean(c.radii),
		StdRadius:  stdDev(c.radii),
		StepMillis: elapsed,
	}

	c.frames++
	c.drawn = append(c.drawn, float64(frame.Drawn))
	c.suppressed = append(c.suppressed, float64(frame.Suppressed))
	c.stepMillis = append(c.stepMillis, elapsed)
	c.respawned += frame.Respawned

	return frame
}

// Last returns the stats of the most recent frame.
func (c *Collector) Last() FrameStats {
	return c.last
}

func (c *Collector) Summary() Summary {
	return Summary{
		Frames:         c.frames,
		MeanDrawn:      mean(c.drawn),
		MeanSuppressed: mean(c.suppressed),
		TotalRespawned: c.respawned,
		MeanStepMillis: mean(c.stepMillis),
	}
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

func stdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.StdDev(x, nil)
}
