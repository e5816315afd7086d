package sketch

import (
	"errors"
	"sync/atomic"

	"github.com/meghashyamc/curlplanet/logger"
	"github.com/meghashyamc/curlplanet/particles"
)

var ErrStopped = errors.New("driver stopped")

// Stepper advances a simulation by one frame, streaming its draw requests.
type Stepper interface {
	StepInto(t float64, emit func(particles.Segment)) particles.Frame
}

type ticker interface {
	Tick()
}

// Driver renders one simulation frame per call to Frame until Stop is called.
// Frame must not be called concurrently; Stop may be called from any goroutine.
type Driver struct {
	stepper Stepper
	style   Style
	clock   Clock
	logger  logger.Logger

	frames  atomic.Uint64
	saved   bool
	stopped atomic.Bool
}

func NewDriver(stepper Stepper, style Style, clock Clock, log logger.Logger) *Driver {
	if clock == nil {
		clock = WallClock{}
	}
	return &Driver{
		stepper: stepper,
		style:   style,
		clock:   clock,
		logger:  log,
	}
}

// Frame draws the next frame onto s. The transform saved for the particle pass is restored at
// the start of the following frame.
func (d *Driver) Frame(s Surface) (particles.Frame, error) {
	if d.stopped.Load() {
		return particles.Frame{}, ErrStopped
	}

	if d.saved {
		s.Restore()
		d.saved = false
	}

	s.SetStrokeStyle(d.style.Stroke)
	s.ClearRect(0, 0, d.style.Width, d.style.Height)

	s.Save()
	d.saved = true
	s.Translate(d.style.OriginX, d.style.OriginY)

	s.BeginPath()
	frame := d.stepper.StepInto(d.clock.Now(), func(seg particles.Segment) {
		s.MoveTo(seg.From.X, seg.From.Y)
		s.LineTo(seg.To.X, seg.To.Y)
	})
	s.Stroke()

	if t, ok := d.clock.(ticker); ok {
		t.Tick()
	}

	if d.frames.Add(1) == 1 {
		d.logger.Debug("first frame rendered", "time", frame.Time, "drawn", frame.Drawn, "suppressed", frame.Suppressed)
	}

	return frame, nil
}

// Stop ends the animation; later calls to Frame return ErrStopped.
func (d *Driver) Stop() {
	if d.stopped.Swap(true) {
		return
	}
	d.logger.Info("driver stopped", "frames", d.frames.Load())
}

func (d *Driver) Stopped() bool {
	return d.stopped.Load()
}

func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

func (d *Driver) Style() Style {
	return d.style
}
