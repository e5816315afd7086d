package sketch

import "time"

// Clock supplies the simulation time in seconds for each frame.
type Clock interface {
	Now() float64
}

// WallClock reads the system time as Unix seconds.
type WallClock struct{}

func (WallClock) Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// FixedClock advances by exactly one frame interval per Tick, independent of real time.
type FixedClock struct {
	start     float64
	frameTime time.Duration
	elapsed   time.Duration
}

func NewFixedClock(start float64, fps int) *FixedClock {
	if fps <= 0 {
		fps = 60
	}
	return &FixedClock{
		start:     start,
		frameTime: time.Second / time.Duration(fps),
	}
}

func (c *FixedClock) Now() float64 {
	return c.start + c.elapsed.Seconds()
}

func (c *FixedClock) Tick() {
	c.elapsed += c.frameTime
}

func (c *FixedClock) Reset() {
	c.elapsed = 0
}
