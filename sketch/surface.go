package sketch

import (
	"image/color"
)

// Surface is a 2D drawing target with a canvas-style path API and a save/restore transform stack.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	ClearRect(x, y, w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	SetStrokeStyle(c color.Color)
}
