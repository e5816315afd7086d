package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten screen image. The transform stack outlives a single
// frame, so call SetTarget with the new screen at the start of every Draw.
type EbitenSurface struct {
	target     *ebiten.Image
	background color.Color
	stroke     color.Color

	geoM   ebiten.GeoM
	saved  []ebiten.GeoM
	path   []line
	penX   float64
	penY   float64
	hasPen bool
}

func NewEbitenSurface(background color.Color) *EbitenSurface {
	if background == nil {
		background = color.Black
	}
	return &EbitenSurface{
		background: background,
		stroke:     color.Black,
	}
}

func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *EbitenSurface) BeginPath() {
	s.path = s.path[:0]
	s.hasPen = false
}

func (s *EbitenSurface) MoveTo(x, y float64) {
	s.penX, s.penY = s.geoM.Apply(x, y)
	s.hasPen = true
}

func (s *EbitenSurface) LineTo(x, y float64) {
	tx, ty := s.geoM.Apply(x, y)
	if !s.hasPen {
		s.penX, s.penY = tx, ty
		s.hasPen = true
		return
	}
	s.path = append(s.path, line{x0: s.penX, y0: s.penY, x1: tx, y1: ty})
	s.penX, s.penY = tx, ty
}

func (s *EbitenSurface) Stroke() {
	if s.target == nil {
		return
	}
	for _, l := range s.path {
		vector.StrokeLine(s.target, float32(l.x0), float32(l.y0), float32(l.x1), float32(l.y1), lineWidth, s.stroke, true)
	}
}

func (s *EbitenSurface) ClearRect(x, y, w, h float64) {
	if s.target == nil {
		return
	}
	x0, y0 := s.geoM.Apply(x, y)
	x1, y1 := s.geoM.Apply(x+w, y+h)
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	r = r.Intersect(s.target.Bounds())
	if r.Empty() {
		return
	}
	s.target.SubImage(r).(*ebiten.Image).Fill(s.background)
}

func (s *EbitenSurface) Save() {
	s.saved = append(s.saved, s.geoM)
}

func (s *EbitenSurface) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.geoM = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *EbitenSurface) Translate(x, y float64) {
	// Canvas translate applies before the existing transform.
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(s.geoM)
	s.geoM = t
}

func (s *EbitenSurface) SetStrokeStyle(c color.Color) {
	s.stroke = c
}
