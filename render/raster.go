package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const lineWidth = 1.0

type line struct {
	x0, y0, x1, y1 float64
}

// RasterSurface draws onto an in-memory RGBA image. Lines are stroked as 1-unit-wide quads
// through a vector.Rasterizer, so a dot of length 1 covers exactly one pixel-sized square.
type RasterSurface struct {
	img        *image.RGBA
	rasterizer *vector.Rasterizer
	background image.Image
	stroke     image.Image

	transform transformStack
	path      []line
	penX      float64
	penY      float64
	hasPen    bool

	clipped int
}

// NewRasterSurface creates a width x height surface. ClearRect fills with background.
func NewRasterSurface(width, height int, background color.Color) *RasterSurface {
	if background == nil {
		background = color.Transparent
	}
	s := &RasterSurface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
		background: image.NewUniform(background),
		stroke:     image.NewUniform(color.Black),
		transform:  newTransformStack(),
	}
	s.rasterizer.DrawOp = draw.Over
	return s
}

func (s *RasterSurface) BeginPath() {
	s.path = s.path[:0]
	s.hasPen = false
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.penX, s.penY = s.transform.apply(x, y)
	s.hasPen = true
}

func (s *RasterSurface) LineTo(x, y float64) {
	tx, ty := s.transform.apply(x, y)
	if !s.hasPen {
		s.penX, s.penY = tx, ty
		s.hasPen = true
		return
	}
	s.path = append(s.path, line{x0: s.penX, y0: s.penY, x1: tx, y1: ty})
	s.penX, s.penY = tx, ty
}

// Stroke rasterizes the current path, clipped to the image. Lines entirely outside it are
// skipped and counted by Clipped.
func (s *RasterSurface) Stroke() {
	bounds := s.img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	s.rasterizer.Reset(bounds.Dx(), bounds.Dy())
	filled := false
	for _, l := range s.path {
		dx, dy := l.x1-l.x0, l.y1-l.y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*lineWidth/2, dx/length*lineWidth/2

		corners := [4][2]float64{
			{l.x0 + nx, l.y0 + ny},
			{l.x1 + nx, l.y1 + ny},
			{l.x1 - nx, l.y1 - ny},
			{l.x0 - nx, l.y0 - ny},
		}
		if outside(corners, w, h) {
			s.clipped++
			continue
		}

		s.rasterizer.MoveTo(float32(corners[0][0]), float32(corners[0][1]))
		for _, c := range corners[1:] {
			s.rasterizer.LineTo(float32(c[0]), float32(c[1]))
		}
		s.rasterizer.ClosePath()
		filled = true
	}

	if filled {
		s.rasterizer.Draw(s.img, bounds, s.stroke, image.Point{})
	}
}

// outside reports whether the quad lies wholly beyond one edge of a w x h image.
func outside(corners [4][2]float64, w, h float64) bool {
	left, right, above, below := true, true, true, true
	for _, c := range corners {
		left = left && c[0] <= 0
		right = right && c[0] >= w
		above = above && c[1] <= 0
		below = below && c[1] >= h
	}
	return left || right || above || below
}

func (s *RasterSurface) ClearRect(x, y, w, h float64) {
	x0, y0 := s.transform.apply(x, y)
	x1, y1 := s.transform.apply(x+w, y+h)
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), s.background, image.Point{}, draw.Src)
}

func (s *RasterSurface) Save() {
	s.transform.save()
}

func (s *RasterSurface) Restore() {
	s.transform.restore()
}

func (s *RasterSurface) Translate(x, y float64) {
	s.transform.translate(x, y)
}

func (s *RasterSurface) SetStrokeStyle(c color.Color) {
	s.stroke = image.NewUniform(c)
}

// Image returns the backing image. It is reused across frames.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Clipped counts lines skipped for reaching outside the image.
func (s *RasterSurface) Clipped() int {
	return s.clipped
}
