package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/meghashyamc/curlplanet/sketch"
)

var (
	_ sketch.Surface = (*Recorder)(nil)
	_ sketch.Surface = (*RasterSurface)(nil)
	_ sketch.Surface = (*EbitenSurface)(nil)
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func TestRecorderOps(t *testing.T) {
	r := NewRecorder()
	r.SetStrokeStyle(red)
	r.ClearRect(0, 0, 10, 20)
	r.Save()
	r.Translate(1, 2)
	r.BeginPath()
	r.MoveTo(3, 4)
	r.LineTo(4, 4)
	r.Stroke()
	r.Restore()

	want := []Op{OpSetStrokeStyle, OpClearRect, OpSave, OpTranslate, OpBeginPath, OpMoveTo, OpLineTo, OpStroke, OpRestore}
	if got := r.Ops(); !reflect.DeepEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if c := r.Commands[1]; c.W != 10 || c.H != 20 {
		t.Errorf("clearRect recorded %+v", c)
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Errorf("expected no commands after reset, got %d", len(r.Commands))
	}
}

func TestTransformStack(t *testing.T) {
	ts := newTransformStack()
	ts.translate(10, 20)
	ts.save()
	ts.translate(1, 1)

	if x, y := ts.apply(0, 0); x != 11 || y != 21 {
		t.Errorf("apply = (%v, %v), want (11, 21)", x, y)
	}

	ts.restore()
	if x, y := ts.apply(5, 5); x != 15 || y != 25 {
		t.Errorf("after restore apply = (%v, %v), want (15, 25)", x, y)
	}

	ts.restore()
	if ts.depth() != 0 {
		t.Errorf("restore on empty stack should be a no-op, depth = %d", ts.depth())
	}
}

func TestRasterSurfaceDrawsDot(t *testing.T) {
	s := NewRasterSurface(10, 10, black)
	s.ClearRect(0, 0, 10, 10)
	s.SetStrokeStyle(red)
	s.Save()
	s.Translate(2, 3)
	s.BeginPath()
	s.MoveTo(1, 1.5)
	s.LineTo(2, 1.5)
	s.Stroke()
	s.Restore()

	img := s.Image()
	if got := img.RGBAAt(3, 4); got.R < 250 || got.G > 5 || got.B > 5 {
		t.Errorf("pixel (3, 4) = %v, want ~%v", got, red)
	}
	if got := img.RGBAAt(5, 5); got != black {
		t.Errorf("pixel (5, 5) = %v, want background %v", got, black)
	}
	if s.Clipped() != 0 {
		t.Errorf("expected nothing clipped, got %d", s.Clipped())
	}
}

func TestRasterSurfaceClearRect(t *testing.T) {
	s := NewRasterSurface(4, 4, black)
	s.ClearRect(0, 0, 4, 4)
	s.SetStrokeStyle(red)
	s.BeginPath()
	s.MoveTo(0, 0.5)
	s.LineTo(4, 0.5)
	s.Stroke()

	s.ClearRect(0, 0, 4, 4)

	for x := 0; x < 4; x++ {
		if got := s.Image().RGBAAt(x, 0); got != black {
			t.Fatalf("pixel (%d, 0) = %v after clear, want %v", x, got, black)
		}
	}
}

func TestRasterSurfaceClipsOutside(t *testing.T) {
	s := NewRasterSurface(10, 10, black)
	s.BeginPath()
	s.MoveTo(-5, -5)
	s.LineTo(-4, -5)
	s.MoveTo(20, 20)
	s.LineTo(21, 20)
	s.Stroke()

	if s.Clipped() != 2 {
		t.Errorf("expected 2 clipped lines, got %d", s.Clipped())
	}
}

func TestRasterSurfaceClipsPartialLines(t *testing.T) {
	s := NewRasterSurface(10, 10, black)
	s.ClearRect(0, 0, 10, 10)
	s.SetStrokeStyle(red)
	s.BeginPath()
	s.MoveTo(9, 5.5)
	s.LineTo(11, 5.5)
	s.MoveTo(-1, 2.5)
	s.LineTo(1, 2.5)
	s.Stroke()

	if s.Clipped() != 0 {
		t.Errorf("partly visible lines should be drawn, %d clipped", s.Clipped())
	}

	img := s.Image()
	for _, p := range []image.Point{{9, 5}, {0, 2}} {
		if got := img.RGBAAt(p.X, p.Y); got.R < 250 || got.G > 5 || got.B > 5 {
			t.Errorf("pixel %v = %v, want the stroke color", p, got)
		}
	}
	for _, p := range []image.Point{{8, 5}, {1, 2}, {9, 1}, {0, 6}} {
		if got := img.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
}

func TestRasterSurfaceLineWithoutMoveStartsPath(t *testing.T) {
	s := NewRasterSurface(10, 10, black)
	s.BeginPath()
	s.LineTo(1, 1)
	s.LineTo(2, 1)

	if len(s.path) != 1 {
		t.Fatalf("expected 1 line, got %d", len(s.path))
	}
	if l := s.path[0]; l.x0 != 1 || l.x1 != 2 {
		t.Errorf("unexpected line %+v", l)
	}
}

func TestEbitenSurfaceTransforms(t *testing.T) {
	s := NewEbitenSurface(nil)
	s.Save()
	s.Translate(10, 5)
	s.Translate(1, 1)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(1, 0)
	s.Restore()
	s.MoveTo(0, 0)
	s.LineTo(0, 1)

	want := []line{
		{x0: 11, y0: 6, x1: 12, y1: 6},
		{x0: 0, y0: 0, x1: 0, y1: 1},
	}
	if !reflect.DeepEqual(s.path, want) {
		t.Errorf("path = %+v, want %+v", s.path, want)
	}

	// No target yet: drawing is a no-op.
	s.Stroke()
	s.ClearRect(0, 0, 10, 10)
}

func TestWritePNG(t *testing.T) {
	s := NewRasterSurface(8, 8, black)
	s.ClearRect(0, 0, 8, 8)

	path := FramePath(t.TempDir(), 7)
	if filepath.Base(path) != "frame_00007.png" {
		t.Errorf("unexpected frame name %s", filepath.Base(path))
	}
	if err := WritePNG(path, s.Image()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", b)
	}
}
