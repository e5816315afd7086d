package sketch

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/meghashyamc/curlplanet/particles"
)

const DefaultStrokeColor = "#03e9f4"

// Style describes the per-frame canvas setup around the particle draw calls.
type Style struct {
	// Width and Height bound the area cleared every frame.
	Width  float64
	Height float64
	// OriginX and OriginY are where the simulation origin lands on the canvas.
	OriginX float64
	OriginY float64
	Stroke  color.Color
}

func DefaultStyle() Style {
	return NewStyle(particles.DefaultCanvasWidth, particles.DefaultCanvasHeight, color.RGBA{0x03, 0xe9, 0xf4, 0xff})
}

// NewStyle places the origin at a third of the canvas on each axis.
func NewStyle(width, height float64, stroke color.Color) Style {
	return Style{
		Width:   width,
		Height:  height,
		OriginX: width / 3,
		OriginY: height / 3,
		Stroke:  stroke,
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into a premultiplied color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	// Hex channels are straight alpha; color.RGBA is premultiplied.
	straight := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(straight).(color.RGBA), nil
}
