package render

import (
	"image/color"
)

type Op string

const (
	OpBeginPath      Op = "beginPath"
	OpMoveTo         Op = "moveTo"
	OpLineTo         Op = "lineTo"
	OpStroke         Op = "stroke"
	OpClearRect      Op = "clearRect"
	OpSave           Op = "save"
	OpRestore        Op = "restore"
	OpTranslate      Op = "translate"
	OpSetStrokeStyle Op = "setStrokeStyle"
)

// Command is one recorded surface call. Unused fields are zero.
type Command struct {
	Op    Op
	X, Y  float64
	W, H  float64
	Color color.Color
}

// Recorder is a surface that only remembers the calls made on it.
type Recorder struct {
	Commands []Command
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) BeginPath() {
	r.Commands = append(r.Commands, Command{Op: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: OpLineTo, X: x, Y: y})
}

func (r *Recorder) Stroke() {
	r.Commands = append(r.Commands, Command{Op: OpStroke})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Commands = append(r.Commands, Command{Op: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Save() {
	r.Commands = append(r.Commands, Command{Op: OpSave})
}

func (r *Recorder) Restore() {
	r.Commands = append(r.Commands, Command{Op: OpRestore})
}

func (r *Recorder) Translate(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: OpTranslate, X: x, Y: y})
}

func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpSetStrokeStyle, Color: c})
}

// Ops returns just the operation names, in call order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Commands))
	for i, c := range r.Commands {
		ops[i] = c.Op
	}
	return ops
}

func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
