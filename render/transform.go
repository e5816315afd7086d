package render

import (
	"golang.org/x/image/math/f64"
)

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// transformStack is a canvas-style current transform plus its saved copies.
type transformStack struct {
	current f64.Aff3
	saved   []f64.Aff3
}

func newTransformStack() transformStack {
	return transformStack{current: identity}
}

func (t *transformStack) save() {
	t.saved = append(t.saved, t.current)
}

// restore pops the last saved transform. Restoring with nothing saved is a no-op.
func (t *transformStack) restore() {
	if len(t.saved) == 0 {
		return
	}
	t.current = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

func (t *transformStack) translate(x, y float64) {
	m := &t.current
	m[2] += m[0]*x + m[1]*y
	m[5] += m[3]*x + m[4]*y
}

func (t *transformStack) apply(x, y float64) (float64, float64) {
	m := t.current
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func (t *transformStack) depth() int {
	return len(t.saved)
}
