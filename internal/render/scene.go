// Package render draws the circuit artwork and its field overlays.
//
// Renderers are stateless: each call draws the whole picture for one
// Scene and leaves its inputs untouched.
package render

import (
	"math"
	"strconv"

	"energy-flow/internal/circuit"
	"energy-flow/internal/layout"
	"energy-flow/internal/surface"
)

// Scene is everything a renderer may look at for one frame.
type Scene struct {
	Geometry layout.Geometry
	State    circuit.State
	Config   circuit.Config
	Time     float64
}

type Renderer interface {
	Draw(s surface.Surface, sc Scene)
}

// Func adapts a plain function to Renderer.
type Func func(s surface.Surface, sc Scene)

func (f Func) Draw(s surface.Surface, sc Scene) { f(s, sc) }

// Components returns the circuit renderers in drawing order.
func Components() []Renderer {
	return []Renderer{
		Func(DrawWires),
		Func(DrawElectrons),
		Func(DrawSource),
		Func(DrawLoad),
		Func(DrawCorners),
		Func(DrawPhaseIndicator),
	}
}

// Fields returns the overlay renderers keyed by the field they show, in
// drawing order.
func Fields() []FieldRenderer {
	return []FieldRenderer{
		{Field: circuit.Electric, Renderer: Func(DrawElectricField)},
		{Field: circuit.Magnetic, Renderer: Func(DrawMagneticField)},
		{Field: circuit.Poynting, Renderer: Func(DrawPoyntingFlow)},
	}
}

type FieldRenderer struct {
	Field circuit.FieldSet
	Renderer
}

// label formats a quantity the way the controls show it, e.g. "10V".
func label(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// arrow strokes a shaft from (x1,y1) to (x2,y2) and fills a head at the tip.
func arrow(s surface.Surface, x1, y1, x2, y2, head float64, paint surface.Paint) {
	s.StrokePath(surface.Line(x1, y1, x2, y2), paint)

	angle := math.Atan2(y2-y1, x2-x1)
	p := &surface.Path{}
	p.MoveTo(x2, y2)
	p.LineTo(x2-head*math.Cos(angle-math.Pi/6), y2-head*math.Sin(angle-math.Pi/6))
	p.LineTo(x2-head*math.Cos(angle+math.Pi/6), y2-head*math.Sin(angle+math.Pi/6))
	p.Close()
	s.FillPath(p, paint)
}

// frac wraps x into [0, 1).
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
