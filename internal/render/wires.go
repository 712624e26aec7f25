package render

import (
	"math"

	"energy-flow/internal/layout"
	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	wireWidth    = 8
	cornerRadius = 30
)

// cornerFor shrinks the corner radius on small loops so straight runs never
// go negative.
func cornerFor(g layout.Geometry) float64 {
	return math.Max(0, math.Min(cornerRadius, math.Min(g.LoopWidth(), g.LoopHeight())/2))
}

// DrawWires strokes the four straight runs of the loop.
func DrawWires(s surface.Surface, sc Scene) {
	g := sc.Geometry
	r := cornerFor(g)
	paint := surface.Solid(palette.Wire, wireWidth)

	s.StrokePath(surface.Line(g.Left+r, g.Top, g.Right-r, g.Top), paint)
	s.StrokePath(surface.Line(g.Left+r, g.Bottom, g.Right-r, g.Bottom), paint)
	s.StrokePath(surface.Line(g.Left, g.Top+r, g.Left, g.Bottom-r), paint)
	s.StrokePath(surface.Line(g.Right, g.Top+r, g.Right, g.Bottom-r), paint)
}

// DrawCorners strokes the rounded corners joining the straight runs.
func DrawCorners(s surface.Surface, sc Scene) {
	g := sc.Geometry
	r := cornerFor(g)
	if r == 0 {
		return
	}
	paint := surface.Solid(palette.Wire, wireWidth)

	corners := []struct{ cx, cy, from, to float64 }{
		{g.Left + r, g.Top + r, math.Pi, 1.5 * math.Pi},
		{g.Right - r, g.Top + r, 1.5 * math.Pi, 2 * math.Pi},
		{g.Left + r, g.Bottom - r, 0.5 * math.Pi, math.Pi},
		{g.Right - r, g.Bottom - r, 0, 0.5 * math.Pi},
	}
	for _, c := range corners {
		p := &surface.Path{}
		p.Arc(c.cx, c.cy, r, c.from, c.to, false)
		s.StrokePath(p, paint)
	}
}
