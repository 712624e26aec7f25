package render

import (
	"math"

	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

// Symbol is a field direction glyph perpendicular to the screen.
type Symbol string

const (
	OutOfPage Symbol = "•"
	IntoPage  Symbol = "×"
)

const (
	magneticSpacing = 60
	magneticBase    = 15 // arc radius at zero current
	magneticGain    = 2  // px per ampere
	magneticMaxGrow = 20
)

// MagneticSymbols returns the glyph drawn outside the loop and the glyph
// drawn inside it. Current circulating clockwise on screen (positive) gives
// out-of-page outside and into-page inside; reversing the current swaps them.
func MagneticSymbols(current float64) (outside, inside Symbol) {
	if current > 0 {
		return OutOfPage, IntoPage
	}
	return IntoPage, OutOfPage
}

// MagneticRadius grows with |current| up to a fixed cap.
func MagneticRadius(current float64) float64 {
	return magneticBase + math.Min(magneticGain*math.Abs(current), magneticMaxGrow)
}

// DrawMagneticField draws half-circle arcs around the top and bottom wires,
// each bracketed by the field glyphs on either side of the wire.
func DrawMagneticField(s surface.Surface, sc Scene) {
	g := sc.Geometry
	current := sc.State.InstantCurrent
	r := MagneticRadius(current)
	outside, inside := MagneticSymbols(current)

	stroke := surface.Solid(palette.Magnetic, 2).WithAlpha(0.9)
	glyph := surface.Solid(palette.Magnetic, 0)
	font := surface.Font{Size: 16, Bold: true}

	for x := g.Left + magneticSpacing; x < g.Right-magneticSpacing; x += magneticSpacing {
		top := &surface.Path{}
		top.Arc(x, g.Top, r, math.Pi, 2*math.Pi, false)
		s.StrokePath(top, stroke)
		s.Text(string(outside), x, g.Top-r-6, surface.AlignCenter, font, glyph)
		s.Text(string(inside), x, g.Top+20, surface.AlignCenter, font, glyph)

		bottom := &surface.Path{}
		bottom.Arc(x, g.Bottom, r, 0, math.Pi, false)
		s.StrokePath(bottom, stroke)
		s.Text(string(inside), x, g.Bottom-12, surface.AlignCenter, font, glyph)
		s.Text(string(outside), x, g.Bottom+r+16, surface.AlignCenter, font, glyph)
	}
}
