package render

import (
	"energy-flow/internal/circuit"
	"energy-flow/internal/layout"
	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	ElectronCount = 40

	driftGain      = 0.5 // current -> drift speed
	driftScale     = 0.1 // drift speed -> loop fractions per time unit
	electronRadius = 3
	electronGlow   = 4
)

// DriftVelocity is the speed of the electron markers in loop fractions per
// unit of simulation time. Electrons move against conventional current, so
// the sign is always opposite to the instantaneous current.
func DriftVelocity(st circuit.State) float64 {
	return -st.InstantCurrent * driftGain * driftScale
}

// DriftPositions returns the position of every marker along the loop as a
// fraction in [0, 1), walking top → right → bottom → left.
func DriftPositions(st circuit.State, t float64) []float64 {
	v := DriftVelocity(st)
	out := make([]float64, ElectronCount)
	for i := range out {
		out[i] = frac(float64(i)/ElectronCount + t*v)
	}
	return out
}

// PerimeterPoint maps a loop fraction to a point on the wire rectangle by
// cumulative arc length: top edge left to right, right edge downwards,
// bottom edge right to left, left edge upwards.
func PerimeterPoint(g layout.Geometry, f float64) layout.Point {
	w, h := g.LoopWidth(), g.LoopHeight()
	d := frac(f) * g.Perimeter()

	switch {
	case d < w:
		return layout.Point{X: g.Left + d, Y: g.Top}
	case d < w+h:
		return layout.Point{X: g.Right, Y: g.Top + (d - w)}
	case d < 2*w+h:
		return layout.Point{X: g.Right - (d - (w + h)), Y: g.Bottom}
	default:
		return layout.Point{X: g.Left, Y: g.Bottom - (d - (2*w + h))}
	}
}

func DrawElectrons(s surface.Surface, sc Scene) {
	paint := surface.Solid(palette.Electron, 0).WithGlow(electronGlow)
	for _, f := range DriftPositions(sc.State, sc.Time) {
		pt := PerimeterPoint(sc.Geometry, f)
		s.FillCircle(pt.X, pt.Y, electronRadius, paint)
	}
}
