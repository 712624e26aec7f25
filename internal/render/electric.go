package render

import (
	"math"

	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	electricSpacing = 40
	electricInset   = 40
	electricReach   = 40  // px per 5 V at full phase
	electricMaxLen  = 120 // cap on line length
	electricHead    = 6
)

// ElectricPolarity is +1 while the source phase is non-negative and -1
// otherwise. Field lines point away from the wires for +1.
func ElectricPolarity(phase float64) int {
	if phase >= 0 {
		return 1
	}
	return -1
}

// ElectricLength is the length of one field line for the given source
// voltage and phase, capped at electricMaxLen.
func ElectricLength(voltage, phase float64) float64 {
	return math.Min(electricReach*math.Abs(phase)*math.Abs(voltage)/5, electricMaxLen)
}

func electricPaint(voltage, phase float64) surface.Paint {
	c := palette.ElectricPositive
	if ElectricPolarity(phase) < 0 {
		c = palette.ElectricNegative
	}
	strength := math.Abs(voltage) * math.Abs(phase)
	return surface.Solid(c, 1+math.Abs(voltage)/10).
		WithAlpha(0.3 + math.Min(strength*0.01, 0.4))
}

// DrawElectricField draws short arrowed lines projecting from the top and
// bottom wires. The arrow heads flip with the source polarity.
func DrawElectricField(s surface.Surface, sc Scene) {
	g := sc.Geometry
	v, phase := sc.Config.Voltage, sc.State.Phase

	length := ElectricLength(v, phase)
	if length < 0.5 {
		return
	}
	paint := electricPaint(v, phase)
	outward := ElectricPolarity(phase) > 0

	for x := g.Left + electricInset; x < g.Right-electricInset; x += electricSpacing {
		fieldLine(s, x, g.Top, g.Top-length, outward, paint)
		fieldLine(s, x, g.Bottom, g.Bottom+length, outward, paint)
	}
}

// fieldLine strokes a vertical line from the wire at y0 to y1 and puts the
// head at y1, pointing away from the wire when outward is set.
func fieldLine(s surface.Surface, x, y0, y1 float64, outward bool, paint surface.Paint) {
	s.StrokePath(surface.Line(x, y0, x, y1), paint)

	dir := math.Copysign(1, y1-y0)
	if !outward {
		dir = -dir
	}
	head := &surface.Path{}
	head.MoveTo(x, y1)
	head.LineTo(x-electricHead/2, y1-dir*electricHead)
	head.LineTo(x+electricHead/2, y1-dir*electricHead)
	head.Close()
	s.FillPath(head, paint)
}
