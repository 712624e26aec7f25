package render

import (
	"math"

	"energy-flow/internal/circuit"
	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	sourceSize  = 60
	waveSamples = 20
)

// DrawSource draws a battery in DC mode and an oscillator in AC mode.
func DrawSource(s surface.Surface, sc Scene) {
	if sc.Config.Mode == circuit.AC {
		drawOscillator(s, sc)
		return
	}
	drawBattery(s, sc)
}

func drawBattery(s surface.Surface, sc Scene) {
	x, y := sc.Geometry.Source.X, sc.Geometry.Source.Y
	const size = sourceSize

	leads := &surface.Path{}
	leads.MoveTo(x, y-size/2)
	leads.LineTo(x, y-size/3)
	leads.MoveTo(x, y+size/2)
	leads.LineTo(x, y+size/3)
	s.StrokePath(leads, surface.Solid(palette.Terminal, 3))

	// long plate is the positive terminal
	s.StrokePath(surface.Line(x-20, y-size/3, x+20, y-size/3), surface.Solid(palette.Terminal, 3))
	s.StrokePath(surface.Line(x-10, y+size/3, x+10, y+size/3), surface.Solid(palette.Terminal, 6))

	s.Text(label(sc.Config.Voltage, "V"), x-25, y+5, surface.AlignRight,
		surface.Font{Size: 16, Bold: true}, surface.Solid(palette.Amber, 0))
}

func drawOscillator(s surface.Surface, sc Scene) {
	x, y := sc.Geometry.Source.X, sc.Geometry.Source.Y
	const size = sourceSize
	rim := surface.Solid(palette.Terminal, 2)

	s.StrokePath(surface.Line(x, y-size/2-10, x, y+size/2+10), rim)

	body := &surface.Path{}
	body.Arc(x, y, size/2, 0, 2*math.Pi, false)
	s.FillPath(body, surface.Solid(palette.SourceBody, 0))
	s.StrokePath(body, rim)

	s.StrokePath(SineTrace(x, y, sc.Config.Frequency, sc.Time), surface.Solid(palette.Amber, 3))

	s.Text(label(sc.Config.Voltage, "V"), x, y+size/2+20, surface.AlignCenter,
		surface.Font{Size: 14, Bold: true}, surface.Solid(palette.Amber, 0))
}

// SineTrace is one period of a sine drawn inside the oscillator glyph
// centred at (x, y), shifted by the source phase 2πft.
func SineTrace(x, y, frequency, t float64) *surface.Path {
	const (
		waveWidth  = sourceSize * 0.6
		waveHeight = sourceSize * 0.25
	)
	phase := 2 * math.Pi * frequency * t

	p := &surface.Path{}
	for i := 0; i <= waveSamples; i++ {
		u := float64(i) / waveSamples
		px := x - waveWidth/2 + u*waveWidth
		py := y + math.Sin(u*2*math.Pi+phase)*waveHeight
		if i == 0 {
			p.MoveTo(px, py)
		} else {
			p.LineTo(px, py)
		}
	}
	return p
}
