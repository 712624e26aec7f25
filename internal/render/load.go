package render

import (
	"math"

	"energy-flow/internal/palette"
	"energy-flow/internal/surface"
)

const (
	// PowerRef is the power at which the lamp, and every other power-driven
	// visual, saturates.
	PowerRef = 50.0

	loadSize     = 80
	glassR       = 30
	glassLift    = 5
	glowMax      = 60
	filamentGlow = 20
)

// LoadIntensity maps instantaneous power to lamp intensity in [0, 1].
func LoadIntensity(power float64) float64 {
	return math.Min(math.Abs(power)/PowerRef, 1)
}

// DrawLoad draws the lamp at the right edge of the loop. Glow, glass
// brightness and filament colour all follow LoadIntensity.
func DrawLoad(s surface.Surface, sc Scene) {
	x, y := sc.Geometry.Load.X, sc.Geometry.Load.Y
	in := LoadIntensity(sc.State.InstantPower)
	brightness := 20 + in*80

	glass := &surface.Path{}
	glass.Arc(x, y-glassLift, glassR, 0, 2*math.Pi, false)

	if in > 0 {
		halo := surface.Solid(palette.Glass(60), 0).WithAlpha(in * 0.35).WithGlow(in * glowMax)
		s.FillCircle(x, y-glassLift, glassR, halo)
	}
	s.FillPath(glass, surface.Solid(palette.Glass(brightness), 0).WithAlpha(0.1))
	s.StrokePath(glass, surface.Solid(palette.Glass(brightness), 1).WithAlpha(0.5))

	base := &surface.Path{}
	base.Rect(x-12, y+20, 24, 25)
	s.FillPath(base, surface.Solid(palette.BulbBase, 0))

	threads := &surface.Path{}
	for _, dy := range []float64{25, 32, 39} {
		threads.MoveTo(x-12, y+dy)
		threads.LineTo(x+12, y+dy)
	}
	s.StrokePath(threads, surface.Solid(palette.BulbThreads, 2))

	support := &surface.Path{}
	support.MoveTo(x-8, y+20)
	support.LineTo(x-5, y)
	support.MoveTo(x+8, y+20)
	support.LineTo(x+5, y)
	s.StrokePath(support, surface.Solid(palette.BulbSupport, 1.5))

	s.StrokePath(filament(x, y), surface.Solid(palette.Filament(in), 2+in*2).WithGlow(in*filamentGlow))

	lead := surface.Solid(palette.Terminal, 4)
	s.StrokePath(surface.Line(x, y-loadSize/2, x, y-35), lead)
	s.StrokePath(surface.Line(x, y+45, x, y+loadSize/2), lead)

	s.Text(label(sc.Config.Resistance, "Ω"), x, y+65, surface.AlignCenter,
		surface.Font{Size: 14, Bold: true}, surface.Solid(palette.Magnetic, 0))
}

func filament(x, y float64) *surface.Path {
	p := &surface.Path{}
	p.MoveTo(x-5, y)
	p.LineTo(x-8, y-10)
	p.LineTo(x-4, y-5)
	p.LineTo(x, y-12)
	p.LineTo(x+4, y-5)
	p.LineTo(x+8, y-10)
	p.LineTo(x+5, y)
	return p
}
