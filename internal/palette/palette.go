// Package palette defines the colours of the circuit artwork.
package palette

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// HSL converts CSS-style hsl(h, s%, l%) to RGBA. Out-of-range inputs are
// wrapped (hue) or clamped (saturation, lightness).
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b, err := colorconv.HSLToRGB(h, clampPct(s), clampPct(l))
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clampPct(v float64) float64 {
	return math.Min(math.Max(v, 0), 100) / 100
}

var (
	Background = color.RGBA{R: 2, G: 6, B: 23, A: 255}

	Wire     = HSL(220, 10, 40)
	Terminal = HSL(220, 10, 80)

	Electron = HSL(190, 100, 70)

	Amber      = HSL(45, 100, 60)
	SourceBody = HSL(220, 20, 10)

	BulbBase    = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	BulbThreads = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	BulbSupport = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 255}

	PhaseLabel = HSL(210, 20, 70)
	PhaseFrame = HSL(220, 20, 30)

	ElectricPositive = HSL(200, 100, 60)
	ElectricNegative = HSL(200, 100, 40)
	Magnetic         = HSL(340, 85, 60)
	Poynting         = Amber
)

// Glass is the bulb colour at the given lightness (percent).
func Glass(lightness float64) color.RGBA {
	return HSL(50, 100, lightness)
}

// Filament moves from orange towards white as intensity goes 0..1.
func Filament(intensity float64) color.RGBA {
	return HSL(40, 100, 50+50*intensity)
}
