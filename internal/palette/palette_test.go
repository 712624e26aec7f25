package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSL_Primaries(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, HSL(0, 100, 50))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, HSL(120, 100, 50))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, HSL(240, 100, 50))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, HSL(77, 0, 100))
	assert.Equal(t, color.RGBA{A: 255}, HSL(77, 40, 0))
}

func TestHSL_WrapsAndClamps(t *testing.T) {
	assert.Equal(t, HSL(0, 100, 50), HSL(360, 100, 50))
	assert.Equal(t, HSL(300, 100, 50), HSL(-60, 100, 50))
	assert.Equal(t, HSL(10, 100, 100), HSL(10, 100, 180))
}

func TestElectricPolarityColoursDiffer(t *testing.T) {
	assert.NotEqual(t, ElectricPositive, ElectricNegative)
}

func TestFilament_Brightens(t *testing.T) {
	lum := func(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }
	assert.Less(t, lum(Filament(0)), lum(Filament(0.5)))
	assert.Less(t, lum(Filament(0.5)), lum(Filament(1)))
}
