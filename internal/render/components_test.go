package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-flow/internal/surface"
)

func TestDrawSource_DCBattery(t *testing.T) {
	rec := draw(Func(DrawSource), scene(t, dc(), 0))
	assert.Equal(t, []string{"10V"}, rec.Texts())
	assert.Zero(t, rec.Count(surface.KindFill))
	assert.Equal(t, 3, rec.Count(surface.KindStroke))
}

func TestDrawSource_ACOscillator(t *testing.T) {
	rec := draw(Func(DrawSource), scene(t, ac(), 0.1))
	assert.Equal(t, []string{"10V"}, rec.Texts())
	assert.Equal(t, 1, rec.Count(surface.KindFill))

	text := rec.Of(surface.KindText)[0]
	assert.Equal(t, surface.AlignCenter, text.Align)
}

func TestSineTrace_FollowsPhase(t *testing.T) {
	a := SineTrace(100, 100, 1, 0)
	b := SineTrace(100, 100, 1, 0.25)
	c := SineTrace(100, 100, 1, 1)
	require.Len(t, a.Ops, waveSamples+1)

	assert.NotEqual(t, a.Ops, b.Ops)
	for i := range a.Ops {
		assert.InDelta(t, a.Ops[i].Y, c.Ops[i].Y, 1e-9, "one full period later the trace repeats")
	}
	assert.Equal(t, surface.OpMoveTo, a.Ops[0].Kind)
}

func TestLoadIntensity(t *testing.T) {
	assert.Equal(t, 0.0, LoadIntensity(0))
	assert.Equal(t, 0.4, LoadIntensity(20))
	assert.Equal(t, 0.4, LoadIntensity(-20))
	assert.Equal(t, 1.0, LoadIntensity(PowerRef))
	assert.Equal(t, 1.0, LoadIntensity(1e9))

	prev := -1.0
	for p := 0.0; p <= 2*PowerRef; p += 0.5 {
		in := LoadIntensity(p)
		assert.GreaterOrEqual(t, in, prev)
		prev = in
	}
}

func TestDrawLoad_GlowFollowsPower(t *testing.T) {
	dark := draw(Func(DrawLoad), scene(t, ac(), 0))
	lit := draw(Func(DrawLoad), scene(t, ac(), 0.25))

	assert.Zero(t, dark.Count(surface.KindCircle), "no halo at zero power")
	require.Equal(t, 1, lit.Count(surface.KindCircle))
	assert.InDelta(t, 0.4*glowMax, lit.Of(surface.KindCircle)[0].Paint.Glow, 1e-9)

	assert.Equal(t, []string{"5Ω"}, lit.Texts())
}

func TestDrawPhaseIndicator(t *testing.T) {
	assert.False(t, draw(Func(DrawPhaseIndicator), scene(t, dc(), 0.25)).Drawn())

	pos := draw(Func(DrawPhaseIndicator), scene(t, ac(), 0.25))
	neg := draw(Func(DrawPhaseIndicator), scene(t, ac(), 0.75))
	assert.Equal(t, []string{"Phase"}, pos.Texts())

	barWidth := func(rec *surface.Recorder) float64 {
		fills := rec.Of(surface.KindFill)
		require.Len(t, fills, 1)
		ops := fills[0].Path.Ops
		return ops[1].X - ops[0].X
	}
	assert.InDelta(t, phaseHalfWidth, barWidth(pos), 1e-9)
	assert.InDelta(t, -phaseHalfWidth, barWidth(neg), 1e-9)

	frame := pos.Of(surface.KindStroke)[0].Path.Ops[0]
	assert.Equal(t, 800.0-phaseInsetX-phaseHalfWidth, frame.X)
}

func TestPhaseBarWidth_Clamped(t *testing.T) {
	assert.Equal(t, float64(phaseHalfWidth), PhaseBarWidth(3))
	assert.Equal(t, -float64(phaseHalfWidth), PhaseBarWidth(-3))
	assert.Equal(t, 0.0, PhaseBarWidth(0))
}
