package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-flow/internal/circuit"
	"energy-flow/internal/surface"
)

func dcConfig() circuit.Config {
	return circuit.Config{Mode: circuit.DC, Voltage: 10, Resistance: 5, Frequency: 1, Fields: circuit.AllFields}
}

func TestFrame_ClearsThenDraws(t *testing.T) {
	rec := surface.NewRecorder(800, 500)
	require.NoError(t, New().Frame(rec, dcConfig(), 0.5))

	require.NotEmpty(t, rec.Prims)
	assert.Equal(t, surface.KindClear, rec.Prims[0].Kind)
	assert.Equal(t, 1, rec.Count(surface.KindClear))
	assert.True(t, rec.Drawn())
	assert.Equal(t, 1, rec.SizeReads(), "target size is read once per frame")
}

func TestFrame_DomainErrorDrawsNothing(t *testing.T) {
	cfg := dcConfig()
	for _, r := range []float64{0, -5} {
		cfg.Resistance = r
		rec := surface.NewRecorder(800, 500)

		err := New().Frame(rec, cfg, 0.5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, circuit.ErrDomain))
		assert.Empty(t, rec.Prims)
	}
}

func TestFrame_DegenerateTargetIsSoft(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {0, 500}, {800, 0}, {-1, -1}} {
		rec := surface.NewRecorder(size[0], size[1])
		require.NoError(t, New().Frame(rec, dcConfig(), 0.5))
		assert.Empty(t, rec.Prims)
	}
}

func TestFrame_FieldToggles(t *testing.T) {
	count := func(fields circuit.FieldSet) int {
		cfg := dcConfig()
		cfg.Fields = fields
		rec := surface.NewRecorder(800, 500)
		require.NoError(t, New().Frame(rec, cfg, 0.5))
		return len(rec.Prims)
	}

	none := count(0)
	e := count(circuit.Electric)
	b := count(circuit.Magnetic)
	s := count(circuit.Poynting)
	all := count(circuit.AllFields)

	assert.Greater(t, e, none)
	assert.Greater(t, b, none)
	assert.Greater(t, s, none)
	assert.Equal(t, all-none, (e-none)+(b-none)+(s-none))
}

func TestFrame_MagneticOnlyAddsGlyphs(t *testing.T) {
	cfg := dcConfig()
	cfg.Fields = circuit.Magnetic
	rec := surface.NewRecorder(800, 500)
	require.NoError(t, New().Frame(rec, cfg, 0.5))
	assert.Contains(t, rec.Texts(), "•")
	assert.Contains(t, rec.Texts(), "×")
	assert.NotContains(t, rec.Texts(), "S")
}

func TestFrame_Deterministic(t *testing.T) {
	cfg := dcConfig()
	cfg.Mode = circuit.AC
	a := surface.NewRecorder(900, 600)
	b := surface.NewRecorder(900, 600)
	require.NoError(t, New().Frame(a, cfg, 1.234))
	require.NoError(t, New().Frame(b, cfg, 1.234))
	assert.Equal(t, a.Prims, b.Prims)
}

func TestFrame_ReflectsConfigChangeImmediately(t *testing.T) {
	eng := New()
	cfg := dcConfig()

	a := surface.NewRecorder(800, 500)
	require.NoError(t, eng.Frame(a, cfg, 0.5))
	cfg.Voltage = 12
	b := surface.NewRecorder(800, 500)
	require.NoError(t, eng.Frame(b, cfg, 0.5))

	assert.Contains(t, a.Texts(), "10V")
	assert.Contains(t, b.Texts(), "12V")
}

func TestNew_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	eng := New(WithLogger(zerolog.New(&buf)))
	loop := NewLoop(eng, 0.02, dcConfig)
	loop.Start(&ManualSource{}, surface.NewRecorder(10, 10))
	assert.Contains(t, buf.String(), "animation started")
}
