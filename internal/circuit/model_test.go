package circuit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dcConfig() Config {
	return Config{Mode: DC, Voltage: 10, Resistance: 5, Frequency: 1, Fields: AllFields}
}

func acConfig() Config {
	cfg := dcConfig()
	cfg.Mode = AC
	return cfg
}

func TestEvaluate_DCTenVoltsFiveOhms(t *testing.T) {
	for _, tm := range []float64{0, 0.25, 0.75, 3.1, 1234.5} {
		st, err := Evaluate(dcConfig(), tm)
		require.NoError(t, err)
		assert.Equal(t, 2.0, st.Current)
		assert.Equal(t, 20.0, st.Power)
		assert.Equal(t, 1.0, st.Phase)
		assert.Equal(t, 2.0, st.InstantCurrent)
		assert.Equal(t, 20.0, st.InstantPower)
	}
}

func TestEvaluate_ACPeak(t *testing.T) {
	st, err := Evaluate(acConfig(), 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, st.Phase, 1e-12)
	assert.InDelta(t, 2.0, st.InstantCurrent, 1e-12)
	assert.InDelta(t, 20.0, st.InstantPower, 1e-12)
}

func TestEvaluate_ACTrough(t *testing.T) {
	st, err := Evaluate(acConfig(), 0.75)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, st.Phase, 1e-12)
	assert.InDelta(t, -2.0, st.InstantCurrent, 1e-12)
	assert.InDelta(t, 20.0, st.InstantPower, 1e-12)
}

func TestEvaluate_ACPowerLaw(t *testing.T) {
	cfg := acConfig()
	cfg.Frequency = 2.7
	for i := 0; i < 2000; i++ {
		tm := float64(i) * 0.013
		st, err := Evaluate(cfg, tm)
		require.NoError(t, err)

		s := math.Sin(2 * math.Pi * cfg.Frequency * tm)
		assert.GreaterOrEqual(t, st.InstantPower, 0.0)
		assert.InDelta(t, st.Power*s*s, st.InstantPower, 1e-9)
		if s != 0 {
			assert.Equal(t, math.Signbit(s), math.Signbit(st.InstantCurrent))
		}
	}
}

func TestEvaluate_ACPowerDoubleFrequency(t *testing.T) {
	cfg := acConfig()
	half := 1 / (2 * cfg.Frequency)
	for _, tm := range []float64{0.1, 0.2, 0.33} {
		a, err := Evaluate(cfg, tm)
		require.NoError(t, err)
		b, err := Evaluate(cfg, tm+half)
		require.NoError(t, err)

		assert.InDelta(t, a.InstantPower, b.InstantPower, 1e-9)
		assert.InDelta(t, -a.InstantCurrent, b.InstantCurrent, 1e-9)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, cfg := range []Config{dcConfig(), acConfig()} {
		a, err := Evaluate(cfg, 0.4321)
		require.NoError(t, err)
		b, err := Evaluate(cfg, 0.4321)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestEvaluate_LowFrequencyIsContinuous(t *testing.T) {
	cfg := acConfig()
	cfg.Frequency = 1e-9
	st, err := Evaluate(cfg, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0, st.Phase, 1e-6)
	assert.GreaterOrEqual(t, st.InstantPower, 0.0)
}

func TestEvaluate_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		time     float64
		quantity string
	}{
		{"zero resistance", func(c *Config) { c.Resistance = 0 }, 0, "resistance"},
		{"negative resistance", func(c *Config) { c.Resistance = -3 }, 0, "resistance"},
		{"nan resistance", func(c *Config) { c.Resistance = math.NaN() }, 0, "resistance"},
		{"zero voltage", func(c *Config) { c.Voltage = 0 }, 0, "voltage"},
		{"infinite voltage", func(c *Config) { c.Voltage = math.Inf(1) }, 0, "voltage"},
		{"ac zero frequency", func(c *Config) { c.Mode = AC; c.Frequency = 0 }, 0, "frequency"},
		{"unknown mode", func(c *Config) { c.Mode = Mode(7) }, 0, "mode"},
		{"negative time", func(c *Config) {}, -1, "time"},
		{"nan time", func(c *Config) {}, math.NaN(), "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := dcConfig()
			tt.mutate(&cfg)

			st, err := Evaluate(cfg, tt.time)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDomain))

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.quantity, de.Quantity)
			assert.Equal(t, State{}, st)
		})
	}
}

func TestValidate_DCIgnoresFrequency(t *testing.T) {
	cfg := dcConfig()
	cfg.Frequency = 0
	assert.NoError(t, cfg.Validate())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" AC ")
	require.NoError(t, err)
	assert.Equal(t, AC, m)

	m, err = ParseMode("dc")
	require.NoError(t, err)
	assert.Equal(t, DC, m)

	_, err = ParseMode("three-phase")
	assert.Error(t, err)
}

func TestFieldSet(t *testing.T) {
	s := AllFields
	assert.True(t, s.Has(Electric))
	assert.True(t, s.Has(Magnetic|Poynting))

	s = s.Toggle(Magnetic)
	assert.False(t, s.Has(Magnetic))
	assert.Equal(t, "E,S", s.String())

	s = s.With(Magnetic, true).With(Electric, false)
	assert.Equal(t, "B,S", s.String())
	assert.Equal(t, "-", FieldSet(0).String())
}
