package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"energy-flow/internal/circuit"
	"energy-flow/internal/config"
)

func bounds() config.BoundsConfig {
	return config.BoundsConfig{
		Voltage:    config.Range{Min: 1, Max: 24},
		Resistance: config.Range{Min: 1, Max: 50},
		Frequency:  config.Range{Min: 0.1, Max: 5},
	}
}

func initial() circuit.Config {
	return circuit.Config{Mode: circuit.DC, Voltage: 10, Resistance: 5, Frequency: 1, Fields: circuit.AllFields}
}

func TestNewPanel_ClampsInitial(t *testing.T) {
	cfg := initial()
	cfg.Resistance = 0
	cfg.Voltage = 99
	p := NewPanel(cfg, bounds())

	assert.Equal(t, 1.0, p.Config().Resistance)
	assert.Equal(t, 24.0, p.Config().Voltage)
	assert.NoError(t, p.Config().Validate())
}

func TestPanel_SlidersStayInBounds(t *testing.T) {
	p := NewPanel(initial(), bounds())

	p.AdjustResistance(-100)
	assert.Equal(t, 1.0, p.Config().Resistance)
	p.AdjustResistance(3)
	assert.Equal(t, 4.0, p.Config().Resistance)

	p.AdjustVoltage(100)
	assert.Equal(t, 24.0, p.Config().Voltage)

	p.AdjustFrequency(-100)
	assert.Equal(t, 0.1, p.Config().Frequency)
	p.AdjustFrequency(2)
	assert.Equal(t, 0.3, p.Config().Frequency)

	assert.NoError(t, p.Config().Validate())
}

func TestPanel_Toggles(t *testing.T) {
	p := NewPanel(initial(), bounds())

	p.ToggleField(circuit.Magnetic)
	assert.False(t, p.Config().Fields.Has(circuit.Magnetic))
	assert.True(t, p.Config().Fields.Has(circuit.Electric|circuit.Poynting))
	p.ToggleField(circuit.Magnetic)
	assert.Equal(t, circuit.AllFields, p.Config().Fields)

	p.ToggleMode()
	assert.Equal(t, circuit.AC, p.Config().Mode)
	p.ToggleMode()
	assert.Equal(t, circuit.DC, p.Config().Mode)
}

func TestPanel_ConfigIsACopy(t *testing.T) {
	p := NewPanel(initial(), bounds())
	cfg := p.Config()
	cfg.Voltage = 1000
	assert.Equal(t, 10.0, p.Config().Voltage)
}

func TestStatus(t *testing.T) {
	dc := circuit.Config{Mode: circuit.DC, Voltage: 10, Resistance: 5, Frequency: 1, Fields: circuit.AllFields}
	assert.Equal(t, "dc  V=10V  R=5Ω  I=2.00A  P=20.00W  fields E,B,S", Status(dc, 0))

	ac := dc
	ac.Mode = circuit.AC
	ac.Fields = 0
	assert.Equal(t, "ac  V=10V  R=5Ω  I=2.00A  P=20.00W  fields -  f=1.0Hz  t=0.25s", Status(ac, 0.25))

	bad := dc
	bad.Resistance = 0
	assert.Equal(t, "dc  fields E,B,S", Status(bad, 0))
}
