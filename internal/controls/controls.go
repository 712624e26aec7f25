// Package controls is the host-side control panel: field toggles, the
// AC/DC switch and three sliders. Every value it hands to the engine has
// already been clamped into its slider range.
package controls

import (
	"energy-flow/internal/circuit"
	"energy-flow/internal/config"
)

// Slider steps.
const (
	VoltageStep    = 1.0
	ResistanceStep = 1.0
	FrequencyStep  = 0.1
)

type Panel struct {
	cfg    circuit.Config
	bounds config.BoundsConfig
}

func NewPanel(initial circuit.Config, bounds config.BoundsConfig) *Panel {
	p := &Panel{cfg: initial, bounds: bounds}
	p.clamp()
	return p
}

// Config returns the configuration for the next frame.
func (p *Panel) Config() circuit.Config { return p.cfg }

func (p *Panel) ToggleField(f circuit.FieldSet) {
	p.cfg.Fields = p.cfg.Fields.Toggle(f)
}

func (p *Panel) ToggleMode() {
	if p.cfg.Mode == circuit.AC {
		p.cfg.Mode = circuit.DC
	} else {
		p.cfg.Mode = circuit.AC
	}
}

// AdjustVoltage moves the voltage slider by n steps.
func (p *Panel) AdjustVoltage(n int) {
	p.cfg.Voltage += float64(n) * VoltageStep
	p.clamp()
}

func (p *Panel) AdjustResistance(n int) {
	p.cfg.Resistance += float64(n) * ResistanceStep
	p.clamp()
}

func (p *Panel) AdjustFrequency(n int) {
	p.cfg.Frequency = roundTenth(p.cfg.Frequency + float64(n)*FrequencyStep)
	p.clamp()
}

func (p *Panel) clamp() {
	p.cfg.Voltage = p.bounds.Voltage.Clamp(p.cfg.Voltage)
	p.cfg.Resistance = p.bounds.Resistance.Clamp(p.cfg.Resistance)
	p.cfg.Frequency = p.bounds.Frequency.Clamp(p.cfg.Frequency)
}

func roundTenth(v float64) float64 {
	if v < 0 {
		return -roundTenth(-v)
	}
	return float64(int64(v*10+0.5)) / 10
}
