// Package circuit derives the instantaneous electrical state of a single
// source driving a single ohmic load.
package circuit

import (
	"math"
)

// State is recomputed every frame and never stored.
type State struct {
	Current        float64 // V/R
	Power          float64 // V*I
	Phase          float64 // sin(2πft) in AC, 1 in DC
	InstantCurrent float64
	InstantPower   float64
}

// Evaluate maps a configuration and a simulation time to the electrical
// state at that instant. It never returns non-finite values: an invalid
// configuration is reported as a *DomainError instead.
func Evaluate(cfg Config, t float64) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return State{}, &DomainError{Quantity: "time", Value: t, Reason: "must be finite and >= 0"}
	}

	current := cfg.Voltage / cfg.Resistance
	power := cfg.Voltage * current

	st := State{
		Current: current,
		Power:   power,
		Phase:   Phase(cfg, t),
	}
	st.InstantCurrent = current * st.Phase
	if cfg.Mode == AC {
		// P ∝ I², never negative, pulses at twice the line frequency.
		st.InstantPower = power * st.Phase * st.Phase
	} else {
		st.InstantPower = power
	}

	if !finite(st.Current, st.Power, st.InstantCurrent, st.InstantPower) {
		return State{}, &DomainError{Quantity: "power", Value: power, Reason: "must be finite"}
	}
	return st, nil
}

// Phase returns sin(2πft) in AC mode and 1 in DC mode.
func Phase(cfg Config, t float64) float64 {
	if cfg.Mode != AC {
		return 1
	}
	return math.Sin(2 * math.Pi * cfg.Frequency * t)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
