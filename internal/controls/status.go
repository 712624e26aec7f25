package controls

import (
	"fmt"

	"energy-flow/internal/circuit"
)

// Status is the one-line readout shown above the circuit.
func Status(cfg circuit.Config, t float64) string {
	st, err := circuit.Evaluate(cfg, t)
	if err != nil {
		return fmt.Sprintf("%s  fields %s", cfg.Mode, cfg.Fields)
	}
	s := fmt.Sprintf("%s  V=%gV  R=%gΩ  I=%.2fA  P=%.2fW  fields %s",
		cfg.Mode, cfg.Voltage, cfg.Resistance, st.Current, st.Power, cfg.Fields)
	if cfg.Mode == circuit.AC {
		s += fmt.Sprintf("  f=%.1fHz  t=%.2fs", cfg.Frequency, t)
	}
	return s
}
