package circuit

import (
	"fmt"
	"math"
	"strings"
)

type Mode int

const (
	DC Mode = iota
	AC
)

func (m Mode) String() string {
	switch m {
	case DC:
		return "dc"
	case AC:
		return "ac"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dc":
		return DC, nil
	case "ac":
		return AC, nil
	}
	return DC, fmt.Errorf("circuit: unknown mode %q", s)
}

// FieldSet is a bit set of overlay fields.
type FieldSet uint8

const (
	Electric FieldSet = 1 << iota
	Magnetic
	Poynting

	AllFields = Electric | Magnetic | Poynting
)

func (s FieldSet) Has(f FieldSet) bool { return s&f == f }

func (s FieldSet) Toggle(f FieldSet) FieldSet { return s ^ f }

func (s FieldSet) With(f FieldSet, on bool) FieldSet {
	if on {
		return s | f
	}
	return s &^ f
}

func (s FieldSet) String() string {
	var parts []string
	if s.Has(Electric) {
		parts = append(parts, "E")
	}
	if s.Has(Magnetic) {
		parts = append(parts, "B")
	}
	if s.Has(Poynting) {
		parts = append(parts, "S")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

// Config is the host-owned circuit configuration. It is read once per frame
// and never mutated by the engine.
type Config struct {
	Mode       Mode
	Voltage    float64 // amplitude in AC mode
	Resistance float64
	Frequency  float64 // Hz, AC only
	Fields     FieldSet
}

// Validate reports the first quantity that violates its bound.
func (c Config) Validate() error {
	switch c.Mode {
	case DC, AC:
	default:
		return &DomainError{Quantity: "mode", Value: float64(c.Mode), Reason: "unknown mode"}
	}
	if err := positive("voltage", c.Voltage); err != nil {
		return err
	}
	if err := positive("resistance", c.Resistance); err != nil {
		return err
	}
	if c.Mode == AC {
		if err := positive("frequency", c.Frequency); err != nil {
			return err
		}
	}
	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Quantity: name, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &DomainError{Quantity: name, Value: v, Reason: "must be > 0"}
	}
	return nil
}
