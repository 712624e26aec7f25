package circuit

import (
	"errors"
	"fmt"
)

// ErrDomain marks an invalid physical configuration.
var ErrDomain = errors.New("circuit: invalid physical configuration")

// DomainError names the quantity that was out of range.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("circuit: %s %s, got %g", e.Quantity, e.Reason, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
