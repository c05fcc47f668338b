package eos

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned when grid bounds or step cannot produce an ascending sequence.
	ErrInvalidGrid = errors.New("eos: invalid grid (need finite start < stop and step > 0)")

	// ErrEmptyGrid is returned when a scan is asked to search no candidates.
	ErrEmptyGrid = errors.New("eos: empty grid")

	// ErrInvalidPressure is returned for a target pressure that cannot be compared (NaN).
	ErrInvalidPressure = errors.New("eos: target pressure is NaN")

	// ErrNonPositiveVolume marks a forward-model call outside V > 0.
	ErrNonPositiveVolume = errors.New("eos: volume must be positive")
)

// DomainError reports a model evaluated outside its mathematical domain.
type DomainError struct {
	Op     string
	Volume float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: V=%g: %v", e.Op, e.Volume, ErrNonPositiveVolume)
}

func (e *DomainError) Unwrap() error {
	return ErrNonPositiveVolume
}
