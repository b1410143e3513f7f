// Package spec implements the validation shared by agent, environment,
// and experiment configurations
package spec

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every error returned from validating a
// configuration, so that callers can distinguish bad parameters from
// failures that happen while an experiment runs.
var ErrInvalid = errors.New("invalid configuration")

// Invalid returns an error wrapping ErrInvalid describing why the named
// parameter is invalid
func Invalid(name string, format string, args ...interface{}) error {
	return fmt.Errorf("%v: %v: %w", name, fmt.Sprintf(format, args...),
		ErrInvalid)
}

// Positive returns an error if value is not strictly positive
func Positive(name string, value int) error {
	if value <= 0 {
		return Invalid(name, "must be positive but got %v", value)
	}
	return nil
}

// NonNegative returns an error if value is negative
func NonNegative(name string, value float64) error {
	if value < 0 {
		return Invalid(name, "cannot be negative but got %v", value)
	}
	return nil
}

// Probability returns an error if value is outside [0, 1]
func Probability(name string, value float64) error {
	if value < 0 || value > 1 {
		return Invalid(name, "must be in [0, 1] but got %v", value)
	}
	return nil
}

// StepSize returns an error if value is outside (0, 1]
func StepSize(name string, value float64) error {
	if value <= 0 || value > 1 {
		return Invalid(name, "must be in (0, 1] but got %v", value)
	}
	return nil
}
