package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput covers violations of the shared vector contract
	// (missing values, non-positive values, mismatched lengths, ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig covers out-of-range detector settings and
	// unrecognized method selectors.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDegenerate covers computations that would otherwise divide by a
	// zero quantity or fit a singular design. Surfaced instead of NaN.
	ErrDegenerate = errors.New("degenerate computation")
)

// Error constructors with context
func NewInputError(reasons []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(reasons, "; "))
}

func NewConfigError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, reason)
}

func NewDegeneracyError(quantity string) error {
	return fmt.Errorf("%w: %s", ErrDegenerate, quantity)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

func IsDegeneracyError(err error) bool {
	return errors.Is(err, ErrDegenerate)
}
