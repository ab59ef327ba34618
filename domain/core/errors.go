package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrCaseMismatch means a fold result was recorded against a store
	// that belongs to a different execution case.
	ErrCaseMismatch = errors.New("execution case mismatch")

	// Lookup errors
	ErrUnknownFold = errors.New("unknown fold")
	ErrUnknownCase = errors.New("unknown execution case")

	// ErrInconsistentInput covers cross-case validation failures at
	// construction time: mismatched metric descriptions, fold sets,
	// eval steps, too few cases, duplicate metric names.
	ErrInconsistentInput = errors.New("inconsistent evaluation input")

	// ErrInputValidation covers malformed caller input such as duplicate
	// column-role assignments in the column description writer.
	ErrInputValidation = errors.New("input validation failed")

	// ErrDegenerateSample means a statistical estimator received input it
	// cannot work with (for example all-zero paired differences).
	ErrDegenerateSample = errors.New("degenerate sample")
)

// Error constructors with context
func NewCaseMismatchError(want, got string) error {
	return fmt.Errorf("%w: result belongs to case %q, got model for case %q", ErrCaseMismatch, want, got)
}

func NewUnknownFoldError(fold string) error {
	return fmt.Errorf("%w: %s", ErrUnknownFold, fold)
}

func NewUnknownCaseError(c string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCase, c)
}

func NewInconsistentInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInconsistentInput, reason)
}

func NewInputValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInputValidation, reason)
}

// Error checking helpers
func IsLookupError(err error) bool {
	return errors.Is(err, ErrUnknownFold) || errors.Is(err, ErrUnknownCase)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInconsistentInput) ||
		errors.Is(err, ErrInputValidation) ||
		errors.Is(err, ErrCaseMismatch)
}
