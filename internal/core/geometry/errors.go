// Package geometry defines domain-specific errors
package geometry

import "errors"

// Domain errors - defined once, used everywhere
var (
	// Line errors
	ErrTooFewPoints   = errors.New("line requires at least two points")
	ErrNonFiniteCoord = errors.New("coordinate is not a finite number")

	// Nearest-pair errors
	ErrEmptyPointSet = errors.New("point set cannot be empty")
)
