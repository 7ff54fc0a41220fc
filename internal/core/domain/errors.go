package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMeasurementFormat indicates a measurement string matched none of
	// the recognised patterns.
	ErrMeasurementFormat = errors.New("unrecognised measurement format")

	// ErrUnknownUnit indicates a unit name that is not recognised.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrNoValidArea indicates an operation that requires a room with a
	// computable area was invoked on a room without one.
	ErrNoValidArea = errors.New("room has no valid area")

	// ErrEmptyDocument indicates a document with no walls was handed to an
	// operation that needs geometry to work with.
	ErrEmptyDocument = errors.New("document contains no walls")
)
