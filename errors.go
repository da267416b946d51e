package bitmap

import "errors"

var (
	// ErrOutOfBounds is returned when a pixel write or read targets a
	// position outside the buffer.
	ErrOutOfBounds = errors.New("bitmap: pixel out of bounds")

	// ErrInvalidArity is returned when a curve receives the wrong number
	// of control points. Nothing is drawn in this case.
	ErrInvalidArity = errors.New("bitmap: wrong number of control points")

	// ErrUnknownStrategy is returned for curve strategies outside the
	// defined set.
	ErrUnknownStrategy = errors.New("bitmap: unknown curve strategy")
)
