package math

import (
	"errors"
)

var (
	// ErrDivisionByZero is returned when a scalar divisor's magnitude is
	// below the epsilon of its type.
	ErrDivisionByZero = errors.New("division by near-zero scalar")
	// ErrZeroLength is returned when an operation requires a non-zero-length
	// vector (normalization, projection, spherical interpolation).
	ErrZeroLength = errors.New("zero-length vector")
	// ErrZeroQuaternion is returned when normalizing or inverting a
	// quaternion whose magnitude is below epsilon.
	ErrZeroQuaternion = errors.New("zero-magnitude quaternion")
	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant's magnitude is below epsilon.
	ErrSingularMatrix = errors.New("singular matrix")
)
