package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

/** @brief An approximate representation of PI. */
const Pi = 3.14159265358979323846

/** @brief A multiplier used to convert degrees to radians. */
const Deg2RadMultiplier = Pi / 180.0

/** @brief A multiplier used to convert radians to degrees. */
const Rad2DegMultiplier = 180.0 / Pi

// Scalar is the element constraint for the 2D types (Vec2, Rect), which
// are also instantiated with signed integers for pixel-space work.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Float is the element constraint for every 3D type. Rotations, projections
// and intersection tests are only meaningful over floating-point scalars.
type Float interface {
	constraints.Float
}

// Epsilon returns the machine epsilon of T: the numerical-stability threshold
// used to guard divisions, normalizations and singularity checks throughout
// the package. For integer types it is zero.
func Epsilon[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		e := m.Nextafter32(1, 2) - 1
		return T(e)
	case float64:
		e := m.Nextafter(1, 2) - 1
		return T(e)
	default:
		return zero
	}
}

/**
 * Note that these are here in order to prevent having to cast through
 * float64 at every call site of the standard math package.
 */
func ksqrt[T Float](x T) T {
	return T(m.Sqrt(float64(x)))
}

func ksin[T Float](x T) T {
	return T(m.Sin(float64(x)))
}

func kcos[T Float](x T) T {
	return T(m.Cos(float64(x)))
}

func ktan[T Float](x T) T {
	return T(m.Tan(float64(x)))
}

func kasin[T Float](x T) T {
	return T(m.Asin(float64(x)))
}

func kacos[T Float](x T) T {
	return T(m.Acos(float64(x)))
}

func katan2[T Float](y, x T) T {
	return T(m.Atan2(float64(y), float64(x)))
}

func kcopysign[T Float](x, sign T) T {
	return T(m.Copysign(float64(x), float64(sign)))
}

func kabs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func kinf[T Float](sign int) T {
	return T(m.Inf(sign))
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp linearly interpolates between a and b. t is not clamped; callers
// that need in-range interpolation clamp it themselves.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// DegToRad converts provided degrees to radians.
func DegToRad[T Float](degrees T) T {
	return degrees * Deg2RadMultiplier
}

// RadToDeg converts provided radians to degrees.
func RadToDeg[T Float](radians T) T {
	return radians * Rad2DegMultiplier
}
