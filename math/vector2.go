package math

import (
	"fmt"
)

// Vec2 represents a 2D vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// Commonly used instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec2i = Vec2[int]
)

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.
 */
func NewVec2Zero[T Scalar]() Vec2[T] {
	return Vec2[T]{}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.
 */
func NewVec2One[T Scalar]() Vec2[T] {
	return Vec2[T]{1, 1}
}

/**
 * @brief Creates and returns a 2-component vector pointing along the x axis (1, 0).
 */
func NewVec2UnitX[T Scalar]() Vec2[T] {
	return Vec2[T]{1, 0}
}

/**
 * @brief Creates and returns a 2-component vector pointing along the y axis (0, 1).
 */
func NewVec2UnitY[T Scalar]() Vec2[T] {
	return Vec2[T]{0, 1}
}

// At returns component i of the vector (0 for x, 1 for y).
// It panics if i is outside {0, 1}.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("math: Vec2 index %d out of range [0, 1]", i))
	}
}

// SetAt sets component i of the vector. It panics if i is outside {0, 1}.
func (v *Vec2[T]) SetAt(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("math: Vec2 index %d out of range [0, 1]", i))
	}
}

/**
 * Adds other to v and returns a copy of the result.
 */
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

/**
 * Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * other.X, v.Y * other.Y}
}

/**
 * Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2[T]) MulScalar(scalar T) Vec2[T] {
	return Vec2[T]{v.X * scalar, v.Y * scalar}
}

// DivScalar divides all elements of v by scalar and returns a copy of the
// result. It returns ErrDivisionByZero if the scalar's magnitude is below
// the epsilon of T.
func (v Vec2[T]) DivScalar(scalar T) (Vec2[T], error) {
	if kabs(scalar) < Epsilon[T]() {
		return Vec2[T]{}, fmt.Errorf("vec2 divide: %w", ErrDivisionByZero)
	}
	return Vec2[T]{v.X / scalar, v.Y / scalar}, nil
}

// AddAssign adds other to v in place and returns v for chaining.
func (v *Vec2[T]) AddAssign(other Vec2[T]) *Vec2[T] {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SubAssign subtracts other from v in place and returns v for chaining.
func (v *Vec2[T]) SubAssign(other Vec2[T]) *Vec2[T] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// MulAssign multiplies v by other componentwise in place and returns v for chaining.
func (v *Vec2[T]) MulAssign(other Vec2[T]) *Vec2[T] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// MulScalarAssign multiplies v by scalar in place and returns v for chaining.
func (v *Vec2[T]) MulScalarAssign(scalar T) *Vec2[T] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

// DivScalarAssign divides v by scalar in place. It returns ErrDivisionByZero
// if the scalar's magnitude is below the epsilon of T, leaving v untouched.
func (v *Vec2[T]) DivScalarAssign(scalar T) error {
	if kabs(scalar) < Epsilon[T]() {
		return fmt.Errorf("vec2 divide: %w", ErrDivisionByZero)
	}
	v.X /= scalar
	v.Y /= scalar
	return nil
}

/**
 * @brief Returns the dot product between the provided vectors.
 */
func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2[T]) Length() T {
	return T(ksqrt(float64(v.LengthSquared())))
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2[T]) Distance(other Vec2[T]) T {
	return v.Sub(other).Length()
}

// Normalized returns a unit-length copy of v. It returns ErrZeroLength if
// the vector's length is below the epsilon of T.
func (v Vec2[T]) Normalized() (Vec2[T], error) {
	length := v.Length()
	if length < Epsilon[T]() {
		return Vec2[T]{}, fmt.Errorf("vec2 normalize: %w", ErrZeroLength)
	}
	return Vec2[T]{v.X / length, v.Y / length}, nil
}

// Normalize normalizes v in place to a unit vector. It returns ErrZeroLength
// if the vector's length is below the epsilon of T, leaving v untouched.
func (v *Vec2[T]) Normalize() error {
	n, err := v.Normalized()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is at most tolerance.
 *
 * @param other The vector to compare against.
 * @param tolerance The difference tolerance. Typically Epsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2[T]) Compare(other Vec2[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// Equal reports whether v and other are equal within the epsilon of T.
func (v Vec2[T]) Equal(other Vec2[T]) bool {
	return v.Compare(other, Epsilon[T]())
}

// Lerp linearly interpolates from v to other by factor t. t is not clamped.
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	return v.Add(other.Sub(v).MulScalar(t))
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}
