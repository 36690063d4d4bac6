package math

import (
	"fmt"
)

// Vec3 represents a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Commonly used instantiations.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
)

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func NewVec3Zero[T Float]() Vec3[T] {
	return Vec3[T]{}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.
 */
func NewVec3One[T Float]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up[T Float]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down[T Float]() Vec3[T] {
	return Vec3[T]{0, -1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left[T Float]() Vec3[T] {
	return Vec3[T]{-1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right[T Float]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, 1).
 */
func NewVec3Forward[T Float]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, -1).
 */
func NewVec3Backward[T Float]() Vec3[T] {
	return Vec3[T]{0, 0, -1}
}

// At returns component i of the vector (0 for x, 1 for y, 2 for z).
// It panics if i is outside {0, 1, 2}.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("math: Vec3 index %d out of range [0, 2]", i))
	}
}

// SetAt sets component i of the vector. It panics if i is outside {0, 1, 2}.
func (v *Vec3[T]) SetAt(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("math: Vec3 index %d out of range [0, 2]", i))
	}
}

/**
 * Adds other to v and returns a copy of the result.
 */
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

/**
 * Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3[T]) MulScalar(scalar T) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// DivScalar divides all elements of v by scalar and returns a copy of the
// result. It returns ErrDivisionByZero if the scalar's magnitude is below
// the epsilon of T.
func (v Vec3[T]) DivScalar(scalar T) (Vec3[T], error) {
	if kabs(scalar) < Epsilon[T]() {
		return Vec3[T]{}, fmt.Errorf("vec3 divide: %w", ErrDivisionByZero)
	}
	return Vec3[T]{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// AddAssign adds other to v in place and returns v for chaining.
func (v *Vec3[T]) AddAssign(other Vec3[T]) *Vec3[T] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// SubAssign subtracts other from v in place and returns v for chaining.
func (v *Vec3[T]) SubAssign(other Vec3[T]) *Vec3[T] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// MulAssign multiplies v by other componentwise in place and returns v for chaining.
func (v *Vec3[T]) MulAssign(other Vec3[T]) *Vec3[T] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// MulScalarAssign multiplies v by scalar in place and returns v for chaining.
func (v *Vec3[T]) MulScalarAssign(scalar T) *Vec3[T] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// DivScalarAssign divides v by scalar in place. It returns ErrDivisionByZero
// if the scalar's magnitude is below the epsilon of T, leaving v untouched.
func (v *Vec3[T]) DivScalarAssign(scalar T) error {
	if kabs(scalar) < Epsilon[T]() {
		return fmt.Errorf("vec3 divide: %w", ErrDivisionByZero)
	}
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return nil
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Length()
}

// Normalized returns a unit-length copy of v. It returns ErrZeroLength if
// the vector's length is below the epsilon of T.
func (v Vec3[T]) Normalized() (Vec3[T], error) {
	length := v.Length()
	if length < Epsilon[T]() {
		return Vec3[T]{}, fmt.Errorf("vec3 normalize: %w", ErrZeroLength)
	}
	return Vec3[T]{v.X / length, v.Y / length, v.Z / length}, nil
}

// Normalize normalizes v in place to a unit vector. It returns ErrZeroLength
// if the vector's length is below the epsilon of T, leaving v untouched.
func (v *Vec3[T]) Normalize() error {
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
func (v Vec3[T]) Compare(other Vec3[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// Equal reports whether v and other are equal within the epsilon of T.
func (v Vec3[T]) Equal(other Vec3[T]) bool {
	return v.Compare(other, Epsilon[T]())
}

// ProjectOnto returns the projection of v onto other. It returns
// ErrZeroLength if other's length is below the epsilon of T.
func (v Vec3[T]) ProjectOnto(other Vec3[T]) (Vec3[T], error) {
	lenSquared := other.LengthSquared()
	if lenSquared < Epsilon[T]() {
		return Vec3[T]{}, fmt.Errorf("vec3 project: %w", ErrZeroLength)
	}
	return other.MulScalar(v.Dot(other) / lenSquared), nil
}

// Reflect returns v reflected across the given normal. The normal is
// assumed to be unit length.
func (v Vec3[T]) Reflect(normal Vec3[T]) Vec3[T] {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Lerp linearly interpolates from v to other by factor t. t is not clamped.
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return v.Add(other.Sub(v).MulScalar(t))
}

// Slerp spherically interpolates from v to other by factor t, following the
// great circle between the two directions at constant angular velocity. Both
// vectors are expected to be unit length. The dot product is clamped to
// [-1, 1] before acos so floating rounding cannot take it out of domain.
// It returns ErrZeroLength when the inputs are parallel and no unique
// rotation plane exists.
func (v Vec3[T]) Slerp(other Vec3[T], t T) (Vec3[T], error) {
	dot := Clamp(v.Dot(other), -1, 1)
	theta := kacos(dot) * t
	relative, err := other.Sub(v.MulScalar(dot)).Normalized()
	if err != nil {
		return Vec3[T]{}, fmt.Errorf("vec3 slerp: %w", ErrZeroLength)
	}
	return v.MulScalar(kcos(theta)).Add(relative.MulScalar(ksin(theta))), nil
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
