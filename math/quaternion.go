package math

import (
	"fmt"
)

// Quat is a quaternion, used to represent rotational orientation. Only
// unit quaternions describe rotations; operations that assume unit norm
// (ToMat4, RotateVec3) say so and do not validate.
//
// The zero value is NOT a valid rotation; use NewQuatIdentity.
type Quat[T Float] struct {
	W, X, Y, Z T
}

// Commonly used instantiations.
type (
	Quatf = Quat[float32]
	Quatd = Quat[float64]
)

// NewQuat creates a quaternion from its four components.
func NewQuat[T Float](w, x, y, z T) Quat[T] {
	return Quat[T]{w, x, y, z}
}

/**
 * @brief Creates an identity quaternion (1, 0, 0, 0).
 */
func NewQuatIdentity[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

/**
 * @brief Creates a quaternion from the given axis and angle using the
 * half-angle construction. The axis is assumed to be unit length and is
 * not validated.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	halfAngle := angle * 0.5
	s := ksin(halfAngle)
	return Quat[T]{kcos(halfAngle), axis.X * s, axis.Y * s, axis.Z * s}
}

// NewQuatFromEulerAngles creates a quaternion from pitch (about y), yaw
// (about z) and roll (about x) angles in radians.
func NewQuatFromEulerAngles[T Float](pitch, yaw, roll T) Quat[T] {
	cy := kcos(yaw * 0.5)
	sy := ksin(yaw * 0.5)
	cp := kcos(pitch * 0.5)
	sp := ksin(pitch * 0.5)
	cr := kcos(roll * 0.5)
	sr := ksin(roll * 0.5)

	return Quat[T]{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

/**
 * @brief Multiplies the provided quaternions with the Hamilton product.
 * Composition order follows rotation composition: applying q.Mul(other)
 * equals applying other first, then q.
 */
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// RotateVec3 rotates v by q through the sandwich product q * (0, v) * q^-1
// and extracts the vector part. q is assumed to be unit length, so the
// conjugate stands in for the inverse. More expensive than rotating through
// a matrix but numerically robust.
func (q Quat[T]) RotateVec3(v Vec3[T]) Vec3[T] {
	p := Quat[T]{0, v.X, v.Y, v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3[T]{r.X, r.Y, r.Z}
}

/**
 * @brief Returns the magnitude (norm) of the provided quaternion.
 */
func (q Quat[T]) Magnitude() T {
	return ksqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quat[T]) Dot(other Quat[T]) T {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// Normalized returns a unit-norm copy of q. It returns ErrZeroQuaternion
// if the magnitude is below the epsilon of T.
func (q Quat[T]) Normalized() (Quat[T], error) {
	mag := q.Magnitude()
	if mag < Epsilon[T]() {
		return Quat[T]{}, fmt.Errorf("quat normalize: %w", ErrZeroQuaternion)
	}
	return Quat[T]{q.W / mag, q.X / mag, q.Y / mag, q.Z / mag}, nil
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * the x, y and z elements are negated, but the w element is untouched.
 */
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse returns the general quaternion inverse, the conjugate divided by
// the squared magnitude. For unit quaternions this equals the conjugate.
// It returns ErrZeroQuaternion if the squared magnitude is below the
// epsilon of T.
func (q Quat[T]) Inverse() (Quat[T], error) {
	magSquared := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if magSquared < Epsilon[T]() {
		return Quat[T]{}, fmt.Errorf("quat inverse: %w", ErrZeroQuaternion)
	}
	inv := 1 / magSquared
	return Quat[T]{q.W * inv, -q.X * inv, -q.Y * inv, -q.Z * inv}, nil
}

// ToMat4 creates a rotation matrix from the quaternion. q is assumed to be
// unit norm already; callers normalize first.
func (q Quat[T]) ToMat4() Mat4[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	out := NewMat4Identity[T]()
	out.Set(0, 0, 1-2*(yy+zz))
	out.Set(0, 1, 2*(xy-wz))
	out.Set(0, 2, 2*(xz+wy))
	out.Set(1, 0, 2*(xy+wz))
	out.Set(1, 1, 1-2*(xx+zz))
	out.Set(1, 2, 2*(yz-wx))
	out.Set(2, 0, 2*(xz-wy))
	out.Set(2, 1, 2*(yz+wx))
	out.Set(2, 2, 1-2*(xx+yy))
	return out
}

// ToEulerAngles decomposes the quaternion into euler angles in radians
// using the standard atan2/asin/atan2 form: X holds the roll (x-axis
// rotation), Y the pitch (y-axis) and Z the yaw (z-axis). When the pitch
// argument's magnitude reaches 1 the orientation is at gimbal lock; pitch
// is clamped to ±π/2 with the argument's sign instead of letting asin
// produce a NaN.
func (q Quat[T]) ToEulerAngles() Vec3[T] {
	var angles Vec3[T]

	// x-axis rotation
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	angles.X = katan2(sinrCosp, cosrCosp)

	// y-axis rotation
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if kabs(sinp) >= 1 {
		angles.Y = kcopysign(T(Pi/2), sinp)
	} else {
		angles.Y = kasin(sinp)
	}

	// z-axis rotation
	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	angles.Z = katan2(sinyCosp, cosyCosp)

	return angles
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions. Both are expected to be unit norm.
 *
 * If the dot product is negative the far quaternion is negated so the
 * interpolation takes the shortest path; when the two are nearly parallel
 * (dot > 0.9995) a linear interpolation plus renormalize is used instead,
 * since the spherical form divides by a sine approaching zero.
 */
func (q Quat[T]) Slerp(other Quat[T], t T) Quat[T] {
	dot := q.Dot(other)
	if dot < 0 {
		other = Quat[T]{-other.W, -other.X, -other.Y, -other.Z}
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		out := Quat[T]{
			W: q.W + t*(other.W-q.W),
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
		}
		// The lerp of two nearly parallel unit quaternions cannot vanish.
		mag := out.Magnitude()
		return Quat[T]{out.W / mag, out.X / mag, out.Y / mag, out.Z / mag}
	}

	// Since dot is in range [0, dotThreshold], acos is safe.
	theta0 := kacos(dot)
	theta := theta0 * t
	sinTheta := ksin(theta)
	sinTheta0 := ksin(theta0)

	s0 := kcos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat[T]{
		W: s0*q.W + s1*other.W,
		X: s0*q.X + s1*other.X,
		Y: s0*q.Y + s1*other.Y,
		Z: s0*q.Z + s1*other.Z,
	}
}

/**
 * @brief Compares all elements of q and other and ensures the difference
 * is at most tolerance.
 */
func (q Quat[T]) Compare(other Quat[T], tolerance T) bool {
	if kabs(q.W-other.W) > tolerance {
		return false
	}
	if kabs(q.X-other.X) > tolerance {
		return false
	}
	if kabs(q.Y-other.Y) > tolerance {
		return false
	}
	if kabs(q.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// Equal reports whether q and other are equal within the epsilon of T.
func (q Quat[T]) Equal(other Quat[T]) bool {
	return q.Compare(other, Epsilon[T]())
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("Quat(%v, %v, %v, %v)", q.W, q.X, q.Y, q.Z)
}
