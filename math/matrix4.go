package math

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 matrix, typically used to represent object transformations.
// Elements are stored row-major in a flat array; transforms follow the
// column-vector convention, so in a product the right operand applies first.
//
// The zero value is NOT the identity; use NewMat4Identity.
type Mat4[T Float] struct {
	/** @brief The matrix elements */
	Data [16]T
}

// Commonly used instantiations.
type (
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity[T Float]() Mat4[T] {
	out := Mat4[T]{}
	out.Data[0] = 1
	out.Data[5] = 1
	out.Data[10] = 1
	out.Data[15] = 1
	return out
}

// NewMat4FromValues creates a matrix from 16 values in row-major order.
func NewMat4FromValues[T Float](values [16]T) Mat4[T] {
	return Mat4[T]{Data: values}
}

// At returns the element at the given row and column.
// It panics if either index is outside [0, 3].
func (mt Mat4[T]) At(row, col int) T {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic(fmt.Sprintf("math: Mat4 index (%d, %d) out of range [0, 3]", row, col))
	}
	return mt.Data[row*4+col]
}

// Set assigns the element at the given row and column.
// It panics if either index is outside [0, 3].
func (mt *Mat4[T]) Set(row, col int, value T) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic(fmt.Sprintf("math: Mat4 index (%d, %d) out of range [0, 3]", row, col))
	}
	mt.Data[row*4+col] = value
}

/**
 * @brief Returns the result of multiplying mt and other with standard
 * row-by-column composition. Not commutative; under the column-vector
 * convention the right operand is the transform applied first.
 */
func (mt Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	out := Mat4[T]{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := T(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

// MulVec3 transforms v as a homogeneous point with an implicit w of 1,
// applying the full 4-row transform. The perspective divide happens only
// when the resulting |w| exceeds epsilon; in the affine case the point is
// returned unnormalized by w.
func (mt Mat4[T]) MulVec3(v Vec3[T]) Vec3[T] {
	x := v.X*mt.Data[0] + v.Y*mt.Data[1] + v.Z*mt.Data[2] + mt.Data[3]
	y := v.X*mt.Data[4] + v.Y*mt.Data[5] + v.Z*mt.Data[6] + mt.Data[7]
	z := v.X*mt.Data[8] + v.Y*mt.Data[9] + v.Z*mt.Data[10] + mt.Data[11]
	w := v.X*mt.Data[12] + v.Y*mt.Data[13] + v.Z*mt.Data[14] + mt.Data[15]

	if kabs(w) > Epsilon[T]() {
		x /= w
		y /= w
		z /= w
	}
	return Vec3[T]{x, y, z}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns).
 */
func (mt Mat4[T]) Transposed() Mat4[T] {
	out := Mat4[T]{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Data[row*4+col] = mt.Data[col*4+row]
		}
	}
	return out
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation[T Float](position Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()
	out.Data[3] = position.X
	out.Data[7] = position.Y
	out.Data[11] = position.Z
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale[T Float](scale Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

/**
 * @brief Creates a right-handed rotation matrix around the x axis.
 *
 * @param angleRadians The angle in radians.
 */
func NewMat4RotationX[T Float](angleRadians T) Mat4[T] {
	out := NewMat4Identity[T]()
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	out.Data[5] = c
	out.Data[6] = -s
	out.Data[9] = s
	out.Data[10] = c
	return out
}

/**
 * @brief Creates a right-handed rotation matrix around the y axis.
 *
 * @param angleRadians The angle in radians.
 */
func NewMat4RotationY[T Float](angleRadians T) Mat4[T] {
	out := NewMat4Identity[T]()
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	out.Data[0] = c
	out.Data[2] = s
	out.Data[8] = -s
	out.Data[10] = c
	return out
}

/**
 * @brief Creates a right-handed rotation matrix around the z axis.
 *
 * @param angleRadians The angle in radians.
 */
func NewMat4RotationZ[T Float](angleRadians T) Mat4[T] {
	out := NewMat4Identity[T]()
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	out.Data[0] = c
	out.Data[1] = -s
	out.Data[4] = s
	out.Data[5] = c
	return out
}

/**
 * @brief Creates and returns a look-at view matrix with a right-handed
 * camera basis: forward = normalize(center - eye), side = forward x up,
 * and the camera up recomputed as side x forward.
 *
 * eye and center must not coincide and up must not be parallel to the view
 * direction; degenerate inputs produce a degenerate basis.
 *
 * @param eye The eye position.
 * @param center The position to look at.
 * @param up The world up vector.
 */
func NewMat4LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f, _ := center.Sub(eye).Normalized()
	s, _ := f.Cross(up).Normalized()
	u := s.Cross(f)

	out := NewMat4Identity[T]()
	out.Data[0] = s.X
	out.Data[1] = s.Y
	out.Data[2] = s.Z
	out.Data[4] = u.X
	out.Data[5] = u.Y
	out.Data[6] = u.Z
	out.Data[8] = -f.X
	out.Data[9] = -f.Y
	out.Data[10] = -f.Z
	out.Data[3] = -s.Dot(eye)
	out.Data[7] = -u.Dot(eye)
	out.Data[11] = f.Dot(eye)
	return out
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically
 * used to render flat or 2D scenes.
 *
 * @param left The left side of the view volume.
 * @param right The right side of the view volume.
 * @param bottom The bottom side of the view volume.
 * @param top The top side of the view volume.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 */
func NewMat4Orthographic[T Float](left, right, bottom, top, nearClip, farClip T) Mat4[T] {
	out := NewMat4Identity[T]()
	out.Data[0] = 2 / (right - left)
	out.Data[5] = 2 / (top - bottom)
	out.Data[10] = -2 / (farClip - nearClip)
	out.Data[3] = -(right + left) / (right - left)
	out.Data[7] = -(top + bottom) / (top - bottom)
	out.Data[11] = -(farClip + nearClip) / (farClip - nearClip)
	return out
}

/**
 * @brief Creates and returns an OpenGL-style perspective projection matrix.
 * Typically used to render 3d scenes.
 *
 * @param fovRadians The vertical field of view in radians.
 * @param aspectRatio The aspect ratio.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 */
func NewMat4Perspective[T Float](fovRadians, aspectRatio, nearClip, farClip T) Mat4[T] {
	halfTanFov := ktan(fovRadians * 0.5)
	out := NewMat4Identity[T]()
	out.Data[0] = 1 / (aspectRatio * halfTanFov)
	out.Data[5] = 1 / halfTanFov
	out.Data[10] = -(farClip + nearClip) / (farClip - nearClip)
	out.Data[11] = -(2 * farClip * nearClip) / (farClip - nearClip)
	out.Data[14] = -1
	out.Data[15] = 0
	return out
}

// Determinant returns the determinant of the matrix via direct cofactor
// expansion along the first row.
func (mt Mat4[T]) Determinant() T {
	d := mt.Data
	return d[0]*(d[5]*d[10]*d[15]+d[6]*d[11]*d[13]+d[7]*d[9]*d[14]-
		d[7]*d[10]*d[13]-d[5]*d[11]*d[14]-d[6]*d[9]*d[15]) -
		d[1]*(d[4]*d[10]*d[15]+d[6]*d[11]*d[12]+d[7]*d[8]*d[14]-
			d[7]*d[10]*d[12]-d[4]*d[11]*d[14]-d[6]*d[8]*d[15]) +
		d[2]*(d[4]*d[9]*d[15]+d[5]*d[11]*d[12]+d[7]*d[8]*d[13]-
			d[7]*d[9]*d[12]-d[4]*d[11]*d[13]-d[5]*d[8]*d[15]) -
		d[3]*(d[4]*d[9]*d[14]+d[5]*d[10]*d[12]+d[6]*d[8]*d[13]-
			d[6]*d[9]*d[12]-d[4]*d[10]*d[13]-d[5]*d[8]*d[14])
}

// Inverse returns the analytic inverse of the matrix computed from the full
// cofactor table. It returns ErrSingularMatrix when the determinant's
// magnitude is below the epsilon of T.
func (mt Mat4[T]) Inverse() (Mat4[T], error) {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out := Mat4[T]{}
	o := &out.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	det := m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3]
	if kabs(det) < Epsilon[T]() {
		return Mat4[T]{}, fmt.Errorf("mat4 inverse: %w", ErrSingularMatrix)
	}
	d := 1 / det

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out, nil
}

/**
 * @brief Compares all elements of mt and other and ensures the difference
 * is at most tolerance.
 */
func (mt Mat4[T]) Compare(other Mat4[T], tolerance T) bool {
	for i := 0; i < 16; i++ {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// Equal reports whether mt and other are equal within the epsilon of T.
func (mt Mat4[T]) Equal(other Mat4[T]) bool {
	return mt.Compare(other, Epsilon[T]())
}

func (mt Mat4[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Mat4(")
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%v, %v, %v, %v",
			mt.Data[row*4], mt.Data[row*4+1], mt.Data[row*4+2], mt.Data[row*4+3])
	}
	sb.WriteString(")")
	return sb.String()
}
