package math

import (
	"fmt"
)

// Ray represents a ray in 3D space: an origin and a unit direction.
type Ray[T Float] struct {
	Origin    Vec3[T]
	Direction Vec3[T]
}

// AABB represents an axis-aligned bounding box defined by its componentwise
// minimum and maximum corners. Callers maintain Min <= Max componentwise;
// this is not enforced.
type AABB[T Float] struct {
	Min Vec3[T]
	Max Vec3[T]
}

// Plane represents a plane in 3D space in normal/distance form. The normal
// is stored normalized; the distance is measured along the normal from the
// origin, so a point p lies on the plane when Normal.Dot(p) + Distance == 0.
type Plane[T Float] struct {
	Normal   Vec3[T]
	Distance T
}

// Sphere represents a sphere in 3D space. The radius is not validated; a
// negative radius is accepted but the query results are not geometrically
// meaningful.
type Sphere[T Float] struct {
	Center Vec3[T]
	Radius T
}

// Frustum is the six-plane convex region visible to a camera, derived from
// a view-projection matrix. Each plane's positive half-space is the inside
// of that face.
type Frustum[T Float] struct {
	Planes [6]Plane[T]
}

// Frustum plane indices.
const (
	FrustumNear = iota
	FrustumFar
	FrustumLeft
	FrustumRight
	FrustumTop
	FrustumBottom
)

// Transform represents the position, rotation and scale of an object in the
// world. The rotation is expected to be unit norm; the scale is applied
// componentwise and may be non-uniform.
type Transform[T Float] struct {
	Position Vec3[T]
	Rotation Quat[T]
	Scale    Vec3[T]
}

// Commonly used instantiations.
type (
	Rayf       = Ray[float32]
	AABBf      = AABB[float32]
	Planef     = Plane[float32]
	Spheref    = Sphere[float32]
	Frustumf   = Frustum[float32]
	Transformf = Transform[float32]
)

// ------------------------------------------
// Ray
// ------------------------------------------

// NewRay creates a ray from an origin and a direction. The direction is
// normalized at construction; ErrZeroLength is returned if it has no length.
func NewRay[T Float](origin, direction Vec3[T]) (Ray[T], error) {
	dir, err := direction.Normalized()
	if err != nil {
		return Ray[T]{}, fmt.Errorf("ray direction: %w", ErrZeroLength)
	}
	return Ray[T]{Origin: origin, Direction: dir}, nil
}

// PointAt returns the point along the ray at parametric distance t from the
// origin. t may be negative, yielding a point behind the origin.
func (r Ray[T]) PointAt(t T) Vec3[T] {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// ------------------------------------------
// AABB
// ------------------------------------------

// NewAABB creates an axis-aligned bounding box from its corners.
func NewAABB[T Float](min, max Vec3[T]) AABB[T] {
	return AABB[T]{Min: min, Max: max}
}

// IntersectsRay tests the ray against the box with the slab method,
// narrowing a valid parametric interval per axis. On a hit it returns the
// entry and exit distances. A ray parallel to an axis (direction component
// within epsilon of zero) only passes that axis if its origin already lies
// within the slab.
func (b AABB[T]) IntersectsRay(ray Ray[T]) (tMin, tMax T, ok bool) {
	tMin = kinf[T](-1)
	tMax = kinf[T](1)

	for i := 0; i < 3; i++ {
		d := ray.Direction.At(i)
		o := ray.Origin.At(i)
		if kabs(d) < Epsilon[T]() {
			if o < b.Min.At(i) || o > b.Max.At(i) {
				return 0, 0, false
			}
			continue
		}

		t1 := (b.Min.At(i) - o) / d
		t2 := (b.Max.At(i) - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

// Contains reports whether the point lies inside the box. The test is a
// closed interval on both ends, unlike Rect's half-open convention.
func (b AABB[T]) Contains(point Vec3[T]) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// ------------------------------------------
// Plane
// ------------------------------------------

// NewPlane creates a plane from a normal and a distance along it. The
// normal is normalized at construction; ErrZeroLength is returned if it
// has no length.
func NewPlane[T Float](normal Vec3[T], distance T) (Plane[T], error) {
	n, err := normal.Normalized()
	if err != nil {
		return Plane[T]{}, fmt.Errorf("plane normal: %w", ErrZeroLength)
	}
	return Plane[T]{Normal: n, Distance: distance}, nil
}

// NewPlaneFromPoint creates a plane from a normal and a point on the plane.
// The distance is derived as -normal.Dot(point) from the normal as given;
// the stored normal is normalized. ErrZeroLength is returned if the normal
// has no length.
func NewPlaneFromPoint[T Float](normal, point Vec3[T]) (Plane[T], error) {
	n, err := normal.Normalized()
	if err != nil {
		return Plane[T]{}, fmt.Errorf("plane normal: %w", ErrZeroLength)
	}
	return Plane[T]{Normal: n, Distance: -normal.Dot(point)}, nil
}

// DistanceToPoint returns the signed distance from the point to the plane,
// positive on the side the normal points toward.
func (p Plane[T]) DistanceToPoint(point Vec3[T]) T {
	return p.Normal.Dot(point) + p.Distance
}

// IntersectsRay tests the ray against the plane. It reports false when the
// ray is parallel to the plane (denominator within epsilon of zero) or the
// intersection lies behind the ray origin; otherwise it returns the entry
// distance.
func (p Plane[T]) IntersectsRay(ray Ray[T]) (T, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if kabs(denom) < Epsilon[T]() {
		return 0, false
	}
	t := -(p.Normal.Dot(ray.Origin) + p.Distance) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ------------------------------------------
// Sphere
// ------------------------------------------

// NewSphere creates a sphere from a center and radius.
func NewSphere[T Float](center Vec3[T], radius T) Sphere[T] {
	return Sphere[T]{Center: center, Radius: radius}
}

// Contains reports whether the point lies inside the sphere, compared by
// squared distance to avoid a square root.
func (s Sphere[T]) Contains(point Vec3[T]) bool {
	return point.Sub(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// IntersectsRay tests the ray against the sphere with the classic b/c
// quadratic form. Rays starting outside and pointing away are rejected
// before the discriminant is evaluated. On a hit it returns the near root;
// a ray starting inside the sphere reports t = 0 rather than the entry
// behind its origin.
func (s Sphere[T]) IntersectsRay(ray Ray[T]) (T, bool) {
	m := ray.Origin.Sub(s.Center)
	b := m.Dot(ray.Direction)
	c := m.Dot(m) - s.Radius*s.Radius

	if c > 0 && b > 0 {
		return 0, false
	}
	discriminant := b*b - c
	if discriminant < 0 {
		return 0, false
	}

	t := -b - ksqrt(discriminant)
	if t < 0 {
		t = 0
	}
	return t, true
}

// ------------------------------------------
// Frustum
// ------------------------------------------

// NewFrustum derives a frustum from a combined view-projection matrix.
func NewFrustum[T Float](viewProjection Mat4[T]) Frustum[T] {
	f := Frustum[T]{}
	f.UpdatePlanes(viewProjection)
	return f
}

// UpdatePlanes re-derives the six clipping planes from the rows of the
// view-projection matrix using the Gribb-Hartmann extraction: plane k is
// the fourth row plus or minus row k. Each plane is normalized by the
// length of its normal so signed distances are in world units.
func (f *Frustum[T]) UpdatePlanes(viewProjection Mat4[T]) {
	d := viewProjection.Data
	row := func(k int) (Vec3[T], T) {
		return Vec3[T]{d[k*4], d[k*4+1], d[k*4+2]}, d[k*4+3]
	}
	n3, d3 := row(3)

	set := func(idx int, n Vec3[T], dist T) {
		length := n.Length()
		f.Planes[idx] = Plane[T]{
			Normal:   Vec3[T]{n.X / length, n.Y / length, n.Z / length},
			Distance: dist / length,
		}
	}

	n2, d2 := row(2)
	set(FrustumNear, n3.Add(n2), d3+d2)
	set(FrustumFar, n3.Sub(n2), d3-d2)

	n0, d0 := row(0)
	set(FrustumLeft, n3.Add(n0), d3+d0)
	set(FrustumRight, n3.Sub(n0), d3-d0)

	n1, d1 := row(1)
	set(FrustumTop, n3.Sub(n1), d3-d1)
	set(FrustumBottom, n3.Add(n1), d3+d1)
}

// ContainsPoint reports whether the point is on the positive side of all
// six planes.
func (f *Frustum[T]) ContainsPoint(point Vec3[T]) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}

// IntersectsAABB reports whether the box may intersect the frustum, using
// the positive-vertex optimization: per plane, only the corner most extreme
// along the plane normal is tested. The test is conservative; a box near a
// frustum corner can be reported as intersecting when it is fully outside.
// Consumers treat a positive result as "maybe visible".
func (f *Frustum[T]) IntersectsAABB(aabb AABB[T]) bool {
	for _, plane := range f.Planes {
		positive := aabb.Min
		if plane.Normal.X >= 0 {
			positive.X = aabb.Max.X
		}
		if plane.Normal.Y >= 0 {
			positive.Y = aabb.Max.Y
		}
		if plane.Normal.Z >= 0 {
			positive.Z = aabb.Max.Z
		}
		if plane.DistanceToPoint(positive) < 0 {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Transform
// ------------------------------------------

// NewTransform creates a transform from position, rotation and scale.
func NewTransform[T Float](position Vec3[T], rotation Quat[T], scale Vec3[T]) Transform[T] {
	return Transform[T]{Position: position, Rotation: rotation, Scale: scale}
}

// NewTransformIdentity creates a transform with zero position, identity
// rotation and unit scale.
func NewTransformIdentity[T Float]() Transform[T] {
	return Transform[T]{
		Rotation: NewQuatIdentity[T](),
		Scale:    NewVec3One[T](),
	}
}

// ToMatrix composes the transform into a matrix as translation x rotation x
// scaling; under the column-vector convention the scale applies first, then
// the rotation, then the translation.
func (t Transform[T]) ToMatrix() Mat4[T] {
	return NewMat4Translation(t.Position).
		Mul(t.Rotation.ToMat4()).
		Mul(NewMat4Scale(t.Scale))
}

// TransformPoint transforms a point directly as rotation * (point * scale)
// + position. Equivalent to ToMatrix().MulVec3(point) for affine transforms
// but skips building the full matrix.
func (t Transform[T]) TransformPoint(point Vec3[T]) Vec3[T] {
	return t.Rotation.RotateVec3(point.Mul(t.Scale)).Add(t.Position)
}

// TransformDirection transforms a direction vector, applying the rotation
// only. Scale and translation do not apply to directions.
func (t Transform[T]) TransformDirection(direction Vec3[T]) Vec3[T] {
	return t.Rotation.RotateVec3(direction)
}

// Interpolate blends between t and other: position and scale are lerped
// componentwise, the rotation is slerped.
func (t Transform[T]) Interpolate(other Transform[T], factor T) Transform[T] {
	return Transform[T]{
		Position: t.Position.Lerp(other.Position, factor),
		Rotation: t.Rotation.Slerp(other.Rotation, factor),
		Scale:    t.Scale.Lerp(other.Scale, factor),
	}
}
