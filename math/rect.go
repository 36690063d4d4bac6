package math

import (
	"fmt"
)

// Rect is a 2D axis-aligned box with X, Y as the top-left corner. Width and
// height may be zero or negative; they are not validated. Containment uses
// half-open intervals (inclusive on the min edge, exclusive on the max
// edge), which suits pixel-region testing, unlike AABB's closed intervals.
type Rect[T Scalar] struct {
	X, Y, Width, Height T
}

// Commonly used instantiations.
type (
	Rectf = Rect[float32]
	Rectd = Rect[float64]
	Recti = Rect[int]
)

// NewRect creates a rectangle from its top-left corner and size.
func NewRect[T Scalar](x, y, width, height T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromVectors creates a rectangle from a position and size vector.
func NewRectFromVectors[T Scalar](position, size Vec2[T]) Rect[T] {
	return Rect[T]{X: position.X, Y: position.Y, Width: size.X, Height: size.Y}
}

// Left returns the x coordinate of the left edge.
func (r Rect[T]) Left() T { return r.X }

// Right returns the x coordinate of the right edge (derived, not stored).
func (r Rect[T]) Right() T { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect[T]) Top() T { return r.Y }

// Bottom returns the y coordinate of the bottom edge (derived, not stored).
func (r Rect[T]) Bottom() T { return r.Y + r.Height }

// Position returns the top-left corner.
func (r Rect[T]) Position() Vec2[T] { return Vec2[T]{r.X, r.Y} }

// Size returns the width and height.
func (r Rect[T]) Size() Vec2[T] { return Vec2[T]{r.Width, r.Height} }

// Center returns the center point.
func (r Rect[T]) Center() Vec2[T] {
	return Vec2[T]{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle. The test is
// half-open: [x, x+width) x [y, y+height).
func (r Rect[T]) Contains(point Vec2[T]) bool {
	return point.X >= r.X && point.X < r.Right() &&
		point.Y >= r.Y && point.Y < r.Bottom()
}

// Intersects reports whether the rectangles overlap. Rectangles that only
// touch at an edge do not intersect.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	return !(r.Right() <= other.X || other.Right() <= r.X ||
		r.Bottom() <= other.Y || other.Bottom() <= r.Y)
}

// Intersection returns the overlapping rectangle, or a zero rectangle when
// there is no overlap.
func (r Rect[T]) Intersection(other Rect[T]) Rect[T] {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if left < right && top < bottom {
		return Rect[T]{X: left, Y: top, Width: right - left, Height: bottom - top}
	}
	return Rect[T]{}
}

// Expand grows the rectangle in place to include the given point, adjusting
// position and size together.
func (r *Rect[T]) Expand(point Vec2[T]) {
	newX := min(r.X, point.X)
	newY := min(r.Y, point.Y)
	r.Width = max(r.Right(), point.X) - newX
	r.Height = max(r.Bottom(), point.Y) - newY
	r.X = newX
	r.Y = newY
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.X, r.Y, r.Width, r.Height)
}
