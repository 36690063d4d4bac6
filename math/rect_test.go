package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectAccessors(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	assert.Equal(t, 1, r.Left())
	assert.Equal(t, 11, r.Right())
	assert.Equal(t, 2, r.Top())
	assert.Equal(t, 22, r.Bottom())
	assert.Equal(t, NewVec2(1, 2), r.Position())
	assert.Equal(t, NewVec2(10, 20), r.Size())
	assert.Equal(t, NewVec2(6, 12), r.Center())

	fromVec := NewRectFromVectors(NewVec2(1, 2), NewVec2(10, 20))
	assert.Equal(t, r, fromVec)
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(0.0, 0.0, 10.0, 10.0)

	assert.True(t, r.Contains(NewVec2(0.0, 0.0)))
	assert.True(t, r.Contains(NewVec2(5.0, 5.0)))
	assert.True(t, r.Contains(NewVec2(9.999, 9.999)))

	// The max edges are exclusive, unlike AABB.Contains.
	assert.False(t, r.Contains(NewVec2(10.0, 5.0)))
	assert.False(t, r.Contains(NewVec2(5.0, 10.0)))
	assert.False(t, r.Contains(NewVec2(-0.001, 5.0)))
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.True(t, a.Intersects(NewRect(5, 5, 10, 10)))
	assert.True(t, a.Intersects(NewRect(-5, -5, 100, 100)))
	assert.False(t, a.Intersects(NewRect(20, 20, 5, 5)))

	// Rects that only share an edge do not intersect.
	assert.False(t, a.Intersects(NewRect(10, 0, 5, 10)))
	assert.False(t, a.Intersects(NewRect(0, 10, 10, 5)))
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersection(b))
	assert.Equal(t, a.Intersection(b), b.Intersection(a))

	// Contained rect intersects to itself.
	inner := NewRect(2, 2, 3, 3)
	assert.Equal(t, inner, a.Intersection(inner))

	// Disjoint rects intersect to the zero rect.
	assert.Equal(t, Rect[int]{}, a.Intersection(NewRect(20, 20, 5, 5)))
	assert.Equal(t, Rect[int]{}, a.Intersection(NewRect(10, 0, 5, 10)))
}

func TestRectExpand(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	// A contained point changes nothing.
	r.Expand(NewVec2(5, 5))
	assert.Equal(t, NewRect(0, 0, 10, 10), r)

	r.Expand(NewVec2(15, 5))
	assert.Equal(t, NewRect(0, 0, 15, 10), r)

	r.Expand(NewVec2(-5, -5))
	assert.Equal(t, NewRect(-5, -5, 20, 15), r)
}

func TestRectFloat64Instantiation(t *testing.T) {
	r := Rectd{X: 0.5, Y: 0.5, Width: 2.0, Height: 2.0}
	assert.True(t, r.Contains(NewVec2(2.4, 2.4)))
	assert.False(t, r.Contains(NewVec2(2.5, 1.0)))
	assert.Equal(t, NewVec2(1.5, 1.5), r.Center())
}

func TestRectIntegerInstantiation(t *testing.T) {
	r := Recti{X: 0, Y: 0, Width: 4, Height: 4}
	assert.True(t, r.Contains(NewVec2(3, 3)))
	assert.False(t, r.Contains(NewVec2(4, 0)))
	assert.Equal(t, NewVec2(2, 2), r.Center())
}
