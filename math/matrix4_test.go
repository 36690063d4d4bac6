package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4Identity(t *testing.T) {
	id := NewMat4Identity[float64]()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if row == col {
				assert.Equal(t, 1.0, id.At(row, col))
			} else {
				assert.Equal(t, 0.0, id.At(row, col))
			}
		}
	}

	mat := NewMat4Translation(NewVec3(1.0, 2.0, 3.0)).Mul(NewMat4RotationY[float64](0.8))
	assert.True(t, id.Mul(mat).Equal(mat))
	assert.True(t, mat.Mul(id).Equal(mat))
}

func TestMat4IndexedAccess(t *testing.T) {
	mat := NewMat4Identity[float64]()
	mat.Set(1, 2, 7)
	assert.Equal(t, 7.0, mat.At(1, 2))
	assert.Equal(t, 7.0, mat.Data[1*4+2])

	assert.Panics(t, func() { mat.At(4, 0) })
	assert.Panics(t, func() { mat.At(0, -1) })
	assert.Panics(t, func() { mat.Set(0, 4, 0) })
}

func TestMat4Translation(t *testing.T) {
	mat := NewMat4Translation(NewVec3(1.0, -2.0, 3.0))
	p := mat.MulVec3(NewVec3(10.0, 10.0, 10.0))
	assert.True(t, p.Compare(NewVec3(11.0, 8.0, 13.0), 1e-12))
}

func TestMat4Scale(t *testing.T) {
	mat := NewMat4Scale(NewVec3(2.0, 3.0, 4.0))
	p := mat.MulVec3(NewVec3(1.0, 1.0, 1.0))
	assert.True(t, p.Compare(NewVec3(2.0, 3.0, 4.0), 1e-12))
}

func TestMat4Rotations(t *testing.T) {
	// Quarter turn about z carries +x onto +y, matching the quaternion path.
	rz := NewMat4RotationZ[float64](Pi / 2)
	assert.True(t, rz.MulVec3(NewVec3Right[float64]()).Compare(NewVec3Up[float64](), 1e-12))

	rx := NewMat4RotationX[float64](Pi / 2)
	assert.True(t, rx.MulVec3(NewVec3Up[float64]()).Compare(NewVec3Forward[float64](), 1e-12))

	ry := NewMat4RotationY[float64](Pi / 2)
	assert.True(t, ry.MulVec3(NewVec3Forward[float64]()).Compare(NewVec3Right[float64](), 1e-12))

	q := NewQuatFromAxisAngle(NewVec3Up[float64](), 0.7)
	v := NewVec3(3.0, -1.0, 2.0)
	assert.True(t, NewMat4RotationY[float64](0.7).MulVec3(v).Compare(q.RotateVec3(v), 1e-12))
}

func TestMat4MulAssociatesWithVec3(t *testing.T) {
	a := NewMat4Translation(NewVec3(1.0, 0.0, 0.0))
	b := NewMat4RotationZ[float64](Pi / 2)
	v := NewVec3Right[float64]()

	// (a*b)*v must equal a*(b*v) under the column-vector convention.
	left := a.Mul(b).MulVec3(v)
	right := a.MulVec3(b.MulVec3(v))
	assert.True(t, left.Compare(right, 1e-12))
	assert.True(t, left.Compare(NewVec3(1.0, 1.0, 0.0), 1e-12))
}

func TestMat4Transposed(t *testing.T) {
	mat := NewMat4Translation(NewVec3(1.0, 2.0, 3.0))
	tr := mat.Transposed()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, mat.At(row, col), tr.At(col, row))
		}
	}
	assert.True(t, tr.Transposed().Equal(mat))
}

func TestMat4Determinant(t *testing.T) {
	assert.InDelta(t, 1.0, NewMat4Identity[float64]().Determinant(), 1e-12)

	// Rotations and translations preserve volume.
	assert.InDelta(t, 1.0, NewMat4RotationX[float64](1.1).Determinant(), 1e-12)
	assert.InDelta(t, 1.0, NewMat4Translation(NewVec3(5.0, 6.0, 7.0)).Determinant(), 1e-12)

	assert.InDelta(t, 24.0, NewMat4Scale(NewVec3(2.0, 3.0, 4.0)).Determinant(), 1e-12)

	var zero Mat4[float64]
	assert.InDelta(t, 0.0, zero.Determinant(), 1e-12)
}

func TestMat4Inverse(t *testing.T) {
	mat := NewMat4Translation(NewVec3(1.0, -2.0, 3.0)).
		Mul(NewMat4RotationY[float64](0.6)).
		Mul(NewMat4Scale(NewVec3(2.0, 2.0, 2.0)))

	inv, err := mat.Inverse()
	require.NoError(t, err)
	assert.True(t, mat.Mul(inv).Compare(NewMat4Identity[float64](), 1e-9))
	assert.True(t, inv.Mul(mat).Compare(NewMat4Identity[float64](), 1e-9))

	id, err := NewMat4Identity[float64]().Inverse()
	require.NoError(t, err)
	assert.True(t, id.Equal(NewMat4Identity[float64]()))
}

func TestMat4InverseSingular(t *testing.T) {
	var zero Mat4[float64]
	_, err := zero.Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)

	// Scaling an axis to nothing collapses a dimension.
	flat := NewMat4Scale(NewVec3(1.0, 0.0, 1.0))
	_, err = flat.Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0.0, 0.0, -5.0)
	view := NewMat4LookAt(eye, NewVec3Zero[float64](), NewVec3Up[float64]())

	// The eye maps to the view-space origin.
	assert.True(t, view.MulVec3(eye).Compare(NewVec3Zero[float64](), 1e-12))

	// The look target sits straight ahead, on the view-space -z axis.
	target := view.MulVec3(NewVec3Zero[float64]())
	assert.InDelta(t, 0.0, target.X, 1e-12)
	assert.InDelta(t, 0.0, target.Y, 1e-12)
	assert.InDelta(t, -5.0, target.Z, 1e-12)
}

func TestMat4Perspective(t *testing.T) {
	proj := NewMat4Perspective[float64](DegToRad(60.0), 16.0/9.0, 0.1, 100.0)

	// A point on the view axis projects to the centre of the clip volume.
	center := proj.MulVec3(NewVec3(0.0, 0.0, -10.0))
	assert.InDelta(t, 0.0, center.X, 1e-12)
	assert.InDelta(t, 0.0, center.Y, 1e-12)

	// Points further off-axis land further from the centre.
	near := proj.MulVec3(NewVec3(1.0, 0.0, -10.0))
	far := proj.MulVec3(NewVec3(1.0, 0.0, -50.0))
	assert.Greater(t, near.X, far.X)
}

func TestMat4Orthographic(t *testing.T) {
	proj := NewMat4Orthographic[float64](-10.0, 10.0, -5.0, 5.0, 0.1, 100.0)

	p := proj.MulVec3(NewVec3(10.0, 5.0, -1.0))
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 1.0, p.Y, 1e-12)

	center := proj.MulVec3(NewVec3(0.0, 0.0, -1.0))
	assert.InDelta(t, 0.0, center.X, 1e-12)
	assert.InDelta(t, 0.0, center.Y, 1e-12)
}

func TestMat4CompareTolerance(t *testing.T) {
	a := NewMat4Identity[float64]()
	b := a
	b.Data[5] += 0.01
	assert.False(t, a.Equal(b))
	assert.True(t, a.Compare(b, 0.02))
	assert.False(t, a.Compare(b, 0.001))
}
