package math

import (
	"testing"
)

var (
	sinkVec3  Vec3[float32]
	sinkMat4  Mat4[float32]
	sinkQuat  Quat[float32]
	sinkBool  bool
	sinkFloat float32
)

func BenchmarkVec3Cross(b *testing.B) {
	u := NewVec3[float32](1, 2, 3)
	v := NewVec3[float32](-4, 5, -6)
	for i := 0; i < b.N; i++ {
		sinkVec3 = u.Cross(v)
	}
}

func BenchmarkVec3Normalized(b *testing.B) {
	v := NewVec3[float32](1, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkVec3, _ = v.Normalized()
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m := NewMat4Translation(NewVec3[float32](1, 2, 3))
	r := NewMat4RotationY[float32](0.7)
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Mul(r)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := NewMat4Perspective[float32](1.0, 16.0/9.0, 0.1, 100.0)
	v := NewVec3[float32](1, 2, -10)
	for i := 0; i < b.N; i++ {
		sinkVec3 = m.MulVec3(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := NewMat4Translation(NewVec3[float32](1, 2, 3)).Mul(NewMat4RotationY[float32](0.7))
	for i := 0; i < b.N; i++ {
		sinkMat4, _ = m.Inverse()
	}
}

func BenchmarkQuatSlerp(b *testing.B) {
	p := NewQuatIdentity[float32]()
	q := NewQuatFromAxisAngle(NewVec3Up[float32](), 1.2)
	for i := 0; i < b.N; i++ {
		sinkQuat = p.Slerp(q, 0.35)
	}
}

func BenchmarkFrustumIntersectsAABB(b *testing.B) {
	proj := NewMat4Perspective[float32](1.0, 16.0/9.0, 0.1, 100.0)
	view := NewMat4LookAt(NewVec3[float32](0, 0, 5), NewVec3Zero[float32](), NewVec3Up[float32]())
	f := NewFrustum(proj.Mul(view))
	box := NewAABB(NewVec3[float32](-1, -1, -1), NewVec3One[float32]())
	for i := 0; i < b.N; i++ {
		sinkBool = f.IntersectsAABB(box)
	}
}

func BenchmarkAABBIntersectsRay(b *testing.B) {
	box := NewAABB(NewVec3Zero[float32](), NewVec3One[float32]())
	ray, _ := NewRay(NewVec3[float32](0.5, 0.5, -5), NewVec3Forward[float32]())
	for i := 0; i < b.N; i++ {
		sinkFloat, _, sinkBool = box.IntersectsRay(ray)
	}
}
