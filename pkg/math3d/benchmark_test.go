package math3d

import (
	"testing"
)

func BenchmarkRotation(b *testing.B) {
	rot := V3(0.3, 1.2, 0.0)

	for b.Loop() {
		_ = Rotation(rot)
	}
}

func BenchmarkTransform(b *testing.B) {
	m := Rotation(V3(0.3, 1.2, 0.0))
	v := V3(0.25, -0.5, 1.0)

	for b.Loop() {
		_ = Transform(m, v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1.0, 2.0, 3.0)

	for b.Loop() {
		_ = Normalize(v)
	}
}

func BenchmarkVec3Floor(b *testing.B) {
	v := V3(-1.5, 2.25, 31.9)

	for b.Loop() {
		_ = Floor(v)
	}
}
