// Package math3d provides the small vector toolkit used by the voxel renderer.
package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Number is any scalar a Vec3 can hold.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Vec3 is a three component value of a single scalar type.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Vec3f holds positions, directions and rotations.
type Vec3f = Vec3[float64]

// Vec3i holds signed grid coordinates.
type Vec3i = Vec3[int]

// Vec3u holds wrapped grid indices.
type Vec3u = Vec3[uint]

// V3 creates a new Vec3.
func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat returns a vector with every component set to s.
func Splat[T Number](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Min returns the component-wise minimum of a and b.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Axis returns component i (0 = X, 1 = Y, 2 = Z).
func (a Vec3[T]) Axis(i int) T {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// WithAxis returns a copy of a with component i replaced by v.
func (a Vec3[T]) WithAxis(i int, v T) Vec3[T] {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		a.Z = v
	}
	return a
}

// Len returns the length of v.
func Len(v Vec3f) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the same direction.
func Normalize(v Vec3f) Vec3f {
	l := Len(v)
	if l == 0 {
		return Vec3f{}
	}
	return Vec3f{v.X / l, v.Y / l, v.Z / l}
}

// Abs returns the component-wise absolute value.
func Abs(v Vec3f) Vec3f {
	return Vec3f{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Floor returns the grid cell containing v.
func Floor(v Vec3f) Vec3i {
	return Vec3i{
		int(math.Floor(v.X)),
		int(math.Floor(v.Y)),
		int(math.Floor(v.Z)),
	}
}

// Sign returns the component-wise sign of v as -1, 0 or 1.
func Sign(v Vec3f) Vec3i {
	return Vec3i{signum(v.X), signum(v.Y), signum(v.Z)}
}

func signum(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

// Rotation builds the pitch/yaw rotation for rot, where rot.X is the pitch
// and rot.Y the yaw. Roll (rot.Z) is ignored. Yaw mixes X and Z first, then
// pitch mixes Y and Z of the result.
func Rotation(rot Vec3f) mgl64.Mat3 {
	return mgl64.Rotate3DX(rot.X).Mul3(mgl64.Rotate3DY(rot.Y))
}

// Transform applies m to v.
func Transform(m mgl64.Mat3, v Vec3f) Vec3f {
	r := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3f{r[0], r[1], r[2]}
}

// RotateBy rotates v by the pitch/yaw pair stored in rot.
func RotateBy(v, rot Vec3f) Vec3f {
	return Transform(Rotation(rot), v)
}
