package render

import (
	"github.com/taigrr/voxcast/pkg/math3d"
)

// NearClip is the camera-space depth below which outline edges are cut.
const NearClip = 0.05

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3f
	D      float64
}

// NearPlane is the camera-space plane z = NearClip, facing into the view.
var NearPlane = Plane{Normal: math3d.V3(0.0, 0.0, 1.0), D: -NearClip}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := math3d.Len(p.Normal)
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3f) float64 {
	return p.Normal.Dot(point) + p.D
}

// ClipSegment cuts the segment a-b to the part in front of the plane. It
// returns false when the whole segment lies behind it.
func (p Plane) ClipSegment(a, b math3d.Vec3f) (math3d.Vec3f, math3d.Vec3f, bool) {
	da := p.DistanceToPoint(a)
	db := p.DistanceToPoint(b)

	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da >= 0 && db >= 0:
		return a, b, true
	}

	t := da / (da - db)
	cut := a.Add(b.Sub(a).Scale(t))
	if da < 0 {
		return cut, b, true
	}
	return a, cut, true
}
