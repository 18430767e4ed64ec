// Package raycast walks rays through a voxel grid one cell at a time.
package raycast

import (
	"math"

	"github.com/taigrr/voxcast/pkg/math3d"
)

// Bias is added to every origin component so a ray never starts exactly on
// a cell boundary, where the boundary test has no well defined side.
const Bias = 1e-4

// Volume is anything that can answer occupancy queries for grid cells.
type Volume interface {
	Solid(c math3d.Vec3i) bool
}

// Face names the axis whose cell boundary a ray crossed to enter a cell.
type Face uint8

const (
	FaceX Face = iota
	FaceY
	FaceZ
)

func (f Face) String() string {
	switch f {
	case FaceX:
		return "x"
	case FaceY:
		return "y"
	case FaceZ:
		return "z"
	}
	return "unknown"
}

// Axis returns the face as a vector component index.
func (f Face) Axis() int {
	return int(f)
}

// Hit describes the first occupied cell found by Cast.
type Hit struct {
	Distance float64      // ray parameter at which the cell was entered
	Face     Face         // boundary crossed on entry
	Block    math3d.Vec3i // unwrapped cell coordinate
}

// Point returns the world position where the ray entered the hit cell,
// using the same biased origin Cast walked from.
func (h Hit) Point(origin, dir math3d.Vec3f) math3d.Vec3f {
	return origin.Add(math3d.Splat(Bias)).Add(dir.Scale(h.Distance))
}

// Cast walks from origin along dir and returns the first solid cell it
// enters. The walk only steps while the distance reached so far is below
// maxRange, so the cell entered by the last step may lie up to one cell
// beyond it and still counts as a hit. Distances are in units of dir, so a
// unit direction measures world distance. A ray starting inside a solid cell
// hits at distance 0 on FaceX. A zero component of dir makes that axis
// unreachable, which is what keeps it out of the walk.
//
// maxRange must be finite.
func Cast(vol Volume, origin, dir math3d.Vec3f, maxRange float64) (Hit, bool) {
	start := origin.Add(math3d.Splat(Bias))

	step := math3d.Sign(dir)
	delta := math3d.V3(
		math.Abs(1/dir.X),
		math.Abs(1/dir.Y),
		math.Abs(1/dir.Z),
	)
	next := math3d.V3(
		boundary(start.X, dir.X, delta.X),
		boundary(start.Y, dir.Y, delta.Y),
		boundary(start.Z, dir.Z, delta.Z),
	)

	block := math3d.Floor(start)
	face := FaceX
	dist := 0.0

	solid := vol.Solid(block)
	for !solid && dist < maxRange {
		// Ties resolve X first, then Y.
		switch {
		case next.X <= next.Y && next.X <= next.Z:
			dist = next.X
			next.X += delta.X
			block.X += step.X
			face = FaceX
		case next.Y <= next.Z:
			dist = next.Y
			next.Y += delta.Y
			block.Y += step.Y
			face = FaceY
		default:
			dist = next.Z
			next.Z += delta.Z
			block.Z += step.Z
			face = FaceZ
		}
		solid = vol.Solid(block)
	}

	if !solid {
		return Hit{}, false
	}
	return Hit{Distance: dist, Face: face, Block: block}, true
}

// boundary returns the ray distance from p to the first cell boundary along
// one axis.
func boundary(p, d, delta float64) float64 {
	if d > 0 {
		return (math.Ceil(p) - p) * delta
	}
	return (p - math.Floor(p)) * delta
}
