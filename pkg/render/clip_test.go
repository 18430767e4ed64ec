package render

import (
	"math"
	"testing"

	"github.com/taigrr/voxcast/pkg/math3d"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.V3(0.0, 0.0, 1.0), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3f
		expected float64
	}{
		{"origin", math3d.V3(0.0, 0.0, 0.0), 0},
		{"in front", math3d.V3(0.0, 0.0, 5.0), 5},
		{"behind", math3d.V3(0.0, 0.0, -3.0), -3},
		{"offset XY", math3d.V3(10.0, -5.0, 2.0), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0.0, 3.0, 4.0), D: 10}
	plane.Normalize()

	if l := math3d.Len(plane.Normal); math.Abs(l-1.0) > 1e-9 {
		t.Errorf("normalized normal length = %v, want 1.0", l)
	}
	if math.Abs(plane.Normal.Y-0.6) > 1e-9 || math.Abs(plane.Normal.Z-0.8) > 1e-9 {
		t.Errorf("normal = %v, want (0, 0.6, 0.8)", plane.Normal)
	}
	if math.Abs(plane.D-2.0) > 1e-9 {
		t.Errorf("D = %v, want 2.0", plane.D)
	}

	zero := Plane{D: 3}
	zero.Normalize()
	if zero.D != 3 {
		t.Errorf("degenerate plane changed: %+v", zero)
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name   string
		a, b   math3d.Vec3f
		wantA  math3d.Vec3f
		wantB  math3d.Vec3f
		wantOK bool
	}{
		{
			name:   "in front",
			a:      math3d.V3(0.0, 0.0, 1.0),
			b:      math3d.V3(1.0, 0.0, 2.0),
			wantA:  math3d.V3(0.0, 0.0, 1.0),
			wantB:  math3d.V3(1.0, 0.0, 2.0),
			wantOK: true,
		},
		{
			name:   "behind",
			a:      math3d.V3(0.0, 0.0, -1.0),
			b:      math3d.V3(1.0, 0.0, 0.0),
			wantOK: false,
		},
		{
			name:   "start behind",
			a:      math3d.V3(0.0, 0.0, -1.0),
			b:      math3d.V3(0.0, 2.0, 1.0),
			wantA:  math3d.V3(0.0, 1.0+NearClip, NearClip),
			wantB:  math3d.V3(0.0, 2.0, 1.0),
			wantOK: true,
		},
		{
			name:   "end behind",
			a:      math3d.V3(2.0, 0.0, 1.0),
			b:      math3d.V3(0.0, 0.0, -1.0),
			wantA:  math3d.V3(2.0, 0.0, 1.0),
			wantB:  math3d.V3(1.0+NearClip, 0.0, NearClip),
			wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b, ok := NearPlane.ClipSegment(tc.a, tc.b)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if math3d.Len(a.Sub(tc.wantA)) > 1e-9 || math3d.Len(b.Sub(tc.wantB)) > 1e-9 {
				t.Errorf("ClipSegment = %v, %v, want %v, %v", a, b, tc.wantA, tc.wantB)
			}
		})
	}
}
