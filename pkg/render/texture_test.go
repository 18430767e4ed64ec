package render

import (
	"testing"

	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/raycast"
)

func TestBitmapBit(t *testing.T) {
	tests := []struct {
		u, v int
		want bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 0, false},
		{7, 0, true},
		{2, 2, true},
		{0, 4, false},
		{8, 8, true},   // wraps to (0, 0)
		{-6, 0, false}, // wraps to (2, 0)
	}

	for _, tc := range tests {
		if got := Smiley.Bit(tc.u, tc.v); got != tc.want {
			t.Errorf("Smiley.Bit(%d, %d) = %v, want %v", tc.u, tc.v, got, tc.want)
		}
	}
}

func TestTexCoords(t *testing.T) {
	p := math3d.V3(1.25, 2.5, 3.875)

	u, v := TexCoords(p, raycast.FaceY)
	if u != 2 || v != 7 {
		t.Errorf("FaceY uv = (%d, %d), want (2, 7)", u, v)
	}

	// (x+z)*8 = 41 -> 1, y*8 = 20 -> 4
	for _, f := range []raycast.Face{raycast.FaceX, raycast.FaceZ} {
		u, v := TexCoords(p, f)
		if u != 1 || v != 4 {
			t.Errorf("%v uv = (%d, %d), want (1, 4)", f, u, v)
		}
	}
}

func TestShade(t *testing.T) {
	var blank, full Bitmap
	for i := range full {
		full[i] = 0xff
	}
	origin := math3d.V3(0.5, 0.5, 0.5)
	dir := math3d.V3(0.0, 0.0, 1.0)

	tests := []struct {
		name string
		tex  *Bitmap
		face raycast.Face
		want uint16
	}{
		{"x plain", &blank, raycast.FaceX, 1},
		{"x textured", &full, raycast.FaceX, 2},
		{"y plain", &blank, raycast.FaceY, 2},
		{"y textured", &full, raycast.FaceY, 3},
		{"z plain", &blank, raycast.FaceZ, 3},
		{"z textured", &full, raycast.FaceZ, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit := raycast.Hit{Distance: 2.5, Face: tc.face}
			if got := Shade(tc.tex, origin, dir, hit, true); got != tc.want {
				t.Errorf("Shade = %d, want %d", got, tc.want)
			}
		})
	}

	if got := Shade(&full, origin, dir, raycast.Hit{}, false); got != SkyColor {
		t.Errorf("miss = %d, want SkyColor", got)
	}
}

func TestShadeNegativeCoordinates(t *testing.T) {
	var full Bitmap
	for i := range full {
		full[i] = 0xff
	}
	hit := raycast.Hit{Distance: 3, Face: raycast.FaceY}
	got := Shade(&full, math3d.V3(-10.3, -4.2, -7.9), math3d.V3(0.0, -1.0, 0.0), hit, true)
	if got != 3 {
		t.Errorf("Shade = %d, want 3", got)
	}
}
