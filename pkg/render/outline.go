package render

import (
	"math"

	"github.com/taigrr/voxcast/pkg/math3d"
)

// OutlineColor is the draw colour of the selected block's edges. It matches
// the crosshair so the edges stand out against the sky.
const OutlineColor = CrosshairColor

// cubeEdges lists the 12 edges of a unit cube as corner index pairs. Corner
// i sits at (i&1, i>>1&1, i>>2&1).
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// Line draws a line with the current DrawColors using Bresenham's algorithm.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Pixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ToCamera moves a world-space point into cam's view space, where +Z looks
// forward. It inverts the rotation ViewRay directions go through.
func ToCamera(cam *Camera, p math3d.Vec3f) math3d.Vec3f {
	return math3d.Transform(cam.Basis().Transpose(), p.Sub(cam.Position))
}

// ProjectView maps a view-space point onto a width x height screen. It is
// the inverse of ViewRay and reports false for points closer than NearClip.
func (r *Raycaster) ProjectView(v math3d.Vec3f, width, height int) (x, y float64, ok bool) {
	if v.Z < NearClip {
		return 0, 0, false
	}
	x, y = r.screen(v, width, height)
	return x, y, true
}

func (r *Raycaster) screen(v math3d.Vec3f, width, height int) (x, y float64) {
	u := v.X*r.FocalLength/(v.Z*r.ViewWidth) + 0.5
	w := v.Y*r.FocalLength/(v.Z*r.ViewHeight) + 0.5
	return u * float64(width), w * float64(height)
}

// Project maps a world-space point to screen coordinates as seen from cam.
func (r *Raycaster) Project(cam *Camera, p math3d.Vec3f, width, height int) (x, y float64, ok bool) {
	return r.ProjectView(ToCamera(cam, p), width, height)
}

// DrawOutline draws the 12 edges of the unit cell at block. Edges crossing
// the near plane are cut there; edges fully behind the camera are skipped.
func (r *Raycaster) DrawOutline(fb *Framebuffer, cam *Camera, block math3d.Vec3i) {
	var corners [8]math3d.Vec3f
	for i := range corners {
		world := math3d.V3(
			float64(block.X+(i&1)),
			float64(block.Y+(i>>1&1)),
			float64(block.Z+(i>>2&1)),
		)
		corners[i] = ToCamera(cam, world)
	}

	fb.DrawColors = OutlineColor
	for _, e := range cubeEdges {
		a, b, ok := NearPlane.ClipSegment(corners[e[0]], corners[e[1]])
		if !ok {
			continue
		}
		x0, y0 := r.screen(a, fb.Width, fb.Height)
		x1, y1 := r.screen(b, fb.Width, fb.Height)
		fb.Line(pixel(x0), pixel(y0), pixel(x1), pixel(y1))
	}
}

// pixel snaps a screen coordinate to its column or row, clamped to a range
// Line can walk quickly.
func pixel(v float64) int {
	const limit = 1 << 16
	return int(math.Floor(math.Max(-limit, math.Min(limit, v))))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
