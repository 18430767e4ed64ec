package game

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/render"
)

// Demo flies the camera forward along +Z while its heading sways gently.
// The heading eases toward the sway target through a damped spring so the
// motion stays smooth when the target reverses.
type Demo struct {
	Start math3d.Vec3f
	Sway  float64 // peak yaw, radians
	Speed float64 // units per second along +Z

	spring   harmonica.Spring
	yaw      float64
	velocity float64
}

// NewDemo creates a flythrough starting at start.
func NewDemo(start math3d.Vec3f) *Demo {
	return &Demo{
		Start:  start,
		Sway:   0.25,
		Speed:  1,
		spring: harmonica.NewSpring(harmonica.FPS(int(math.Round(1/FrameTime))), 4.0, 0.8),
	}
}

// Step positions cam for simulated time t.
func (d *Demo) Step(cam *render.Camera, t float64) {
	target := math.Sin(t) * d.Sway
	d.yaw, d.velocity = d.spring.Update(d.yaw, d.velocity, target)

	cam.Position = d.Start.Add(math3d.V3(0, 0, t*d.Speed))
	cam.SetRotation(0, d.yaw)
}

// Yaw returns the current eased heading.
func (d *Demo) Yaw() float64 {
	return d.yaw
}
