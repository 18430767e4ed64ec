package render

import (
	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/raycast"
)

// Default view settings.
const (
	DefaultScreenSize  = 160
	DefaultRayRange    = 32.0
	DefaultShadowRange = 16.0
	DefaultFocalLength = 1.0
	DefaultViewHeight  = 2.0
)

// CrosshairColor is the draw colour of the centre marker.
const CrosshairColor uint16 = 1

// Raycaster renders a Volume through a Camera into a Framebuffer, one ray
// per pixel.
type Raycaster struct {
	RayRange    float64 // range for odd (x+y) pixels
	ShadowRange float64 // range for even (x+y) pixels
	Texture     *Bitmap
	Crosshair   bool

	// Virtual screen plane in camera space
	ViewWidth   float64
	ViewHeight  float64
	FocalLength float64

	Stats RenderStats
}

// RenderStats counts what the last frame did.
type RenderStats struct {
	Rays int
	Hits int
}

// NewRaycaster creates a raycaster with the default view for a square screen.
func NewRaycaster() *Raycaster {
	return &Raycaster{
		RayRange:    DefaultRayRange,
		ShadowRange: DefaultShadowRange,
		Texture:     &Smiley,
		Crosshair:   true,
		ViewWidth:   DefaultViewHeight,
		ViewHeight:  DefaultViewHeight,
		FocalLength: DefaultFocalLength,
	}
}

// ViewRay returns the camera-space direction through pixel (x, y) of a
// width x height screen. Row 0 is the top of the screen.
func (r *Raycaster) ViewRay(x, y, width, height int) math3d.Vec3f {
	u := float64(x) / float64(width)
	v := float64(y) / float64(height)
	return math3d.V3(
		(u-0.5)*r.ViewWidth,
		(v-0.5)*r.ViewHeight,
		r.FocalLength,
	)
}

// Range returns the traversal range for pixel (x, y). Alternating ranges on
// a checkerboard fade distant blocks into the sky.
func (r *Raycaster) Range(x, y int) float64 {
	if (x+y)&1 == 0 {
		return r.ShadowRange
	}
	return r.RayRange
}

// Render draws one frame of vol as seen from cam.
func (r *Raycaster) Render(fb *Framebuffer, cam *Camera, vol raycast.Volume) {
	r.Stats = RenderStats{}
	basis := cam.Basis()
	origin := cam.Position

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			dir := math3d.Transform(basis, r.ViewRay(x, y, fb.Width, fb.Height))
			hit, ok := raycast.Cast(vol, origin, dir, r.Range(x, y))

			r.Stats.Rays++
			if ok {
				r.Stats.Hits++
			}
			fb.SetPixel(x, y, Shade(r.Texture, origin, dir, hit, ok))
		}
	}

	if r.Crosshair {
		fb.DrawColors = CrosshairColor
		fb.DrawRect(fb.Width/2-1, fb.Height/2-1, 2, 2)
	}
}
