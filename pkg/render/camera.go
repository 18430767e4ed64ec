package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/taigrr/voxcast/pkg/input"
	"github.com/taigrr/voxcast/pkg/math3d"
)

const (
	// RotationSpeed is the pitch/yaw change per frame, in radians.
	RotationSpeed = 0.03
	// MaxPitch keeps the view away from straight up and down.
	MaxPitch = math.Pi/2 - 0.1
	// MoveSpeed is the distance travelled per frame.
	MoveSpeed = 0.05
)

var (
	defaultForward = math3d.V3(0.0, 0.0, 1.0)
	defaultRight   = math3d.V3(1.0, 0.0, 0.0)
)

// Camera is a first-person viewpoint. World Y grows downward, matching
// screen rows, so a positive pitch looks toward smaller Y.
type Camera struct {
	// Position in world space
	Position math3d.Vec3f

	// rotation.X is pitch and rotation.Y is yaw; roll is unused.
	rotation math3d.Vec3f

	// Cached basis, recomputed only when the rotation changes
	basis   mgl64.Mat3
	forward math3d.Vec3f
	right   math3d.Vec3f
}

// NewCamera creates a camera at pos looking down +Z.
func NewCamera(pos math3d.Vec3f) *Camera {
	return &Camera{
		Position: pos,
		basis:    mgl64.Ident3(),
		forward:  defaultForward,
		right:    defaultRight,
	}
}

// Rotation returns (pitch, yaw, 0).
func (c *Camera) Rotation() math3d.Vec3f {
	return c.rotation
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math3d.Vec3f {
	return c.forward
}

// Right returns the unit strafe direction.
func (c *Camera) Right() math3d.Vec3f {
	return c.right
}

// Basis returns the camera-to-world rotation.
func (c *Camera) Basis() mgl64.Mat3 {
	return c.basis
}

// SetRotation sets pitch and yaw (radians). Pitch is clamped to MaxPitch.
func (c *Camera) SetRotation(pitch, yaw float64) {
	c.rotation = math3d.V3(clamp(pitch, -MaxPitch, MaxPitch), yaw, 0)
	c.basis = math3d.Rotation(c.rotation)
	c.forward = math3d.Transform(c.basis, defaultForward)
	c.right = math3d.Transform(c.basis, defaultRight)
}

// Update applies one frame of input: pad1 turns the view, pad2 walks.
func (c *Camera) Update(pad1, pad2 input.Buttons) {
	c.Rotate(pad1)
	c.Move(pad2)
}

// Rotate turns the camera by RotationSpeed per held direction. Up/down
// change pitch and left/right change yaw. It reports whether anything
// changed; with no direction held the camera is left untouched.
func (c *Camera) Rotate(b input.Buttons) bool {
	yaw, pitch := b.Axes()
	if yaw == 0 && pitch == 0 {
		return false
	}
	c.SetRotation(
		c.rotation.X+pitch*RotationSpeed,
		c.rotation.Y+yaw*RotationSpeed,
	)
	return true
}

// Move walks the camera along its own forward/right vectors. Up/down walk
// forward/back and left/right strafe. The intent is normalized so diagonal
// movement is no faster than straight movement.
func (c *Camera) Move(b input.Buttons) bool {
	strafe, walk := b.Axes()
	if strafe == 0 && walk == 0 {
		return false
	}

	mag := math.Sqrt(strafe*strafe + walk*walk)
	strafe = strafe / mag * MoveSpeed
	walk = walk / mag * MoveSpeed

	c.Position = c.Position.
		Add(c.forward.Scale(walk)).
		Add(c.right.Scale(strafe))
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
