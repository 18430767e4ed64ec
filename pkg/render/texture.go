package render

import (
	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/raycast"
)

// TextureSize is the side length of a Bitmap. It is a power of two so
// texture coordinates wrap with a mask.
const TextureSize = 8

// SkyColor is the draw colour for rays that hit nothing.
const SkyColor uint16 = 4

// Bitmap is a monochrome 8x8 texture, one byte per row with bit u set for
// column u.
type Bitmap [TextureSize]uint8

// Smiley is the default block face.
var Smiley = Bitmap{
	0b11000011,
	0b10000001,
	0b00100100,
	0b00100100,
	0b00000000,
	0b00100100,
	0b10011001,
	0b11000011,
}

// Checker alternates every texel.
var Checker = Bitmap{
	0b01010101,
	0b10101010,
	0b01010101,
	0b10101010,
	0b01010101,
	0b10101010,
	0b01010101,
	0b10101010,
}

// Bit reports whether texel (u, v) is set. Coordinates wrap.
func (b *Bitmap) Bit(u, v int) bool {
	return b[v&(TextureSize-1)]&(1<<uint(u&(TextureSize-1))) != 0
}

// TexCoords picks the texel for a hit point on the given face. Horizontal
// faces map (x, z); vertical faces map (x+z, y) so side walls are not
// stretched along whichever axis they face. p must be non-negative.
func TexCoords(p math3d.Vec3f, face raycast.Face) (u, v int) {
	const mask = TextureSize - 1
	if face == raycast.FaceY {
		u = int(p.X*TextureSize) & mask
		v = int(p.Z*TextureSize) & mask
		return u, v
	}
	u = int((p.X+p.Z)*TextureSize) & mask
	v = int(p.Y*TextureSize) & mask
	return u, v
}

// Shade maps a cast result to a draw colour: face index plus one, plus one
// more where the texture bit is set. Misses are SkyColor.
func Shade(tex *Bitmap, origin, dir math3d.Vec3f, hit raycast.Hit, ok bool) uint16 {
	if !ok {
		return SkyColor
	}
	// Absolute values keep the masked texture coordinates valid at negative
	// world positions.
	p := math3d.Abs(hit.Point(origin, dir))
	u, v := TexCoords(p, hit.Face)

	c := uint16(hit.Face) + 1
	if tex.Bit(u, v) {
		c++
	}
	return c
}
