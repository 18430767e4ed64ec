// Package render turns the voxel world into a packed 4-colour framebuffer.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
)

// ErrInvalidSize is returned for framebuffer dimensions that cannot be packed.
var ErrInvalidSize = errors.New("framebuffer width must be a positive multiple of 4 and height positive")

// Palette maps the four 2-bit pixel values to colours.
type Palette [4]color.RGBA

// DefaultPalette runs from dark to light.
var DefaultPalette = Palette{
	RGB(0x07, 0x18, 0x21),
	RGB(0x30, 0x68, 0x50),
	RGB(0x86, 0xc0, 0x6c),
	RGB(0xe0, 0xf8, 0xcf),
}

// Framebuffer is a packed 2-bit-per-pixel surface, four pixels per byte with
// the leftmost pixel in the low bits. Writes go through DrawColors the way a
// fantasy console's draw register does: 0 is transparent and 1-4 select
// palette entries 0-3.
type Framebuffer struct {
	Width      int
	Height     int
	Pixels     []byte
	DrawColors uint16
	Palette    Palette
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || width%4 != 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Framebuffer{
		Width:      width,
		Height:     height,
		Pixels:     make([]byte, width*height/4),
		DrawColors: 1,
		Palette:    DefaultPalette,
	}, nil
}

// Clear fills the framebuffer with palette entry index (0-3).
func (fb *Framebuffer) Clear(index uint8) {
	c := index & 0b11
	packed := c | c<<2 | c<<4 | c<<6
	for i := range fb.Pixels {
		fb.Pixels[i] = packed
	}
}

// Pixel writes (x, y) using the current DrawColors. Out of bounds writes and
// a transparent draw colour are ignored.
func (fb *Framebuffer) Pixel(x, y int) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	drawColor := uint8(fb.DrawColors & 0xf)
	if drawColor == 0 {
		return
	}
	c := (drawColor - 1) & 0b11

	idx := (y*fb.Width + x) >> 2
	shift := uint(x&0b11) << 1
	mask := byte(0b11) << shift
	fb.Pixels[idx] = c<<shift | fb.Pixels[idx]&^mask
}

// SetPixel sets DrawColors to drawColor and writes (x, y).
func (fb *Framebuffer) SetPixel(x, y int, drawColor uint16) {
	fb.DrawColors = drawColor
	fb.Pixel(x, y)
}

// GetPixel returns the palette entry (0-3) at (x, y), or 0 if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) uint8 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	idx := (y*fb.Width + x) >> 2
	shift := uint(x&0b11) << 1
	return (fb.Pixels[idx] >> shift) & 0b11
}

// RGBA returns the colour at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) RGBA(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Palette[fb.GetPixel(x, y)]
}

// DrawRect draws a filled rectangle with the current DrawColors.
func (fb *Framebuffer) DrawRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.Pixel(px, py)
		}
	}
}

// Checksum hashes the packed pixels. Two identical frames share a checksum.
func (fb *Framebuffer) Checksum() uint64 {
	return xxhash.Sum64(fb.Pixels)
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.RGBA(x, y))
		}
	}
	return img
}

// Scaled returns the framebuffer enlarged by an integer factor with
// nearest-neighbour sampling.
func (fb *Framebuffer) Scaled(scale int) *image.RGBA {
	src := fb.ToImage()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the framebuffer as a PNG file, enlarged by scale.
func (fb *Framebuffer) SavePNG(path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.Scaled(scale))
}

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
