// Package voxel holds the wrap-around voxel world.
package voxel

import (
	"errors"
	"fmt"

	"github.com/taigrr/voxcast/pkg/math3d"
)

// DefaultSize is the side length of the default world.
const DefaultSize = 32

// ErrSizeNotPowerOfTwo is returned for grid sizes that cannot be wrapped with a mask.
var ErrSizeNotPowerOfTwo = errors.New("grid size must be a power of two")

// Material is the occupancy code stored per cell.
type Material uint8

const (
	Empty Material = iota
	Solid
)

// Grid is a cubic toroidal voxel grid. Coordinates outside [0, size) wrap
// around, so every lookup is valid.
type Grid struct {
	size  int
	mask  uint
	cells []Material // x + y*size + z*size*size
}

// NewGrid allocates an empty grid with the given side length.
func NewGrid(size int) (*Grid, error) {
	if !IsPowerOfTwo(size) {
		return nil, fmt.Errorf("new grid %d: %w", size, ErrSizeNotPowerOfTwo)
	}
	return &Grid{
		size:  size,
		mask:  uint(size - 1),
		cells: make([]Material, size*size*size),
	}, nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Wrap maps c into the grid. Negative coordinates wrap through their
// two's complement bit pattern.
func (g *Grid) Wrap(c math3d.Vec3i) math3d.Vec3u {
	return math3d.Vec3u{
		X: uint(c.X) & g.mask,
		Y: uint(c.Y) & g.mask,
		Z: uint(c.Z) & g.mask,
	}
}

func (g *Grid) index(c math3d.Vec3i) uint {
	w := g.Wrap(c)
	n := uint(g.size)
	return w.X + w.Y*n + w.Z*n*n
}

// At returns the material at c.
func (g *Grid) At(c math3d.Vec3i) Material {
	return g.cells[g.index(c)]
}

// Set stores m at c.
func (g *Grid) Set(c math3d.Vec3i, m Material) {
	g.cells[g.index(c)] = m
}

// Solid reports whether the cell at c is occupied.
func (g *Grid) Solid(c math3d.Vec3i) bool {
	return g.At(c) != Empty
}

// Fill sets every cell to m.
func (g *Grid) Fill(m Material) {
	for i := range g.cells {
		g.cells[i] = m
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, m := range g.cells {
		if m != Empty {
			n++
		}
	}
	return n
}

// Generate fills the grid using gen.
func (g *Grid) Generate(gen Generator) {
	gen.Generate(g)
}
