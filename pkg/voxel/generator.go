package voxel

import (
	"fmt"

	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/rng"
)

// Generator populates a freshly allocated grid. Implementations must be
// deterministic given their own fields.
type Generator interface {
	Generate(g *Grid)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(g *Grid)

// Generate calls f(g).
func (f GeneratorFunc) Generate(g *Grid) {
	f(g)
}

// DefaultThreshold leaves roughly nine percent of cells solid.
const DefaultThreshold = 90

// Scatter marks a cell solid when a draw from [0, 100) exceeds Threshold,
// giving sparse floating debris.
type Scatter struct {
	Seed      uint32
	Threshold uint32
}

// Generate implements Generator. Cells are visited in storage order.
func (s Scatter) Generate(g *Grid) {
	r := rng.New(s.Seed)
	for i := range g.cells {
		if r.Range(100) > s.Threshold {
			g.cells[i] = Solid
		} else {
			g.cells[i] = Empty
		}
	}
}

// Terrace fills every cell whose Y is at or below the vertical midpoint
// (Y grows downward) and leaves the upper half open as sky.
type Terrace struct{}

// Generate implements Generator.
func (Terrace) Generate(g *Grid) {
	half := g.size / 2
	for z := range g.size {
		for y := range g.size {
			m := Empty
			if y >= half {
				m = Solid
			}
			for x := range g.size {
				g.Set(math3d.V3(x, y, z), m)
			}
		}
	}
}

// Generator names accepted by NewGenerator.
const (
	GeneratorScatter = "scatter"
	GeneratorTerrace = "terrace"
)

// NewGenerator returns the named strategy.
func NewGenerator(name string, seed, threshold uint32) (Generator, error) {
	switch name {
	case GeneratorScatter, "":
		return Scatter{Seed: seed, Threshold: threshold}, nil
	case GeneratorTerrace:
		return Terrace{}, nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}
