package voxel

import (
	"testing"

	"github.com/taigrr/voxcast/pkg/math3d"
)

func TestScatterDeterministic(t *testing.T) {
	a := newTestGrid(t)
	b := newTestGrid(t)
	gen := Scatter{Seed: 777, Threshold: DefaultThreshold}
	a.Generate(gen)
	b.Generate(gen)

	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
}

func TestScatterDensity(t *testing.T) {
	g := newTestGrid(t)
	g.Generate(Scatter{Seed: 777, Threshold: DefaultThreshold})

	// Draws 91..99 out of 0..99 are solid: about 9%.
	ratio := float64(g.Count()) / float64(g.Len())
	if ratio < 0.06 || ratio > 0.12 {
		t.Errorf("solid ratio = %.3f, want about 0.09", ratio)
	}
}

func TestScatterOverwritesPreviousContents(t *testing.T) {
	g := newTestGrid(t)
	g.Fill(Solid)
	g.Generate(Scatter{Seed: 1, Threshold: 100})
	if g.Count() != 0 {
		t.Errorf("threshold 100 should leave the grid empty, got %d solid", g.Count())
	}
}

func TestTerrace(t *testing.T) {
	g := newTestGrid(t)
	g.Generate(Terrace{})

	half := g.Size() / 2
	if g.Count() != g.Len()/2 {
		t.Errorf("Count = %d, want %d", g.Count(), g.Len()/2)
	}
	if g.Solid(math3d.V3(3, half-1, 9)) {
		t.Error("cell above the midpoint should be sky")
	}
	if !g.Solid(math3d.V3(3, half, 9)) {
		t.Error("cell at the midpoint should be ground")
	}
}

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name    string
		want    Generator
		wantErr bool
	}{
		{"scatter", Scatter{Seed: 5, Threshold: 80}, false},
		{"", Scatter{Seed: 5, Threshold: 80}, false},
		{"terrace", Terrace{}, false},
		{"perlin", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewGenerator(tc.name, 5, 80)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestGeneratorFunc(t *testing.T) {
	g := newTestGrid(t)
	g.Generate(GeneratorFunc(func(g *Grid) {
		g.Set(math3d.V3(1, 2, 3), Solid)
	}))
	if g.Count() != 1 || !g.Solid(math3d.V3(1, 2, 3)) {
		t.Error("GeneratorFunc was not applied")
	}
}
