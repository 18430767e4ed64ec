// Package models extracts triangle meshes from the voxel world and moves them
// in and out of glTF.
package models

import (
	"image/color"

	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/render"
	"github.com/taigrr/voxcast/pkg/voxel"
)

// Mesh represents a triangle mesh with per-vertex colour.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on build/load)
	BoundsMin math3d.Vec3f
	BoundsMax math3d.Vec3f
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3f
	Normal   math3d.Vec3f
	Color    color.RGBA
}

// Face is a counter-clockwise triangle.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// FaceColors picks the colour of each block side by axis, the same shades
// the raycaster uses for untextured X, Y and Z faces.
var FaceColors = [3]color.RGBA{
	render.DefaultPalette[0],
	render.DefaultPalette[1],
	render.DefaultPalette[2],
}

// FromGrid builds the surface of every solid block as quads, one per side
// that touches an empty cell. The grid is treated as a finite box here:
// sides on the outer boundary are always emitted.
func FromGrid(name string, g *voxel.Grid) *Mesh {
	m := NewMesh(name)
	n := g.Size()

	for z := range n {
		for y := range n {
			for x := range n {
				c := math3d.V3(x, y, z)
				if !g.Solid(c) {
					continue
				}
				for axis := range 3 {
					for _, side := range [2]int{-1, 1} {
						adj := c.WithAxis(axis, c.Axis(axis)+side)
						if inside(adj, n) && g.Solid(adj) {
							continue
						}
						m.addQuad(c, axis, side)
					}
				}
			}
		}
	}

	m.CalculateBounds()
	return m
}

func inside(c math3d.Vec3i, n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n && c.Z >= 0 && c.Z < n
}

// addQuad emits the side of cell c facing side (±1) along axis.
func (m *Mesh) addQuad(c math3d.Vec3i, axis, side int) {
	u := (axis + 1) % 3
	v := (axis + 2) % 3

	base := math3d.V3(float64(c.X), float64(c.Y), float64(c.Z))
	if side > 0 {
		base = base.WithAxis(axis, base.Axis(axis)+1)
	}
	eu := math3d.Vec3f{}.WithAxis(u, 1)
	ev := math3d.Vec3f{}.WithAxis(v, 1)
	normal := math3d.Vec3f{}.WithAxis(axis, float64(side))
	col := FaceColors[axis]

	first := len(m.Vertices)
	for _, p := range [4]math3d.Vec3f{base, base.Add(eu), base.Add(eu).Add(ev), base.Add(ev)} {
		m.Vertices = append(m.Vertices, MeshVertex{Position: p, Normal: normal, Color: col})
	}

	// eu × ev points along +axis, so the winding flips for the negative side.
	if side > 0 {
		m.Faces = append(m.Faces,
			Face{V: [3]int{first, first + 1, first + 2}},
			Face{V: [3]int{first, first + 2, first + 3}},
		)
	} else {
		m.Faces = append(m.Faces,
			Face{V: [3]int{first, first + 2, first + 1}},
			Face{V: [3]int{first, first + 3, first + 2}},
		)
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3f {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3f {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceNormal returns the unit normal implied by the winding of face i.
func (m *Mesh) FaceNormal(i int) math3d.Vec3f {
	f := m.Faces[i]
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return math3d.Normalize(v1.Sub(v0).Cross(v2.Sub(v0)))
}

// CalculateNormals assigns each face's normal to its vertices. This is flat
// shading; shared vertices keep the normal of the last face that uses them.
func (m *Mesh) CalculateNormals() {
	for i, f := range m.Faces {
		normal := m.FaceNormal(i)
		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}
