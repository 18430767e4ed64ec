package models

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/voxcast/pkg/math3d"
)

// ErrEmptyMesh is returned when exporting a mesh with no triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Generator is written into the asset header of exported files.
const Generator = "voxcast"

// SaveGLB writes m as a single-primitive binary glTF file.
func SaveGLB(m *Mesh, path string) error {
	doc, err := Document(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

// Document converts m into an in-memory glTF document.
func Document(m *Mesh) (*gltf.Document, error) {
	if len(m.Faces) == 0 {
		return nil, ErrEmptyMesh
	}

	positions := make([][3]float32, len(m.Vertices))
	normals := make([][3]float32, len(m.Vertices))
	colors := make([][4]uint8, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)}
		normals[i] = [3]float32{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)}
		colors[i] = [4]uint8{v.Color.R, v.Color.G, v.Color.B, v.Color.A}
	}

	indices := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, uint32(f.V[0]), uint32(f.V[1]), uint32(f.V[2]))
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			gltf.COLOR_0:  modeler.WriteColor(doc, colors),
		},
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
	}

	doc.Materials = []*gltf.Material{{
		Name:      "voxel",
		AlphaMode: gltf.AlphaOpaque,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: m.Name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// CalculateNormals fills in flat normals for primitives that carry none.
	CalculateNormals bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{CalculateNormals: true}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	missingNormals := false

	for _, m := range doc.Meshes {
		ok, err := l.processMesh(doc, m, mesh)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
		missingNormals = missingNormals || !ok
	}

	if l.CalculateNormals && missingNormals {
		mesh.CalculateNormals()
	}
	mesh.CalculateBounds()

	return mesh, nil
}

// processMesh appends the triangle primitives of m. It reports whether
// every primitive carried normals.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) (bool, error) {
	hasNormals := true

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return false, fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
			if err != nil {
				return false, fmt.Errorf("read normals: %w", err)
			}
		} else {
			hasNormals = false
		}

		var colors [][4]uint8
		if idx, ok := prim.Attributes[gltf.COLOR_0]; ok {
			colors, err = modeler.ReadColor(doc, doc.Accessors[idx], nil)
			if err != nil {
				return false, fmt.Errorf("read colors: %w", err)
			}
		}

		baseVertex := len(mesh.Vertices)
		for i, p := range positions {
			v := MeshVertex{
				Position: math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])),
				Color:    color.RGBA{0xff, 0xff, 0xff, 0xff},
			}
			if i < len(normals) {
				n := normals[i]
				v.Normal = math3d.V3(float64(n[0]), float64(n[1]), float64(n[2]))
			}
			if i < len(colors) {
				c := colors[i]
				v.Color = color.RGBA{c[0], c[1], c[2], c[3]}
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		if prim.Indices != nil {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return false, fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{
					baseVertex + int(indices[i]),
					baseVertex + int(indices[i+1]),
					baseVertex + int(indices[i+2]),
				}})
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{
					baseVertex + i,
					baseVertex + i + 1,
					baseVertex + i + 2,
				}})
			}
		}
	}

	return hasNormals, nil
}
