package models

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/voxcast/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if !loader.CalculateNormals {
		t.Error("CalculateNormals should default to true")
	}
}

func TestDocumentEmptyMesh(t *testing.T) {
	_, err := Document(NewMesh("empty"))
	if !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Document() error = %v, want ErrEmptyMesh", err)
	}
	if err := SaveGLB(NewMesh("empty"), filepath.Join(t.TempDir(), "x.glb")); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("SaveGLB() error = %v, want ErrEmptyMesh", err)
	}
}

func TestDocumentLayout(t *testing.T) {
	m := FromGrid("world", newGrid(t, 4, math3d.V3(1, 1, 1)))
	doc, err := Document(m)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Asset.Generator != Generator {
		t.Errorf("generator = %q", doc.Asset.Generator)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive")
	}
	prim := doc.Meshes[0].Primitives[0]
	for _, attr := range []string{gltf.POSITION, gltf.NORMAL, gltf.COLOR_0} {
		if _, ok := prim.Attributes[attr]; !ok {
			t.Errorf("missing attribute %s", attr)
		}
	}
	if prim.Indices == nil || doc.Accessors[*prim.Indices].Count != m.TriangleCount()*3 {
		t.Error("index accessor does not cover every triangle")
	}
	if len(doc.Scenes[0].Nodes) != 1 {
		t.Errorf("scene has %d nodes, want 1", len(doc.Scenes[0].Nodes))
	}
}

func TestGLBRoundTrip(t *testing.T) {
	src := FromGrid("world", newGrid(t, 4, math3d.V3(1, 1, 1), math3d.V3(2, 1, 1), math3d.V3(2, 2, 3)))
	path := filepath.Join(t.TempDir(), "world.glb")

	if err := SaveGLB(src, path); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}
	got, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}

	if got.Name != "world.glb" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.VertexCount() != src.VertexCount() || got.TriangleCount() != src.TriangleCount() {
		t.Fatalf("loaded %d vertices / %d triangles, want %d / %d",
			got.VertexCount(), got.TriangleCount(), src.VertexCount(), src.TriangleCount())
	}
	for i := range src.Vertices {
		if got.Vertices[i] != src.Vertices[i] {
			t.Fatalf("vertex %d = %+v, want %+v", i, got.Vertices[i], src.Vertices[i])
		}
	}
	for i := range src.Faces {
		if got.Faces[i] != src.Faces[i] {
			t.Fatalf("face %d = %v, want %v", i, got.Faces[i], src.Faces[i])
		}
	}
	if got.BoundsMin != src.BoundsMin || got.BoundsMax != src.BoundsMax {
		t.Errorf("bounds = %v..%v, want %v..%v", got.BoundsMin, got.BoundsMax, src.BoundsMin, src.BoundsMax)
	}
}
