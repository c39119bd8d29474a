package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/raster3d/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb", math3d.Zero3())
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

// triangleDocument builds a glTF document holding one indexed triangle with a
// red material.
func triangleDocument() *gltf.Document {
	positions := [][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 4, 2}}
	indices := []uint16{0, 1, 2}

	var data []byte
	for _, p := range positions {
		for _, f := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
		}
	}
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: 36},
			{Buffer: 0, ByteOffset: 36, ByteLength: 6},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: gltf.Index(0), ComponentType: gltf.ComponentFloat, Count: 3, Type: gltf.AccessorVec3},
			{BufferView: gltf.Index(1), ComponentType: gltf.ComponentUshort, Count: 3, Type: gltf.AccessorScalar},
		},
		Materials: []*gltf.Material{{
			Name:                 "red",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float64{1, 0, 0, 1}},
		}},
		Meshes: []*gltf.Mesh{{
			Name: "tri",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Indices:    gltf.Index(1),
				Material:   gltf.Index(0),
			}},
		}},
	}
}

func TestMeshFromDocument(t *testing.T) {
	mesh, err := MeshFromDocument(triangleDocument(), "tri.glb")
	if err != nil {
		t.Fatalf("MeshFromDocument: %v", err)
	}
	if mesh.TriangleCount() != 1 || len(mesh.Vertices) != 3 {
		t.Fatalf("got %d faces / %d vertices, want 1 / 3", mesh.TriangleCount(), len(mesh.Vertices))
	}

	// Z is mirrored into this renderer's convention.
	if v := mesh.Vertices[2]; v != math3d.V3(0, 4, -2) {
		t.Errorf("vertex 2 = %v, want (0, 4, -2)", v)
	}
	if mesh.Faces[0].Material != 0 {
		t.Errorf("face material = %d, want 0", mesh.Faces[0].Material)
	}

	obj := mesh.Object()
	if len(obj.Primitives) != 1 {
		t.Fatalf("object has %d primitives, want 1", len(obj.Primitives))
	}
	if c := obj.Primitives[0].Ambient; c != math3d.V3(255, 0, 0) {
		t.Errorf("primitive color = %v, want red", c)
	}
}

func TestMeshFit(t *testing.T) {
	mesh, err := MeshFromDocument(triangleDocument(), "tri.glb")
	if err != nil {
		t.Fatalf("MeshFromDocument: %v", err)
	}
	mesh.Fit()

	if c := mesh.Center(); c.Len() > 1e-9 {
		t.Errorf("center after fit = %v, want origin", c)
	}
	size := mesh.Size()
	if maxDim := math.Max(size.X, math.Max(size.Y, size.Z)); math.Abs(maxDim-2) > 1e-9 {
		t.Errorf("largest dimension after fit = %v, want 2", maxDim)
	}
}

func TestMeshDefaultColor(t *testing.T) {
	mesh := NewMesh("bare")
	mesh.Vertices = []math3d.Vec3{{}, {X: 1}, {Y: 1}}
	mesh.Faces = []Face{{V: [3]int{0, 1, 2}, Material: -1}}

	obj := mesh.Object()
	if c := obj.Primitives[0].Ambient; c != DefaultColor {
		t.Errorf("color = %v, want default %v", c, DefaultColor)
	}
}

func TestReadAccessorOutOfBounds(t *testing.T) {
	doc := triangleDocument()
	doc.Accessors[0].Count = 100
	if _, err := MeshFromDocument(doc, "broken"); err == nil {
		t.Error("expected error for accessor larger than its buffer")
	}
}

func TestMeshFromDocumentBadIndex(t *testing.T) {
	doc := triangleDocument()
	// third index, after 36 bytes of positions
	binary.LittleEndian.PutUint16(doc.Buffers[0].Data[40:], 5)
	if _, err := MeshFromDocument(doc, "broken"); err == nil {
		t.Error("expected error for index past the vertex count")
	}
}
