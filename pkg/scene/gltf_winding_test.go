package scene_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/render"
	"github.com/taigrr/raster3d/pkg/scene"
)

// cubeDocument stores the unit cube's triangles as a glTF mesh. The cube's
// corner order is outward-facing counter-clockwise, as glTF expects.
func cubeDocument(indexed bool) *gltf.Document {
	var data []byte
	var count int
	for _, p := range scene.ColoredUnitCube(math3d.Zero3()).Primitives {
		for _, v := range p.Vertices() {
			for _, f := range []float64{v.X, v.Y, v.Z} {
				data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(f)))
			}
			count++
		}
	}
	posLen := len(data)

	prim := &gltf.Primitive{Attributes: map[string]int{gltf.POSITION: 0}}
	views := []*gltf.BufferView{{Buffer: 0, ByteLength: posLen}}
	accessors := []*gltf.Accessor{
		{BufferView: gltf.Index(0), ComponentType: gltf.ComponentFloat, Count: count, Type: gltf.AccessorVec3},
	}
	if indexed {
		for i := range count {
			data = binary.LittleEndian.AppendUint16(data, uint16(i))
		}
		views = append(views, &gltf.BufferView{Buffer: 0, ByteOffset: posLen, ByteLength: 2 * count})
		accessors = append(accessors, &gltf.Accessor{
			BufferView: gltf.Index(1), ComponentType: gltf.ComponentUshort, Count: count, Type: gltf.AccessorScalar,
		})
		prim.Indices = gltf.Index(1)
	}

	return &gltf.Document{
		Buffers:     []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: views,
		Accessors:   accessors,
		Meshes:      []*gltf.Mesh{{Name: "cube", Primitives: []*gltf.Primitive{prim}}},
	}
}

func TestGLTFCubeKeepsOutwardNormals(t *testing.T) {
	for _, indexed := range []bool{true, false} {
		name := "sequential"
		if indexed {
			name = "indexed"
		}
		t.Run(name, func(t *testing.T) {
			mesh, err := scene.MeshFromDocument(cubeDocument(indexed), "cube.glb")
			if err != nil {
				t.Fatalf("MeshFromDocument: %v", err)
			}
			mesh.Fit()
			obj := mesh.Object()
			if len(obj.Primitives) != 12 {
				t.Fatalf("got %d primitives, want 12", len(obj.Primitives))
			}
			for i, p := range obj.Primitives {
				if p.Normal().Dot(p.Centroid()) <= 0 {
					t.Errorf("primitive %d normal %v points inward", i, p.Normal())
				}
			}
		})
	}
}

func TestGLTFCubeCullsLikeColoredCube(t *testing.T) {
	mesh, err := scene.MeshFromDocument(cubeDocument(true), "cube.glb")
	if err != nil {
		t.Fatalf("MeshFromDocument: %v", err)
	}
	mesh.Fit()
	loaded := mesh.Object()
	loaded.Transform.Pos = math3d.V3(0, 0, 5)

	stats := func(o *scene.Object) render.RenderStats {
		s := scene.New()
		s.Add(o)
		cam := render.NewCamera()
		cam.Cull = render.CullBack
		cam.Render(100, 100, s)
		return cam.Stats
	}

	want := stats(scene.ColoredUnitCube(math3d.V3(0, 0, 5)))
	if got := stats(loaded); got != want {
		t.Errorf("loaded cube stats = %+v, want %+v", got, want)
	}
	if want.Culled != 10 || want.Rasterized != 2 {
		t.Errorf("reference cube stats = %+v", want)
	}
}
