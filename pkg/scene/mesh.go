package scene

import (
	"math"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// Mesh is indexed triangle geometry as read from a model file, before it is
// flattened into an Object.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material carries the base color of a face group, 0-1 per channel.
type Material struct {
	Name      string
	BaseColor [4]float64
}

// DefaultColor is used for faces without a material.
var DefaultColor = math3d.V3(200, 200, 200)

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Fit recenters the mesh on the origin and scales it uniformly so its largest
// dimension spans [-1, 1], the same extent as ColoredUnitCube.
func (m *Mesh) Fit() {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	scale := 1.0
	if maxDim > 0 {
		scale = 2 / maxDim
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(scale)
	}
	m.CalculateBounds()
}

// faceColor returns the 0-255 color for face i.
func (m *Mesh) faceColor(i int) math3d.Vec3 {
	mat := m.Faces[i].Material
	if mat < 0 || mat >= len(m.Materials) {
		return DefaultColor
	}
	c := m.Materials[mat].BaseColor
	return math3d.V3(c[0]*255, c[1]*255, c[2]*255)
}

// Object flattens the mesh into a cullable Object with one primitive per face.
func (m *Mesh) Object() *Object {
	prims := make([]Primitive, 0, len(m.Faces))
	for i, f := range m.Faces {
		prims = append(prims, NewPrimitive(
			m.Vertices[f.V[0]],
			m.Vertices[f.V[1]],
			m.Vertices[f.V[2]],
			true,
			m.faceColor(i),
		))
	}
	return NewObject(m.Name, prims)
}
