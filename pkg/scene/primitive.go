// Package scene holds the renderable data model: triangles, objects, lights and
// the scene that groups them.
package scene

import (
	"fmt"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// Primitive is a single triangle. Colors are 0-255 vectors.
type Primitive struct {
	P1, P2, P3 math3d.Vec3
	Cullable   bool
	Ambient    math3d.Vec3
	Diffuse    math3d.Vec3
}

// NewPrimitive creates a triangle with the same ambient and diffuse color.
func NewPrimitive(p1, p2, p3 math3d.Vec3, cullable bool, color math3d.Vec3) Primitive {
	return Primitive{
		P1:       p1,
		P2:       p2,
		P3:       p3,
		Cullable: cullable,
		Ambient:  color,
		Diffuse:  color,
	}
}

// TransformGeometry returns a copy of p with every vertex mapped through t.
// See math3d.Transform.Apply for the meaning of rotateFirst.
func (p Primitive) TransformGeometry(t math3d.Transform, rotateFirst bool) Primitive {
	p.P1 = t.Apply(p.P1, rotateFirst)
	p.P2 = t.Apply(p.P2, rotateFirst)
	p.P3 = t.Apply(p.P3, rotateFirst)
	return p
}

// Vertices returns the three corners in order.
func (p Primitive) Vertices() [3]math3d.Vec3 {
	return [3]math3d.Vec3{p.P1, p.P2, p.P3}
}

// Normal returns the unit face normal (P2-P1) × (P3-P1).
func (p Primitive) Normal() math3d.Vec3 {
	return p.P2.Sub(p.P1).Cross(p.P3.Sub(p.P1)).Normalize()
}

// Centroid returns the average of the three vertices.
func (p Primitive) Centroid() math3d.Vec3 {
	return p.P1.Add(p.P2).Add(p.P3).Scale(1.0 / 3)
}

func (p Primitive) String() string {
	return fmt.Sprintf("Primitive{%v %v %v}", p.P1, p.P2, p.P3)
}
