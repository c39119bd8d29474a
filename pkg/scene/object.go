package scene

import (
	"github.com/taigrr/raster3d/pkg/math3d"
)

// Object is a set of triangles sharing one pose.
type Object struct {
	Name       string
	Primitives []Primitive
	Transform  math3d.Transform
}

// NewObject creates an object with an identity transform.
func NewObject(name string, prims []Primitive) *Object {
	return &Object{
		Name:       name,
		Primitives: prims,
		Transform:  math3d.NewTransform(),
	}
}

// TransformGeometry returns a new object whose primitives are o's primitives
// mapped through t, in the same order. The result keeps o's own Transform
// value; it is not applied.
func (o *Object) TransformGeometry(t math3d.Transform, rotateFirst bool) *Object {
	prims := make([]Primitive, len(o.Primitives))
	for i, p := range o.Primitives {
		prims[i] = p.TransformGeometry(t, rotateFirst)
	}
	return &Object{
		Name:       o.Name,
		Primitives: prims,
		Transform:  o.Transform,
	}
}

// World returns the object's primitives in world space.
func (o *Object) World() *Object {
	return o.TransformGeometry(o.Transform, true)
}

// TriangleCount returns the number of primitives.
func (o *Object) TriangleCount() int {
	return len(o.Primitives)
}

// Face colors of ColoredUnitCube.
var (
	ColorRed     = math3d.V3(255, 0, 0)
	ColorGreen   = math3d.V3(0, 255, 0)
	ColorBlue    = math3d.V3(0, 0, 255)
	ColorOrange  = math3d.V3(255, 100, 0)
	ColorMagenta = math3d.V3(255, 0, 255)
	ColorYellow  = math3d.V3(255, 255, 0)
)

// ColoredUnitCube builds the cube spanning [-1,1]³ with a solid color per face,
// two triangles per face, positioned at pos through its transform.
func ColoredUnitCube(pos math3d.Vec3) *Object {
	v := math3d.V3
	tri := func(a, b, c, color math3d.Vec3) Primitive {
		return NewPrimitive(a, b, c, true, color)
	}

	o := NewObject("cube", []Primitive{
		// back
		tri(v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), ColorRed),
		tri(v(-1, -1, 1), v(1, 1, 1), v(-1, 1, 1), ColorRed),
		// right
		tri(v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), ColorBlue),
		tri(v(1, -1, 1), v(1, 1, -1), v(1, 1, 1), ColorBlue),
		// front
		tri(v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), ColorGreen),
		tri(v(1, -1, -1), v(-1, 1, -1), v(1, 1, -1), ColorGreen),
		// left
		tri(v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), ColorOrange),
		tri(v(-1, -1, -1), v(-1, 1, 1), v(-1, 1, -1), ColorOrange),
		// bottom
		tri(v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), ColorMagenta),
		tri(v(-1, -1, -1), v(1, -1, 1), v(-1, -1, 1), ColorMagenta),
		// top
		tri(v(-1, 1, -1), v(1, 1, 1), v(1, 1, -1), ColorYellow),
		tri(v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), ColorYellow),
	})
	o.Transform.Pos = pos
	return o
}
