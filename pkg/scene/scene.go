package scene

import (
	"math"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// Light is a point light. The default render path does not evaluate lights.
type Light struct {
	Pos      math3d.Vec3
	Color    math3d.Vec3
	Strength float64
}

// Scene groups the objects and lights handed to a renderer.
type Scene struct {
	Objects []*Object
	Lights  []Light
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends objects to the scene.
func (s *Scene) Add(objs ...*Object) {
	s.Objects = append(s.Objects, objs...)
}

// AddLight appends a light to the scene.
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// TriangleCount returns the number of primitives across all objects.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, o := range s.Objects {
		n += o.TriangleCount()
	}
	return n
}

// Demo builds three spinning-ready cubes and a single white light in front of
// the origin camera.
func Demo() *Scene {
	s := New()

	c1 := ColoredUnitCube(math3d.V3(0, 0, 5))
	c1.Transform.SetRotX(-0.2 * math.Pi)

	c2 := ColoredUnitCube(math3d.V3(1, 1, 6))
	c2.Transform.SetRotX(0.2 * math.Pi)

	c3 := ColoredUnitCube(math3d.V3(0, 2, 6))
	c3.Transform.SetRotY(1.2 * math.Pi)

	s.Add(c1, c2, c3)
	s.AddLight(Light{Pos: math3d.V3(-3, 4, 0), Color: math3d.V3(255, 255, 255), Strength: 1})
	return s
}

// AnimateDemo advances the Demo scene's spin by dt seconds.
func AnimateDemo(s *Scene, dt float64) {
	if len(s.Objects) < 3 {
		return
	}
	s.Objects[0].Transform.ChangeRotY(0.1 * dt * math.Pi)
	s.Objects[1].Transform.ChangeRotY(-0.05 * dt * math.Pi)
	s.Objects[2].Transform.ChangeRotX(0.05 * dt * math.Pi)
}
