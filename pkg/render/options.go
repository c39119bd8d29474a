package render

import (
	"fmt"
	"math"

	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/scene"
)

// CullMode selects how cullable primitives are treated after projection.
type CullMode int

const (
	CullNone CullMode = iota // Draw every primitive
	CullBack                 // Skip cullable primitives facing away from the camera
)

func (m CullMode) String() string {
	switch m {
	case CullNone:
		return "none"
	case CullBack:
		return "back"
	default:
		return fmt.Sprintf("CullMode(%d)", int(m))
	}
}

// culled reports whether a projected primitive should be dropped.
func (m CullMode) culled(p scene.Primitive, screen [3]math3d.Vec3) bool {
	return m == CullBack && p.Cullable && signedArea(screen) < 0
}

// ShadeMode selects how a primitive's fill color is computed.
type ShadeMode int

const (
	ShadeAmbient ShadeMode = iota // Ambient color only; lights are ignored
	ShadeLambert                  // Flat diffuse lighting from the scene's point lights
)

func (m ShadeMode) String() string {
	switch m {
	case ShadeAmbient:
		return "ambient"
	case ShadeLambert:
		return "lambert"
	default:
		return fmt.Sprintf("ShadeMode(%d)", int(m))
	}
}

// ParseShadeMode parses "ambient" or "lambert".
func ParseShadeMode(s string) (ShadeMode, error) {
	switch s {
	case "ambient", "":
		return ShadeAmbient, nil
	case "lambert":
		return ShadeLambert, nil
	}
	return 0, fmt.Errorf("unknown shading mode %q", s)
}

// AmbientLevel scales the ambient color under ShadeLambert.
const AmbientLevel = 0.25

// shade returns the fill color of a world-space primitive.
func (m ShadeMode) shade(p scene.Primitive, lights []scene.Light) math3d.Vec3 {
	if m != ShadeLambert {
		return p.Ambient
	}

	n := p.Normal()
	center := p.Centroid()
	c := p.Ambient.Scale(AmbientLevel)
	for _, l := range lights {
		dir := l.Pos.Sub(center).Normalize()
		k := math.Max(0, n.Dot(dir)) * l.Strength
		c = c.Add(p.Diffuse.Mul(l.Color).Scale(k / 255))
	}
	return math3d.V3(math.Min(c.X, 255), math.Min(c.Y, 255), math.Min(c.Z, 255))
}

// RenderStats counts what happened to primitives in the last frame.
type RenderStats struct {
	Objects    int // Objects in the scene
	Primitives int // Primitives transformed into view space
	Rejected   int // Dropped by the near/far depth test
	Culled     int // Dropped by back-face culling
	Rasterized int // Filled into the framebuffer
}
