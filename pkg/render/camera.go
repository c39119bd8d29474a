package render

import (
	"context"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/scene"
)

// Camera is a pinhole camera looking down its +Z axis, and the renderer that
// draws a scene from its point of view.
type Camera struct {
	// Position in world space
	Pos math3d.Vec3

	// Orientation in radians, applied to the world in the fixed Y, X, Z order.
	// Look controls write Rot.X and Rot.Y directly; angles are never wrapped.
	Rot math3d.Vec3

	// Projection parameters
	FOV   float64 // Horizontal field of view in degrees
	Focal float64 // Focal length
	Near  float64 // Primitives need every vertex with z > Near
	Far   float64 // and z < Far in view space

	ProcessLogs bool      // Log stage boundaries through Logger at debug level
	Cull        CullMode  // Back-face culling strategy
	Shading     ShadeMode // Fill color strategy
	Wireframe   bool      // Outline rasterized primitives

	// WireColor is the outline color used when Wireframe is set.
	WireColor math3d.Vec3

	// Stats describes the most recent Render call.
	Stats RenderStats
}

// NewCamera creates a camera at the origin with a 90 degree field of view,
// unit focal length and a (0, 100) depth range.
func NewCamera() *Camera {
	return NewCameraWith(math3d.Zero3(), math3d.Zero3(), 90, 1, 0, 100)
}

// NewCameraWith creates a camera with explicit view parameters.
func NewCameraWith(pos, rot math3d.Vec3, fov, focal, near, far float64) *Camera {
	return &Camera{
		Pos:       pos,
		Rot:       rot,
		FOV:       fov,
		Focal:     focal,
		Near:      near,
		Far:       far,
		WireColor: math3d.V3(255, 255, 255),
	}
}

// MoveForward moves the camera along its heading in the XZ plane.
func (c *Camera) MoveForward(distance float64) {
	c.Pos.X += distance * math.Cos(c.Rot.Y+math.Pi/2)
	c.Pos.Z += distance * math.Sin(c.Rot.Y+math.Pi/2)
}

// MoveBackward is the inverse of MoveForward.
func (c *Camera) MoveBackward(distance float64) {
	c.Pos.X -= distance * math.Cos(c.Rot.Y+math.Pi/2)
	c.Pos.Z -= distance * math.Sin(c.Rot.Y+math.Pi/2)
}

// MoveLeft strafes left in the XZ plane.
func (c *Camera) MoveLeft(distance float64) {
	c.Pos.X -= distance * math.Cos(c.Rot.Y)
	c.Pos.Z -= distance * math.Sin(c.Rot.Y)
}

// MoveRight strafes right in the XZ plane.
func (c *Camera) MoveRight(distance float64) {
	c.Pos.X += distance * math.Cos(c.Rot.Y)
	c.Pos.Z += distance * math.Sin(c.Rot.Y)
}

// MoveUp moves the camera along world Y.
func (c *Camera) MoveUp(distance float64) {
	c.Pos.Y += distance
}

// MoveDown moves the camera against world Y.
func (c *Camera) MoveDown(distance float64) {
	c.Pos.Y -= distance
}

// ViewTransform returns the transform taking world space into view space when
// applied translate-first.
func (c *Camera) ViewTransform() math3d.Transform {
	return math3d.NewTransformWith(c.Pos.Negate(), math3d.One3(), c.Rot)
}

// ProjectionCoefficient returns the factor applied to x/z and y/z to reach
// supersampled buffer units for a canvas of the given width.
func (c *Camera) ProjectionCoefficient(width int) float64 {
	return float64(width) / (c.Focal * math.Tan(c.FOV*math.Pi/360))
}

// InDepthRange reports whether every vertex of a view-space primitive lies
// strictly between Near and Far. Triangles crossing either plane are dropped
// whole; there is no clipping.
func (c *Camera) InDepthRange(p scene.Primitive) bool {
	return p.P1.Z > c.Near && p.P2.Z > c.Near && p.P3.Z > c.Near &&
		p.P1.Z < c.Far && p.P2.Z < c.Far && p.P3.Z < c.Far
}

// viewPrimitive is a view-space primitive with its resolved fill color.
type viewPrimitive struct {
	scene.Primitive
	color math3d.Vec3
}

// viewPrimitives transforms every object into view space and keeps the
// primitives inside the depth range, in scene order.
func (c *Camera) viewPrimitives(s *scene.Scene, view math3d.Transform) []viewPrimitive {
	var out []viewPrimitive
	for _, obj := range s.Objects {
		world := obj.World()
		for _, p := range world.Primitives {
			color := c.Shading.shade(p, s.Lights)
			p = p.TransformGeometry(view, false)
			c.Stats.Primitives++
			if !c.InDepthRange(p) {
				c.Stats.Rejected++
				continue
			}
			out = append(out, viewPrimitive{Primitive: p, color: color})
		}
	}
	return out
}

// Rasterize runs the pipeline up to and including the depth-tested fill and
// returns the supersampled framebuffer (2*width x 2*height).
func (c *Camera) Rasterize(width, height int, s *scene.Scene) *Framebuffer {
	start := time.Now()
	c.Stats = RenderStats{Objects: len(s.Objects)}
	c.log("render started", slog.Int("width", width), slog.Int("height", height))

	view := c.ViewTransform()
	coef := c.ProjectionCoefficient(width)
	c.log("precompute completed", slog.Float64("fovCoefficient", coef))

	fb := NewFramebuffer(2*width, 2*height, c.Far+1)
	c.log("buffer initialized", slog.Int("cells", len(fb.Pixels)))

	prims := c.viewPrimitives(s, view)
	c.log("transform completed",
		slog.Int("primitives", c.Stats.Primitives),
		slog.Int("rejected", c.Stats.Rejected))

	for _, p := range prims {
		screen := [3]math3d.Vec3{
			project(p.P1, coef, width, height),
			project(p.P2, coef, width, height),
			project(p.P3, coef, width, height),
		}
		if c.Cull.culled(p.Primitive, screen) {
			c.Stats.Culled++
			continue
		}
		fb.fillTriangle(screen, p.color)
		c.Stats.Rasterized++
		if c.Wireframe {
			fb.drawEdges(screen, c.WireColor)
		}
	}
	c.log("raster completed",
		slog.Int("rasterized", c.Stats.Rasterized),
		slog.Int("culled", c.Stats.Culled),
		slog.Duration("elapsed", time.Since(start)))

	return fb
}

// Render draws s as seen from the camera onto a width x height image. The
// frame is rasterized at twice the resolution in each direction and box
// filtered down.
func (c *Camera) Render(width, height int, s *scene.Scene) *image.RGBA {
	start := time.Now()
	img := c.Rasterize(width, height, s).Downsample()
	c.log("render completed", slog.Duration("elapsed", time.Since(start)))
	return img
}

// RenderTo renders a frame and hands it to dst.
func (c *Camera) RenderTo(dst Surface, width, height int, s *scene.Scene) error {
	return dst.Present(c.Render(width, height, s))
}

func (c *Camera) log(msg string, attrs ...slog.Attr) {
	if !c.ProcessLogs {
		return
	}
	Logger().LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
