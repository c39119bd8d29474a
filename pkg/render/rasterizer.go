package render

import (
	"math"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// project maps a view-space vertex onto the supersampled buffer of a
// width x height canvas. coef is Camera.ProjectionCoefficient(width). The
// buffer is 2*width cells across and projected offsets are already in buffer
// units, so the canvas centre lands on cell (width, height).
func project(v math3d.Vec3, coef float64, width, height int) math3d.Vec3 {
	x := v.X * coef / v.Z
	y := v.Y * coef / v.Z
	return math3d.V3(x+float64(width), float64(height)-y, v.Z)
}

// sortByY orders the vertices by descending y. The first maximum wins ties for
// a, and b takes the later of two equal remaining vertices.
func sortByY(v [3]math3d.Vec3) (a, b, c math3d.Vec3) {
	index := 0
	if v[1].Y > v[0].Y {
		index = 1
	}
	if v[2].Y > v[index].Y {
		index = 2
	}
	a = v[index]

	var rest [2]math3d.Vec3
	n := 0
	for i := range v {
		if i != index {
			rest[n] = v[i]
			n++
		}
	}
	if rest[0].Y > rest[1].Y {
		return a, rest[0], rest[1]
	}
	return a, rest[1], rest[0]
}

// splitVertex returns the point on edge a-c at height b.Y, with x and z
// interpolated linearly in y.
func splitVertex(a, b, c math3d.Vec3) math3d.Vec3 {
	dx := (c.X - a.X) / (c.Y - a.Y)
	dz := (c.Z - a.Z) / (c.Y - a.Y)
	return math3d.V3(a.X-dx*(a.Y-b.Y), b.Y, a.Z-dz*(a.Y-b.Y))
}

// fillTriangle rasterizes a projected triangle with a single color, splitting
// it into a flat-top and a flat-bottom half.
func (fb *Framebuffer) fillTriangle(v [3]math3d.Vec3, color math3d.Vec3) {
	a, b, c := sortByY(v)

	switch {
	case a.Y == b.Y:
		fb.fillFlatTop(a, b, c, color)
	case b.Y == c.Y:
		fb.fillFlatBottom(a, b, c, color)
	default:
		d := splitVertex(a, b, c)
		fb.fillFlatTop(b, d, c, color)
		fb.fillFlatBottom(a, b, d, color)
	}
}

// fillFlatTop fills a triangle whose a and b share the larger y, apex c below.
func (fb *Framebuffer) fillFlatTop(a, b, c, color math3d.Vec3) {
	if a.Y-c.Y == 0 || b.Y-c.Y == 0 {
		return
	}
	m1 := (a.X - c.X) / (a.Y - c.Y)
	m2 := (b.X - c.X) / (b.Y - c.Y)

	for y := fb.firstRow(c.Y); y < a.Y && y < float64(fb.Height); y++ {
		x1 := c.X + m1*(y-c.Y)
		x2 := c.X + m2*(y-c.Y)
		fb.span(y, math.Min(x1, x2), math.Max(x1, x2), a, b, c, color)
	}
}

// fillFlatBottom fills a triangle with apex a above and b, c sharing the
// smaller y.
func (fb *Framebuffer) fillFlatBottom(a, b, c, color math3d.Vec3) {
	if b.Y-a.Y == 0 || c.Y-a.Y == 0 {
		return
	}
	m1 := (b.X - a.X) / (b.Y - a.Y)
	m2 := (c.X - a.X) / (c.Y - a.Y)

	for y := fb.firstRow(c.Y); y < a.Y && y < float64(fb.Height); y++ {
		x1 := a.X + m1*(y-a.Y)
		x2 := a.X + m2*(y-a.Y)
		fb.span(y, math.Min(x1, x2), math.Max(x1, x2), a, b, c, color)
	}
}

// firstRow returns the first sample y >= 0 on the unit lattice starting at y0.
// Samples keep y0's fractional offset; rows above the buffer are skipped
// without changing which rows are visited.
func (fb *Framebuffer) firstRow(y0 float64) float64 {
	if y0 >= 0 {
		return y0
	}
	return y0 + math.Ceil(-y0)
}

// span walks x from minX toward maxX in unit steps on row y, depth-testing each
// sample against the triangle's interpolated depth.
func (fb *Framebuffer) span(y, minX, maxX float64, a, b, c, color math3d.Vec3) {
	if y < 0 || y >= float64(fb.Height) {
		return
	}
	x := fb.firstRow(minX)
	for ; x < maxX && x < float64(fb.Width); x++ {
		w := barycentric(a.X, a.Y, b.X, b.Y, c.X, c.Y, x, y)
		z := a.Z*w.X + b.Z*w.Y + c.Z*w.Z
		fb.Plot(int(x), int(y), z, color)
	}
}

// barycentric returns the weights of (px, py) relative to the triangle
// (x0,y0), (x1,y1), (x2,y2). A degenerate triangle divides by zero and yields
// NaN or Inf weights.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	den := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	w1 := ((y1-y2)*(px-x2) + (x2-x1)*(py-y2)) / den
	w2 := ((y2-y0)*(px-x2) + (x0-x2)*(py-y2)) / den
	return math3d.V3(w1, w2, 1-w1-w2)
}

// signedArea returns twice the signed area of a projected triangle. With the
// buffer's y axis pointing down, triangles wound clockwise in view space (the
// front faces of ColoredUnitCube) come out positive.
func signedArea(v [3]math3d.Vec3) float64 {
	return (v[1].X-v[0].X)*(v[2].Y-v[0].Y) - (v[1].Y-v[0].Y)*(v[2].X-v[0].X)
}

// drawEdges outlines a projected triangle. Triangles reaching far outside the
// buffer (vertices just past the near plane) are skipped rather than walked.
func (fb *Framebuffer) drawEdges(v [3]math3d.Vec3, color math3d.Vec3) {
	for _, p := range v {
		if math.Abs(p.X) > float64(3*fb.Width) || math.Abs(p.Y) > float64(3*fb.Height) {
			return
		}
	}
	for i := range 3 {
		p, q := v[i], v[(i+1)%3]
		fb.DrawLine(int(p.X), int(p.Y), int(q.X), int(q.Y), color)
	}
}
