// Package render turns a scene into pixels on the CPU: view transform,
// perspective projection, scanline fill with a depth buffer and a 2x2 box
// filter over a supersampled buffer.
package render

import (
	"image"
	"image/color"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// BufferPixel is one supersampled cell: the nearest depth written so far and
// its color (0-255 per channel).
type BufferPixel struct {
	Z     float64
	Color math3d.Vec3
}

// Framebuffer is a depth and color grid stored row-major. Render allocates one
// at twice the canvas size in each direction and drops it after downsampling.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []BufferPixel
}

// NewFramebuffer creates a framebuffer with every depth set to clearDepth and
// every color black.
func NewFramebuffer(width, height int, clearDepth float64) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]BufferPixel, width*height),
	}
	for i := range fb.Pixels {
		fb.Pixels[i].Z = clearDepth
	}
	return fb
}

// At returns the cell at (x, y). Out-of-range coordinates return the zero cell.
func (fb *Framebuffer) At(x, y int) BufferPixel {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return BufferPixel{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Plot writes color at (x, y) if z is strictly nearer than the stored depth.
// Equal depths keep the earlier write. It reports whether the cell changed.
func (fb *Framebuffer) Plot(x, y int, z float64, c math3d.Vec3) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	p := &fb.Pixels[y*fb.Width+x]
	if z < p.Z {
		p.Z = z
		p.Color = c
		return true
	}
	return false
}

// SetColor overwrites the color at (x, y) without touching depth.
func (fb *Framebuffer) SetColor(x, y int, c math3d.Vec3) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x].Color = c
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm,
// ignoring depth.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c math3d.Vec3) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetColor(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Downsample averages each 2x2 block of cells into one output pixel, truncating
// each channel to an integer.
func (fb *Framebuffer) Downsample() *image.RGBA {
	w, h := fb.Width/2, fb.Height/2
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c1 := fb.Pixels[(2*y)*fb.Width+2*x].Color
			c2 := fb.Pixels[(2*y)*fb.Width+2*x+1].Color
			c3 := fb.Pixels[(2*y+1)*fb.Width+2*x+1].Color
			c4 := fb.Pixels[(2*y+1)*fb.Width+2*x].Color

			r := int(0.25 * (c1.X + c2.X + c3.X + c4.X))
			g := int(0.25 * (c1.Y + c2.Y + c3.Y + c4.Y))
			b := int(0.25 * (c1.Z + c2.Z + c3.Z + c4.Z))

			img.SetRGBA(x, y, color.RGBA{uint8(r), uint8(g), uint8(b), 255})
		}
	}
	return img
}

// ToImage converts the full supersampled grid to an image without filtering.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Pixels[y*fb.Width+x].Color
			img.SetRGBA(x, y, color.RGBA{uint8(c.X), uint8(c.Y), uint8(c.Z), 255})
		}
	}
	return img
}
