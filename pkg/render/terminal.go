package render

import (
	"fmt"
	"image"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// CellScreen is the part of a terminal screen the renderer writes to.
// *uv.Terminal satisfies it.
type CellScreen interface {
	SetCell(x, y int, c *uv.Cell)
}

// Screens that buffer cells until told to write them out implement one of
// these.
type (
	displayer interface{ Display() error }
	flusher   interface{ Flush() error }
)

// Terminal presents frames on a cell screen using half blocks, so every
// terminal row shows two image rows.
type Terminal struct {
	Screen CellScreen
	Area   uv.Rectangle
}

// NewTerminal creates a surface covering cols x rows cells of scr.
func NewTerminal(scr CellScreen, cols, rows int) *Terminal {
	return &Terminal{Screen: scr, Area: uv.Rect(0, 0, cols, rows)}
}

// ImageSize returns the image size that exactly fills the terminal area.
func (t *Terminal) ImageSize() (width, height int) {
	return t.Area.Dx(), t.Area.Dy() * 2
}

// Present draws img and flushes the screen if it buffers output.
func (t *Terminal) Present(img image.Image) error {
	DrawImage(t.Screen, t.Area, img)
	var err error
	switch s := t.Screen.(type) {
	case displayer:
		err = s.Display()
	case flusher:
		err = s.Flush()
	}
	if err != nil {
		return fmt.Errorf("display frame: %w", err)
	}
	return nil
}

// DrawImage converts img to terminal cells inside area. Each cell is an upper
// half block with the foreground set to the top pixel and the background to
// the one below it. Pixels outside img are left uncolored.
func DrawImage(scr CellScreen, area uv.Rectangle, img image.Image) {
	b := img.Bounds()
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := b.Min.Y + (row-area.Min.Y)*2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := b.Min.X + col - area.Min.X
			if x >= b.Max.X {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: pixelAt(img, x, topY),
					Bg: pixelAt(img, x, botY),
				},
			})
		}
	}
}

// pixelAt returns the opaque color at (x, y), or nil outside the image.
func pixelAt(img image.Image, x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return nil
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
}
