package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Surface receives finished frames.
type Surface interface {
	Present(img image.Image) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(img image.Image) error

// Present calls f(img).
func (f SurfaceFunc) Present(img image.Image) error { return f(img) }

// PNGFile writes every presented frame to Path, replacing the previous one.
type PNGFile struct {
	Path string
}

// Present encodes img as PNG into the file.
func (p PNGFile) Present(img image.Image) error {
	return SavePNG(p.Path, img)
}

// SavePNG writes img to path as a PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
