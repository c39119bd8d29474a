package main

import (
	"fmt"
	"io"
	"time"

	"github.com/taigrr/raster3d/pkg/render"
)

// HUD renders an overlay with frame timing and render statistics.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	frameTime time.Duration
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// Frame records one rendered frame that took d.
func (h *HUD) Frame(d time.Duration) {
	h.frameTime = d
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(w io.Writer, width, height int, show bool, cam *render.Camera) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows so toggling off works
	fmt.Fprint(w, moveTo(1, 1)+clearLine)
	fmt.Fprint(w, moveTo(height, 1)+clearLine)

	if !show {
		return
	}

	fmt.Fprintf(w, "%s%s%s %.0f FPS  %.1f ms %s", moveTo(1, 1), bgBlack, fgGreen,
		h.fps, float64(h.frameTime.Microseconds())/1000, reset)

	st := cam.Stats
	stats := fmt.Sprintf("%d/%d tris", st.Rasterized, st.Primitives)
	fmt.Fprintf(w, "%s%s%s%s %s %s", moveTo(1, max(width-len(stats)-1, 1)), bgBlack, fgCyan, bold, stats, reset)

	check := func(on bool) string {
		if on {
			return "[✓]"
		}
		return "[ ]"
	}
	fmt.Fprintf(w, "%s%s%s %s Wireframe  %s Cull  %s Lambert  rejected %d  culled %d %s",
		moveTo(height, 1), bgBlack, fgWhite,
		check(cam.Wireframe), check(cam.Cull == render.CullBack), check(cam.Shading == render.ShadeLambert),
		st.Rejected, st.Culled, reset)
}
