// raster3d - CPU software rasterizer
// Renders colored cubes and glTF meshes with a scanline depth-buffered
// rasterizer, either live in the terminal or to a PNG file.
//
// Controls (view):
//
//	Arrows      - Move forward/back, strafe left/right
//	A/D         - Yaw left/right
//	W/S         - Pitch up/down
//	Space       - Move up
//	Z           - Move down (also Shift+Space)
//	X           - Toggle wireframe overlay
//	C           - Toggle back-face culling
//	L           - Toggle Lambert shading
//	?           - Toggle HUD overlay (frame time, primitive counts)
//	R           - Reset camera position and look
//	Esc/Q       - Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "raster3d",
		Short: "Software rasterizer for the terminal",
		Long: "raster3d renders simple polygonal scenes on the CPU: perspective projection,\n" +
			"scanline fill with a depth buffer and a 2x2 supersampling filter.",
		SilenceUsage: true,
	}
	root.AddCommand(newViewCmd(), newSnapshotCmd())
	return root
}
