package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/render"
	"github.com/taigrr/raster3d/pkg/scene"
)

// modelPos is where --model places the loaded mesh, left of the demo cubes.
var modelPos = math3d.V3(-3, 0, 6)

// sceneOptions are the flags shared by every command that renders.
type sceneOptions struct {
	fov     float64
	near    float64
	far     float64
	cull    bool
	shade   string
	model   string
	logPath string
	debug   bool
}

func (o *sceneOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&o.fov, "fov", 90, "horizontal field of view in degrees")
	f.Float64Var(&o.near, "near", 0, "near depth; primitives need every vertex beyond it")
	f.Float64Var(&o.far, "far", 100, "far depth; primitives need every vertex before it")
	f.BoolVar(&o.cull, "cull", false, "skip back-facing primitives")
	f.StringVar(&o.shade, "shade", "ambient", "fill shading: ambient or lambert")
	f.StringVar(&o.model, "model", "", "add a .glb/.gltf model to the scene")
	f.StringVar(&o.logPath, "log", "", "write render logs to this file")
	f.BoolVar(&o.debug, "debug", false, "log every render stage (needs --log)")
}

// camera builds a camera at the origin from the flags.
func (o *sceneOptions) camera() (*render.Camera, error) {
	shading, err := render.ParseShadeMode(o.shade)
	if err != nil {
		return nil, err
	}
	if o.near >= o.far {
		return nil, fmt.Errorf("near (%v) must be less than far (%v)", o.near, o.far)
	}

	cam := render.NewCameraWith(math3d.Zero3(), math3d.Zero3(), o.fov, 1, o.near, o.far)
	cam.Shading = shading
	cam.ProcessLogs = o.debug
	if o.cull {
		cam.Cull = render.CullBack
	}
	return cam, nil
}

// scene returns the demo scene, plus the --model mesh if one was given.
func (o *sceneOptions) scene() (*scene.Scene, error) {
	s := scene.Demo()
	if o.model == "" {
		return s, nil
	}
	obj, err := scene.LoadGLB(o.model, modelPos)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	s.Add(obj)
	return s, nil
}

// setupLogging installs a debug text logger writing to --log. The returned
// function closes the file.
func (o *sceneOptions) setupLogging() (func() error, error) {
	if o.logPath == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(o.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() error {
		render.SetLogger(nil)
		return f.Close()
	}, nil
}
