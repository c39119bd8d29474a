package main

import (
	"context"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/render"
	"github.com/taigrr/raster3d/pkg/scene"
)

const (
	moveSpeed = 5.0 // units per second
	turnSpeed = 2.0 // radians per second
)

func newViewCmd() *cobra.Command {
	var (
		opts sceneOptions
		fps  int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Fly around the demo scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}
			closeLog, err := opts.setupLogging()
			if err != nil {
				return err
			}
			defer closeLog()

			cam, err := opts.camera()
			if err != nil {
				return err
			}
			s, err := opts.scene()
			if err != nil {
				return err
			}
			return runView(cmd.Context(), newViewer(cam, s, fps), fps)
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVar(&fps, "fps", 60, "target frames per second")
	return cmd
}

// viewer is the state the frame loop owns. Only the frame loop mutates it.
type viewer struct {
	cam     *render.Camera
	scene   *scene.Scene
	look    *LookState
	showHUD bool
	width   int // terminal columns
	height  int // terminal rows
}

func newViewer(cam *render.Camera, s *scene.Scene, fps int) *viewer {
	return &viewer{
		cam:   cam,
		scene: s,
		look:  NewLookState(fps),
	}
}

// apply handles one input event. dt is the current frame's length in seconds.
// It reports false when the viewer should quit.
func (v *viewer) apply(ev inputEvent, dt float64) bool {
	move := moveSpeed * dt
	turn := turnSpeed * dt

	switch ev.act {
	case actForward:
		v.cam.MoveForward(move)
	case actBackward:
		v.cam.MoveBackward(move)
	case actLeft:
		v.cam.MoveLeft(move)
	case actRight:
		v.cam.MoveRight(move)
	case actUp:
		v.cam.MoveUp(move)
	case actDown:
		v.cam.MoveDown(move)
	case actYawLeft:
		v.look.Yaw.Push(turn)
	case actYawRight:
		v.look.Yaw.Push(-turn)
	case actPitchUp:
		v.look.Pitch.Push(turn)
	case actPitchDown:
		v.look.Pitch.Push(-turn)
	case actWireframe:
		v.cam.Wireframe = !v.cam.Wireframe
	case actCull:
		if v.cam.Cull == render.CullBack {
			v.cam.Cull = render.CullNone
		} else {
			v.cam.Cull = render.CullBack
		}
	case actShade:
		if v.cam.Shading == render.ShadeLambert {
			v.cam.Shading = render.ShadeAmbient
		} else {
			v.cam.Shading = render.ShadeLambert
		}
	case actHUD:
		v.showHUD = !v.showHUD
	case actReset:
		v.look.Reset()
		v.cam.Pos = math3d.Zero3()
		v.cam.Rot = math3d.Zero3()
	case actResize:
		v.width, v.height = ev.width, ev.height
	case actQuit:
		return false
	}
	return true
}

// tick advances look springs and scene animation by dt seconds.
func (v *viewer) tick(dt float64) {
	yaw, pitch := v.look.Update()
	v.cam.Rot.Y += yaw
	v.cam.Rot.X += pitch
	scene.AnimateDemo(v.scene, dt)
}

// readInput forwards terminal events as actions until ctx ends or the event
// stream closes.
func readInput(ctx context.Context, events <-chan uv.Event, out chan<- inputEvent) {
	for ev := range events {
		var ie inputEvent
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			ie = inputEvent{act: actResize, width: ev.Width, height: ev.Height}
		case uv.KeyPressEvent:
			act, ok := lookupAction(ev.MatchString)
			if !ok {
				continue
			}
			ie = inputEvent{act: act}
		default:
			continue
		}

		select {
		case out <- ie:
		case <-ctx.Done():
			return
		}
	}
}

func runView(ctx context.Context, v *viewer, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	v.width, v.height = width, height

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan inputEvent, 64)
	go readInput(ctx, term.Events(), events)

	surface := render.NewTerminal(term, width, height)
	hud := NewHUD()

	targetDuration := time.Second / time.Duration(fps)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		// Drain queued input without blocking the frame
	drain:
		for {
			select {
			case ev := <-events:
				if !v.apply(ev, dt) {
					return nil
				}
				if ev.act == actResize {
					term.Erase()
					term.Resize(v.width, v.height)
					surface = render.NewTerminal(term, v.width, v.height)
				}
			default:
				break drain
			}
		}

		v.tick(dt)

		w, h := surface.ImageSize()
		if err := v.cam.RenderTo(surface, w, h, v.scene); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		hud.Frame(time.Since(now))
		hud.Render(os.Stdout, v.width, v.height, v.showHUD, v.cam)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
