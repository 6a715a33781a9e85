package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"orrery/pkg/math3d"
	"orrery/pkg/scene"
)

// runTerminal drives the scene with half-block cells: every terminal row
// carries two framebuffer rows, so the world is built at double the
// terminal height.
func runTerminal(build func(width, height int) *scene.World, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	world := build(width, height*2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)

				// Keep the camera pose across the rebuild.
				cam := *world.Camera
				world = build(width, height*2)
				*world.Camera = cam

			case uv.KeyPressEvent:
				cam := world.Camera
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left"):
					cam.Orbit(orbitStep, 0)
				case ev.MatchString("right"):
					cam.Orbit(-orbitStep, 0)
				case ev.MatchString("w"):
					cam.Orbit(0, -orbitStep)
				case ev.MatchString("s"):
					cam.Orbit(0, orbitStep)
				case ev.MatchString("a"):
					cam.MoveCenter(math3d.V3(-panStep, 0, 0))
				case ev.MatchString("d"):
					cam.MoveCenter(math3d.V3(panStep, 0, 0))
				case ev.MatchString("q"):
					cam.MoveCenter(math3d.V3(0, panStep, 0))
				case ev.MatchString("e"):
					cam.MoveCenter(math3d.V3(0, -panStep, 0))
				case ev.MatchString("up"):
					cam.Zoom(zoomStep)
				case ev.MatchString("down"):
					cam.Zoom(-zoomStep)
				case ev.MatchString("1"):
					world.WarpTo(0)
				case ev.MatchString("2"):
					world.WarpTo(1)
				case ev.MatchString("3"):
					world.WarpTo(2)
				case ev.MatchString("4"):
					world.WarpTo(3)
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(fps)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		start := time.Now()

		world.Step()
		world.RenderFrame()
		world.Framebuffer().Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(start); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
