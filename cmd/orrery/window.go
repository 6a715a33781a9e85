package main

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orrery/pkg/math3d"
	"orrery/pkg/scene"
)

const (
	orbitStep = math.Pi / 50
	panStep   = 1.0
	zoomStep  = 0.1
)

var warpKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// game adapts the scene loop to ebiten's update/draw cycle.
type game struct {
	world  *scene.World
	width  int
	height int
	pixels []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cam := g.world.Camera
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		cam.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		cam.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Orbit(0, -orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Orbit(0, orbitStep)
	}

	var pan math3d.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		pan.X -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		pan.X += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		pan.Y += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		pan.Y -= panStep
	}
	if pan.Len() > 0 {
		cam.MoveCenter(pan)
	}

	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		cam.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		cam.Zoom(-zoomStep)
	}

	for i, key := range warpKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.world.WarpTo(i)
		}
	}

	g.world.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.world.RenderFrame()
	g.world.Framebuffer().EncodeRGBA(g.pixels)
	screen.WritePixels(g.pixels)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func runWindow(world *scene.World, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Space Travel")

	g := &game{
		world:  world,
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
