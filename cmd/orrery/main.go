// orrery - Procedural solar system renderer
// A software-rasterized star system with noise-shaded planets, viewable
// in a window or directly in the terminal.
//
// Controls:
//
//	Left/Right  - Orbit the camera around its target
//	W/S         - Pitch the orbit up/down
//	A/D         - Pan left/right
//	Q/E         - Pan up/down
//	Up/Down     - Zoom in/out
//	1-4         - Warp to a stock viewpoint
//	Esc         - Quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"orrery/pkg/noise"
	"orrery/pkg/render"
	"orrery/pkg/scene"
)

var (
	scenePath    = flag.String("scene", "", "Path to a YAML scene file")
	panoramaPath = flag.String("panorama", "", "Path to an equirectangular background image (PNG/JPG)")
	shipPath     = flag.String("ship", "", "Path to the chase ship model (.obj or .glb)")
	width        = flag.Int("width", 800, "Framebuffer width in pixels (window mode)")
	height       = flag.Int("height", 600, "Framebuffer height in pixels (window mode)")
	termMode     = flag.Bool("term", false, "Render to the terminal instead of a window")
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	verbose      = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orrery - Procedural solar system renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orrery [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Pitch up/down\n")
		fmt.Fprintf(os.Stderr, "  A/D/Q/E     - Pan\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Zoom\n")
		fmt.Fprintf(os.Stderr, "  1-4         - Warp to a viewpoint\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := &scene.Config{}
	if *scenePath != "" {
		loaded, err := scene.LoadConfig(*scenePath)
		if err != nil {
			return err
		}
		cfg = loaded
		slog.Info("scene loaded", "path", *scenePath, "bodies", len(cfg.Bodies))
	}

	fbWidth, fbHeight := *width, *height
	if cfg.Width > 0 {
		fbWidth = cfg.Width
	}
	if cfg.Height > 0 {
		fbHeight = cfg.Height
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = noise.DefaultSeed
	}
	sampler := noise.New(seed)

	background, err := buildBackground(cfg, sampler)
	if err != nil {
		return err
	}

	ship, err := loadShip(cfg)
	if err != nil {
		return err
	}

	build := func(w, h int) *scene.World {
		return scene.NewWorld(scene.WorldConfig{
			Width:      w,
			Height:     h,
			Bodies:     cfg.BuildBodies(),
			Warps:      scene.DefaultWarps(),
			Ship:       ship,
			Background: background,
			Noise:      sampler,
			FPS:        float64(*targetFPS),
		})
	}

	if *termMode {
		return runTerminal(build, *targetFPS)
	}

	world := build(fbWidth, fbHeight)
	slog.Debug("world ready", "width", fbWidth, "height", fbHeight, "seed", seed)
	return runWindow(world, fbWidth, fbHeight)
}

func buildBackground(cfg *scene.Config, sampler *noise.Sampler) (render.Background, error) {
	path := *panoramaPath
	if path == "" {
		path = cfg.Panorama
	}
	if path == "" {
		return scene.NewStarfield(sampler), nil
	}

	p, err := scene.LoadPanorama(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("panorama loaded", "path", path)
	return p, nil
}

func loadShip(cfg *scene.Config) (*scene.Mesh, error) {
	path := *shipPath
	if path == "" {
		path = cfg.Ship
	}
	if path == "" {
		return nil, nil
	}

	var (
		mesh *scene.Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		mesh, err = scene.LoadGLB(path)
	case ".obj":
		mesh, err = scene.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported ship format %q (use .obj or .glb)", ext)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("ship loaded", "path", path, "triangles", mesh.TriangleCount())
	return mesh, nil
}
