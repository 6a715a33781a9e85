package scene

import (
	"math"
	"math/rand/v2"

	"orrery/pkg/math3d"
	"orrery/pkg/render"
)

// Projection constants shared by every frame.
const (
	fovY = 45 * math.Pi / 180
	near = 0.1
	far  = 1000
)

// Ship placement relative to the camera.
const (
	shipDistance = 1.5
	shipDrop     = -0.5
	shipScale    = 0.05
)

// Body is one orbiting planet (or the central star, with orbit radius 0).
type Body struct {
	Name          string
	OrbitRadius   float64
	OrbitSpeed    float64
	OrbitPhase    float64
	RotationSpeed float64
	Scale         float64
	Mode          render.ShaderMode
}

// Position returns the body's circular orbit position at the given frame.
func (b Body) Position(time float64) math3d.Vec3 {
	angle := b.OrbitSpeed*time + b.OrbitPhase
	return math3d.V3(
		b.OrbitRadius*math.Cos(angle),
		0,
		b.OrbitRadius*math.Sin(angle),
	)
}

// Rotation returns the body's spin angles at the given frame.
func (b Body) Rotation(time float64) math3d.Vec3 {
	return math3d.V3(0, b.RotationSpeed*time, 0)
}

// DefaultBodies builds the stock system: the star and four planets with
// randomized orbit phases so runs don't start aligned.
func DefaultBodies() []Body {
	phase := func() float64 { return rand.Float64() * 2 * math.Pi }
	return []Body{
		{Name: "sol", Scale: 4, Mode: render.ShaderStar},
		{Name: "rocky", OrbitRadius: 10, OrbitSpeed: 0.02, OrbitPhase: phase(), RotationSpeed: 0.1, Scale: 2.4, Mode: render.ShaderBrokenTerrain},
		{Name: "icy", OrbitRadius: 15, OrbitSpeed: 0.01, OrbitPhase: phase(), RotationSpeed: 0.1, Scale: 1.8, Mode: render.ShaderIcy},
		{Name: "terra", OrbitRadius: 23.8, OrbitSpeed: 0.015, OrbitPhase: phase(), RotationSpeed: 0.1, Scale: 2.2, Mode: render.ShaderEarthLike},
		{Name: "ember", OrbitRadius: 29.2, OrbitSpeed: 0.015, OrbitPhase: phase(), RotationSpeed: 0.01, Scale: 1.5, Mode: render.ShaderVolcanic},
	}
}

// WarpDestination is a camera pose the navigator can jump or glide to.
type WarpDestination struct {
	Name     string
	Position math3d.Vec3
	Target   math3d.Vec3
}

// DefaultWarps lists the stock viewpoints bound to the number keys.
func DefaultWarps() []WarpDestination {
	return []WarpDestination{
		{Name: "overview", Position: math3d.V3(0, 50, 50), Target: math3d.Zero3()},
		{Name: "sol", Position: math3d.V3(0, 0, 6), Target: math3d.Zero3()},
		{Name: "rocky", Position: math3d.V3(24.834557, 3.2328124, 0.9333064), Target: math3d.V3(10, 0, 0)},
		{Name: "icy", Position: math3d.V3(-1.149943e-6, 2.3341978, 44.307625), Target: math3d.V3(0, 0, 18)},
	}
}

// World ties the scene together: camera, bodies, meshes, background, and
// the render target. One World renders one viewport.
type World struct {
	Camera *render.Camera
	Bodies []Body
	Warps  []WarpDestination

	renderer   *render.Renderer
	sphere     []render.Vertex
	ship       []render.Vertex
	background render.Background
	noise      render.NoiseSource
	warp       *WarpNavigator

	projection math3d.Mat4
	viewport   math3d.Mat4
	time       float64
}

// WorldConfig collects the pieces NewWorld assembles.
type WorldConfig struct {
	Width, Height int
	Bodies        []Body
	Warps         []WarpDestination
	Ship          *Mesh
	Background    render.Background
	Noise         render.NoiseSource
	FPS           float64
}

// NewWorld builds a scene with the camera at the stock starting pose.
func NewWorld(cfg WorldConfig) *World {
	cam := render.NewCamera(math3d.V3(0, 0, 5), math3d.Zero3())

	sphere := NewSphere(32, 32)
	ship := cfg.Ship
	if ship == nil {
		ship = NewSphere(8, 8)
	}

	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}

	return &World{
		Camera:     cam,
		Bodies:     cfg.Bodies,
		Warps:      cfg.Warps,
		renderer:   render.NewRenderer(cfg.Width, cfg.Height),
		sphere:     sphere.Triangles(),
		ship:       ship.Triangles(),
		background: cfg.Background,
		noise:      cfg.Noise,
		warp:       NewWarpNavigator(cam, fps),
		projection: math3d.Perspective(fovY, float64(cfg.Width)/float64(cfg.Height), near, far),
		viewport:   math3d.Viewport(float64(cfg.Width), float64(cfg.Height)),
	}
}

// Framebuffer exposes the render target for presentation.
func (w *World) Framebuffer() *render.Framebuffer {
	return w.renderer.Framebuffer()
}

// Time returns the current frame counter.
func (w *World) Time() float64 {
	return w.time
}

// WarpTo starts a glide towards the destination at the given index.
// Out-of-range indices are clamped.
func (w *World) WarpTo(index int) {
	if len(w.Warps) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(w.Warps) {
		index = len(w.Warps) - 1
	}
	w.warp.GlideTo(w.Warps[index])
}

// Step advances one frame: warp glide first, then the clock.
func (w *World) Step() {
	w.warp.Update()
	w.time++
}

// RenderFrame draws the background, every body, and the chase ship into
// the framebuffer.
func (w *World) RenderFrame() {
	w.renderer.Clear()
	if w.background != nil {
		w.renderer.DrawBackground(w.background)
	}

	view := w.Camera.ViewMatrix()

	for _, body := range w.Bodies {
		model := math3d.ModelMatrix(body.Position(w.time), body.Scale, body.Rotation(w.time))
		u := render.NewUniforms(model, view, w.projection, w.viewport, w.time, w.noise, body.Mode)
		w.renderer.Draw(w.sphere, u)
	}

	// The ship rides just ahead of and below the camera.
	shipPos := w.Camera.Eye.
		Add(w.Camera.Forward().Scale(shipDistance)).
		Add(math3d.V3(0, shipDrop, 0))
	model := math3d.ModelMatrix(shipPos, shipScale, math3d.Zero3())
	u := render.NewUniforms(model, view, w.projection, w.viewport, w.time, w.noise, render.ShaderHull)
	w.renderer.Draw(w.ship, u)
}
