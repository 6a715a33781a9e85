package render

// Background supplies a panoramic color for a view direction given in
// degrees: longitude in [-180, 180), latitude in [-90, 90).
type Background interface {
	Sample(lon, lat float64) Color
}

// Renderer owns a framebuffer and drives the pipeline for one object at a
// time: transform, rasterize, shade, depth-tested write. Single-threaded
// by design; every stage is pure, so the framebuffer is the only mutable
// state.
type Renderer struct {
	fb       *Framebuffer
	lighting Lighting
}

// NewRenderer creates a renderer targeting a fresh framebuffer.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		fb:       NewFramebuffer(width, height),
		lighting: DefaultLighting(),
	}
}

// Framebuffer exposes the render target for presentation.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Clear resets the target for a new frame.
func (r *Renderer) Clear() {
	r.fb.Clear(Black)
}

// DrawBackground paints the panorama behind everything by mapping each
// pixel to a view direction. Only colors are written; the depth plane is
// untouched, so geometry drawn afterwards always covers it.
func (r *Renderer) DrawBackground(bg Background) {
	w := float64(r.fb.Width)
	h := float64(r.fb.Height)
	for y := 0; y < r.fb.Height; y++ {
		lat := float64(y)/h*180 - 90
		for x := 0; x < r.fb.Width; x++ {
			lon := float64(x)/w*360 - 180
			r.fb.SetBackground(x, y, bg.Sample(lon, lat))
		}
	}
}

// Draw renders a triangle soup with the given per-draw state. Vertices are
// consumed in groups of three; a trailing partial group is dropped.
func (r *Renderer) Draw(vertices []Vertex, u *Uniforms) {
	transformed := make([]Vertex, len(vertices))
	for i, v := range vertices {
		transformed[i] = TransformVertex(v, u)
	}

	for i := 0; i+2 < len(transformed); i += 3 {
		a, b, c := transformed[i], transformed[i+1], transformed[i+2]
		for frag := range RasterizeTriangle(a, b, c, r.fb.Width, r.fb.Height, r.lighting) {
			r.fb.SetPoint(frag.X, frag.Y, frag.Depth, Shade(frag, u))
		}
	}
}
