package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// farDepth is the clear value for the depth buffer. Geometry lands in
// [-1, 1] after projection, so anything rasterized wins against it.
const farDepth = 1.0

// Framebuffer holds row-major color and depth planes of equal size.
type Framebuffer struct {
	Width  int
	Height int
	pixels []Color
	depth  []float64
}

// NewFramebuffer creates a cleared framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear(Black)
	return fb
}

// Clear fills the color plane with c and resets every depth to the far
// sentinel.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
		fb.depth[i] = farDepth
	}
}

// SetPoint writes a shaded pixel if it passes the depth test: the write
// happens only when depth is strictly less than the stored value. Points
// outside the buffer are discarded.
func (fb *Framebuffer) SetPoint(x, y int, depth float64, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth < fb.depth[i] {
		fb.pixels[i] = c
		fb.depth[i] = depth
	}
}

// SetBackground writes a color without touching the depth buffer, so any
// geometry rasterized afterwards still covers it.
func (fb *Framebuffer) SetBackground(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = c
}

// At returns the color at (x, y), or black if out of bounds.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Black
	}
	return fb.pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or the far sentinel if out
// of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return farDepth
	}
	return fb.depth[y*fb.Width+x]
}

// EncodeRGBA appends the color plane as RGBA8 bytes into dst, which must
// hold Width*Height*4 bytes. Suitable for direct texture uploads.
func (fb *Framebuffer) EncodeRGBA(dst []byte) {
	for i, p := range fb.pixels {
		dst[i*4] = p.R
		dst[i*4+1] = p.G
		dst[i*4+2] = p.B
		dst[i*4+3] = 255
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.pixels[y*fb.Width+x]
			img.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, 255})
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
