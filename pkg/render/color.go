// Package render implements the software rasterization pipeline: colors,
// framebuffer, vertex transform, triangle rasterization, shading, and the
// orbit camera.
package render

import "math"

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Hex creates a color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		uint8(v >> 16),
		uint8(v >> 8),
		uint8(v),
	}
}

var (
	// Black is the framebuffer clear color.
	Black = Color{0, 0, 0}
	// White is full intensity on all channels.
	White = Color{255, 255, 255}
)

// Hex returns the color packed as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Lerp linearly interpolates towards other by t, clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		lerpChannel(c.R, other.R, t),
		lerpChannel(c.G, other.G, t),
		lerpChannel(c.B, other.B, t),
	}
}

// Blend mixes other into c by weight: weight 0 keeps c, weight 1 gives other.
func (c Color) Blend(other Color, weight float64) Color {
	return c.Lerp(other, weight)
}

// Scale multiplies each channel by factor, clamping to the valid range.
// Negative factors are treated as zero.
func (c Color) Scale(factor float64) Color {
	if factor < 0 {
		factor = 0
	}
	return Color{
		scaleChannel(c.R, factor),
		scaleChannel(c.G, factor),
		scaleChannel(c.B, factor),
	}
}

// Add returns the saturating sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{
		satAdd(c.R, other.R),
		satAdd(c.G, other.G),
		satAdd(c.B, other.B),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func scaleChannel(v uint8, factor float64) uint8 {
	s := float64(v) * factor
	if s > 255 {
		return 255
	}
	return uint8(math.Round(s))
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
