package render

import (
	"log/slog"

	"orrery/pkg/math3d"
)

// NoiseSource supplies the procedural noise fields the materials sample.
// Implementations must be deterministic for a given seed.
type NoiseSource interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// Uniforms is the per-draw shader state. Build it with NewUniforms so the
// combined matrix and the normal matrix are computed once per draw call
// rather than per vertex.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	// MVP is Projection * View * Model.
	MVP math3d.Mat4
	// NormalMat is the inverse transpose of Model's upper 3x3, so normals
	// stay perpendicular under non-uniform scale.
	NormalMat math3d.Mat3

	// Time advances the animated materials, in frames.
	Time float64
	// Noise feeds the procedural materials.
	Noise NoiseSource
	// Mode selects the material for the draw call.
	Mode ShaderMode
}

// NewUniforms assembles the draw state and precomputes derived matrices.
func NewUniforms(model, view, projection, viewport math3d.Mat4, time float64, noise NoiseSource, mode ShaderMode) *Uniforms {
	inv, ok := math3d.Mat3FromMat4(model).Inverse()
	if !ok {
		slog.Debug("singular model matrix, normals left untransformed")
	}
	return &Uniforms{
		Model:      model,
		View:       view,
		Projection: projection,
		Viewport:   viewport,
		MVP:        projection.Mul(view).Mul(model),
		NormalMat:  inv.Transpose(),
		Time:       time,
		Noise:      noise,
		Mode:       mode,
	}
}

// Lighting configures the scene's single directional light.
type Lighting struct {
	// Direction points from the surface towards the light, normalized.
	Direction math3d.Vec3
}

// DefaultLighting points the ambient light down the view axis so bodies
// facing the camera read at full intensity.
func DefaultLighting() Lighting {
	return Lighting{Direction: math3d.V3(0, 0, 1)}
}

// materialLightDir is the fixed key light every material shades against.
var materialLightDir = math3d.V3(1, 1, 0.5).Normalize()
