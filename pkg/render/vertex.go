package render

import "orrery/pkg/math3d"

// Vertex carries a mesh vertex through the pipeline. Position and Normal
// stay in model space so materials can sample noise in stable coordinates;
// ScreenPos and WorldNormal are filled in by TransformVertex.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2

	ScreenPos   math3d.Vec3
	WorldNormal math3d.Vec3
}

// NewVertex creates an untransformed vertex.
func NewVertex(position, normal math3d.Vec3, uv math3d.Vec2) Vertex {
	return Vertex{Position: position, Normal: normal, UV: uv}
}

// Fragment is one candidate pixel produced by the rasterizer. Position and
// Normal are barycentric interpolations of the triangle's model-space
// attributes; Intensity is the diffuse term against the scene light.
type Fragment struct {
	X, Y      int
	Depth     float64
	Position  math3d.Vec3
	Normal    math3d.Vec3
	Intensity float64
}
