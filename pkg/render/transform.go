package render

import "orrery/pkg/math3d"

// minW guards the perspective divide. Vertices landing exactly on the
// camera plane would otherwise divide by zero; clamping keeps the vertex
// (hugely displaced, then discarded by bounds checks) instead of
// desynchronizing triangle grouping.
const minW = 1e-9

// TransformVertex runs the vertex stage: clip = projection·view·model·pos,
// perspective divide, then the viewport transform. The normal is carried
// through the inverse-transpose model submatrix. Pure function; the input
// vertex is not modified.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	clip := u.MVP.MulVec4(math3d.V4FromV3(v.Position, 1))

	w := clip.W
	if w < minW && w > -minW {
		if w < 0 {
			w = -minW
		} else {
			w = minW
		}
	}
	ndc := math3d.V4(clip.X/w, clip.Y/w, clip.Z/w, 1)

	out := v
	out.ScreenPos = u.Viewport.MulVec4(ndc).Vec3()
	out.WorldNormal = u.NormalMat.MulVec3(v.Normal).Normalize()
	return out
}
