package render

import (
	"iter"
	"math"

	"orrery/pkg/math3d"
)

// degenerateArea rejects triangles whose signed screen area is effectively
// zero before any weight division happens.
const degenerateArea = 1e-9

// edge evaluates the signed area function for the edge p->q at point pt.
// Positive means pt lies to the interior side for a positively wound
// triangle.
func edge(p, q, pt math3d.Vec2) float64 {
	return q.Sub(p).Cross(pt.Sub(p))
}

// fillsBoundary reports whether the edge p->q claims pixels whose centers
// land exactly on it. The rule is fixed for the whole surface and
// antisymmetric, so two triangles sharing an edge never both claim (or
// both drop) a center on it.
func fillsBoundary(p, q math3d.Vec2) bool {
	d := q.Sub(p)
	return d.Y > 0 || (d.Y == 0 && d.X > 0)
}

// RasterizeTriangle converts three transformed vertices into the lazy
// sequence of fragments whose pixel centers fall inside the triangle,
// bounded by a width x height target. Both windings rasterize; degenerate
// triangles yield nothing. Depth, model-space position, and normal are
// interpolated linearly in screen space, and each fragment carries the
// diffuse intensity against the scene light.
func RasterizeTriangle(a, b, c Vertex, width, height int, lighting Lighting) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		pa := math3d.V2(a.ScreenPos.X, a.ScreenPos.Y)
		pb := math3d.V2(b.ScreenPos.X, b.ScreenPos.Y)
		pc := math3d.V2(c.ScreenPos.X, c.ScreenPos.Y)

		area := pb.Sub(pa).Cross(pc.Sub(pa))
		if math.Abs(area) < degenerateArea {
			return
		}
		if area < 0 {
			b, c = c, b
			pb, pc = pc, pb
			area = -area
		}

		minX := int(math.Floor(min(pa.X, pb.X, pc.X)))
		maxX := int(math.Ceil(max(pa.X, pb.X, pc.X)))
		minY := int(math.Floor(min(pa.Y, pb.Y, pc.Y)))
		maxY := int(math.Ceil(max(pa.Y, pb.Y, pc.Y)))
		minX = max(minX, 0)
		minY = max(minY, 0)
		maxX = min(maxX, width-1)
		maxY = min(maxY, height-1)

		fillBC := fillsBoundary(pb, pc)
		fillCA := fillsBoundary(pc, pa)
		fillAB := fillsBoundary(pa, pb)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				center := math3d.V2(float64(x)+0.5, float64(y)+0.5)

				wa := edge(pb, pc, center)
				wb := edge(pc, pa, center)
				wc := edge(pa, pb, center)

				if wa < 0 || wb < 0 || wc < 0 {
					continue
				}
				if (wa == 0 && !fillBC) || (wb == 0 && !fillCA) || (wc == 0 && !fillAB) {
					continue
				}

				wa /= area
				wb /= area
				wc /= area

				normal := a.WorldNormal.Scale(wa).
					Add(b.WorldNormal.Scale(wb)).
					Add(c.WorldNormal.Scale(wc)).
					Normalize()

				if !yield(Fragment{
					X:     x,
					Y:     y,
					Depth: wa*a.ScreenPos.Z + wb*b.ScreenPos.Z + wc*c.ScreenPos.Z,
					Position: a.Position.Scale(wa).
						Add(b.Position.Scale(wb)).
						Add(c.Position.Scale(wc)),
					Normal:    normal,
					Intensity: clamp01(normal.Dot(lighting.Direction)),
				}) {
					return
				}
			}
		}
	}
}
