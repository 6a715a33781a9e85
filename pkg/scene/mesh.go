// Package scene holds everything around the core pipeline: meshes and
// their loaders, the panoramic background, the planetary system, warp
// navigation, and scene configuration.
package scene

import (
	"math"

	"orrery/pkg/math3d"
	"orrery/pkg/render"
)

// Mesh is indexed triangle geometry in model space.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    [][3]int

	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds the loaded vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// NewMesh creates an empty named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// NewSphere generates a unit UV sphere with the given resolution. Normals
// are exact (position direction), so lighting stays smooth regardless of
// tessellation.
func NewSphere(stacks, sectors int) *Mesh {
	m := NewMesh("sphere")

	for i := 0; i <= stacks; i++ {
		phi := math.Pi/2 - math.Pi*float64(i)/float64(stacks)
		y := math.Sin(phi)
		r := math.Cos(phi)

		for j := 0; j <= sectors; j++ {
			theta := 2 * math.Pi * float64(j) / float64(sectors)
			p := math3d.V3(r*math.Cos(theta), y, r*math.Sin(theta))
			m.Vertices = append(m.Vertices, MeshVertex{
				Position: p,
				Normal:   p,
				UV: math3d.V2(
					float64(j)/float64(sectors),
					float64(i)/float64(stacks),
				),
			})
		}
	}

	ring := sectors + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := i*ring + j
			b := a + ring

			// Degenerate cap triangles are skipped.
			if i != 0 {
				m.Faces = append(m.Faces, [3]int{a, b, a + 1})
			}
			if i != stacks-1 {
				m.Faces = append(m.Faces, [3]int{a + 1, b, b + 1})
			}
		}
	}

	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// CalculateSmoothNormals accumulates area-weighted face normals per vertex.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for _, f := range m.Faces {
		v0 := m.Vertices[f[0]].Position
		v1 := m.Vertices[f[1]].Position
		v2 := m.Vertices[f[2]].Position

		n := v1.Sub(v0).Cross(v2.Sub(v0))
		m.Vertices[f[0]].Normal = m.Vertices[f[0]].Normal.Add(n)
		m.Vertices[f[1]].Normal = m.Vertices[f[1]].Normal.Add(n)
		m.Vertices[f[2]].Normal = m.Vertices[f[2]].Normal.Add(n)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Triangles expands the indexed mesh into the triangle soup the renderer
// consumes, three vertices per face.
func (m *Mesh) Triangles() []render.Vertex {
	out := make([]render.Vertex, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, idx := range f {
			v := m.Vertices[idx]
			out = append(out, render.NewVertex(v.Position, v.Normal, v.UV))
		}
	}
	return out
}
