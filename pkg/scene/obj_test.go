package scene

import (
	"strings"
	"testing"
)

const quadOBJ = `# simple quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
f 1//1 3//1 4//1
`

func TestParseOBJ(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if got := m.TriangleCount(); got != 2 {
		t.Errorf("triangle count = %d, want 2", got)
	}
	if got := len(m.Vertices); got != 4 {
		t.Errorf("vertex count = %d, want 4 (shared corners deduplicated)", got)
	}
	for i, v := range m.Vertices {
		if v.Normal != v3([3]float64{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestParseOBJQuadFaceTriangulated(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if got := m.TriangleCount(); got != 2 {
		t.Errorf("quad face produced %d triangles, want 2", got)
	}
	// No vn lines: smooth normals are reconstructed.
	for i, v := range m.Vertices {
		if v.Normal.Len() < 0.99 {
			t.Errorf("vertex %d normal not reconstructed: %v", i, v.Normal)
		}
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("triangle count = %d, want 1", got)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"bad component", "v 0 zero 0\nf 1 1 1\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
