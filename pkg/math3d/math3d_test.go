package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3Ops(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", V3(1, 2, 3).Add(V3(4, 5, 6)), V3(5, 7, 9)},
		{"sub", V3(4, 5, 6).Sub(V3(1, 2, 3)), V3(3, 3, 3)},
		{"scale", V3(1, -2, 3).Scale(2), V3(2, -4, 6)},
		{"cross x*y=z", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross y*x=-z", V3(0, 1, 0).Cross(V3(1, 0, 0)), V3(0, 0, -1)},
		{"normalize", V3(3, 0, 4).Normalize(), V3(0.6, 0, 0.8)},
		{"normalize zero", Zero3().Normalize(), Zero3()},
		{"negate", V3(1, -2, 3).Negate(), V3(-1, 2, -3)},
		{"lerp mid", V3(0, 0, 0).Lerp(V3(2, 4, 6), 0.5), V3(1, 2, 3)},
		{"lerp start", V3(1, 2, 3).Lerp(V3(9, 9, 9), 0), V3(1, 2, 3)},
		{"lerp end", V3(1, 2, 3).Lerp(V3(9, 9, 9), 1), V3(9, 9, 9)},
		{"reflect", V3(1, -1, 0).Reflect(V3(0, 1, 0)), V3(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3Dot(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, -5, 6)); !almostEqual(got, 12) {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := V3(1, 0, 0).Dot(V3(0, 1, 0)); !almostEqual(got, 0) {
		t.Errorf("orthogonal Dot = %v, want 0", got)
	}
}

func TestVec3Len(t *testing.T) {
	if got := V3(3, 4, 0).Len(); !almostEqual(got, 5) {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := V3(1, 1, 1).Normalize().Len(); !almostEqual(got, 1) {
		t.Errorf("normalized Len = %v, want 1", got)
	}
}

func TestVec2Cross(t *testing.T) {
	// Counterclockwise winding yields positive area.
	if got := V2(1, 0).Cross(V2(0, 1)); !almostEqual(got, 1) {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := V2(0, 1).Cross(V2(1, 0)); !almostEqual(got, -1) {
		t.Errorf("Cross = %v, want -1", got)
	}
}

func TestMat4Identity(t *testing.T) {
	v := V4(1, 2, 3, 1)
	got := Identity().MulVec4(v)
	if got != v {
		t.Errorf("Identity * v = %v, want %v", got, v)
	}
}

func TestMat4MulAssociatesWithVec(t *testing.T) {
	a := RotateY(0.7)
	b := RotateX(-1.2)
	v := V4(1, 2, 3, 1)

	// (a*b)*v must equal a*(b*v).
	got := a.Mul(b).MulVec4(v)
	want := a.MulVec4(b.MulVec4(v))
	for _, pair := range [][2]float64{{got.X, want.X}, {got.Y, want.Y}, {got.Z, want.Z}, {got.W, want.W}} {
		if !almostEqual(pair[0], pair[1]) {
			t.Fatalf("(a*b)*v = %v, a*(b*v) = %v", got, want)
		}
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"rotateX 90: y->z", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"rotateY 90: z->x", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"rotateZ 90: x->y", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.MulVec4(V4FromV3(tt.in, 1)).Vec3()
			if !vecAlmostEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelMatrix(t *testing.T) {
	t.Run("translation and scale", func(t *testing.T) {
		m := ModelMatrix(V3(10, 20, 30), 2, Zero3())
		got := m.MulVec4(V4(1, 0, 0, 1)).Vec3()
		if !vecAlmostEqual(got, V3(12, 20, 30)) {
			t.Errorf("got %v, want (12, 20, 30)", got)
		}
	})

	t.Run("rotation order x then y then z", func(t *testing.T) {
		// Rz·Ry·Rx applied to a point means X rotation happens first.
		m := ModelMatrix(Zero3(), 1, V3(math.Pi/2, math.Pi/2, 0))
		// (0,1,0) -Rx-> (0,0,1) -Ry-> (1,0,0).
		got := m.MulVec4(V4(0, 1, 0, 1)).Vec3()
		if !vecAlmostEqual(got, V3(1, 0, 0)) {
			t.Errorf("got %v, want (1, 0, 0)", got)
		}
	})
}

func TestLookAt(t *testing.T) {
	// Eye on +Z looking at the origin: the origin lands on -Z in view space.
	view := LookAt(V3(0, 0, 5), Zero3(), Up())
	got := view.MulVec4(V4(0, 0, 0, 1)).Vec3()
	if !vecAlmostEqual(got, V3(0, 0, -5)) {
		t.Errorf("origin in view space = %v, want (0, 0, -5)", got)
	}

	// The eye itself maps to the view-space origin.
	got = view.MulVec4(V4(0, 0, 5, 1)).Vec3()
	if !vecAlmostEqual(got, Zero3()) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport(800, 600)

	tests := []struct {
		name string
		ndc  Vec4
		want Vec3
	}{
		{"center", V4(0, 0, 0.5, 1), V3(400, 300, 0.5)},
		{"top left", V4(-1, 1, 0, 1), V3(0, 0, 0)},
		{"bottom right", V4(1, -1, 1, 1), V3(800, 600, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vp.MulVec4(tt.ndc).Vec3()
			if !vecAlmostEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(math.Pi/4, 1, 0.1, 1000)

	near := proj.MulVec4(V4(0, 0, -0.1, 1))
	if !almostEqual(near.Z/near.W, -1) {
		t.Errorf("near plane z/w = %v, want -1", near.Z/near.W)
	}

	far := proj.MulVec4(V4(0, 0, -1000, 1))
	if !almostEqual(far.Z/far.W, 1) {
		t.Errorf("far plane z/w = %v, want 1", far.Z/far.W)
	}
}

func TestMat3Inverse(t *testing.T) {
	t.Run("rotation inverse is transpose", func(t *testing.T) {
		m := Mat3FromMat4(RotateY(0.9))
		inv, ok := m.Inverse()
		if !ok {
			t.Fatal("rotation reported singular")
		}
		tr := m.Transpose()
		for i := range m {
			if !almostEqual(inv[i], tr[i]) {
				t.Fatalf("inverse[%d] = %v, transpose[%d] = %v", i, inv[i], i, tr[i])
			}
		}
	})

	t.Run("singular returns identity", func(t *testing.T) {
		var zero Mat3
		inv, ok := zero.Inverse()
		if ok {
			t.Fatal("zero matrix reported invertible")
		}
		if inv != Identity3() {
			t.Errorf("singular inverse = %v, want identity", inv)
		}
	})

	t.Run("scale inverse undoes scale", func(t *testing.T) {
		m := Mat3FromMat4(ModelMatrix(Zero3(), 4, Zero3()))
		inv, ok := m.Inverse()
		if !ok {
			t.Fatal("scale reported singular")
		}
		got := inv.MulVec3(m.MulVec3(V3(1, 2, 3)))
		if !vecAlmostEqual(got, V3(1, 2, 3)) {
			t.Errorf("round trip = %v, want (1, 2, 3)", got)
		}
	})
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := RotateY(0.5)
	m2 := RotateX(0.3)
	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := ModelMatrix(V3(1, 2, 3), 2, V3(0.1, 0.2, 0.3))
	v := V4(1, 2, 3, 1)
	for b.Loop() {
		_ = m.MulVec4(v)
	}
}
