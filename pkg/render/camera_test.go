package render

import (
	"math"
	"testing"

	"orrery/pkg/math3d"
)

func vecClose(a, b math3d.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestCameraOrbitZeroDeltaIdempotent(t *testing.T) {
	cam := NewCamera(math3d.V3(3, 4, 12), math3d.V3(1, 1, 1))
	eye, center, up := cam.Eye, cam.Center, cam.Up

	for range 10 {
		cam.Orbit(0, 0)
	}

	if !vecClose(cam.Eye, eye) {
		t.Errorf("eye drifted: %v, want %v", cam.Eye, eye)
	}
	if cam.Center != center || cam.Up != up {
		t.Errorf("center/up changed: %v %v", cam.Center, cam.Up)
	}
}

func TestCameraOrbitKeepsRadius(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3())
	want := cam.Radius()

	for _, deltas := range [][2]float64{{0.3, 0}, {0, 0.2}, {-1.1, 0.4}, {2.7, -0.9}} {
		cam.Orbit(deltas[0], deltas[1])
		if got := cam.Radius(); math.Abs(got-want) > 1e-9 {
			t.Errorf("radius after orbit%v = %v, want %v", deltas, got, want)
		}
	}
}

func TestCameraOrbitFullYawReturns(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 2, 10), math3d.Zero3())
	eye := cam.Eye

	steps := 8
	for range steps {
		cam.Orbit(2*math.Pi/float64(steps), 0)
	}

	if cam.Eye.Sub(eye).Len() > 1e-6 {
		t.Errorf("eye after full yaw = %v, want %v", cam.Eye, eye)
	}
}

func TestCameraOrbitPitchClamp(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3())

	// Pitching far past the pole must stop short of it, never flip.
	cam.Orbit(0, 10)

	offset := cam.Eye.Sub(cam.Center)
	if offset.Y >= cam.Radius() {
		t.Errorf("eye reached the pole: %v", cam.Eye)
	}
	// The view matrix stays well-formed.
	view := cam.ViewMatrix()
	for i, v := range view {
		if math.IsNaN(v) {
			t.Fatalf("view[%d] is NaN after pitch clamp", i)
		}
	}
}

func TestCameraZoomRoundTrip(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 3, 8), math3d.Zero3())
	eye := cam.Eye

	cam.Zoom(2)
	cam.Zoom(-2)

	if !vecClose(cam.Eye, eye) {
		t.Errorf("eye after zoom round trip = %v, want %v", cam.Eye, eye)
	}
}

func TestCameraZoomFloor(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 5), math3d.Zero3())

	cam.Zoom(100)

	if got := cam.Radius(); math.Abs(got-minOrbitRadius) > 1e-9 {
		t.Errorf("radius after overzoom = %v, want %v", got, minOrbitRadius)
	}
	// The eye stays on the original side of the center.
	if cam.Eye.Z <= 0 {
		t.Errorf("eye crossed the center: %v", cam.Eye)
	}
}

func TestCameraMoveCenter(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3())
	forward := cam.Forward()
	radius := cam.Radius()

	cam.MoveCenter(math3d.V3(3, -2, 7))

	if !vecClose(cam.Forward(), forward) {
		t.Errorf("forward changed: %v, want %v", cam.Forward(), forward)
	}
	if math.Abs(cam.Radius()-radius) > 1e-9 {
		t.Errorf("radius changed: %v, want %v", cam.Radius(), radius)
	}
	if cam.Center != (math3d.V3(3, -2, 7)) {
		t.Errorf("center = %v, want (3, -2, 7)", cam.Center)
	}
}
