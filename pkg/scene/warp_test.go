package scene

import (
	"testing"

	"orrery/pkg/math3d"
	"orrery/pkg/render"
)

func TestWarpGlideConverges(t *testing.T) {
	cam := render.NewCamera(math3d.V3(0, 0, 5), math3d.Zero3())
	nav := NewWarpNavigator(cam, 60)

	dest := WarpDestination{
		Position: math3d.V3(0, 50, 50),
		Target:   math3d.Zero3(),
	}
	nav.GlideTo(dest)

	if !nav.Active() {
		t.Fatal("glide did not start")
	}

	for i := 0; i < 3000 && nav.Active(); i++ {
		nav.Update()
	}

	if nav.Active() {
		t.Fatal("glide never settled")
	}
	if cam.Eye != dest.Position {
		t.Errorf("eye = %v, want exactly %v after settle snap", cam.Eye, dest.Position)
	}
	if cam.Center != dest.Target {
		t.Errorf("center = %v, want %v", cam.Center, dest.Target)
	}
}

func TestWarpGlideMonotoneApproach(t *testing.T) {
	// Critically damped springs never overshoot, so distance to the
	// destination shrinks every frame.
	cam := render.NewCamera(math3d.V3(0, 0, 5), math3d.Zero3())
	nav := NewWarpNavigator(cam, 60)

	dest := WarpDestination{Position: math3d.V3(10, 0, 0), Target: math3d.V3(10, 0, 0)}
	nav.GlideTo(dest)

	prev := cam.Eye.Sub(dest.Position).Len()
	for i := 0; i < 200 && nav.Active(); i++ {
		nav.Update()
		d := cam.Eye.Sub(dest.Position).Len()
		if d > prev+1e-9 {
			t.Fatalf("distance grew at frame %d: %v -> %v", i, prev, d)
		}
		prev = d
	}
}

func TestWarpJumpIsImmediate(t *testing.T) {
	cam := render.NewCamera(math3d.V3(0, 0, 5), math3d.Zero3())
	nav := NewWarpNavigator(cam, 60)

	dest := WarpDestination{Position: math3d.V3(1, 2, 3), Target: math3d.V3(4, 5, 6)}
	nav.Jump(dest)

	if cam.Eye != dest.Position || cam.Center != dest.Target {
		t.Errorf("camera = %v -> %v, want %v -> %v", cam.Eye, cam.Center, dest.Position, dest.Target)
	}
	if nav.Active() {
		t.Error("jump left a glide active")
	}
}

func TestWarpRedirectMidFlight(t *testing.T) {
	cam := render.NewCamera(math3d.V3(0, 0, 5), math3d.Zero3())
	nav := NewWarpNavigator(cam, 60)

	nav.GlideTo(WarpDestination{Position: math3d.V3(0, 50, 50), Target: math3d.Zero3()})
	for range 30 {
		nav.Update()
	}

	second := WarpDestination{Position: math3d.V3(0, 0, 6), Target: math3d.Zero3()}
	nav.GlideTo(second)
	for i := 0; i < 3000 && nav.Active(); i++ {
		nav.Update()
	}

	if cam.Eye != second.Position {
		t.Errorf("eye = %v, want %v", cam.Eye, second.Position)
	}
}
