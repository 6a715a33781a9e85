package scene

import (
	"github.com/charmbracelet/harmonica"

	"orrery/pkg/math3d"
	"orrery/pkg/render"
)

// Spring tuning for warp glides: critically damped, so the camera settles
// on the destination without overshoot.
const (
	warpFrequency = 4.0
	warpDamping   = 1.0
)

// warpSettleEpsilon is the distance below which a glide snaps to its
// destination and ends.
const warpSettleEpsilon = 1e-3

// WarpNavigator glides the camera between viewpoints with spring physics.
// While a glide is active the eye and center are driven every frame; a new
// destination can preempt a glide in flight.
type WarpNavigator struct {
	cam    *render.Camera
	spring harmonica.Spring

	active       bool
	targetEye    math3d.Vec3
	targetCenter math3d.Vec3
	eyeVel       math3d.Vec3
	centerVel    math3d.Vec3
}

// NewWarpNavigator creates a navigator driving the given camera at the
// given frame rate.
func NewWarpNavigator(cam *render.Camera, fps float64) *WarpNavigator {
	return &WarpNavigator{
		cam:    cam,
		spring: harmonica.NewSpring(harmonica.FPS(int(fps)), warpFrequency, warpDamping),
	}
}

// GlideTo starts (or redirects) a glide towards the destination.
func (n *WarpNavigator) GlideTo(dest WarpDestination) {
	n.targetEye = dest.Position
	n.targetCenter = dest.Target
	n.active = true
}

// Jump teleports the camera immediately, cancelling any glide.
func (n *WarpNavigator) Jump(dest WarpDestination) {
	n.cam.Eye = dest.Position
	n.cam.Center = dest.Target
	n.active = false
	n.eyeVel = math3d.Zero3()
	n.centerVel = math3d.Zero3()
}

// Active reports whether a glide is in flight.
func (n *WarpNavigator) Active() bool {
	return n.active
}

// Update advances the glide by one frame. No-op when idle.
func (n *WarpNavigator) Update() {
	if !n.active {
		return
	}

	n.cam.Eye, n.eyeVel = n.step(n.cam.Eye, n.eyeVel, n.targetEye)
	n.cam.Center, n.centerVel = n.step(n.cam.Center, n.centerVel, n.targetCenter)

	if n.cam.Eye.Sub(n.targetEye).Len() < warpSettleEpsilon &&
		n.cam.Center.Sub(n.targetCenter).Len() < warpSettleEpsilon {
		n.Jump(WarpDestination{Position: n.targetEye, Target: n.targetCenter})
	}
}

func (n *WarpNavigator) step(pos, vel, target math3d.Vec3) (math3d.Vec3, math3d.Vec3) {
	x, vx := n.spring.Update(pos.X, vel.X, target.X)
	y, vy := n.spring.Update(pos.Y, vel.Y, target.Y)
	z, vz := n.spring.Update(pos.Z, vel.Z, target.Z)
	return math3d.V3(x, y, z), math3d.V3(vx, vy, vz)
}
