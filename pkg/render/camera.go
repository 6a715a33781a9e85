package render

import (
	"math"

	"orrery/pkg/math3d"
)

// minOrbitRadius keeps the eye from crossing the center while zooming.
const minOrbitRadius = 0.1

// maxPitch stops the orbit just short of the poles, where eye-center would
// align with up and the view matrix would degenerate.
var maxPitch = math.Pi/2 - 0.01

// Camera is a value holder for an orbiting viewpoint. Angles are not
// cached: every orbit call rederives them from the current eye-center
// vector, so a zero-delta orbit is idempotent.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3
}

// NewCamera creates a camera at eye looking at center with world up.
func NewCamera(eye, center math3d.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: math3d.Up()}
}

// Orbit rotates the eye around the center at fixed radius: yaw around the
// up axis, pitch towards the poles, clamped before they are reached.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z) + deltaYaw
	pitch := math.Asin(offset.Y/radius) + deltaPitch
	pitch = math.Max(-maxPitch, math.Min(maxPitch, pitch))

	c.Eye = c.Center.Add(math3d.V3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
}

// Zoom moves the eye along the view axis. Positive delta moves towards the
// center; the orbit radius never drops below the minimum floor.
func (c *Camera) Zoom(delta float64) {
	toCenter := c.Center.Sub(c.Eye)
	radius := toCenter.Len()
	if radius == 0 {
		return
	}
	dir := toCenter.Scale(1 / radius)

	newRadius := radius - delta
	if newRadius < minOrbitRadius {
		newRadius = minOrbitRadius
	}
	c.Eye = c.Center.Sub(dir.Scale(newRadius))
}

// MoveCenter pans eye and center together, preserving view direction and
// radius.
func (c *Camera) MoveCenter(offset math3d.Vec3) {
	c.Eye = c.Eye.Add(offset)
	c.Center = c.Center.Add(offset)
}

// Radius returns the current orbit radius.
func (c *Camera) Radius() float64 {
	return c.Eye.Sub(c.Center).Len()
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Center.Sub(c.Eye).Normalize()
}

// ViewMatrix derives the right-handed look-at matrix for the current pose.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return math3d.LookAt(c.Eye, c.Center, c.Up)
}
