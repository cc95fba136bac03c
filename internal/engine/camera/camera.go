// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/engine/input"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default first-person settings.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MinZoom  = 1.0
	MaxZoom  = 45.0
	MaxPitch = 89.0
)

// FPSCamera is a free-flying camera driven by Euler angles (degrees).
type FPSCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32
	Sensitivity float32
	Zoom        float32 // vertical field of view in degrees
}

// NewFPSCamera creates a camera at position looking down -Z.
func NewFPSCamera(position mgl32.Vec3) *FPSCamera {
	c := &FPSCamera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current orientation.
func (c *FPSCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxView returns the view matrix with its translation removed.
func (c *FPSCamera) SkyboxView() mgl32.Mat4 {
	return c.ViewMatrix().Mat3().Mat4()
}

// ProjectionMatrix returns a perspective projection using the current zoom.
func (c *FPSCamera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera along one axis, scaled by frame time.
func (c *FPSCamera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset in pixels.
// dy is positive when the mouse moves up.
func (c *FPSCamera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

// ProcessScroll narrows or widens the field of view.
func (c *FPSCamera) ProcessScroll(dy float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

// HandleInput applies WASD/QE movement, mouse look and scroll zoom for one frame.
// Mouse look is only applied when look is true (cursor captured).
func (c *FPSCamera) HandleInput(in *input.Input, dt float32, look bool) {
	bindings := [...]struct {
		key input.Key
		dir Direction
	}{
		{input.KeyW, Forward},
		{input.KeyS, Backward},
		{input.KeyA, Left},
		{input.KeyD, Right},
		{input.KeyE, Up},
		{input.KeyQ, Down},
	}
	for _, b := range bindings {
		if in.IsDown(b.key) {
			c.ProcessKeyboard(b.dir, dt)
		}
	}

	if look {
		if dx, dy := in.MouseDelta(); dx != 0 || dy != 0 {
			c.ProcessMouseMovement(dx, dy, true)
		}
	}

	if _, sy := in.Scroll(); sy != 0 {
		c.ProcessScroll(sy)
	}
}

// updateVectors recomputes Front, Right and Up from yaw and pitch.
func (c *FPSCamera) updateVectors() {
	c.Front = FrontFromEuler(c.Yaw, c.Pitch)
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// FrontFromEuler returns the unit look direction for yaw and pitch in degrees.
func FrontFromEuler(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(gomath.Cos(y) * gomath.Cos(p)),
		float32(gomath.Sin(p)),
		float32(gomath.Sin(y) * gomath.Cos(p)),
	}.Normalize()
}

// OrbitingView returns a view matrix circling the origin at the given radius,
// t seconds into the orbit.
func OrbitingView(radius float32, t float64) mgl32.Mat4 {
	camX := float32(gomath.Sin(t)) * radius
	camZ := float32(gomath.Cos(t)) * radius
	return mgl32.LookAtV(mgl32.Vec3{camX, 0, camZ}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}
