package examples

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/engine/camera"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
)

// Coordinates tilts a textured plane back and rotates it, projected with
// model, view and projection matrices.
type Coordinates struct {
	base
	mixer
	program *shader.Program
	mesh    *mesh.Mesh
}

func (e *Coordinates) Enter(ctx *states.Context) error {
	e.enter(ctx, "coordinates")

	var err error
	if e.program, err = ctx.LoadProgram(mvpVert, mixFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(texturedQuad, quadIndices, mesh.PositionColorTex); err != nil {
		return err
	}
	return e.load(&e.base, e.program)
}

func (e *Coordinates) Update(dt float64) error {
	e.adjust(e.ctx.Input, dt)
	return nil
}

func (e *Coordinates) Render() error {
	t := e.ctx.Time()
	model := mgl32.HomogRotate3DX(mgl32.DegToRad(-55)).Mul4(mgl32.HomogRotate3DZ(t * 0.5))

	e.bind(e.program)
	e.program.SetMat4("model", model)
	e.program.SetMat4("view", mgl32.Translate3D(0, 0, -3))
	e.program.SetMat4("projection", e.ctx.Projection(45))
	e.mesh.Draw()
	return nil
}

// cubeScene draws the ten textured cubes. Every third cube also spins.
type cubeScene struct {
	mixer
	program *shader.Program
	cube    *mesh.Mesh
}

func (s *cubeScene) load(b *base) error {
	var err error
	if s.program, err = b.ctx.LoadProgram(mvpVert, mixFrag); err != nil {
		return err
	}
	if s.cube, err = b.newMesh(cubeVertices, nil, mesh.PositionNormalTex); err != nil {
		return err
	}
	return s.mixer.load(b, s.program)
}

func (s *cubeScene) draw(view, projection mgl32.Mat4, t float32) {
	s.bind(s.program)
	s.program.SetMat4("view", view)
	s.program.SetMat4("projection", projection)

	for i := range cubePositions {
		var spin float32
		if i%3 == 0 {
			spin = t
		}
		s.program.SetMat4("model", cubeModel(i, spin))
		s.cube.Draw()
	}
}

// Cubes draws ten cubes with depth testing and a fixed view.
type Cubes struct {
	base
	cubeScene
}

func (e *Cubes) Enter(ctx *states.Context) error {
	e.enter(ctx, "cubes")
	return e.cubeScene.load(&e.base)
}

func (e *Cubes) Update(dt float64) error {
	e.adjust(e.ctx.Input, dt)
	return nil
}

func (e *Cubes) Render() error {
	e.draw(mgl32.Translate3D(0, 0, -3), e.ctx.Projection(45), e.ctx.Time())
	return nil
}

// orbitRadius is the distance of the circling camera from the origin.
const orbitRadius = 10

// CameraOrbit circles the view around the origin.
type CameraOrbit struct {
	base
	cubeScene
}

func (e *CameraOrbit) Enter(ctx *states.Context) error {
	e.enter(ctx, "camera-orbit")
	return e.cubeScene.load(&e.base)
}

func (e *CameraOrbit) Render() error {
	t := e.ctx.Time()
	view := camera.OrbitingView(orbitRadius, float64(t))
	e.draw(view, e.ctx.Projection(45), t)
	return nil
}

// eulerCamera is the hand-written camera state that CameraClass replaces
// with camera.FPSCamera.
type eulerCamera struct {
	pos   mgl32.Vec3
	front mgl32.Vec3
	up    mgl32.Vec3
	yaw   float32
	pitch float32
	fov   float32
}

func newEulerCamera() eulerCamera {
	return eulerCamera{
		pos:   mgl32.Vec3{0, 0, 3},
		front: mgl32.Vec3{0, 0, -1},
		up:    mgl32.Vec3{0, 1, 0},
		yaw:   -90,
		fov:   45,
	}
}

// move applies WASD. Several keys may be held at once.
func (c *eulerCamera) move(in *input.Input, speed float32) {
	right := c.front.Cross(c.up).Normalize()
	if in.IsDown(input.KeyW) {
		c.pos = c.pos.Add(c.front.Mul(speed))
	}
	if in.IsDown(input.KeyS) {
		c.pos = c.pos.Sub(c.front.Mul(speed))
	}
	if in.IsDown(input.KeyA) {
		c.pos = c.pos.Sub(right.Mul(speed))
	}
	if in.IsDown(input.KeyD) {
		c.pos = c.pos.Add(right.Mul(speed))
	}
}

// look turns by a cursor offset already scaled by sensitivity.
func (c *eulerCamera) look(dx, dy float32) {
	c.yaw += dx
	c.pitch = mgl32.Clamp(c.pitch+dy, -camera.MaxPitch, camera.MaxPitch)
	c.front = camera.FrontFromEuler(c.yaw, c.pitch)
}

// zoom narrows the field of view, clamped to [1, 45].
func (c *eulerCamera) zoom(dy float32) {
	c.fov = mgl32.Clamp(c.fov-dy, camera.MinZoom, camera.MaxZoom)
}

func (c *eulerCamera) view() mgl32.Mat4 {
	return mgl32.LookAtV(c.pos, c.pos.Add(c.front), c.up)
}

// CameraEuler flies through the cubes with WASD, mouse look and scroll
// zoom, keeping the camera state inline.
type CameraEuler struct {
	base
	cubeScene
	cam eulerCamera
}

func (e *CameraEuler) Enter(ctx *states.Context) error {
	e.enter(ctx, "camera-euler")
	e.cam = newEulerCamera()
	return e.cubeScene.load(&e.base)
}

func (e *CameraEuler) Update(dt float64) error {
	in := e.ctx.Input
	speed := e.ctx.Camera.Speed
	if speed <= 0 {
		speed = camera.DefaultSpeed
	}
	e.cam.move(in, speed*float32(dt))

	if e.ctx.Window != nil && e.ctx.Window.CursorCaptured() {
		sensitivity := e.ctx.Camera.Sensitivity
		if sensitivity <= 0 {
			sensitivity = camera.DefaultSensitivity
		}
		dx, dy := in.MouseDelta()
		e.cam.look(dx*sensitivity, dy*sensitivity)
	}
	if _, sy := in.Scroll(); sy != 0 {
		e.cam.zoom(sy)
	}
	return nil
}

func (e *CameraEuler) Render() error {
	e.draw(e.cam.view(), e.ctx.Projection(e.cam.fov), e.ctx.Time())
	return nil
}

// CameraClass is CameraEuler built on camera.FPSCamera.
type CameraClass struct {
	base
	cubeScene
	cam *camera.FPSCamera
}

func (e *CameraClass) Enter(ctx *states.Context) error {
	e.enter(ctx, "camera-class")
	e.cam = ctx.NewCamera(mgl32.Vec3{0, 0, 3})
	return e.cubeScene.load(&e.base)
}

func (e *CameraClass) Update(dt float64) error {
	e.needsCamera(e.cam, dt)
	return nil
}

func (e *CameraClass) Render() error {
	e.draw(e.cam.ViewMatrix(), e.ctx.Projection(e.cam.Zoom), e.ctx.Time())
	return nil
}
