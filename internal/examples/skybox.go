package examples

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/engine/camera"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/skybox"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
)

// sky is the cube map background shared by the skybox and model examples.
type sky struct {
	box     *skybox.Skybox
	cubemap *texture.Cubemap
}

func (s *sky) load(b *base) error {
	program, err := b.ctx.LoadProgram(skyboxVert, skyboxFrag)
	if err != nil {
		return err
	}
	if s.cubemap, err = b.ctx.Textures.Cubemap(skybox.FacePaths(skyboxDir, skyboxExt)); err != nil {
		return err
	}
	b.own(s.cubemap)

	if s.box, err = skybox.New(s.cubemap, program); err != nil {
		return err
	}
	b.own(s.box)
	return nil
}

// Skybox surrounds reflective textured cubes with a cube map sky.
// R and Shift+R raise and lower the reflectivity.
type Skybox struct {
	base
	sky
	program      *shader.Program
	cube         *mesh.Mesh
	container    *texture.Texture
	cam          *camera.FPSCamera
	reflectivity float32
}

func (e *Skybox) Enter(ctx *states.Context) error {
	e.enter(ctx, "skybox")

	var err error
	if e.program, err = ctx.LoadProgram(lightingVert, cubemapFrag); err != nil {
		return err
	}
	if e.cube, err = e.newMesh(cubeVertices, nil, mesh.PositionNormalTex); err != nil {
		return err
	}
	if e.container, err = e.texture(containerTexture); err != nil {
		return err
	}
	if err := e.sky.load(&e.base); err != nil {
		return err
	}

	e.cam = ctx.NewCamera(mgl32.Vec3{0, 0, 3})
	e.reflectivity = 0.3
	return nil
}

func (e *Skybox) Update(dt float64) error {
	e.needsCamera(e.cam, dt)

	in := e.ctx.Input
	if in.IsDown(input.KeyR) {
		step := float32(0.5 * dt)
		if in.IsDown(input.KeyLeftShift) || in.IsDown(input.KeyRightShift) {
			step = -step
		}
		e.reflectivity = mgl32.Clamp(e.reflectivity+step, 0, 1)
	}
	return nil
}

func (e *Skybox) Render() error {
	view := e.cam.ViewMatrix()
	projection := e.ctx.Projection(e.cam.Zoom)

	e.container.Bind(0)
	e.cubemap.Bind(1)

	e.program.Bind()
	e.program.SetMat4("view", view)
	e.program.SetMat4("projection", projection)
	e.program.SetVec3("cameraPos", e.cam.Position)
	e.program.SetInt("texture1", 0)
	e.program.SetInt("skybox", 1)
	e.program.SetFloat("reflectivity", e.reflectivity)
	for i := range cubePositions {
		e.program.SetMat4("model", cubeModel(i, 0))
		e.cube.Draw()
	}

	// Last, so only uncovered pixels pass the depth test
	e.box.Draw(view, projection)
	return nil
}
