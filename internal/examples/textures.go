package examples

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
)

// mixRate is how fast Up/Down change the blend, per second.
const mixRate = 1.0

// Textures draws a textured quad tinted by its vertex colors.
type Textures struct {
	base
	program   *shader.Program
	mesh      *mesh.Mesh
	container *texture.Texture
}

func (e *Textures) Enter(ctx *states.Context) error {
	e.enter(ctx, "textures")

	var err error
	if e.program, err = ctx.LoadProgram(texturedVert, texturedFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(texturedQuad, quadIndices, mesh.PositionColorTex); err != nil {
		return err
	}
	if e.container, err = e.texture(containerTexture); err != nil {
		return err
	}

	e.program.Bind()
	e.program.SetInt("texture1", 0)
	return nil
}

func (e *Textures) Render() error {
	e.container.Bind(0)
	e.program.Bind()
	e.mesh.Draw()
	return nil
}

// mixer holds the two-texture setup shared by the textures-mix and later
// examples: container on unit 0, face on unit 1, blended by mixValue.
type mixer struct {
	container *texture.Texture
	face      *texture.Texture
	mixValue  float32
}

func (m *mixer) load(b *base, p *shader.Program) error {
	var err error
	if m.container, err = b.texture(containerTexture); err != nil {
		return err
	}
	if m.face, err = b.texture(faceTexture); err != nil {
		return err
	}
	m.mixValue = 0.2

	p.Bind()
	p.SetInt("texture1", 0)
	p.SetInt("texture2", 1)
	return nil
}

// adjust changes the blend with the arrow keys.
func (m *mixer) adjust(in *input.Input, dt float64) {
	step := float32(mixRate * dt)
	if in.IsDown(input.KeyUp) {
		m.mixValue += step
	}
	if in.IsDown(input.KeyDown) {
		m.mixValue -= step
	}
	m.mixValue = mgl32.Clamp(m.mixValue, 0, 1)
}

func (m *mixer) bind(p *shader.Program) {
	m.container.Bind(0)
	m.face.Bind(1)
	p.Bind()
	p.SetFloat("mixValue", m.mixValue)
}

// TexturesMix blends two textures; Up and Down shift the blend.
type TexturesMix struct {
	base
	mixer
	program *shader.Program
	mesh    *mesh.Mesh
}

func (e *TexturesMix) Enter(ctx *states.Context) error {
	e.enter(ctx, "textures-mix")

	var err error
	if e.program, err = ctx.LoadProgram(texturedVert, mixFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(texturedQuad, quadIndices, mesh.PositionColorTex); err != nil {
		return err
	}
	return e.load(&e.base, e.program)
}

func (e *TexturesMix) Update(dt float64) error {
	e.adjust(e.ctx.Input, dt)
	return nil
}

func (e *TexturesMix) Render() error {
	e.bind(e.program)
	e.mesh.Draw()
	return nil
}

// Transform spins the quad in the bottom right corner and scales a second
// copy in the top left.
type Transform struct {
	base
	mixer
	program *shader.Program
	mesh    *mesh.Mesh
}

func (e *Transform) Enter(ctx *states.Context) error {
	e.enter(ctx, "transform")

	var err error
	if e.program, err = ctx.LoadProgram(transformVert, mixFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(texturedQuad, quadIndices, mesh.PositionColorTex); err != nil {
		return err
	}
	return e.load(&e.base, e.program)
}

func (e *Transform) Update(dt float64) error {
	e.adjust(e.ctx.Input, dt)
	return nil
}

func (e *Transform) Render() error {
	t := e.ctx.Time()
	e.bind(e.program)

	e.program.SetMat4("transform", spinTransform(t))
	e.mesh.Draw()

	e.program.SetMat4("transform", pulseTransform(t))
	e.mesh.Draw()
	return nil
}

// spinTransform moves to (0.5, -0.5) and rotates around Z by t radians.
func spinTransform(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(0.5, -0.5, 0).Mul4(mgl32.HomogRotate3DZ(t))
}

// pulseTransform moves to (-0.5, 0.5) and scales by the pulse of t.
func pulseTransform(t float32) mgl32.Mat4 {
	s := pulse(t)
	return mgl32.Translate3D(-0.5, 0.5, 0).Mul4(mgl32.Scale3D(s, s, s))
}
