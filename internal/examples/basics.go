package examples

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
)

const triangleVertexSrc = `#version 410 core
layout (location = 0) in vec3 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const triangleFragmentSrc = `#version 410 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// Triangle draws one triangle from a single vertex buffer with shaders
// compiled from inline sources.
type Triangle struct {
	base
	program *shader.Program
	mesh    *mesh.Mesh
}

func (e *Triangle) Enter(ctx *states.Context) error {
	e.enter(ctx, "triangle")

	p, err := shader.New(triangleVertexSrc, triangleFragmentSrc)
	if err != nil {
		return fmt.Errorf("triangle program: %w", err)
	}
	e.own(p)
	e.program = p

	if e.mesh, err = e.newMesh(triangleVertices, nil, mesh.Position); err != nil {
		return err
	}
	return nil
}

func (e *Triangle) Render() error {
	e.program.Bind()
	e.mesh.Draw()
	return nil
}

// Indexed draws a quad from four vertices and an element buffer.
type Indexed struct {
	base
	program *shader.Program
	mesh    *mesh.Mesh
}

func (e *Indexed) Enter(ctx *states.Context) error {
	e.enter(ctx, "indexed")

	var err error
	if e.program, err = ctx.LoadProgram(basicVert, basicFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(quadPositions, quadIndices, mesh.Position); err != nil {
		return err
	}
	return nil
}

func (e *Indexed) Render() error {
	e.program.Bind()
	e.mesh.Draw()
	return nil
}

// Uniform pulses the triangle's green channel through a uniform.
type Uniform struct {
	base
	program *shader.Program
	mesh    *mesh.Mesh
	green   float32
}

func (e *Uniform) Enter(ctx *states.Context) error {
	e.enter(ctx, "uniform")

	var err error
	if e.program, err = ctx.LoadProgram(basicVert, uniformFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(triangleVertices, nil, mesh.Position); err != nil {
		return err
	}
	return nil
}

func (e *Uniform) Update(dt float64) error {
	e.green = pulse(e.ctx.Time())
	return nil
}

func (e *Uniform) Render() error {
	e.program.Bind()
	e.program.SetVec4("vertexColor", mgl32.Vec4{0, e.green, 0, 1})
	e.mesh.Draw()
	return nil
}

// pulse maps time to a value oscillating in [0, 1].
func pulse(t float32) float32 {
	return float32(math.Sin(float64(t)))/2 + 0.5
}

// Attributes interpolates per-vertex colors across a triangle.
type Attributes struct {
	base
	program *shader.Program
	mesh    *mesh.Mesh
}

func (e *Attributes) Enter(ctx *states.Context) error {
	e.enter(ctx, "attributes")

	var err error
	if e.program, err = ctx.LoadProgram(colorVert, colorFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(coloredTriangle, nil, mesh.PositionColor); err != nil {
		return err
	}
	return nil
}

func (e *Attributes) Render() error {
	e.program.Bind()
	e.program.SetFloat("xOffset", 0)
	e.mesh.Draw()
	return nil
}

// ShaderClass drives the colored triangle through the Program wrapper,
// sliding it sideways with a float uniform.
type ShaderClass struct {
	base
	program *shader.Program
	mesh    *mesh.Mesh
	offset  float32
}

func (e *ShaderClass) Enter(ctx *states.Context) error {
	e.enter(ctx, "shader-class")

	var err error
	if e.program, err = ctx.LoadProgram(colorVert, colorFrag); err != nil {
		return err
	}
	if e.mesh, err = e.newMesh(coloredTriangle, nil, mesh.PositionColor); err != nil {
		return err
	}
	return nil
}

func (e *ShaderClass) Update(dt float64) error {
	e.offset = float32(math.Sin(float64(e.ctx.Time()))) * 0.5
	return nil
}

func (e *ShaderClass) Render() error {
	e.program.Bind()
	e.program.SetFloat("xOffset", e.offset)
	e.mesh.Draw()
	return nil
}
