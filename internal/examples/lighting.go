package examples

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/engine/camera"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/lighting"
	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
)

var (
	lightPos    = mgl32.Vec3{1.2, 1.0, 2.0}
	coral       = mgl32.Vec3{1.0, 0.5, 0.31}
	white       = mgl32.Vec3{1, 1, 1}
	darkClear   = mgl32.Vec4{0.1, 0.1, 0.1, 1}
	lampScale   = float32(0.2)
	litCubeSpin = mgl32.Vec3{1.0, 0.3, 0.5}
)

// litScene is one lit cube, a lamp cube and an FPS camera.
type litScene struct {
	object *shader.Program
	lamp   *shader.Program
	cube   *mesh.Mesh
	cam    *camera.FPSCamera
}

func (s *litScene) load(b *base, frag string) error {
	var err error
	if s.object, err = b.ctx.LoadProgram(lightingVert, frag); err != nil {
		return err
	}
	if s.lamp, err = b.ctx.LoadProgram(lampVert, lampFrag); err != nil {
		return err
	}
	if s.cube, err = b.newMesh(cubeVertices, nil, mesh.PositionNormalTex); err != nil {
		return err
	}
	s.cam = b.ctx.NewCamera(mgl32.Vec3{0, 0, 3})
	if b.ctx.Renderer != nil {
		b.ctx.Renderer.SetClearColor(darkClear)
	}
	return nil
}

// bindObject binds the object program with camera matrices and model set.
func (s *litScene) bindObject(ctx *states.Context, model mgl32.Mat4) {
	s.object.Bind()
	s.object.SetMat4("projection", ctx.Projection(s.cam.Zoom))
	s.object.SetMat4("view", s.cam.ViewMatrix())
	s.object.SetMat4("model", model)
}

// drawLamp draws a small emissive cube at position.
func (s *litScene) drawLamp(ctx *states.Context, position, color mgl32.Vec3) {
	s.lamp.Bind()
	s.lamp.SetMat4("projection", ctx.Projection(s.cam.Zoom))
	s.lamp.SetMat4("view", s.cam.ViewMatrix())
	s.lamp.SetMat4("model", lampModel(position, lampScale))
	s.lamp.SetVec3("lightColor", color)
	s.cube.Draw()
}

// Colors multiplies an object color by the light color.
type Colors struct {
	base
	litScene
}

func (e *Colors) Enter(ctx *states.Context) error {
	e.enter(ctx, "colors")
	return e.litScene.load(&e.base, colorsFrag)
}

func (e *Colors) Update(dt float64) error {
	e.needsCamera(e.cam, dt)
	return nil
}

func (e *Colors) Render() error {
	e.bindObject(e.ctx, mgl32.Ident4())
	e.object.SetVec3("objectColor", coral)
	e.object.SetVec3("lightColor", white)
	e.cube.Draw()

	e.drawLamp(e.ctx, lightPos, white)
	return nil
}

// PhongStage selects how many Phong terms are lit.
type PhongStage int

const (
	PhongAmbient PhongStage = iota
	PhongDiffuse
	PhongSpecular
)

func (s PhongStage) fragment() string {
	switch s {
	case PhongDiffuse:
		return phongDiffuseFrag
	case PhongSpecular:
		return phongSpecularFrag
	default:
		return phongAmbientFrag
	}
}

func (s PhongStage) String() string {
	switch s {
	case PhongDiffuse:
		return "phong-diffuse"
	case PhongSpecular:
		return "phong-specular"
	default:
		return "phong-ambient"
	}
}

// Phong lights a cube with ambient, then diffuse, then specular terms.
// With OrbitLight the lamp circles the cube.
type Phong struct {
	base
	litScene
	Stage      PhongStage
	OrbitLight bool

	light mgl32.Vec3
}

func (e *Phong) Enter(ctx *states.Context) error {
	e.enter(ctx, e.Stage.String())
	e.light = lightPos
	return e.litScene.load(&e.base, e.Stage.fragment())
}

func (e *Phong) Update(dt float64) error {
	e.needsCamera(e.cam, dt)
	if e.OrbitLight {
		e.light = orbitLight(e.ctx.Time())
	}
	return nil
}

// orbitLight circles the lamp around the Y axis at the default light's radius.
func orbitLight(t float32) mgl32.Vec3 {
	r := float64(mgl32.Vec2{lightPos.X(), lightPos.Z()}.Len())
	return mgl32.Vec3{
		float32(math.Sin(float64(t)) * r),
		lightPos.Y(),
		float32(math.Cos(float64(t)) * r),
	}
}

func (e *Phong) Render() error {
	e.bindObject(e.ctx, mgl32.Ident4())
	e.object.SetVec3("objectColor", coral)
	e.object.SetVec3("lightColor", white)
	e.object.SetFloat("ambientStrength", 0.1)
	e.object.SetVec3("lightPos", e.light)
	e.object.SetVec3("viewPos", e.cam.Position)
	e.object.SetFloat("specularStrength", 0.5)
	e.object.SetFloat("shininess", 32)
	e.cube.Draw()

	e.drawLamp(e.ctx, e.light, white)
	return nil
}

// Materials lights a cube through Material and Light structs. The light
// color drifts over time; M cycles through material presets.
type Materials struct {
	base
	litScene
	material int
}

func (e *Materials) Enter(ctx *states.Context) error {
	e.enter(ctx, "materials")
	e.material = 0
	return e.litScene.load(&e.base, materialFrag)
}

func (e *Materials) HandleInput(event input.Event) error {
	if event.Type == input.EventKeyDown && !event.Repeat && event.Key == input.KeyM {
		e.material = (e.material + 1) % len(lighting.Materials)
		e.log.Info("material changed", zap.String("name", lighting.Materials[e.material].Name))
	}
	return nil
}

func (e *Materials) Update(dt float64) error {
	e.needsCamera(e.cam, dt)
	return nil
}

// cyclingLight returns the drifting light of the materials scene.
func cyclingLight(t float32) lighting.Light {
	color := mgl32.Vec3{
		float32(math.Sin(float64(t) * 2.0)),
		float32(math.Sin(float64(t) * 0.7)),
		float32(math.Sin(float64(t) * 1.3)),
	}
	diffuse := color.Mul(0.5)
	return lighting.Light{
		Position: lightPos,
		Ambient:  diffuse.Mul(0.2),
		Diffuse:  diffuse,
		Specular: white,
	}
}

func (e *Materials) Render() error {
	light := cyclingLight(e.ctx.Time())

	e.bindObject(e.ctx, mgl32.Ident4())
	e.object.SetVec3("viewPos", e.cam.Position)
	light.Apply(e.object, "light")
	lighting.Materials[e.material].Apply(e.object, "material")
	e.cube.Draw()

	e.drawLamp(e.ctx, light.Position, light.Diffuse.Mul(2))
	return nil
}

// LightingMaps samples diffuse and specular colors from textures.
type LightingMaps struct {
	base
	litScene
	diffuse  *texture.Texture
	specular *texture.Texture
}

func (e *LightingMaps) Enter(ctx *states.Context) error {
	e.enter(ctx, "lighting-maps")
	if err := e.litScene.load(&e.base, lightingMapsFrag); err != nil {
		return err
	}
	var err error
	if e.diffuse, err = e.texture(container2Texture); err != nil {
		return err
	}
	if e.specular, err = e.texture(container2Specular); err != nil {
		return err
	}
	return nil
}

func (e *LightingMaps) Update(dt float64) error {
	e.needsCamera(e.cam, dt)
	return nil
}

func (e *LightingMaps) Render() error {
	e.diffuse.Bind(0)
	e.specular.Bind(1)

	e.bindObject(e.ctx, mgl32.HomogRotate3D(e.ctx.Time()*0.3, litCubeSpin.Normalize()))
	e.object.SetVec3("viewPos", e.cam.Position)
	lighting.WhiteLight(lightPos).Apply(e.object, "light")
	lighting.MapMaterial{DiffuseUnit: 0, SpecularUnit: 1, Shininess: 64}.Apply(e.object, "material")
	e.cube.Draw()

	e.drawLamp(e.ctx, lightPos, white)
	return nil
}

// LightCasters combines a sun, four point lights and a flashlight held by
// the camera. F toggles the flashlight.
type LightCasters struct {
	base
	litScene
	diffuse   *texture.Texture
	specular  *texture.Texture
	sun       lighting.Sun
	points    []lighting.PointLight
	flashOn   bool
	lampColor []mgl32.Vec3
}

func (e *LightCasters) Enter(ctx *states.Context) error {
	e.enter(ctx, "light-casters")
	if err := e.litScene.load(&e.base, multiLightsFrag); err != nil {
		return err
	}
	var err error
	if e.diffuse, err = e.texture(container2Texture); err != nil {
		return err
	}
	if e.specular, err = e.texture(container2Specular); err != nil {
		return err
	}

	e.sun = lighting.DefaultSun()
	e.flashOn = true
	e.lampColor = []mgl32.Vec3{
		{1, 1, 1},
		{1, 0.6, 0.2},
		{0.2, 0.6, 1},
		{0.6, 1, 0.4},
	}
	e.points = e.points[:0]
	for i, pos := range pointLightPositions {
		e.points = append(e.points, lighting.NewPointLight(pos, e.lampColor[i], 32))
	}
	return nil
}

func (e *LightCasters) HandleInput(event input.Event) error {
	if event.Type == input.EventKeyDown && !event.Repeat && event.Key == input.KeyF {
		e.flashOn = !e.flashOn
	}
	return nil
}

func (e *LightCasters) Update(dt float64) error {
	e.needsCamera(e.cam, dt)
	return nil
}

func (e *LightCasters) Render() error {
	// Start the day at noon
	t := e.ctx.Time() + e.sun.DayLength/4

	e.diffuse.Bind(0)
	e.specular.Bind(1)

	e.object.Bind()
	e.object.SetMat4("projection", e.ctx.Projection(e.cam.Zoom))
	e.object.SetMat4("view", e.cam.ViewMatrix())
	e.object.SetVec3("viewPos", e.cam.Position)
	lighting.MapMaterial{DiffuseUnit: 0, SpecularUnit: 1, Shininess: 32}.Apply(e.object, "material")
	e.sun.Light(t).Apply(e.object, "dirLight")
	lighting.ApplyPointLights(e.object, "pointLights", e.points)
	lighting.Flashlight(e.cam.Position, e.cam.Front).Apply(e.object, "spotLight")
	e.object.SetBool("spotEnabled", e.flashOn)

	for i := range cubePositions {
		e.object.SetMat4("model", cubeModel(i, 0))
		e.cube.Draw()
	}

	for i, p := range e.points {
		e.drawLamp(e.ctx, p.Position, e.lampColor[i])
	}
	return nil
}
