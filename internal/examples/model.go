package examples

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/engine/camera"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/lighting"
	"github.com/Faultbox/learn-gl/internal/engine/model"
	"github.com/Faultbox/learn-gl/internal/engine/picking"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
)

// Model loads an OBJ model with its materials and draws it in front of the
// sky. O switches between the fly camera and an orbit camera dragged with
// the left mouse button. A right click names the mesh under the cursor.
type Model struct {
	base
	sky

	// Path is the OBJ asset path. Empty means the bundled backpack.
	Path string

	program  *shader.Program
	model    *model.Model
	defaults model.Defaults

	fly      *camera.FPSCamera
	orbit    *camera.OrbitCamera
	useOrbit bool
	boxes    []picking.Box
}

var modelLight = lighting.DirLight{
	Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
	Ambient:   mgl32.Vec3{0.3, 0.3, 0.3},
	Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
	Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
}

func (e *Model) Enter(ctx *states.Context) error {
	e.enter(ctx, "model")

	path := e.Path
	if path == "" {
		path = backpackModel
	}

	var err error
	if e.program, err = ctx.LoadProgram(lightingVert, modelFrag); err != nil {
		return err
	}

	data, err := e.loadData(path)
	if err != nil {
		return err
	}
	if e.model, err = model.Upload(data, ctx.Textures); err != nil {
		return err
	}
	e.own(e.model)
	e.boxes = meshBoxes(e.model)

	// Bound for meshes that lack their own maps
	diffuse, err := e.texture(container2Texture)
	if err != nil {
		return err
	}
	specular, err := e.texture(container2Specular)
	if err != nil {
		return err
	}
	e.defaults = model.Defaults{model.KindDiffuse: diffuse, model.KindSpecular: specular}
	if err := e.sky.load(&e.base); err != nil {
		return err
	}

	e.orbit = camera.NewOrbitCamera()
	e.orbit.FitToBounds(data.Bounds.Min, data.Bounds.Max)
	e.fly = ctx.NewCamera(e.orbit.Center.Add(mgl32.Vec3{0, 0, e.orbit.Distance}))
	e.useOrbit = false
	return nil
}

// loadData reads the model, or the built-in cube when the file is absent.
func (e *Model) loadData(path string) (*model.ModelData, error) {
	data, _, err := model.LoadData(e.ctx.Assets, path, model.DefaultBuildOptions())
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, assets.ErrNotFound) {
		return nil, err
	}

	e.log.Warn("model not found, drawing a cube instead", zap.String("path", path))
	return fallbackModel()
}

func fallbackModel() (*model.ModelData, error) {
	dec, maps, err := model.Decode([]byte(fallbackOBJ), nil, "cube")
	if err != nil {
		return nil, fmt.Errorf("fallback model: %w", err)
	}
	data, _ := model.Build(dec, maps, model.DefaultBuildOptions())
	return data, nil
}

// meshBoxes returns the bounds of each mesh for picking.
func meshBoxes(m *model.Model) []picking.Box {
	boxes := make([]picking.Box, len(m.Meshes))
	for i, mesh := range m.Meshes {
		boxes[i] = picking.NewBox(mesh.Bounds.Min, mesh.Bounds.Max)
	}
	return boxes
}

func (e *Model) HandleInput(event input.Event) error {
	switch {
	case event.Type == input.EventKeyDown && !event.Repeat && event.Key == input.KeyO:
		e.useOrbit = !e.useOrbit
		e.log.Debug("camera switched", zap.Bool("orbit", e.useOrbit))
	case event.Type == input.EventMouseDown && event.Button == input.ButtonRight:
		e.pick(event.X, event.Y)
	}
	return nil
}

// pick logs the mesh under the cursor. While the cursor is captured it
// picks through the screen center.
func (e *Model) pick(x, y float32) {
	if e.ctx.Window == nil {
		return
	}
	w, h := e.ctx.Window.Size()
	if e.ctx.Window.CursorCaptured() {
		x, y = float32(w)/2, float32(h)/2
	}

	view, _, fov := e.view()
	ray := picking.ScreenToRay(x, y, w, h, view, e.ctx.Projection(fov))
	hit, ok := picking.Nearest(ray, e.boxes)
	if !ok {
		e.log.Info("nothing picked")
		return
	}
	e.log.Info("mesh picked",
		zap.String("mesh", e.model.Meshes[hit.Index].Name),
		zap.Float32("distance", hit.Distance),
	)
}

func (e *Model) Update(dt float64) error {
	if !e.useOrbit {
		e.needsCamera(e.fly, dt)
		return nil
	}

	in := e.ctx.Input
	if in.ButtonDown(input.ButtonLeft) {
		dx, dy := in.MouseDelta()
		e.orbit.HandleDrag(dx, dy)
	}
	if _, sy := in.Scroll(); sy != 0 {
		e.orbit.HandleZoom(sy)
	}
	return nil
}

func (e *Model) view() (view mgl32.Mat4, eye mgl32.Vec3, fov float32) {
	if e.useOrbit {
		return e.orbit.ViewMatrix(), e.orbit.Position(), camera.DefaultZoom
	}
	return e.fly.ViewMatrix(), e.fly.Position, e.fly.Zoom
}

func (e *Model) Render() error {
	view, eye, fov := e.view()
	projection := e.ctx.Projection(fov)

	e.program.Bind()
	e.program.SetMat4("view", view)
	e.program.SetMat4("projection", projection)
	e.program.SetMat4("model", mgl32.Ident4())
	e.program.SetVec3("viewPos", eye)
	e.program.SetFloat("shininess", 32)
	modelLight.Apply(e.program, "dirLight")
	e.model.Draw(e.program, e.defaults)

	e.box.Draw(view, projection)
	return nil
}
