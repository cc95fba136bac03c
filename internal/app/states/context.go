package states

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/config"
	"github.com/Faultbox/learn-gl/internal/engine/camera"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/renderer"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
	"github.com/Faultbox/learn-gl/internal/engine/window"
)

// Context is what a state gets to work with.
type Context struct {
	Assets   *assets.Manager
	Textures *texture.Library
	Input    *input.Input
	Window   window.Window
	Renderer *renderer.Renderer
	Camera   config.CameraConfig
	Log      *zap.Logger

	// Watch, when set, is called with the asset path of every shader source
	// loaded through LoadProgram.
	Watch func(assetPath string)

	programs []*shader.Program
}

// LoadProgram loads a shader program from the asset manager. The program is
// owned by the context: it is reloaded on source changes and deleted when
// the state exits.
func (c *Context) LoadProgram(vertPath, fragPath string) (*shader.Program, error) {
	p, err := shader.Load(c.Assets.FS(), vertPath, fragPath)
	if err != nil {
		return nil, err
	}
	c.programs = append(c.programs, p)

	if c.Watch != nil {
		c.Watch(vertPath)
		c.Watch(fragPath)
	}
	return p, nil
}

// Programs returns the programs loaded since the current state entered.
func (c *Context) Programs() []*shader.Program {
	return c.programs
}

// ReloadShaders recompiles every program that uses one of the changed asset
// paths. Programs that fail keep running their previous version.
func (c *Context) ReloadShaders(changed []string) (int, error) {
	for _, path := range changed {
		c.Assets.Invalidate(path)
	}

	reloaded := 0
	var errs []error
	for _, p := range c.programs {
		if !usesAny(p, changed) {
			continue
		}
		if err := p.Reload(c.Assets.FS()); err != nil {
			vert, frag := p.Paths()
			errs = append(errs, fmt.Errorf("reloading %s/%s: %w", vert, frag, err))
			continue
		}
		reloaded++
	}
	return reloaded, errors.Join(errs...)
}

func usesAny(p *shader.Program, paths []string) bool {
	for _, path := range paths {
		if p.Uses(assets.Clean(path)) {
			return true
		}
	}
	return false
}

func (c *Context) releasePrograms() {
	for _, p := range c.programs {
		p.Delete()
	}
	c.programs = nil
}

// Aspect returns the framebuffer aspect ratio.
func (c *Context) Aspect() float32 {
	if c.Renderer == nil {
		return 1
	}
	return c.Renderer.Aspect()
}

// Time returns seconds since the window opened.
func (c *Context) Time() float32 {
	if c.Window == nil {
		return 0
	}
	return float32(c.Window.Time())
}

// Projection returns a perspective matrix with the configured clip planes.
func (c *Context) Projection(fovDeg float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), c.Aspect(), c.Camera.Near, c.Camera.Far)
}

// NewCamera creates an FPS camera with the configured speed, sensitivity and zoom.
func (c *Context) NewCamera(position mgl32.Vec3) *camera.FPSCamera {
	cam := camera.NewFPSCamera(position)
	if c.Camera.Speed > 0 {
		cam.Speed = c.Camera.Speed
	}
	if c.Camera.Sensitivity > 0 {
		cam.Sensitivity = c.Camera.Sensitivity
	}
	if c.Camera.FOV > 0 {
		cam.Zoom = c.Camera.FOV
	}
	return cam
}
