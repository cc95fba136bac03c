package examples

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/engine/camera"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
)

type deleter interface {
	Delete()
}

// base is embedded by every example. It gives no-op Update and HandleInput
// and frees owned GL objects on Exit. Programs loaded through the context
// are freed by the state manager.
type base struct {
	ctx   *states.Context
	log   *zap.Logger
	owned []deleter
}

func (b *base) enter(ctx *states.Context, name string) {
	b.ctx = ctx
	b.log = zap.NewNop()
	if ctx.Log != nil {
		b.log = ctx.Log.Named(name)
	}
	b.owned = b.owned[:0]
}

// own registers a GL object to delete on Exit.
func (b *base) own(d deleter) {
	b.owned = append(b.owned, d)
}

// newMesh uploads geometry and registers it for release.
func (b *base) newMesh(vertices []float32, indices []uint32, layout mesh.Layout) (*mesh.Mesh, error) {
	m, err := mesh.New(vertices, indices, layout)
	if err != nil {
		return nil, err
	}
	b.own(m)
	return m, nil
}

// texture fetches a shared texture with default options. The library owns it.
func (b *base) texture(path string) (*texture.Texture, error) {
	return b.ctx.Textures.Get(path, texture.DefaultOptions())
}

// Exit frees owned objects in reverse creation order.
func (b *base) Exit() error {
	for i := len(b.owned) - 1; i >= 0; i-- {
		b.owned[i].Delete()
	}
	b.owned = nil
	return nil
}

func (b *base) Update(dt float64) error { return nil }

func (b *base) HandleInput(event input.Event) error { return nil }

// needsCamera applies keyboard movement, mouse look (while the cursor is
// captured) and scroll zoom to cam.
func (b *base) needsCamera(cam *camera.FPSCamera, dt float64) {
	captured := b.ctx.Window != nil && b.ctx.Window.CursorCaptured()
	cam.HandleInput(b.ctx.Input, float32(dt), captured)
}
