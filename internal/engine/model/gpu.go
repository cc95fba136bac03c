package model

import (
	"fmt"

	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
)

// Mesh is an uploaded mesh with its textures.
type Mesh struct {
	Name     string
	Bounds   Bounds
	gpu      *mesh.Mesh
	refs     []TextureRef
	textures []*texture.Texture
}

// Model is an uploaded model. Textures belong to the Library passed to Upload.
type Model struct {
	Meshes []*Mesh
	Bounds Bounds
}

// Defaults maps a texture kind to the texture bound for meshes without one.
type Defaults map[string]*texture.Texture

// kinds returns the kinds with a default, in kindOrder.
func (d Defaults) kinds() []string {
	var out []string
	for _, k := range kindOrder {
		if d[k] != nil {
			out = append(out, k)
		}
	}
	return out
}

// Upload creates GPU meshes for data. Textures are fetched from lib, so a
// file shared by several meshes is uploaded once.
func Upload(data *ModelData, lib *texture.Library) (*Model, error) {
	opts := texture.DefaultOptions()
	// UVs were flipped while building
	opts.FlipY = false

	m := &Model{Bounds: data.Bounds}
	for _, md := range data.Meshes {
		gm, err := mesh.New(Pack(md.Vertices), md.Indices, mesh.PositionNormalTexTBN)
		if err != nil {
			m.Delete()
			return nil, fmt.Errorf("uploading mesh %q: %w", md.Name, err)
		}

		out := &Mesh{Name: md.Name, Bounds: md.Bounds, gpu: gm, refs: md.Textures}
		for _, ref := range md.Textures {
			tex, err := lib.Get(data.TexturePath(ref), opts)
			if err != nil {
				gm.Delete()
				m.Delete()
				return nil, fmt.Errorf("mesh %q: %w", md.Name, err)
			}
			out.textures = append(out.textures, tex)
		}
		m.Meshes = append(m.Meshes, out)
	}
	return m, nil
}

// Draw binds the mesh's textures and a default for every kind it lacks,
// points each sampler at its unit and draws. The program must already be bound.
func (m *Mesh) Draw(p shader.Uniforms, defaults Defaults) {
	bindings := Bindings(m.refs, defaults.kinds())
	for _, b := range bindings {
		if b.Texture >= 0 {
			m.textures[b.Texture].Bind(b.Unit)
		} else {
			defaults[b.Kind].Bind(b.Unit)
		}
	}
	setSamplers(p, bindings)
	m.gpu.Draw()
}

// Textures returns the mesh's textures in sampler order.
func (m *Mesh) Textures() []*texture.Texture {
	return m.textures
}

// Draw draws every mesh.
func (m *Model) Draw(p shader.Uniforms, defaults Defaults) {
	for _, mesh := range m.Meshes {
		mesh.Draw(p, defaults)
	}
}

// Delete frees the GPU meshes.
func (m *Model) Delete() {
	for _, mesh := range m.Meshes {
		mesh.gpu.Delete()
	}
	m.Meshes = nil
}
