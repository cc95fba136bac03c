package model

import (
	"strconv"

	"github.com/Faultbox/learn-gl/internal/engine/shader"
)

// kindOrder is the order defaults are laid out after a mesh's own textures.
var kindOrder = []string{KindDiffuse, KindSpecular, KindNormal, KindHeight}

// SamplerNames returns the uniform name for each texture, in order.
// Textures are numbered per kind starting at 1, e.g. material.texture_diffuse1,
// material.texture_diffuse2, material.texture_specular1.
func SamplerNames(textures []TextureRef) []string {
	counts := make(map[string]int)
	names := make([]string, len(textures))
	for i, t := range textures {
		counts[t.Kind]++
		names[i] = samplerName(t.Kind, counts[t.Kind])
	}
	return names
}

func samplerName(kind string, n int) string {
	return "material." + kind + strconv.Itoa(n)
}

// Binding puts one texture on a texture unit and points a sampler at it.
// Texture indexes the mesh's own textures; -1 selects the default for Kind.
type Binding struct {
	Unit    uint32
	Sampler string
	Kind    string
	Texture int
}

// Bindings lays a mesh's textures out on units 0..n-1, then adds one unit
// for every default kind the mesh has no texture of.
func Bindings(textures []TextureRef, defaultKinds []string) []Binding {
	names := SamplerNames(textures)
	have := make(map[string]bool, len(textures))
	out := make([]Binding, 0, len(textures)+len(defaultKinds))

	for i, t := range textures {
		have[t.Kind] = true
		out = append(out, Binding{Unit: uint32(i), Sampler: names[i], Kind: t.Kind, Texture: i})
	}
	for _, kind := range defaultKinds {
		if have[kind] {
			continue
		}
		out = append(out, Binding{Unit: uint32(len(out)), Sampler: samplerName(kind, 1), Kind: kind, Texture: -1})
	}
	return out
}

// setSamplers points every bound sampler at its unit.
func setSamplers(p shader.Uniforms, bindings []Binding) {
	for _, b := range bindings {
		p.SetInt(b.Sampler, int32(b.Unit))
	}
}
