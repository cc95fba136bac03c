// Package lighting holds Phong material and light parameters and uploads them as uniforms.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/engine/shader"
)

// Material is a Phong material with constant colors.
type Material struct {
	Name      string
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Apply uploads the material to prefix.ambient, prefix.diffuse, prefix.specular and prefix.shininess.
func (m Material) Apply(u shader.Uniforms, prefix string) {
	u.SetVec3(prefix+".ambient", m.Ambient)
	u.SetVec3(prefix+".diffuse", m.Diffuse)
	u.SetVec3(prefix+".specular", m.Specular)
	u.SetFloat(prefix+".shininess", m.Shininess)
}

// MapMaterial samples diffuse and specular colors from textures.
type MapMaterial struct {
	DiffuseUnit  int32
	SpecularUnit int32
	Shininess    float32
}

// Apply uploads the sampler units and shininess.
func (m MapMaterial) Apply(u shader.Uniforms, prefix string) {
	u.SetInt(prefix+".diffuse", m.DiffuseUnit)
	u.SetInt(prefix+".specular", m.SpecularUnit)
	u.SetFloat(prefix+".shininess", m.Shininess)
}

// Material presets. Shininess is the table's coefficient scaled by 128.
var (
	Coral = Material{
		Name:      "coral",
		Ambient:   mgl32.Vec3{1.0, 0.5, 0.31},
		Diffuse:   mgl32.Vec3{1.0, 0.5, 0.31},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32,
	}
	Emerald = Material{
		Name:      "emerald",
		Ambient:   mgl32.Vec3{0.0215, 0.1745, 0.0215},
		Diffuse:   mgl32.Vec3{0.07568, 0.61424, 0.07568},
		Specular:  mgl32.Vec3{0.633, 0.727811, 0.633},
		Shininess: 76.8,
	}
	Jade = Material{
		Name:      "jade",
		Ambient:   mgl32.Vec3{0.135, 0.2225, 0.1575},
		Diffuse:   mgl32.Vec3{0.54, 0.89, 0.63},
		Specular:  mgl32.Vec3{0.316228, 0.316228, 0.316228},
		Shininess: 12.8,
	}
	Ruby = Material{
		Name:      "ruby",
		Ambient:   mgl32.Vec3{0.1745, 0.01175, 0.01175},
		Diffuse:   mgl32.Vec3{0.61424, 0.04136, 0.04136},
		Specular:  mgl32.Vec3{0.727811, 0.626959, 0.626959},
		Shininess: 76.8,
	}
	Gold = Material{
		Name:      "gold",
		Ambient:   mgl32.Vec3{0.24725, 0.1995, 0.0745},
		Diffuse:   mgl32.Vec3{0.75164, 0.60648, 0.22648},
		Specular:  mgl32.Vec3{0.628281, 0.555802, 0.366065},
		Shininess: 51.2,
	}
	Copper = Material{
		Name:      "copper",
		Ambient:   mgl32.Vec3{0.19125, 0.0735, 0.0225},
		Diffuse:   mgl32.Vec3{0.7038, 0.27048, 0.0828},
		Specular:  mgl32.Vec3{0.256777, 0.137622, 0.086014},
		Shininess: 12.8,
	}
	Chrome = Material{
		Name:      "chrome",
		Ambient:   mgl32.Vec3{0.25, 0.25, 0.25},
		Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
		Specular:  mgl32.Vec3{0.774597, 0.774597, 0.774597},
		Shininess: 76.8,
	}
)

// Materials lists the presets in display order.
var Materials = []Material{Coral, Emerald, Jade, Ruby, Gold, Copper, Chrome}

// MaterialByName returns the preset with the given name.
func MaterialByName(name string) (Material, bool) {
	for _, m := range Materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}
