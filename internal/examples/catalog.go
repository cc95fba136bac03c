package examples

import "github.com/Faultbox/learn-gl/internal/app/states"

// Chapters.
const (
	ChapterBasics   = "Getting started"
	ChapterLighting = "Lighting"
	ChapterModels   = "Model loading"
	ChapterAdvanced = "Advanced OpenGL"
)

func init() {
	for _, info := range catalog() {
		Register(info)
	}
}

// catalog lists the built-in examples in display order.
func catalog() []Info {
	return []Info{
		{"triangle", "Hello Triangle", ChapterBasics, func() states.State { return &Triangle{} }},
		{"indexed", "Indexed Quad", ChapterBasics, func() states.State { return &Indexed{} }},
		{"uniform", "Shader Uniforms", ChapterBasics, func() states.State { return &Uniform{} }},
		{"attributes", "Vertex Attributes", ChapterBasics, func() states.State { return &Attributes{} }},
		{"shader-class", "Shader Class", ChapterBasics, func() states.State { return &ShaderClass{} }},
		{"textures", "Textures", ChapterBasics, func() states.State { return &Textures{} }},
		{"textures-mix", "Texture Units", ChapterBasics, func() states.State { return &TexturesMix{} }},
		{"transform", "Transformations", ChapterBasics, func() states.State { return &Transform{} }},
		{"coordinates", "Coordinate Systems", ChapterBasics, func() states.State { return &Coordinates{} }},
		{"cubes", "Multiple Cubes", ChapterBasics, func() states.State { return &Cubes{} }},
		{"camera-orbit", "Camera: Orbit", ChapterBasics, func() states.State { return &CameraOrbit{} }},
		{"camera-euler", "Camera: Euler Angles", ChapterBasics, func() states.State { return &CameraEuler{} }},
		{"camera-class", "Camera Class", ChapterBasics, func() states.State { return &CameraClass{} }},
		{"colors", "Colors", ChapterLighting, func() states.State { return &Colors{} }},
		{"phong-ambient", "Phong: Ambient", ChapterLighting, func() states.State { return &Phong{Stage: PhongAmbient} }},
		{"phong-diffuse", "Phong: Diffuse", ChapterLighting, func() states.State { return &Phong{Stage: PhongDiffuse} }},
		{"phong-specular", "Phong: Specular", ChapterLighting, func() states.State { return &Phong{Stage: PhongSpecular, OrbitLight: true} }},
		{"materials", "Materials", ChapterLighting, func() states.State { return &Materials{} }},
		{"lighting-maps", "Lighting Maps", ChapterLighting, func() states.State { return &LightingMaps{} }},
		{"light-casters", "Light Casters", ChapterLighting, func() states.State { return &LightCasters{} }},
		{"model", "Model Loading", ChapterModels, func() states.State { return &Model{} }},
		{"skybox", "Cubemaps", ChapterAdvanced, func() states.State { return &Skybox{} }},
	}
}
