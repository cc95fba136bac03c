// Package model turns parsed OBJ/MTL data into indexed meshes and uploads them to the GPU.
package model

import "github.com/go-gl/mathgl/mgl32"

// Texture kinds. The names double as the sampler prefix in shaders.
const (
	KindDiffuse  = "texture_diffuse"
	KindSpecular = "texture_specular"
	KindNormal   = "texture_normal"
	KindHeight   = "texture_height"
)

// VertexFloats is the number of float32 values in one packed Vertex.
const VertexFloats = 14

// Vertex is one mesh vertex. The field order matches the shader attribute locations.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

// TextureRef names a texture file and the role it plays in a material.
type TextureRef struct {
	Kind string
	Path string
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// emptyBounds returns inverted bounds that any point will extend.
func emptyBounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
}

// Extend grows the box to include p.
func (b *Bounds) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union grows the box to include o.
func (b *Bounds) Union(o Bounds) {
	b.Extend(o.Min)
	b.Extend(o.Max)
}

// Center returns the middle of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// MeshData is CPU-side geometry for one drawable mesh.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Textures []TextureRef
	Bounds   Bounds
}

// ModelData is a full model ready for upload. Texture paths are relative to Directory.
type ModelData struct {
	Directory string
	Meshes    []MeshData
	Bounds    Bounds
}

// BuildOptions controls post-processing while building meshes.
type BuildOptions struct {
	// FlipUVs mirrors V so images stored top-down sample correctly.
	FlipUVs bool
	// GenNormals creates smooth normals for faces without them.
	GenNormals bool
	// CalcTangents fills Tangent and Bitangent from texture coordinates.
	CalcTangents bool
}

// DefaultBuildOptions enables all post-processing.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{FlipUVs: true, GenNormals: true, CalcTangents: true}
}

// BuildStats reports what Build did.
type BuildStats struct {
	Meshes       int
	Triangles    int
	Vertices     int
	SkippedFaces int
}

// Pack flattens vertices into the interleaved float layout used by the GPU mesh.
func Pack(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*VertexFloats)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoords[0], v.TexCoords[1],
			v.Tangent[0], v.Tangent[1], v.Tangent[2],
			v.Bitangent[0], v.Bitangent[1], v.Bitangent[2],
		)
	}
	return out
}
