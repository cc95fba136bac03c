package model

import (
	"testing"
	"testing/fstest"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/pkg/formats/mtl"
)

const quadOBJ = `mtllib quad.mtl
o Quad
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl Crate
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const quadMTL = `newmtl Crate
Kd 1 1 1
map_Kd crate_diffuse.png
map_Ks crate_specular.png
map_Bump crate_normal.png
map_Ka crate_height.png
`

func decode(t *testing.T, src, mtlSrc string) (*obj.Decoder, map[string]mtl.Maps) {
	t.Helper()
	dec, maps, err := Decode([]byte(src), []byte(mtlSrc), "test")
	require.NoError(t, err)
	return dec, maps
}

func vec3Near(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v, got %v", want, got)
}

func TestBuildQuad(t *testing.T) {
	dec, _ := decode(t, quadOBJ, "")
	data, stats := Build(dec, nil, BuildOptions{CalcTangents: true})

	require.Len(t, data.Meshes, 1)
	m := data.Meshes[0]
	assert.Equal(t, "Quad", m.Name)
	assert.Len(t, m.Vertices, 4, "corners are shared")
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices, "fan triangulation")
	assert.Empty(t, m.Textures, "no materials given")

	assert.Equal(t, BuildStats{Meshes: 1, Triangles: 2, Vertices: 4}, stats)
	assert.Equal(t, mgl32.Vec3{-1, -1, 0}, data.Bounds.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, data.Bounds.Max)

	for _, v := range m.Vertices {
		vec3Near(t, mgl32.Vec3{1, 0, 0}, v.Tangent)
		vec3Near(t, mgl32.Vec3{0, 1, 0}, v.Bitangent)
		vec3Near(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	}
}

func TestBuildFlipUVs(t *testing.T) {
	dec, _ := decode(t, quadOBJ, "")
	data, _ := Build(dec, nil, BuildOptions{FlipUVs: true})
	v := data.Meshes[0].Vertices
	assert.Equal(t, mgl32.Vec2{0, 1}, v[0].TexCoords)
	assert.Equal(t, mgl32.Vec2{1, 0}, v[2].TexCoords)
}

func TestBuildGeneratesNormals(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	dec, _ := decode(t, src, "")
	data, _ := Build(dec, nil, BuildOptions{GenNormals: true})
	for _, v := range data.Meshes[0].Vertices {
		vec3Near(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	}
	assert.Equal(t, "test", data.Meshes[0].Name, "faces without an object get the default name")

	data, _ = Build(dec, nil, BuildOptions{})
	assert.Equal(t, mgl32.Vec3{}, data.Meshes[0].Vertices[0].Normal, "normals left empty when disabled")
}

func TestBuildSmoothNormalsAcrossEdge(t *testing.T) {
	// Two faces folded 90° along the X axis share an edge
	src := `v 0 0 0
v 1 0 0
v 1 0 -1
v 1 1 0
v 0 1 0
v 0 0 -1
f 1 2 3 6
f 1 2 4 5
`
	dec, _ := decode(t, src, "")
	data, _ := Build(dec, nil, BuildOptions{GenNormals: true})
	m := data.Meshes[0]

	// Vertex 0 sits on the shared edge: average of +Y and +Z
	want := mgl32.Vec3{0, 1, 1}.Normalize()
	vec3Near(t, want, m.Vertices[0].Normal)
}

func TestBuildMaterials(t *testing.T) {
	dec, maps := decode(t, quadOBJ, quadMTL)
	data, _ := Build(dec, maps, DefaultBuildOptions())
	textures := data.Meshes[0].Textures

	assert.Equal(t, []TextureRef{
		{KindDiffuse, "crate_diffuse.png"},
		{KindSpecular, "crate_specular.png"},
		{KindNormal, "crate_normal.png"},
		{KindHeight, "crate_height.png"},
	}, textures)
}

func TestBuildSplitsByMaterial(t *testing.T) {
	src := `o Box
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
usemtl Wood
f 1 2 3
usemtl Metal
f 1 3 4
usemtl Wood
f 2 3 4
`
	dec, _ := decode(t, src, "")
	data, stats := Build(dec, nil, BuildOptions{})

	require.Len(t, data.Meshes, 2)
	assert.Equal(t, "Box/Wood", data.Meshes[0].Name)
	assert.Equal(t, "Box/Metal", data.Meshes[1].Name)
	assert.Len(t, data.Meshes[0].Indices, 6)
	assert.Len(t, data.Meshes[1].Indices, 3)
	assert.Equal(t, 3, stats.Triangles)
}

func TestBuildSkipsBadFaces(t *testing.T) {
	dec := &obj.Decoder{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Objects: []obj.Object{{
			Name: "g",
			Faces: []obj.Face{
				{Vertices: []int{0, 1, 2}, Uvs: []int{-1, -1, -1}, Normals: []int{-1, -1, -1}},
				{Vertices: []int{0, 1, 7}, Uvs: []int{-1, -1, -1}, Normals: []int{-1, -1, -1}},
				{Vertices: []int{0, 1}, Uvs: []int{-1, -1}, Normals: []int{-1, -1}},
				{Vertices: []int{0, 1, 2}, Uvs: []int{3, -1, -1}, Normals: []int{-1, -1, -1}},
			},
		}},
	}

	data, stats := Build(dec, nil, BuildOptions{})
	assert.Equal(t, 2, stats.SkippedFaces)
	assert.Equal(t, 2, stats.Triangles)
	require.Len(t, data.Meshes, 1)
	assert.Equal(t, "g", data.Meshes[0].Name)
	assert.Len(t, data.Meshes[0].Vertices, 3, "an out of range uv counts as absent")
}

func TestBuildEmpty(t *testing.T) {
	data, stats := Build(&obj.Decoder{}, nil, DefaultBuildOptions())
	assert.Empty(t, data.Meshes)
	assert.Equal(t, Bounds{}, data.Bounds)
	assert.Equal(t, BuildStats{}, stats)

	data, _ = Build(nil, nil, DefaultBuildOptions())
	assert.Empty(t, data.Meshes)
}

func TestPrepareOBJ(t *testing.T) {
	src, libs := prepareOBJ([]byte("mtllib a.mtl b.mtl\nv 0 0 0\nf 1 1 1\n"), "cube")
	assert.Equal(t, []string{"a.mtl", "b.mtl"}, libs)
	assert.Equal(t, "o cube\nmtllib a.mtl b.mtl\nv 0 0 0\nf 1 1 1\n", string(src))

	named := []byte("o Box\nf 1 1 1\n")
	src, libs = prepareOBJ(named, "cube")
	assert.Equal(t, named, src)
	assert.Empty(t, libs)
}

func TestPositionKeyFarApart(t *testing.T) {
	a := positionKey(mgl32.Vec3{300000, 0, 0})
	b := positionKey(mgl32.Vec3{-300000, 0, 0})
	c := positionKey(mgl32.Vec3{900000, 0, 0})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, positionKey(mgl32.Vec3{1, 2, 3}), positionKey(mgl32.Vec3{1, 2, 3}))
}

func TestGenerateNormalsFarFromOrigin(t *testing.T) {
	// Two triangles facing opposite ways, far enough apart to overflow 32-bit keys
	vertices := []Vertex{
		{Position: mgl32.Vec3{300000, 0, 0}},
		{Position: mgl32.Vec3{300001, 0, 0}},
		{Position: mgl32.Vec3{300000, 1, 0}},
		{Position: mgl32.Vec3{-300000, 0, 0}},
		{Position: mgl32.Vec3{-300000, 1, 0}},
		{Position: mgl32.Vec3{-299999, 0, 0}},
	}
	indices := []uint32{0, 1, 2, 3, 4, 5}
	generateNormals(vertices, indices, []uint32{0, 3})

	vec3Near(t, mgl32.Vec3{0, 0, 1}, vertices[0].Normal)
	vec3Near(t, mgl32.Vec3{0, 0, -1}, vertices[3].Normal)
}

func TestMeshNames(t *testing.T) {
	assert.Equal(t, "body/steel", meshName("body", "steel"))
	assert.Equal(t, "arm", meshName("", "arm"))
	assert.Equal(t, "body", meshName("body", ""))
}

func TestSamplerNames(t *testing.T) {
	refs := []TextureRef{
		{KindDiffuse, "a.png"},
		{KindDiffuse, "b.png"},
		{KindSpecular, "c.png"},
		{KindNormal, "d.png"},
		{KindDiffuse, "e.png"},
		{KindHeight, "f.png"},
	}
	assert.Equal(t, []string{
		"material.texture_diffuse1",
		"material.texture_diffuse2",
		"material.texture_specular1",
		"material.texture_normal1",
		"material.texture_diffuse3",
		"material.texture_height1",
	}, SamplerNames(refs))

	assert.Empty(t, SamplerNames(nil))
}

func TestPack(t *testing.T) {
	v := Vertex{
		Position:  mgl32.Vec3{1, 2, 3},
		Normal:    mgl32.Vec3{4, 5, 6},
		TexCoords: mgl32.Vec2{7, 8},
		Tangent:   mgl32.Vec3{9, 10, 11},
		Bitangent: mgl32.Vec3{12, 13, 14},
	}
	packed := Pack([]Vertex{v, v})
	require.Len(t, packed, 2*VertexFloats)
	for i := 0; i < VertexFloats; i++ {
		assert.Equal(t, float32(i+1), packed[i])
		assert.Equal(t, float32(i+1), packed[VertexFloats+i])
	}
}

func TestBounds(t *testing.T) {
	b := emptyBounds()
	b.Extend(mgl32.Vec3{1, -2, 3})
	b.Extend(mgl32.Vec3{-1, 2, 0})
	assert.Equal(t, mgl32.Vec3{-1, -2, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, b.Max)
	assert.Equal(t, mgl32.Vec3{0, 0, 1.5}, b.Center())

	o := Bounds{Min: mgl32.Vec3{-5, 0, 0}, Max: mgl32.Vec3{0, 0, 9}}
	b.Union(o)
	assert.Equal(t, float32(-5), b.Min[0])
	assert.Equal(t, float32(9), b.Max[2])
}

func TestLoadData(t *testing.T) {
	m := assets.NewManager()
	m.AddFS("test", fstest.MapFS{
		"models/crate/quad.obj": {Data: []byte(quadOBJ)},
		"models/crate/quad.mtl": {Data: []byte(quadMTL)},
	})

	data, stats, err := LoadData(m, "models/crate/quad.obj", DefaultBuildOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Meshes)
	assert.Equal(t, "models/crate", data.Directory)
	require.Len(t, data.Meshes[0].Textures, 4)
	assert.Equal(t, "models/crate/crate_diffuse.png", data.TexturePath(data.Meshes[0].Textures[0]))
}

func TestLoadDataMissingMaterialLibrary(t *testing.T) {
	m := assets.NewManager()
	m.AddFS("test", fstest.MapFS{
		"quad.obj": {Data: []byte(quadOBJ)},
	})

	data, _, err := LoadData(m, "quad.obj", DefaultBuildOptions())
	require.NoError(t, err)
	assert.Empty(t, data.Meshes[0].Textures)
}

func TestLoadDataErrors(t *testing.T) {
	m := assets.NewManager()
	m.AddFS("test", fstest.MapFS{
		"empty.obj": {Data: []byte("v 1 2 3\n")},
	})

	_, _, err := LoadData(m, "missing.obj", DefaultBuildOptions())
	assert.ErrorIs(t, err, assets.ErrNotFound)

	_, _, err = LoadData(m, "empty.obj", DefaultBuildOptions())
	assert.ErrorContains(t, err, "no drawable faces")
}

// recordingUniforms keeps the last value set for each int uniform.
type recordingUniforms struct {
	shader.Uniforms
	ints map[string]int32
}

func (r *recordingUniforms) SetInt(name string, v int32) {
	r.ints[name] = v
}

func TestBindingsDefaults(t *testing.T) {
	defaults := []string{KindDiffuse, KindSpecular}

	tests := []struct {
		name     string
		textures []TextureRef
		want     []Binding
	}{
		{
			name:     "own maps",
			textures: []TextureRef{{KindDiffuse, "d.png"}, {KindSpecular, "s.png"}},
			want: []Binding{
				{Unit: 0, Sampler: "material.texture_diffuse1", Kind: KindDiffuse, Texture: 0},
				{Unit: 1, Sampler: "material.texture_specular1", Kind: KindSpecular, Texture: 1},
			},
		},
		{
			name: "no maps",
			want: []Binding{
				{Unit: 0, Sampler: "material.texture_diffuse1", Kind: KindDiffuse, Texture: -1},
				{Unit: 1, Sampler: "material.texture_specular1", Kind: KindSpecular, Texture: -1},
			},
		},
		{
			name:     "specular only",
			textures: []TextureRef{{KindSpecular, "s.png"}},
			want: []Binding{
				{Unit: 0, Sampler: "material.texture_specular1", Kind: KindSpecular, Texture: 0},
				{Unit: 1, Sampler: "material.texture_diffuse1", Kind: KindDiffuse, Texture: -1},
			},
		},
		{
			name:     "normal map keeps its unit",
			textures: []TextureRef{{KindNormal, "n.png"}},
			want: []Binding{
				{Unit: 0, Sampler: "material.texture_normal1", Kind: KindNormal, Texture: 0},
				{Unit: 1, Sampler: "material.texture_diffuse1", Kind: KindDiffuse, Texture: -1},
				{Unit: 2, Sampler: "material.texture_specular1", Kind: KindSpecular, Texture: -1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bindings(tt.textures, defaults))
		})
	}
}

func TestSamplersResetBetweenMeshes(t *testing.T) {
	u := &recordingUniforms{ints: make(map[string]int32)}
	defaults := []string{KindDiffuse, KindSpecular}

	// A textured mesh, then one with only a specular map
	setSamplers(u, Bindings([]TextureRef{{KindDiffuse, "d.png"}, {KindSpecular, "s.png"}}, defaults))
	assert.Equal(t, int32(0), u.ints["material.texture_diffuse1"])

	setSamplers(u, Bindings([]TextureRef{{KindSpecular, "s.png"}}, defaults))
	assert.Equal(t, int32(0), u.ints["material.texture_specular1"])
	assert.Equal(t, int32(1), u.ints["material.texture_diffuse1"], "diffuse must not share the specular unit")
}

func TestDefaultsKinds(t *testing.T) {
	var none Defaults
	assert.Empty(t, none.kinds())
}
