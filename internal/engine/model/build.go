package model

import (
	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/pkg/formats/mtl"
)

// Build converts decoded OBJ data into meshes, one per object and material.
// maps may be nil; it supplies the texture maps the decoder does not read.
func Build(dec *obj.Decoder, maps map[string]mtl.Maps, opts BuildOptions) (*ModelData, BuildStats) {
	data := &ModelData{Bounds: emptyBounds()}
	var stats BuildStats

	if dec != nil {
		for _, object := range dec.Objects {
			parts := splitByMaterial(object.Faces)
			for _, part := range parts {
				name := object.Name
				if len(parts) > 1 {
					name = meshName(object.Name, part.material)
				}

				m, skipped := buildMesh(dec, name, part.faces, opts)
				stats.SkippedFaces += skipped
				if len(m.Indices) == 0 {
					continue
				}
				m.Textures = materialTextures(dec.Materials[part.material], maps[part.material])

				stats.Meshes++
				stats.Triangles += len(m.Indices) / 3
				stats.Vertices += len(m.Vertices)
				data.Bounds.Union(m.Bounds)
				data.Meshes = append(data.Meshes, m)
			}
		}
	}

	if len(data.Meshes) == 0 {
		data.Bounds = Bounds{}
	}
	return data, stats
}

// facePart is a run of faces sharing a material.
type facePart struct {
	material string
	faces    []obj.Face
}

// splitByMaterial groups faces by material in first-use order.
func splitByMaterial(faces []obj.Face) []facePart {
	var parts []facePart
	index := make(map[string]int)
	for _, f := range faces {
		i, ok := index[f.Material]
		if !ok {
			i = len(parts)
			index[f.Material] = i
			parts = append(parts, facePart{material: f.Material})
		}
		parts[i].faces = append(parts[i].faces, f)
	}
	return parts
}

// corner references a position, texture coordinate and normal.
// t and n are -1 when absent.
type corner struct {
	v, t, n int
}

func buildMesh(dec *obj.Decoder, name string, faces []obj.Face, opts BuildOptions) (MeshData, int) {
	m := MeshData{Name: name, Bounds: emptyBounds()}

	// Identical corners share one vertex
	seen := make(map[corner]uint32)
	// Corners that need a generated normal, keyed by their vertex index
	var needNormals []uint32
	skipped := 0

	for _, face := range faces {
		cs, ok := faceCorners(dec, face)
		if !ok {
			skipped++
			continue
		}

		idx := make([]uint32, len(cs))
		for i, c := range cs {
			if vi, ok := seen[c]; ok {
				idx[i] = vi
				continue
			}

			v := Vertex{Position: vec3At(dec.Vertices, c.v)}
			if c.n >= 0 {
				v.Normal = vec3At(dec.Normals, c.n)
			}
			if c.t >= 0 {
				v.TexCoords = mgl32.Vec2{dec.Uvs[c.t*2], dec.Uvs[c.t*2+1]}
				if opts.FlipUVs {
					v.TexCoords[1] = 1 - v.TexCoords[1]
				}
			}

			vi := uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, v)
			m.Bounds.Extend(v.Position)
			seen[c] = vi
			idx[i] = vi
			if c.n < 0 {
				needNormals = append(needNormals, vi)
			}
		}

		// Fan triangulation: (0, i, i+1)
		for i := 1; i+1 < len(idx); i++ {
			m.Indices = append(m.Indices, idx[0], idx[i], idx[i+1])
		}
	}

	if opts.GenNormals && len(needNormals) > 0 {
		generateNormals(m.Vertices, m.Indices, needNormals)
	}
	if opts.CalcTangents {
		calcTangents(m.Vertices, m.Indices)
	}
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
	}
	return m, skipped
}

// faceCorners resolves a face against the decoder's arrays. Faces with fewer
// than three corners or a position outside the array are rejected. Texture
// and normal references outside their arrays count as absent.
func faceCorners(dec *obj.Decoder, face obj.Face) ([]corner, bool) {
	if len(face.Vertices) < 3 {
		return nil, false
	}
	positions := len(dec.Vertices) / 3
	uvs := len(dec.Uvs) / 2
	normals := len(dec.Normals) / 3

	out := make([]corner, len(face.Vertices))
	for i, v := range face.Vertices {
		if v < 0 || v >= positions {
			return nil, false
		}
		out[i] = corner{
			v: v,
			t: optionalIndex(face.Uvs, i, uvs),
			n: optionalIndex(face.Normals, i, normals),
		}
	}
	return out, true
}

func optionalIndex(refs []int, i, count int) int {
	if i >= len(refs) || refs[i] < 0 || refs[i] >= count {
		return -1
	}
	return refs[i]
}

func vec3At(a []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{a[i*3], a[i*3+1], a[i*3+2]}
}

func meshName(object, part string) string {
	switch {
	case object != "" && part != "":
		return object + "/" + part
	case part != "":
		return part
	default:
		return object
	}
}

// materialTextures lists a material's maps in diffuse, specular, normal, height order.
// The diffuse map comes from the decoder; the rest from the supplementary maps.
func materialTextures(mat *obj.Material, extra mtl.Maps) []TextureRef {
	var refs []TextureRef
	add := func(kind, path string) {
		if path != "" {
			refs = append(refs, TextureRef{Kind: kind, Path: path})
		}
	}
	if mat != nil {
		add(KindDiffuse, mtl.CleanPath(mat.MapKd))
	}
	add(KindSpecular, extra.Specular)
	add(KindNormal, extra.Normal)
	// Height maps ride in the ambient slot of OBJ exporters
	add(KindHeight, extra.Ambient)
	return refs
}

// positionKey quantizes a position so nearly equal points share a key.
func positionKey(p mgl32.Vec3) [3]int64 {
	const epsilon = 0.0001
	return [3]int64{
		int64(float64(p[0]) / epsilon),
		int64(float64(p[1]) / epsilon),
		int64(float64(p[2]) / epsilon),
	}
}

// generateNormals gives the listed vertices an area-weighted average of the
// face normals around their position.
func generateNormals(vertices []Vertex, indices []uint32, targets []uint32) {
	sums := make(map[[3]int64]mgl32.Vec3)
	for i := 0; i+2 < len(indices); i += 3 {
		p0 := vertices[indices[i]].Position
		p1 := vertices[indices[i+1]].Position
		p2 := vertices[indices[i+2]].Position
		// Unnormalized cross product weights by triangle area
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		for _, p := range []mgl32.Vec3{p0, p1, p2} {
			k := positionKey(p)
			sums[k] = sums[k].Add(n)
		}
	}

	for _, vi := range targets {
		n := sums[positionKey(vertices[vi].Position)]
		if n.Len() < 1e-12 {
			continue
		}
		vertices[vi].Normal = n.Normalize()
	}
}

// calcTangents accumulates per-triangle tangent frames onto vertices and
// orthogonalizes them against the normal.
func calcTangents(vertices []Vertex, indices []uint32) {
	tan := make([]mgl32.Vec3, len(vertices))
	bitan := make([]mgl32.Vec3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0, v1, v2 := vertices[i0], vertices[i1], vertices[i2]

		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)
		du1 := v1.TexCoords[0] - v0.TexCoords[0]
		dv1 := v1.TexCoords[1] - v0.TexCoords[1]
		du2 := v2.TexCoords[0] - v0.TexCoords[0]
		dv2 := v2.TexCoords[1] - v0.TexCoords[1]

		det := du1*dv2 - du2*dv1
		if det > -1e-8 && det < 1e-8 {
			continue
		}
		r := 1 / det
		t := e1.Mul(dv2).Sub(e2.Mul(dv1)).Mul(r)
		b := e2.Mul(du1).Sub(e1.Mul(du2)).Mul(r)

		for _, vi := range []uint32{i0, i1, i2} {
			tan[vi] = tan[vi].Add(t)
			bitan[vi] = bitan[vi].Add(b)
		}
	}

	for i := range vertices {
		n := vertices[i].Normal
		t := tan[i]
		if t.Len() < 1e-12 {
			continue
		}
		// Gram-Schmidt
		if n.Len() > 0 {
			t = t.Sub(n.Mul(n.Dot(t)))
		}
		if t.Len() < 1e-12 {
			continue
		}
		t = t.Normalize()

		b := bitan[i]
		if n.Len() > 0 {
			b = n.Cross(t)
			if b.Dot(bitan[i]) < 0 {
				b = b.Mul(-1)
			}
		}
		if b.Len() > 0 {
			b = b.Normalize()
		}
		vertices[i].Tangent = t
		vertices[i].Bitangent = b
	}
}
