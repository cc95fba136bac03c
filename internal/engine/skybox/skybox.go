// Package skybox draws a cube map around the camera.
package skybox

import (
	"fmt"
	"path"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learn-gl/internal/engine/mesh"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
)

// Vertices are the eight corners of a 2×2×2 cube.
var Vertices = []float32{
	-1, -1, 1, // 0
	1, -1, 1, // 1
	1, -1, -1, // 2
	-1, -1, -1, // 3
	-1, 1, 1, // 4
	1, 1, 1, // 5
	1, 1, -1, // 6
	-1, 1, -1, // 7
}

// Indices wind every triangle counter-clockwise as seen from outside, so the
// sky must be drawn with face culling off.
var Indices = []uint32{
	// +X
	1, 2, 6,
	6, 5, 1,
	// -X
	0, 4, 7,
	7, 3, 0,
	// +Y
	4, 5, 6,
	6, 7, 4,
	// -Y
	0, 3, 2,
	2, 1, 0,
	// +Z
	0, 1, 5,
	5, 4, 0,
	// -Z
	3, 7, 6,
	6, 2, 3,
}

// FacePaths returns the six face files in cube map upload order
// (right, left, top, bottom, front, back), e.g. dir/right.bmp.
func FacePaths(dir, ext string) [6]string {
	var paths [6]string
	for i, name := range texture.FaceNames {
		paths[i] = path.Join(dir, name+ext)
	}
	return paths
}

// Skybox draws a cube map behind everything else.
type Skybox struct {
	cube    *mesh.Mesh
	cubemap *texture.Cubemap
	program *shader.Program
}

// New creates the cube geometry. The skybox does not own cubemap or program.
func New(cubemap *texture.Cubemap, program *shader.Program) (*Skybox, error) {
	cube, err := mesh.New(Vertices, Indices, mesh.Position)
	if err != nil {
		return nil, fmt.Errorf("skybox cube: %w", err)
	}
	return &Skybox{cube: cube, cubemap: cubemap, program: program}, nil
}

// Draw renders the sky. view may contain translation; it is stripped so the
// sky stays centered on the camera. Depth testing uses LEQUAL so the sky,
// written at depth 1.0, only fills pixels nothing else covered.
func (s *Skybox) Draw(view, projection mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)

	s.program.Bind()
	s.program.SetMat4("view", RotationOnly(view))
	s.program.SetMat4("projection", projection)
	s.program.SetInt("skybox", 0)
	s.cubemap.Bind(0)
	s.cube.Draw()

	gl.DepthFunc(gl.LESS)
}

// RotationOnly drops the translation part of a view matrix.
func RotationOnly(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// Delete frees the cube geometry.
func (s *Skybox) Delete() {
	s.cube.Delete()
}
