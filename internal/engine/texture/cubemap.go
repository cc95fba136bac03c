package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cube face order, matching GL_TEXTURE_CUBE_MAP_POSITIVE_X + i.
const (
	FaceRight  = iota // +X
	FaceLeft          // -X
	FaceTop           // +Y
	FaceBottom        // -Y
	FaceFront         // +Z
	FaceBack          // -Z
)

// FaceNames lists face names in upload order.
var FaceNames = [6]string{"right", "left", "top", "bottom", "front", "back"}

// Cubemap is an uploaded cube map texture.
type Cubemap struct {
	ID   uint32
	Size int
}

// ValidateFaces checks that all six faces are present, square and equal in size.
// It returns the edge length.
func ValidateFaces(faces [6]image.Image) (int, error) {
	size := 0
	for i, f := range faces {
		if f == nil {
			return 0, fmt.Errorf("cubemap face %s missing", FaceNames[i])
		}
		b := f.Bounds()
		if b.Dx() != b.Dy() || b.Dx() == 0 {
			return 0, fmt.Errorf("cubemap face %s is %dx%d, want square", FaceNames[i], b.Dx(), b.Dy())
		}
		if i == 0 {
			size = b.Dx()
		} else if b.Dx() != size {
			return 0, fmt.Errorf("cubemap face %s is %d wide, want %d", FaceNames[i], b.Dx(), size)
		}
	}
	return size, nil
}

// LoadCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order.
// Faces are not flipped; cube map lookups expect top-down rows.
func LoadCubemap(faces [6]image.Image) (*Cubemap, error) {
	size, err := ValidateFaces(faces)
	if err != nil {
		return nil, err
	}

	c := &Cubemap{Size: size}
	gl.GenTextures(1, &c.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, face := range faces {
		pix, w, h, format := ToPixels(face, false)
		internal, pixFormat := format.glFormats()
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, internal,
			int32(w), int32(h), 0, pixFormat, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c, nil
}

// Bind binds the cube map to a texture unit.
func (c *Cubemap) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)
}

// Delete frees the GL texture.
func (c *Cubemap) Delete() {
	if c.ID != 0 {
		gl.DeleteTextures(1, &c.ID)
		c.ID = 0
	}
}
