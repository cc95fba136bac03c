package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options controls sampling state and upload behavior.
type Options struct {
	FlipY     bool
	WrapS     int32
	WrapT     int32
	MinFilter int32
	MagFilter int32
	Mipmaps   bool
}

// DefaultOptions repeats, filters trilinearly and flips rows so that
// image tops land at v=1.
func DefaultOptions() Options {
	return Options{
		FlipY:     true,
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		Mipmaps:   true,
	}
}

// Texture is an uploaded 2D texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
	Format Format
	Path   string
}

// Upload2D uploads img as a new 2D texture.
func Upload2D(img image.Image, opts Options) (*Texture, error) {
	pix, w, h, format := ToPixels(img, opts.FlipY)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("texture has no pixels (%dx%d)", w, h)
	}

	t := &Texture{Width: w, Height: h, Format: format}
	internal, pixFormat := format.glFormats()

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(w), int32(h), 0, pixFormat, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	if format == FormatRed {
		// Sample gray images as gray, not red
		swizzle := [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter(opts))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// minFilter drops mipmap filtering when no mipmaps are generated,
// otherwise the texture would be incomplete.
func minFilter(opts Options) int32 {
	if opts.Mipmaps {
		return opts.MinFilter
	}
	switch opts.MinFilter {
	case gl.NEAREST_MIPMAP_NEAREST, gl.NEAREST_MIPMAP_LINEAR:
		return gl.NEAREST
	case gl.LINEAR_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_LINEAR:
		return gl.LINEAR
	}
	return opts.MinFilter
}

// Bind binds the texture to a texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete frees the GL texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
