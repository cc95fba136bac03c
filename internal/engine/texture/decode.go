// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for file extensions Decode does not handle.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Decode decodes image data, choosing the codec from the file extension of name.
func Decode(name string, data []byte) (image.Image, error) {
	var (
		img image.Image
		err error
	)

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = DecodeTGA(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}
