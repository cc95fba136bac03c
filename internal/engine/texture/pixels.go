package texture

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

// Format is the pixel layout uploaded to the GPU.
type Format int

// Pixel formats.
const (
	FormatRed Format = iota + 1
	FormatRGB
	FormatRGBA
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRed:
		return "RED"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return "unknown"
	}
}

// glFormats returns the internal format and pixel format enums.
func (f Format) glFormats() (internal int32, format uint32) {
	switch f {
	case FormatRed:
		return gl.R8, gl.RED
	case FormatRGB:
		return gl.RGB8, gl.RGB
	default:
		return gl.RGBA8, gl.RGBA
	}
}

// Channels reports how many channels the source image has (1, 3 or 4).
func Channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xFFFF {
				return 4
			}
		}
		return 3
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 3
		}
		return 4
	default:
		return 4
	}
}

// ToPixels converts img into tightly packed rows ready for upload.
// Single-channel images become RED; everything else becomes non-premultiplied RGBA.
// With flipY the first row of the result is the bottom row of the image.
func ToPixels(img image.Image, flipY bool) (pix []byte, width, height int, format Format) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()

	var rowBytes int
	if Channels(img) == 1 {
		gray := image.NewGray(image.Rect(0, 0, width, height))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
		pix, rowBytes, format = gray.Pix, gray.Stride, FormatRed
	} else {
		rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		pix, rowBytes, format = rgba.Pix, rgba.Stride, FormatRGBA
	}

	if flipY {
		flipRows(pix, rowBytes, height)
	}
	return pix, width, height, format
}

func flipRows(pix []byte, rowBytes, height int) {
	tmp := make([]byte, rowBytes)
	for y := 0; y < height/2; y++ {
		top := pix[y*rowBytes : (y+1)*rowBytes]
		bottom := pix[(height-1-y)*rowBytes : (height-y)*rowBytes]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Checkerboard draws a size×size image of cells×cells alternating squares.
// It stands in for textures that fail to load.
func Checkerboard(size, cells int, a, b color.Color) *image.NRGBA {
	if cells < 1 {
		cells = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	ua, ub := image.NewUniform(a), image.NewUniform(b)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			src := ua
			if (x/cell+y/cell)%2 == 1 {
				src = ub
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell), src, image.Point{}, draw.Src)
		}
	}
	return img
}

// Missing is the checkerboard used for textures that could not be loaded.
func Missing() *image.NRGBA {
	return Checkerboard(64, 8, color.NRGBA{R: 0xFF, B: 0xFF, A: 0xFF}, color.NRGBA{A: 0xFF})
}

// resize scales img to a size×size square.
func resize(img image.Image, size int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
