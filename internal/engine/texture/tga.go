package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2
	TGATypeGray         = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayRLE      = 11
)

// TGA decoding errors.
var (
	ErrTGATruncated   = errors.New("tga: data truncated")
	ErrTGAUnsupported = errors.New("tga: unsupported image")
)

const tgaHeaderSize = 18

// DecodeTGA decodes a TGA image.
// Supports true-color (24/32 bit) and grayscale (8 bit), raw or RLE compressed.
// Grayscale images decode to *image.Gray, everything else to *image.NRGBA.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, ErrTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped", ErrTGAUnsupported)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d", ErrTGAUnsupported, width, height)
	}

	gray := imageType == TGATypeGray || imageType == TGATypeGrayRLE
	rle := imageType == TGATypeTrueColorRLE || imageType == TGATypeGrayRLE
	switch {
	case gray && bpp == 8:
	case !gray && (imageType == TGATypeTrueColor || rle) && (bpp == 24 || bpp == 32):
	default:
		return nil, fmt.Errorf("%w: type %d with %d bits", ErrTGAUnsupported, imageType, bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	d := &tgaDecoder{
		src:         data[offset:],
		width:       width,
		height:      height,
		bytesPerPix: bpp / 8,
		topDown:     descriptor&0x20 != 0,
	}
	if gray {
		d.gray = image.NewGray(image.Rect(0, 0, width, height))
	} else {
		d.color = image.NewNRGBA(image.Rect(0, 0, width, height))
	}

	var err error
	if rle {
		err = d.decodeRLE()
	} else {
		err = d.decodeRaw()
	}
	if err != nil {
		return nil, err
	}

	if gray {
		return d.gray, nil
	}
	return d.color, nil
}

type tgaDecoder struct {
	src         []byte
	pos         int
	width       int
	height      int
	bytesPerPix int
	topDown     bool

	gray  *image.Gray
	color *image.NRGBA
}

// put writes the n-th pixel in file order. Files are bottom-up unless the
// descriptor says otherwise; images are always top-down.
func (d *tgaDecoder) put(n int, px []byte) {
	x := n % d.width
	y := n / d.width
	if !d.topDown {
		y = d.height - 1 - y
	}

	if d.gray != nil {
		d.gray.Pix[y*d.gray.Stride+x] = px[0]
		return
	}

	i := y*d.color.Stride + x*4
	d.color.Pix[i] = px[2]
	d.color.Pix[i+1] = px[1]
	d.color.Pix[i+2] = px[0]
	if d.bytesPerPix == 4 {
		d.color.Pix[i+3] = px[3]
	} else {
		d.color.Pix[i+3] = 0xFF
	}
}

func (d *tgaDecoder) next() ([]byte, error) {
	if d.pos+d.bytesPerPix > len(d.src) {
		return nil, ErrTGATruncated
	}
	px := d.src[d.pos : d.pos+d.bytesPerPix]
	d.pos += d.bytesPerPix
	return px, nil
}

func (d *tgaDecoder) decodeRaw() error {
	total := d.width * d.height
	for n := 0; n < total; n++ {
		px, err := d.next()
		if err != nil {
			return err
		}
		d.put(n, px)
	}
	return nil
}

// decodeRLE reads run-length packets: high bit set repeats one pixel,
// clear copies the following pixels. Count is the low 7 bits plus one.
func (d *tgaDecoder) decodeRLE() error {
	total := d.width * d.height
	n := 0
	for n < total {
		if d.pos >= len(d.src) {
			return ErrTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			px, err := d.next()
			if err != nil {
				return err
			}
			for i := 0; i < count && n < total; i++ {
				d.put(n, px)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			px, err := d.next()
			if err != nil {
				return err
			}
			d.put(n, px)
			n++
		}
	}
	return nil
}
