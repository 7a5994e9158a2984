package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens the file at path, decodes it and normalizes it to RGB.
// Every failure matches ErrImageRead; the cause is wrapped alongside it.
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageRead, err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Decode reads one image from r with any registered decoder.
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageRead, err)
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageRead, err)
	}

	return img, nil
}

// FromImage converts any image.Image to a 3-channel RGB Image.
// Zero-area images are rejected with ErrEmptyImage.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("FromImage(%dx%d): %w", w, h, ErrEmptyImage)
	}

	pix := make([]uint8, w*h*Channels)
	switch s := src.(type) {
	case *image.NRGBA:
		copyRGB(pix, w, h, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), 4, 1)
	case *image.RGBA:
		// Premultiplied; identical to straight colour for opaque pixels,
		// which is what decoders produce for alpha-less sources.
		copyRGB(pix, w, h, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), 4, 1)
	case *image.NRGBA64:
		copyRGB(pix, w, h, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), 8, 2)
	case *image.Gray:
		copyGray(pix, w, h, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), 1)
	case *image.Gray16:
		copyGray(pix, w, h, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), 2)
	case *image.Paletted:
		copyPaletted(pix, w, h, s)
	default:
		copyGeneric(pix, w, h, src)
	}

	return &Image{width: w, height: h, pix: pix}, nil
}

// copyRGB copies the first three channels out of an interleaved buffer.
// bpp is bytes per pixel, bps bytes per sample (big-endian, high byte first).
func copyRGB(dst []uint8, w, h int, src []uint8, stride, base, bpp, bps int) {
	var (
		x, y, s int
		d       int
	)
	for y = 0; y < h; y++ {
		s = base + y*stride
		for x = 0; x < w; x++ {
			dst[d] = src[s]
			dst[d+1] = src[s+bps]
			dst[d+2] = src[s+2*bps]
			d += Channels
			s += bpp
		}
	}
}

// copyGray replicates a single luminance channel into R, G and B.
func copyGray(dst []uint8, w, h int, src []uint8, stride, base, bps int) {
	var (
		x, y, s int
		d       int
		v       uint8
	)
	for y = 0; y < h; y++ {
		s = base + y*stride
		for x = 0; x < w; x++ {
			v = src[s]
			dst[d], dst[d+1], dst[d+2] = v, v, v
			d += Channels
			s += bps
		}
	}
}

// copyPaletted expands palette indices. Palette entries are converted once.
func copyPaletted(dst []uint8, w, h int, src *image.Paletted) {
	lut := make([][Channels]uint8, len(src.Palette))
	for i, c := range src.Palette {
		lut[i] = straightRGB(c)
	}

	b := src.Bounds()
	var (
		x, y, d int
		idx     uint8
		rgb     [Channels]uint8
	)
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			idx = src.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
			if int(idx) < len(lut) {
				rgb = lut[idx]
			} else {
				rgb = [Channels]uint8{} // out-of-palette index decodes as black
			}
			dst[d], dst[d+1], dst[d+2] = rgb[0], rgb[1], rgb[2]
			d += Channels
		}
	}
}

// copyGeneric is the slow path through the color.Color interface (YCbCr,
// CMYK, RGBA64 and anything else).
func copyGeneric(dst []uint8, w, h int, src image.Image) {
	b := src.Bounds()
	var (
		x, y, d int
		rgb     [Channels]uint8
	)
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			rgb = straightRGB(src.At(b.Min.X+x, b.Min.Y+y))
			dst[d], dst[d+1], dst[d+2] = rgb[0], rgb[1], rgb[2]
			d += Channels
		}
	}
}

// straightRGB returns the non-premultiplied 8-bit colour channels of c.
func straightRGB(c color.Color) [Channels]uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return [Channels]uint8{n.R, n.G, n.B}
}
