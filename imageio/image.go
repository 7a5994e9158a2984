package imageio

import "fmt"

// Channels is the number of colour samples per pixel after normalization.
const Channels = 3

// Image is an immutable height×width×3 array of RGB samples.
// Samples are stored row-major: pix[(y*width+x)*3+ch].
type Image struct {
	width  int
	height int
	pix    []uint8
}

// New builds an Image from a row-major RGB buffer. The buffer is copied.
//
// Errors:
//   - ErrEmptyImage when width or height is not positive.
//   - ErrInvalidPixels when len(pix) != width*height*3.
func New(width, height int, pix []uint8) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%dx%d): %w", width, height, ErrEmptyImage)
	}
	if len(pix) != width*height*Channels {
		return nil, fmt.Errorf("New(%dx%d): got %d samples: %w", width, height, len(pix), ErrInvalidPixels)
	}
	cp := make([]uint8, len(pix))
	copy(cp, pix)

	return &Image{width: width, height: height, pix: cp}, nil
}

// Width returns the number of columns.
func (im *Image) Width() int { return im.width }

// Height returns the number of rows.
func (im *Image) Height() int { return im.height }

// RGB returns the colour samples of pixel (x, y).
func (im *Image) RGB(x, y int) (r, g, b uint8, err error) {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return 0, 0, 0, fmt.Errorf("RGB(%d,%d): %w", x, y, ErrOutOfRange)
	}
	off := (y*im.width + x) * Channels

	return im.pix[off], im.pix[off+1], im.pix[off+2], nil
}

// Column returns column c flattened top to bottom into height*3 components:
// [r(0) g(0) b(0) r(1) g(1) b(1) …]. The slice is freshly allocated.
func (im *Image) Column(c int) ([]float64, error) {
	if c < 0 || c >= im.width {
		return nil, fmt.Errorf("Column(%d): %w", c, ErrOutOfRange)
	}
	var (
		out     = make([]float64, 0, im.height*Channels)
		r, g, b uint8
		err     error
	)
	for y := 0; y < im.height; y++ {
		if r, g, b, err = im.RGB(c, y); err != nil {
			return nil, err
		}
		out = append(out, float64(r), float64(g), float64(b))
	}

	return out, nil
}

// Columns returns every column vector, left to right.
func (im *Image) Columns() [][]float64 {
	out := make([][]float64, im.width)
	for c := range out {
		out[c], _ = im.Column(c) // c is in range by construction
	}

	return out
}
