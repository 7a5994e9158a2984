package imageio_test

import (
	"testing"

	"github.com/katalvlaran/colscore/imageio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers the shape and buffer-length guards of New.
func TestNew_Validation(t *testing.T) {
	_, err := imageio.New(0, 1, nil)
	assert.ErrorIs(t, err, imageio.ErrEmptyImage)

	_, err = imageio.New(1, 0, nil)
	assert.ErrorIs(t, err, imageio.ErrEmptyImage)

	_, err = imageio.New(2, 1, []uint8{1, 2, 3})
	assert.ErrorIs(t, err, imageio.ErrInvalidPixels)
}

// TestNew_CopiesBuffer ensures the Image does not alias the caller's slice.
func TestNew_CopiesBuffer(t *testing.T) {
	pix := []uint8{1, 2, 3}
	img, err := imageio.New(1, 1, pix)
	require.NoError(t, err)

	pix[0] = 99
	r, _, _, err := img.RGB(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), r)
}

// TestColumn_RowMajorFlatten checks that a column vector lists rows top to
// bottom with R, G, B per row.
func TestColumn_RowMajorFlatten(t *testing.T) {
	// 2 columns × 3 rows.
	pix := []uint8{
		1, 2, 3, 10, 20, 30, // row 0
		4, 5, 6, 40, 50, 60, // row 1
		7, 8, 9, 70, 80, 90, // row 2
	}
	img, err := imageio.New(2, 3, pix)
	require.NoError(t, err)
	require.Equal(t, 2, img.Width())
	require.Equal(t, 3, img.Height())

	c0, err := img.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, c0)

	c1, err := img.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90}, c1)

	assert.Equal(t, [][]float64{c0, c1}, img.Columns())

	_, err = img.Column(2)
	assert.ErrorIs(t, err, imageio.ErrOutOfRange)
	_, err = img.Column(-1)
	assert.ErrorIs(t, err, imageio.ErrOutOfRange)
}

// TestRGB_OutOfRange verifies pixel access guards.
func TestRGB_OutOfRange(t *testing.T) {
	img, err := imageio.New(1, 1, []uint8{0, 0, 0})
	require.NoError(t, err)

	_, _, _, err = img.RGB(1, 0)
	assert.ErrorIs(t, err, imageio.ErrOutOfRange)
	_, _, _, err = img.RGB(0, -1)
	assert.ErrorIs(t, err, imageio.ErrOutOfRange)
}
