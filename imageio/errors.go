package imageio

import "errors"

var (
	// ErrImageRead is returned by Load and Decode when the input cannot be
	// opened or decoded. The underlying cause stays reachable via errors.Is.
	ErrImageRead = errors.New("imageio: failed to read image")

	// ErrEmptyImage indicates an image with zero width or zero height.
	ErrEmptyImage = errors.New("imageio: image has no pixels")

	// ErrInvalidPixels indicates a pixel buffer whose length is not width*height*3.
	ErrInvalidPixels = errors.New("imageio: pixel buffer does not match dimensions")

	// ErrOutOfRange indicates a column or pixel coordinate outside the image.
	ErrOutOfRange = errors.New("imageio: coordinate out of range")
)
