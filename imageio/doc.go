// Package imageio loads raster images and exposes them as immutable
// height×width×3 arrays of 8-bit RGB samples.
//
// Supported inputs are whatever the registered decoders understand:
// PNG, JPEG and GIF from the standard library, plus BMP, TIFF and WebP
// from golang.org/x/image. Every source colour model (alpha, palette,
// grayscale, 16-bit, YCbCr) is normalized to three 8-bit channels:
//
//   - alpha is dropped, straight (non-premultiplied) colour is kept;
//   - palette entries are expanded to their colour;
//   - grayscale is replicated to R=G=B;
//   - 16-bit samples keep their high byte.
//
// No resizing or recompression takes place.
//
// Usage:
//
//	img, err := imageio.Load("scan.png")
//	if errors.Is(err, imageio.ErrImageRead) {
//		// missing, unreadable or undecodable file
//	}
//	col, _ := img.Column(0) // len == img.Height()*3
package imageio
