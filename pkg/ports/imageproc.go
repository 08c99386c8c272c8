package ports

import (
	"image"
)

// ImageFormat specifies an encoded image format.
type ImageFormat int

const (
	FormatAuto ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatWebP
)

// ImageProcessor decodes, encodes and resamples raster images.
type ImageProcessor interface {
	// Decode decodes image data. FormatAuto sniffs the format.
	Decode(data []byte, format ImageFormat) (image.Image, error)

	// Encode encodes img. quality applies to lossy formats only.
	Encode(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// Resize resamples img to exactly width x height.
	Resize(img image.Image, width, height int) image.Image
}
