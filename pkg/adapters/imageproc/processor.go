// Package imageproc implements ports.ImageProcessor with imaging, webp and x/image.
package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/user/mockshot/pkg/ports"
)

// Processor implements ports.ImageProcessor.
type Processor struct{}

// New creates a new Processor.
func New() *Processor {
	return &Processor{}
}

// Decode decodes image data into an image.Image.
func (p *Processor) Decode(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	case ports.FormatWebP:
		return webp.Decode(reader)
	default:
		// png, jpeg and webp all register with image.Decode.
		img, _, err := image.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	}
}

// Encode encodes an image to the specified format.
func (p *Processor) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG, ports.FormatAuto:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatWebP:
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return nil, fmt.Errorf("encode WebP: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Resize resamples img to width x height. Downscaling uses Lanczos,
// upscaling uses Catmull-Rom. The result always has a (0,0) origin.
func (p *Processor) Resize(img image.Image, width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return imaging.Clone(img)
	}
	if width <= b.Dx() && height <= b.Dy() {
		return imaging.Resize(img, width, height, imaging.Lanczos)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// FormatFromPath picks an encoding from a file extension.
func FormatFromPath(path string) ports.ImageFormat {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		if strings.EqualFold(filepath.Ext(path), ".webp") {
			return ports.FormatWebP
		}
		return ports.FormatAuto
	}
	switch f {
	case imaging.JPEG:
		return ports.FormatJPEG
	case imaging.PNG:
		return ports.FormatPNG
	default:
		return ports.FormatAuto
	}
}

// ParseFormat maps a format name to an ImageFormat. An empty name is
// FormatAuto.
func ParseFormat(name string) (ports.ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ports.FormatAuto, nil
	case "png":
		return ports.FormatPNG, nil
	case "jpg", "jpeg":
		return ports.FormatJPEG, nil
	case "webp":
		return ports.FormatWebP, nil
	default:
		return ports.FormatAuto, fmt.Errorf("unsupported image format %q", name)
	}
}

var _ ports.ImageProcessor = (*Processor)(nil)
