package mocks

import (
	"image"
	"sync"

	"github.com/user/mockshot/pkg/ports"
)

// ImageProcessor is a mock implementation of ports.ImageProcessor.
type ImageProcessor struct {
	mu sync.Mutex

	DecodeFunc func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeFunc func(img image.Image, width, height int) image.Image

	EncodeCalls int
	ResizeCalls int
}

func (m *ImageProcessor) Decode(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *ImageProcessor) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.EncodeCalls++
	m.mu.Unlock()
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

func (m *ImageProcessor) Resize(img image.Image, width, height int) image.Image {
	m.mu.Lock()
	m.ResizeCalls++
	m.mu.Unlock()
	if m.ResizeFunc != nil {
		return m.ResizeFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.ImageProcessor = (*ImageProcessor)(nil)
