// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/mockshot/pkg/ports"
)

// Sink saves debug output to files under a base directory:
//
//	geometry.json
//	style.yaml
//	layers/<name>.png
type Sink struct {
	baseDir   string
	fs        ports.FileSystem
	processor ports.ImageProcessor
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, processor ports.ImageProcessor) *Sink {
	return &Sink{
		baseDir:   baseDir,
		fs:        fs,
		processor: processor,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveGeometryJSON saves the layout geometry as JSON.
func (s *Sink) SaveGeometryJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "geometry.json")
	return s.fs.WriteFile(path, data)
}

// SaveStyleYAML saves the resolved style parameters as YAML.
func (s *Sink) SaveStyleYAML(data []byte) error {
	path := filepath.Join(s.baseDir, "style.yaml")
	return s.fs.WriteFile(path, data)
}

// SaveLayer saves one render layer as PNG.
func (s *Sink) SaveLayer(name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "layers")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.processor.Encode(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode layer %s: %w", name, err)
	}
	path := filepath.Join(dir, layerFileName(name))
	return s.fs.WriteFile(path, data)
}

func layerFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" {
		name = "layer"
	}
	return name + ".png"
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
