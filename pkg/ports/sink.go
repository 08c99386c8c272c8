package ports

import (
	"image"
)

// DebugSink receives intermediate render results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveGeometryJSON saves the computed layout geometry.
	SaveGeometryJSON(data []byte) error

	// SaveStyleYAML saves the resolved style parameters.
	SaveStyleYAML(data []byte) error

	// SaveLayer saves one render layer (background, shadow, final, ...).
	SaveLayer(name string, img image.Image) error
}
