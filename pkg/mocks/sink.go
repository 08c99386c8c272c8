package mocks

import (
	"image"
	"sync"

	"github.com/user/mockshot/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	GeometryJSON []byte
	StyleYAML    []byte
	Layers       map[string]image.Image
	LayerOrder   []string
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Layers:  make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveGeometryJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GeometryJSON = data
	return nil
}

func (m *DebugSink) SaveStyleYAML(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StyleYAML = data
	return nil
}

func (m *DebugSink) SaveLayer(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layers[name] = img
	m.LayerOrder = append(m.LayerOrder, name)
	return nil
}

// Layer returns a saved layer (for test verification).
func (m *DebugSink) Layer(name string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.Layers[name]
	return img, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                { return false }
func (m *NullSink) SaveGeometryJSON(data []byte) error           { return nil }
func (m *NullSink) SaveStyleYAML(data []byte) error              { return nil }
func (m *NullSink) SaveLayer(name string, img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
