// Package fonts resolves FontSpec requests to font faces. The Go font family
// is embedded as the default; custom TTF/OTF data can be registered per
// family and weight.
package fonts

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/mockshot/pkg/pipeline"
)

// DefaultSize is used when a FontSpec carries no size.
const DefaultSize = 48

type key struct {
	family string
	bold   bool
}

var builtin = map[key][]byte{
	{"sans", false}: goregular.TTF,
	{"sans", true}:  gobold.TTF,
	{"mono", false}: gomono.TTF,
	{"mono", true}:  gomonobold.TTF,
}

// Library parses font data once and hands out faces at any size.
// Faces are not safe for concurrent use; every call returns a fresh one.
type Library struct {
	mu     sync.Mutex
	data   map[key][]byte
	parsed map[key]*opentype.Font
}

// NewLibrary creates a Library seeded with the embedded Go fonts.
func NewLibrary() *Library {
	data := make(map[key][]byte, len(builtin))
	for k, v := range builtin {
		data[k] = v
	}
	return &Library{
		data:   data,
		parsed: make(map[key]*opentype.Font),
	}
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the shared Library.
func Default() *Library {
	defaultOnce.Do(func() { defaultLib = NewLibrary() })
	return defaultLib
}

// Register adds or replaces the font used for family at weight.
func (l *Library) Register(family string, weight pipeline.FontWeight, ttf []byte) error {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", family, err)
	}
	k := key{family: normalizeFamily(family), bold: weight == pipeline.WeightBold}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.data[k] = ttf
	l.parsed[k] = parsed
	return nil
}

// Face returns a face for spec. size overrides spec.Size when positive.
// Unknown families fall back to sans.
func (l *Library) Face(spec pipeline.FontSpec, size float64) (font.Face, error) {
	if size <= 0 {
		size = spec.Size
	}
	if size <= 0 {
		size = DefaultSize
	}

	f, err := l.font(key{family: normalizeFamily(spec.Family), bold: spec.Weight == pipeline.WeightBold})
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func (l *Library) font(k key) (*opentype.Font, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.parsed[k]; ok {
		return f, nil
	}
	data, ok := l.data[k]
	if !ok {
		k.family = "sans"
		if f, ok := l.parsed[k]; ok {
			return f, nil
		}
		data = l.data[k]
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	l.parsed[k] = f
	return f, nil
}

// normalizeFamily folds CSS-ish family names onto the registered keys.
func normalizeFamily(family string) string {
	f := strings.ToLower(strings.TrimSpace(family))
	switch f {
	case "", "sans-serif", "system-ui", "inter":
		return "sans"
	case "monospace", "code":
		return "mono"
	default:
		return f
	}
}
