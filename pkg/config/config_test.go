package config

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/mockshot/pkg/pipeline"
)

func TestDefaultsToStyle(t *testing.T) {
	style, err := Defaults().ToStyle(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := pipeline.DefaultStyleParameters()
	if style.Padding != want.Padding || style.Zoom != want.Zoom || style.BorderRadius != want.BorderRadius {
		t.Errorf("expected default scalars, got padding %d zoom %v radius %v", style.Padding, style.Zoom, style.BorderRadius)
	}
	if style.Frame != pipeline.FrameNone {
		t.Errorf("expected no frame, got %s", style.Frame)
	}
	if style.Background.Kind != pipeline.BackgroundGradient {
		t.Errorf("expected gradient background, got %s", style.Background.Kind)
	}
	if got := color.NRGBAModel.Convert(style.Background.Gradient.From).(color.NRGBA); got != (color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}) {
		t.Errorf("unexpected gradient start %v", got)
	}
	if style.OutputSize.Positive() {
		t.Error("expected derived output size")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
frame: iphone
padding: 32
zoom: 0.5
width: 1200
height: 630
background:
  kind: mesh
  mesh: "radial-gradient(at 10% 20%, #ff0000 0px, transparent 50%)"
  text:
    positions: [top, bottom]
shadow:
  blur: 0
  opacity: 50
text_overlays:
  - id: title
    text: Hello
    x: 0.5
    y: 0.1
    color: "#fff"
    gradient:
      from: "#f00"
      to: "#00f"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BorderRadius != 12 {
		t.Errorf("expected unset fields to keep defaults, got radius %v", cfg.BorderRadius)
	}

	style, err := cfg.ToStyle(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.Frame != pipeline.FrameIPhone {
		t.Errorf("expected iphone, got %s", style.Frame)
	}
	if style.OutputSize != (pipeline.Dimension{Width: 1200, Height: 630}) {
		t.Errorf("unexpected output size %v", style.OutputSize)
	}
	if style.Background.Kind != pipeline.BackgroundMesh || style.Background.MeshCSS == "" {
		t.Errorf("expected mesh background, got %+v", style.Background)
	}
	if len(style.Background.Text.Positions) != 2 || style.Background.Text.Positions[1] != pipeline.TextBottom {
		t.Errorf("unexpected positions %v", style.Background.Text.Positions)
	}
	if style.Shadow.Opacity != 50 || style.Shadow.Blur != 0 {
		t.Errorf("unexpected shadow %+v", style.Shadow)
	}
	if len(style.TextOverlays) != 1 {
		t.Fatalf("expected 1 overlay, got %d", len(style.TextOverlays))
	}
	ov := style.TextOverlays[0]
	if ov.ID != "title" || ov.Gradient == nil || ov.Gradient.Angle != 90 {
		t.Errorf("unexpected overlay %+v", ov)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("padding: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("padding: 8\nframe: macos\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Padding != 8 || cfg.Frame != "macos" {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}, false},
		{"#0f0", color.NRGBA{G: 255, A: 255}, false},
		{"#0000ff80", color.NRGBA{B: 255, A: 0x80}, false},
		{"transparent", color.NRGBA{}, false},
		{"red", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := color.NRGBAModel.Convert(c).(color.NRGBA); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestToStyle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		color  bool
	}{
		{"background color", func(c *Config) { c.Background.Color = "nope" }, true},
		{"gradient", func(c *Config) { c.Background.Gradient.To = "#zzzzzz" }, true},
		{"shadow color", func(c *Config) { c.Shadow.Color = "blue" }, true},
		{"overlay color", func(c *Config) {
			c.TextOverlays = []TextOverlayConfig{{Text: "x", Color: "white"}}
		}, true},
		{"position", func(c *Config) { c.Background.Text.Positions = []string{"left"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			_, err := cfg.ToStyle(nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidColor) != tt.color {
				t.Errorf("ErrInvalidColor match = %v, want %v (%v)", !tt.color, tt.color, err)
			}
		})
	}
}

func TestToStyle_Logo(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 8, 8))
	cfg := NewBuilder().WithBackground("logoPattern").Build()

	style, err := cfg.ToStyle(logo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.Background.Logo.Image != logo {
		t.Error("expected logo image passed through")
	}
	if style.Background.Logo.Spacing != 1.5 || style.Background.Logo.Size != 0.12 {
		t.Errorf("expected default logo layout, got %+v", style.Background.Logo)
	}
}

func TestBuilder(t *testing.T) {
	cfg := NewBuilder().
		WithFrame("browser").
		WithPadding(-5).
		WithZoom(0).
		WithQuality(500).
		WithWorkers(0).
		WithOutputSize(800, 600).
		WithGradient("#000", "#fff", 45).
		WithShadow(4, 80).
		WithTextOverlay(TextOverlayConfig{Text: "Hi"}).
		WithDebug(true, "").
		Build()

	if cfg.Frame != "browser" {
		t.Errorf("expected browser, got %q", cfg.Frame)
	}
	if cfg.Padding != 0 {
		t.Errorf("expected padding clamped to 0, got %d", cfg.Padding)
	}
	if cfg.Zoom != 1 {
		t.Errorf("expected zoom reset to 1, got %v", cfg.Zoom)
	}
	if cfg.Quality != 90 {
		t.Errorf("expected quality reset to 90, got %d", cfg.Quality)
	}
	if cfg.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", cfg.Workers)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Background.Gradient.Angle != 45 {
		t.Errorf("unexpected gradient %+v", cfg.Background.Gradient)
	}
	if len(cfg.TextOverlays) != 1 {
		t.Errorf("expected 1 overlay, got %d", len(cfg.TextOverlays))
	}
	if !cfg.Debug || cfg.DebugDir != "./debug" {
		t.Errorf("expected debug into ./debug, got %v %q", cfg.Debug, cfg.DebugDir)
	}
}

func TestFrom(t *testing.T) {
	base := Defaults()
	base.Padding = 10
	cfg := From(base).WithRotation(5).Build()
	if cfg.Padding != 10 || cfg.Rotation != 5 {
		t.Errorf("unexpected config %+v", cfg)
	}
}
