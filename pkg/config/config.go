// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/stages/background"
)

// ErrInvalidColor is returned for color strings that are not hex colors.
var ErrInvalidColor = errors.New("config: invalid color")

// Config represents the full configuration for mockshot.
type Config struct {
	// Input/Output
	Output  string `yaml:"output"`
	Format  string `yaml:"format"`  // png, jpeg or webp; empty follows the output extension
	Quality int    `yaml:"quality"` // Lossy encoders only
	Workers int    `yaml:"workers"`

	// Layout
	Frame        string  `yaml:"frame"`
	Padding      int     `yaml:"padding"`
	Zoom         float64 `yaml:"zoom"`
	BorderRadius float64 `yaml:"border_radius"`
	Rotation     float64 `yaml:"rotation"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`

	// Style
	Background   BackgroundConfig    `yaml:"background"`
	Shadow       ShadowConfig        `yaml:"shadow"`
	TextOverlays []TextOverlayConfig `yaml:"text_overlays"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// BackgroundConfig represents the canvas backdrop.
type BackgroundConfig struct {
	Kind        string            `yaml:"kind"`
	Color       string            `yaml:"color"`
	Gradient    GradientConfig    `yaml:"gradient"`
	Mesh        string            `yaml:"mesh"`
	Text        TextPatternConfig `yaml:"text"`
	WaveFlipped bool              `yaml:"wave_flipped"`
	Logo        LogoConfig        `yaml:"logo"`
}

// GradientConfig represents a two-stop linear gradient.
type GradientConfig struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Angle float64 `yaml:"angle"`
}

// FontConfig represents a font request.
type FontConfig struct {
	Family string  `yaml:"family"`
	Weight string  `yaml:"weight"`
	Size   float64 `yaml:"size"`
}

// TextPatternConfig represents the textPattern background options.
type TextPatternConfig struct {
	Text      string     `yaml:"text"`
	Color     string     `yaml:"color"`
	Opacity   float64    `yaml:"opacity"`
	Positions []string   `yaml:"positions"`
	Font      FontConfig `yaml:"font"`
	Rows      int        `yaml:"rows"`
}

// LogoConfig represents the logoPattern background options.
// Path is resolved by the caller and passed to ToStyle as an image.
type LogoConfig struct {
	Path    string  `yaml:"path"`
	Opacity float64 `yaml:"opacity"`
	Size    float64 `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
}

// ShadowConfig represents the drop shadow.
type ShadowConfig struct {
	Blur    float64 `yaml:"blur"`
	Opacity float64 `yaml:"opacity"` // 0-100
	Color   string  `yaml:"color"`
}

// TextOverlayConfig represents a positioned text object.
type TextOverlayConfig struct {
	ID       string          `yaml:"id"`
	Text     string          `yaml:"text"`
	X        float64         `yaml:"x"`
	Y        float64         `yaml:"y"`
	Color    string          `yaml:"color"`
	Gradient *GradientConfig `yaml:"gradient"`
	Font     FontConfig      `yaml:"font"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Quality: 90,
		Workers: 4,

		Frame:        string(pipeline.FrameNone),
		Padding:      64,
		Zoom:         1,
		BorderRadius: 12,

		Background: BackgroundConfig{
			Kind:  string(pipeline.BackgroundGradient),
			Color: "#ffffff",
			Gradient: GradientConfig{
				From:  "#667eea",
				To:    "#764ba2",
				Angle: 135,
			},
			Text: TextPatternConfig{
				Color:     "#ffffff",
				Opacity:   0.15,
				Positions: []string{string(pipeline.TextCenter)},
				Font:      FontConfig{Family: "sans", Weight: string(pipeline.WeightBold)},
				Rows:      1,
			},
			Logo: LogoConfig{
				Opacity: 0.15,
				Size:    0.12,
				Spacing: 1.5,
			},
		},

		Shadow: ShadowConfig{
			Blur:    20,
			Opacity: 30,
			Color:   "#000000",
		},

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ParseColor parses a hex color string (#rgb, #rrggbb, #rrggbbaa) or
// "transparent".
func ParseColor(s string) (color.Color, error) {
	c, err := background.ParseHexColor(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// ToStyle converts Config to pipeline.StyleParameters. logo is the decoded
// logo image for logoPattern backgrounds and may be nil.
func (c Config) ToStyle(logo image.Image) (pipeline.StyleParameters, error) {
	style := pipeline.DefaultStyleParameters()

	style.Frame = pipeline.ParseFrameKind(c.Frame)
	style.Padding = c.Padding
	style.Zoom = c.Zoom
	style.BorderRadius = c.BorderRadius
	style.Rotation = c.Rotation
	style.OutputSize = pipeline.Dimension{Width: c.Width, Height: c.Height}

	bg, err := c.Background.toBackground(logo)
	if err != nil {
		return style, err
	}
	style.Background = bg

	style.Shadow = pipeline.Shadow{Blur: c.Shadow.Blur, Opacity: c.Shadow.Opacity}
	if style.Shadow.Color, err = colorOr(c.Shadow.Color, color.Black, "shadow.color"); err != nil {
		return style, err
	}

	for i, ov := range c.TextOverlays {
		out, err := ov.toOverlay()
		if err != nil {
			return style, fmt.Errorf("text_overlays[%d]: %w", i, err)
		}
		style.TextOverlays = append(style.TextOverlays, out)
	}

	return style, nil
}

func (b BackgroundConfig) toBackground(logo image.Image) (pipeline.Background, error) {
	bg := pipeline.DefaultStyleParameters().Background
	if b.Kind != "" {
		bg.Kind = pipeline.BackgroundKind(b.Kind)
	}

	var err error
	if bg.Color, err = colorOr(b.Color, bg.Color, "background.color"); err != nil {
		return bg, err
	}
	if bg.Gradient, err = b.Gradient.toGradient(bg.Gradient, "background.gradient"); err != nil {
		return bg, err
	}
	bg.MeshCSS = b.Mesh
	bg.WaveFlipped = b.WaveFlipped

	bg.Text.Text = b.Text.Text
	bg.Text.Opacity = b.Text.Opacity
	bg.Text.Rows = b.Text.Rows
	bg.Text.Font = b.Text.Font.toFontSpec()
	if bg.Text.Color, err = colorOr(b.Text.Color, bg.Text.Color, "background.text.color"); err != nil {
		return bg, err
	}
	if len(b.Text.Positions) > 0 {
		bg.Text.Positions = bg.Text.Positions[:0:0]
		for _, p := range b.Text.Positions {
			pos, err := parsePosition(p)
			if err != nil {
				return bg, err
			}
			bg.Text.Positions = append(bg.Text.Positions, pos)
		}
	}

	bg.Logo = pipeline.LogoPattern{
		Image:   logo,
		Opacity: b.Logo.Opacity,
		Size:    b.Logo.Size,
		Spacing: b.Logo.Spacing,
	}

	return bg, nil
}

func (g GradientConfig) toGradient(def pipeline.Gradient, field string) (pipeline.Gradient, error) {
	out := def
	var err error
	if out.From, err = colorOr(g.From, def.From, field+".from"); err != nil {
		return out, err
	}
	if out.To, err = colorOr(g.To, def.To, field+".to"); err != nil {
		return out, err
	}
	if g.Angle != 0 {
		out.Angle = g.Angle
	}
	return out, nil
}

func (f FontConfig) toFontSpec() pipeline.FontSpec {
	spec := pipeline.FontSpec{Family: f.Family, Weight: pipeline.WeightNormal, Size: f.Size}
	if strings.EqualFold(f.Weight, string(pipeline.WeightBold)) {
		spec.Weight = pipeline.WeightBold
	}
	return spec
}

func (t TextOverlayConfig) toOverlay() (pipeline.TextOverlay, error) {
	ov := pipeline.TextOverlay{
		ID:   t.ID,
		Text: t.Text,
		X:    t.X,
		Y:    t.Y,
		Font: t.Font.toFontSpec(),
	}

	var err error
	if ov.Color, err = colorOr(t.Color, color.White, "color"); err != nil {
		return ov, err
	}
	if t.Gradient != nil {
		g, err := t.Gradient.toGradient(pipeline.Gradient{From: color.White, To: color.White, Angle: 90}, "gradient")
		if err != nil {
			return ov, err
		}
		ov.Gradient = &g
	}
	return ov, nil
}

func parsePosition(s string) (pipeline.TextPosition, error) {
	switch pos := pipeline.TextPosition(strings.ToLower(strings.TrimSpace(s))); pos {
	case pipeline.TextTop, pipeline.TextCenter, pipeline.TextBottom:
		return pos, nil
	default:
		return "", fmt.Errorf("background.text.positions: unknown position %q", s)
	}
}

// colorOr parses s, or returns def when s is empty.
func colorOr(s string, def color.Color, field string) (color.Color, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}
