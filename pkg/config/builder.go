package config

// Builder provides a fluent interface for overriding a Config, typically
// with command-line flags applied over a file.
type Builder struct {
	config Config
}

// NewBuilder creates a Builder starting from the defaults.
func NewBuilder() *Builder {
	return &Builder{config: Defaults()}
}

// From creates a Builder starting from cfg.
func From(cfg Config) *Builder {
	return &Builder{config: cfg}
}

// Build returns the final Config, applying constraints.
func (b *Builder) Build() Config {
	cfg := b.config

	if cfg.Padding < 0 {
		cfg.Padding = 0
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		cfg.Quality = 90
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg
}

// WithOutput sets the output path.
func (b *Builder) WithOutput(path string) *Builder {
	b.config.Output = path
	return b
}

// WithFormat sets the output format name.
func (b *Builder) WithFormat(format string) *Builder {
	b.config.Format = format
	return b
}

// WithQuality sets the lossy encoder quality (1-100).
func (b *Builder) WithQuality(quality int) *Builder {
	b.config.Quality = quality
	return b
}

// WithWorkers sets the number of concurrent renders.
func (b *Builder) WithWorkers(n int) *Builder {
	b.config.Workers = n
	return b
}

// WithFrame sets the frame kind name.
func (b *Builder) WithFrame(frame string) *Builder {
	b.config.Frame = frame
	return b
}

// WithPadding sets the padding around the content.
func (b *Builder) WithPadding(padding int) *Builder {
	b.config.Padding = padding
	return b
}

// WithZoom sets the image zoom.
func (b *Builder) WithZoom(zoom float64) *Builder {
	b.config.Zoom = zoom
	return b
}

// WithBorderRadius sets the corner radius.
func (b *Builder) WithBorderRadius(radius float64) *Builder {
	b.config.BorderRadius = radius
	return b
}

// WithRotation sets the content rotation in degrees.
func (b *Builder) WithRotation(degrees float64) *Builder {
	b.config.Rotation = degrees
	return b
}

// WithOutputSize fixes the canvas size. Zero on either side keeps it derived.
func (b *Builder) WithOutputSize(width, height int) *Builder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// WithBackground sets the background kind name.
func (b *Builder) WithBackground(kind string) *Builder {
	b.config.Background.Kind = kind
	return b
}

// WithBackgroundColor sets the solid background color.
func (b *Builder) WithBackgroundColor(hex string) *Builder {
	b.config.Background.Color = hex
	return b
}

// WithGradient sets the background gradient.
func (b *Builder) WithGradient(from, to string, angle float64) *Builder {
	b.config.Background.Gradient = GradientConfig{From: from, To: to, Angle: angle}
	return b
}

// WithMesh sets the mesh CSS.
func (b *Builder) WithMesh(css string) *Builder {
	b.config.Background.Mesh = css
	return b
}

// WithPatternText sets the textPattern text.
func (b *Builder) WithPatternText(text string) *Builder {
	b.config.Background.Text.Text = text
	return b
}

// WithLogo sets the logoPattern image path.
func (b *Builder) WithLogo(path string) *Builder {
	b.config.Background.Logo.Path = path
	return b
}

// WithShadow sets the shadow blur and opacity.
func (b *Builder) WithShadow(blur, opacity float64) *Builder {
	b.config.Shadow.Blur = blur
	b.config.Shadow.Opacity = opacity
	return b
}

// WithTextOverlay appends a text overlay.
func (b *Builder) WithTextOverlay(ov TextOverlayConfig) *Builder {
	b.config.TextOverlays = append(b.config.TextOverlays, ov)
	return b
}

// WithDebug enables debug output into dir. An empty dir keeps the current one.
func (b *Builder) WithDebug(debug bool, dir string) *Builder {
	b.config.Debug = debug
	if dir != "" {
		b.config.DebugDir = dir
	}
	return b
}
