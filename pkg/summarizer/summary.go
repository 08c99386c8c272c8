// Package summarizer provides summary generation for render runs.
package summarizer

import "time"

// Summary contains all data collected during a render run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Style settings shared by every render
	Settings Settings

	// One entry per written image, in input order
	Renders []RenderInfo
}

// Settings contains the resolved style of the run.
type Settings struct {
	Frame        string
	Background   string
	Padding      int
	Zoom         float64
	BorderRadius float64
	Rotation     float64

	// Fixed output size; zero means derived from the image
	OutputWidth  int
	OutputHeight int

	ShadowBlur    float64
	ShadowOpacity float64 // 0-100
	TextOverlays  int

	Format  string
	Workers int
}

// RenderInfo contains information about one output image.
type RenderInfo struct {
	Input        string
	Output       string
	CanvasWidth  int
	CanvasHeight int
	FileSize     int64
}

// TotalBytes returns the combined size of every output.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, r := range s.Renders {
		total += r.FileSize
	}
	return total
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets the style settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddRender appends one output.
func (b *Builder) AddRender(render RenderInfo) *Builder {
	b.summary.Renders = append(b.summary.Renders, render)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
