package pipeline

import (
	"image"
	"image/color"

	"github.com/user/mockshot/pkg/canvaspool"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Positive reports whether both width and height are greater than zero.
func (d Dimension) Positive() bool {
	return d.Width > 0 && d.Height > 0
}

// Point represents a pixel position.
type Point struct {
	X int
	Y int
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// =============================================================================
// Frame Types
// =============================================================================

// FrameKind identifies a device or window mockup drawn around the image.
type FrameKind string

const (
	FrameNone    FrameKind = "none"
	FrameBrowser FrameKind = "browser"
	FrameMacOS   FrameKind = "macos"
	FrameWindows FrameKind = "windows"
	FrameIPhone  FrameKind = "iphone"
	FrameAndroid FrameKind = "android"
)

// ParseFrameKind maps a name to a FrameKind. Unknown names map to FrameNone.
func ParseFrameKind(s string) FrameKind {
	switch FrameKind(s) {
	case FrameBrowser, FrameMacOS, FrameWindows, FrameIPhone, FrameAndroid:
		return FrameKind(s)
	default:
		return FrameNone
	}
}

// IsPhone reports whether the frame is a phone bezel whose size follows the zoom.
func (k FrameKind) IsPhone() bool {
	return k == FrameIPhone || k == FrameAndroid
}

// IsWindow reports whether the frame is a desktop window or browser chrome.
func (k FrameKind) IsWindow() bool {
	return k == FrameBrowser || k == FrameMacOS || k == FrameWindows
}

// FrameOffsets are the margins a frame adds around the image.
// Values are never mutated after construction.
type FrameOffsets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Horizontal returns the total horizontal offset (left + right).
func (o FrameOffsets) Horizontal() int {
	return o.Left + o.Right
}

// Vertical returns the total vertical offset (top + bottom).
func (o FrameOffsets) Vertical() int {
	return o.Top + o.Bottom
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for geometry calculation.
type LayoutInput struct {
	Image   Dimension // Source image size in pixels
	Frame   FrameKind // Attached frame (default: none)
	Padding int       // Space between content and canvas edge (default: 64)
	Zoom    float64   // Image scale factor (default: 1)
	Target  Dimension // Fixed output size; used only when both sides are positive

	BorderRadius float64 // User corner radius, adjusted per frame
}

// DefaultLayoutInput returns LayoutInput with default values.
func DefaultLayoutInput() LayoutInput {
	return LayoutInput{
		Frame:   FrameNone,
		Padding: 64,
		Zoom:    1,
	}
}

// CornerRadii holds the effective radii applied to the image corners.
type CornerRadii struct {
	Top    float64
	Bottom float64
}

// LayoutGeometry is the complete set of pixel coordinates for one render.
type LayoutGeometry struct {
	// Canvas is the output surface size.
	Canvas Dimension

	// ScaledImage is the image size after zoom, rounded per dimension.
	ScaledImage Dimension

	// Content is the image plus frame chrome, before padding.
	Content Dimension

	// ContentOrigin is the top-left of the content box. It may be negative
	// when a fixed target is smaller than the content.
	ContentOrigin Point

	// ImageOrigin is ContentOrigin shifted by the frame's left/top offsets.
	ImageOrigin Point

	// Offsets are the frame margins used for this layout.
	Offsets *FrameOffsets

	// Radii are the effective top and bottom corner radii.
	Radii CornerRadii
}

// ContentRect returns the content box as a rectangle.
func (g LayoutGeometry) ContentRect() Rectangle {
	return Rectangle{X: g.ContentOrigin.X, Y: g.ContentOrigin.Y, Width: g.Content.Width, Height: g.Content.Height}
}

// ImageRect returns the scaled image area as a rectangle.
func (g LayoutGeometry) ImageRect() Rectangle {
	return Rectangle{X: g.ImageOrigin.X, Y: g.ImageOrigin.Y, Width: g.ScaledImage.Width, Height: g.ScaledImage.Height}
}

// =============================================================================
// Background Types
// =============================================================================

// BackgroundKind selects how the canvas backdrop is painted.
type BackgroundKind string

const (
	BackgroundSolid       BackgroundKind = "solid"
	BackgroundGradient    BackgroundKind = "gradient"
	BackgroundMesh        BackgroundKind = "mesh"
	BackgroundTextPattern BackgroundKind = "textPattern"
	BackgroundWaveSplit   BackgroundKind = "waveSplit"
	BackgroundLogoPattern BackgroundKind = "logoPattern"
	BackgroundTransparent BackgroundKind = "transparent"
)

// GradientPoints are the endpoints of a linear gradient vector.
type GradientPoints struct {
	X1, Y1 float64
	X2, Y2 float64
}

// MeshPoint is one radial blob of a mesh background.
// X, Y and Size are fractions of the canvas (0-1).
type MeshPoint struct {
	X     float64
	Y     float64
	Size  float64
	Color color.Color
}

// Gradient is a two-stop linear gradient.
type Gradient struct {
	From  color.Color
	To    color.Color
	Angle float64 // Degrees, CSS convention (90 = left to right)
}

// TextPosition is an anchor row for the text pattern background.
type TextPosition string

const (
	TextTop    TextPosition = "top"
	TextCenter TextPosition = "center"
	TextBottom TextPosition = "bottom"
)

// FontWeight selects the face weight.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// FontSpec describes a font face request.
type FontSpec struct {
	Family string     // sans, serif or mono
	Weight FontWeight // normal or bold
	Size   float64    // Points at 72 DPI (pixels); 0 lets the painter choose
}

// TextPattern configures the textPattern background.
type TextPattern struct {
	Text      string
	Color     color.Color
	Opacity   float64 // 0-1
	Positions []TextPosition
	Font      FontSpec
	Rows      int // Lines stacked at each anchor (default: 1)
}

// LogoPattern configures the logoPattern background.
type LogoPattern struct {
	Image   image.Image
	Opacity float64 // 0-1
	Size    float64 // Tile size as a fraction of the smaller canvas side
	Spacing float64 // Step multiplier applied to the tile size (>= 1)
}

// Background describes the canvas backdrop.
type Background struct {
	Kind BackgroundKind

	// Color is the solid fill; also the base tone of waveSplit.
	Color color.Color

	// Gradient is used by gradient, textPattern, waveSplit and logoPattern.
	Gradient Gradient

	// MeshCSS holds radial-gradient(...) clauses for mesh backgrounds.
	MeshCSS string

	Text        TextPattern
	WaveFlipped bool
	Logo        LogoPattern
}

// =============================================================================
// Style Types
// =============================================================================

// Shadow configures the drop shadow under the content box.
type Shadow struct {
	Blur    float64 // Blur radius in pixels
	Opacity float64 // 0-100
	Color   color.Color
}

// TextOverlay is a free-standing positioned text object.
type TextOverlay struct {
	ID       string
	Text     string
	X        float64 // Canvas fraction (0-1), anchor is the text center
	Y        float64
	Color    color.Color
	Gradient *Gradient // Optional; replaces Color when set
	Font     FontSpec
}

// StyleParameters is the full, resolved set of styling inputs for a render.
type StyleParameters struct {
	Background   Background
	Padding      int
	Shadow       Shadow
	BorderRadius float64
	Frame        FrameKind
	Zoom         float64
	Rotation     float64   // Degrees, clockwise
	OutputSize   Dimension // Fixed output size; zero means derived
	TextOverlays []TextOverlay
}

// DefaultStyleParameters returns StyleParameters with default values.
func DefaultStyleParameters() StyleParameters {
	return StyleParameters{
		Background: Background{
			Kind:  BackgroundGradient,
			Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Gradient: Gradient{
				From:  color.RGBA{R: 102, G: 126, B: 234, A: 255}, // #667eea
				To:    color.RGBA{R: 118, G: 75, B: 162, A: 255},  // #764ba2
				Angle: 135,
			},
			Text: TextPattern{
				Color:     color.White,
				Opacity:   0.15,
				Positions: []TextPosition{TextCenter},
				Font:      FontSpec{Family: "sans", Weight: WeightBold},
				Rows:      1,
			},
			Logo: LogoPattern{
				Opacity: 0.15,
				Size:    0.12,
				Spacing: 1.5,
			},
		},
		Padding: 64,
		Shadow: Shadow{
			Blur:    20,
			Opacity: 30,
			Color:   color.Black,
		},
		BorderRadius: 12,
		Frame:        FrameNone,
		Zoom:         1,
	}
}

// LayoutInputFor builds the layout input for an image under this style.
func (s StyleParameters) LayoutInputFor(img Dimension) LayoutInput {
	return LayoutInput{
		Image:        img,
		Frame:        s.Frame,
		Padding:      s.Padding,
		Zoom:         s.Zoom,
		Target:       s.OutputSize,
		BorderRadius: s.BorderRadius,
	}
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains the source image and the style to composite it with.
type RenderInput struct {
	Image image.Image
	Style StyleParameters
}

// RenderResult contains the composited surface and the geometry used.
// The caller owns Surface and must hand it back to the pool it came from.
type RenderResult struct {
	Geometry LayoutGeometry
	Surface  *canvaspool.Surface
}
