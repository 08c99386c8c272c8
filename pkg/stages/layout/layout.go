// Package layout implements the geometry calculation stage.
package layout

import (
	"context"
	"math"

	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/pipeline"
)

// Minimum bottom radius for window frames. Their chrome has square top
// corners and a rounded bottom that must not leave a gap around the image.
var frameMinRadius = map[pipeline.FrameKind]float64{
	pipeline.FrameBrowser: 12,
	pipeline.FrameMacOS:   10,
	pipeline.FrameWindows: 8,
}

// Stage calculates the geometry for a render.
// This is a pure function apart from the shared offsets cache.
type Stage struct {
	cache *framegeom.Cache
}

// NewStage creates a new layout stage using cache for frame offsets.
// A nil cache gets a private one.
func NewStage(cache *framegeom.Cache) *Stage {
	if cache == nil {
		cache = framegeom.New()
	}
	return &Stage{cache: cache}
}

// Cache returns the frame offsets cache used by the stage.
func (s *Stage) Cache() *framegeom.Cache {
	return s.cache
}

// Execute calculates the geometry for the input.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutGeometry, error) {
	return ComputeLayout(s.cache, input), nil
}

// ComputeLayout performs the geometry calculation.
//
// Steps:
//   - offsets come from the frame cache for (frame, zoom)
//   - the image is scaled by zoom and rounded per dimension
//   - canvas = scaled image + 2*padding + frame offsets, unless a fixed
//     target with both sides positive is supplied
//   - content (image + offsets) is centered in the canvas; with a small
//     target the origin goes negative and downstream clipping crops it
func ComputeLayout(cache *framegeom.Cache, input pipeline.LayoutInput) pipeline.LayoutGeometry {
	offsets := cache.Offsets(input.Frame, input.Zoom)

	padding := input.Padding
	if padding < 0 {
		padding = 0
	}

	scaled := pipeline.Dimension{
		Width:  scaleDim(input.Image.Width, input.Zoom),
		Height: scaleDim(input.Image.Height, input.Zoom),
	}

	content := pipeline.Dimension{
		Width:  scaled.Width + offsets.Horizontal(),
		Height: scaled.Height + offsets.Vertical(),
	}

	canvas := pipeline.Dimension{
		Width:  content.Width + padding*2,
		Height: content.Height + padding*2,
	}
	if input.Target.Positive() {
		canvas = input.Target
	}

	contentOrigin := pipeline.Point{
		X: floorHalf(canvas.Width - content.Width),
		Y: floorHalf(canvas.Height - content.Height),
	}

	return pipeline.LayoutGeometry{
		Canvas:        canvas,
		ScaledImage:   scaled,
		Content:       content,
		ContentOrigin: contentOrigin,
		ImageOrigin: pipeline.Point{
			X: contentOrigin.X + offsets.Left,
			Y: contentOrigin.Y + offsets.Top,
		},
		Offsets: offsets,
		Radii: ComputeCornerRadii(
			input.Frame,
			input.BorderRadius,
			input.Zoom,
			float64(content.Width),
			float64(content.Height),
		),
	}
}

// ComputeCornerRadii returns the effective top and bottom image radii.
//
//   - none: the user radius on all corners
//   - browser/macos/windows: square top, bottom at least the frame minimum
//   - iphone/android: the frame's screen radius scaled to the rendered frame;
//     the user radius is ignored. contentW/contentH select the scale, and
//     zoom is used when either is not positive.
func ComputeCornerRadii(kind pipeline.FrameKind, borderRadius, zoom, contentW, contentH float64) pipeline.CornerRadii {
	if borderRadius < 0 || math.IsNaN(borderRadius) {
		borderRadius = 0
	}

	switch {
	case kind.IsWindow():
		return pipeline.CornerRadii{
			Top:    0,
			Bottom: math.Max(borderRadius, frameMinRadius[kind]),
		}
	case kind.IsPhone():
		ref, _ := framegeom.ReferenceFor(kind)
		scale := zoom
		if contentW > 0 && contentH > 0 {
			scale = framegeom.PhoneScale(kind, contentW, contentH)
		}
		if scale < 0 || math.IsNaN(scale) {
			scale = 0
		}
		r := ref.ScreenRadius * scale
		return pipeline.CornerRadii{Top: r, Bottom: r}
	default:
		return pipeline.CornerRadii{Top: borderRadius, Bottom: borderRadius}
	}
}

func scaleDim(v int, zoom float64) int {
	if v <= 0 || zoom <= 0 || math.IsNaN(zoom) {
		return 0
	}
	return int(math.Round(float64(v) * zoom))
}

// floorHalf halves v rounding toward negative infinity.
func floorHalf(v int) int {
	if v >= 0 {
		return v / 2
	}
	return -((-v + 1) / 2)
}
