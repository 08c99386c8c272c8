// Package render implements the compositing stage.
//
// Paint order, bottom to top: background, shadow, frame chrome, the image
// clipped to its corner radii, frame overlay, text overlays. Everything
// from the shadow to the overlay is rotated about the content center;
// the background and text overlays are not.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/user/mockshot/pkg/canvaspool"
	"github.com/user/mockshot/pkg/fonts"
	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/ports"
	"github.com/user/mockshot/pkg/stages/background"
	"github.com/user/mockshot/pkg/stages/frame"
	"github.com/user/mockshot/pkg/stages/layout"
)

// ErrNoImage is returned when a render is requested without a source image.
var ErrNoImage = errors.New("render: no source image")

// Stage composites one image into a styled surface.
type Stage struct {
	cache     *framegeom.Cache
	pool      *canvaspool.Pool
	painter   *background.Painter
	processor ports.ImageProcessor
	fonts     *fonts.Library
	sink      ports.DebugSink
	logger    ports.Logger
}

// NewStage creates a new render stage. Surfaces come from pool and are
// owned by the caller once returned.
func NewStage(
	cache *framegeom.Cache,
	pool *canvaspool.Pool,
	painter *background.Painter,
	processor ports.ImageProcessor,
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	if cache == nil {
		cache = framegeom.New()
	}
	return &Stage{
		cache:     cache,
		pool:      pool,
		painter:   painter,
		processor: processor,
		fonts:     fonts.Default(),
		sink:      sink,
		logger:    logger.WithComponent("render"),
	}
}

// WithFonts replaces the font library used for text overlays.
func (s *Stage) WithFonts(lib *fonts.Library) *Stage {
	s.fonts = lib
	return s
}

// Execute renders input onto a pooled surface.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	if input.Image == nil {
		return pipeline.RenderResult{}, ErrNoImage
	}
	if err := ctx.Err(); err != nil {
		return pipeline.RenderResult{}, err
	}

	style := input.Style
	b := input.Image.Bounds()
	geom := layout.ComputeLayout(s.cache, style.LayoutInputFor(pipeline.Dimension{Width: b.Dx(), Height: b.Dy()}))

	s.logger.Debug("Layout calculated: %dx%d canvas, content %dx%d at %d,%d",
		geom.Canvas.Width, geom.Canvas.Height,
		geom.Content.Width, geom.Content.Height,
		geom.ContentOrigin.X, geom.ContentOrigin.Y)

	surface := s.pool.Acquire(geom.Canvas.Width, geom.Canvas.Height)
	if err := s.paint(ctx, surface.Context(), geom, input); err != nil {
		s.pool.Release(surface)
		return pipeline.RenderResult{}, err
	}

	return pipeline.RenderResult{Geometry: geom, Surface: surface}, nil
}

// Release hands a result's surface back to the pool.
func (s *Stage) Release(res pipeline.RenderResult) {
	s.pool.Release(res.Surface)
}

func (s *Stage) paint(ctx context.Context, dc *gg.Context, geom pipeline.LayoutGeometry, input pipeline.RenderInput) error {
	style := input.Style
	w, h := geom.Canvas.Width, geom.Canvas.Height

	s.painter.Paint(dc, w, h, style.Background)
	s.saveLayer("background", dc.Image())
	if err := ctx.Err(); err != nil {
		return err
	}

	content := geom.ContentRect()
	cx := float64(content.X) + float64(content.Width)/2
	cy := float64(content.Y) + float64(content.Height)/2

	s.drawShadow(dc, geom, style, cx, cy)
	if err := ctx.Err(); err != nil {
		return err
	}

	dc.Push()
	if style.Rotation != 0 {
		dc.RotateAbout(gg.Radians(style.Rotation), cx, cy)
	}

	if style.Frame != pipeline.FrameNone {
		s.logger.Debug("Drawing %s frame", string(style.Frame))
	}
	cxf, cyf := float64(content.X), float64(content.Y)
	cw, ch := float64(content.Width), float64(content.Height)
	frame.DrawFrame(dc, cxf, cyf, cw, ch, style.Frame, style.BorderRadius, style.Zoom)

	if err := s.drawImage(dc, geom, input.Image); err != nil {
		dc.Pop()
		return err
	}

	frame.DrawFrameOverlay(dc, cxf, cyf, cw, ch, style.Frame, style.Zoom)
	dc.Pop()

	if len(style.TextOverlays) > 0 {
		s.logger.Debug("Drawing %d text overlays", len(style.TextOverlays))
		s.drawTextOverlays(dc, w, h, style.TextOverlays)
	}

	s.saveLayer("final", dc.Image())
	return nil
}

func (s *Stage) drawImage(dc *gg.Context, geom pipeline.LayoutGeometry, img image.Image) error {
	if !geom.ScaledImage.Positive() {
		return nil
	}
	scaled := s.processor.Resize(img, geom.ScaledImage.Width, geom.ScaledImage.Height)
	if scaled == nil {
		return fmt.Errorf("resize image to %dx%d: empty result", geom.ScaledImage.Width, geom.ScaledImage.Height)
	}

	r := geom.ImageRect()
	dc.Push()
	defer dc.Pop()

	frame.RoundedRectPath(dc, float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height), geom.Radii.Top, geom.Radii.Bottom)
	dc.Clip()
	dc.DrawImage(scaled, r.X, r.Y)
	dc.ResetClip()
	return nil
}

// saveLayer hands a snapshot of img to the debug sink. Sink failures are
// logged and never fail the render.
func (s *Stage) saveLayer(name string, img image.Image) {
	if s.sink == nil || !s.sink.Enabled() {
		return
	}
	if err := s.sink.SaveLayer(name, imaging.Clone(img)); err != nil {
		s.logger.Warn("Failed to save debug layer %s: %s", name, err.Error())
	}
}
