package render

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"

	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/stages/background"
	"github.com/user/mockshot/pkg/stages/frame"
)

// shadowDrop offsets the shadow downward by this fraction of the blur.
const shadowDrop = 0.5

// shadowShape is the outline the shadow is cast from: the content box, or
// the device silhouette for phone frames.
type shadowShape struct {
	x, y, w, h  float64
	top, bottom float64
}

func shapeFor(geom pipeline.LayoutGeometry, style pipeline.StyleParameters) shadowShape {
	c := geom.ContentRect()
	shape := shadowShape{
		x: float64(c.X), y: float64(c.Y),
		w: float64(c.Width), h: float64(c.Height),
	}

	switch {
	case style.Frame.IsWindow():
		shape.top, shape.bottom = geom.Radii.Bottom, geom.Radii.Bottom
	case style.Frame.IsPhone():
		ref, _ := framegeom.ReferenceFor(style.Frame)
		ox, oy, scale := frame.PhoneTransform(style.Frame, shape.x, shape.y, shape.w, shape.h, style.Zoom, 0)
		r := frame.BodyRadius(style.Frame) * scale
		shape = shadowShape{
			x: ox, y: oy,
			w: ref.Width * scale, h: ref.Height * scale,
			top: r, bottom: r,
		}
	default:
		shape.top, shape.bottom = geom.Radii.Top, geom.Radii.Bottom
	}
	return shape
}

// drawShadow paints a blurred silhouette of the content under it. The
// silhouette is rotated with the content on a scratch surface and then
// composited without further transforms.
func (s *Stage) drawShadow(dc *gg.Context, geom pipeline.LayoutGeometry, style pipeline.StyleParameters, cx, cy float64) {
	sh := style.Shadow
	if sh.Opacity <= 0 || geom.Content.Width <= 0 || geom.Content.Height <= 0 {
		return
	}

	w, h := geom.Canvas.Width, geom.Canvas.Height
	scratch := s.pool.Acquire(w, h)
	defer s.pool.Release(scratch)
	sdc := scratch.Context()

	drop := sh.Blur * shadowDrop
	sdc.Push()
	if style.Rotation != 0 {
		sdc.RotateAbout(gg.Radians(style.Rotation), cx, cy)
	}
	shape := shapeFor(geom, style)
	frame.RoundedRectPath(sdc, shape.x, shape.y+drop, shape.w, shape.h, shape.top, shape.bottom)
	sdc.SetColor(background.WithOpacity(sh.Color, sh.Opacity/100))
	sdc.Fill()
	sdc.Pop()

	layer := sdc.Image()
	if sh.Blur > 0 {
		layer = blur.Gaussian(layer, sh.Blur)
	}
	dc.DrawImage(layer, 0, 0)
	s.saveLayer("shadow", layer)
}
