package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/user/mockshot/pkg/pipeline"
)

const (
	overlaySizeFactor = 0.06
	overlayLineSpace  = 1.2
)

// drawTextOverlays draws each overlay centered at its canvas fraction.
// Overlays with a gradient are filled through a text mask.
func (s *Stage) drawTextOverlays(dc *gg.Context, w, h int, overlays []pipeline.TextOverlay) {
	for _, ov := range overlays {
		if ov.Text == "" {
			continue
		}

		size := ov.Font.Size
		if size <= 0 {
			size = math.Max(math.Min(float64(w), float64(h))*overlaySizeFactor, 1)
		}
		face, err := s.fonts.Face(ov.Font, size)
		if err != nil {
			s.logger.Warn("Font face unavailable: %s", err.Error())
			continue
		}

		x, y := ov.X*float64(w), ov.Y*float64(h)
		if ov.Gradient == nil {
			dc.Push()
			dc.SetFontFace(face)
			c := ov.Color
			if c == nil {
				c = color.White
			}
			dc.SetColor(c)
			dc.DrawStringWrapped(ov.Text, x, y, 0.5, 0.5, float64(w), overlayLineSpace, gg.AlignCenter)
			dc.Pop()
			continue
		}

		s.drawGradientText(dc, w, h, ov, x, y, face)
	}
}

func (s *Stage) drawGradientText(dc *gg.Context, w, h int, ov pipeline.TextOverlay, x, y float64, face font.Face) {
	mask := s.pool.Acquire(w, h)
	defer s.pool.Release(mask)
	mdc := mask.Context()

	mdc.SetFontFace(face)
	mdc.SetColor(color.Black)
	mdc.DrawStringWrapped(ov.Text, x, y, 0.5, 0.5, float64(w), overlayLineSpace, gg.AlignCenter)

	tw, th := mdc.MeasureMultilineString(ov.Text, overlayLineSpace)
	tw = math.Max(math.Ceil(tw), 1)
	th = math.Max(math.Ceil(th), 1)
	left, top := x-tw/2, y-th/2

	pts := s.painter.GradientPoints(int(tw), int(th), ov.Gradient.Angle)
	grad := gg.NewLinearGradient(left+pts.X1, top+pts.Y1, left+pts.X2, top+pts.Y2)
	grad.AddColorStop(0, orWhite(ov.Gradient.From))
	grad.AddColorStop(1, orWhite(ov.Gradient.To))

	// Pop does not restore the mask, so it is reset explicitly.
	dc.Push()
	defer dc.Pop()
	if err := dc.SetMask(mdc.AsMask()); err != nil {
		s.logger.Warn("Failed to mask text overlay %s: %s", ov.ID, err.Error())
		return
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	dc.ResetClip()
}

func orWhite(c color.Color) color.Color {
	if c == nil {
		return color.White
	}
	return c
}
