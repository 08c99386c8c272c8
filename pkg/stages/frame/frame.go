// Package frame draws device and window chrome around the content box.
//
// DrawFrame paints beneath the image; DrawFrameOverlay paints the parts that
// sit above it (the Dynamic Island and camera dots). Phone artwork is issued
// in reference coordinates under one translate+scale transform, so it is
// always scaled uniformly and centered in the box.
package frame

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/stages/layout"
)

// MinOverlayScale is the smallest scale the overlay is drawn at.
const MinOverlayScale = 0.1

var (
	dotRed    = color.RGBA{R: 0xff, G: 0x5f, B: 0x57, A: 255}
	dotYellow = color.RGBA{R: 0xfe, G: 0xbc, B: 0x2e, A: 255}
	dotGreen  = color.RGBA{R: 0x28, G: 0xc8, B: 0x40, A: 255}

	chromeBody    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}
	browserBar    = color.RGBA{R: 0xe8, G: 0xea, B: 0xed, A: 255}
	browserURL    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}
	macBar        = color.RGBA{R: 0xe7, G: 0xe5, B: 0xe4, A: 255}
	windowsBar    = color.RGBA{R: 0xf3, G: 0xf3, B: 0xf3, A: 255}
	windowsGlyph  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	separator     = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 255}
	phoneBody     = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 255}
	phoneRing     = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3c, A: 255}
	phoneButton   = color.RGBA{R: 0x2c, G: 0x2c, B: 0x2e, A: 255}
	androidBody   = color.RGBA{R: 0x20, G: 0x21, B: 0x24, A: 255}
	screenBlack   = color.RGBA{A: 255}
	cameraLens    = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 255}
	cameraGlint   = color.RGBA{R: 0x3d, G: 0x5a, B: 0x80, A: 255}
	punchHoleRing = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
)

// RoundedRectPath adds a rectangle path with top corners of radius top and
// bottom corners of radius bottom. Radii are clamped to half the shorter side.
func RoundedRectPath(dc *gg.Context, x, y, w, h, top, bottom float64) {
	limit := math.Min(w, h) / 2
	top = math.Max(0, math.Min(top, limit))
	bottom = math.Max(0, math.Min(bottom, limit))

	dc.NewSubPath()
	dc.MoveTo(x+top, y)
	dc.LineTo(x+w-top, y)
	dc.DrawArc(x+w-top, y+top, top, gg.Radians(270), gg.Radians(360))
	dc.LineTo(x+w, y+h-bottom)
	dc.DrawArc(x+w-bottom, y+h-bottom, bottom, gg.Radians(0), gg.Radians(90))
	dc.LineTo(x+bottom, y+h)
	dc.DrawArc(x+bottom, y+h-bottom, bottom, gg.Radians(90), gg.Radians(180))
	dc.LineTo(x, y+top)
	dc.DrawArc(x+top, y+top, top, gg.Radians(180), gg.Radians(270))
	dc.ClosePath()
}

// PhoneTransform returns the origin and uniform scale that center the
// reference artwork of kind inside the w x h box at x, y. When the box is
// empty the zoom is used as the scale. The scale never drops below floor.
func PhoneTransform(kind pipeline.FrameKind, x, y, w, h, zoom, floor float64) (ox, oy, scale float64) {
	ref, ok := framegeom.ReferenceFor(kind)
	if !ok {
		return x, y, 0
	}
	scale = framegeom.PhoneScale(kind, w, h)
	if scale <= 0 {
		scale = zoom
	}
	if math.IsNaN(scale) || scale < floor {
		scale = floor
	}
	ox = x + (w-ref.Width*scale)/2
	oy = y + (h-ref.Height*scale)/2
	return ox, oy, scale
}

// Bezel widths around the screen, in reference space.
var bezels = map[pipeline.FrameKind]float64{
	pipeline.FrameIPhone:  16,
	pipeline.FrameAndroid: 12,
}

// BodyRadius returns the outer corner radius of a phone's artwork in
// reference space, or 0 for other kinds.
func BodyRadius(kind pipeline.FrameKind) float64 {
	ref, ok := framegeom.ReferenceFor(kind)
	if !ok {
		return 0
	}
	return ref.ScreenRadius + bezels[kind]
}

// DrawFrame paints the chrome of kind around the content box x, y, w, h.
// It draws nothing for FrameNone or an empty box.
func DrawFrame(dc *gg.Context, x, y, w, h float64, kind pipeline.FrameKind, borderRadius, zoom float64) {
	if w <= 0 || h <= 0 {
		return
	}

	dc.Push()
	defer dc.Pop()

	switch kind {
	case pipeline.FrameBrowser:
		drawBrowser(dc, x, y, w, h, radius(kind, borderRadius, zoom, w, h))
	case pipeline.FrameMacOS:
		drawMacOS(dc, x, y, w, h, radius(kind, borderRadius, zoom, w, h))
	case pipeline.FrameWindows:
		drawWindows(dc, x, y, w, h, radius(kind, borderRadius, zoom, w, h))
	case pipeline.FrameIPhone:
		ox, oy, s := PhoneTransform(kind, x, y, w, h, zoom, 0)
		if s > 0 {
			dc.Translate(ox, oy)
			dc.Scale(s, s)
			drawIPhone(dc)
		}
	case pipeline.FrameAndroid:
		ox, oy, s := PhoneTransform(kind, x, y, w, h, zoom, 0)
		if s > 0 {
			dc.Translate(ox, oy)
			dc.Scale(s, s)
			drawAndroid(dc)
		}
	}
}

// DrawFrameOverlay paints the parts of kind that sit above the image.
// Only phone frames have any.
func DrawFrameOverlay(dc *gg.Context, x, y, w, h float64, kind pipeline.FrameKind, zoom float64) {
	if !kind.IsPhone() {
		return
	}

	dc.Push()
	defer dc.Pop()

	ox, oy, s := PhoneTransform(kind, x, y, w, h, zoom, MinOverlayScale)
	dc.Translate(ox, oy)
	dc.Scale(s, s)

	if kind == pipeline.FrameIPhone {
		drawDynamicIsland(dc)
	} else {
		drawPunchHole(dc)
	}
}

// radius is the outer corner radius of window chrome; it matches the
// image's bottom radius so the two line up.
func radius(kind pipeline.FrameKind, borderRadius, zoom, w, h float64) float64 {
	return layout.ComputeCornerRadii(kind, borderRadius, zoom, w, h).Bottom
}

func titleBar(dc *gg.Context, x, y, w, h, bar, r float64, fill color.Color) {
	// Body first, then the bar over its top edge.
	dc.SetColor(chromeBody)
	RoundedRectPath(dc, x, y, w, h, r, r)
	dc.Fill()

	dc.SetColor(fill)
	RoundedRectPath(dc, x, y, w, math.Min(bar, h), r, 0)
	dc.Fill()

	if bar < h {
		dc.SetColor(separator)
		dc.SetLineWidth(1)
		dc.DrawLine(x, y+bar-0.5, x+w, y+bar-0.5)
		dc.Stroke()
	}
}

func trafficLights(dc *gg.Context, x, cy, spacing, r float64) {
	for i, c := range []color.Color{dotRed, dotYellow, dotGreen} {
		dc.SetColor(c)
		dc.DrawCircle(x+float64(i)*spacing, cy, r)
		dc.Fill()
	}
}

func drawBrowser(dc *gg.Context, x, y, w, h, r float64) {
	const bar = 40
	titleBar(dc, x, y, w, h, bar, r, browserBar)
	trafficLights(dc, x+20, y+bar/2, 20, 6)

	// URL pill between the dots and the right edge.
	left := x + 84
	right := x + w - 20
	if right-left > 24 {
		dc.SetColor(browserURL)
		dc.DrawRoundedRectangle(left, y+8, right-left, 24, 12)
		dc.Fill()
	}
}

func drawMacOS(dc *gg.Context, x, y, w, h, r float64) {
	const bar = 28
	titleBar(dc, x, y, w, h, bar, r, macBar)
	trafficLights(dc, x+14, y+bar/2, 20, 6)
}

func drawWindows(dc *gg.Context, x, y, w, h, r float64) {
	const (
		bar    = 32
		button = 46
		glyph  = 10
	)
	titleBar(dc, x, y, w, h, bar, r, windowsBar)

	cy := y + bar/2
	dc.SetColor(windowsGlyph)
	dc.SetLineWidth(1)

	// Close, maximize and minimize from the right edge.
	closeX := x + w - button/2
	dc.DrawLine(closeX-glyph/2, cy-glyph/2, closeX+glyph/2, cy+glyph/2)
	dc.DrawLine(closeX-glyph/2, cy+glyph/2, closeX+glyph/2, cy-glyph/2)
	dc.Stroke()

	maxX := closeX - button
	dc.DrawRectangle(maxX-glyph/2, cy-glyph/2, glyph, glyph)
	dc.Stroke()

	minX := maxX - button
	dc.DrawLine(minX-glyph/2, cy, minX+glyph/2, cy)
	dc.Stroke()
}

// Reference-space artwork. All coordinates below are in the frame's
// design resolution (see framegeom.ReferenceFor).

func drawIPhone(dc *gg.Context) {
	ref, _ := framegeom.ReferenceFor(pipeline.FrameIPhone)
	const button = 3
	bezel := bezels[pipeline.FrameIPhone]

	// Side buttons: action + volume on the left, power on the right.
	dc.SetColor(phoneButton)
	dc.DrawRoundedRectangle(0, 150, button+2, 30, 1.5)
	dc.DrawRoundedRectangle(0, 200, button+2, 56, 1.5)
	dc.DrawRoundedRectangle(0, 268, button+2, 56, 1.5)
	dc.DrawRoundedRectangle(ref.Width-button-2, 230, button+2, 88, 1.5)
	dc.Fill()

	body := BodyRadius(pipeline.FrameIPhone)
	dc.SetColor(phoneRing)
	dc.DrawRoundedRectangle(button, 0, ref.Width-2*button, ref.Height, body)
	dc.Fill()

	dc.SetColor(phoneBody)
	dc.DrawRoundedRectangle(button+2, 2, ref.Width-2*button-4, ref.Height-4, body-2)
	dc.Fill()

	dc.SetColor(screenBlack)
	dc.DrawRoundedRectangle(bezel, bezel, ref.Width-2*bezel, ref.Height-2*bezel, ref.ScreenRadius)
	dc.Fill()
}

func drawAndroid(dc *gg.Context) {
	ref, _ := framegeom.ReferenceFor(pipeline.FrameAndroid)
	const button = 3
	bezel := bezels[pipeline.FrameAndroid]

	dc.SetColor(phoneButton)
	dc.DrawRoundedRectangle(ref.Width-button-2, 180, button+2, 70, 1.5)
	dc.DrawRoundedRectangle(ref.Width-button-2, 280, button+2, 120, 1.5)
	dc.Fill()

	dc.SetColor(androidBody)
	dc.DrawRoundedRectangle(0, 0, ref.Width-button, ref.Height, BodyRadius(pipeline.FrameAndroid))
	dc.Fill()

	dc.SetColor(screenBlack)
	dc.DrawRoundedRectangle(bezel, bezel, ref.Width-button-2*bezel, ref.Height-2*bezel, ref.ScreenRadius)
	dc.Fill()
}

func drawDynamicIsland(dc *gg.Context) {
	ref, _ := framegeom.ReferenceFor(pipeline.FrameIPhone)
	const (
		width  = 126
		height = 37
		top    = 27
	)
	cx := ref.Width / 2

	dc.SetColor(screenBlack)
	dc.DrawRoundedRectangle(cx-width/2.0, top, width, height, height/2.0)
	dc.Fill()

	lensX, lensY := cx+width/2-height/2, top+height/2.0
	dc.SetColor(cameraLens)
	dc.DrawCircle(lensX, lensY, 6)
	dc.Fill()
	dc.SetColor(cameraGlint)
	dc.DrawCircle(lensX-1.5, lensY-1.5, 1.5)
	dc.Fill()
}

func drawPunchHole(dc *gg.Context) {
	ref, _ := framegeom.ReferenceFor(pipeline.FrameAndroid)
	cx, cy := (ref.Width-3)/2, 36.0

	dc.SetColor(punchHoleRing)
	dc.DrawCircle(cx, cy, 11)
	dc.Fill()
	dc.SetColor(screenBlack)
	dc.DrawCircle(cx, cy, 9)
	dc.Fill()
	dc.SetColor(cameraGlint)
	dc.DrawCircle(cx-2, cy-2, 2)
	dc.Fill()
}
