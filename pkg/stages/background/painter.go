// Package background paints canvas backdrops: solid, gradient, mesh, text
// pattern, wave split, logo pattern and the transparency checkerboard.
package background

import (
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/mockshot/pkg/adapters/logger"
	"github.com/user/mockshot/pkg/canvaspool"
	"github.com/user/mockshot/pkg/fonts"
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/ports"
)

const (
	textSizeFactor   = 0.22
	textMaxWidth     = 0.96
	textLineSpacing  = 1.1
	waveAmplitude    = 0.06
	checkerTile      = 16
	defaultLogoSize  = 0.12
	defaultLogoSpace = 1.5
)

var (
	checkerLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	checkerDark  = color.RGBA{R: 230, G: 230, B: 230, A: 255}

	textAnchors = map[pipeline.TextPosition]float64{
		pipeline.TextTop:    0.18,
		pipeline.TextCenter: 0.50,
		pipeline.TextBottom: 0.82,
	}
)

type pointsKey struct {
	w, h  int
	angle float64
}

// Painter paints backgrounds and memoizes gradient endpoints.
type Painter struct {
	mu     sync.Mutex
	points map[pointsKey]pipeline.GradientPoints

	pool   *canvaspool.Pool
	fonts  *fonts.Library
	logger ports.Logger
}

// Option configures a Painter.
type Option func(*Painter)

// WithPool draws mesh scratch layers on pooled surfaces.
func WithPool(pool *canvaspool.Pool) Option {
	return func(p *Painter) { p.pool = pool }
}

// WithFonts sets the font library used by text patterns.
func WithFonts(lib *fonts.Library) Option {
	return func(p *Painter) { p.fonts = lib }
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(p *Painter) { p.logger = l.WithComponent("background") }
}

// NewPainter creates a Painter.
func NewPainter(opts ...Option) *Painter {
	p := &Painter{
		points: make(map[pointsKey]pipeline.GradientPoints),
		fonts:  fonts.Default(),
		logger: logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GradientPoints returns the endpoints of a linear gradient at angle degrees
// across a w x h canvas. The vector runs through the center with half the
// diagonal on each side. Results are memoized by (w, h, angle).
func (p *Painter) GradientPoints(w, h int, angle float64) pipeline.GradientPoints {
	key := pointsKey{w: w, h: h, angle: angle}

	p.mu.Lock()
	defer p.mu.Unlock()

	if pts, ok := p.points[key]; ok {
		return pts
	}
	pts := computeGradientPoints(w, h, angle)
	p.points[key] = pts
	return pts
}

// CacheLen returns the number of memoized gradient vectors.
func (p *Painter) CacheLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.points)
}

// ClearCache drops all memoized gradient vectors.
func (p *Painter) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.points = make(map[pointsKey]pipeline.GradientPoints)
}

func computeGradientPoints(w, h int, angle float64) pipeline.GradientPoints {
	rad := (angle - 90) * math.Pi / 180
	cx, cy := float64(w)/2, float64(h)/2
	half := math.Hypot(float64(w), float64(h)) / 2
	dx, dy := math.Cos(rad)*half, math.Sin(rad)*half
	return pipeline.GradientPoints{
		X1: cx - dx, Y1: cy - dy,
		X2: cx + dx, Y2: cy + dy,
	}
}

// Paint fills the w x h area at the origin of dc with bg.
func (p *Painter) Paint(dc *gg.Context, w, h int, bg pipeline.Background) {
	if w <= 0 || h <= 0 {
		return
	}
	p.logger.Debug("Painting %s background", string(bg.Kind))

	dc.Push()
	defer dc.Pop()

	switch bg.Kind {
	case pipeline.BackgroundSolid:
		p.solid(dc, w, h, bg.Color)
	case pipeline.BackgroundGradient:
		p.gradient(dc, w, h, bg.Gradient)
	case pipeline.BackgroundMesh:
		p.mesh(dc, w, h, bg.MeshCSS)
	case pipeline.BackgroundTextPattern:
		p.gradient(dc, w, h, bg.Gradient)
		p.textPattern(dc, w, h, bg.Text)
	case pipeline.BackgroundWaveSplit:
		p.waveSplit(dc, w, h, bg)
	case pipeline.BackgroundLogoPattern:
		p.gradient(dc, w, h, bg.Gradient)
		p.logoPattern(dc, w, h, bg.Logo)
	case pipeline.BackgroundTransparent:
		p.checkerboard(dc, w, h)
	default:
		p.logger.Warn("Unknown background %q, using solid fill", string(bg.Kind))
		p.solid(dc, w, h, bg.Color)
	}
}

func (p *Painter) solid(dc *gg.Context, w, h int, c color.Color) {
	if c == nil {
		c = color.White
	}
	dc.SetColor(c)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}

// LinearGradient builds the fill pattern for g across a w x h canvas.
func (p *Painter) LinearGradient(w, h int, g pipeline.Gradient) gg.Gradient {
	pts := p.GradientPoints(w, h, g.Angle)
	grad := gg.NewLinearGradient(pts.X1, pts.Y1, pts.X2, pts.Y2)
	from, to := g.From, g.To
	if from == nil {
		from = color.White
	}
	if to == nil {
		to = from
	}
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)
	return grad
}

func (p *Painter) gradient(dc *gg.Context, w, h int, g pipeline.Gradient) {
	dc.SetFillStyle(p.LinearGradient(w, h, g))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}

func (p *Painter) mesh(dc *gg.Context, w, h int, css string) {
	p.solid(dc, w, h, meshBase)

	points := ParseMesh(css)
	if len(points) == 0 {
		if strings.TrimSpace(css) != "" {
			p.logger.Warn("Mesh CSS has no radial-gradient clauses, using default mesh")
		}
		points = FallbackMesh
	}

	base, ok := dc.Image().(*image.RGBA)
	if !ok {
		return
	}

	layer, release := p.scratch(w, h)
	defer release()

	extent := math.Max(float64(w), float64(h))
	for _, pt := range points {
		layer.SetColor(color.Transparent)
		layer.Clear()

		cx, cy := pt.X*float64(w), pt.Y*float64(h)
		r := math.Max(pt.Size*extent, 1)
		grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
		grad.AddColorStop(0, pt.Color)
		grad.AddColorStop(1, transparentOf(pt.Color))
		layer.SetFillStyle(grad)
		layer.DrawRectangle(0, 0, float64(w), float64(h))
		layer.Fill()

		screened := blend.Screen(base.SubImage(image.Rect(0, 0, w, h)), layer.Image())
		draw.Copy(base, image.Point{}, screened, screened.Bounds(), draw.Src, nil)
	}
}

// scratch returns a transparent w x h context and a func that gives it back.
func (p *Painter) scratch(w, h int) (*gg.Context, func()) {
	if p.pool == nil {
		return gg.NewContext(w, h), func() {}
	}
	s := p.pool.Acquire(w, h)
	return s.Context(), func() { p.pool.Release(s) }
}

// TextSize returns the base font size for a text pattern given how many
// anchor positions it uses.
func TextSize(w, h, positions int) float64 {
	size := math.Min(float64(w), float64(h)) * textSizeFactor
	switch {
	case positions >= 3:
		return size * 0.7
	case positions == 2:
		return size * 0.85
	default:
		return size
	}
}

func (p *Painter) textPattern(dc *gg.Context, w, h int, tp pipeline.TextPattern) {
	if strings.TrimSpace(tp.Text) == "" {
		return
	}
	positions := tp.Positions
	if len(positions) == 0 {
		positions = []pipeline.TextPosition{pipeline.TextCenter}
	}

	size := tp.Font.Size
	if size <= 0 {
		size = TextSize(w, h, len(positions))
	}
	face, err := p.fonts.Face(tp.Font, size)
	if err != nil {
		p.logger.Warn("Font face unavailable: %s", err.Error())
		return
	}
	dc.SetFontFace(face)

	// Shrink to fit within the width cap.
	if tw, _ := dc.MeasureString(tp.Text); tw > float64(w)*textMaxWidth {
		size *= float64(w) * textMaxWidth / tw
		if face, err = p.fonts.Face(tp.Font, size); err == nil {
			dc.SetFontFace(face)
		}
	}

	c := tp.Color
	if c == nil {
		c = color.White
	}
	dc.SetColor(WithOpacity(c, tp.Opacity))

	rows := tp.Rows
	if rows < 1 {
		rows = 1
	}
	lineHeight := size * textLineSpacing
	for _, pos := range positions {
		anchor, ok := textAnchors[pos]
		if !ok {
			continue
		}
		cy := anchor * float64(h)
		top := cy - lineHeight*float64(rows-1)/2
		for i := 0; i < rows; i++ {
			dc.DrawStringAnchored(tp.Text, float64(w)/2, top+float64(i)*lineHeight, 0.5, 0.5)
		}
	}
}

// WavePath traces the gradient half of a wave split: the area above a
// two-cycle wave around the vertical midline.
func WavePath(dc *gg.Context, w, h int, flipped bool) {
	fw, fh := float64(w), float64(h)
	mid := fh / 2
	amp := fh * waveAmplitude
	if flipped {
		amp = -amp
	}

	dc.NewSubPath()
	dc.MoveTo(0, 0)
	dc.LineTo(fw, 0)
	dc.LineTo(fw, mid)

	// Four half-cycles from right to left. A cubic with both controls at
	// 4/3 of the amplitude peaks at exactly the amplitude.
	seg := fw / 4
	lift := amp * 4 / 3
	for i := 0; i < 4; i++ {
		x0 := fw - float64(i)*seg
		x1 := x0 - seg
		sign := 1.0
		if i%2 == 1 {
			sign = -1
		}
		dc.CubicTo(x0-seg/3, mid-sign*lift, x0-2*seg/3, mid-sign*lift, x1, mid)
	}
	dc.ClosePath()
}

func (p *Painter) waveSplit(dc *gg.Context, w, h int, bg pipeline.Background) {
	p.solid(dc, w, h, bg.Color)
	WavePath(dc, w, h, bg.WaveFlipped)
	dc.SetFillStyle(p.LinearGradient(w, h, bg.Gradient))
	dc.Fill()
}

// LogoGrid returns the tile size, step and tile counts for a logo pattern.
// The grid always overflows the canvas by one tile on each axis.
func LogoGrid(w, h int, lp pipeline.LogoPattern) (tile, step float64, cols, rows int) {
	size := lp.Size
	if size <= 0 {
		size = defaultLogoSize
	}
	spacing := lp.Spacing
	if spacing <= 0 {
		spacing = defaultLogoSpace
	}
	spacing = math.Max(spacing, 1)

	tile = math.Max(math.Min(float64(w), float64(h))*size, 1)
	step = tile * spacing
	cols = int(math.Ceil(float64(w)/step)) + 1
	rows = int(math.Ceil(float64(h)/step)) + 1
	return tile, step, cols, rows
}

func (p *Painter) logoPattern(dc *gg.Context, w, h int, lp pipeline.LogoPattern) {
	if lp.Image == nil {
		p.logger.Warn("Logo pattern has no logo image, painting gradient only")
		return
	}
	dst, ok := dc.Image().(*image.RGBA)
	if !ok {
		return
	}

	tile, step, cols, rows := LogoGrid(w, h, lp)
	side := int(math.Round(tile))
	logo := fitTile(lp.Image, side)
	lb := logo.Bounds()

	alpha := uint8(math.Round(math.Max(0, math.Min(lp.Opacity, 1)) * 255))
	if alpha == 0 {
		return
	}
	mask := image.NewUniform(color.Alpha{A: alpha})

	// Center each logo in its cell.
	padX := (step - float64(lb.Dx())) / 2
	padY := (step - float64(lb.Dy())) / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := int(math.Round(float64(col)*step + padX))
			y := int(math.Round(float64(row)*step + padY))
			r := image.Rect(x, y, x+lb.Dx(), y+lb.Dy())
			draw.DrawMask(dst, r, logo, lb.Min, mask, image.Point{}, draw.Over)
		}
	}
}

// fitTile scales img up or down to fit a side x side square, keeping aspect.
func fitTile(img image.Image, side int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return img
	}
	scale := math.Min(float64(side)/float64(b.Dx()), float64(side)/float64(b.Dy()))
	w := int(math.Max(1, math.Round(float64(b.Dx())*scale)))
	h := int(math.Max(1, math.Round(float64(b.Dy())*scale)))
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

func (p *Painter) checkerboard(dc *gg.Context, w, h int) {
	p.solid(dc, w, h, checkerLight)
	dc.SetColor(checkerDark)
	for y := 0; y*checkerTile < h; y++ {
		for x := 0; x*checkerTile < w; x++ {
			if (x+y)%2 == 1 {
				dc.DrawRectangle(float64(x*checkerTile), float64(y*checkerTile), checkerTile, checkerTile)
			}
		}
	}
	dc.Fill()
}
