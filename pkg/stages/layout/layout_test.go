package layout

import (
	"context"
	"math"
	"testing"

	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/pipeline"
)

func input(w, h int, frame pipeline.FrameKind, padding int, zoom float64) pipeline.LayoutInput {
	return pipeline.LayoutInput{
		Image:   pipeline.Dimension{Width: w, Height: h},
		Frame:   frame,
		Padding: padding,
		Zoom:    zoom,
	}
}

// TestComputeLayout_Scenario checks the reference 1000x2000 image with 64px padding.
func TestComputeLayout_Scenario(t *testing.T) {
	cache := framegeom.New()

	// none: 1000 + 128 = 1128, 2000 + 128 = 2128
	none := ComputeLayout(cache, input(1000, 2000, pipeline.FrameNone, 64, 1))
	if none.Canvas != (pipeline.Dimension{Width: 1128, Height: 2128}) {
		t.Errorf("none: expected 1128x2128, got %+v", none.Canvas)
	}
	if none.ContentOrigin != (pipeline.Point{X: 64, Y: 64}) {
		t.Errorf("none: expected content origin 64,64, got %+v", none.ContentOrigin)
	}
	if none.ImageOrigin != none.ContentOrigin {
		t.Errorf("none: expected image origin = content origin, got %+v", none.ImageOrigin)
	}

	// browser: +40 height only
	browser := ComputeLayout(cache, input(1000, 2000, pipeline.FrameBrowser, 64, 1))
	if browser.Canvas != (pipeline.Dimension{Width: 1128, Height: 2168}) {
		t.Errorf("browser: expected 1128x2168, got %+v", browser.Canvas)
	}
	if browser.ImageOrigin != (pipeline.Point{X: 64, Y: 104}) {
		t.Errorf("browser: expected image origin 64,104, got %+v", browser.ImageOrigin)
	}

	// iphone at zoom 2: +32*2 on both axes over the zoom-2 baseline
	base2 := ComputeLayout(cache, input(1000, 2000, pipeline.FrameNone, 64, 2))
	phone2 := ComputeLayout(cache, input(1000, 2000, pipeline.FrameIPhone, 64, 2))
	if phone2.Canvas.Width-base2.Canvas.Width != 64 || phone2.Canvas.Height-base2.Canvas.Height != 64 {
		t.Errorf("iphone zoom=2: expected +64/+64, got %+v vs %+v", phone2.Canvas, base2.Canvas)
	}
	if base2.Canvas != (pipeline.Dimension{Width: 2128, Height: 4128}) {
		t.Errorf("none zoom=2: expected 2128x4128, got %+v", base2.Canvas)
	}
}

func TestComputeLayout_FrameDeltas(t *testing.T) {
	tests := []struct {
		name   string
		frame  pipeline.FrameKind
		zoom   float64
		deltaW int
		deltaH int
	}{
		{"none", pipeline.FrameNone, 1, 0, 0},
		{"browser", pipeline.FrameBrowser, 1, 0, 40},
		{"browser ignores zoom", pipeline.FrameBrowser, 3, 0, 40},
		{"macos", pipeline.FrameMacOS, 1, 0, 28},
		{"windows", pipeline.FrameWindows, 1, 0, 32},
		{"iphone", pipeline.FrameIPhone, 1, 32, 32},
		{"iphone half", pipeline.FrameIPhone, 0.5, 16, 16},
		{"android", pipeline.FrameAndroid, 1, 24, 24},
	}

	cache := framegeom.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := ComputeLayout(cache, input(800, 600, pipeline.FrameNone, 32, tt.zoom))
			got := ComputeLayout(cache, input(800, 600, tt.frame, 32, tt.zoom))
			if dw := got.Canvas.Width - base.Canvas.Width; dw != tt.deltaW {
				t.Errorf("width delta: expected %d, got %d", tt.deltaW, dw)
			}
			if dh := got.Canvas.Height - base.Canvas.Height; dh != tt.deltaH {
				t.Errorf("height delta: expected %d, got %d", tt.deltaH, dh)
			}
		})
	}
}

func TestComputeLayout_NoFrameIdentity(t *testing.T) {
	cache := framegeom.New()
	for _, tt := range []struct {
		w, h, p int
		zoom    float64
	}{
		{100, 100, 0, 1},
		{640, 480, 20, 1.5},
		{333, 777, 64, 0.3},
	} {
		g := ComputeLayout(cache, input(tt.w, tt.h, pipeline.FrameNone, tt.p, tt.zoom))
		sw := int(math.Round(float64(tt.w) * tt.zoom))
		sh := int(math.Round(float64(tt.h) * tt.zoom))
		if g.ScaledImage.Width != sw || g.ScaledImage.Height != sh {
			t.Errorf("%+v: expected scaled %dx%d, got %+v", tt, sw, sh, g.ScaledImage)
		}
		if g.Canvas.Width != sw+2*tt.p || g.Canvas.Height != sh+2*tt.p {
			t.Errorf("%+v: expected canvas %dx%d, got %+v", tt, sw+2*tt.p, sh+2*tt.p, g.Canvas)
		}
	}
}

func TestComputeLayout_FixedTarget(t *testing.T) {
	cache := framegeom.New()

	in := input(1000, 2000, pipeline.FrameBrowser, 64, 1)
	in.Target = pipeline.Dimension{Width: 1200, Height: 630}
	g := ComputeLayout(cache, in)

	if g.Canvas != in.Target {
		t.Errorf("expected canvas to equal target, got %+v", g.Canvas)
	}
	// Content 1000x2040 centered in 1200x630 letterboxes horizontally and crops vertically.
	if g.ContentOrigin.X != 100 {
		t.Errorf("expected content x 100, got %d", g.ContentOrigin.X)
	}
	if g.ContentOrigin.Y != -705 {
		t.Errorf("expected content y -705, got %d", g.ContentOrigin.Y)
	}

	// A target with one non-positive side is ignored.
	in.Target = pipeline.Dimension{Width: 1200, Height: 0}
	g = ComputeLayout(cache, in)
	if g.Canvas != (pipeline.Dimension{Width: 1128, Height: 2168}) {
		t.Errorf("expected derived canvas, got %+v", g.Canvas)
	}
}

func TestComputeLayout_Degenerate(t *testing.T) {
	cache := framegeom.New()
	g := ComputeLayout(cache, input(-10, 0, pipeline.FrameNone, -5, 0))
	if g.Canvas.Width != 0 || g.Canvas.Height != 0 {
		t.Errorf("expected empty canvas for degenerate input, got %+v", g.Canvas)
	}
}

func TestComputeCornerRadii(t *testing.T) {
	tests := []struct {
		name   string
		kind   pipeline.FrameKind
		radius float64
		top    float64
		bottom float64
	}{
		{"none keeps radius", pipeline.FrameNone, 24, 24, 24},
		{"none zero", pipeline.FrameNone, 0, 0, 0},
		{"browser minimum", pipeline.FrameBrowser, 0, 0, 12},
		{"browser larger radius", pipeline.FrameBrowser, 30, 0, 30},
		{"macos minimum", pipeline.FrameMacOS, 4, 0, 10},
		{"windows minimum", pipeline.FrameWindows, 2, 0, 8},
		{"negative clamps", pipeline.FrameNone, -3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCornerRadii(tt.kind, tt.radius, 1, 0, 0)
			if got.Top != tt.top || got.Bottom != tt.bottom {
				t.Errorf("expected %v/%v, got %v/%v", tt.top, tt.bottom, got.Top, got.Bottom)
			}
		})
	}
}

func TestComputeCornerRadii_PhoneIgnoresBorderRadius(t *testing.T) {
	for _, kind := range []pipeline.FrameKind{pipeline.FrameIPhone, pipeline.FrameAndroid} {
		a := ComputeCornerRadii(kind, 0, 1, 0, 0)
		b := ComputeCornerRadii(kind, 100, 1, 0, 0)
		if a != b {
			t.Errorf("%s: expected radius-independent result, got %+v vs %+v", kind, a, b)
		}
		double := ComputeCornerRadii(kind, 0, 2, 0, 0)
		if math.Abs(double.Top-2*a.Top) > 1e-9 {
			t.Errorf("%s: expected linear zoom scaling, got %v at 1 and %v at 2", kind, a.Top, double.Top)
		}
		if a.Top != a.Bottom {
			t.Errorf("%s: expected equal top/bottom, got %+v", kind, a)
		}
	}
}

func TestComputeCornerRadii_PhoneUsesContentScale(t *testing.T) {
	// 866x1764 is exactly twice the iPhone reference artwork.
	got := ComputeCornerRadii(pipeline.FrameIPhone, 0, 1, 866, 1764)
	if got.Top != 110 {
		t.Errorf("expected 55*2 = 110, got %v", got.Top)
	}
}

func TestStage_Execute(t *testing.T) {
	stage := NewStage(nil)
	g, err := stage.Execute(context.Background(), input(100, 50, pipeline.FrameNone, 10, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Canvas != (pipeline.Dimension{Width: 120, Height: 70}) {
		t.Errorf("expected 120x70, got %+v", g.Canvas)
	}
	if stage.Cache().Len() != 1 {
		t.Errorf("expected one cached offsets entry, got %d", stage.Cache().Len())
	}
}
