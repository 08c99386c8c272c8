package frame

import (
	"image/color"
	"math"
	"testing"

	"github.com/fogleman/gg"

	"github.com/user/mockshot/pkg/pipeline"
)

func rgbaAt(dc *gg.Context, x, y int) color.RGBA {
	return color.RGBAModel.Convert(dc.Image().At(x, y)).(color.RGBA)
}

func TestRoundedRectPath_DistinctRadii(t *testing.T) {
	dc := gg.NewContext(100, 100)
	dc.SetColor(color.Black)
	RoundedRectPath(dc, 0, 0, 100, 100, 30, 0)
	dc.Fill()

	if rgbaAt(dc, 1, 1).A != 0 {
		t.Error("expected rounded top-left corner to be empty")
	}
	if rgbaAt(dc, 98, 1).A != 0 {
		t.Error("expected rounded top-right corner to be empty")
	}
	if rgbaAt(dc, 1, 98).A != 255 {
		t.Error("expected square bottom-left corner to be filled")
	}
	if rgbaAt(dc, 50, 50).A != 255 {
		t.Error("expected center to be filled")
	}
}

func TestRoundedRectPath_ClampsRadius(t *testing.T) {
	dc := gg.NewContext(40, 20)
	dc.SetColor(color.Black)
	RoundedRectPath(dc, 0, 0, 40, 20, 500, 500)
	dc.Fill()

	// Clamped to a 10px radius: a stadium shape.
	if rgbaAt(dc, 20, 10).A != 255 {
		t.Error("expected center to be filled")
	}
	if rgbaAt(dc, 0, 0).A != 0 {
		t.Error("expected corner to be empty")
	}
}

func TestDrawFrame_None(t *testing.T) {
	dc := gg.NewContext(50, 50)
	DrawFrame(dc, 0, 0, 50, 50, pipeline.FrameNone, 12, 1)

	for _, p := range [][2]int{{0, 0}, {25, 25}, {49, 49}} {
		if rgbaAt(dc, p[0], p[1]).A != 0 {
			t.Errorf("expected no chrome at %v", p)
		}
	}
}

func TestDrawFrame_WindowChrome(t *testing.T) {
	tests := []struct {
		kind    pipeline.FrameKind
		barY    int
		barFill color.RGBA
		dotX    int
	}{
		{pipeline.FrameBrowser, 4, browserBar, 20},
		{pipeline.FrameMacOS, 3, macBar, 14},
		{pipeline.FrameWindows, 4, windowsBar, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			dc := gg.NewContext(400, 300)
			DrawFrame(dc, 0, 0, 400, 300, tt.kind, 0, 1)

			if got := rgbaAt(dc, 200, tt.barY); got != tt.barFill {
				t.Errorf("expected title bar %v, got %v", tt.barFill, got)
			}
			if got := rgbaAt(dc, 200, 200); got != chromeBody {
				t.Errorf("expected body %v, got %v", chromeBody, got)
			}
			if rgbaAt(dc, 0, 0).A == 255 {
				t.Error("expected rounded outer corner")
			}
			if tt.dotX >= 0 {
				// Traffic lights sit centered in the bar.
				cy := map[pipeline.FrameKind]int{pipeline.FrameBrowser: 20, pipeline.FrameMacOS: 14}[tt.kind]
				if got := rgbaAt(dc, tt.dotX, cy); got != dotRed {
					t.Errorf("expected red dot at (%d,%d), got %v", tt.dotX, cy, got)
				}
				if got := rgbaAt(dc, tt.dotX+40, cy); got != dotGreen {
					t.Errorf("expected green dot, got %v", got)
				}
			}
		})
	}
}

func TestDrawFrame_BrowserURLPill(t *testing.T) {
	dc := gg.NewContext(400, 100)
	DrawFrame(dc, 0, 0, 400, 100, pipeline.FrameBrowser, 12, 1)

	if got := rgbaAt(dc, 200, 20); got != browserURL {
		t.Errorf("expected URL pill at the bar center, got %v", got)
	}
}

func TestDrawFrame_WindowsControls(t *testing.T) {
	dc := gg.NewContext(400, 100)
	DrawFrame(dc, 0, 0, 400, 100, pipeline.FrameWindows, 0, 1)

	// Center of the close glyph's X.
	if got := rgbaAt(dc, 400-23, 16); got == windowsBar {
		t.Error("expected close glyph at the right of the bar")
	}
}

func TestPhoneTransform(t *testing.T) {
	tests := []struct {
		name         string
		kind         pipeline.FrameKind
		x, y, w, h   float64
		zoom, floor  float64
		wantX, wantY float64
		wantScale    float64
	}{
		{"exact reference", pipeline.FrameIPhone, 0, 0, 433, 882, 1, 0, 0, 0, 1},
		{"double size", pipeline.FrameIPhone, 10, 20, 866, 1764, 1, 0, 10, 20, 2},
		{"tall box centers vertically", pipeline.FrameIPhone, 0, 0, 433, 1764, 1, 0, 0, 441, 1},
		{"wide box centers horizontally", pipeline.FrameAndroid, 0, 0, 756, 830, 1, 0, 189, 0, 1},
		{"empty box uses zoom", pipeline.FrameAndroid, 0, 0, 0, 0, 0.5, 0, -94.5, -207.5, 0.5},
		{"floor", pipeline.FrameIPhone, 0, 0, 4, 8, 1, 0.1, 2 - 21.65, 4 - 44.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, s := PhoneTransform(tt.kind, tt.x, tt.y, tt.w, tt.h, tt.zoom, tt.floor)
			if math.Abs(s-tt.wantScale) > 1e-9 {
				t.Errorf("expected scale %f, got %f", tt.wantScale, s)
			}
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("expected origin (%f,%f), got (%f,%f)", tt.wantX, tt.wantY, x, y)
			}
		})
	}

	if _, _, s := PhoneTransform(pipeline.FrameBrowser, 0, 0, 100, 100, 1, 0); s != 0 {
		t.Errorf("expected zero scale for non-phone frames, got %f", s)
	}
}

func TestDrawFrame_PhoneUniformScale(t *testing.T) {
	dc := gg.NewContext(433, 1764)
	DrawFrame(dc, 0, 0, 433, 1764, pipeline.FrameIPhone, 0, 1)

	// Artwork is 433x882 centered vertically; nothing above or below it.
	if rgbaAt(dc, 216, 200).A != 0 {
		t.Error("expected empty space above the centered artwork")
	}
	if rgbaAt(dc, 216, 1600).A != 0 {
		t.Error("expected empty space below the centered artwork")
	}
	if got := rgbaAt(dc, 216, 441+441); got != screenBlack {
		t.Errorf("expected black screen at artwork center, got %v", got)
	}
	if got := rgbaAt(dc, 10, 441+441); got != phoneBody {
		t.Errorf("expected bezel at the left edge, got %v", got)
	}
}

func TestDrawFrame_AndroidScaled(t *testing.T) {
	dc := gg.NewContext(756, 1660)
	DrawFrame(dc, 0, 0, 756, 1660, pipeline.FrameAndroid, 100, 2)

	if got := rgbaAt(dc, 378, 830); got != screenBlack {
		t.Errorf("expected screen at center, got %v", got)
	}
	if got := rgbaAt(dc, 12, 830); got != androidBody {
		t.Errorf("expected scaled bezel at x=12, got %v", got)
	}
	if rgbaAt(dc, 1, 1).A != 0 {
		t.Error("expected rounded device corner")
	}
}

func TestDrawFrameOverlay_IPhone(t *testing.T) {
	dc := gg.NewContext(433, 882)
	DrawFrameOverlay(dc, 0, 0, 433, 882, pipeline.FrameIPhone, 1)

	if got := rgbaAt(dc, 200, 45); got != screenBlack {
		t.Errorf("expected Dynamic Island pill, got %v", got)
	}
	if rgbaAt(dc, 216, 441).A != 0 {
		t.Error("expected overlay to leave the screen untouched")
	}
	if rgbaAt(dc, 216, 10).A != 0 {
		t.Error("expected nothing above the pill")
	}
}

func TestDrawFrameOverlay_Android(t *testing.T) {
	dc := gg.NewContext(378, 830)
	DrawFrameOverlay(dc, 0, 0, 378, 830, pipeline.FrameAndroid, 1)

	if got := rgbaAt(dc, 187, 36); got.A != 255 {
		t.Errorf("expected punch-hole camera, got %v", got)
	}
	if rgbaAt(dc, 189, 415).A != 0 {
		t.Error("expected overlay to leave the screen untouched")
	}
}

func TestDrawFrameOverlay_NonPhoneIsNoop(t *testing.T) {
	for _, kind := range []pipeline.FrameKind{pipeline.FrameNone, pipeline.FrameBrowser, pipeline.FrameMacOS, pipeline.FrameWindows} {
		dc := gg.NewContext(100, 100)
		DrawFrameOverlay(dc, 0, 0, 100, 100, kind, 1)
		if rgbaAt(dc, 50, 50).A != 0 {
			t.Errorf("%s: expected no overlay", kind)
		}
	}
}

func TestDrawFrameOverlay_DegenerateScale(t *testing.T) {
	dc := gg.NewContext(100, 100)
	// Zero box and zero zoom fall back to the scale floor without panicking.
	DrawFrameOverlay(dc, 50, 50, 0, 0, pipeline.FrameIPhone, 0)
}
