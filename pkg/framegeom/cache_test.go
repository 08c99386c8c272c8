package framegeom

import (
	"testing"

	"github.com/user/mockshot/pkg/pipeline"
)

var allKinds = []pipeline.FrameKind{
	pipeline.FrameNone,
	pipeline.FrameBrowser,
	pipeline.FrameMacOS,
	pipeline.FrameWindows,
	pipeline.FrameIPhone,
	pipeline.FrameAndroid,
}

func TestCache_SameReferenceOnHit(t *testing.T) {
	c := New()
	for _, kind := range allKinds {
		for _, zoom := range []float64{0, 0.5, 1, 2} {
			a := c.Offsets(kind, zoom)
			b := c.Offsets(kind, zoom)
			if a != b {
				t.Errorf("%s zoom=%v: expected identical pointer on repeat call", kind, zoom)
			}
		}
	}
}

func TestCache_PhoneOffsetsScaleWithZoom(t *testing.T) {
	c := New()

	one := c.Offsets(pipeline.FrameIPhone, 1)
	two := c.Offsets(pipeline.FrameIPhone, 2)

	if one == two {
		t.Fatal("expected a different entry for a different zoom")
	}
	if one.Top != 16 || one.Left != 16 || one.Right != 16 || one.Bottom != 16 {
		t.Errorf("iphone zoom=1: expected 16 on every side, got %+v", *one)
	}
	if two.Horizontal() != 64 || two.Vertical() != 64 {
		t.Errorf("iphone zoom=2: expected totals 64x64, got %dx%d", two.Horizontal(), two.Vertical())
	}

	android := c.Offsets(pipeline.FrameAndroid, 1.5)
	if android.Top != 18 {
		t.Errorf("android zoom=1.5: expected top 18, got %d", android.Top)
	}
}

func TestCache_WindowOffsetsIgnoreZoom(t *testing.T) {
	tests := []struct {
		kind pipeline.FrameKind
		top  int
	}{
		{pipeline.FrameNone, 0},
		{pipeline.FrameBrowser, 40},
		{pipeline.FrameMacOS, 28},
		{pipeline.FrameWindows, 32},
	}

	c := New()
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var prev *pipeline.FrameOffsets
			for _, zoom := range []float64{0.25, 1, 3} {
				off := c.Offsets(tt.kind, zoom)
				if off.Top != tt.top || off.Bottom != 0 || off.Horizontal() != 0 {
					t.Errorf("zoom=%v: expected top=%d only, got %+v", zoom, tt.top, *off)
				}
				if off == prev {
					t.Errorf("zoom=%v: expected a distinct entry per zoom", zoom)
				}
				prev = off
			}
		})
	}
}

func TestCache_UnknownKindIsNone(t *testing.T) {
	c := New()
	off := c.Offsets(pipeline.FrameKind("tablet"), 1)
	if *off != (pipeline.FrameOffsets{}) {
		t.Errorf("expected zero offsets, got %+v", *off)
	}
}

func TestCache_ZeroZoomClamped(t *testing.T) {
	c := New()
	off := c.Offsets(pipeline.FrameIPhone, 0)
	if off.Top < 0 {
		t.Errorf("expected non-negative offsets, got %+v", *off)
	}
}

func TestCache_ClearAndVersion(t *testing.T) {
	c := New()

	first := c.Offsets(pipeline.FrameIPhone, 1)
	v := c.Version()

	c.Offsets(pipeline.FrameIPhone, 1)
	if c.Version() != v {
		t.Errorf("expected version unchanged on hit, got %d -> %d", v, c.Version())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", c.Len())
	}

	second := c.Offsets(pipeline.FrameIPhone, 1)
	if first == second {
		t.Error("expected a fresh entry after Clear")
	}
	if *first != *second {
		t.Errorf("expected equal values after Clear, got %+v vs %+v", *first, *second)
	}
	if c.Version() == v {
		t.Error("expected version to advance after recompute")
	}
}

func TestPhoneScale(t *testing.T) {
	if s := PhoneScale(pipeline.FrameIPhone, 433, 882); s != 1 {
		t.Errorf("expected 1 at reference size, got %v", s)
	}
	if s := PhoneScale(pipeline.FrameIPhone, 866, 882); s != 1 {
		t.Errorf("expected height-bound scale 1, got %v", s)
	}
	if s := PhoneScale(pipeline.FrameAndroid, 189, 2000); s != 0.5 {
		t.Errorf("expected width-bound scale 0.5, got %v", s)
	}
	if s := PhoneScale(pipeline.FrameBrowser, 100, 100); s != 0 {
		t.Errorf("expected 0 for non-phone, got %v", s)
	}
}
