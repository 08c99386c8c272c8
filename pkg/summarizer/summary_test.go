package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	settings := Settings{
		Frame:      "iphone",
		Background: "mesh",
		Padding:    64,
		Zoom:       1,
	}

	summary := NewBuilder().
		WithSettings(settings).
		Build()

	if summary.Settings != settings {
		t.Errorf("expected settings %+v, got %+v", settings, summary.Settings)
	}
}

func TestBuilder_AddRender(t *testing.T) {
	summary := NewBuilder().
		AddRender(RenderInfo{Input: "a.png", Output: "a-out.png", FileSize: 100}).
		AddRender(RenderInfo{Input: "b.png", Output: "b-out.png", FileSize: 50}).
		Build()

	if len(summary.Renders) != 2 {
		t.Fatalf("expected 2 renders, got %d", len(summary.Renders))
	}
	if summary.Renders[1].Input != "b.png" {
		t.Errorf("expected input order kept, got %q", summary.Renders[1].Input)
	}
	if summary.TotalBytes() != 150 {
		t.Errorf("expected 150 total bytes, got %d", summary.TotalBytes())
	}
}
