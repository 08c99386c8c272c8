package summarizer

import (
	"strings"
	"testing"
	"time"
)

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Settings: Settings{
			Frame:         "macos",
			Background:    "gradient",
			Padding:       64,
			Zoom:          1.5,
			BorderRadius:  12,
			ShadowBlur:    20,
			ShadowOpacity: 30,
			TextOverlays:  2,
			Format:        "png",
			Workers:       4,
		},
		Renders: []RenderInfo{
			{Input: "shot.png", Output: "out.png", CanvasWidth: 1128, CanvasHeight: 756, FileSize: 1024 * 1024},
		},
	}

	result := formatter.Format(summary)

	checks := []string{
		"# Render Summary",
		"2024-01-15 10:30:00",
		"| Frame | macos |",
		"| Background | gradient |",
		"64 px",
		"1.50x",
		"| Output Size | Derived |",
		"20 px, 30%",
		"| Text Overlays | 2 |",
		"shot.png",
		"1128x756",
		"1.00 MB",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
	if strings.Contains(result, "Total Size") {
		t.Error("expected no total for a single render")
	}
	if strings.Contains(result, "Rotation") {
		t.Error("expected rotation omitted when zero")
	}
}

func TestMarkdownFormatter_Format_Variants(t *testing.T) {
	tests := []struct {
		name     string
		summary  *Summary
		contains []string
	}{
		{
			name: "fixed size and no shadow",
			summary: &Summary{
				Settings: Settings{Frame: "none", OutputWidth: 1200, OutputHeight: 630, Rotation: -5},
			},
			contains: []string{"| Frame | None |", "1200x630", "| Shadow | None |", "-5°", "No images rendered"},
		},
		{
			name: "multiple renders",
			summary: &Summary{
				Renders: []RenderInfo{
					{Input: "a.png", FileSize: 1024},
					{Input: "b.png", FileSize: 1024},
				},
			},
			contains: []string{"a.png", "b.png", "Total Size: 2.00 KB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewMarkdownFormatter().Format(tt.summary)
			for _, check := range tt.contains {
				if !strings.Contains(result, check) {
					t.Errorf("expected output to contain %q\n%s", check, result)
				}
			}
		})
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Render Summary": "レンダリングサマリー",
			"Frame":          "フレーム",
			"None":           "なし",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	formatter := NewMarkdownFormatter(WithTranslator(translator))
	result := formatter.Format(&Summary{GeneratedAt: time.Now()})

	if !strings.Contains(result, "レンダリングサマリー") {
		t.Error("expected translated 'Render Summary'")
	}
	if !strings.Contains(result, "| フレーム | なし |") {
		t.Error("expected translated frame row")
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	formatter := NewMarkdownFormatter(WithVersion("v1.2.0"))
	result := formatter.Format(&Summary{GeneratedAt: time.Now()})

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
