package background

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#667eea", want: color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}},
		{in: "764ba2", want: color.NRGBA{R: 0x76, G: 0x4b, B: 0xa2, A: 255}},
		{in: "#fff", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "#00000080", want: color.NRGBA{A: 0x80}},
		{in: "transparent", want: color.NRGBA{}},
		{in: "#zzzzzz", wantErr: true},
		{in: "#12", wantErr: true},
		{in: "#12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n := color.NRGBAModel.Convert(got).(color.NRGBA); n != tt.want {
				t.Errorf("expected %v, got %v", tt.want, n)
			}
		})
	}
}

func TestWithOpacity(t *testing.T) {
	c := WithOpacity(color.NRGBA{R: 10, G: 20, B: 30, A: 255}, 0.5)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 128 {
		t.Errorf("unexpected color %v", c)
	}
	if WithOpacity(color.White, 2).A != 255 {
		t.Error("expected opacity clamped to 1")
	}
	if WithOpacity(nil, 1) != (color.NRGBA{A: 255}) {
		t.Error("expected nil color treated as black")
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}); got != "#667eea" {
		t.Errorf("expected #667eea, got %s", got)
	}
	if got := HexString(color.NRGBA{A: 0x80}); got != "#00000080" {
		t.Errorf("expected #00000080, got %s", got)
	}
}
