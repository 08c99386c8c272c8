package background

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings that are not #rgb, #rrggbb,
// #rrggbbaa or "transparent".
var ErrInvalidColor = errors.New("invalid color")

// ParseHexColor parses a CSS hex color.
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.Transparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	switch digits := s[1:]; len(digits) {
	case 3, 6, 8:
		if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseHexColor is ParseHexColor for compile-time constants.
func MustParseHexColor(s string) color.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithOpacity returns c with its alpha multiplied by opacity (0-1).
func WithOpacity(c color.Color, opacity float64) color.NRGBA {
	if c == nil {
		c = color.Black
	}
	opacity = math.Max(0, math.Min(1, opacity))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * opacity))
	return n
}

// transparentOf returns c with zero alpha, so gradients fade without
// darkening toward black.
func transparentOf(c color.Color) color.NRGBA {
	return WithOpacity(c, 0)
}

// HexString formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func HexString(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	hex := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}.Hex()
	if n.A != 255 {
		hex += fmt.Sprintf("%02x", n.A)
	}
	return hex
}
