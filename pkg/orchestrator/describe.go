package orchestrator

import (
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/stages/background"
)

// styleDoc is the debug dump of the resolved style, with colors as hex
// strings and the logo image reduced to its size.
type styleDoc struct {
	Frame        string       `yaml:"frame"`
	Padding      int          `yaml:"padding"`
	Zoom         float64      `yaml:"zoom"`
	BorderRadius float64      `yaml:"border_radius"`
	Rotation     float64      `yaml:"rotation"`
	OutputSize   []int        `yaml:"output_size,omitempty"`
	Background   bgDoc        `yaml:"background"`
	Shadow       shadowDoc    `yaml:"shadow"`
	TextOverlays []overlayDoc `yaml:"text_overlays,omitempty"`
}

type bgDoc struct {
	Kind        string      `yaml:"kind"`
	Color       string      `yaml:"color,omitempty"`
	Gradient    gradientDoc `yaml:"gradient"`
	Mesh        string      `yaml:"mesh,omitempty"`
	Text        string      `yaml:"text,omitempty"`
	Positions   []string    `yaml:"positions,omitempty"`
	WaveFlipped bool        `yaml:"wave_flipped,omitempty"`
	Logo        []int       `yaml:"logo,omitempty"`
}

type gradientDoc struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Angle float64 `yaml:"angle"`
}

type shadowDoc struct {
	Blur    float64 `yaml:"blur"`
	Opacity float64 `yaml:"opacity"`
	Color   string  `yaml:"color"`
}

type overlayDoc struct {
	ID       string       `yaml:"id"`
	Text     string       `yaml:"text"`
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Color    string       `yaml:"color,omitempty"`
	Gradient *gradientDoc `yaml:"gradient,omitempty"`
	Font     string       `yaml:"font,omitempty"`
}

func describeStyle(s pipeline.StyleParameters) styleDoc {
	doc := styleDoc{
		Frame:        string(s.Frame),
		Padding:      s.Padding,
		Zoom:         s.Zoom,
		BorderRadius: s.BorderRadius,
		Rotation:     s.Rotation,
		Background: bgDoc{
			Kind:        string(s.Background.Kind),
			Color:       background.HexString(s.Background.Color),
			Gradient:    describeGradient(s.Background.Gradient),
			Mesh:        s.Background.MeshCSS,
			Text:        s.Background.Text.Text,
			WaveFlipped: s.Background.WaveFlipped,
		},
		Shadow: shadowDoc{
			Blur:    s.Shadow.Blur,
			Opacity: s.Shadow.Opacity,
			Color:   background.HexString(s.Shadow.Color),
		},
	}
	if s.OutputSize.Positive() {
		doc.OutputSize = []int{s.OutputSize.Width, s.OutputSize.Height}
	}
	for _, p := range s.Background.Text.Positions {
		doc.Background.Positions = append(doc.Background.Positions, string(p))
	}
	if logo := s.Background.Logo.Image; logo != nil {
		b := logo.Bounds()
		doc.Background.Logo = []int{b.Dx(), b.Dy()}
	}
	for _, ov := range s.TextOverlays {
		od := overlayDoc{
			ID:    ov.ID,
			Text:  ov.Text,
			X:     ov.X,
			Y:     ov.Y,
			Color: background.HexString(ov.Color),
			Font:  ov.Font.Family,
		}
		if ov.Gradient != nil {
			g := describeGradient(*ov.Gradient)
			od.Gradient = &g
		}
		doc.TextOverlays = append(doc.TextOverlays, od)
	}
	return doc
}

func describeGradient(g pipeline.Gradient) gradientDoc {
	return gradientDoc{
		From:  background.HexString(g.From),
		To:    background.HexString(g.To),
		Angle: g.Angle,
	}
}
