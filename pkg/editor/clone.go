package editor

import "github.com/user/mockshot/pkg/pipeline"

func cloneStyle(style pipeline.StyleParameters) pipeline.StyleParameters {
	out := style
	out.Background = cloneBackground(style.Background)
	if style.TextOverlays != nil {
		out.TextOverlays = make([]pipeline.TextOverlay, len(style.TextOverlays))
		for i, ov := range style.TextOverlays {
			out.TextOverlays[i] = cloneOverlay(ov)
		}
	}
	return out
}

func cloneBackground(bg pipeline.Background) pipeline.Background {
	out := bg
	if bg.Text.Positions != nil {
		out.Text.Positions = append([]pipeline.TextPosition(nil), bg.Text.Positions...)
	}
	return out
}

func cloneOverlay(ov pipeline.TextOverlay) pipeline.TextOverlay {
	out := ov
	if ov.Gradient != nil {
		g := *ov.Gradient
		out.Gradient = &g
	}
	return out
}
