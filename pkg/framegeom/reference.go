package framegeom

import (
	"math"

	"github.com/user/mockshot/pkg/pipeline"
)

// Reference is the design resolution a phone frame's artwork is authored in.
type Reference struct {
	Width        float64
	Height       float64
	ScreenRadius float64 // Corner radius of the screen cut-out at reference size
}

var references = map[pipeline.FrameKind]Reference{
	pipeline.FrameIPhone:  {Width: 433, Height: 882, ScreenRadius: 55},
	pipeline.FrameAndroid: {Width: 378, Height: 830, ScreenRadius: 36},
}

// ReferenceFor returns the reference artwork for a phone frame.
// ok is false for non-phone kinds.
func ReferenceFor(kind pipeline.FrameKind) (Reference, bool) {
	ref, ok := references[kind]
	return ref, ok
}

// PhoneScale returns the uniform factor that fits the reference artwork of
// kind into a w x h box. It returns 0 for non-phone kinds or empty boxes.
func PhoneScale(kind pipeline.FrameKind, w, h float64) float64 {
	ref, ok := references[kind]
	if !ok || w <= 0 || h <= 0 {
		return 0
	}
	return math.Min(w/ref.Width, h/ref.Height)
}
