package nullsink

import (
	"image"
	"testing"
)

func TestSink_DiscardsEverything(t *testing.T) {
	s := New()

	if s.Enabled() {
		t.Error("expected Enabled to return false")
	}
	if err := s.SaveGeometryJSON([]byte("{}")); err != nil {
		t.Errorf("SaveGeometryJSON: %v", err)
	}
	if err := s.SaveStyleYAML([]byte("a: 1")); err != nil {
		t.Errorf("SaveStyleYAML: %v", err)
	}
	if err := s.SaveLayer("final", image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Errorf("SaveLayer: %v", err)
	}
}
