package renderer

import "testing"

func TestRenderDOFRestoresOriginalCamera(t *testing.T) {
	s := newScene(4, 4)
	p := NewPipeline(s, nil)
	original := p.Scene.Camera

	_ = p.RenderDOF(3, 0.2)

	if p.Scene.Camera != original {
		t.Errorf("expected camera to be restored to the original pointer after RenderDOF")
	}
}

func TestRenderDOFProducesFullFrame(t *testing.T) {
	s := newScene(4, 4)
	p := NewPipeline(s, nil)
	out := p.RenderDOF(3, 0.2)
	if len(out) != 16 {
		t.Errorf("RenderDOF() len = %d, want 16", len(out))
	}
}

func TestRenderDOFFewerThanTwoFramesFallsBackToRender(t *testing.T) {
	s := newScene(2, 2)
	p := NewPipeline(s, nil)
	out := p.RenderDOF(1, 0.2)
	want := p.Render()
	if len(out) != len(want) {
		t.Errorf("RenderDOF(1) len = %d, want %d", len(out), len(want))
	}
}
