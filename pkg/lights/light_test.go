package lights

import (
	"math"
	"testing"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

func TestAttenuationAtZeroDistance(t *testing.T) {
	l := NewLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 100, 10)
	if got := l.Attenuation(0); got != 100 {
		t.Errorf("Attenuation(0) = %v, want 100", got)
	}
}

func TestAttenuationAtHalfDistance(t *testing.T) {
	l := NewLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 100, 10)
	got := l.Attenuation(10)
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("Attenuation(half) = %v, want 50", got)
	}
}

func TestAttenuationDecreasesWithDistance(t *testing.T) {
	l := NewLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 100, 10)
	near := l.Attenuation(1)
	far := l.Attenuation(100)
	if far >= near {
		t.Errorf("Attenuation(100) = %v, want < Attenuation(1) = %v", far, near)
	}
}
