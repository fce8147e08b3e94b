package integrator

import (
	"testing"

	"github.com/arnovandash/go-raytracer/pkg/camera"
	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/lights"
	"github.com/arnovandash/go-raytracer/pkg/material"
	"github.com/arnovandash/go-raytracer/pkg/scene"
)

func TestShadeClampsToUnitRange(t *testing.T) {
	mats := material.NewList()
	cam := camera.NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 10, 10, 0)
	s := &scene.Scene{Materials: mats, Camera: cam}
	s.Lights = []lights.Light{
		lights.NewLight(core.NewVec3(0, 5, -5), core.NewVec3(1, 1, 1), 10000, 100),
		lights.NewLight(core.NewVec3(5, 0, -5), core.NewVec3(1, 1, 1), 10000, 100),
	}

	mat := material.Material{
		Diff: core.NewColour(1, 1, 1, 1),
		Spec: core.NewColour(1, 1, 1, 1),
		IOR:  1,
	}

	got := Shade(s, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -5), mat, nil, nil)
	if got.X > 1 || got.Y > 1 || got.Z > 1 || got.X < 0 || got.Y < 0 || got.Z < 0 {
		t.Errorf("Shade() = %v, want channels in [0,1]", got)
	}
}

func TestShadeNoLightsIsBlack(t *testing.T) {
	mats := material.NewList()
	cam := camera.NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 10, 10, 0)
	s := &scene.Scene{Materials: mats, Camera: cam}
	mat := material.Material{Diff: core.NewColour(1, 1, 1, 1), IOR: 1}

	got := Shade(s, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -5), mat, nil, nil)
	if got != (core.Vec3{}) {
		t.Errorf("Shade() with no lights = %v, want zero vector", got)
	}
}
