// Package integrator implements Blinn-Phong shading and the recursive
// reflection/refraction colour integrator.
package integrator

import (
	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/material"
	"github.com/arnovandash/go-raytracer/pkg/scene"
)

// Shade computes the Blinn-Phong base colour at a hit point: per-light
// diffuse and specular contributions, attenuated, shadowed, and summed,
// then clamped to [0,1].
func Shade(s *scene.Scene, point, normal, viewOrigin core.Vec3, mat material.Material, shadowRays, intersectionTests *int) core.Vec3 {
	var accum core.Vec3
	view := viewOrigin.Subtract(point).Normalize()

	for _, light := range s.Lights {
		toLight := light.Position.Subtract(point)
		distSq := toLight.LengthSquared()
		lightDir := toLight.Normalize()
		half := view.Add(lightDir).Normalize()

		attenuation := light.Attenuation(distSq)

		diffuse := mat.Diff.Scaled().Multiply(attenuation * max(0, normal.Dot(lightDir)))
		specular := mat.Spec.Scaled().Multiply(attenuation * core.Pow50(max(0, normal.Dot(half))))

		shadow := s.ShadowFactor(point, light, shadowRays, intersectionTests)

		contribution := diffuse.Add(specular).Multiply(1 - shadow).MultiplyVec(light.Colour)
		accum = accum.Add(contribution)
	}

	return accum.Clamp(0, 1)
}
