// Package lights implements the point-light model: a position, a colour
// and an inverse-square-style falloff governed by a lumens/half-distance
// pair, with no area sampling or importance weighting.
package lights

import "github.com/arnovandash/go-raytracer/pkg/core"

// Light is a point light source. Attenuation follows lumens*half/(half+d²)
// rather than a pure inverse-square law, so Half acts as the squared
// distance at which intensity has fallen to half of Lumens.
type Light struct {
	Position core.Vec3
	Colour   core.Vec3

	// Lumens is the light's intensity at distance zero.
	Lumens float64

	// Half is the squared distance at which attenuation reaches Lumens/2.
	Half float64
}

// NewLight creates a point light.
func NewLight(position, colour core.Vec3, lumens, half float64) Light {
	return Light{Position: position, Colour: colour, Lumens: lumens, Half: half}
}

// Attenuation returns the light's intensity at squared distance distSq from
// its position: lumens * half / (half + distSq).
func (l Light) Attenuation(distSq float64) float64 {
	return l.Lumens * l.Half / (l.Half + distSq)
}
