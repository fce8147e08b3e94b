// Package camera builds the orthonormal camera basis and image plane used
// to map pixel coordinates to primary rays.
package camera

import "github.com/arnovandash/go-raytracer/pkg/core"

// focalDistance positions the virtual image plane in front of the camera.
// Combined with the 35mm-film half-height analogue below it fixes the
// effective field of view.
const focalDistance = 2.175

// filmHeightNumerator and filmHeightDenominator set the half-height
// analogue h = 18*focal/35.
const (
	filmHeightNumerator   = 18.0
	filmHeightDenominator = 35.0
)

// Camera holds the derived orthonormal basis and image plane used to
// generate primary rays. Loc, LookAt, WorldUp and Aperture are the inputs;
// everything else is computed once by NewCamera and never mutated during
// rendering.
type Camera struct {
	Loc      core.Vec3
	LookAt   core.Vec3
	WorldUp  core.Vec3
	Aperture float64 // depth-of-field hint, unused by the core integrator

	u, v, n core.Vec3 // right, up, back

	lowerLeftCorner core.Vec3
	stepX, stepY    float64
}

// NewCamera builds the orthonormal basis (u right, v up, n back) and image
// plane for the given eye position, look-at point and world-up hint, sized
// for an imageWidth x imageHeight raster.
func NewCamera(loc, lookAt, worldUp core.Vec3, imageWidth, imageHeight int, aperture float64) *Camera {
	n := loc.Subtract(lookAt).Normalize()
	u := worldUp.Cross(n).Normalize()
	v := n.Cross(u).Normalize()

	h := filmHeightNumerator * focalDistance / filmHeightDenominator
	w := h * (float64(imageWidth) / float64(imageHeight))

	lowerLeftCorner := loc.
		Subtract(n.Multiply(focalDistance)).
		Subtract(u.Multiply(w / 2)).
		Add(v.Multiply(h / 2))

	return &Camera{
		Loc:             loc,
		LookAt:          lookAt,
		WorldUp:         worldUp,
		Aperture:        aperture,
		u:               u,
		v:               v,
		n:               n,
		lowerLeftCorner: lowerLeftCorner,
		stepX:           w / float64(imageWidth),
		stepY:           h / float64(imageHeight),
	}
}

// GetRay builds the primary ray through pixel (px, py), with py growing
// downward. Sub-pixel offsets (ox, oy in [0,1)) let callers jitter for
// supersampling; pass (0.5, 0.5) for a single centered sample.
func (c *Camera) GetRay(px, py float64, ox, oy float64) core.Ray {
	x := px + ox
	y := py + oy

	target := c.lowerLeftCorner.
		Add(c.u.Multiply(x * c.stepX)).
		Subtract(c.v.Multiply(y * c.stepY))

	direction := target.Subtract(c.Loc).Normalize()
	return core.NewRay(c.Loc, direction)
}

// Basis returns the camera's right/up/back axes, for callers (e.g. the
// depth-of-field orbit pass) that need to perturb the eye position while
// keeping the same look-at framing.
func (c *Camera) Basis() (u, v, n core.Vec3) {
	return c.u, c.v, c.n
}
