// Package geometry implements closed-form ray/primitive intersection,
// Möller-Trumbore triangles, AABB-culled meshes and the outward-normal
// resolver. There is no acceleration structure beyond the per-mesh AABB:
// the scene traversal in pkg/scene tests every primitive and every
// triangle of every AABB-hit mesh directly.
package geometry

import (
	"math"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

// Kind tags which closed-form intersector a Primitive dispatches to. A
// single concrete struct carries the union of every shape's fields rather
// than one type per shape, matching the fixed, addressable layout the
// scene format and the shadow/integrator code expect.
type Kind int

const (
	Sphere Kind = iota
	Hemisphere
	Plane
	Disk
	Cylinder
	Cone
)

// Primitive is one closed-form shape. Not every field is meaningful for
// every Kind; see the per-kind Hit methods in intersect.go for which
// fields each dispatch path reads.
type Primitive struct {
	Kind Kind

	Loc    core.Vec3 // center / apex / point-on-plane
	Dir    core.Vec3 // unit axis, for oriented shapes (cylinder, cone, hemisphere)
	Normal core.Vec3 // unit normal, for plane/disk

	Radius float64 // sphere / hemisphere / cylinder / disk

	Angle    float64 // cone half-angle, radians
	CosAngle float64 // cos(Angle), cached
	SinAngle float64 // sin(Angle), cached

	// Limit is the cylinder/cone half-length along Dir from Loc. A
	// negative value means infinite (no cap test).
	Limit float64

	MaterialIndex int

	// Selected is a UI hint only; the core never reads it.
	Selected bool
}

// NewCone creates a cone primitive, caching cos/sin of the half-angle so
// the invariant cos²+sin²=1 holds from construction.
func NewCone(apex, dir core.Vec3, angle, limit float64, materialIndex int) Primitive {
	return Primitive{
		Kind:          Cone,
		Loc:           apex,
		Dir:           dir.Normalize(),
		Angle:         angle,
		CosAngle:      math.Cos(angle),
		SinAngle:      math.Sin(angle),
		Limit:         limit,
		MaterialIndex: materialIndex,
	}
}

// NewSphere creates a sphere primitive.
func NewSphere(center core.Vec3, radius float64, materialIndex int) Primitive {
	return Primitive{Kind: Sphere, Loc: center, Radius: radius, MaterialIndex: materialIndex}
}

// NewHemisphere creates a hemisphere primitive; only the half of the sphere
// opposite Dir is valid.
func NewHemisphere(center, dir core.Vec3, radius float64, materialIndex int) Primitive {
	return Primitive{Kind: Hemisphere, Loc: center, Dir: dir.Normalize(), Radius: radius, MaterialIndex: materialIndex}
}

// NewPlane creates an infinite plane through point with the given normal.
func NewPlane(point, normal core.Vec3, materialIndex int) Primitive {
	return Primitive{Kind: Plane, Loc: point, Normal: normal.Normalize(), MaterialIndex: materialIndex}
}

// NewDisk creates a disk of the given radius centered at point in the plane
// with the given normal.
func NewDisk(point, normal core.Vec3, radius float64, materialIndex int) Primitive {
	return Primitive{Kind: Disk, Loc: point, Normal: normal.Normalize(), Radius: radius, MaterialIndex: materialIndex}
}

// NewCylinder creates a cylinder of the given radius along dir centred at
// loc. limit < 0 means infinite (no caps).
func NewCylinder(loc, dir core.Vec3, radius, limit float64, materialIndex int) Primitive {
	return Primitive{Kind: Cylinder, Loc: loc, Dir: dir.Normalize(), Radius: radius, Limit: limit, MaterialIndex: materialIndex}
}
