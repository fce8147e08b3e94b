package geometry

import (
	"github.com/arnovandash/go-raytracer/pkg/core"
)

// ResolveNormal resolves the outward unit normal at a hit point on this primitive,
// for a ray with the given intersection kind. Cone normals use a Rodrigues
// rotation of the radial vector by the cone's half-angle about an axis
// perpendicular to both the cone axis and the radial vector.
func (p Primitive) ResolveNormal(point core.Vec3, ray core.Ray, kind core.IntersectionKind) core.Vec3 {
	var n core.Vec3
	switch p.Kind {
	case Sphere, Hemisphere:
		n = point.Subtract(p.Loc).Divide(p.Radius)
	case Plane, Disk:
		n = p.Normal
		if n.Dot(ray.Direction) > 0 {
			n = n.Negate()
		}
	case Cylinder:
		n = perp(point.Subtract(p.Loc), p.Dir).Normalize()
	case Cone:
		n = p.coneNormal(point)
	default:
		n = p.Normal
	}
	if kind == core.InsideHit {
		n = n.Negate()
	}
	return n
}

// coneNormal tilts the cylinder-style radial vector outward by the cone's
// half-angle, rotating about an axis perpendicular to both the cone axis
// and the radial vector (Rodrigues rotation).
func (p Primitive) coneNormal(point core.Vec3) core.Vec3 {
	toPoint := point.Subtract(p.Loc)
	axial := toPoint.Dot(p.Dir)
	radial := perp(toPoint, p.Dir)

	if radial.Length() < core.Epsilon {
		return p.Dir
	}
	radial = radial.Normalize()

	rotAxis := p.Dir.Cross(radial)
	if axial < 0 {
		rotAxis = radial.Cross(p.Dir)
	}
	if rotAxis.Length() < core.Epsilon {
		return radial
	}
	rotAxis = rotAxis.Normalize()

	return rodrigues(radial, rotAxis, p.CosAngle, p.SinAngle)
}

// rodrigues rotates v about unit axis k by the angle whose cosine/sine are
// given, via Rodrigues' rotation formula:
// v_rot = v*cosθ + (k×v)*sinθ + k*(k·v)*(1-cosθ)
func rodrigues(v, k core.Vec3, cosTheta, sinTheta float64) core.Vec3 {
	term1 := v.Multiply(cosTheta)
	term2 := k.Cross(v).Multiply(sinTheta)
	term3 := k.Multiply(k.Dot(v) * (1 - cosTheta))
	return term1.Add(term2).Add(term3).Normalize()
}
