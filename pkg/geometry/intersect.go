package geometry

import (
	"math"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

// quadratic solves a·t² + b·t + c = 0, returning the two roots (smaller
// first) and whether real roots exist.
func quadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	discr := b*b - 4*a*c
	if discr < core.Epsilon {
		return 0, 0, false
	}
	sq := math.Sqrt(discr)
	r0 := (-b - sq) / (2 * a)
	r1 := (-b + sq) / (2 * a)
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return r0, r1, true
}

// Hit intersects the ray against this primitive. It returns the
// intersection kind (miss/front/inside) and, on hit, the ray parameter t.
func (p Primitive) Hit(ray core.Ray) (core.IntersectionKind, float64) {
	switch p.Kind {
	case Sphere:
		return p.hitSphere(ray)
	case Hemisphere:
		return p.hitHemisphere(ray)
	case Plane:
		return p.hitPlane(ray)
	case Disk:
		return p.hitDisk(ray)
	case Cylinder:
		return p.hitCylinder(ray)
	case Cone:
		return p.hitCone(ray)
	default:
		return core.Miss, 0
	}
}

// sphereRoots returns the sphere quadratic's roots for a ray against a
// sphere centred at center with the given radius.
func sphereRoots(ray core.Ray, center core.Vec3, radius float64) (t0, t1 float64, ok bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - radius*radius
	return quadratic(a, b, c)
}

// classify picks the smaller positive root first, falling back to the
// larger, applying the supplied validity predicate (cap/hemisphere test).
// It reports front-hit for the smaller accepted root and inside-hit for
// the larger (ray origin was inside the solid).
func classify(t0, t1 float64, valid func(t float64) bool) (core.IntersectionKind, float64) {
	if t0 > core.Epsilon && valid(t0) {
		return core.FrontHit, t0
	}
	if t1 > core.Epsilon && valid(t1) {
		return core.InsideHit, t1
	}
	return core.Miss, 0
}

func (p Primitive) hitSphere(ray core.Ray) (core.IntersectionKind, float64) {
	t0, t1, ok := sphereRoots(ray, p.Loc, p.Radius)
	if !ok {
		return core.Miss, 0
	}
	return classify(t0, t1, func(float64) bool { return true })
}

func (p Primitive) hitHemisphere(ray core.Ray) (core.IntersectionKind, float64) {
	t0, t1, ok := sphereRoots(ray, p.Loc, p.Radius)
	if !ok {
		return core.Miss, 0
	}
	valid := func(t float64) bool {
		point := ray.At(t)
		return p.Dir.Dot(point.Subtract(p.Loc)) <= 0
	}
	return classify(t0, t1, valid)
}

func (p Primitive) hitPlane(ray core.Ray) (core.IntersectionKind, float64) {
	den := ray.Direction.Dot(p.Normal)
	if math.Abs(den) < core.Epsilon {
		return core.Miss, 0
	}
	t := (p.Loc.Dot(p.Normal) - ray.Origin.Dot(p.Normal)) / den
	if t <= core.Epsilon {
		return core.Miss, 0
	}
	return core.FrontHit, t
}

func (p Primitive) hitDisk(ray core.Ray) (core.IntersectionKind, float64) {
	kind, t := p.hitPlane(ray)
	if kind == core.Miss {
		return core.Miss, 0
	}
	point := ray.At(t)
	if point.Subtract(p.Loc).Length() > p.Radius {
		return core.Miss, 0
	}
	return kind, t
}

// perp returns the component of v perpendicular to axis. The cylinder and
// cone intersectors use it to perpendicularize the ray direction and
// origin offset before solving their quadratics.
func perp(v, axis core.Vec3) core.Vec3 {
	return v.Subtract(v.Project(axis))
}

func (p Primitive) hitCylinder(ray core.Ray) (core.IntersectionKind, float64) {
	dPerp := perp(ray.Direction, p.Dir)
	oc := ray.Origin.Subtract(p.Loc)
	ocPerp := perp(oc, p.Dir)

	a := dPerp.Dot(dPerp)
	b := 2 * dPerp.Dot(ocPerp)
	c := ocPerp.Dot(ocPerp) - p.Radius*p.Radius

	t0, t1, ok := quadratic(a, b, c)
	if !ok {
		return core.Miss, 0
	}

	valid := func(t float64) bool {
		if p.Limit < 0 {
			return true
		}
		point := ray.At(t)
		axial := point.Subtract(p.Loc).Dot(p.Dir)
		return axial >= -p.Limit && axial <= p.Limit
	}
	return classify(t0, t1, valid)
}

func (p Primitive) hitCone(ray core.Ray) (core.IntersectionKind, float64) {
	delta := ray.Origin.Subtract(p.Loc)
	dPerp := perp(ray.Direction, p.Dir)
	deltaPerp := perp(delta, p.Dir)

	cos2 := p.CosAngle * p.CosAngle
	sin2 := p.SinAngle * p.SinAngle
	dAxis := ray.Direction.Dot(p.Dir)
	deltaAxis := delta.Dot(p.Dir)

	a := cos2*dPerp.Dot(dPerp) - sin2*dAxis*dAxis
	b := 2*cos2*dPerp.Dot(deltaPerp) - 2*sin2*dAxis*deltaAxis
	c := cos2*deltaPerp.Dot(deltaPerp) - sin2*deltaAxis*deltaAxis

	t0, t1, ok := quadratic(a, b, c)
	if !ok {
		return core.Miss, 0
	}

	valid := func(t float64) bool {
		point := ray.At(t)
		axial := point.Subtract(p.Loc).Dot(p.Dir)
		if p.Limit < 0 {
			return true
		}
		return axial >= -p.Limit && axial <= p.Limit
	}
	return classify(t0, t1, valid)
}
