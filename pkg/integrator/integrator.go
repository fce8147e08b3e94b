package integrator

import (
	"math"

	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/material"
	"github.com/arnovandash/go-raytracer/pkg/scene"
)

// PrimaryMissBackground is returned for a primary ray (depth 0) that hits
// nothing.
var PrimaryMissBackground = core.NewVec3(0.498, 0.498, 0.498) // 0x7F7F7F

// RecursiveMissBackground is returned for a reflection/refraction ray that
// hits nothing. It is intentionally a different shade than the primary-ray
// background (see the ray colour scenarios).
var RecursiveMissBackground = core.NewVec3(0.5, 0.5, 0.5)

// Stats accumulates the thread-local ray/intersection counters a tile
// worker updates while integrating one pixel. Callers merge these into the
// process-wide totals once per worker at termination.
type Stats struct {
	PrimaryRays       int
	ReflectionRays    int
	RefractionRays    int
	ShadowRays        int
	IntersectionTests int
	TotalRays         int
}

// RayColor recursively integrates the colour seen along ray, starting at
// depth 0 for primary rays. Flat controls preview mode: when true, only
// the base Blinn-Phong colour is returned, with no reflection/refraction
// recursion.
func RayColor(s *scene.Scene, ray core.Ray, depth int, flat bool, stats *Stats) core.Vec3 {
	if depth == 0 {
		stats.PrimaryRays++
	}
	stats.TotalRays++

	hit, found := s.Intersect(ray, core.Epsilon, math.MaxFloat64, &stats.IntersectionTests)
	if !found {
		if depth == 0 {
			return PrimaryMissBackground
		}
		return RecursiveMissBackground
	}

	point := ray.At(hit.T)
	normal := s.Normal(hit, point, ray)
	mat := s.Materials.Get(s.MaterialIndex(hit))

	c := Shade(s, point, normal, ray.Origin, mat, &stats.ShadowRays, &stats.IntersectionTests)

	if flat {
		return c.Clamp(0, 1)
	}

	if mat.Refract > 0 && depth < s.ClampedMaxDepth() {
		refracted := spawnRefraction(ray, point, normal, mat, hit.Intersection)
		stats.RefractionRays++
		r := RayColor(s, refracted, depth+1, flat, stats)
		c = c.Multiply(1 - mat.Refract).Add(r.Multiply(mat.Refract))
	}

	if mat.Reflect > 0 && depth < s.ClampedMaxDepth() {
		reflected := spawnReflection(ray, point, normal)
		stats.ReflectionRays++
		l := RayColor(s, reflected, depth+1, flat, stats)
		c = c.Multiply(1 - mat.Reflect).Add(l.Multiply(mat.Reflect))
	}

	return c.Clamp(0, 1)
}

// spawnReflection builds the mirror-reflection ray off a surface with the
// given normal: R = 2(N.V)N - V.
func spawnReflection(ray core.Ray, point, normal core.Vec3) core.Ray {
	view := ray.Direction.Negate()
	r := normal.Multiply(2 * normal.Dot(view)).Subtract(view)
	out := core.NewRay(point, r.Normalize())
	out.IOR = ray.IOR
	out.InsideMesh = ray.InsideMesh
	return out
}

// spawnRefraction builds the Snell-law transmission ray, falling back to a
// reflection ray on total internal reflection.
func spawnRefraction(ray core.Ray, point, normal core.Vec3, mat material.Material, intersection core.IntersectionKind) core.Ray {
	d := ray.Direction
	n := normal
	c := d.Dot(n)

	var eta, medium float64
	if c > 0 {
		// exiting the material
		eta = mat.IOR
		medium = 1
		n = n.Negate()
	} else {
		// entering the material
		eta = 1 / mat.IOR
		medium = mat.IOR
		c = -c
	}

	k := 1 - eta*eta*(1-c*c)
	if k <= 0 {
		// total internal reflection
		return spawnReflection(ray, point, normal)
	}

	t := d.Multiply(eta).Add(n.Multiply(eta*c - math.Sqrt(k)))
	out := core.NewRay(point, t.Normalize())
	out.IOR = medium
	return out
}
