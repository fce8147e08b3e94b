// Package scene aggregates primitives, meshes, lights and materials into
// the immutable structure the renderer traverses, and implements nearest-
// hit scene traversal and the shadow tester.
package scene

import (
	"math"

	"github.com/arnovandash/go-raytracer/pkg/camera"
	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/geometry"
	"github.com/arnovandash/go-raytracer/pkg/lights"
	"github.com/arnovandash/go-raytracer/pkg/material"
)

// Scene is the fully constructed, immutable-during-rendering input to the
// tile pipeline. An external loader builds one; tile workers only read it.
// Pipeline.RenderDOF replaces Camera between sub-frames and restores the
// original afterwards.
type Scene struct {
	Primitives []geometry.Primitive
	Meshes     []*geometry.Mesh
	Lights     []lights.Light
	Materials  *material.List
	Camera     *camera.Camera

	Width, Height int
	MaxDepth      int
	Super         int
}

// Hit is the outcome of a scene-wide nearest-hit traversal: the ray
// parameter, which surface was hit, and how.
type Hit struct {
	T            float64
	Kind         core.HitKind
	PrimIndex    int
	MeshIndex    int
	FaceIndex    int
	Intersection core.IntersectionKind
}

// Intersect finds the nearest surface the ray hits between tMin and tMax,
// testing every primitive directly and every mesh via an AABB pre-cull
// followed by a per-triangle scan. intersectionTests, when non-nil, is
// incremented once per primitive/triangle test performed (for stats).
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64, intersectionTests *int) (Hit, bool) {
	best := Hit{T: tMax}
	found := false

	for i, prim := range s.Primitives {
		if intersectionTests != nil {
			*intersectionTests++
		}
		kind, t := prim.Hit(ray)
		if kind == core.Miss || t >= best.T || t < tMin {
			continue
		}
		best = Hit{T: t, Kind: core.HitPrimitive, PrimIndex: i, Intersection: kind}
		found = true
	}

	for mi, mesh := range s.Meshes {
		if !mesh.Box.Hit(ray, tMin, best.T) {
			continue
		}
		for fi := range mesh.Faces {
			if intersectionTests != nil {
				*intersectionTests++
			}
			hit, t := mesh.HitFace(ray, fi)
			if !hit || t >= best.T || t < tMin {
				continue
			}
			kind := core.FrontHit
			best = Hit{T: t, Kind: core.HitFace, MeshIndex: mi, FaceIndex: fi, Intersection: kind}
			found = true
		}
	}

	return best, found
}

// MaterialIndex returns the material index addressed by a hit.
func (s *Scene) MaterialIndex(hit Hit) int {
	if hit.Kind == core.HitFace {
		return s.Meshes[hit.MeshIndex].MaterialIndex
	}
	return s.Primitives[hit.PrimIndex].MaterialIndex
}

// Normal resolves the outward unit normal at a hit point.
func (s *Scene) Normal(hit Hit, point core.Vec3, ray core.Ray) core.Vec3 {
	if hit.Kind == core.HitFace {
		n := s.Meshes[hit.MeshIndex].FaceNormal(hit.FaceIndex, ray)
		if hit.Intersection == core.InsideHit {
			n = n.Negate()
		}
		return n
	}
	return s.Primitives[hit.PrimIndex].ResolveNormal(point, ray, hit.Intersection)
}

// ShadowFactor casts a shadow ray from point toward the light, returning
// 1-transmittance: 0 means fully lit, 1 means fully blocked. Each
// transparent occluder multiplies the running transmittance by its
// material's Refract coefficient; transmittance falling below
// core.Epsilon short-circuits to "fully blocked". Each mesh contributes at
// most once, regardless of how many of its triangles lie on the path.
func (s *Scene) ShadowFactor(point core.Vec3, light lights.Light, shadowRays, intersectionTests *int) float64 {
	if shadowRays != nil {
		*shadowRays++
	}

	toLight := light.Position.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Divide(distance)
	ray := core.NewRay(point, direction)

	transmit := 1.0

	for _, prim := range s.Primitives {
		if intersectionTests != nil {
			*intersectionTests++
		}
		kind, t := prim.Hit(ray)
		if kind == core.Miss || t >= distance {
			continue
		}
		mat := s.Materials.Get(prim.MaterialIndex)
		transmit *= mat.Refract
		if transmit < core.Epsilon {
			return 1.0
		}
	}

	for _, mesh := range s.Meshes {
		if !mesh.Box.Hit(ray, core.Epsilon, distance) {
			continue
		}
		for fi := range mesh.Faces {
			if intersectionTests != nil {
				*intersectionTests++
			}
			hit, t := mesh.HitFace(ray, fi)
			if !hit || t >= distance {
				continue
			}
			mat := s.Materials.Get(mesh.MaterialIndex)
			transmit *= mat.Refract
			if transmit < core.Epsilon {
				return 1.0
			}
			break // a mesh contributes its refract coefficient at most once
		}
	}

	return 1.0 - transmit
}

// ClampedMaxDepth returns MaxDepth clamped to a minimum of 1, per the
// end-to-end scenario requiring max_depth=0 to behave as max_depth=1.
func (s *Scene) ClampedMaxDepth() int {
	return int(math.Max(1, float64(s.MaxDepth)))
}
