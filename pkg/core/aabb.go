package core

// AABB is an axis-aligned bounding box used to pre-cull rays against a mesh
// before the per-triangle scan.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from two corner points, without assuming either is
// the minimum.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// Union returns the smallest AABB containing both boxes.
func (box AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{X: min(box.Min.X, other.Min.X), Y: min(box.Min.Y, other.Min.Y), Z: min(box.Min.Z, other.Min.Z)},
		Max: Vec3{X: max(box.Max.X, other.Max.X), Y: max(box.Max.Y, other.Max.Y), Z: max(box.Max.Z, other.Max.Z)},
	}
}

// ExtendPoint grows the box to include p.
func (box AABB) ExtendPoint(p Vec3) AABB {
	return box.Union(AABB{Min: p, Max: p})
}

// Hit reports whether the ray intersects the box within [tMin, tMax], using
// the slab method against all three axes with a precomputed inverse
// direction (avoiding a division per axis per test).
func (box AABB) Hit(ray Ray, tMin, tMax float64) bool {
	invDir := Vec3{X: 1 / ray.Direction.X, Y: 1 / ray.Direction.Y, Z: 1 / ray.Direction.Z}

	bounds := [2]Vec3{box.Min, box.Max}
	sign := [3]int{0, 0, 0}
	if invDir.X < 0 {
		sign[0] = 1
	}
	if invDir.Y < 0 {
		sign[1] = 1
	}
	if invDir.Z < 0 {
		sign[2] = 1
	}

	axisT := func(boundsV [2]float64, origin, inv float64, s int) (float64, float64) {
		t0 := (boundsV[s] - origin) * inv
		t1 := (boundsV[1-s] - origin) * inv
		return t0, t1
	}

	tx0, tx1 := axisT([2]float64{bounds[0].X, bounds[1].X}, ray.Origin.X, invDir.X, sign[0])
	ty0, ty1 := axisT([2]float64{bounds[0].Y, bounds[1].Y}, ray.Origin.Y, invDir.Y, sign[1])
	tz0, tz1 := axisT([2]float64{bounds[0].Z, bounds[1].Z}, ray.Origin.Z, invDir.Z, sign[2])

	// narrow ignores NaN slab bounds (0*Inf when the origin lies exactly on
	// a slab plane of an axis the ray is parallel to), which the builtin
	// min/max would otherwise propagate and turn a grazing hit into a miss.
	lo, hi := tMin, tMax
	narrow := func(t0, t1 float64) {
		if t0 > lo {
			lo = t0
		}
		if t1 < hi {
			hi = t1
		}
	}
	narrow(tx0, tx1)
	if hi < lo {
		return false
	}
	narrow(ty0, ty1)
	if hi < lo {
		return false
	}
	narrow(tz0, tz1)
	return hi >= lo
}
