package geometry

import (
	"math"
	"testing"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

func TestSphereNormalPointsOutward(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1, 0)
	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))
	point := core.NewVec3(0, 0, -1)
	n := s.ResolveNormal(point, ray, core.FrontHit)
	if !vecApproxEq(n, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Normal = %v, want {0 0 -1}", n)
	}
}

func TestSphereNormalNegatedOnInsideHit(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	point := core.NewVec3(0, 0, 1)
	n := s.ResolveNormal(point, ray, core.InsideHit)
	if !vecApproxEq(n, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Normal = %v, want {0 0 -1} (negated for inside hit)", n)
	}
}

func TestPlaneNormalFlipsToFaceRay(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	n := p.ResolveNormal(core.NewVec3(0, 0, 0), ray, core.FrontHit)
	if n.Dot(ray.Direction) > 0 {
		t.Errorf("Normal %v should face against ray direction", n)
	}
}

func TestConeNormalIsUnitAndOutward(t *testing.T) {
	c := NewCone(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), math.Pi/6, 5, 0)
	point := core.NewVec3(0, 1, 0.577)
	n := c.coneNormal(point)
	if math.Abs(n.Length()-1) > 1e-6 {
		t.Errorf("cone normal length = %v, want 1", n.Length())
	}
	radial := perp(point.Subtract(c.Loc), c.Dir)
	if n.Dot(radial) <= 0 {
		t.Errorf("cone normal should point outward from the axis, got %v", n)
	}
}

func vecApproxEq(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
