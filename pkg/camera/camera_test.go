package camera

import (
	"math"
	"testing"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

func TestNewCameraOrthonormalBasis(t *testing.T) {
	c := NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 100, 100, 0)
	u, v, n := c.Basis()

	if math.Abs(u.Length()-1) > 1e-9 || math.Abs(v.Length()-1) > 1e-9 || math.Abs(n.Length()-1) > 1e-9 {
		t.Fatalf("basis vectors must be unit length: u=%v v=%v n=%v", u.Length(), v.Length(), n.Length())
	}
	if math.Abs(u.Dot(v)) > 1e-9 || math.Abs(u.Dot(n)) > 1e-9 || math.Abs(v.Dot(n)) > 1e-9 {
		t.Errorf("basis vectors must be mutually orthogonal")
	}
}

func TestGetRayOriginatesAtCameraLoc(t *testing.T) {
	loc := core.NewVec3(0, 0, -5)
	c := NewCamera(loc, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 100, 100, 0)
	ray := c.GetRay(50, 50, 0.5, 0.5)
	if ray.Origin != loc {
		t.Errorf("Origin = %v, want %v", ray.Origin, loc)
	}
}

func TestGetRayDirectionIsUnit(t *testing.T) {
	c := NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 100, 100, 0)
	ray := c.GetRay(10, 80, 0.5, 0.5)
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("Direction length = %v, want 1", ray.Direction.Length())
	}
}

func TestGetRayCenterPointsTowardLookAt(t *testing.T) {
	lookAt := core.NewVec3(0, 0, 0)
	c := NewCamera(core.NewVec3(0, 0, -5), lookAt, core.NewVec3(0, 1, 0), 100, 100, 0)
	ray := c.GetRay(50, 50, 0.5, 0.5)
	toLookAt := lookAt.Subtract(ray.Origin).Normalize()
	if ray.Direction.Dot(toLookAt) < 0.99 {
		t.Errorf("center ray direction %v should point roughly toward look-at, dot=%v", ray.Direction, ray.Direction.Dot(toLookAt))
	}
}

func TestGetRayInitialIORIsAir(t *testing.T) {
	c := NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 100, 100, 0)
	ray := c.GetRay(0, 0, 0.5, 0.5)
	if ray.IOR != 1.0 {
		t.Errorf("IOR = %v, want 1.0", ray.IOR)
	}
}
