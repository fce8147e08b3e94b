package geometry

import "github.com/arnovandash/go-raytracer/pkg/core"

// Face is a triangle referencing three vertices and one normal by index
// into the owning Mesh's pools. Vertices and normals are shared across
// faces within a mesh; faces never carry their own copies or pointers.
type Face struct {
	V0, V1, V2 int
	N          int
}

// Mesh is a triangle mesh with owned vertex and normal pools, so the mesh
// is trivially copyable and free of aliasing hazards.
type Mesh struct {
	Name string

	Vertices []core.Vec3
	Normals  []core.Vec3
	Faces    []Face

	MaterialIndex int

	// Box is the AABB of Vertices, computed once at load time via
	// ComputeBounds.
	Box core.AABB
}

// ComputeBounds rebuilds Box to tightly enclose every vertex in the pool.
// Callers must invoke this once after populating Vertices (mesh loaders do
// this as their final step).
func (m *Mesh) ComputeBounds() {
	if len(m.Vertices) == 0 {
		m.Box = core.AABB{}
		return
	}
	box := core.NewAABB(m.Vertices[0], m.Vertices[0])
	for _, v := range m.Vertices[1:] {
		box = box.ExtendPoint(v)
	}
	m.Box = box
}

// HitFace intersects the ray against one face using Möller-Trumbore,
// returning whether it hit and the ray parameter t.
func (m *Mesh) HitFace(ray core.Ray, faceIdx int) (bool, float64) {
	f := m.Faces[faceIdx]
	v0 := m.Vertices[f.V0]
	v1 := m.Vertices[f.V1]
	v2 := m.Vertices[f.V2]

	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)

	pvec := ray.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if det > -core.Epsilon && det < core.Epsilon {
		return false, 0
	}
	inv := 1 / det

	tvec := ray.Origin.Subtract(v0)
	u := tvec.Dot(pvec) * inv
	if u < 0 || u > 1 {
		return false, 0
	}

	qvec := tvec.Cross(e1)
	v := ray.Direction.Dot(qvec) * inv
	if v < 0 || u+v > 1 {
		return false, 0
	}

	t := e2.Dot(qvec) * inv
	if t <= core.Epsilon {
		return false, 0
	}
	return true, t
}

// FaceNormal returns the stored normal of a face, flipped so it faces the
// incoming ray.
func (m *Mesh) FaceNormal(faceIdx int, ray core.Ray) core.Vec3 {
	n := m.Normals[m.Faces[faceIdx].N]
	if n.Dot(ray.Direction) > 0 {
		n = n.Negate()
	}
	return n
}
