// Package material holds the fixed-format surface description shared by
// every primitive and mesh: a flat, index-addressed list of concrete
// Material values rather than a polymorphic interface per shading model.
package material

import "github.com/arnovandash/go-raytracer/pkg/core"

// Material is the complete description of a surface's response to light.
// Every primitive and mesh face stores an index into a Scene's material
// list rather than a pointer, so the list can be loaded, resolved and
// copied as a flat slice.
type Material struct {
	Name string

	// Reflect and Refract are blend weights in [0,1] (see pkg/integrator):
	// refraction is lerped in first using Refract, then reflection is
	// lerped into the result using Reflect.
	Reflect float64
	Refract float64

	// IOR is the index of refraction used when Refract > 0.
	IOR float64

	// Diff and Spec are the diffuse and specular colour terms consumed by
	// the Blinn-Phong shader.
	Diff core.Colour
	Spec core.Colour
}

// DefaultName is the material every unresolved name falls back to.
const DefaultName = "default"

// NewDefaultMaterial returns the hot-pink fallback material substituted for
// any primitive or face whose named material cannot be found at load time.
func NewDefaultMaterial() Material {
	return Material{
		Name:    DefaultName,
		Reflect: 0,
		Refract: 0,
		IOR:     1,
		Diff:    core.NewColour(1.0, 0.0, 0.870588235294, 1.0),
		Spec:    core.NewColour(1.0, 1.0, 1.0, 1.0),
	}
}

// List is an ordered, index-addressed collection of materials. Index 0 is
// always the default material; Resolve never fails, it substitutes index 0
// for any name it doesn't recognize.
type List struct {
	materials []Material
	byName    map[string]int
}

// NewList creates a List seeded with the default material at index 0.
func NewList() *List {
	l := &List{byName: make(map[string]int)}
	l.Add(NewDefaultMaterial())
	return l
}

// Add appends a material and returns its index. A material named the same
// as an existing entry replaces it in the name lookup but both entries
// remain addressable by index.
func (l *List) Add(m Material) int {
	idx := len(l.materials)
	l.materials = append(l.materials, m)
	l.byName[m.Name] = idx
	return idx
}

// Get returns the material at idx, or the default material if idx is out
// of range.
func (l *List) Get(idx int) Material {
	if idx < 0 || idx >= len(l.materials) {
		return l.materials[0]
	}
	return l.materials[idx]
}

// Resolve looks up a material by name, returning its index and true, or the
// default material's index (0) and false if the name is unknown.
func (l *List) Resolve(name string) (int, bool) {
	if idx, ok := l.byName[name]; ok {
		return idx, true
	}
	return 0, false
}

// Len returns the number of materials in the list.
func (l *List) Len() int {
	return len(l.materials)
}
