package core

// Colour is an RGB triple in [0,1] plus an intensity weight, also in [0,1],
// that modulates how strongly the colour contributes during shading.
type Colour struct {
	R, G, B   float64
	Intensity float64
}

// NewColour creates a colour with the given channels and intensity.
func NewColour(r, g, b, intensity float64) Colour {
	return Colour{R: r, G: g, B: b, Intensity: intensity}
}

// ToVec3 reinterprets the colour as a Vec3 (x=r, y=g, z=b) for arithmetic
// that vector math already provides (add, scale, component-wise multiply).
func (c Colour) ToVec3() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

// ColourFromVec3 reinterprets a Vec3 as a colour with the given intensity.
func ColourFromVec3(v Vec3, intensity float64) Colour {
	return Colour{R: v.X, G: v.Y, B: v.Z, Intensity: intensity}
}

// Scaled returns the colour's RGB scaled by its own intensity.
func (c Colour) Scaled() Vec3 {
	return c.ToVec3().Multiply(c.Intensity)
}

// Clamp01 clamps each RGB channel to [0,1].
func (c Colour) Clamp01() Colour {
	v := c.ToVec3().Clamp(0, 1)
	return Colour{R: v.X, G: v.Y, B: v.Z, Intensity: c.Intensity}
}
