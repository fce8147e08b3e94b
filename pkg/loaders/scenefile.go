package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arnovandash/go-raytracer/pkg/camera"
	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/geometry"
	"github.com/arnovandash/go-raytracer/pkg/lights"
	"github.com/arnovandash/go-raytracer/pkg/material"
	"github.com/arnovandash/go-raytracer/pkg/scene"
)

// lumensUnitScale converts a scene-file intensity figure into the lumens
// value the renderer consumes directly: 683 lm/W photometric conversion
// scaled by a 0.005 W reference, folded into one constant.
const lumensUnitScale = 3.415

// sceneFile is the YAML document shape a scene description deserializes
// into. Every field maps directly onto the constructed Scene's types; the
// loader resolves material names to indices (unknown names fall back to
// DEFAULT via material.List.Resolve) and rejects only unknown primitive
// kinds and unreadable mesh files.
type sceneFile struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	MaxDepth int     `yaml:"max_depth"`
	Super    int     `yaml:"super"`
	Camera   camYAML `yaml:"camera"`

	Materials  []materialYAML `yaml:"materials"`
	Lights     []lightYAML    `yaml:"lights"`
	Primitives []primYAML     `yaml:"primitives"`
	Meshes     []meshYAML     `yaml:"meshes"`
}

type camYAML struct {
	Loc      [3]float64 `yaml:"loc"`
	LookAt   [3]float64 `yaml:"look_at"`
	WorldUp  [3]float64 `yaml:"world_up"`
	Aperture float64    `yaml:"aperture"`
}

type materialYAML struct {
	Name    string     `yaml:"name"`
	Reflect float64    `yaml:"reflect"`
	Refract float64    `yaml:"refract"`
	IOR     float64    `yaml:"ior"`
	Diff    [3]float64 `yaml:"diff"`
	Spec    [3]float64 `yaml:"spec"`

	// DiffIntensity and SpecIntensity modulate how strongly the diffuse and
	// specular colours contribute in shading (see core.Colour.Scaled).
	// Default to 1 when omitted, matching a scene file with no opinion on
	// intensity.
	DiffIntensity *float64 `yaml:"diff_intensity"`
	SpecIntensity *float64 `yaml:"spec_intensity"`
}

// colourIntensity returns the configured intensity, defaulting to 1 when the
// scene file leaves it unset.
func colourIntensity(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

type lightYAML struct {
	Loc       [3]float64 `yaml:"loc"`
	Colour    [3]float64 `yaml:"colour"`
	Intensity float64    `yaml:"intensity"`
	Half      float64    `yaml:"half"`
}

type primYAML struct {
	Kind     string     `yaml:"kind"`
	Loc      [3]float64 `yaml:"loc"`
	Dir      [3]float64 `yaml:"dir"`
	Normal   [3]float64 `yaml:"normal"`
	Radius   float64    `yaml:"radius"`
	Angle    float64    `yaml:"angle"`
	Limit    float64    `yaml:"limit"`
	Material string     `yaml:"material"`
}

type meshYAML struct {
	File     string `yaml:"file"`
	Material string `yaml:"material"`
}

// LoadScene parses a YAML scene description and resolves it into a fully
// constructed Scene, loading any referenced OBJ meshes relative to the
// scene file's directory.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	mats := material.NewList()
	for _, m := range sf.Materials {
		mats.Add(material.Material{
			Name:    m.Name,
			Reflect: m.Reflect,
			Refract: m.Refract,
			IOR:     m.IOR,
			Diff:    core.NewColour(m.Diff[0], m.Diff[1], m.Diff[2], colourIntensity(m.DiffIntensity)),
			Spec:    core.NewColour(m.Spec[0], m.Spec[1], m.Spec[2], colourIntensity(m.SpecIntensity)),
		})
	}

	resolve := func(name string) int {
		idx, _ := mats.Resolve(name)
		return idx
	}

	s := &scene.Scene{
		Materials: mats,
		Width:     sf.Width,
		Height:    sf.Height,
		MaxDepth:  sf.MaxDepth,
		Super:     sf.Super,
		Camera: camera.NewCamera(
			vec(sf.Camera.Loc), vec(sf.Camera.LookAt), vec(sf.Camera.WorldUp),
			sf.Width, sf.Height, sf.Camera.Aperture,
		),
	}

	for _, l := range sf.Lights {
		s.Lights = append(s.Lights, lights.NewLight(vec(l.Loc), vec(l.Colour), l.Intensity*lumensUnitScale, l.Half))
	}

	for _, p := range sf.Primitives {
		prim, err := buildPrimitive(p, resolve(p.Material))
		if err != nil {
			return nil, err
		}
		s.Primitives = append(s.Primitives, prim)
	}

	dir := filepath.Dir(path)
	for _, m := range sf.Meshes {
		mesh, err := LoadOBJ(filepath.Join(dir, m.File))
		if err != nil {
			return nil, fmt.Errorf("failed to load mesh %q: %w", m.File, err)
		}
		mesh.MaterialIndex = resolve(m.Material)
		s.Meshes = append(s.Meshes, mesh)
	}

	return s, nil
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func buildPrimitive(p primYAML, materialIndex int) (geometry.Primitive, error) {
	switch p.Kind {
	case "sphere":
		return geometry.NewSphere(vec(p.Loc), p.Radius, materialIndex), nil
	case "hemisphere":
		return geometry.NewHemisphere(vec(p.Loc), vec(p.Dir), p.Radius, materialIndex), nil
	case "plane":
		return geometry.NewPlane(vec(p.Loc), vec(p.Normal), materialIndex), nil
	case "disk":
		return geometry.NewDisk(vec(p.Loc), vec(p.Normal), p.Radius, materialIndex), nil
	case "cylinder":
		return geometry.NewCylinder(vec(p.Loc), vec(p.Dir), p.Radius, p.Limit, materialIndex), nil
	case "cone":
		return geometry.NewCone(vec(p.Loc), vec(p.Dir), p.Angle, p.Limit, materialIndex), nil
	default:
		return geometry.Primitive{}, fmt.Errorf("unknown primitive kind %q", p.Kind)
	}
}
