package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnovandash/go-raytracer/pkg/loaders"
)

const minimalSceneYAML = `
width: 4
height: 4
max_depth: 2
super: 1
camera:
  loc: [0, 0, 5]
  look_at: [0, 0, 0]
  world_up: [0, 1, 0]
  aperture: 0
materials:
  - name: white
    diff: [1, 1, 1]
lights:
  - loc: [0, 5, 0]
    colour: [1, 1, 1]
    intensity: 1
    half: 10
primitives:
  - kind: sphere
    loc: [0, 0, 0]
    radius: 1
    material: white
`

func writeMinimalScene(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(minimalSceneYAML), 0644); err != nil {
		t.Fatalf("failed to write scene fixture: %v", err)
	}
	return path
}

func TestParseFlagsRegistersKnownFlags(t *testing.T) {
	fs := newFlagSet(&Config{})
	for _, name := range []string{"scene", "out", "depth", "super", "flat", "dof-frames", "aperture", "help", "cpuprofile"} {
		if fs.Lookup(name) == nil {
			t.Errorf("expected flag %q to be registered", name)
		}
	}
}

func TestNewFlagSetDefaultOutput(t *testing.T) {
	config := Config{}
	fs := newFlagSet(&config)
	if err := fs.Parse([]string{"--scene", "scenes/cornell.yaml"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if config.Output != "output/render.png" {
		t.Errorf("Output default = %q, want output/render.png", config.Output)
	}
	if config.Scene != "scenes/cornell.yaml" {
		t.Errorf("Scene = %q, want scenes/cornell.yaml", config.Scene)
	}
}

func TestNewFlagSetOverrides(t *testing.T) {
	config := Config{}
	fs := newFlagSet(&config)
	args := []string{
		"--scene", "scenes/cornell.yaml",
		"--out", "out.ppm",
		"--depth", "8",
		"--super", "4",
		"--flat",
		"--dof-frames", "16",
		"--aperture", "0.2",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if config.MaxDepth != 8 || config.Super != 4 || !config.Flat || config.DOFFrames != 16 || config.Aperture != 0.2 {
		t.Errorf("config = %+v, did not capture overrides", config)
	}
}

func TestLoadMinimalScene(t *testing.T) {
	path := writeMinimalScene(t)

	sceneObj, err := loaders.LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}
	if sceneObj.Width != 4 || sceneObj.Height != 4 {
		t.Errorf("scene dims = %dx%d, want 4x4", sceneObj.Width, sceneObj.Height)
	}
	if len(sceneObj.Primitives) != 1 {
		t.Errorf("expected 1 primitive, got %d", len(sceneObj.Primitives))
	}
}
