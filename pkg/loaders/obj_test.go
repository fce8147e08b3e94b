package loaders

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempOBJ(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp OBJ: %v", err)
	}
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("Vertices = %d, want 3", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 1 {
		t.Fatalf("Faces = %d, want 1", len(mesh.Faces))
	}
	if mesh.Faces[0].V0 != 0 || mesh.Faces[0].V1 != 1 || mesh.Faces[0].V2 != 2 {
		t.Errorf("Face indices = %+v, want {0,1,2}", mesh.Faces[0])
	}
}

func TestLoadOBJQuadFanTriangulates(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if len(mesh.Faces) != 2 {
		t.Fatalf("Faces = %d, want 2 (fan-triangulated quad)", len(mesh.Faces))
	}
}

func TestLoadOBJComputesFaceNormalsWhenMissing(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if len(mesh.Normals) != 1 {
		t.Fatalf("Normals = %d, want 1 (derived)", len(mesh.Normals))
	}
	if mesh.Normals[0].Length() < 0.99 || mesh.Normals[0].Length() > 1.01 {
		t.Errorf("derived normal not unit length: %v", mesh.Normals[0])
	}
}

func TestLoadOBJBoundsTightlyEncloseVertices(t *testing.T) {
	path := writeTempOBJ(t, "v -1 -2 -3\nv 4 5 6\nv 0 0 0\nf 1 2 3\n")
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.Box.Min.X != -1 || mesh.Box.Max.X != 4 {
		t.Errorf("Box X = [%v,%v], want [-1,4]", mesh.Box.Min.X, mesh.Box.Max.X)
	}
}

func TestLoadOBJNegativeIndicesResolveRelativeToEnd(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n")
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.Faces[0].V0 != 0 || mesh.Faces[0].V1 != 1 || mesh.Faces[0].V2 != 2 {
		t.Errorf("Face indices = %+v, want {0,1,2}", mesh.Faces[0])
	}
}
