// Package loaders holds the external-collaborator code the core never
// depends on directly: scene-file parsing, mesh loading, and image export.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/geometry"
)

// LoadOBJ streams a Wavefront .obj file and returns a Mesh with owned
// vertex/normal pools and index-addressed faces. Only v/vn/f records are
// recognized; faces with more than three vertices are fan-triangulated
// around their first vertex. Negative (relative) OBJ indices are
// supported; material assignment is left to the caller (an OBJ file
// itself names materials by a usemtl directive this loader does not
// resolve against the scene's material list).
func LoadOBJ(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh := &geometry.Mesh{Name: filename}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("bad vertex %q: %w", line, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("bad normal %q: %w", line, err)
			}
			mesh.Normals = append(mesh.Normals, n.Normalize())
		case "f":
			if err := appendFaces(mesh, fields[1:]); err != nil {
				return nil, fmt.Errorf("bad face %q: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error reading OBJ file: %w", err)
	}

	if len(mesh.Normals) == 0 {
		computeFaceNormals(mesh)
	}

	mesh.ComputeBounds()
	return mesh, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

// objIndex parses one OBJ vertex reference ("v", "v/vt", "v//vn" or
// "v/vt/vn"), resolving negative (relative-to-end) indices against the
// vertex and normal counts read so far.
func objIndex(token string, vertexCount, normalCount int) (vertexIdx int, normalIdx int, hasNormal bool, err error) {
	parts := strings.Split(token, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false, err
	}
	vertexIdx = resolveIndex(v, vertexCount)

	if len(parts) == 3 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, false, err
		}
		return vertexIdx, resolveIndex(n, normalCount), true, nil
	}
	return vertexIdx, 0, false, nil
}

func resolveIndex(idx, count int) int {
	if idx < 0 {
		return count + idx
	}
	return idx - 1
}

// appendFaces fan-triangulates a face record with 3 or more vertex
// references around its first vertex.
func appendFaces(mesh *geometry.Mesh, tokens []string) error {
	if len(tokens) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(tokens))
	}

	type ref struct {
		v, n    int
		hasNorm bool
	}
	refs := make([]ref, len(tokens))
	for i, tok := range tokens {
		v, n, hasNorm, err := objIndex(tok, len(mesh.Vertices), len(mesh.Normals))
		if err != nil {
			return err
		}
		refs[i] = ref{v: v, n: n, hasNorm: hasNorm}
	}

	// Each triangle takes the normal referenced by the face's first vertex.
	// Faces without an explicit normal get placeholder slot 0; when the file
	// has no vn records at all, LoadOBJ replaces every slot in
	// computeFaceNormals once all geometric faces are known.
	for i := 1; i < len(refs)-1; i++ {
		normalIdx := 0
		if refs[0].hasNorm {
			normalIdx = refs[0].n
		}
		mesh.Faces = append(mesh.Faces, geometry.Face{
			V0: refs[0].v, V1: refs[i].v, V2: refs[i+1].v, N: normalIdx,
		})
	}
	return nil
}

// computeFaceNormals derives a flat per-face normal from the winding order
// for OBJ files that omit vn records, appending one normal per face.
func computeFaceNormals(mesh *geometry.Mesh) {
	mesh.Normals = make([]core.Vec3, len(mesh.Faces))
	for i, f := range mesh.Faces {
		v0 := mesh.Vertices[f.V0]
		v1 := mesh.Vertices[f.V1]
		v2 := mesh.Vertices[f.V2]
		n := v1.Subtract(v0).Cross(v2.Subtract(v0))
		if n.Length() > core.Epsilon {
			n = n.Normalize()
		}
		mesh.Normals[i] = n
		mesh.Faces[i].N = i
	}
}
