package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"orrery/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file into a mesh. Faces with more than
// three vertices are fan-triangulated; missing normals are reconstructed
// by smooth accumulation.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse obj %q: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ reads OBJ data from a stream.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		uvs       []math3d.Vec2
	)
	mesh := NewMesh("obj")

	// Identical position/uv/normal triples share one mesh vertex.
	seen := map[[3]int]int{}

	addVertex := func(ref string) (int, error) {
		pi, ti, ni, err := parseFaceRef(ref, len(positions), len(uvs), len(normals))
		if err != nil {
			return 0, err
		}
		key := [3]int{pi, ti, ni}
		if idx, ok := seen[key]; ok {
			return idx, nil
		}

		v := MeshVertex{Position: positions[pi]}
		if ti >= 0 {
			v.UV = uvs[ti]
		}
		if ni >= 0 {
			v.Normal = normals[ni]
		}
		mesh.Vertices = append(mesh.Vertices, v)
		idx := len(mesh.Vertices) - 1
		seen[key] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt needs 2 components", line)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad vt", line)
			}
			uvs = append(uvs, math3d.V2(u, v))
		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				return nil, fmt.Errorf("line %d: face needs 3 vertices", line)
			}
			idx := make([]int, len(refs))
			for i, ref := range refs {
				vi, err := addVertex(ref)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx[i] = vi
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
		// Groups, materials, and smoothing statements are ignored.
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	if len(normals) == 0 {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("need 3 components, got %d", len(fields))
	}
	var out [3]float64
	for i := range out {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		out[i] = v
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}

// parseFaceRef decodes one face corner: "v", "v/vt", "v//vn", or
// "v/vt/vn", with 1-based and negative (relative) indices.
func parseFaceRef(ref string, nPos, nUV, nNorm int) (pi, ti, ni int, err error) {
	parts := strings.Split(ref, "/")
	ti, ni = -1, -1

	resolve := func(s string, n int) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad index %q", s)
		}
		if v < 0 {
			v += n
		} else {
			v--
		}
		if v < 0 || v >= n {
			return 0, fmt.Errorf("index %q out of range", s)
		}
		return v, nil
	}

	if pi, err = resolve(parts[0], nPos); err != nil {
		return 0, 0, 0, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if ti, err = resolve(parts[1], nUV); err != nil {
			return 0, 0, 0, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ni, err = resolve(parts[2], nNorm); err != nil {
			return 0, 0, 0, err
		}
	}
	return pi, ti, ni, nil
}
