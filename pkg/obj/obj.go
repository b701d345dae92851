// Package obj parses Wavefront OBJ geometry and companion MTL material
// libraries into flat, index-aligned vertex arrays.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mesh is one object/group from an OBJ file, re-indexed so that every
// distinct position/uv/normal triplet becomes a single vertex. Attribute
// arrays are index-aligned: positions and normals have stride 3, texture
// coordinates stride 2. Faces are triangulated.
type Mesh struct {
	Name      string
	Positions []float32
	TexCoords []float32
	Normals   []float32
	Indices   []uint32

	// MaterialID indexes File.Materials; -1 when the mesh has no usemtl.
	MaterialID int
}

// File is a fully parsed OBJ file.
type File struct {
	Meshes    []Mesh
	Materials []Material
}

// Resolver opens a material library referenced by an mtllib directive.
// Parse closes the returned reader. A nil Resolver skips mtllib lines.
type Resolver func(name string) (io.ReadCloser, error)

// vertexRef is a face corner: 0-based pool indices, -1 when absent.
type vertexRef struct {
	v, vt, vn int
}

// meshBuilder accumulates one output mesh, deduplicating vertex triplets.
type meshBuilder struct {
	mesh   Mesh
	lookup map[vertexRef]uint32
}

func newMeshBuilder(name string, materialID int) *meshBuilder {
	return &meshBuilder{
		mesh:   Mesh{Name: name, MaterialID: materialID},
		lookup: make(map[vertexRef]uint32),
	}
}

func (b *meshBuilder) vertex(ref vertexRef, positions [][3]float32, texCoords [][2]float32, normals [][3]float32) uint32 {
	if idx, ok := b.lookup[ref]; ok {
		return idx
	}
	idx := uint32(len(b.mesh.Positions) / 3)

	p := positions[ref.v]
	b.mesh.Positions = append(b.mesh.Positions, p[0], p[1], p[2])

	// Absent attributes are zero-filled so the arrays stay vertex aligned.
	if ref.vt >= 0 {
		t := texCoords[ref.vt]
		b.mesh.TexCoords = append(b.mesh.TexCoords, t[0], t[1])
	} else {
		b.mesh.TexCoords = append(b.mesh.TexCoords, 0, 0)
	}
	if ref.vn >= 0 {
		n := normals[ref.vn]
		b.mesh.Normals = append(b.mesh.Normals, n[0], n[1], n[2])
	} else {
		b.mesh.Normals = append(b.mesh.Normals, 0, 0, 0)
	}

	b.lookup[ref] = idx
	return idx
}

// Parse reads a Wavefront OBJ stream. Material libraries referenced by
// mtllib are loaded through resolve.
func Parse(r io.Reader, resolve Resolver) (*File, error) {
	file := &File{}
	matIndex := make(map[string]int)

	var positions [][3]float32
	var texCoords [][2]float32
	var normals [][3]float32

	cur := newMeshBuilder("default", -1)
	flush := func() {
		if len(cur.mesh.Indices) > 0 {
			file.Meshes = append(file.Meshes, cur.mesh)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: vertex position: %w", lineNum, err)
			}
			positions = append(positions, p)

		case "vt":
			t, err := parseFloats2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: texture coordinate: %w", lineNum, err)
			}
			texCoords = append(texCoords, t)

		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: normal: %w", lineNum, err)
			}
			normals = append(normals, n)

		case "o", "g":
			flush()
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = newMeshBuilder(name, cur.mesh.MaterialID)

		case "usemtl":
			if len(fields) < 2 {
				continue
			}
			id, ok := matIndex[fields[1]]
			if !ok {
				// Unknown material names still split the mesh; the
				// reference just stays unresolved.
				id = -1
			}
			if len(cur.mesh.Indices) > 0 && cur.mesh.MaterialID != id {
				flush()
				cur = newMeshBuilder(cur.mesh.Name, id)
			} else {
				cur.mesh.MaterialID = id
			}

		case "mtllib":
			if resolve == nil || len(fields) < 2 {
				continue
			}
			mats, err := loadMTL(fields[1], resolve)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNum, err)
			}
			for _, m := range mats {
				if _, exists := matIndex[m.Name]; exists {
					continue
				}
				matIndex[m.Name] = len(file.Materials)
				file.Materials = append(file.Materials, m)
			}

		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				return nil, fmt.Errorf("obj line %d: face with %d vertices", lineNum, len(refs))
			}
			parsed := make([]vertexRef, len(refs))
			for i, raw := range refs {
				ref, err := parseRef(raw, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNum, err)
				}
				parsed[i] = ref
			}
			// Fan-triangulate polygons with more than three corners.
			for i := 1; i+1 < len(parsed); i++ {
				cur.mesh.Indices = append(cur.mesh.Indices,
					cur.vertex(parsed[0], positions, texCoords, normals),
					cur.vertex(parsed[i], positions, texCoords, normals),
					cur.vertex(parsed[i+1], positions, texCoords, normals),
				)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	flush()

	return file, nil
}

// parseRef parses a face corner of the form v, v/vt, v//vn or v/vt/vn.
// OBJ indices are 1-based; negative values count back from the pool end.
func parseRef(raw string, numV, numVT, numVN int) (vertexRef, error) {
	parts := strings.Split(raw, "/")
	if len(parts) > 3 {
		return vertexRef{}, fmt.Errorf("malformed face reference %q", raw)
	}

	ref := vertexRef{v: -1, vt: -1, vn: -1}
	resolve := func(s string, pool int) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("face reference %q: %w", raw, err)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += pool
		default:
			return 0, fmt.Errorf("face reference %q: index 0 is invalid", raw)
		}
		if n < 0 || n >= pool {
			return 0, fmt.Errorf("face reference %q: index out of range", raw)
		}
		return n, nil
	}

	var err error
	if ref.v, err = resolve(parts[0], numV); err != nil {
		return vertexRef{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if ref.vt, err = resolve(parts[1], numVT); err != nil {
			return vertexRef{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ref.vn, err = resolve(parts[2], numVN); err != nil {
			return vertexRef{}, err
		}
	}
	return ref, nil
}

func parseFloats3(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseFloats2(fields []string) ([2]float32, error) {
	var out [2]float32
	if len(fields) < 2 {
		return out, fmt.Errorf("want 2 components, got %d", len(fields))
	}
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
