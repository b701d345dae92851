package geometry

import (
	"errors"
	"fmt"

	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// Mesh import errors.
var (
	ErrUnalignedAttributes = errors.New("attribute array length not vertex aligned")
	ErrUnalignedIndices    = errors.New("index count not a multiple of 3")
	ErrIndexOutOfRange     = errors.New("index references nonexistent vertex")
)

// MeshData is the flat triangle mesh shape produced by model importers:
// positions (stride 3), texture coordinates (stride 2) and normals
// (stride 3) are index-aligned per vertex; indices reference vertices in
// groups of 3 per triangle.
type MeshData struct {
	Name      string
	Positions []float32
	TexCoords []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices described by the position array.
func (d *MeshData) VertexCount() int {
	return len(d.Positions) / 3
}

// Validate checks the structural consistency of the mesh data. A mesh that
// fails validation must be rejected wholesale, never partially processed.
func (d *MeshData) Validate() error {
	if len(d.Positions)%3 != 0 {
		return fmt.Errorf("mesh %q positions (%d floats): %w", d.Name, len(d.Positions), ErrUnalignedAttributes)
	}
	n := d.VertexCount()
	if len(d.TexCoords) != n*2 {
		return fmt.Errorf("mesh %q tex coords (%d floats for %d vertices): %w", d.Name, len(d.TexCoords), n, ErrUnalignedAttributes)
	}
	if len(d.Normals) != n*3 {
		return fmt.Errorf("mesh %q normals (%d floats for %d vertices): %w", d.Name, len(d.Normals), n, ErrUnalignedAttributes)
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q (%d indices): %w", d.Name, len(d.Indices), ErrUnalignedIndices)
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh %q index %d (value %d, %d vertices): %w", d.Name, i, idx, n, ErrIndexOutOfRange)
		}
	}
	return nil
}

// BuildMesh validates d and interleaves it into a Mesh with zeroed
// tangent/bitangent fields and a computed bounding box.
func BuildMesh(d MeshData) (*Mesh, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := d.VertexCount()
	m := &Mesh{
		Name:     d.Name,
		Vertices: make([]Vertex, n),
		Indices:  append([]uint32(nil), d.Indices...),
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}

	for i := 0; i < n; i++ {
		pos := math.Vec3{X: d.Positions[i*3], Y: d.Positions[i*3+1], Z: d.Positions[i*3+2]}
		m.Vertices[i] = Vertex{
			Position:  pos,
			TexCoords: math.Vec2{X: d.TexCoords[i*2], Y: d.TexCoords[i*2+1]},
			Normal:    math.Vec3{X: d.Normals[i*3], Y: d.Normals[i*3+1], Z: d.Normals[i*3+2]},
		}
		m.Bounds.extend(pos)
	}

	return m, nil
}
