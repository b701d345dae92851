package geometry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// Baked mesh blob errors.
var (
	ErrBadMagic           = errors.New("invalid mesh blob magic: expected 'UEMB'")
	ErrUnsupportedVersion = errors.New("unsupported mesh blob version")
)

var blobMagic = [4]byte{'U', 'E', 'M', 'B'}

const blobVersion uint32 = 1

// floats per packed vertex: position 3 + uv 2 + normal 3 + tangent 3 + bitangent 3
const vertexFloats = 14

// Encode writes meshes as a little-endian baked mesh blob. The vertex
// layout matches Vertex field order, so the payload can be uploaded to a
// vertex buffer as-is.
func Encode(w io.Writer, meshes []*Mesh) error {
	if _, err := w.Write(blobMagic[:]); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, blobVersion); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(meshes))); err != nil {
		return fmt.Errorf("writing mesh count: %w", err)
	}

	for _, m := range meshes {
		name := []byte(m.Name)
		if err := binary.Write(w, binary.LittleEndian, uint32(len(name))); err != nil {
			return fmt.Errorf("mesh %q: writing name length: %w", m.Name, err)
		}
		if _, err := w.Write(name); err != nil {
			return fmt.Errorf("mesh %q: writing name: %w", m.Name, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Vertices))); err != nil {
			return fmt.Errorf("mesh %q: writing vertex count: %w", m.Name, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Indices))); err != nil {
			return fmt.Errorf("mesh %q: writing index count: %w", m.Name, err)
		}

		packed := make([]float32, 0, len(m.Vertices)*vertexFloats)
		for i := range m.Vertices {
			v := &m.Vertices[i]
			packed = append(packed,
				v.Position.X, v.Position.Y, v.Position.Z,
				v.TexCoords.X, v.TexCoords.Y,
				v.Normal.X, v.Normal.Y, v.Normal.Z,
				v.Tangent.X, v.Tangent.Y, v.Tangent.Z,
				v.Bitangent.X, v.Bitangent.Y, v.Bitangent.Z,
			)
		}
		if err := binary.Write(w, binary.LittleEndian, packed); err != nil {
			return fmt.Errorf("mesh %q: writing vertices: %w", m.Name, err)
		}
		if err := binary.Write(w, binary.LittleEndian, m.Indices); err != nil {
			return fmt.Errorf("mesh %q: writing indices: %w", m.Name, err)
		}
	}

	return nil
}

// Decode reads a baked mesh blob written by Encode.
func Decode(r io.Reader) ([]*Mesh, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != blobMagic {
		return nil, ErrBadMagic
	}

	var version, meshCount uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if version != blobVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if err := binary.Read(r, binary.LittleEndian, &meshCount); err != nil {
		return nil, fmt.Errorf("reading mesh count: %w", err)
	}

	meshes := make([]*Mesh, 0, meshCount)
	for mi := uint32(0); mi < meshCount; mi++ {
		var nameLen uint32
		if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
			return nil, fmt.Errorf("mesh %d: reading name length: %w", mi, err)
		}
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("mesh %d: reading name: %w", mi, err)
		}

		var vertexCount, indexCount uint32
		if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
			return nil, fmt.Errorf("mesh %q: reading vertex count: %w", name, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
			return nil, fmt.Errorf("mesh %q: reading index count: %w", name, err)
		}

		packed := make([]float32, int(vertexCount)*vertexFloats)
		if err := binary.Read(r, binary.LittleEndian, packed); err != nil {
			return nil, fmt.Errorf("mesh %q: reading vertices: %w", name, err)
		}

		m := &Mesh{
			Name:     string(name),
			Vertices: make([]Vertex, vertexCount),
			Indices:  make([]uint32, indexCount),
			Bounds: Bounds{
				Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
				Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
			},
		}
		for i := uint32(0); i < vertexCount; i++ {
			f := packed[i*vertexFloats:]
			m.Vertices[i] = Vertex{
				Position:  math.Vec3{X: f[0], Y: f[1], Z: f[2]},
				TexCoords: math.Vec2{X: f[3], Y: f[4]},
				Normal:    math.Vec3{X: f[5], Y: f[6], Z: f[7]},
				Tangent:   math.Vec3{X: f[8], Y: f[9], Z: f[10]},
				Bitangent: math.Vec3{X: f[11], Y: f[12], Z: f[13]},
			}
			m.Bounds.extend(m.Vertices[i].Position)
		}
		if err := binary.Read(r, binary.LittleEndian, m.Indices); err != nil {
			return nil, fmt.Errorf("mesh %q: reading indices: %w", name, err)
		}

		meshes = append(meshes, m)
	}

	return meshes, nil
}
