// Package geometry builds renderable triangle meshes from imported model
// data and reconstructs the per-vertex tangent-space basis needed for
// normal mapping.
package geometry

import (
	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// Vertex is a single mesh vertex, laid out the way the vertex buffer
// expects it. Tangent and Bitangent start zeroed and are filled in by
// Mesh.ComputeTangents.
type Vertex struct {
	Position  math.Vec3
	TexCoords math.Vec2
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3
}

// Mesh is an indexed triangle mesh. Once tangents are computed it is
// treated as read-only by the rest of the engine.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b *Bounds) extend(p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Union returns the smallest box containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	out.extend(other.Min)
	out.extend(other.Max)
	return out
}
