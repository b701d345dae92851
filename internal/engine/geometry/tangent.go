package geometry

import gomath "math"

// ComputeTangents fills in the tangent and bitangent of every vertex for
// tangent-space normal mapping.
//
// Each triangle contributes one tangent/bitangent pair, found by solving
// the 2x2 system relating its position deltas to its UV deltas. The pair
// is accumulated into all three vertices and each vertex ends up with the
// arithmetic mean over the triangles touching it. The mean is deliberately
// not renormalized: the downstream shader expects the averaged scale.
//
// The bitangent is scaled by -r so it follows the handedness of the
// sampling coordinate system; the asymmetry with the tangent is intended.
//
// Triangles whose UV deltas are collinear make r infinite and propagate
// inf/NaN into their vertices. This is left unguarded on purpose; callers
// supplying degenerate UV mappings accept non-finite output (see
// NonFiniteTangents). Vertices referenced by no triangle keep a zero
// tangent and bitangent.
func (m *Mesh) ComputeTangents() {
	trianglesIncluded := make([]uint32, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		deltaPos1 := v1.Position.Sub(v0.Position)
		deltaPos2 := v2.Position.Sub(v0.Position)
		deltaUV1 := v1.TexCoords.Sub(v0.TexCoords)
		deltaUV2 := v2.TexCoords.Sub(v0.TexCoords)

		r := 1 / (deltaUV1.X*deltaUV2.Y - deltaUV1.Y*deltaUV2.X)
		tangent := deltaPos1.Scale(deltaUV2.Y).Sub(deltaPos2.Scale(deltaUV1.Y)).Scale(r)
		bitangent := deltaPos2.Scale(deltaUV1.X).Sub(deltaPos1.Scale(deltaUV2.X)).Scale(-r)

		for _, idx := range [3]uint32{i0, i1, i2} {
			m.Vertices[idx].Tangent = m.Vertices[idx].Tangent.Add(tangent)
			m.Vertices[idx].Bitangent = m.Vertices[idx].Bitangent.Add(bitangent)
			trianglesIncluded[idx]++
		}
	}

	for i, n := range trianglesIncluded {
		if n == 0 {
			continue
		}
		denom := 1 / float32(n)
		m.Vertices[i].Tangent = m.Vertices[i].Tangent.Scale(denom)
		m.Vertices[i].Bitangent = m.Vertices[i].Bitangent.Scale(denom)
	}
}

// NonFiniteTangents counts vertices whose tangent or bitangent carries a
// NaN or infinity, i.e. vertices touched by a degenerate-UV triangle.
func (m *Mesh) NonFiniteTangents() int {
	count := 0
	for i := range m.Vertices {
		t := m.Vertices[i].Tangent
		b := m.Vertices[i].Bitangent
		if !finite(t.X) || !finite(t.Y) || !finite(t.Z) ||
			!finite(b.X) || !finite(b.Y) || !finite(b.Z) {
			count++
		}
	}
	return count
}

func finite(f float32) bool {
	f64 := float64(f)
	return !gomath.IsNaN(f64) && !gomath.IsInf(f64, 0)
}
