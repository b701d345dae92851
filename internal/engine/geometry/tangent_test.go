package geometry

import (
	gomath "math"
	"testing"

	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// singleTriangle is the reference triangle: unit right angle in the XY
// plane with an identity UV mapping, so r = 1.
func singleTriangle() MeshData {
	return MeshData{
		Name: "tri",
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		},
		TexCoords: []float32{
			0, 0,
			1, 0,
			0, 1,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestComputeTangentsSingleTriangle(t *testing.T) {
	m, err := BuildMesh(singleTriangle())
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}
	m.ComputeTangents()

	wantT := math.Vec3{X: 1, Y: 0, Z: 0}
	wantB := math.Vec3{X: 0, Y: -1, Z: 0}
	for i, v := range m.Vertices {
		if v.Tangent != wantT {
			t.Errorf("vertex %d tangent = %v, want %v", i, v.Tangent, wantT)
		}
		if v.Bitangent != wantB {
			t.Errorf("vertex %d bitangent = %v, want %v", i, v.Bitangent, wantB)
		}
	}
}

func TestComputeTangentsIdenticalContributionsAverageExactly(t *testing.T) {
	// The same triangle twice: every vertex is touched by two triangles
	// with identical contributions, so the mean must equal the raw value.
	d := singleTriangle()
	d.Indices = []uint32{0, 1, 2, 0, 1, 2}

	m, err := BuildMesh(d)
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}
	m.ComputeTangents()

	wantT := math.Vec3{X: 1, Y: 0, Z: 0}
	wantB := math.Vec3{X: 0, Y: -1, Z: 0}
	for i, v := range m.Vertices {
		if v.Tangent != wantT {
			t.Errorf("vertex %d tangent = %v, want %v", i, v.Tangent, wantT)
		}
		if v.Bitangent != wantB {
			t.Errorf("vertex %d bitangent = %v, want %v", i, v.Bitangent, wantB)
		}
	}
}

func TestComputeTangentsUnreferencedVertexStaysZero(t *testing.T) {
	d := singleTriangle()
	d.Positions = append(d.Positions, 5, 5, 5)
	d.TexCoords = append(d.TexCoords, 0.5, 0.5)
	d.Normals = append(d.Normals, 0, 1, 0)

	m, err := BuildMesh(d)
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}
	m.ComputeTangents()

	v := m.Vertices[3]
	if v.Tangent != (math.Vec3{}) || v.Bitangent != (math.Vec3{}) {
		t.Errorf("unreferenced vertex tangent/bitangent = %v/%v, want zero", v.Tangent, v.Bitangent)
	}
}

func TestComputeTangentsDegenerateUVPropagatesNaN(t *testing.T) {
	d := singleTriangle()
	// Collapse the UV mapping: all three corners share one UV point, so
	// the 2x2 system is singular and r is infinite.
	d.TexCoords = []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

	m, err := BuildMesh(d)
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}
	m.ComputeTangents()

	if got := m.NonFiniteTangents(); got != 3 {
		t.Errorf("NonFiniteTangents() = %d, want 3", got)
	}
	tan := m.Vertices[0].Tangent
	if !gomath.IsNaN(float64(tan.X)) && !gomath.IsInf(float64(tan.X), 0) {
		t.Errorf("degenerate UV tangent.X = %v, want non-finite", tan.X)
	}
}

func TestComputeTangentsSharedVertexAverages(t *testing.T) {
	// Two triangles sharing an edge, each contributing a different
	// tangent magnitude: the shared vertices must carry the mean.
	d := MeshData{
		Name: "quadish",
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			2, 1, 0,
		},
		TexCoords: []float32{
			0, 0,
			1, 0,
			0, 1,
			1, 1,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 1, 3, 2},
	}

	m, err := BuildMesh(d)
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}
	m.ComputeTangents()

	// Triangle 1 contributes T=(1,0,0); triangle 2:
	// dp1=(1,1,0) duv1=(0,1), dp2=(-1,1,0) duv2=(-1,1)
	// r = 1/(0*1 - 1*(-1)) = 1
	// T = dp1*1 - dp2*1 = (2,0,0); B = (dp2*0 - dp1*(-1)) * -1 = (-1,-1,0)
	wantShared := math.Vec3{X: 1.5, Y: 0, Z: 0}
	for _, i := range []int{1, 2} {
		if got := m.Vertices[i].Tangent; got != wantShared {
			t.Errorf("shared vertex %d tangent = %v, want %v", i, got, wantShared)
		}
	}
	if got := m.Vertices[0].Tangent; got != (math.Vec3{X: 1, Y: 0, Z: 0}) {
		t.Errorf("vertex 0 tangent = %v, want (1,0,0)", got)
	}
	if got := m.Vertices[3].Tangent; got != (math.Vec3{X: 2, Y: 0, Z: 0}) {
		t.Errorf("vertex 3 tangent = %v, want (2,0,0)", got)
	}
}
