package geometry

import (
	"errors"
	"testing"

	"github.com/Sycrosity/unknown-engine/pkg/math"
)

func TestBuildMeshInterleaves(t *testing.T) {
	m, err := BuildMesh(singleTriangle())
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}

	if len(m.Vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(m.Vertices))
	}
	v := m.Vertices[1]
	if v.Position != (math.Vec3{X: 1, Y: 0, Z: 0}) {
		t.Errorf("vertex 1 position = %v", v.Position)
	}
	if v.TexCoords != (math.Vec2{X: 1, Y: 0}) {
		t.Errorf("vertex 1 tex coords = %v", v.TexCoords)
	}
	if v.Normal != (math.Vec3{X: 0, Y: 0, Z: 1}) {
		t.Errorf("vertex 1 normal = %v", v.Normal)
	}
	if v.Tangent != (math.Vec3{}) || v.Bitangent != (math.Vec3{}) {
		t.Error("fresh mesh should have zeroed tangent/bitangent")
	}
}

func TestBuildMeshBounds(t *testing.T) {
	m, err := BuildMesh(singleTriangle())
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}

	if m.Bounds.Min != (math.Vec3{}) {
		t.Errorf("bounds min = %v, want origin", m.Bounds.Min)
	}
	if m.Bounds.Max != (math.Vec3{X: 1, Y: 1, Z: 0}) {
		t.Errorf("bounds max = %v, want (1,1,0)", m.Bounds.Max)
	}
	if m.Bounds.Center() != (math.Vec3{X: 0.5, Y: 0.5, Z: 0}) {
		t.Errorf("bounds center = %v", m.Bounds.Center())
	}
}

func TestBuildMeshRejectsIndexOutOfRange(t *testing.T) {
	d := singleTriangle()
	d.Indices = []uint32{0, 1, 3}

	if _, err := BuildMesh(d); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("BuildMesh() error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestBuildMeshRejectsMismatchedAttributes(t *testing.T) {
	d := singleTriangle()
	d.TexCoords = d.TexCoords[:4] // one vertex short

	if _, err := BuildMesh(d); !errors.Is(err, ErrUnalignedAttributes) {
		t.Errorf("BuildMesh() error = %v, want ErrUnalignedAttributes", err)
	}
}

func TestBuildMeshRejectsPartialTriangle(t *testing.T) {
	d := singleTriangle()
	d.Indices = []uint32{0, 1}

	if _, err := BuildMesh(d); !errors.Is(err, ErrUnalignedIndices) {
		t.Errorf("BuildMesh() error = %v, want ErrUnalignedIndices", err)
	}
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{Min: math.Vec3{X: -1, Y: 0, Z: 0}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	b := Bounds{Min: math.Vec3{X: 0, Y: -2, Z: 0}, Max: math.Vec3{X: 3, Y: 0, Z: 0}}

	u := a.Union(b)
	if u.Min != (math.Vec3{X: -1, Y: -2, Z: 0}) {
		t.Errorf("union min = %v", u.Min)
	}
	if u.Max != (math.Vec3{X: 3, Y: 1, Z: 1}) {
		t.Errorf("union max = %v", u.Max)
	}
}
