package geometry

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m, err := BuildMesh(singleTriangle())
	if err != nil {
		t.Fatalf("BuildMesh() error: %v", err)
	}
	m.ComputeTangents()

	var buf bytes.Buffer
	if err := Encode(&buf, []*Mesh{m}); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("decoded %d meshes, want 1", len(out))
	}

	got := out[0]
	if got.Name != m.Name {
		t.Errorf("name = %q, want %q", got.Name, m.Name)
	}
	if len(got.Vertices) != len(m.Vertices) || len(got.Indices) != len(m.Indices) {
		t.Fatalf("sizes = %d/%d, want %d/%d", len(got.Vertices), len(got.Indices), len(m.Vertices), len(m.Indices))
	}
	for i := range m.Vertices {
		if got.Vertices[i] != m.Vertices[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, got.Vertices[i], m.Vertices[i])
		}
	}
	for i := range m.Indices {
		if got.Indices[i] != m.Indices[i] {
			t.Errorf("index %d = %d, want %d", i, got.Indices[i], m.Indices[i])
		}
	}
	if got.Bounds != m.Bounds {
		t.Errorf("bounds = %+v, want %+v", got.Bounds, m.Bounds)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("XXXX\x01\x00\x00\x00\x00\x00\x00\x00")))
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("Decode() error = %v, want ErrBadMagic", err)
	}
}
