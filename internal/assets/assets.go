// Package assets resolves model files from a resource directory and loads
// them into engine meshes with baked tangents.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sycrosity/unknown-engine/internal/engine/geometry"
	"github.com/Sycrosity/unknown-engine/pkg/obj"
)

// Material references the texture maps a mesh wants bound. Image decoding
// and GPU upload happen elsewhere.
type Material struct {
	Name       string
	DiffuseMap string
	NormalMap  string
}

// Model is a loaded model: meshes with tangents computed, plus the
// materials they reference. MaterialIDs is index-aligned with Meshes;
// -1 means the mesh has no material.
type Model struct {
	Name        string
	Meshes      []*geometry.Mesh
	Materials   []Material
	MaterialIDs []int
}

// Library serves assets relative to a resource directory.
type Library struct {
	root string
}

// NewLibrary creates a library rooted at root. An empty root falls back to
// the RES_PATH environment variable, then to "res".
func NewLibrary(root string) *Library {
	if root == "" {
		root = os.Getenv("RES_PATH")
	}
	if root == "" {
		root = "res"
	}
	return &Library{root: root}
}

// Path returns the on-disk path of a named asset.
func (l *Library) Path(name string) string {
	return filepath.Join(l.root, name)
}

// ReadFile returns the raw bytes of a named asset.
func (l *Library) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(l.Path(name))
	if err != nil {
		return nil, fmt.Errorf("reading asset %q: %w", name, err)
	}
	return data, nil
}

// LoadModel loads a model file by extension (.obj, .gltf or .glb),
// validates its meshes and computes their tangent-space bases. A mesh
// that fails validation rejects the whole model.
func (l *Library) LoadModel(name string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".obj":
		return l.loadOBJ(name)
	case ".gltf", ".glb":
		return l.loadGLTF(name)
	default:
		return nil, fmt.Errorf("model %q: unsupported format", name)
	}
}

func (l *Library) loadOBJ(name string) (*Model, error) {
	path := l.Path(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model %q: %w", name, err)
	}
	defer f.Close()

	// Material libraries resolve relative to the .obj file.
	dir := filepath.Dir(path)
	file, err := obj.Parse(f, func(mtl string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, mtl))
	})
	if err != nil {
		return nil, fmt.Errorf("parsing model %q: %w", name, err)
	}

	model := &Model{Name: name}
	for _, mat := range file.Materials {
		model.Materials = append(model.Materials, Material{
			Name:       mat.Name,
			DiffuseMap: mat.DiffuseMap,
			NormalMap:  mat.NormalMap,
		})
	}

	for _, src := range file.Meshes {
		mesh, err := geometry.BuildMesh(geometry.MeshData{
			Name:      src.Name,
			Positions: src.Positions,
			TexCoords: src.TexCoords,
			Normals:   src.Normals,
			Indices:   src.Indices,
		})
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
		mesh.ComputeTangents()
		model.Meshes = append(model.Meshes, mesh)
		model.MaterialIDs = append(model.MaterialIDs, src.MaterialID)
	}

	return model, nil
}
