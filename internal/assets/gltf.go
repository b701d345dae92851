package assets

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Sycrosity/unknown-engine/internal/engine/geometry"
)

func (l *Library) loadGLTF(name string) (*Model, error) {
	doc, err := gltf.Open(l.Path(name))
	if err != nil {
		return nil, fmt.Errorf("opening model %q: %w", name, err)
	}

	model := &Model{Name: name}
	for _, gm := range doc.Materials {
		mat := Material{Name: gm.Name}
		if pbr := gm.PBRMetallicRoughness; pbr != nil && pbr.BaseColorTexture != nil {
			mat.DiffuseMap = imageURI(doc, pbr.BaseColorTexture.Index)
		}
		if gm.NormalTexture != nil && gm.NormalTexture.Index != nil {
			mat.NormalMap = imageURI(doc, *gm.NormalTexture.Index)
		}
		model.Materials = append(model.Materials, mat)
	}

	for mi, gm := range doc.Meshes {
		meshName := gm.Name
		if meshName == "" {
			meshName = fmt.Sprintf("mesh_%d", mi)
		}
		for pi, prim := range gm.Primitives {
			data, err := readPrimitive(doc, fmt.Sprintf("%s_p%d", meshName, pi), prim)
			if err != nil {
				return nil, fmt.Errorf("model %q mesh %d primitive %d: %w", name, mi, pi, err)
			}

			mesh, err := geometry.BuildMesh(data)
			if err != nil {
				return nil, fmt.Errorf("model %q: %w", name, err)
			}
			mesh.ComputeTangents()
			model.Meshes = append(model.Meshes, mesh)

			materialID := -1
			if prim.Material != nil {
				materialID = *prim.Material
			}
			model.MaterialIDs = append(model.MaterialIDs, materialID)
		}
	}

	return model, nil
}

// readPrimitive flattens one glTF primitive into the geometry import
// shape. Missing normals or texture coordinates are zero-filled so the
// attribute arrays stay vertex aligned.
func readPrimitive(doc *gltf.Document, name string, prim *gltf.Primitive) (geometry.MeshData, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return geometry.MeshData{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return geometry.MeshData{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return geometry.MeshData{}, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return geometry.MeshData{}, fmt.Errorf("texture coords: %w", err)
		}
	}

	data := geometry.MeshData{
		Name:      name,
		Positions: make([]float32, 0, len(positions)*3),
		TexCoords: make([]float32, len(positions)*2),
		Normals:   make([]float32, len(positions)*3),
	}
	for _, p := range positions {
		data.Positions = append(data.Positions, p[0], p[1], p[2])
	}
	for i := 0; i < len(uvs) && i < len(positions); i++ {
		data.TexCoords[i*2] = uvs[i][0]
		data.TexCoords[i*2+1] = uvs[i][1]
	}
	for i := 0; i < len(normals) && i < len(positions); i++ {
		data.Normals[i*3] = normals[i][0]
		data.Normals[i*3+1] = normals[i][1]
		data.Normals[i*3+2] = normals[i][2]
	}

	if prim.Indices != nil {
		if data.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return geometry.MeshData{}, fmt.Errorf("indices: %w", err)
		}
	} else {
		// Non-indexed primitive: synthesize sequential indices so the
		// tangent pass still sees triangles.
		data.Indices = make([]uint32, len(positions))
		for i := range data.Indices {
			data.Indices[i] = uint32(i)
		}
	}

	return data, nil
}

func imageURI(doc *gltf.Document, texIdx int) string {
	if texIdx < 0 || texIdx >= len(doc.Textures) {
		return ""
	}
	src := doc.Textures[texIdx].Source
	if src == nil || *src >= len(doc.Images) {
		return ""
	}
	return doc.Images[*src].URI
}
