package obj

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Material is the subset of an MTL definition the engine consumes: the
// texture map file names for diffuse color and normal mapping. Decoding
// the referenced images is the renderer's job.
type Material struct {
	Name       string
	DiffuseMap string
	NormalMap  string
}

// ParseMTL reads a Wavefront MTL material library.
func ParseMTL(r io.Reader) ([]Material, error) {
	var mats []Material

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("mtl line %d: newmtl without a name", lineNum)
			}
			mats = append(mats, Material{Name: fields[1]})

		case "map_Kd":
			if len(mats) == 0 || len(fields) < 2 {
				continue
			}
			mats[len(mats)-1].DiffuseMap = fields[len(fields)-1]

		case "map_Bump", "map_bump", "bump", "norm":
			if len(mats) == 0 || len(fields) < 2 {
				continue
			}
			// Map options (-bm etc.) may precede the file name.
			mats[len(mats)-1].NormalMap = fields[len(fields)-1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mtl: %w", err)
	}

	return mats, nil
}

func loadMTL(name string, resolve Resolver) ([]Material, error) {
	rc, err := resolve(name)
	if err != nil {
		return nil, fmt.Errorf("mtllib %q: %w", name, err)
	}
	defer rc.Close()

	mats, err := ParseMTL(rc)
	if err != nil {
		return nil, fmt.Errorf("mtllib %q: %w", name, err)
	}
	return mats, nil
}
