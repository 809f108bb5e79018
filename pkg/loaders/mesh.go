package loaders

import (
	"fmt"
	"math/rand"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/geometry"
	"github.com/dlrow/pathtracer/pkg/material"
)

// LoadMesh decodes every primitive of every mesh in the glTF 2.0
// asset at path, flattening position/index/UV accessors into
// geometry.Triangle values and indexing them into a single
// geometry.TriangleMesh under mat.
func LoadMesh(path string, mat material.Material, rng *rand.Rand) (*geometry.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open mesh %q: %w", path, err)
	}

	var triangles []*geometry.Triangle
	for meshIdx, mesh := range doc.Meshes {
		for primIdx, prim := range mesh.Primitives {
			ts, err := trianglesFromPrimitive(doc, prim, mat)
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh %q primitive %d.%d: %w", path, meshIdx, primIdx, err)
			}
			triangles = append(triangles, ts...)
		}
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("loaders: mesh %q: no triangles decoded", path)
	}

	return geometry.NewTriangleMesh(triangles, rng), nil
}

func trianglesFromPrimitive(doc *gltf.Document, prim *gltf.Primitive, mat material.Material) ([]*geometry.Triangle, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vertex := func(i uint32) core.Vec3 {
		p := positions[i]
		return core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	texCoord := func(i uint32) core.Vec2 {
		if int(i) >= len(uvs) {
			return core.Vec2{}
		}
		uv := uvs[i]
		return core.Vec2{X: float64(uv[0]), Y: float64(uv[1])}
	}

	triangles := make([]*geometry.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		triangles = append(triangles, geometry.NewTriangle(
			vertex(i0), vertex(i1), vertex(i2),
			texCoord(i0), texCoord(i1), texCoord(i2),
			mat,
		))
	}
	return triangles, nil
}
