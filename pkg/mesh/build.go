package mesh

import (
	"errors"
	"fmt"

	"github.com/chazu/meshprim/pkg/face"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrBufferMismatch is returned when per-vertex attribute buffers do not
// have one entry per vertex.
var ErrBufferMismatch = errors.New("attribute buffer length mismatch")

// Build flattens vertices, normals, texture coordinates and triangles into
// a Mesh. normals and uvs may be nil; otherwise they must have one entry per
// vertex. Every triangle is validated against the vertex count.
func Build(name string, vertices, normals []v3.Vec, uvs []v2.Vec, tris []face.Triangle) (*Mesh, error) {
	if normals != nil && len(normals) != len(vertices) {
		return nil, fmt.Errorf("build %q: %d normals for %d vertices: %w", name, len(normals), len(vertices), ErrBufferMismatch)
	}
	if uvs != nil && len(uvs) != len(vertices) {
		return nil, fmt.Errorf("build %q: %d uvs for %d vertices: %w", name, len(uvs), len(vertices), ErrBufferMismatch)
	}

	m := &Mesh{
		Vertices: make([]float32, 0, len(vertices)*3),
		Normals:  make([]float32, 0, len(vertices)*3),
		Indices:  make([]uint32, 0, len(tris)*3),
		Name:     name,
	}
	for i, v := range vertices {
		m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
		var n v3.Vec
		if normals != nil {
			n = normals[i]
		}
		m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	if uvs != nil {
		m.UVs = make([]float32, 0, len(uvs)*2)
		for _, uv := range uvs {
			m.UVs = append(m.UVs, float32(uv.X), float32(uv.Y))
		}
	}
	for i, t := range tris {
		if err := face.Validate(t, len(vertices)); err != nil {
			return nil, fmt.Errorf("build %q: triangle %d: %w", name, i, err)
		}
		m.Indices = append(m.Indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return m, nil
}
