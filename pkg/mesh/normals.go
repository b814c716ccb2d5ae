package mesh

import (
	"errors"
	"fmt"

	"github.com/chazu/meshprim/pkg/face"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrIndexOutOfRange is returned when a face references a vertex that does
// not exist.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// FaceNormal returns the unnormalized normal of triangle (a, b, c):
// (b-a) x (c-a). Its length is twice the triangle area.
func FaceNormal(a, b, c v3.Vec) v3.Vec {
	return b.Sub(a).Cross(c.Sub(a))
}

// VertexNormals computes one unit normal per vertex by summing the
// unnormalized normals of every face that references the vertex and
// normalizing the sum.
//
// The sum is unweighted, so each face contributes in proportion to its area
// and a vertex shared by many faces leans toward them. Callers that want
// equal contributions must pre-normalize.
//
// A vertex referenced by no face, or whose contributions cancel, keeps the
// zero vector.
func VertexNormals(vertices []v3.Vec, faces []face.Triangle) ([]v3.Vec, error) {
	normals := make([]v3.Vec, len(vertices))
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d: %w", i, idx, len(vertices), ErrIndexOutOfRange)
			}
		}
		n := FaceNormal(vertices[f[0]], vertices[f[1]], vertices[f[2]])
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i, n := range normals {
		if l := n.Length(); l > 0 {
			normals[i] = n.MulScalar(1 / l)
		}
	}
	return normals, nil
}

// VertexNormalsFaces triangulates faces of any arity and computes vertex
// normals over the result.
func VertexNormalsFaces[F face.Face](vertices []v3.Vec, faces []F) ([]v3.Vec, error) {
	tris, err := face.CollectTriangles(faces)
	if err != nil {
		return nil, fmt.Errorf("vertex normals: %w", err)
	}
	return VertexNormals(vertices, tris)
}
