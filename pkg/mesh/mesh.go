// Package mesh holds flat render-ready mesh buffers and the per-vertex
// normal computation used to fill them.
package mesh

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, uvs has 2 floats per vertex,
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`      // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`       // [nx0,ny0,nz0, ...]
	UVs      []float32 `json:"uvs,omitempty"` // [u0,v0, u1,v1, ...]
	Indices  []uint32  `json:"indices"`       // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`          // which part this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i widened back to float64.
func (m *Mesh) Vertex(i int) v3.Vec {
	return v3.Vec{
		X: float64(m.Vertices[i*3]),
		Y: float64(m.Vertices[i*3+1]),
		Z: float64(m.Vertices[i*3+2]),
	}
}

// Normal returns the normal of vertex i widened back to float64.
func (m *Mesh) Normal(i int) v3.Vec {
	return v3.Vec{
		X: float64(m.Normals[i*3]),
		Y: float64(m.Normals[i*3+1]),
		Z: float64(m.Normals[i*3+2]),
	}
}

// BoundingBox returns the axis-aligned bounds of the vertices. An empty
// mesh yields the zero box.
func (m *Mesh) BoundingBox() sdf.Box3 {
	if m.IsEmpty() {
		return sdf.Box3{}
	}
	lo := m.Vertex(0)
	hi := lo
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		lo = v3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = v3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	return sdf.Box3{Min: lo, Max: hi}
}
