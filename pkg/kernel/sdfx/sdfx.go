// Package sdfx implements kernel.Kernel using the github.com/deadsy/sdfx
// SDF-based CAD library. Solid primitives become signed distance fields and
// are meshed with marching cubes. Planar and point primitives have no
// volume and are not supported.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/meshprim/pkg/face"
	"github.com/chazu/meshprim/pkg/kernel"
	"github.com/chazu/meshprim/pkg/mesh"
	"github.com/chazu/meshprim/pkg/primitive"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel meshing with the given number of marching
// cubes cells along the longest axis. cells <= 0 selects DefaultMeshCells.
func New(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Name returns "sdfx".
func (k *SdfxKernel) Name() string { return "sdfx" }

// Cells returns the default marching cubes cell count.
func (k *SdfxKernel) Cells() int { return k.cells }

// Solid returns the signed distance field of p. Spheres, cylinders and
// boxes are supported.
func (k *SdfxKernel) Solid(p primitive.Primitive) (sdf.SDF3, error) {
	if p == nil {
		return nil, fmt.Errorf("sdfx: nil primitive: %w", kernel.ErrUnsupported)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("sdfx: %w", err)
	}
	switch s := p.(type) {
	case primitive.Sphere:
		return sphere(s)
	case primitive.Cylinder:
		return cylinder(s)
	case primitive.Box:
		return box(s)
	}
	return nil, fmt.Errorf("sdfx: %s: %w", p.Kind(), kernel.ErrUnsupported)
}

func sphere(s primitive.Sphere) (sdf.SDF3, error) {
	ball, err := sdf.Sphere3D(s.Radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Sphere3D: %w", err)
	}
	return sdf.Transform3D(ball, sdf.Translate3d(s.Center)), nil
}

// cylinder builds a Z-aligned cylinder centered at the origin, tilts it
// onto the axis direction and moves it to the axis midpoint.
func cylinder(c primitive.Cylinder) (sdf.SDF3, error) {
	body, err := sdf.Cylinder3D(c.Height(), c.Radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}
	d := c.Direction()
	polar := math.Acos(math.Max(-1, math.Min(1, d.Z)))
	azimuth := math.Atan2(d.Y, d.X)
	m := sdf.Translate3d(c.Center()).Mul(sdf.RotateZ(azimuth)).Mul(sdf.RotateY(polar))
	return sdf.Transform3D(body, m), nil
}

// box shifts sdf.Box3D from center-origin to min-corner-origin.
func box(b primitive.Box) (sdf.SDF3, error) {
	s, err := sdf.Box3D(b.Widths, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	m := sdf.Translate3d(b.Origin.Add(b.Widths.MulScalar(0.5)))
	return sdf.Transform3D(s, m), nil
}

// Contains reports whether pt is inside or on the surface of p, using the
// sign of its distance field.
func (k *SdfxKernel) Contains(p primitive.Primitive, pt v3.Vec) (bool, error) {
	s, err := k.Solid(p)
	if err != nil {
		return false, err
	}
	return s.Evaluate(pt) <= 0, nil
}

// Tessellate meshes p with marching cubes. res overrides the kernel's cell
// count when positive.
func (k *SdfxKernel) Tessellate(p primitive.Primitive, res int) (*mesh.Mesh, error) {
	s, err := k.Solid(p)
	if err != nil {
		return nil, err
	}
	cells := k.cells
	if res > 0 {
		cells = res
	}
	m, err := toMesh(p.Kind().String(), s, cells)
	if err != nil {
		return nil, fmt.Errorf("sdfx: %s: %w", p.Kind(), err)
	}
	return m, nil
}

// toMesh meshes s with marching cubes. Triangles share no vertices, so
// each corner carries its own triangle's unit normal; zero-area triangles
// keep a zero normal.
func toMesh(name string, s sdf.SDF3, cells int) (*mesh.Mesh, error) {
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	verts := make([]v3.Vec, 0, 3*len(tris))
	normals := make([]v3.Vec, 0, 3*len(tris))
	faces := make([]face.Triangle, 0, len(tris))
	for _, t := range tris {
		n := mesh.FaceNormal(t[0], t[1], t[2])
		if l := n.Length(); l > 0 {
			n = n.MulScalar(1 / l)
		}
		base := len(verts)
		verts = append(verts, t[0], t[1], t[2])
		normals = append(normals, n, n, n)
		faces = append(faces, face.Triangle{base, base + 1, base + 2})
	}
	return mesh.Build(name, verts, normals, nil, faces)
}
