// Package parametric implements kernel.Kernel by sampling each primitive's
// surface parametrization through package decompose. Planar primitives are
// placed on the z = 0 plane.
package parametric

import (
	"fmt"

	"github.com/chazu/meshprim/pkg/decompose"
	"github.com/chazu/meshprim/pkg/face"
	"github.com/chazu/meshprim/pkg/kernel"
	"github.com/chazu/meshprim/pkg/mesh"
	"github.com/chazu/meshprim/pkg/primitive"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// Options holds the resolution used when Tessellate is called with res <= 0.
// A zero field falls back to the decompose package default.
type Options struct {
	SphereResolution int `yaml:"sphere"`
	CircleResolution int `yaml:"circle"`
	CylinderFacets   int `yaml:"cylinder"`
	RectResolution   int `yaml:"rect"`
}

// DefaultOptions returns the decompose package defaults.
func DefaultOptions() Options {
	return Options{
		SphereResolution: decompose.DefaultSphereResolution,
		CircleResolution: decompose.DefaultCircleResolution,
		CylinderFacets:   decompose.DefaultCylinderFacets,
		RectResolution:   decompose.DefaultRectResolution,
	}
}

// Kernel tessellates primitives analytically.
type Kernel struct {
	opts Options
}

// New returns a parametric Kernel.
func New(opts Options) *Kernel {
	return &Kernel{opts: opts}
}

// Name returns "parametric".
func (k *Kernel) Name() string { return "parametric" }

// Options returns the kernel's default resolutions.
func (k *Kernel) Options() Options { return k.opts }

// surface is a primitive sampled at one resolution, before flattening.
// normals is nil unless the primitive has analytic ones.
type surface struct {
	vertices []v3.Vec
	normals  []v3.Vec
	uvs      []v2.Vec
	tris     []face.Triangle
}

// Tessellate samples p and returns its mesh. The meaning of res depends on
// the primitive: grid size per axis for spheres and rectangles, sample count
// for circles and facet count for cylinders. Pyramids, quads, boxes and
// particles ignore it.
func (k *Kernel) Tessellate(p primitive.Primitive, res int) (*mesh.Mesh, error) {
	if p == nil {
		return nil, fmt.Errorf("parametric: nil primitive: %w", kernel.ErrUnsupported)
	}
	sf, err := k.sample(p, res)
	if err != nil {
		return nil, fmt.Errorf("parametric: %s: %w", p.Kind(), err)
	}
	normals := sf.normals
	if normals == nil {
		normals, err = mesh.VertexNormals(sf.vertices, sf.tris)
		if err != nil {
			return nil, fmt.Errorf("parametric: %s normals: %w", p.Kind(), err)
		}
	}
	return mesh.Build(p.Kind().String(), sf.vertices, normals, sf.uvs, sf.tris)
}

func pick(res, def int) int {
	if res > 0 {
		return res
	}
	return def
}

func (k *Kernel) sample(p primitive.Primitive, res int) (*surface, error) {
	switch s := p.(type) {
	case primitive.Sphere:
		n := pick(res, k.opts.SphereResolution)
		vs, err := decompose.SphereCoordinates(s, n)
		if err != nil {
			return nil, err
		}
		uvs, err := decompose.SphereUVs(n)
		if err != nil {
			return nil, err
		}
		quads, err := decompose.SphereFaces(n)
		if err != nil {
			return nil, err
		}
		return withQuads(vs, uvs, quads)

	case primitive.Circle:
		n := pick(res, k.opts.CircleResolution)
		pts, err := decompose.CircleCoordinates(s, n)
		if err != nil {
			return nil, err
		}
		uvs, err := decompose.CircleUVs(n)
		if err != nil {
			return nil, err
		}
		polys, err := decompose.CircleFaces(n)
		if err != nil {
			return nil, err
		}
		tris, err := face.CollectTriangles(polys)
		if err != nil {
			return nil, err
		}
		return &surface{vertices: lift(pts), uvs: uvs, tris: tris}, nil

	case primitive.Cylinder:
		facets := pick(res, k.opts.CylinderFacets)
		vs, err := decompose.CylinderCoordinates(s, facets)
		if err != nil {
			return nil, err
		}
		return &surface{
			vertices: vs,
			uvs:      decompose.CylinderUVs(facets),
			tris:     decompose.CylinderFaces(facets),
		}, nil

	case primitive.Cylinder2:
		n := pick(res, k.opts.RectResolution)
		pts, err := decompose.Cylinder2Coordinates(s, n, n)
		if err != nil {
			return nil, err
		}
		return gridSurface(pts, n)

	case primitive.Rect:
		n := pick(res, k.opts.RectResolution)
		pts, err := decompose.RectCoordinates(s, n, n)
		if err != nil {
			return nil, err
		}
		return gridSurface(pts, n)

	case primitive.Quad:
		vs, err := decompose.QuadCoordinates(s)
		if err != nil {
			return nil, err
		}
		sf, err := withQuads(vs, decompose.QuadUVs(), decompose.QuadFaces())
		if err != nil {
			return nil, err
		}
		sf.normals = decompose.QuadNormals(s)
		return sf, nil

	case primitive.Pyramid:
		vs, err := decompose.PyramidCoordinates(s)
		if err != nil {
			return nil, err
		}
		return &surface{vertices: vs, tris: decompose.PyramidFaces()}, nil

	case primitive.Box:
		vs, err := decompose.BoxCoordinates(s)
		if err != nil {
			return nil, err
		}
		return withQuads(vs, decompose.BoxUVs(), decompose.BoxFaces())

	case primitive.Particle:
		vs, err := decompose.ParticleCoordinates(s)
		if err != nil {
			return nil, err
		}
		return &surface{vertices: vs}, nil
	}
	return nil, kernel.ErrUnsupported
}

func withQuads(vs []v3.Vec, uvs []v2.Vec, quads []face.Quad) (*surface, error) {
	tris, err := face.CollectTriangles(quads)
	if err != nil {
		return nil, err
	}
	return &surface{vertices: vs, uvs: uvs, tris: tris}, nil
}

func gridSurface(pts []v2.Vec, n int) (*surface, error) {
	uvs, err := decompose.GridUVs(n, n)
	if err != nil {
		return nil, err
	}
	quads, err := decompose.GridFaces(n, n)
	if err != nil {
		return nil, err
	}
	return withQuads(lift(pts), uvs, quads)
}

// lift places planar points on z = 0.
func lift(pts []v2.Vec) []v3.Vec {
	out := make([]v3.Vec, len(pts))
	for i, p := range pts {
		out[i] = v3.Vec{X: p.X, Y: p.Y}
	}
	return out
}
