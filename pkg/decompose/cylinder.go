package decompose

import (
	"math"

	"github.com/chazu/meshprim/pkg/face"
	"github.com/chazu/meshprim/pkg/primitive"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ClampFacets normalizes a facet count: zero selects the default, odd
// counts round down to even, and the result is kept within
// [MinCylinderFacets, MaxCylinderFacets]. Coordinates and faces both go
// through this so they always agree.
func ClampFacets(facets int) int {
	facets = orDefault(facets, DefaultCylinderFacets)
	facets -= facets % 2
	if facets < MinCylinderFacets {
		facets = MinCylinderFacets
	}
	if facets > MaxCylinderFacets {
		facets = MaxCylinderFacets
	}
	return facets
}

// CylinderCoordinates returns facets+2 points. The first facets points are
// facets/2 (bottom, top) pairs: pair k sits at angle 2*pi*k/(facets/2)
// around the axis, bottom on the origin disc and top on the extremity disc.
// The last two points are exactly the origin and the extremity.
func CylinderCoordinates(c primitive.Cylinder, facets int) ([]v3.Vec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	facets = ClampFacets(facets)
	nbv := facets / 2
	frame := c.Rotation()
	h := c.Height()

	out := make([]v3.Vec, 0, facets+2)
	for k := 0; k < nbv; k++ {
		phi := 2 * math.Pi * float64(k) / float64(nbv)
		s, co := math.Sincos(phi)
		x, y := c.Radius*co, c.Radius*s
		out = append(out,
			c.Origin.Add(frame.Apply(v3.Vec{X: x, Y: y, Z: 0})),
			c.Origin.Add(frame.Apply(v3.Vec{X: x, Y: y, Z: h})),
		)
	}
	return append(out, c.Origin, c.Extremity), nil
}

// CylinderFaces returns 2*facets outward-wound triangles indexing into
// CylinderCoordinates at the same facet count.
//
// The side wall is a closed triangle strip over the ring sequence b0, t0,
// b1, t1, ...; strip triangle j joins ring points j, j+1, j+2 (wrapping) and
// every even one is flipped so the whole wall winds the same way. Each cap
// then fans the ring points of its end to the center point: the bottom ring
// to the origin, the top ring to the extremity.
func CylinderFaces(facets int) []face.Triangle {
	facets = ClampFacets(facets)
	nbv := facets / 2
	bottom, top := facets, facets+1

	out := make([]face.Triangle, 0, 2*facets)
	for j := 0; j < facets; j++ {
		a, b, c := j, (j+1)%facets, (j+2)%facets
		if j%2 == 0 {
			out = append(out, face.Triangle{a, c, b})
		} else {
			out = append(out, face.Triangle{a, b, c})
		}
	}
	for k := 0; k < nbv; k++ {
		next := (k + 1) % nbv
		out = append(out,
			face.Triangle{bottom, 2 * next, 2 * k},
			face.Triangle{top, 2*k + 1, 2*next + 1},
		)
	}
	return out
}

// CylinderUVs unrolls the wall: ring pair k maps to u = k/(facets/2) with
// v = 0 at the bottom and 1 at the top; the cap centers map to (0.5, 0) and
// (0.5, 1).
func CylinderUVs(facets int) []v2.Vec {
	facets = ClampFacets(facets)
	nbv := facets / 2
	out := make([]v2.Vec, 0, facets+2)
	for k := 0; k < nbv; k++ {
		u := float64(k) / float64(nbv)
		out = append(out, v2.Vec{X: u, Y: 0}, v2.Vec{X: u, Y: 1})
	}
	return append(out, v2.Vec{X: 0.5, Y: 0}, v2.Vec{X: 0.5, Y: 1})
}

// Cylinder2Coordinates builds the rectangle of width r and height equal to
// the cylinder length, anchored at (origin.x - r/2, origin.y), samples it on
// an nx by ny grid and rotates it about the origin into the cylinder frame.
func Cylinder2Coordinates(c primitive.Cylinder2, nx, ny int) ([]v2.Vec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rect := primitive.Rect{
		Origin: v2.Vec{X: c.Origin.X - c.Radius/2, Y: c.Origin.Y},
		Widths: v2.Vec{X: c.Radius, Y: c.Height()},
	}
	pts, err := RectCoordinates(rect, nx, ny)
	if err != nil {
		return nil, err
	}
	frame := c.Rotation()
	for i, p := range pts {
		pts[i] = frame.Apply(p.Sub(c.Origin)).Add(c.Origin)
	}
	return pts, nil
}

// Cylinder2Faces is the grid topology of the underlying rectangle.
func Cylinder2Faces(nx, ny int) ([]face.Quad, error) {
	return GridFaces(nx, ny)
}
