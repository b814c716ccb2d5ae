package decompose

import (
	"math"

	"github.com/chazu/meshprim/pkg/face"
	"github.com/chazu/meshprim/pkg/primitive"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// circlePoint is the circle parametrization r*(sin(phi+pi), cos(phi+pi)).
func circlePoint(center v2.Vec, r, phi float64) v2.Vec {
	return v2.Vec{
		X: center.X + r*math.Sin(phi+math.Pi),
		Y: center.Y + r*math.Cos(phi+math.Pi),
	}
}

// CircleCoordinates samples n points at phi evenly spaced over [0, 2pi]
// inclusive, so the first and last points coincide.
func CircleCoordinates(c primitive.Circle, n int) ([]v2.Vec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return circleSamples(c.Center, c.Radius, n)
}

// CircleUVs maps the circle parametrization onto the disc of radius 0.5
// centered at (0.5, 0.5).
func CircleUVs(n int) ([]v2.Vec, error) {
	return circleSamples(v2.Vec{X: 0.5, Y: 0.5}, 0.5, n)
}

func circleSamples(center v2.Vec, r float64, n int) ([]v2.Vec, error) {
	n = orDefault(n, DefaultCircleResolution)
	if err := checkRange("circle", n, minCircleResolution, MaxCircleResolution); err != nil {
		return nil, err
	}
	out := make([]v2.Vec, 0, n)
	for _, phi := range linspace(0, 2*math.Pi, n) {
		out = append(out, circlePoint(center, r, phi))
	}
	return out, nil
}

// CircleFaces returns a single polygon over the n-1 distinct circle points.
// The parametrization runs clockwise, so the polygon lists them in reverse
// to face +Z. The duplicated closing point is not referenced.
func CircleFaces(n int) ([]face.NGon, error) {
	n = orDefault(n, DefaultCircleResolution)
	if err := checkRange("circle", n, minCircleResolution, MaxCircleResolution); err != nil {
		return nil, err
	}
	poly := make(face.NGon, 0, n-1)
	for i := n - 2; i >= 0; i-- {
		poly = append(poly, i)
	}
	return []face.NGon{poly}, nil
}

// SphereCoordinates samples an n by n grid over theta in [0, pi] (outer)
// and phi in [0, 2pi] (inner), mapping each sample through the spherical to
// Cartesian conversion, scaling by the radius and translating to the center.
// Sample (i, j) is at index i*n+j.
func SphereCoordinates(s primitive.Sphere, n int) ([]v3.Vec, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n = orDefault(n, DefaultSphereResolution)
	if err := checkRange("sphere", n, minGridResolution, MaxGridResolution); err != nil {
		return nil, err
	}
	thetas := linspace(0, math.Pi, n)
	phis := linspace(0, 2*math.Pi, n)
	out := make([]v3.Vec, 0, n*n)
	for _, theta := range thetas {
		st, ct := math.Sincos(theta)
		for _, phi := range phis {
			sp, cp := math.Sincos(phi)
			unit := v3.Vec{X: st * cp, Y: st * sp, Z: ct}
			out = append(out, s.Center.Add(unit.MulScalar(s.Radius)))
		}
	}
	return out, nil
}

// SphereFaces is the grid topology at n by n: a UV sphere connects its
// samples exactly like a regular grid.
func SphereFaces(n int) ([]face.Quad, error) {
	n = orDefault(n, DefaultSphereResolution)
	return GridFaces(n, n)
}

// SphereUVs is the unit-square grid at n by n.
func SphereUVs(n int) ([]v2.Vec, error) {
	n = orDefault(n, DefaultSphereResolution)
	return GridUVs(n, n)
}
