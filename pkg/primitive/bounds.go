package primitive

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Bounded3 is any value exposing 3D extrema.
type Bounded3 interface {
	Minimum() v3.Vec
	Maximum() v3.Vec
}

// Bounded2 is any value exposing 2D extrema.
type Bounded2 interface {
	Minimum() v2.Vec
	Maximum() v2.Vec
}

// Extrema returns the bounding box spanned by b's minimum and maximum.
func Extrema(b Bounded3) sdf.Box3 {
	return sdf.Box3{Min: b.Minimum(), Max: b.Maximum()}
}

// Extrema2 is Extrema for planar values.
func Extrema2(b Bounded2) sdf.Box2 {
	return sdf.Box2{Min: b.Minimum(), Max: b.Maximum()}
}

func lift(v v2.Vec) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y}
}

func min3(a, b v3.Vec) v3.Vec {
	return v3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func max3(a, b v3.Vec) v3.Vec {
	return v3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func min2(a, b v2.Vec) v2.Vec {
	return v2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

func max2(a, b v2.Vec) v2.Vec {
	return v2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// ---------------------------------------------------------------------------
// Per-shape extrema
// ---------------------------------------------------------------------------

func (s Sphere) Minimum() v3.Vec {
	return s.Center.Sub(v3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius})
}

func (s Sphere) Maximum() v3.Vec {
	return s.Center.Add(v3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius})
}

func (c Circle) Minimum() v2.Vec {
	return c.Center.Sub(v2.Vec{X: c.Radius, Y: c.Radius})
}

func (c Circle) Maximum() v2.Vec {
	return c.Center.Add(v2.Vec{X: c.Radius, Y: c.Radius})
}

// capExtent is how far the end discs reach past the endpoints on each axis:
// r * sqrt(1 - d_i^2) for unit direction d.
func (c Cylinder) capExtent() v3.Vec {
	d := c.Direction()
	e := func(di float64) float64 {
		return c.Radius * math.Sqrt(math.Max(0, 1-di*di))
	}
	return v3.Vec{X: e(d.X), Y: e(d.Y), Z: e(d.Z)}
}

func (c Cylinder) Minimum() v3.Vec {
	return min3(c.Origin, c.Extremity).Sub(c.capExtent())
}

func (c Cylinder) Maximum() v3.Vec {
	return max3(c.Origin, c.Extremity).Add(c.capExtent())
}

func (c Cylinder2) Minimum() v2.Vec {
	k := c.Corners()
	return min2(min2(k[0], k[1]), min2(k[2], k[3]))
}

func (c Cylinder2) Maximum() v2.Vec {
	k := c.Corners()
	return max2(max2(k[0], k[1]), max2(k[2], k[3]))
}

// Corners returns corner, corner+width, corner+width+height, corner+height.
func (q Quad) Corners() [4]v3.Vec {
	return [4]v3.Vec{
		q.Corner,
		q.Corner.Add(q.Width),
		q.Corner.Add(q.Width).Add(q.Height),
		q.Corner.Add(q.Height),
	}
}

// Normal is the unit normal of the quad, width x height normalized.
func (q Quad) Normal() v3.Vec {
	n := q.Width.Cross(q.Height)
	if l := n.Length(); l > 0 {
		return n.MulScalar(1 / l)
	}
	return v3.Vec{}
}

func (q Quad) Minimum() v3.Vec {
	k := q.Corners()
	return min3(min3(k[0], k[1]), min3(k[2], k[3]))
}

func (q Quad) Maximum() v3.Vec {
	k := q.Corners()
	return max3(max3(k[0], k[1]), max3(k[2], k[3]))
}

// Apex is the tip of the pyramid.
func (p Pyramid) Apex() v3.Vec {
	return p.Middle.Add(v3.Vec{Z: p.Length})
}

func (p Pyramid) Minimum() v3.Vec {
	h := p.Width / 2
	return p.Middle.Sub(v3.Vec{X: h, Y: h})
}

func (p Pyramid) Maximum() v3.Vec {
	h := p.Width / 2
	return p.Middle.Add(v3.Vec{X: h, Y: h, Z: p.Length})
}

func (p Particle) Minimum() v3.Vec { return p.Position }
func (p Particle) Maximum() v3.Vec { return p.Position }

func (r Rect) Minimum() v2.Vec { return r.Origin }
func (r Rect) Maximum() v2.Vec { return r.Origin.Add(r.Widths) }

func (b Box) Minimum() v3.Vec { return b.Origin }
func (b Box) Maximum() v3.Vec { return b.Origin.Add(b.Widths) }

// ---------------------------------------------------------------------------
// Dispatch over the closed set
// ---------------------------------------------------------------------------

// BoundingBox returns the axis-aligned bounds of p. Planar primitives are
// placed in the z = 0 plane.
func BoundingBox(p Primitive) sdf.Box3 {
	switch b := p.(type) {
	case Bounded3:
		return Extrema(b)
	case Bounded2:
		return sdf.Box3{Min: lift(b.Minimum()), Max: lift(b.Maximum())}
	}
	panic(fmt.Sprintf("primitive: %T has no extrema", p))
}

// Center returns the center of p's bounding box, except for spheres, circles
// and particles where the defining point is returned directly.
func Center(p Primitive) v3.Vec {
	switch s := p.(type) {
	case Sphere:
		return s.Center
	case Circle:
		return lift(s.Center)
	case Particle:
		return s.Position
	}
	bb := BoundingBox(p)
	return bb.Min.Add(bb.Max).MulScalar(0.5)
}

// Contains reports whether pt lies inside or on the boundary of p. Planar
// primitives ignore pt.Z. Quads and particles enclose no volume and contain
// nothing.
func Contains(p Primitive, pt v3.Vec) bool {
	switch s := p.(type) {
	case Sphere:
		d := pt.Sub(s.Center)
		return d.Dot(d) <= s.Radius*s.Radius
	case Circle:
		d := v2.Vec{X: pt.X, Y: pt.Y}.Sub(s.Center)
		return d.Dot(d) <= s.Radius*s.Radius
	case Cylinder:
		rel := pt.Sub(s.Origin)
		t := rel.Dot(s.Direction())
		if t < 0 || t > s.Height() {
			return false
		}
		radial := rel.Sub(s.Direction().MulScalar(t))
		return radial.Dot(radial) <= s.Radius*s.Radius
	case Cylinder2:
		rel := v2.Vec{X: pt.X, Y: pt.Y}.Sub(s.Origin)
		frame := s.Rotation()
		t := rel.Dot(frame.Dir)
		return t >= 0 && t <= s.Height() && math.Abs(rel.Dot(frame.Perp)) <= s.Radius/2
	case Pyramid:
		z := pt.Z - s.Middle.Z
		if z < 0 || z > s.Length {
			return false
		}
		half := s.Width / 2 * (1 - z/s.Length)
		return math.Abs(pt.X-s.Middle.X) <= half && math.Abs(pt.Y-s.Middle.Y) <= half
	case Rect:
		lo, hi := s.Minimum(), s.Maximum()
		return pt.X >= lo.X && pt.X <= hi.X && pt.Y >= lo.Y && pt.Y <= hi.Y
	case Box:
		lo, hi := s.Minimum(), s.Maximum()
		return pt.X >= lo.X && pt.X <= hi.X &&
			pt.Y >= lo.Y && pt.Y <= hi.Y &&
			pt.Z >= lo.Z && pt.Z <= hi.Z
	}
	return false
}
