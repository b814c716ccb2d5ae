package primitive

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Basis is an orthonormal frame given by its three columns. Apply maps local
// coordinates (x, y, z) to x*V + y*W + z*U.
type Basis struct {
	V, W, U v3.Vec
}

// Apply maps p from the local frame into world orientation.
func (b Basis) Apply(p v3.Vec) v3.Vec {
	return b.V.MulScalar(p.X).Add(b.W.MulScalar(p.Y)).Add(b.U.MulScalar(p.Z))
}

// Basis2 is the planar frame of a Cylinder2: Perp across the cylinder and
// Dir along it.
type Basis2 struct {
	Perp, Dir v2.Vec
}

// Apply maps p to p.X*Perp + p.Y*Dir.
func (b Basis2) Apply(p v2.Vec) v2.Vec {
	return b.Perp.MulScalar(p.X).Add(b.Dir.MulScalar(p.Y))
}

// Height is the distance between origin and extremity.
func (c Cylinder) Height() float64 {
	return c.Extremity.Sub(c.Origin).Length()
}

// Direction is the unit vector from origin to extremity. A zero-length
// cylinder has no direction and yields the zero vector.
func (c Cylinder) Direction() v3.Vec {
	d := c.Extremity.Sub(c.Origin)
	l := d.Length()
	if l == 0 {
		return v3.Vec{}
	}
	return d.MulScalar(1 / l)
}

// Rotation returns a frame whose U column is the cylinder direction. The
// first column is seeded perpendicular to U: (u.y, -u.x, 0) unless U lies on
// the Z axis, where (0, -u.z, u.y) is used instead. W = U x V completes the
// right-handed frame.
func (c Cylinder) Rotation() Basis {
	u := c.Direction()
	var v v3.Vec
	if math.Abs(u.X) > 0 || math.Abs(u.Y) > 0 {
		v = v3.Vec{X: u.Y, Y: -u.X, Z: 0}
	} else {
		v = v3.Vec{X: 0, Y: -u.Z, Z: u.Y}
	}
	if l := v.Length(); l > 0 {
		v = v.MulScalar(1 / l)
	}
	return Basis{V: v, W: u.Cross(v), U: u}
}

// Center is the midpoint of the axis.
func (c Cylinder) Center() v3.Vec {
	return c.Origin.Add(c.Extremity).MulScalar(0.5)
}

// Height is the distance between origin and extremity.
func (c Cylinder2) Height() float64 {
	return c.Extremity.Sub(c.Origin).Length()
}

// Direction is the unit vector from origin to extremity, or zero for a
// zero-length cylinder.
func (c Cylinder2) Direction() v2.Vec {
	d := c.Extremity.Sub(c.Origin)
	l := d.Length()
	if l == 0 {
		return v2.Vec{}
	}
	return d.MulScalar(1 / l)
}

// Rotation returns the planar frame with Dir along the axis and Perp = (d.y, -d.x).
func (c Cylinder2) Rotation() Basis2 {
	d := c.Direction()
	return Basis2{Perp: v2.Vec{X: d.Y, Y: -d.X}, Dir: d}
}

// Corners returns the four corners of the rectangle in counter-clockwise
// order starting at the origin side.
func (c Cylinder2) Corners() [4]v2.Vec {
	half := c.Rotation().Perp.MulScalar(c.Radius / 2)
	return [4]v2.Vec{
		c.Origin.Sub(half),
		c.Origin.Add(half),
		c.Extremity.Add(half),
		c.Extremity.Sub(half),
	}
}
