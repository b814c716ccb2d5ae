// Package primitive defines the analytic shapes that can be discretized into
// meshes. Primitive is a closed set: every case lives in this package and
// carries only its own fields. Values are immutable; derived quantities such
// as a cylinder's direction are computed from the fields on demand.
package primitive

import (
	"errors"
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var (
	// ErrInvalidRadius is returned for non-positive or non-finite radii.
	ErrInvalidRadius = errors.New("radius must be positive and finite")
	// ErrDegenerate is returned for shapes that collapse to zero extent.
	ErrDegenerate = errors.New("degenerate primitive")
)

// Kind identifies the case of a Primitive.
type Kind int

const (
	KindSphere    Kind = iota // 3D ball
	KindCircle                // 2D disc
	KindCylinder              // 3D cylinder between two points
	KindCylinder2             // 2D cylinder, a rotated rectangle
	KindQuad                  // planar parallelogram
	KindPyramid               // square-based pyramid
	KindParticle              // point with velocity
	KindRect                  // 2D axis-aligned rectangle
	KindBox                   // 3D axis-aligned box
)

var kindNames = [...]string{
	KindSphere:    "sphere",
	KindCircle:    "circle",
	KindCylinder:  "cylinder",
	KindCylinder2: "cylinder2",
	KindQuad:      "quad",
	KindPyramid:   "pyramid",
	KindParticle:  "particle",
	KindRect:      "rect",
	KindBox:       "box",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Primitive is one of Sphere, Circle, Cylinder, Cylinder2, Quad, Pyramid,
// Particle, Rect or Box.
type Primitive interface {
	Kind() Kind
	// Validate reports whether the fields describe a non-degenerate shape.
	Validate() error
	primitive()
}

// Sphere is a ball around Center.
type Sphere struct {
	Center v3.Vec
	Radius float64
}

// Circle is a disc around Center.
type Circle struct {
	Center v2.Vec
	Radius float64
}

// Cylinder spans from Origin to Extremity with the given Radius.
type Cylinder struct {
	Origin    v3.Vec
	Extremity v3.Vec
	Radius    float64
}

// Cylinder2 is the planar cylinder: a rectangle of width Radius centered on
// the segment Origin-Extremity.
type Cylinder2 struct {
	Origin    v2.Vec
	Extremity v2.Vec
	Radius    float64
}

// Quad is the parallelogram spanned by Width and Height from Corner.
type Quad struct {
	Corner v3.Vec
	Width  v3.Vec
	Height v3.Vec
}

// Pyramid has a square base of side Width centered on Middle and its apex
// Length above Middle along +Z.
type Pyramid struct {
	Middle v3.Vec
	Length float64
	Width  float64
}

// Particle is a point with a velocity.
type Particle struct {
	Position v3.Vec
	Velocity v3.Vec
}

// Rect is the axis-aligned rectangle [Origin, Origin+Widths].
type Rect struct {
	Origin v2.Vec
	Widths v2.Vec
}

// Box is the axis-aligned box [Origin, Origin+Widths].
type Box struct {
	Origin v3.Vec
	Widths v3.Vec
}

func (Sphere) Kind() Kind    { return KindSphere }
func (Circle) Kind() Kind    { return KindCircle }
func (Cylinder) Kind() Kind  { return KindCylinder }
func (Cylinder2) Kind() Kind { return KindCylinder2 }
func (Quad) Kind() Kind      { return KindQuad }
func (Pyramid) Kind() Kind   { return KindPyramid }
func (Particle) Kind() Kind  { return KindParticle }
func (Rect) Kind() Kind      { return KindRect }
func (Box) Kind() Kind       { return KindBox }

func (Sphere) primitive()    {}
func (Circle) primitive()    {}
func (Cylinder) primitive()  {}
func (Cylinder2) primitive() {}
func (Quad) primitive()      {}
func (Pyramid) primitive()   {}
func (Particle) primitive()  {}
func (Rect) primitive()      {}
func (Box) primitive()       {}

// Compile-time interface checks.
var (
	_ Primitive = Sphere{}
	_ Primitive = Circle{}
	_ Primitive = Cylinder{}
	_ Primitive = Cylinder2{}
	_ Primitive = Quad{}
	_ Primitive = Pyramid{}
	_ Primitive = Particle{}
	_ Primitive = Rect{}
	_ Primitive = Box{}
)

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func validRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, r)
	}
	return nil
}

func finite3(v v3.Vec) bool {
	return !math.IsNaN(v.X+v.Y+v.Z) && !math.IsInf(v.X+v.Y+v.Z, 0)
}

func finite2(v v2.Vec) bool {
	return !math.IsNaN(v.X+v.Y) && !math.IsInf(v.X+v.Y, 0)
}

func (s Sphere) Validate() error {
	if !finite3(s.Center) {
		return fmt.Errorf("sphere: %w: center %v is not finite", ErrDegenerate, s.Center)
	}
	if err := validRadius(s.Radius); err != nil {
		return fmt.Errorf("sphere: %w", err)
	}
	return nil
}

func (c Circle) Validate() error {
	if !finite2(c.Center) {
		return fmt.Errorf("circle: %w: center %v is not finite", ErrDegenerate, c.Center)
	}
	if err := validRadius(c.Radius); err != nil {
		return fmt.Errorf("circle: %w", err)
	}
	return nil
}

func (c Cylinder) Validate() error {
	if err := validRadius(c.Radius); err != nil {
		return fmt.Errorf("cylinder: %w", err)
	}
	if !finite3(c.Origin) || !finite3(c.Extremity) {
		return fmt.Errorf("cylinder: %w: endpoints are not finite", ErrDegenerate)
	}
	if c.Height() == 0 {
		return fmt.Errorf("cylinder: %w: zero length between %v and %v", ErrDegenerate, c.Origin, c.Extremity)
	}
	return nil
}

func (c Cylinder2) Validate() error {
	if err := validRadius(c.Radius); err != nil {
		return fmt.Errorf("cylinder2: %w", err)
	}
	if !finite2(c.Origin) || !finite2(c.Extremity) {
		return fmt.Errorf("cylinder2: %w: endpoints are not finite", ErrDegenerate)
	}
	if c.Height() == 0 {
		return fmt.Errorf("cylinder2: %w: zero length between %v and %v", ErrDegenerate, c.Origin, c.Extremity)
	}
	return nil
}

func (q Quad) Validate() error {
	if !finite3(q.Corner) || !finite3(q.Width) || !finite3(q.Height) {
		return fmt.Errorf("quad: %w: fields are not finite", ErrDegenerate)
	}
	if q.Width.Cross(q.Height).Length() == 0 {
		return fmt.Errorf("quad: %w: width %v and height %v are parallel", ErrDegenerate, q.Width, q.Height)
	}
	return nil
}

func (p Pyramid) Validate() error {
	if !finite3(p.Middle) {
		return fmt.Errorf("pyramid: %w: middle is not finite", ErrDegenerate)
	}
	if !(p.Length > 0) || !(p.Width > 0) || math.IsInf(p.Length, 0) || math.IsInf(p.Width, 0) {
		return fmt.Errorf("pyramid: %w: length %g, width %g", ErrDegenerate, p.Length, p.Width)
	}
	return nil
}

func (p Particle) Validate() error {
	if !finite3(p.Position) || !finite3(p.Velocity) {
		return fmt.Errorf("particle: %w: fields are not finite", ErrDegenerate)
	}
	return nil
}

func (r Rect) Validate() error {
	if !finite2(r.Origin) || !finite2(r.Widths) {
		return fmt.Errorf("rect: %w: fields are not finite", ErrDegenerate)
	}
	if !(r.Widths.X > 0) || !(r.Widths.Y > 0) {
		return fmt.Errorf("rect: %w: widths %v", ErrDegenerate, r.Widths)
	}
	return nil
}

func (b Box) Validate() error {
	if !finite3(b.Origin) || !finite3(b.Widths) {
		return fmt.Errorf("box: %w: fields are not finite", ErrDegenerate)
	}
	if !(b.Widths.X > 0) || !(b.Widths.Y > 0) || !(b.Widths.Z > 0) {
		return fmt.Errorf("box: %w: widths %v", ErrDegenerate, b.Widths)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewSphere returns a validated Sphere.
func NewSphere(center v3.Vec, radius float64) (Sphere, error) {
	s := Sphere{Center: center, Radius: radius}
	return s, s.Validate()
}

// NewCircle returns a validated Circle.
func NewCircle(center v2.Vec, radius float64) (Circle, error) {
	c := Circle{Center: center, Radius: radius}
	return c, c.Validate()
}

// NewCylinder returns a validated Cylinder. Zero-length cylinders are
// rejected with ErrDegenerate.
func NewCylinder(origin, extremity v3.Vec, radius float64) (Cylinder, error) {
	c := Cylinder{Origin: origin, Extremity: extremity, Radius: radius}
	return c, c.Validate()
}

// NewCylinder2 returns a validated Cylinder2.
func NewCylinder2(origin, extremity v2.Vec, radius float64) (Cylinder2, error) {
	c := Cylinder2{Origin: origin, Extremity: extremity, Radius: radius}
	return c, c.Validate()
}

// NewQuad returns a validated Quad.
func NewQuad(corner, width, height v3.Vec) (Quad, error) {
	q := Quad{Corner: corner, Width: width, Height: height}
	return q, q.Validate()
}

// NewPyramid returns a validated Pyramid.
func NewPyramid(middle v3.Vec, length, width float64) (Pyramid, error) {
	p := Pyramid{Middle: middle, Length: length, Width: width}
	return p, p.Validate()
}

// NewParticle returns a validated Particle.
func NewParticle(position, velocity v3.Vec) (Particle, error) {
	p := Particle{Position: position, Velocity: velocity}
	return p, p.Validate()
}

// NewRect returns a validated Rect.
func NewRect(origin, widths v2.Vec) (Rect, error) {
	r := Rect{Origin: origin, Widths: widths}
	return r, r.Validate()
}

// NewBox returns a validated Box.
func NewBox(origin, widths v3.Vec) (Box, error) {
	b := Box{Origin: origin, Widths: widths}
	return b, b.Validate()
}
