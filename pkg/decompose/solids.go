package decompose

import (
	"github.com/chazu/meshprim/pkg/face"
	"github.com/chazu/meshprim/pkg/primitive"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ---------------------------------------------------------------------------
// Quad
// ---------------------------------------------------------------------------

// QuadCoordinates returns corner, corner+width, corner+width+height and
// corner+height, wound counter-clockwise around width x height.
func QuadCoordinates(q primitive.Quad) ([]v3.Vec, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	k := q.Corners()
	return k[:], nil
}

// QuadFaces is the single quad over QuadCoordinates.
func QuadFaces() []face.Quad {
	return []face.Quad{{0, 1, 2, 3}}
}

// QuadUVs maps the corners onto the unit square.
func QuadUVs() []v2.Vec {
	return []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// QuadNormals repeats the quad's unit normal for each corner.
func QuadNormals(q primitive.Quad) []v3.Vec {
	n := q.Normal()
	return []v3.Vec{n, n, n, n}
}

// ---------------------------------------------------------------------------
// Pyramid
// ---------------------------------------------------------------------------

// PyramidVertexCount is the fixed size of a pyramid mesh.
const PyramidVertexCount = 18

// PyramidCoordinates returns the 18 vertices of the pyramid's six
// triangles: four sides then two base triangles, each wound outward. The
// shape has no tessellation parameter.
func PyramidCoordinates(p primitive.Pyramid) ([]v3.Vec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h := p.Width / 2
	tip := p.Apex()
	lu := p.Middle.Add(v3.Vec{X: -h, Y: h})
	ru := p.Middle.Add(v3.Vec{X: h, Y: h})
	rd := p.Middle.Add(v3.Vec{X: h, Y: -h})
	ld := p.Middle.Add(v3.Vec{X: -h, Y: -h})
	return []v3.Vec{
		tip, rd, ru,
		tip, ru, lu,
		tip, lu, ld,
		tip, ld, rd,
		rd, lu, ru,
		lu, rd, ld,
	}, nil
}

// PyramidFaces returns the consecutive triples (0,1,2) ... (15,16,17).
func PyramidFaces() []face.Triangle {
	out := make([]face.Triangle, 0, PyramidVertexCount/3)
	for i := 0; i < PyramidVertexCount; i += 3 {
		out = append(out, face.Triangle{i, i + 1, i + 2})
	}
	return out
}

// ---------------------------------------------------------------------------
// Box
// ---------------------------------------------------------------------------

// boxCorner picks a corner of b by choosing min (0) or max (1) per axis.
func boxCorner(b primitive.Box, x, y, z int) v3.Vec {
	lo, hi := b.Minimum(), b.Maximum()
	pick := func(sel int, l, h float64) float64 {
		if sel == 0 {
			return l
		}
		return h
	}
	return v3.Vec{X: pick(x, lo.X, hi.X), Y: pick(y, lo.Y, hi.Y), Z: pick(z, lo.Z, hi.Z)}
}

// boxSides lists each side's corners counter-clockwise seen from outside:
// -X, +X, -Y, +Y, -Z, +Z.
var boxSides = [6][4][3]int{
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
}

// BoxCoordinates returns 24 vertices, four per side, so each side can carry
// its own normal and texture coordinates.
func BoxCoordinates(b primitive.Box) ([]v3.Vec, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	out := make([]v3.Vec, 0, 24)
	for _, side := range boxSides {
		for _, c := range side {
			out = append(out, boxCorner(b, c[0], c[1], c[2]))
		}
	}
	return out, nil
}

// BoxFaces returns one outward quad per side.
func BoxFaces() []face.Quad {
	out := make([]face.Quad, 0, len(boxSides))
	for s := range boxSides {
		o := 4 * s
		out = append(out, face.Quad{o, o + 1, o + 2, o + 3})
	}
	return out
}

// BoxUVs maps every side onto the unit square.
func BoxUVs() []v2.Vec {
	out := make([]v2.Vec, 0, 24)
	for range boxSides {
		out = append(out, QuadUVs()...)
	}
	return out
}

// ---------------------------------------------------------------------------
// Particle
// ---------------------------------------------------------------------------

// ParticleCoordinates returns the particle's position. A particle has no
// faces.
func ParticleCoordinates(p primitive.Particle) ([]v3.Vec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []v3.Vec{p.Position}, nil
}
