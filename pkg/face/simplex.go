package face

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices is returned when a face has fewer vertices than the
// requested simplex needs.
var ErrTooFewVertices = errors.New("face has too few vertices")

// Triangulate fans f from its first vertex. An N-gon (v0..vN-1) yields the
// N-2 triangles (v0, v[i-1], v[i]) for i = 2..N-1, in that order.
func Triangulate(f Face) ([]Triangle, error) {
	idx := f.Indices()
	n := len(idx)
	if n < 3 {
		return nil, fmt.Errorf("triangulate %d-gon: %w", n, ErrTooFewVertices)
	}
	out := make([]Triangle, 0, n-2)
	for i := 2; i < n; i++ {
		out = append(out, Triangle{idx[0], idx[i-1], idx[i]})
	}
	return out, nil
}

// Edges returns the closed edge cycle of f: (v[i], v[i+1]) for i = 0..N-2
// followed by (v[N-1], v0).
func Edges(f Face) ([]Line, error) {
	idx := f.Indices()
	n := len(idx)
	if n < 2 {
		return nil, fmt.Errorf("edges of %d-gon: %w", n, ErrTooFewVertices)
	}
	out := make([]Line, 0, n)
	for i := 0; i < n-1; i++ {
		out = append(out, Line{idx[i], idx[i+1]})
	}
	return append(out, Line{idx[n-1], idx[0]}), nil
}

// ToTriangles converts f into triangles. A Triangle converts to itself.
func ToTriangles(f Face) ([]Triangle, error) {
	if t, ok := f.(Triangle); ok {
		return []Triangle{t}, nil
	}
	return Triangulate(f)
}

// ToLines converts f into line segments. A Line converts to itself; every
// other face yields its closed edge cycle.
func ToLines(f Face) ([]Line, error) {
	if l, ok := f.(Line); ok {
		return []Line{l}, nil
	}
	return Edges(f)
}
