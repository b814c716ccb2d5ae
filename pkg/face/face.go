// Package face defines index tuples into a vertex array and converts faces
// of one arity into simplices of another. Indices are 0-based.
package face

import (
	"errors"
	"fmt"
)

// ErrInvalidFace is returned by Validate for faces with out-of-range or
// repeated indices.
var ErrInvalidFace = errors.New("invalid face")

// Face is an ordered tuple of vertex indices.
type Face interface {
	// Indices returns the vertex indices in winding order.
	Indices() []int
}

// Line is a two-index segment.
type Line [2]int

// Triangle is a three-index face.
type Triangle [3]int

// Quad is a four-index face.
type Quad [4]int

// NGon is a face of arbitrary arity.
type NGon []int

func (l Line) Indices() []int     { return l[:] }
func (t Triangle) Indices() []int { return t[:] }
func (q Quad) Indices() []int     { return q[:] }
func (n NGon) Indices() []int     { return n }

// Compile-time interface checks.
var (
	_ Face = Line{}
	_ Face = Triangle{}
	_ Face = Quad{}
	_ Face = NGon(nil)
)

// Arity returns the number of indices in f.
func Arity(f Face) int {
	return len(f.Indices())
}

// Validate checks that every index of f lies in [0, nverts) and that no
// index repeats within the face.
func Validate(f Face, nverts int) error {
	idx := f.Indices()
	for i, v := range idx {
		if v < 0 || v >= nverts {
			return fmt.Errorf("%w: index %d at position %d outside [0, %d)", ErrInvalidFace, v, i, nverts)
		}
		for _, w := range idx[:i] {
			if w == v {
				return fmt.Errorf("%w: index %d repeats", ErrInvalidFace, v)
			}
		}
	}
	return nil
}
