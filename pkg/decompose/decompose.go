// Package decompose turns primitives into vertex coordinates, texture
// coordinates and faces. Every function is pure: the same primitive and
// resolution always produce the same freshly allocated buffers.
//
// Coordinate and face generators for a primitive are meant to be zipped:
// face indices are 0-based positions into the coordinate slice produced at
// the same resolution.
package decompose

import (
	"errors"
	"fmt"
)

// ErrResolution is returned when a resolution is too small to describe the
// requested shape or too large to allocate.
var ErrResolution = errors.New("resolution too small")

// Default resolutions used when a caller passes zero.
const (
	DefaultSphereResolution = 24
	DefaultCircleResolution = 64
	DefaultCylinderFacets   = 30
	DefaultRectResolution   = 2
	MinCylinderFacets       = 8
	minGridResolution       = 2
	minCircleResolution     = 4
)

// Upper bounds on resolution. A grid holds nx*ny points, so its per-axis
// limit is much lower than the linear ones.
const (
	MaxGridResolution   = 2048
	MaxCircleResolution = 1 << 20
	MaxCylinderFacets   = 1 << 20
)

func orDefault(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}

func checkRange(what string, n, least, most int) error {
	if n < least {
		return fmt.Errorf("%s resolution %d, need at least %d: %w", what, n, least, ErrResolution)
	}
	if n > most {
		return fmt.Errorf("%s resolution %d, at most %d allowed: %w", what, n, most, ErrResolution)
	}
	return nil
}

// linspace returns n samples evenly spaced over [a, b] with both endpoints
// exact.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	out[n-1] = b
	return out
}
