package decompose

import (
	"fmt"

	"github.com/chazu/meshprim/pkg/face"
	"github.com/chazu/meshprim/pkg/primitive"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// gridIndex is the position of grid vertex (i, j) in an nx by ny grid laid
// out with i outer and j inner.
func gridIndex(i, j, ny int) int {
	return i*ny + j
}

// RectCoordinates samples r on an nx by ny grid. X is the outer loop and Y
// the inner one, so vertex (i, j) lands at index i*ny+j. Zero selects
// DefaultRectResolution.
func RectCoordinates(r primitive.Rect, nx, ny int) ([]v2.Vec, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	nx, ny = orDefault(nx, DefaultRectResolution), orDefault(ny, DefaultRectResolution)
	if err := checkGrid(nx, ny); err != nil {
		return nil, err
	}
	lo, hi := r.Minimum(), r.Maximum()
	xs := linspace(lo.X, hi.X, nx)
	ys := linspace(lo.Y, hi.Y, ny)
	out := make([]v2.Vec, 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, v2.Vec{X: x, Y: y})
		}
	}
	return out, nil
}

// GridFaces returns the (nx-1)*(ny-1) quads of an nx by ny grid, each wound
// (i,j), (i+1,j), (i+1,j+1), (i,j+1). With X outer and Y inner that is
// counter-clockwise seen from +Z.
func GridFaces(nx, ny int) ([]face.Quad, error) {
	nx, ny = orDefault(nx, DefaultRectResolution), orDefault(ny, DefaultRectResolution)
	if err := checkGrid(nx, ny); err != nil {
		return nil, err
	}
	out := make([]face.Quad, 0, (nx-1)*(ny-1))
	for i := 0; i < nx-1; i++ {
		for j := 0; j < ny-1; j++ {
			out = append(out, face.Quad{
				gridIndex(i, j, ny),
				gridIndex(i+1, j, ny),
				gridIndex(i+1, j+1, ny),
				gridIndex(i, j+1, ny),
			})
		}
	}
	return out, nil
}

// GridUVs returns texture coordinates of an nx by ny grid over the unit
// square, in the same order as RectCoordinates.
func GridUVs(nx, ny int) ([]v2.Vec, error) {
	return RectCoordinates(primitive.Rect{Widths: v2.Vec{X: 1, Y: 1}}, nx, ny)
}

func checkGrid(nx, ny int) error {
	if nx < minGridResolution || ny < minGridResolution {
		return fmt.Errorf("grid %dx%d, need at least %dx%d: %w", nx, ny, minGridResolution, minGridResolution, ErrResolution)
	}
	if nx > MaxGridResolution || ny > MaxGridResolution {
		return fmt.Errorf("grid %dx%d, at most %dx%d allowed: %w", nx, ny, MaxGridResolution, MaxGridResolution, ErrResolution)
	}
	return nil
}
