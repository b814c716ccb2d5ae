// Package kernel defines the abstract geometry kernel interface.
// A kernel turns a primitive into a flat triangle mesh. The parametric
// kernel samples the primitive's surface directly; the sdfx kernel renders
// its signed distance field with marching cubes. Callers pick one without
// changing the rest of the system.
package kernel

import (
	"errors"

	"github.com/chazu/meshprim/pkg/mesh"
	"github.com/chazu/meshprim/pkg/primitive"
)

// ErrUnsupported is returned when a kernel cannot represent a primitive.
var ErrUnsupported = errors.New("primitive not supported by kernel")

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Name identifies the backend, e.g. "parametric" or "sdfx".
	Name() string

	// Tessellate builds a triangle mesh for p. res is the backend's
	// resolution knob; zero or less selects the backend's default.
	Tessellate(p primitive.Primitive, res int) (*mesh.Mesh, error)
}
