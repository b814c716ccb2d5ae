// Package tessellate turns a list of named parts into triangle meshes using
// a geometry kernel. One mesh is produced per part, in input order.
package tessellate

import (
	"fmt"
	"time"

	"github.com/chazu/meshprim/internal/logger"
	"github.com/chazu/meshprim/pkg/kernel"
	"github.com/chazu/meshprim/pkg/mesh"
	"github.com/chazu/meshprim/pkg/primitive"
	"go.uber.org/zap"
)

// Part is one primitive to tessellate. Resolution is passed through to the
// kernel; zero selects the kernel's default.
type Part struct {
	Name       string              `json:"name"`
	Shape      primitive.Primitive `json:"-"`
	Resolution int                 `json:"resolution,omitempty"`
}

// Label returns the part's name, falling back to "<kind>-<index>".
func (p Part) Label(index int) string {
	if p.Name != "" {
		return p.Name
	}
	if p.Shape == nil {
		return fmt.Sprintf("part-%d", index)
	}
	return fmt.Sprintf("%s-%d", p.Shape.Kind(), index)
}

// Tessellate produces one triangle mesh per part using the provided
// geometry kernel. Each mesh is named after its part. The first failing
// part aborts the run.
func Tessellate(parts []Part, k kernel.Kernel) ([]*mesh.Mesh, error) {
	if len(parts) == 0 {
		return nil, nil
	}
	log := logger.Named("tessellate").With(zap.String("kernel", k.Name()))

	meshes := make([]*mesh.Mesh, 0, len(parts))
	for i, p := range parts {
		name := p.Label(i)
		if p.Shape == nil {
			return nil, fmt.Errorf("tessellate: part %s has no shape", name)
		}

		start := time.Now()
		m, err := k.Tessellate(p.Shape, p.Resolution)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %s: %w", name, err)
		}
		m.Name = name

		log.Debug("part tessellated",
			zap.String("part", name),
			zap.Stringer("kind", p.Shape.Kind()),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("triangles", m.TriangleCount()),
			zap.Duration("elapsed", time.Since(start)),
		)
		meshes = append(meshes, m)
	}
	return meshes, nil
}
