package tessellate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/chazu/meshprim/pkg/kernel"
	"github.com/chazu/meshprim/pkg/kernel/parametric"
	"github.com/chazu/meshprim/pkg/kernel/sdfx"
	"github.com/chazu/meshprim/pkg/primitive"
	"github.com/chazu/meshprim/pkg/tessellate"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// newKernel returns a fresh parametric kernel for testing.
func newKernel() kernel.Kernel {
	return parametric.New(parametric.DefaultOptions())
}

func TestEmpty(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected no meshes, got %d", len(meshes))
	}
}

func TestSinglePart(t *testing.T) {
	parts := []tessellate.Part{
		{Name: "ball", Shape: primitive.Sphere{Radius: 1}, Resolution: 8},
	}
	meshes, err := tessellate.Tessellate(parts, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}

	m := meshes[0]
	if m.Name != "ball" {
		t.Errorf("expected Name %q, got %q", "ball", m.Name)
	}
	if m.VertexCount() != 64 {
		t.Errorf("expected 64 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 2*7*7 {
		t.Errorf("expected %d triangles, got %d", 2*7*7, m.TriangleCount())
	}
}

func TestPartsKeepOrderAndNames(t *testing.T) {
	parts := []tessellate.Part{
		{Name: "leg", Shape: primitive.Cylinder{Extremity: v3.Vec{Z: 4}, Radius: 0.2}},
		{Shape: primitive.Box{Widths: v3.Vec{X: 1, Y: 1, Z: 1}}},
		{Shape: primitive.Rect{Widths: v2.Vec{X: 2, Y: 1}}, Resolution: 3},
		{Name: "roof", Shape: primitive.Pyramid{Length: 1, Width: 2}},
	}
	meshes, err := tessellate.Tessellate(parts, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	want := []string{"leg", "box-1", "rect-2", "roof"}
	if len(meshes) != len(want) {
		t.Fatalf("expected %d meshes, got %d", len(want), len(meshes))
	}
	for i, m := range meshes {
		if m.Name != want[i] {
			t.Errorf("mesh %d: expected Name %q, got %q", i, want[i], m.Name)
		}
		if m.IsEmpty() {
			t.Errorf("mesh %d should not be empty", i)
		}
	}
	if got := meshes[2].VertexCount(); got != 9 {
		t.Errorf("rect at resolution 3: expected 9 vertices, got %d", got)
	}
}

func TestErrorNamesPart(t *testing.T) {
	parts := []tessellate.Part{
		{Name: "ok", Shape: primitive.Sphere{Radius: 1}, Resolution: 4},
		{Name: "flat", Shape: primitive.Cylinder{Radius: 1}},
	}
	_, err := tessellate.Tessellate(parts, newKernel())
	if err == nil {
		t.Fatal("expected error for zero-length cylinder")
	}
	if !errors.Is(err, primitive.ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
	if !strings.Contains(err.Error(), "flat") {
		t.Errorf("error %q should name the part", err)
	}
}

func TestMissingShape(t *testing.T) {
	_, err := tessellate.Tessellate([]tessellate.Part{{}}, newKernel())
	if err == nil || !strings.Contains(err.Error(), "part-0") {
		t.Fatalf("expected error naming part-0, got %v", err)
	}
}

func TestUnsupportedByKernel(t *testing.T) {
	parts := []tessellate.Part{{Shape: primitive.Circle{Radius: 1}}}
	_, err := tessellate.Tessellate(parts, sdfx.New(8))
	if !errors.Is(err, kernel.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if !strings.Contains(err.Error(), "circle-0") {
		t.Errorf("error %q should name the part", err)
	}
}

func TestSdfxKernelPart(t *testing.T) {
	parts := []tessellate.Part{
		{Name: "block", Shape: primitive.Box{Origin: v3.Vec{X: 200, Y: 100, Z: 50}, Widths: v3.Vec{X: 100, Y: 50, Z: 10}}, Resolution: 20},
	}
	meshes, err := tessellate.Tessellate(parts, sdfx.New(0))
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	m := meshes[0]
	if m.Name != "block" {
		t.Errorf("expected Name %q, got %q", "block", m.Name)
	}

	// A 100x50x10 box with its min corner at (200,100,50) has its centroid
	// near (250, 125, 55).
	var cx, cy, cz float64
	n := m.VertexCount()
	for i := 0; i < n; i++ {
		v := m.Vertex(i)
		cx += v.X
		cy += v.Y
		cz += v.Z
	}
	cx /= float64(n)
	cy /= float64(n)
	cz /= float64(n)

	// Use a generous tolerance since marching cubes is approximate.
	const tol = 20.0
	if abs(cx-250) > tol {
		t.Errorf("centroid X = %.1f, expected near 250", cx)
	}
	if abs(cy-125) > tol {
		t.Errorf("centroid Y = %.1f, expected near 125", cy)
	}
	if abs(cz-55) > tol {
		t.Errorf("centroid Z = %.1f, expected near 55", cz)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		part  tessellate.Part
		index int
		want  string
	}{
		{tessellate.Part{Name: "named"}, 3, "named"},
		{tessellate.Part{Shape: primitive.Particle{}}, 0, "particle-0"},
		{tessellate.Part{Shape: primitive.Quad{}}, 7, "quad-7"},
		{tessellate.Part{}, 2, "part-2"},
	}
	for _, tt := range tests {
		if got := tt.part.Label(tt.index); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
