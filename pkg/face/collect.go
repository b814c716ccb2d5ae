package face

import "fmt"

// CollectTriangles converts every face to triangles and concatenates the
// results in input order.
func CollectTriangles[F Face](faces []F) ([]Triangle, error) {
	return collect(faces, ToTriangles)
}

// CollectLines converts every face to line segments and concatenates the
// results in input order.
func CollectLines[F Face](faces []F) ([]Line, error) {
	return collect(faces, ToLines)
}

func collect[F Face, S any](faces []F, convert func(Face) ([]S, error)) ([]S, error) {
	out := make([]S, 0, len(faces))
	for i, f := range faces {
		simplices, err := convert(f)
		if err != nil {
			return nil, fmt.Errorf("face %d (%d indices): %w", i, Arity(f), err)
		}
		out = append(out, simplices...)
	}
	return out, nil
}
