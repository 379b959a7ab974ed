package dialmesh

import (
	"fmt"

	"github.com/rclancey/earcut"
)

// TriangulateRings triangulates a polygon-with-holes ring group using
// ear clipping.
//
// The group's rings are concatenated into one point slice (outer ring
// first, then each hole) and handed to earcut with the index at which
// each hole starts. The returned indices come in triples referencing
// the returned point slice; no new vertices are introduced.
//
// Triangulation failure (degenerate or self-intersecting input) is an
// error for this one component; callers log and skip the component
// rather than aborting the whole mesh.
func TriangulateRings(group RingGroup) ([]int, []Point, error) {
	var points []Point
	var holeStarts []int

	for i, ring := range group {
		if len(ring) < 3 {
			continue
		}
		if i > 0 && len(points) > 0 {
			holeStarts = append(holeStarts, len(points))
		}
		points = append(points, ring...)
	}

	if len(points) < 3 {
		return nil, nil, fmt.Errorf("triangulate: %d points, need at least 3", len(points))
	}

	// Flat coordinate array in the [x0, y0, x1, y1, ...] layout earcut
	// expects.
	coords := make([]float64, len(points)*2)
	for i, p := range points {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, holeStarts, 2)
	if err != nil {
		return nil, nil, fmt.Errorf("triangulate: %w", err)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, nil, fmt.Errorf("triangulate: got %d indices, want a positive multiple of 3", len(indices))
	}

	return indices, points, nil
}
