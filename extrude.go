package dialmesh

import "math"

// Vertex is a point in mesh space, millimeters.
type Vertex struct {
	X, Y, Z float64
}

// Triangle is a single mesh face. Winding determines the normal by the
// right-hand rule.
type Triangle [3]Vertex

// TriangleMesh is a flat list of triangles. A correctly extruded solid
// is a closed manifold: every edge is shared by exactly two triangles
// with opposite winding. The one exception is the empty-mesh sentinel
// from EmptyMesh, a single zero-area triangle signalling an
// unrenderable label without raising an error.
type TriangleMesh []Triangle

// EmptyMesh returns the degenerate single-triangle sentinel used where
// a label produced no usable geometry.
func EmptyMesh() TriangleMesh {
	return TriangleMesh{Triangle{}}
}

// IsEmptySentinel reports whether the mesh is the EmptyMesh sentinel.
func (m TriangleMesh) IsEmptySentinel() bool {
	return len(m) == 1 && m[0] == Triangle{}
}

// Bounds returns the axis-aligned bounding box of the mesh as min and
// max corners. A nil mesh returns zero corners.
func (m TriangleMesh) Bounds() (min, max Vertex) {
	if len(m) == 0 {
		return Vertex{}, Vertex{}
	}
	min = m[0][0]
	max = m[0][0]
	for _, tri := range m {
		for _, v := range tri {
			min.X = math.Min(min.X, v.X)
			min.Y = math.Min(min.Y, v.Y)
			min.Z = math.Min(min.Z, v.Z)
			max.X = math.Max(max.X, v.X)
			max.Y = math.Max(max.Y, v.Y)
			max.Z = math.Max(max.Z, v.Z)
		}
	}
	return min, max
}

// Concat combines meshes by concatenation. Solids may overlap or touch;
// they are never welded or boolean-unioned.
func Concat(meshes ...TriangleMesh) TriangleMesh {
	total := 0
	for _, m := range meshes {
		total += len(m)
	}
	combined := make(TriangleMesh, 0, total)
	for _, m := range meshes {
		combined = append(combined, m...)
	}
	return combined
}

// ExtrudeGroups extrudes triangulated ring groups into a closed solid
// of the given depth.
//
// Per group: the cap triangulation is emitted twice, a top cap at
// z=depth preserving winding (normal +Z) and a bottom cap at z=0 with
// reversed winding (normal -Z). Then each ring - the outer boundary and
// every hole independently - contributes a wall quad per consecutive
// point pair, split into the triangles (b_i, b_i+1, t_i) and
// (b_i+1, t_i+1, t_i). Walls are per-ring so holes get their own
// inward-facing geometry; a hole without walls would read as an open
// shaft through the solid.
//
// A non-positive depth or a group set with no usable rings yields the
// EmptyMesh sentinel. A group that fails triangulation is logged and
// skipped; the remaining groups still extrude.
func ExtrudeGroups(groups []RingGroup, depth float64) TriangleMesh {
	if depth <= 0 || len(groups) == 0 {
		return EmptyMesh()
	}

	var mesh TriangleMesh

	for _, group := range groups {
		indices, points, err := TriangulateRings(group)
		if err != nil {
			Logger().Warn("skipping component", "error", err)
			continue
		}

		bottom := make([]Vertex, len(points))
		top := make([]Vertex, len(points))
		for i, p := range points {
			bottom[i] = Vertex{X: p.X, Y: p.Y, Z: 0}
			top[i] = Vertex{X: p.X, Y: p.Y, Z: depth}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			mesh = append(mesh,
				Triangle{top[a], top[b], top[c]},
				Triangle{bottom[c], bottom[b], bottom[a]},
			)
		}

		offset := 0
		for _, ring := range group {
			n := len(ring)
			if n < 3 {
				continue
			}
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				bi, bj := bottom[offset+i], bottom[offset+j]
				ti, tj := top[offset+i], top[offset+j]
				mesh = append(mesh,
					Triangle{bi, bj, ti},
					Triangle{bj, tj, ti},
				)
			}
			offset += n
		}
	}

	if len(mesh) == 0 {
		return EmptyMesh()
	}
	return mesh
}
