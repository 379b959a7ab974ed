package dialmesh

// Contour is an ordered sequence of points forming a closed polygonal
// approximation of part of a glyph outline. The first point logically
// connects to the last. Contours are value-like: every stage returns a
// new contour set and never mutates its input.
type Contour []Point

// SignedArea computes the contour's signed area using the shoelace
// formula. Positive area means counter-clockwise winding, which is the
// outer-boundary convention for glyph outlines.
func (c Contour) SignedArea() float64 {
	area := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		area += c[i].Cross(c[(i+1)%n])
	}
	return area / 2.0
}

// ContainsPoint reports whether p lies inside the contour, using the
// ray casting algorithm (a horizontal ray toward +X; odd crossing count
// means inside).
func (c Contour) ContainsPoint(p Point) bool {
	n := len(c)
	if n < 3 {
		return false
	}
	inside := false

	p1 := c[0]
	for i := 1; i <= n; i++ {
		p2 := c[i%n]
		if p.Y > min(p1.Y, p2.Y) && p.Y <= max(p1.Y, p2.Y) && p.X <= max(p1.X, p2.X) {
			var xInters float64
			if p1.Y != p2.Y {
				xInters = (p.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			}
			if p1.X == p2.X || p.X <= xInters {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// Curve flattening resolutions. Analysis paths (fitting, preview) use a
// finer subdivision than mesh-generation paths, where point count
// directly multiplies wall triangle count.
const (
	// AnalysisSegments is the default per-curve segment count for
	// fitting and preview extraction.
	AnalysisSegments = 20

	// MeshSegments is the default per-curve segment count for
	// extraction feeding mesh generation.
	MeshSegments = 5
)

// FlattenOptions controls curve flattening during contour extraction.
type FlattenOptions struct {
	// CurveSegments is the fixed number of straight segments each
	// Bezier curve is split into. Zero selects AnalysisSegments.
	CurveSegments int
}

func (o FlattenOptions) segments() int {
	if o.CurveSegments <= 0 {
		return AnalysisSegments
	}
	return o.CurveSegments
}

// ExtractContours converts a path-command stream into closed polygonal
// contours.
//
// MoveTo flushes any open contour and starts a new one. LineTo appends
// a point. QuadTo and CubicTo are flattened into opts.CurveSegments
// straight segments by evaluating the Bezier parametric formula at
// t = i/N for i = 1..N (quadratics are first raised to cubics). Close
// flushes the current contour, appending its first point again if the
// last point does not already equal it, so returned contours are
// explicitly closed.
//
// Every coordinate is multiplied by scale before being returned. A
// MoveTo immediately followed by Close yields a degenerate single-point
// contour; grouping skips anything below 3 points, so such contours
// never reach the mesh. Pure function of its inputs.
func ExtractContours(elements []PathElement, scale float64, opts FlattenOptions) []Contour {
	segments := opts.segments()

	var contours []Contour
	var current Contour
	var pen Point

	flush := func(closed bool) {
		if len(current) == 0 {
			current = nil
			return
		}
		if closed && current[0] != current[len(current)-1] {
			current = append(current, current[0])
		}
		contours = append(contours, current)
		current = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			pen = e.Point
			current = append(current, pen.Mul(scale))

		case LineTo:
			pen = e.Point
			current = append(current, pen.Mul(scale))

		case QuadTo:
			cubic := QuadBez{P0: pen, P1: e.Control, P2: e.Point}.Raise()
			current = appendCubic(current, cubic, segments, scale)
			pen = e.Point

		case CubicTo:
			cubic := CubicBez{P0: pen, P1: e.Control1, P2: e.Control2, P3: e.Point}
			current = appendCubic(current, cubic, segments, scale)
			pen = e.Point

		case Close:
			flush(true)
		}
	}

	// An unterminated trailing contour is kept rather than dropped.
	flush(false)

	return contours
}

// appendCubic appends the flattened cubic to the contour, excluding the
// start point (already present as the current pen position).
func appendCubic(c Contour, cubic CubicBez, segments int, scale float64) Contour {
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		c = append(c, cubic.Eval(t).Mul(scale))
	}
	return c
}

// stripClosingPoint returns the contour without an explicit duplicated
// closing point. Grouping, triangulation and extrusion all treat
// contours as implicitly closed; a repeated vertex would produce
// zero-area wall quads in the extruded solid.
func stripClosingPoint(c Contour) Contour {
	if len(c) >= 2 && c[0] == c[len(c)-1] {
		return c[:len(c)-1]
	}
	return c
}

// stripClosingPoints applies stripClosingPoint to every contour.
func stripClosingPoints(contours []Contour) []Contour {
	result := make([]Contour, len(contours))
	for i, c := range contours {
		result[i] = stripClosingPoint(c)
	}
	return result
}
