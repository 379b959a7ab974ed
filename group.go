package dialmesh

// RingGroup is a polygon with holes: the first contour is the outer
// boundary (positive signed area under the glyph convention) and every
// following contour is a hole whose first point lies inside the outer
// boundary. Multi-character or multi-stroke glyphs ("8", "0", "XII")
// produce several groups, one per connected component, each extruded
// into its own solid.
type RingGroup []Contour

// GroupContours classifies contours by winding and assigns holes to
// their containing outer boundaries.
//
// A contour with positive shoelace area is an outer boundary; negative
// area is a hole. Contours with fewer than 3 points are skipped. Each
// hole joins every outer contour that contains its first point (ray
// casting test).
//
// Degenerate inputs never lose geometry: if nothing classifies as an
// outer boundary, every contour becomes its own single-ring group; if
// grouping produced nothing at all but there was input, one group
// holding all input contours is returned unmodified.
func GroupContours(contours []Contour) []RingGroup {
	if len(contours) == 0 {
		return nil
	}

	var outers, holes []Contour
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		if c.SignedArea() > 0 {
			outers = append(outers, c)
		} else {
			holes = append(holes, c)
		}
	}

	if len(outers) == 0 && len(holes) > 0 {
		groups := make([]RingGroup, len(holes))
		for i, h := range holes {
			groups[i] = RingGroup{h}
		}
		return groups
	}

	var groups []RingGroup
	for _, outer := range outers {
		group := RingGroup{outer}
		for _, hole := range holes {
			if len(hole) > 0 && outer.ContainsPoint(hole[0]) {
				group = append(group, hole)
			}
		}
		groups = append(groups, group)
	}

	if len(groups) == 0 {
		return []RingGroup{RingGroup(contours)}
	}

	return groups
}
