package dialmesh

// Fit search parameters. The upward search grows geometrically from the
// bounding-box estimate and is capped so a degenerate sector can never
// make the search run away.
const (
	// DefaultFitIterations bounds the binary search.
	DefaultFitIterations = 50

	// DefaultPaddingFactor is the safety margin applied to the
	// converged scale.
	DefaultPaddingFactor = 0.85

	// fitBracketEpsilon stops the binary search once the bracket is
	// this narrow.
	fitBracketEpsilon = 1e-4

	// fitGrowthFactor and fitGrowthCap bound the upward search.
	fitGrowthFactor = 1.5
	fitGrowthCap    = 3.0
)

// estimateScale computes a cheap initial scale from the axis-aligned
// bounding box of the contours against the sector's approximate width
// and height. It is an upper-bound heuristic, not sector-exact: a
// bounding box that fits the rectangle can still poke out of the
// trapezoid's corners.
func estimateScale(bounds Rect, maxWidth, maxHeight float64) float64 {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return 1.0
	}
	scaleW := maxWidth / bounds.Width()
	scaleH := maxHeight / bounds.Height()
	if scaleW < scaleH {
		return scaleW
	}
	return scaleH
}

// allPointsInSector reports whether every point of every contour,
// scaled by scale and then translated by (offsetX, offsetY), lies
// inside the sector.
func allPointsInSector(contours []Contour, scale, offsetX, offsetY float64, sector Sector) bool {
	for _, c := range contours {
		for _, p := range c {
			scaled := Point{X: p.X*scale + offsetX, Y: p.Y*scale + offsetY}
			if !sector.Contains(scaled) {
				return false
			}
		}
	}
	return true
}

// FitScale computes the maximal uniform scale that keeps every contour
// point inside the sector after the matching centering translation
// (the contour bounding-box center lands on center).
//
// The bounding-box estimate from the placement's width/height seeds the
// search. If the estimate already passes the all-points-inside test the
// search brackets upward, growing the upper bound geometrically until a
// failing scale is found (capped at 3x the estimate); otherwise it
// brackets downward from the estimate to zero. A binary search then
// narrows the bracket for maxIterations iterations or until it is
// tighter than 1e-4, keeping the largest verified scale. The padding
// factor is applied to the converged scale before returning.
//
// The returned scale, applied together with the centering translation,
// leaves zero points of the given contour set outside the sector. When
// even scale 0 cannot be verified (placement center outside the
// sector), FitScale still terminates and returns 0; callers treat that
// as "sector unusable", not as an error.
func FitScale(contours []Contour, sector Sector, center Point, maxWidth, maxHeight, padding float64, maxIterations int) float64 {
	bounds, ok := boundsOf(contours)
	if !ok {
		return 0
	}
	if maxIterations <= 0 {
		maxIterations = DefaultFitIterations
	}

	boxCenter := bounds.Center()
	test := func(scale float64) bool {
		offsetX := center.X - boxCenter.X*scale
		offsetY := center.Y - boxCenter.Y*scale
		return allPointsInSector(contours, scale, offsetX, offsetY, sector)
	}

	estimate := estimateScale(bounds, maxWidth, maxHeight)

	var scaleMin, scaleMax float64
	if test(estimate) {
		// The estimate fits; search upward for a tighter bound.
		scaleMin = estimate
		scaleMax = estimate * fitGrowthFactor
		for test(scaleMax) {
			scaleMin = scaleMax
			scaleMax *= fitGrowthFactor
			if scaleMax > estimate*fitGrowthCap {
				break
			}
		}
	} else {
		scaleMin = 0
		scaleMax = estimate
	}

	best := scaleMin
	for i := 0; i < maxIterations; i++ {
		mid := (scaleMin + scaleMax) / 2
		if test(mid) {
			best = mid
			scaleMin = mid
		} else {
			scaleMax = mid
		}
		if scaleMax-scaleMin < fitBracketEpsilon {
			break
		}
	}

	Logger().Debug("sector fit converged",
		"estimate", estimate, "scale", best, "padding", padding)

	return best * padding
}

// CenteringOffset computes the translation that places the scaled
// contour bounding-box center at the target point. It must match the
// translation FitScale verified against.
func CenteringOffset(bounds Rect, scale float64, target Point) Point {
	c := bounds.Center()
	return Point{
		X: target.X - c.X*scale,
		Y: target.Y - c.Y*scale,
	}
}
