package dialmesh

import "math"

// Sector is a trapezoidal annular wedge in polar coordinates: the area
// between two radii and two angles. Angles are radians measured
// clockwise from 12 o'clock (angle 0 points up). AngleEnd may be
// numerically less than AngleStart to represent a sector wrapping
// through the 0/2π seam.
type Sector struct {
	InnerRadius float64
	OuterRadius float64
	AngleStart  float64
	AngleEnd    float64
}

// Contains reports whether p lies inside the sector. The angular test
// is wraparound-aware: when the normalized start angle exceeds the end
// angle, membership means angle >= start or angle <= end.
func (s Sector) Contains(p Point) bool {
	r, angle := p.Polar()

	if r < s.InnerRadius || r > s.OuterRadius {
		return false
	}

	start := normalizeAngle(s.AngleStart)
	end := normalizeAngle(s.AngleEnd)

	if start <= end {
		return angle >= start && angle <= end
	}
	// Sector wraps through 0.
	return angle >= start || angle <= end
}

// normalizeAngle brings an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	twoPi := 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// LabelPlacement describes where one dial label goes: its sector, its
// placement center, and initial size estimates. Placements are computed
// once by ComputeSectors and never modified afterwards. MaxWidth and
// MaxHeight are estimates for the initial scale only; the authoritative
// constraint is sector membership, enforced by FitScale.
type LabelPlacement struct {
	Text      string
	Hour      int     // hour slot 1..12 on the dial face
	Angle     float64 // center angle, radians clockwise from 12 o'clock
	Sector    Sector
	CenterX   float64
	CenterY   float64
	MaxWidth  float64
	MaxHeight float64
}

// Center returns the placement center as a Point.
func (lp LabelPlacement) Center() Point {
	return Point{X: lp.CenterX, Y: lp.CenterY}
}

// hourAngle returns the dial angle for an hour position. Hour 12 sits
// at the top (angle 0); each hour is 30 degrees clockwise.
func hourAngle(hour int) float64 {
	return float64(hour%12) * 30 * math.Pi / 180
}

// PolarToCartesian converts dial polar coordinates to Cartesian under
// the screen convention: angle 0 is up, angles grow clockwise, and the
// Y axis points down.
func PolarToCartesian(radius, angle float64) Point {
	return Point{
		X: radius * math.Sin(angle),
		Y: -radius * math.Cos(angle),
	}
}

// minSectorSpan is the floor for degenerate radial or angular spans.
// Sector computation clamps instead of failing so a bad margin
// configuration still produces placements (which then fit to scale 0).
const minSectorSpan = 0.1

// ComputeSectors partitions the dial into one trapezoidal sector per
// label and computes each label's placement.
//
// Labels map onto the fixed 12-slot hour grid: a 4-label set occupies
// the cardinal hours 12, 3, 6 and 9, a 12-label set occupies hours
// 1..12. Each slice's angular width is 2π/len(labels). The vertical
// margin (mm) is taken off both radial bounds; the horizontal margin
// (mm) is converted to an angular padding using the arc-length scale at
// the mid-sector radius and taken off both angular bounds.
func ComputeSectors(outerR, innerR, vMargin, hMargin float64, labels []string) []LabelPlacement {
	n := len(labels)
	if n == 0 {
		return nil
	}

	hours := hourSlots(n)

	sectorInner := innerR + vMargin
	sectorOuter := outerR - vMargin

	height := math.Max(sectorOuter-sectorInner, minSectorSpan)

	avgRadius := (sectorInner + sectorOuter) / 2
	angularPadding := 0.0
	if avgRadius > 0 {
		angularPadding = hMargin / avgRadius
	}

	anglePerLabel := 2 * math.Pi / float64(n)

	placements := make([]LabelPlacement, 0, n)
	for i, label := range labels {
		hour := hours[i%len(hours)]
		centerAngle := hourAngle(hour)

		angleStart := centerAngle - anglePerLabel/2 + angularPadding
		angleEnd := centerAngle + anglePerLabel/2 - angularPadding

		width := math.Max(avgRadius*(angleEnd-angleStart), minSectorSpan)

		center := PolarToCartesian(avgRadius, centerAngle)

		placements = append(placements, LabelPlacement{
			Text:  label,
			Hour:  hour,
			Angle: centerAngle,
			Sector: Sector{
				InnerRadius: sectorInner,
				OuterRadius: sectorOuter,
				AngleStart:  angleStart,
				AngleEnd:    angleEnd,
			},
			CenterX:   center.X,
			CenterY:   center.Y,
			MaxWidth:  width,
			MaxHeight: height,
		})
	}

	return placements
}

// hourSlots maps a label count onto hour positions. Four labels take
// the cardinal slots; anything else walks the hours 1..12 in order.
func hourSlots(n int) []int {
	if n == 4 {
		return []int{12, 3, 6, 9}
	}
	hours := make([]int, 12)
	for i := range hours {
		hours[i] = i + 1
	}
	return hours
}
