package dialmesh

import (
	"math"
	"math/rand"
	"testing"
)

// fitAndPlace runs FitScale with no padding and returns the placed
// contour points, mirroring what the pipeline does with the result.
func fitAndPlace(t *testing.T, contours []Contour, sector Sector, center Point, maxW, maxH float64) (float64, []Contour) {
	t.Helper()

	scale := FitScale(contours, sector, center, maxW, maxH, 1.0, DefaultFitIterations)

	bounds, ok := boundsOf(contours)
	if !ok {
		t.Fatal("no bounds for test contours")
	}
	offset := CenteringOffset(bounds, scale, center)

	placed := make([]Contour, len(contours))
	for i, c := range contours {
		out := make(Contour, len(c))
		for j, p := range c {
			out[j] = Point{X: p.X*scale + offset.X, Y: p.Y*scale + offset.Y}
		}
		placed[i] = out
	}
	return scale, placed
}

func TestFitScaleRectangleInSector(t *testing.T) {
	// The 12 o'clock sector of a 4-label dial: radius 36..49, +-15 deg.
	sector := Sector{
		InnerRadius: 36,
		OuterRadius: 49,
		AngleStart:  -15 * math.Pi / 180,
		AngleEnd:    15 * math.Pi / 180,
	}
	center := PolarToCartesian(42.5, 0)

	// A 2:1 glyph-like rectangle.
	contours := []Contour{{Pt(0, 0), Pt(10, 0), Pt(10, 20), Pt(0, 20)}}

	scale, placed := fitAndPlace(t, contours, sector, center, 22, 13)
	if scale <= 0 {
		t.Fatalf("scale = %v, want > 0", scale)
	}

	for i, c := range placed {
		for j, p := range c {
			if !sector.Contains(p) {
				t.Errorf("point %d/%d at %v outside sector after fit", i, j, p)
			}
		}
	}

	// The fit must be tight: 2% more scale should push a point out.
	bounds, _ := boundsOf(contours)
	bigger := scale * 1.02
	offset := CenteringOffset(bounds, bigger, center)
	if allPointsInSector(contours, bigger, offset.X, offset.Y, sector) {
		t.Errorf("scale %v not maximal: %v still fits", scale, bigger)
	}
}

func TestFitScaleUnusableSector(t *testing.T) {
	// Center placed outside the sector: even scale 0 cannot be
	// verified, so the search must terminate and return 0.
	sector := Sector{
		InnerRadius: 36,
		OuterRadius: 49,
		AngleStart:  -15 * math.Pi / 180,
		AngleEnd:    15 * math.Pi / 180,
	}
	contours := []Contour{{Pt(0, 0), Pt(1, 0), Pt(1, 1)}}

	scale := FitScale(contours, sector, Pt(0, 0), 10, 10, 1.0, DefaultFitIterations)
	if scale != 0 {
		t.Errorf("scale = %v, want 0 for unusable sector", scale)
	}
}

func TestFitScaleEmptyContours(t *testing.T) {
	sector := Sector{InnerRadius: 10, OuterRadius: 20, AngleStart: 0, AngleEnd: 1}
	if got := FitScale(nil, sector, Pt(0, -15), 5, 5, 1.0, 0); got != 0 {
		t.Errorf("scale = %v, want 0 for empty input", got)
	}
}

func TestFitScalePadding(t *testing.T) {
	sector := Sector{
		InnerRadius: 36,
		OuterRadius: 49,
		AngleStart:  -15 * math.Pi / 180,
		AngleEnd:    15 * math.Pi / 180,
	}
	center := PolarToCartesian(42.5, 0)
	contours := []Contour{{Pt(0, 0), Pt(10, 0), Pt(10, 20), Pt(0, 20)}}

	full := FitScale(contours, sector, center, 22, 13, 1.0, DefaultFitIterations)
	padded := FitScale(contours, sector, center, 22, 13, DefaultPaddingFactor, DefaultFitIterations)

	if math.Abs(padded-full*DefaultPaddingFactor) > 1e-9 {
		t.Errorf("padded = %v, want %v", padded, full*DefaultPaddingFactor)
	}
}

func TestFitScaleDeterministic(t *testing.T) {
	sector := Sector{
		InnerRadius: 30,
		OuterRadius: 50,
		AngleStart:  1.0,
		AngleEnd:    1.8,
	}
	center := PolarToCartesian(40, 1.4)
	contours := []Contour{{Pt(0, 0), Pt(7, 1), Pt(9, 8), Pt(2, 11), Pt(-1, 5)}}

	a := FitScale(contours, sector, center, 15, 15, 0.85, DefaultFitIterations)
	b := FitScale(contours, sector, center, 15, 15, 0.85, DefaultFitIterations)
	if a != b {
		t.Errorf("fit not deterministic: %v vs %v", a, b)
	}
}

func TestFitScaleRandomizedContainment(t *testing.T) {
	// Property check over random polygons and sectors, including ones
	// wrapping the angular seam: whenever the fit returns a positive
	// scale, every placed point is inside the sector.
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		inner := 5 + rng.Float64()*40
		outer := inner + 3 + rng.Float64()*25
		start := rng.Float64() * 2 * math.Pi
		span := 0.2 + rng.Float64()*1.2
		sector := Sector{
			InnerRadius: inner,
			OuterRadius: outer,
			AngleStart:  start,
			AngleEnd:    start + span, // may exceed 2pi: wraps the seam
		}
		midRadius := (inner + outer) / 2
		center := PolarToCartesian(midRadius, start+span/2)

		// A random star-shaped polygon around the origin.
		n := 5 + rng.Intn(8)
		contour := make(Contour, n)
		for i := range contour {
			a := 2 * math.Pi * float64(i) / float64(n)
			r := 1 + rng.Float64()*4
			contour[i] = Pt(r*math.Cos(a), r*math.Sin(a))
		}
		contours := []Contour{contour}

		maxW := midRadius * span
		maxH := outer - inner
		scale, placed := fitAndPlace(t, contours, sector, center, maxW, maxH)
		if scale < 0 {
			t.Fatalf("trial %d: negative scale %v", trial, scale)
		}
		for _, c := range placed {
			for _, p := range c {
				if !sector.Contains(p) {
					t.Fatalf("trial %d: point %v outside sector (scale %v)", trial, p, scale)
				}
			}
		}
	}
}

func TestEstimateScale(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rect
		maxW   float64
		maxH   float64
		want   float64
	}{
		{"width limited", NewRect(Pt(0, 0), Pt(10, 5)), 20, 20, 2},
		{"height limited", NewRect(Pt(0, 0), Pt(5, 10)), 20, 20, 2},
		{"degenerate box", NewRect(Pt(3, 3), Pt(3, 3)), 20, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateScale(tt.bounds, tt.maxW, tt.maxH); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("estimateScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenteringOffset(t *testing.T) {
	bounds := NewRect(Pt(0, 0), Pt(10, 20))
	offset := CenteringOffset(bounds, 2, Pt(100, -50))

	// Bounding-box center (5, 10) scaled by 2 lands on the target.
	got := Pt(5*2+offset.X, 10*2+offset.Y)
	if got.Distance(Pt(100, -50)) > 1e-9 {
		t.Errorf("scaled center = %v, want (100, -50)", got)
	}
}
