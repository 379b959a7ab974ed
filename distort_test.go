package dialmesh

import (
	"math"
	"testing"
)

func squareContours() []Contour {
	return []Contour{
		{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)},
	}
}

func contoursEqual(a, b []Contour) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestDistortionZeroIsPassThrough(t *testing.T) {
	in := squareContours()
	var d Distortion
	if !d.IsZero() {
		t.Fatal("zero value not reported as zero")
	}

	out := d.Apply(in, 42)
	if &out[0][0] != &in[0][0] {
		t.Error("zero distortion should return the input unchanged")
	}
}

func TestDistortionDeterministic(t *testing.T) {
	d := Distortion{
		EdgeIrregularity:   1.5,
		Roughness:          2,
		PerspectiveStretch: 1,
		Erosion:            0.5,
	}

	a := d.Apply(squareContours(), 42)
	b := d.Apply(squareContours(), 42)
	if !contoursEqual(a, b) {
		t.Error("same seed produced different output")
	}

	c := d.Apply(squareContours(), 43)
	if contoursEqual(a, c) {
		t.Error("different seed produced identical output")
	}
}

func TestDistortionDoesNotMutateInput(t *testing.T) {
	in := squareContours()
	want := squareContours()

	d := Distortion{EdgeIrregularity: 2, Erosion: 1}
	d.Apply(in, 7)

	if !contoursEqual(in, want) {
		t.Error("input contours were mutated")
	}
}

func TestDistortionActuallyMoves(t *testing.T) {
	tests := []struct {
		name string
		d    Distortion
	}{
		{"edge irregularity", Distortion{EdgeIrregularity: 1}},
		{"roughness", Distortion{Roughness: 2}},
		{"perspective stretch", Distortion{PerspectiveStretch: 2}},
		{"erosion", Distortion{Erosion: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := squareContours()
			out := tt.d.Apply(in, 42)
			if contoursEqual(in, out) {
				t.Error("distortion left every point in place")
			}
			if len(out) != len(in) || len(out[0]) != len(in[0]) {
				t.Error("distortion changed the point count")
			}
		})
	}
}

func TestPerspectiveStretchGrowsOutward(t *testing.T) {
	in := squareContours()
	d := Distortion{PerspectiveStretch: 3}
	out := d.Apply(in, 1)

	center, _, _ := centroidAndMaxDist(in)
	for j, p := range out[0] {
		before := in[0][j].Distance(center)
		after := p.Distance(center)
		if after < before {
			t.Errorf("point %d moved inward: %v -> %v", j, before, after)
		}
	}
}

func TestErosionShrinksOnAverage(t *testing.T) {
	in := squareContours()
	d := Distortion{Erosion: 2}
	out := d.Apply(in, 42)

	center, _, _ := centroidAndMaxDist(in)
	var before, after float64
	for j, p := range out[0] {
		before += in[0][j].Distance(center)
		after += p.Distance(center)
	}
	if after >= before {
		t.Errorf("mean radius grew under erosion: %v -> %v", before, after)
	}
}

func TestCoherentNoiseBounded(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.37 {
		for y := -5.0; y <= 5.0; y += 0.41 {
			n := coherentNoise(x, y, 2.0)
			if n < -1 || n > 1 || math.IsNaN(n) {
				t.Fatalf("noise(%v, %v) = %v out of [-1, 1]", x, y, n)
			}
		}
	}
}

func TestLabelSeed(t *testing.T) {
	if LabelSeed("12", 42) != LabelSeed("12", 42) {
		t.Error("seed not stable for identical input")
	}
	if LabelSeed("12", 42) == LabelSeed("3", 42) {
		t.Error("different labels share a seed")
	}
	if LabelSeed("12", 42) == LabelSeed("12", 7) {
		t.Error("different base seeds collide")
	}
}
