package dialmesh

import (
	"math"
	"testing"
)

func TestPointVectorOps(t *testing.T) {
	a, b := Pt(3, 4), Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Distance(b); math.Abs(got-math.Sqrt(40)) > 1e-12 {
		t.Errorf("Distance = %v, want sqrt(40)", got)
	}
}

func TestPointNormalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	if n.Distance(Pt(0.6, 0.8)) > 1e-12 {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", n)
	}

	// The zero vector has no direction; it stays zero instead of NaN.
	if got := Pt(0, 0).Normalize(); got != (Point{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 10), Pt(10, 0)

	tests := []struct {
		t    float64
		want Point
	}{
		{0, a},
		{1, b},
		{0.5, Pt(5, 5)},
		{0.25, Pt(2.5, 7.5)},
	}

	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); got.Distance(tt.want) > 1e-12 {
			t.Errorf("Lerp(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPointRotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if got.Distance(Pt(0, 1)) > 1e-12 {
		t.Errorf("quarter turn = %v, want (0, 1)", got)
	}

	// Rotating straight-up by the dial angle reproduces the polar
	// conversion.
	for deg := 0; deg < 360; deg += 45 {
		angle := float64(deg) * math.Pi / 180
		want := PolarToCartesian(10, angle)
		if got := Pt(0, -10).Rotate(angle); got.Distance(want) > 1e-9 {
			t.Errorf("Rotate(%d deg) = %v, want %v", deg, got, want)
		}
	}
}

func TestRect(t *testing.T) {
	// Corners are normalized regardless of argument order.
	r := NewRect(Pt(10, 20), Pt(0, 0))
	if r.Min != Pt(0, 0) || r.Max != Pt(10, 20) {
		t.Fatalf("NewRect = %v", r)
	}
	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("size = %vx%v, want 10x20", r.Width(), r.Height())
	}
	if got := r.Center(); got != Pt(5, 10) {
		t.Errorf("Center = %v, want (5, 10)", got)
	}

	if !r.Contains(Pt(5, 5)) || !r.Contains(Pt(0, 0)) || !r.Contains(Pt(10, 20)) {
		t.Error("Contains rejected interior or boundary points")
	}
	if r.Contains(Pt(-1, 5)) || r.Contains(Pt(5, 21)) {
		t.Error("Contains accepted outside points")
	}

	u := r.Union(NewRect(Pt(-5, 5), Pt(5, 30)))
	if u.Min != Pt(-5, 0) || u.Max != Pt(10, 30) {
		t.Errorf("Union = %v", u)
	}
}
