package calc

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestWeightRound(t *testing.T) {
	cases := []struct {
		d, l, rho float64
	}{
		{10, 100, 7.85},
		{25, 3000, 8.9},
		{0, 100, 7.85},
		{10, 0, 7.85},
	}
	for _, c := range cases {
		want := math.Pi * (c.d / 20) * (c.d / 20) * (c.l / 10) * c.rho / 1000
		got := Weight(ShapeRound, c.d, c.l, c.rho)
		if !almostEqual(got, want) {
			t.Errorf("Weight(round, %v, %v, %v) = %v, want %v", c.d, c.l, c.rho, got, want)
		}
	}
}

func TestWeightSquare(t *testing.T) {
	// 10mm square bar, 100mm long, steel: side = 1cm, length = 10cm.
	got := Weight(ShapeSquare, 10, 100, 7.85)
	if !almostEqual(got, 0.0785) {
		t.Errorf("Weight(square, 10, 100, 7.85) = %v, want 0.0785", got)
	}
}

func TestWeightHexagonUsesHalfDiameterAsSide(t *testing.T) {
	d, l, rho := 17.0, 250.0, 7.85
	want := (3 * math.Sqrt(3) / 2) * (d / 20) * (d / 20) * (l / 10) * rho / 1000
	got := Weight(ShapeHexagon, d, l, rho)
	if !almostEqual(got, want) {
		t.Errorf("Weight(hexagon, %v, %v, %v) = %v, want %v", d, l, rho, got, want)
	}
}

func TestWeightUnknownShape(t *testing.T) {
	if got := Weight("octagon", 10, 10, 1); got != 0 {
		t.Errorf("Weight(octagon, 10, 10, 1) = %v, want 0", got)
	}
	if got := Weight("", 10, 10, 1); got != 0 {
		t.Errorf("Weight(\"\", 10, 10, 1) = %v, want 0", got)
	}
}

func TestWeightZeroLength(t *testing.T) {
	for _, s := range []Shape{ShapeRound, ShapeHexagon, ShapeSquare} {
		if got := Weight(s, 42, 0, 7.85); got != 0 {
			t.Errorf("Weight(%s, 42, 0, 7.85) = %v, want 0", s, got)
		}
	}
}

func TestWeightNegativeInputsPropagate(t *testing.T) {
	// Diameter is squared, so a negative diameter gives the same result as
	// a positive one; a negative length flips the sign.
	if got, want := Weight(ShapeRound, -10, 100, 7.85), Weight(ShapeRound, 10, 100, 7.85); !almostEqual(got, want) {
		t.Errorf("negative diameter: got %v, want %v", got, want)
	}
	if got := Weight(ShapeSquare, 10, -100, 7.85); got >= 0 {
		t.Errorf("negative length: got %v, want negative", got)
	}
}
