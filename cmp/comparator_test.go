package cmp_test

import (
	"math"
	"testing"

	ordcmp "github.com/cohenlint/ordtree/cmp"
)

// TestCompare verifies Compare's strict total order, including NaN and
// signed-zero handling.
func TestCompare(t *testing.T) {
	t.Parallel()

	a := 0.1
	b := 0.2
	sum := a + b // ≈ 0.30000000000000004

	tests := []struct {
		name string
		x    float64
		y    float64
		want int
	}{
		{name: "equal", x: 1.0, y: 1.0, want: 0},
		{name: "sum > 0.3", x: sum, y: 0.3, want: 1},
		{name: "0.3 < sum", x: 0.3, y: sum, want: -1},
		{name: "x > y", x: 2.0, y: 1.0, want: 1},
		{name: "x < y", x: 1.0, y: 2.0, want: -1},
		{name: "zero vs neg zero", x: 0.0, y: math.Copysign(0, -1), want: 0},
		{name: "NaN vs NaN", x: math.NaN(), y: math.NaN(), want: 0},
		{name: "NaN < non-NaN", x: math.NaN(), y: 1.0, want: -1},
		{name: "non-NaN > NaN", x: 1.0, y: math.NaN(), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ordcmp.Compare(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCompareInts(t *testing.T) {
	t.Parallel()

	if ordcmp.Compare(1, 2) != -1 {
		t.Errorf("Compare(1, 2) should be -1")
	}
	if ordcmp.Compare(2, 1) != 1 {
		t.Errorf("Compare(2, 1) should be 1")
	}
	if ordcmp.Compare(1, 1) != 0 {
		t.Errorf("Compare(1, 1) should be 0")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := ordcmp.Default[string]()
	if c("a", "b") != -1 {
		t.Errorf("Default()(\"a\", \"b\") should be -1")
	}
}
