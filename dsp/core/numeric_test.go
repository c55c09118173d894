package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon to apply")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{n: -4, want: false},
		{n: 0, want: false},
		{n: 1, want: true},
		{n: 2, want: true},
		{n: 3, want: false},
		{n: 64, want: true},
		{n: 96, want: false},
		{n: 1 << 20, want: true},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Fatalf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestLargestPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "zero", n: 0, want: 0},
		{name: "negative", n: -3, want: 0},
		{name: "one", n: 1, want: 1},
		{name: "exact", n: 1024, want: 1024},
		{name: "above", n: 1033, want: 1024},
		{name: "below", n: 1023, want: 512},
		{name: "three", n: 3, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LargestPowerOfTwo(tt.n)
			if got != tt.want {
				t.Fatalf("LargestPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestLargestPowerOfTwoMatchesFloorLog2(t *testing.T) {
	for n := 1; n <= 5000; n++ {
		want := 1 << int(math.Floor(math.Log2(float64(n))))
		if got := LargestPowerOfTwo(n); got != want {
			t.Fatalf("LargestPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestLog2(t *testing.T) {
	for k := 0; k < 21; k++ {
		if got := Log2(1 << k); got != k {
			t.Fatalf("Log2(%d) = %d, want %d", 1<<k, got, k)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Fatal("expected 1.5 to be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("expected NaN and Inf to be non-finite")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if !NearlyEqual(LinearPowerToDB(100), 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", LinearPowerToDB(100))
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
