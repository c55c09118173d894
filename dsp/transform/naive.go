package transform

import (
	"math"
	"time"
)

// Naive is the direct O(n²) DFT:
//
//	X[i] = Σ_k x[k]·exp(-2πi·i·k/n)
type Naive struct{}

// Name returns "naive".
func (Naive) Name() string { return MethodNaive.String() }

// Forward computes the DFT of x by direct summation.
func (Naive) Forward(x []float64) ([]complex128, time.Duration, error) {
	n := len(x)
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}

	out := make([]complex128, n)
	step := -2 * math.Pi / float64(n)

	start := time.Now()
	for i := range out {
		var re, im float64
		for k, v := range x {
			// i·k mod n keeps the angle inside one period.
			s, c := math.Sincos(step * float64((i*k)%n))
			re += v * c
			im += v * s
		}
		out[i] = complex(re, im)
	}

	return out, time.Since(start), nil
}
