package transform

import (
	"math"
	"math/cmplx"
	"time"
)

// CooleyTukey is the recursive radix-2 decimation-in-time FFT.
//
// Recursion depth is log2(n): 20 levels for 2^20 samples.
type CooleyTukey struct{}

// Name returns "cooley-tukey".
func (CooleyTukey) Name() string { return MethodCooleyTukey.String() }

// Forward computes the FFT of x. len(x) must be a power of two.
func (CooleyTukey) Forward(x []float64) ([]complex128, time.Duration, error) {
	n := len(x)
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	out := radix2(x, n, 0, 1)

	return out, time.Since(start), nil
}

// radix2 transforms the n samples x[start], x[start+stride], x[start+2·stride], ...
// The even and odd halves are read through a doubled stride, so no
// intermediate input slices are built.
func radix2(x []float64, n, start, stride int) []complex128 {
	if n == 1 {
		return []complex128{complex(x[start], 0)}
	}

	half := n / 2
	rs := append(radix2(x, half, start, 2*stride), radix2(x, half, start+stride, 2*stride)...)

	for i := range half {
		e := cmplx.Rect(1, -2*math.Pi*float64(i)/float64(n))
		top, bottom := rs[i], e*rs[i+half]
		rs[i], rs[i+half] = top+bottom, top-bottom
	}

	return rs
}
