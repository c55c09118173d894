package transform

import (
	"math"
	"math/bits"
	"math/cmplx"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Iterative is the bottom-up radix-2 FFT over a bit-reversed copy of the
// input. It produces the same bins as [CooleyTukey] without recursion.
type Iterative struct{}

// Name returns "iterative".
func (Iterative) Name() string { return MethodIterative.String() }

// Forward computes the FFT of x. len(x) must be a power of two.
func (Iterative) Forward(x []float64) ([]complex128, time.Duration, error) {
	n := len(x)
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}

	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		twiddle[k] = cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n))
	}

	out := make([]complex128, n)
	shift := bits.UintSize - core.Log2(n)

	start := time.Now()
	for i, v := range x {
		out[bitReverse(i, shift)] = complex(v, 0)
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for base := 0; base < n; base += size {
			for k := range half {
				a := out[base+k]
				b := twiddle[k*step] * out[base+k+half]
				out[base+k] = a + b
				out[base+k+half] = a - b
			}
		}
	}

	return out, time.Since(start), nil
}

func bitReverse(i, shift int) int {
	if shift >= bits.UintSize {
		return 0
	}
	return int(bits.Reverse(uint(i)) >> shift)
}
