package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Top and Components call Magnitude once per spectrum, and the
// algo-vecmath kernel wants split real and imaginary slices. The split is
// staged in pooled memory, so repeated ranking of same-sized spectra only
// allocates the returned magnitudes.
var splitPool = sync.Pool{
	New: func() any { return new([]float64) },
}

// split copies the real and imaginary parts of bins into pooled storage.
// Callers return the storage with splitPool.Put(p) when done.
func split(bins []complex128) (re, im []float64, p *[]float64) {
	p = splitPool.Get().(*[]float64)
	n := len(bins)
	if cap(*p) < 2*n {
		*p = make([]float64, 2*n)
	}
	re, im = (*p)[:n], (*p)[n:2*n]
	for k, b := range bins {
		re[k], im[k] = real(b), imag(b)
	}
	return re, im, p
}

// Magnitude returns |X[k]| for each bin using the vectorized algo-vecmath
// kernel.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im, p := split(in)
	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	splitPool.Put(p)
	return out
}

// Phase returns the four-quadrant angle atan2(imag, real) of each bin in
// radians, folded into (-π, π]. A bin on the negative real axis reports +π
// regardless of the sign of its zero imaginary part.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		p := math.Atan2(imag(c), real(c))
		if p == -math.Pi {
			p = math.Pi
		}
		out[i] = p
	}
	return out
}
