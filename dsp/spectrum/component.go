package spectrum

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Component is one sinusoid m·cos(ω·i + φ) in sample-index units.
type Component struct {
	// Magnitude is 2·|X[k]|/n.
	Magnitude float64
	// AngularFrequency is 2π·k/n radians per sample.
	AngularFrequency float64
	// Phase is atan2(imag, real) of the bin, in (-π, π].
	Phase float64
	// Bin is the source bin index k.
	Bin int
}

// Frequency converts the angular frequency to radians per time unit for a
// sampling interval dt.
func (c Component) Frequency(dt float64) float64 {
	return c.AngularFrequency / dt
}

// Hertz converts the angular frequency to cycles per time unit for a
// sampling interval dt.
func (c Component) Hertz(dt float64) float64 {
	return c.AngularFrequency / (2 * math.Pi * dt)
}

// Components converts every bin of an n-point spectrum into a Component,
// in ascending bin order.
func Components(bins []complex128) []Component {
	return components(bins, len(bins))
}

// components converts bins, scaled for an n-point transform.
func components(bins []complex128, n int) []Component {
	if len(bins) == 0 {
		return nil
	}

	mag := Magnitude(bins)
	vecmath.ScaleBlock(mag, mag, 2/float64(n))
	phase := Phase(bins)

	out := make([]Component, len(bins))
	for k := range out {
		out[k] = Component{
			Magnitude:        mag[k],
			AngularFrequency: 2 * math.Pi * float64(k) / float64(n),
			Phase:            phase[k],
			Bin:              k,
		}
	}
	return out
}

// Rank sorts comps by magnitude, largest first. Equal magnitudes keep their
// relative order.
func Rank(comps []Component) {
	slices.SortStableFunc(comps, func(a, b Component) int {
		return cmp.Compare(b.Magnitude, a.Magnitude)
	})
}

// Top returns the k most significant components of an n-point spectrum of a
// real signal.
//
// Only bins below n/2 are considered; the upper half mirrors them. Ties in
// magnitude are ordered by ascending bin. k larger than n/2 is clamped
// silently, so the result may be shorter than k (and empty for n = 1).
// k < 1 fails with core.ErrInvalidSize.
func Top(bins []complex128, k int) ([]Component, error) {
	if k < 1 {
		return nil, fmt.Errorf("spectrum: component count must be >= 1: %d: %w", k, core.ErrInvalidSize)
	}

	n := len(bins)
	half := components(bins[:n/2], n)
	if half == nil {
		return []Component{}, nil
	}

	Rank(half)

	return half[:min(k, len(half))], nil
}
