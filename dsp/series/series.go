// Package series rebuilds a time-domain approximation from spectral
// components.
package series

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/samples"
	"github.com/cwbudde/algo-fourier/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// Reconstruct sums m·cos((ω/dt)·t + φ) over comps at every timestamp.
//
// dt is the sampling interval that converts the per-sample angular
// frequency of each component into time units. Components are accumulated
// in the order given; each output element sees the same summation order, so
// results are reproducible bit for bit. An empty comps yields an all-zero
// series.
func Reconstruct(times []float64, dt float64, comps []spectrum.Component) ([]float64, error) {
	return ReconstructInto(nil, times, dt, comps)
}

// ReconstructInto is Reconstruct writing into dst, which is grown when its
// capacity is below len(times). The returned slice aliases dst when it fits.
func ReconstructInto(dst, times []float64, dt float64, comps []spectrum.Component) ([]float64, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("series: timestamps must not be empty: %w", core.ErrValidation)
	}
	if dt == 0 || !core.IsFinite(dt) {
		return nil, fmt.Errorf("series: unusable sampling interval %v: %w", dt, core.ErrValidation)
	}

	out := core.EnsureLen(dst, len(times))
	core.Zero(out)
	term := make([]float64, len(times))

	for _, c := range comps {
		omega := c.AngularFrequency / dt
		for i, t := range times {
			term[i] = c.Magnitude * math.Cos(omega*t+c.Phase)
		}
		vecmath.AddBlockInPlace(out, term)
	}

	return out, nil
}

// ReconstructBuffer reconstructs comps over the timestamps of buf, using
// buf.Interval() as the sampling interval.
func ReconstructBuffer(buf *samples.Buffer, comps []spectrum.Component) ([]float64, error) {
	if buf == nil {
		return nil, fmt.Errorf("series: nil sample buffer: %w", core.ErrValidation)
	}

	dt, err := buf.Interval()
	if err != nil {
		return nil, err
	}

	return Reconstruct(buf.Times(), dt, comps)
}

// Residual returns original[i] - approx[i]. Both slices must have the same
// length.
func Residual(original, approx []float64) ([]float64, error) {
	if len(original) != len(approx) {
		return nil, fmt.Errorf("series: residual length mismatch: %d != %d: %w",
			len(original), len(approx), core.ErrValidation)
	}

	out := make([]float64, len(original))
	for i := range out {
		out[i] = original[i] - approx[i]
	}
	return out, nil
}
