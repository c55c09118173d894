// Package fit measures how closely a reconstructed series follows the
// original samples.
package fit

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds residual statistics of approx against original.
//
//nolint:revive
type Stats struct {
	Length      int
	SignalRMS   float64
	RMSError    float64
	MeanError   float64 // mean of original - approx
	MaxError    float64 // largest |original - approx|
	MaxErrorPos int
	R2          float64 // coefficient of determination; NaN for a constant original
	SNR_dB      float64 // signal power over residual power; +Inf for an exact fit
}

// Compare computes residual statistics. Both slices must be non-empty and of
// equal length.
func Compare(original, approx []float64) (Stats, error) {
	if len(original) == 0 {
		return Stats{}, fmt.Errorf("fit: original must not be empty: %w", core.ErrValidation)
	}
	if len(original) != len(approx) {
		return Stats{}, fmt.Errorf("fit: length mismatch: %d != %d: %w", len(original), len(approx), core.ErrValidation)
	}

	n := float64(len(original))

	residual := make([]float64, len(original))
	floats.SubTo(residual, original, approx)

	ssRes := floats.Dot(residual, residual)
	ssSig := floats.Dot(original, original)

	abs := make([]float64, len(residual))
	for i, r := range residual {
		abs[i] = math.Abs(r)
	}
	maxPos := floats.MaxIdx(abs)

	_, variance := stat.PopMeanVariance(original, nil)
	ssTot := variance * n

	r2 := math.NaN()
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Stats{
		Length:      len(original),
		SignalRMS:   math.Sqrt(ssSig / n),
		RMSError:    floats.Distance(original, approx, 2) / math.Sqrt(n),
		MeanError:   stat.Mean(residual, nil),
		MaxError:    abs[maxPos],
		MaxErrorPos: maxPos,
		R2:          r2,
		SNR_dB:      core.LinearPowerToDB(ssSig / ssRes),
	}, nil
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return floats.Norm(signal, 2) / math.Sqrt(float64(len(signal)))
}
