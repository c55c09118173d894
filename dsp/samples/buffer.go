package samples

import (
	"fmt"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Buffer is an immutable pair of equal-length timestamp and amplitude slices.
type Buffer struct {
	times  []float64
	values []float64
}

// New validates and copies times and values into a Buffer.
//
// Both slices must be non-empty and of equal length.
func New(times, values []float64) (*Buffer, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("samples: timestamps must not be empty: %w", core.ErrValidation)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("samples: amplitudes must not be empty: %w", core.ErrValidation)
	}
	if len(times) != len(values) {
		return nil, fmt.Errorf("samples: time and signal length mismatch: %d != %d: %w",
			len(times), len(values), core.ErrValidation)
	}

	return &Buffer{
		times:  core.Clone(times),
		values: core.Clone(values),
	}, nil
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.times) }

// Time returns the timestamp at index i.
func (b *Buffer) Time(i int) float64 { return b.times[i] }

// Value returns the amplitude at index i.
func (b *Buffer) Value(i int) float64 { return b.values[i] }

// Times returns a copy of the timestamp slice.
func (b *Buffer) Times() []float64 { return core.Clone(b.times) }

// Values returns a copy of the amplitude slice.
func (b *Buffer) Values() []float64 { return core.Clone(b.values) }

// Prefix returns a copy of the first n amplitudes.
func (b *Buffer) Prefix(n int) ([]float64, error) {
	if n < 1 || n > len(b.values) {
		return nil, fmt.Errorf("samples: prefix length %d outside [1, %d]: %w", n, len(b.values), core.ErrInvalidSize)
	}

	return core.Clone(b.values[:n]), nil
}

// Interval returns the sampling interval t[1]-t[0].
//
// The first two timestamps define the interval even when the remaining
// samples are irregularly spaced.
func (b *Buffer) Interval() (float64, error) {
	if len(b.times) < 2 {
		return 0, fmt.Errorf("samples: interval needs at least 2 samples, have %d: %w", len(b.times), core.ErrValidation)
	}

	dt := b.times[1] - b.times[0]
	if dt == 0 || !core.IsFinite(dt) {
		return 0, fmt.Errorf("samples: unusable sampling interval %v: %w", dt, core.ErrValidation)
	}

	return dt, nil
}
