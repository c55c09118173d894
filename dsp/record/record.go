package record

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/samples"
)

// Size is the encoded size of one binary record in bytes.
const Size = 16

const nanosPerSecond = 1e9

// Record is one timestamped amplitude sample.
type Record struct {
	Seconds     int32
	Nanoseconds int32
	Amplitude   float64
}

// Decoder reads a complete record stream.
type Decoder interface {
	Decode(r io.Reader) ([]Record, error)
}

// Encoder writes a complete record stream.
type Encoder interface {
	Encode(w io.Writer, recs []Record) error
}

// Timestamps returns the time axis of recs relative to the first record's
// whole seconds: t[i] = (s[i] - s[0]) + 1e-9·ns[i].
func Timestamps(recs []Record) []float64 {
	if len(recs) == 0 {
		return nil
	}
	s0 := int64(recs[0].Seconds)
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = float64(int64(r.Seconds)-s0) + 1.0e-9*float64(r.Nanoseconds)
	}
	return out
}

// Amplitudes returns the amplitude column of recs.
func Amplitudes(recs []Record) []float64 {
	if len(recs) == 0 {
		return nil
	}
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = r.Amplitude
	}
	return out
}

// ToBuffer builds a sample buffer from recs.
func ToBuffer(recs []Record) (*samples.Buffer, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("record: no records: %w", core.ErrValidation)
	}
	return samples.New(Timestamps(recs), Amplitudes(recs))
}

// FromSamples splits float timestamps into whole seconds offset by epoch and
// truncated nanoseconds. Negative timestamps are rejected.
func FromSamples(times, values []float64, epoch int32) ([]Record, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("record: time and signal length mismatch: %d != %d: %w",
			len(times), len(values), core.ErrValidation)
	}

	out := make([]Record, len(times))
	for i, t := range times {
		if t < 0 || !core.IsFinite(t) {
			return nil, fmt.Errorf("record: timestamp %d out of range: %v: %w", i, t, core.ErrValidation)
		}
		whole, frac := math.Modf(t)
		sec := int64(epoch) + int64(whole)
		if sec > math.MaxInt32 {
			return nil, fmt.Errorf("record: timestamp %d overflows int32 seconds: %w", i, core.ErrValidation)
		}
		out[i] = Record{
			Seconds:     int32(sec),
			Nanoseconds: int32(frac * nanosPerSecond),
			Amplitude:   values[i],
		}
	}
	return out, nil
}
