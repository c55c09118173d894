package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

func TestCompareExactFit(t *testing.T) {
	x := []float64{1, -1, 2, -2}

	st, err := Compare(x, x)
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	if st.RMSError != 0 || st.MaxError != 0 || st.MeanError != 0 {
		t.Fatalf("unexpected error stats for exact fit: %+v", st)
	}
	if st.R2 != 1 {
		t.Fatalf("R2 = %v, want 1", st.R2)
	}
	if !math.IsInf(st.SNR_dB, 1) {
		t.Fatalf("SNR_dB = %v, want +Inf", st.SNR_dB)
	}
	if st.Length != 4 {
		t.Fatalf("Length = %d, want 4", st.Length)
	}
	if !core.NearlyEqual(st.SignalRMS, math.Sqrt(2.5), 1e-12) {
		t.Fatalf("SignalRMS = %v, want %v", st.SignalRMS, math.Sqrt(2.5))
	}
}

func TestCompareKnownResidual(t *testing.T) {
	original := []float64{1, 2, 3, 4}
	approx := []float64{1, 2, 3, 2}

	st, err := Compare(original, approx)
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	if !core.NearlyEqual(st.RMSError, 1, 1e-12) {
		t.Fatalf("RMSError = %v, want 1", st.RMSError)
	}
	if st.MaxError != 2 || st.MaxErrorPos != 3 {
		t.Fatalf("MaxError = %v at %d, want 2 at 3", st.MaxError, st.MaxErrorPos)
	}
	if !core.NearlyEqual(st.MeanError, 0.5, 1e-12) {
		t.Fatalf("MeanError = %v, want 0.5", st.MeanError)
	}
	// ssTot = 5, ssRes = 4.
	if !core.NearlyEqual(st.R2, 0.2, 1e-12) {
		t.Fatalf("R2 = %v, want 0.2", st.R2)
	}
	// ssSig = 30, ssRes = 4.
	if !core.NearlyEqual(st.SNR_dB, 10*math.Log10(7.5), 1e-12) {
		t.Fatalf("SNR_dB = %v, want %v", st.SNR_dB, 10*math.Log10(7.5))
	}
}

func TestCompareConstantOriginal(t *testing.T) {
	st, err := Compare([]float64{2, 2, 2}, []float64{2, 2, 1})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if !math.IsNaN(st.R2) {
		t.Fatalf("R2 = %v, want NaN for constant original", st.R2)
	}
}

func TestCompareValidation(t *testing.T) {
	if _, err := Compare(nil, nil); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("Compare(nil) error = %v, want ErrValidation", err)
	}
	if _, err := Compare([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("Compare(mismatch) error = %v, want ErrValidation", err)
	}
}

func TestRMS(t *testing.T) {
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) should be 0")
	}
	if got := RMS([]float64{3, -3, 3, -3}); !core.NearlyEqual(got, 3, 1e-12) {
		t.Fatalf("RMS = %v, want 3", got)
	}
}
