package transform

import (
	"sync"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// The library engines below are cross-validation references. They all treat
// n = 1 as the identity transform without calling into the library.

func trivial(x []float64) []complex128 {
	return []complex128{complex(x[0], 0)}
}

func toComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// AlgoFFT wraps an algo-fft complex128 plan. Plans are cached per size.
type AlgoFFT struct {
	mu    sync.Mutex
	plans map[int]*algofft.Plan[complex128]
}

// NewAlgoFFT returns an engine with an empty plan cache.
func NewAlgoFFT() *AlgoFFT {
	return &AlgoFFT{plans: make(map[int]*algofft.Plan[complex128])}
}

// Name returns "algo-fft".
func (a *AlgoFFT) Name() string { return MethodAlgoFFT.String() }

// Forward computes the FFT of x with a cached plan.
func (a *AlgoFFT) Forward(x []float64) ([]complex128, time.Duration, error) {
	n := len(x)
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return trivial(x), 0, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	plan, ok := a.plans[n]
	if !ok {
		var err error
		plan, err = algofft.NewPlan64(n)
		if err != nil {
			return nil, 0, err
		}
		a.plans[n] = plan
	}

	in := toComplex(x)
	out := make([]complex128, n)

	start := time.Now()
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, err
	}

	return out, time.Since(start), nil
}

// Gonum wraps gonum's complex FFT. gonum FFT values carry work buffers, so
// the cached instances are used under a lock.
type Gonum struct {
	mu   sync.Mutex
	ffts map[int]*fourier.CmplxFFT
}

// NewGonum returns an engine with an empty FFT cache.
func NewGonum() *Gonum {
	return &Gonum{ffts: make(map[int]*fourier.CmplxFFT)}
}

// Name returns "gonum".
func (g *Gonum) Name() string { return MethodGonum.String() }

// Forward computes the FFT of x with gonum's CmplxFFT.
func (g *Gonum) Forward(x []float64) ([]complex128, time.Duration, error) {
	n := len(x)
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return trivial(x), 0, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	f, ok := g.ffts[n]
	if !ok {
		f = fourier.NewCmplxFFT(n)
		g.ffts[n] = f
	}

	in := toComplex(x)
	out := make([]complex128, n)

	start := time.Now()
	out = f.Coefficients(out, in)

	return out, time.Since(start), nil
}

// GoDSP wraps go-dsp's real-input FFT.
type GoDSP struct{}

// Name returns "go-dsp".
func (GoDSP) Name() string { return MethodGoDSP.String() }

// Forward computes the FFT of x with go-dsp.
func (GoDSP) Forward(x []float64) ([]complex128, time.Duration, error) {
	n := len(x)
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return trivial(x), 0, nil
	}

	start := time.Now()
	out := dspfft.FFTReal(x)

	return out, time.Since(start), nil
}
