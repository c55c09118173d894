package transform

import (
	"fmt"
	"strings"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/samples"
)

// Engine computes the forward DFT of a power-of-two length real sequence.
type Engine interface {
	// Name returns the registry name of the engine.
	Name() string

	// Forward returns len(x) bins in ascending bin order and the elapsed time
	// of the transform phase.
	Forward(x []float64) ([]complex128, time.Duration, error)
}

// Spectrum is the output of one transform call.
type Spectrum struct {
	Bins    []complex128
	Elapsed time.Duration
	Engine  string
}

// Len returns the transform size n.
func (s Spectrum) Len() int { return len(s.Bins) }

// Compute transforms the first n amplitudes of buf with e.
//
// n must be a power of two not exceeding buf.Len().
func Compute(e Engine, buf *samples.Buffer, n int) (Spectrum, error) {
	if e == nil {
		return Spectrum{}, fmt.Errorf("transform: nil engine")
	}
	if buf == nil {
		return Spectrum{}, fmt.Errorf("transform: nil sample buffer: %w", core.ErrValidation)
	}
	if err := checkSize(n); err != nil {
		return Spectrum{}, err
	}
	if n > buf.Len() {
		return Spectrum{}, fmt.Errorf("transform: size %d exceeds %d available samples: %w", n, buf.Len(), core.ErrInvalidSize)
	}

	x, err := buf.Prefix(n)
	if err != nil {
		return Spectrum{}, err
	}

	bins, elapsed, err := e.Forward(x)
	if err != nil {
		return Spectrum{}, fmt.Errorf("transform: %s: %w", e.Name(), err)
	}
	if len(bins) != n {
		return Spectrum{}, fmt.Errorf("transform: %s returned %d bins, want %d", e.Name(), len(bins), n)
	}

	return Spectrum{Bins: bins, Elapsed: elapsed, Engine: e.Name()}, nil
}

func checkSize(n int) error {
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("transform: size %d is not a power of two: %w", n, core.ErrInvalidSize)
	}
	return nil
}

// Method identifies an engine in the registry.
type Method int

// Registered engines. The zero value selects the recursive FFT.
const (
	MethodCooleyTukey Method = iota
	MethodNaive
	MethodIterative
	MethodAlgoFFT
	MethodGonum
	MethodGoDSP
)

var methodNames = []string{
	MethodCooleyTukey: "cooley-tukey",
	MethodNaive:       "naive",
	MethodIterative:   "iterative",
	MethodAlgoFFT:     "algo-fft",
	MethodGonum:       "gonum",
	MethodGoDSP:       "go-dsp",
}

// String returns the registry name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Reference reports whether m wraps a library FFT kept for cross-validation.
func (m Method) Reference() bool {
	return m == MethodAlgoFFT || m == MethodGonum || m == MethodGoDSP
}

// Methods returns all registered methods in registry order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range out {
		out[i] = Method(i)
	}
	return out
}

// ParseMethod resolves a registry name. Matching ignores case and
// surrounding whitespace; "fft" and "dft" are accepted as aliases.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "fft", "recursive":
		return MethodCooleyTukey, nil
	case "dft":
		return MethodNaive, nil
	}
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("transform: unknown method %q", name)
}

// New returns a fresh engine for m.
func New(m Method) (Engine, error) {
	switch m {
	case MethodCooleyTukey:
		return CooleyTukey{}, nil
	case MethodNaive:
		return Naive{}, nil
	case MethodIterative:
		return Iterative{}, nil
	case MethodAlgoFFT:
		return NewAlgoFFT(), nil
	case MethodGonum:
		return NewGonum(), nil
	case MethodGoDSP:
		return GoDSP{}, nil
	default:
		return nil, fmt.Errorf("transform: unknown method %v", m)
	}
}
