// Package signal synthesizes deterministic test signals as sums of cosine
// terms plus optional uniform noise.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Term is one cosine Amplitude·cos(Omega·t + Phase), Omega in radians per
// time unit.
type Term struct {
	Amplitude float64
	Omega     float64
	Phase     float64
}

// Generator creates deterministic signals.
type Generator struct {
	seed  int64
	noise float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithNoise sets the peak level of the uniform noise added to the noisy
// output. Negative levels are ignored.
func WithNoise(level float64) Option {
	return func(g *Generator) {
		if level >= 0 {
			g.noise = level
		}
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// Noise returns the noise level.
func (g *Generator) Noise() float64 { return g.noise }

// Times returns n evenly spaced timestamps from 0 to end inclusive.
func Times(end float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("signal samples must be >= 2: %d", n)
	}
	if end <= 0 || math.IsNaN(end) || math.IsInf(end, 0) {
		return nil, fmt.Errorf("signal end time must be > 0: %f", end)
	}
	out := make([]float64, n)
	step := end / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = end
	return out, nil
}

// Sum evaluates the sum of terms at each timestamp.
func Sum(times []float64, terms []Term) []float64 {
	out := make([]float64, len(times))
	for _, term := range terms {
		for i, t := range times {
			out[i] += term.Amplitude * math.Cos(term.Omega*t+term.Phase)
		}
	}
	return out
}

// Generate samples terms over [0, end] at n points and returns the time
// axis, the clean signal and the clean signal plus noise.
func (g *Generator) Generate(terms []Term, end float64, n int) (times, clean, noisy []float64, err error) {
	times, err = Times(end, n)
	if err != nil {
		return nil, nil, nil, err
	}

	clean = Sum(times, terms)
	noisy = make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i, v := range clean {
		noisy[i] = v + g.noise*(2*rng.Float64()-1)
	}

	return times, clean, noisy, nil
}

// Bias returns a constant term of the given level.
func Bias(level float64) Term {
	return Term{Amplitude: level}
}

// SquareWave returns the first numTerms odd harmonics with square-wave
// amplitudes: (4/(πk))·cos(kπt/period), k = 1, 3, 5, ...
func SquareWave(numTerms int, period float64) []Term {
	out := make([]Term, 0, max(numTerms, 0))
	for k := 1; k < 2*numTerms; k += 2 {
		out = append(out, Term{
			Amplitude: 4 / (math.Pi * float64(k)),
			Omega:     float64(k) * math.Pi / period,
		})
	}
	return out
}

// TriangleWave returns the first numTerms odd harmonics of a unit triangle
// wave: (-1)^((k-1)/2)·8/(π²k²)·cos(kπt/period), k = 1, 3, 5, ...
func TriangleWave(numTerms int, period float64) []Term {
	out := make([]Term, 0, max(numTerms, 0))
	for k := 1; k < 2*numTerms; k += 2 {
		sign := 1.0
		if (k-1)/2%2 == 1 {
			sign = -1
		}
		out = append(out, Term{
			Amplitude: sign * 8 / (math.Pi * math.Pi * float64(k*k)),
			Omega:     float64(k) * math.Pi / period,
		})
	}
	return out
}

// SawtoothWave returns the first numTerms harmonics of a sawtooth wave:
// (1/(πk))·cos(kπt/period), k = 1, 2, 3, ...
func SawtoothWave(numTerms int, period float64) []Term {
	out := make([]Term, 0, max(numTerms, 0))
	for k := 1; k <= numTerms; k++ {
		out = append(out, Term{
			Amplitude: 1 / (math.Pi * float64(k)),
			Omega:     float64(k) * math.Pi / period,
		})
	}
	return out
}
