package testutil

import (
	"math"
	"math/rand"
)

// UniformTimes returns n timestamps spaced evenly over [0, duration).
func UniformTimes(n int, duration float64) []float64 {
	out := make([]float64, n)
	dt := duration / float64(n)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// Cosine samples amplitude·cos(omega·t + phase) at the given times.
func Cosine(times []float64, amplitude, omega, phase float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = amplitude * math.Cos(omega*t+phase)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
