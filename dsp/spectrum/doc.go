// Package spectrum turns complex spectrum bins into ranked sinusoidal
// components.
//
// The package does not compute transforms itself. It operates on bins
// produced by the engines in package transform (or any other FFT) and
// provides magnitude/phase extraction, amplitude scaling and top-K
// selection over the non-negative-frequency half of a real signal's
// spectrum.
package spectrum
