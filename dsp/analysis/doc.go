// Package analysis ties the transform, extraction, reconstruction and fit
// stages together.
//
// An Analyzer picks the largest power-of-two prefix of a sample buffer,
// transforms it with the configured engine, keeps the dominant components
// from the lower half of the spectrum and, unless disabled, rebuilds the
// signal over every timestamp of the buffer and measures the residual.
package analysis
