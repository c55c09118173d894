package core

import "errors"

// Sentinel errors shared by the analysis packages. Call sites wrap them with
// context, so match with errors.Is.
var (
	// ErrValidation is returned when input shapes do not line up: empty or
	// mismatched sample slices, malformed records, or an unusable time axis.
	ErrValidation = errors.New("validation error")

	// ErrInvalidSize is returned when a requested transform size is not a
	// power of two, exceeds the available samples, or a component count is
	// below one.
	ErrInvalidSize = errors.New("invalid size")
)
