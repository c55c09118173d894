// Package transform computes discrete spectra of real-valued sample prefixes.
//
// Two engines make up the core: [Naive], a direct O(n²) DFT used as ground
// truth, and [CooleyTukey], a recursive radix-2 decimation-in-time FFT.
// [Iterative] is the bit-reversed bottom-up form of the same FFT. [AlgoFFT],
// [Gonum] and [GoDSP] wrap library FFTs and exist for cross-validation only.
//
// All engines accept power-of-two lengths and return bins in ascending bin
// order together with the wall time of the transform itself. Preparation
// (prefix copy, twiddle tables, plan creation) is excluded from the timing.
package transform
