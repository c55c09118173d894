// Package samples holds the immutable time/amplitude pair that every
// transform reads from.
//
// A Buffer is built once from decoded input and never changes afterwards.
// Accessors hand out copies, so a Buffer can be shared freely between
// transform calls.
package samples
