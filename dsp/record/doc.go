// Package record decodes and encodes timestamped amplitude records.
//
// A record is (seconds int32, nanoseconds int32, amplitude float64). Two
// encodings exist:
//
//   - binary: 16-byte records packed back to back, big-endian by default
//   - CSV: one record per line, "seconds,nanoseconds,amplitude"
//
// Decoded records become a samples.Buffer whose time axis is relative to the
// first record: t[i] = (s[i] - s[0]) + 1e-9·ns[i].
//
// Files ending in ".gz" are decompressed transparently by [Open] and [Load].
package record
